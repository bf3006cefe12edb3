// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"html/template"
	"io"
)

// pageTemplate is the rich result view: full protein card, embedded
// viewer, collapsible raw structure and cross-reference sections.
var pageTemplate = template.Must(template.New("result").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Protein Search Result</title></head>
<body>
{{if .Error}}
<p class="error">{{.Error}}</p>
{{else}}
<h1>{{.ProteinName}}</h1>
<p class="organism"><em>{{.Organism}}</em></p>
<pre class="sequence">{{.Sequence}}</pre>
{{if .ViewerURL}}
<iframe class="viewer" src="{{.ViewerURL}}" title="3D structure {{.ViewerPDBID}}"></iframe>
{{else}}
<p class="placeholder">{{.Placeholder}}</p>
{{end}}
{{if .RawStructure}}
<details class="raw-structure">
<summary>Raw structure data</summary>
<pre>{{.RawStructure}}</pre>
</details>
{{end}}
{{if .CrossLinks}}
<details class="cross-links">
<summary>Cross-references</summary>
<ul>
{{range .CrossLinks}}<li><a href="{{.URL}}">{{.DB}}: {{.ID}}</a></li>
{{end}}</ul>
</details>
{{end}}
{{if .AlignmentURL}}
<p><a class="align" href="{{.AlignmentURL}}">Run BLAST alignment</a></p>
{{end}}
{{end}}
</body>
</html>
`))

// WriteHTML renders the display model as a standalone HTML page.
func WriteHTML(m DisplayModel, w io.Writer) error {
	if err := pageTemplate.Execute(w, m); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	return nil
}
