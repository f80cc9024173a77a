package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/dshills/termcheck/internal/schema"
)

type markdownRenderer struct{}

var mdTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"cell": mdCell,
}).Parse(`# Terminology Report

**Root:** {{ .Root }}
**Files scanned:** {{ .Summary.FilesScanned }} | **Files with findings:** {{ .Summary.FilesWithFinding }} | **Findings:** {{ .Summary.FindingCount }}
{{ if .Summary.Rules }}
---

## Rules

| Wrong | Correct | Count |
|---|---|---|
{{ range .Summary.Rules }}| {{ cell .Wrong }} | {{ cell .Correct }} | {{ .Count }} |
{{ end }}{{ end }}{{ if .Findings }}
---

## Findings

| Location | Wrong | Correct |
|---|---|---|
{{ range .Findings }}| {{ .Path }}:{{ .Line }} | {{ cell .Wrong }} | {{ cell .Correct }} |
{{ end }}{{ else }}
No findings.
{{ end }}
---
*{{ .Tool }} {{ .Version }}*
`))

// mdCell quotes a term so that blank and whitespace-only terms stay visible.
func mdCell(s string) string {
	return "`" + strings.ReplaceAll(s, "|", `\|`) + "`"
}

func (r *markdownRenderer) Render(report *schema.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, report); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}
