package render

import (
	"encoding/json"

	"github.com/dshills/termcheck/internal/schema"
)

type jsonRenderer struct{}

func (r *jsonRenderer) Render(report *schema.Report) ([]byte, error) {
	out := *report
	if out.Findings == nil {
		out.Findings = []schema.Finding{}
	}
	if out.Summary.Rules == nil {
		out.Summary.Rules = []schema.RuleCount{}
	}
	return json.MarshalIndent(&out, "", "  ")
}
