package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dshills/termcheck/internal/schema"
)

type textRenderer struct{}

func (r *textRenderer) Render(report *schema.Report) ([]byte, error) {
	var buf bytes.Buffer
	for _, f := range report.Findings {
		if err := WriteFinding(&buf, f); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// FormatFinding returns the single-line form "<path>:<line> '<wrong>' => '<correct>'".
func FormatFinding(f schema.Finding) string {
	return fmt.Sprintf("%s:%d '%s' => '%s'", f.Path, f.Line, f.Wrong, f.Correct)
}

// WriteFinding writes FormatFinding(f) followed by a newline.
func WriteFinding(w io.Writer, f schema.Finding) error {
	_, err := fmt.Fprintln(w, FormatFinding(f))
	return err
}
