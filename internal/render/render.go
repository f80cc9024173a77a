package render

import (
	"fmt"
	"strings"

	"github.com/dshills/termcheck/internal/schema"
)

// Renderer formats a Report into bytes for output.
type Renderer interface {
	Render(report *schema.Report) ([]byte, error)
}

// Formats lists the supported format names, default first.
var Formats = []string{"text", "json", "md"}

// NewRenderer returns a Renderer for the given format string.
// Supported formats: "text" (default), "json", "md".
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case "text", "":
		return &textRenderer{}, nil
	case "json":
		return &jsonRenderer{}, nil
	case "md":
		return &markdownRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: supported formats are %s", format, strings.Join(Formats, ", "))
	}
}

// IsStreaming reports whether findings for format can be written one at a
// time as they are produced.
func IsStreaming(format string) bool {
	return format == "text" || format == ""
}
