package doc

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// Doc holds one documentation file split into lines.
type Doc struct {
	Path  string
	Raw   string   // original content
	Lines []string // without terminators; Lines[0] is line 1
}

// LineCount returns the number of physical lines, blank lines included.
func (d *Doc) LineCount() int { return len(d.Lines) }

// Load reads a documentation file and splits it into lines. Content must
// be valid UTF-8.
func Load(path string) (*Doc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("decoding %s: %w", path, ErrNotUTF8)
	}

	raw := string(data)
	return &Doc{
		Path:  path,
		Raw:   raw,
		Lines: splitLines(raw),
	}, nil
}

// splitLines breaks content on "\n", "\r\n" and a lone "\r". A trailing
// terminator does not produce an extra empty line.
func splitLines(content string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			lines = append(lines, content[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, content[start:i])
			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}
