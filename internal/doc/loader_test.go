package doc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.rst")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Lines(t *testing.T) {
	path := writeTempDoc(t, "line one\nline two\nline three\n")

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.LineCount() != 3 {
		t.Errorf("LineCount = %d, want 3", d.LineCount())
	}
	if d.Lines[0] != "line one" || d.Lines[2] != "line three" {
		t.Errorf("unexpected lines: %q", d.Lines)
	}
	if d.Path != path {
		t.Errorf("Path = %q, want %q", d.Path, path)
	}
}

func TestLoad_NoTrailingNewline(t *testing.T) {
	path := writeTempDoc(t, "a\nb\nc\nd\ne")

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.LineCount() != 5 {
		t.Errorf("LineCount = %d, want 5", d.LineCount())
	}
}

func TestLoad_BlankLinesCounted(t *testing.T) {
	path := writeTempDoc(t, "\n\nthird\n")

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.LineCount() != 3 || d.Lines[2] != "third" {
		t.Errorf("lines = %q, want third on line 3", d.Lines)
	}
}

func TestLoad_Empty(t *testing.T) {
	d, err := Load(writeTempDoc(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.LineCount() != 0 {
		t.Errorf("LineCount = %d, want 0", d.LineCount())
	}
}

func TestSplitLines_Terminators(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"lf", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"lone cr", "a\rb", []string{"a", "b"}},
		{"mixed", "a\r\n\rb\nc", []string{"a", "", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitLines(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("splitLines(%q) = %q, want %q", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i+1, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoad_InvalidUTF8(t *testing.T) {
	path := writeTempDoc(t, "ok\n\xff\xfe\n")

	_, err := Load(path)
	if !errors.Is(err, ErrNotUTF8) {
		t.Fatalf("expected ErrNotUTF8, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/doc.rst")
	if err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
