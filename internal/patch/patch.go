package patch

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dshills/termcheck/internal/terms"
)

// Source is a documentation file's path and original content.
type Source struct {
	Path string
	Raw  string
}

// GenerateDiff rewrites each source with every rule applied in table order
// and returns the changes as diff-match-patch patch text, one block per
// changed file headed by "# suggestions for <path>". Sources are never
// modified; the result is advisory.
func GenerateDiff(sources []Source, rules []terms.Rule) string {
	if len(sources) == 0 {
		return ""
	}

	dmp := diffmatchpatch.New()
	var out strings.Builder

	for _, s := range sources {
		after := terms.Apply(rules, s.Raw)
		if after == s.Raw {
			continue
		}

		diffs := dmp.DiffMain(s.Raw, after, false)
		patchList := dmp.PatchMake(s.Raw, diffs)
		patchText := dmp.PatchToText(patchList)
		if patchText == "" {
			continue
		}

		out.WriteString(fmt.Sprintf("# suggestions for %s\n", s.Path))
		out.WriteString(patchText)
		out.WriteString("\n")
	}

	return out.String()
}
