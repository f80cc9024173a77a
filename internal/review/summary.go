package review

import (
	"github.com/dshills/termcheck/internal/schema"
	"github.com/dshills/termcheck/internal/terms"
)

// Summarize computes counts from all findings. Rule counts follow the
// order of pairs, and pairs that produced nothing are left out.
func Summarize(findings []schema.Finding, pairs []terms.Pair, filesScanned int) schema.Summary {
	return schema.Summary{
		FilesScanned:     filesScanned,
		FilesWithFinding: len(Files(findings)),
		FindingCount:     len(findings),
		Rules:            Counts(findings, pairs),
	}
}

// Counts returns the number of findings per (wrong, correct) pair.
func Counts(findings []schema.Finding, pairs []terms.Pair) []schema.RuleCount {
	byPair := make(map[terms.Pair]int, len(pairs))
	for _, f := range findings {
		byPair[terms.Pair{Wrong: f.Wrong, Correct: f.Correct}]++
	}
	out := make([]schema.RuleCount, 0, len(byPair))
	seen := make(map[terms.Pair]bool, len(pairs))
	for _, p := range pairs {
		n := byPair[p]
		if n == 0 || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, schema.RuleCount{Wrong: p.Wrong, Correct: p.Correct, Count: n})
	}
	return out
}

// Files returns the distinct paths that have findings, in first-seen order.
func Files(findings []schema.Finding) []string {
	seen := make(map[string]bool)
	var out []string
	for _, f := range findings {
		if seen[f.Path] {
			continue
		}
		seen[f.Path] = true
		out = append(out, f.Path)
	}
	return out
}
