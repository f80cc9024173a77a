package terms

import (
	"fmt"
	"strings"
)

// Rule maps the preferred spelling of a term to the variants that should
// be flagged in documentation. An empty Correct means the variant should
// be deleted rather than replaced.
type Rule struct {
	Correct string
	Wrong   []string
}

// Pair is a single (wrong, correct) combination taken from a Rule.
type Pair struct {
	Wrong   string
	Correct string
}

// String renders the pair the way findings print it.
func (p Pair) String() string {
	return fmt.Sprintf("'%s' => '%s'", p.Wrong, p.Correct)
}

// table is never handed out directly; see Default.
var table = []Rule{
	{Correct: "インターフェース", Wrong: []string{"インターフェイス"}},
	{Correct: "状態変数", Wrong: []string{"ステート変数"}},
	{Correct: "演算子", Wrong: []string{"オペレータ"}},
	{Correct: "修飾子", Wrong: []string{"モディファイア"}},
	{Correct: "代入", Wrong: []string{"割り当て"}},
	{Correct: " ", Wrong: []string{"　"}},
	{Correct: ":", Wrong: []string{"："}},
	{Correct: "ストレージ", Wrong: []string{"記憶"}},
	{Correct: "でき", Wrong: []string{"することができ"}},
	{Correct: "ます。", Wrong: []string{"る。"}},
	{Correct: "です。", Wrong: []string{"だ。"}},
	{Correct: "", Wrong: []string{"・"}},
	{Correct: "型", Wrong: []string{"タイプ"}},
	{Correct: "シグネチャ", Wrong: []string{"シグネチャー"}},
	{Correct: "シャドーイング", Wrong: []string{"シャドウイング"}},
	{Correct: "オプティマイザ", Wrong: []string{"オプティマイザー"}},
	{Correct: "セレクタ", Wrong: []string{"セレクター"}},
	{Correct: "動的", Wrong: []string{"ダイナミック"}},
	{Correct: "静的", Wrong: []string{"スタティック"}},
	{Correct: "継承", Wrong: []string{"相続"}},
	{Correct: "ため、", Wrong: []string{"ので、"}},
}

// Default returns a copy of the built-in rule table in table order.
// Mutating the result does not affect later calls.
func Default() []Rule {
	out := make([]Rule, len(table))
	for i, r := range table {
		out[i] = Rule{
			Correct: r.Correct,
			Wrong:   append([]string(nil), r.Wrong...),
		}
	}
	return out
}

// Pairs flattens rules into (wrong, correct) pairs, preserving rule order
// and then variant order. This is the order in which the checker runs.
func Pairs(rules []Rule) []Pair {
	var out []Pair
	for _, r := range rules {
		for _, w := range r.Wrong {
			out = append(out, Pair{Wrong: w, Correct: r.Correct})
		}
	}
	return out
}

// Apply replaces every wrong variant in s with its correct term, one pair
// at a time in table order.
func Apply(rules []Rule, s string) string {
	for _, p := range Pairs(rules) {
		s = strings.ReplaceAll(s, p.Wrong, p.Correct)
	}
	return s
}
