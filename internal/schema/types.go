package schema

// Report is the top-level structure for the json and md output formats.
type Report struct {
	Tool     string    `json:"tool"`
	Version  string    `json:"version"`
	Root     string    `json:"root"`
	Summary  Summary   `json:"summary"`
	Findings []Finding `json:"findings"`
}

// Summary holds deterministic counts computed from all findings.
type Summary struct {
	FilesScanned     int         `json:"files_scanned"`
	FilesWithFinding int         `json:"files_with_findings"`
	FindingCount     int         `json:"finding_count"`
	Rules            []RuleCount `json:"rules"`
}

// RuleCount is the number of findings produced by one (wrong, correct)
// pair. Pairs with no findings are omitted.
type RuleCount struct {
	Wrong   string `json:"wrong"`
	Correct string `json:"correct"`
	Count   int    `json:"count"`
}

// Finding is one line where a wrong term variant occurs.
type Finding struct {
	Path    string `json:"path"`
	Line    int    `json:"line"` // 1-based
	Wrong   string `json:"wrong"`
	Correct string `json:"correct"`
}
