// ABOUTME: Validation issue types reported by the campus validator
// ABOUTME: Path/message/recommendation triples, JSON-serializable for the API

package models

// Issue is one structural violation found in a campus tree. Path identifies
// the entity by label (falling back to id), Message states what is wrong,
// Recommendation says how to fix it.
type Issue struct {
	Path           string `json:"path"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation"`
}

// ValidationResult is the API envelope around an issue list.
type ValidationResult struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues"`
}
