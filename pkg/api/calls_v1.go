// pkg/api/calls_v1.go
package api

// CallV1 is the stable JSON/JSONL schema for one labeled read.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type CallV1 struct {
	ReadID       string  `json:"read_id"`
	AdapterCount int     `json:"adapter_count"`
	BestIndex    int     `json:"best_index"`
	BestLabel    string  `json:"best_label"`
	BestScore    float64 `json:"best_score"`

	// Absent when the scoring mode produced a single label.
	SecondIndex *int     `json:"second_index,omitempty"`
	SecondLabel string   `json:"second_label,omitempty"`
	SecondScore *float64 `json:"second_score,omitempty"`
}
