package models

// Sample is a single channel reading along the sampled column.
type Sample struct {
	// Index is the row offset from the top of the column (0-based).
	Index int `json:"index"`
	// Intensity is the selected channel value.
	Intensity uint8 `json:"intensity"`
}
