package domain

import "math"

// Outcome aggregates the submission results for one sample file.
type Outcome struct {
	ErrorCount int            `json:"error_count"`
	Total      int            `json:"total"`
	ErrorRate  float64        `json:"error_rate"`
	Time       float64        `json:"time"`
	Errors     map[string]int `json:"errors"`
}

// Report maps report keys ("namespace.doctype.version") to outcomes.
type Report struct {
	Results map[string]Outcome `json:"results"`
}

// ErrorRateView is the reduced per-key view used for revision diffs.
type ErrorRateView struct {
	ErrorRate float64 `json:"error_rate"`
}

func NewReport() *Report {
	return &Report{Results: make(map[string]Outcome)}
}

// Round2 rounds to two decimal places, the precision used throughout
// report files.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
