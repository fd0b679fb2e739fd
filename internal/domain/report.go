package domain

import (
	"bytes"
	"encoding/json"
)

// Merge folds a single-sample fragment into the report. Later entries win,
// but any key that was already present is returned so callers can surface
// the collision.
func (r *Report) Merge(fragment map[string]Outcome) []string {
	var collisions []string
	for key, outcome := range fragment {
		if _, ok := r.Results[key]; ok {
			collisions = append(collisions, key)
		}
		r.Results[key] = outcome
	}
	return collisions
}

// Reduce strips a report down to the per-key error rates used for
// revision comparison.
func (r *Report) Reduce() map[string]ErrorRateView {
	reduced := make(map[string]ErrorRateView, len(r.Results))
	for key, outcome := range r.Results {
		reduced[key] = ErrorRateView{ErrorRate: outcome.ErrorRate}
	}
	return reduced
}

// EncodeIndented renders v as key-sorted JSON indented with four spaces,
// terminated by a newline. Report files and diff inputs both use this
// rendering so byte-level comparisons are stable.
func EncodeIndented(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
