package application

import (
	"encoding/json"
	"time"

	"github.com/edgecheck/edgecheck/internal/domain"
)

// Sampler replays one sample file's messages through a submission client
// and aggregates the outcomes.
type Sampler struct {
	client domain.SubmissionClient
}

// NewSampler creates a Sampler bound to one client variant. The variant is
// fixed for the sampler's lifetime.
func NewSampler(client domain.SubmissionClient) *Sampler {
	return &Sampler{client: client}
}

// ValidateSample submits every message in order and returns a single-entry
// report fragment keyed by "namespace.doctype.version". Only status 200
// counts as success; transport failures are counted like any other error,
// keyed by the failure text.
func (s *Sampler) ValidateSample(namespace, filename string, messages []json.RawMessage) (map[string]domain.Outcome, error) {
	id, err := domain.ParseSampleName(namespace, filename)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	route := id.Route()
	errors := make(map[string]int)

	for _, msg := range messages {
		status, text, err := s.client.Submit(route, msg)
		if err != nil {
			text = err.Error()
			status = 0
		}
		if status != 200 {
			errors[text]++
		}
	}

	errorCount := 0
	for _, n := range errors {
		errorCount += n
	}

	total := len(messages)
	errorRate := 0.0
	if total > 0 {
		errorRate = domain.Round2(float64(errorCount) / float64(total) * 100)
	}
	if len(errors) == 0 {
		errors = nil
	}

	return map[string]domain.Outcome{
		id.Key(): {
			ErrorCount: errorCount,
			Total:      total,
			ErrorRate:  errorRate,
			Time:       domain.Round2(time.Since(start).Seconds()),
			Errors:     errors,
		},
	}, nil
}
