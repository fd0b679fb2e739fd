package application

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/edgecheck/edgecheck/internal/domain"
)

// ReportService walks a data directory of sample files and aggregates one
// report from the per-sample outcomes.
type ReportService struct {
	sampler  *Sampler
	store    domain.ReportStore
	progress domain.ProgressReporter
}

// NewReportService creates a ReportService submitting through client.
func NewReportService(client domain.SubmissionClient, store domain.ReportStore, progress domain.ProgressReporter) *ReportService {
	return &ReportService{
		sampler:  NewSampler(client),
		store:    store,
		progress: progress,
	}
}

// Run processes every sample file under dataPath sequentially. Each file's
// enclosing directory is its namespace. When reportPath is non-empty the
// assembled report is validated and persisted there; a validation failure
// aborts before any write.
func (s *ReportService) Run(dataPath, reportPath string) (*domain.Report, error) {
	report := domain.NewReport()

	err := filepath.WalkDir(dataPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		messages, err := readSampleFile(path)
		if err != nil {
			return err
		}

		namespace := filepath.Base(filepath.Dir(path))
		fragment, err := s.sampler.ValidateSample(namespace, d.Name(), messages)
		if err != nil {
			return err
		}

		for _, key := range report.Merge(fragment) {
			s.progress.KeyCollision(key)
		}
		for key, outcome := range fragment {
			s.progress.SampleDone(key, outcome)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking data directory %s: %w", dataPath, err)
	}

	if reportPath != "" {
		if err := s.store.Save(reportPath, report); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// sampleLine is one line of a newline-delimited sample file. The payload
// lives in the content field; a missing content defaults to {}.
type sampleLine struct {
	Content json.RawMessage `json:"content"`
}

func readSampleFile(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sample %s: %w", path, err)
	}
	defer f.Close()

	var messages []json.RawMessage
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if len(scanner.Bytes()) == 0 {
			continue
		}

		var line sampleLine
		if err := json.Unmarshal(scanner.Bytes(), &line); err != nil {
			return nil, fmt.Errorf("parsing %s line %d: %w", path, lineNo, err)
		}
		if len(line.Content) == 0 {
			line.Content = json.RawMessage("{}")
		}
		messages = append(messages, line.Content)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading sample %s: %w", path, err)
	}
	return messages, nil
}
