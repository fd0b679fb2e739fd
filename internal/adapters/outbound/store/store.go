package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/edgecheck/edgecheck/internal/domain"
)

// Store is the file-based implementation of domain.ReportStore. Snapshot
// files are immutable once written; compare runs key them by revision.
type Store struct{}

// New creates a file-based report store.
func New() *Store {
	return &Store{}
}

// Save validates the report against the report schema and writes it as
// key-sorted indented JSON. Nothing is written when validation fails.
func (s *Store) Save(path string, report *domain.Report) error {
	data, err := domain.EncodeIndented(report)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := domain.ValidateReport(data); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// Load reads a persisted report back, re-validating it against the report
// schema so a corrupt snapshot is never silently reused.
func (s *Store) Load(path string) (*domain.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report %s: %w", path, err)
	}
	if err := domain.ValidateReport(data); err != nil {
		return nil, err
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("decoding report %s: %w", path, err)
	}
	return &report, nil
}

// Exists reports whether a snapshot is already on disk.
func (s *Store) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// SaveDiff persists a comparison diff next to the snapshots it came from.
func (s *Store) SaveDiff(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing diff %s: %w", path, err)
	}
	return nil
}
