package application

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/edgecheck/edgecheck/internal/domain"
)

// ErrRemoteUnsupported rejects compare runs configured with the remote
// client: checkouts only affect the local schema tree, so a remote endpoint
// would keep validating against its own, unchanged schemas.
var ErrRemoteUnsupported = errors.New("remote (EXTERNAL) client mode is not supported for revision comparison")

// ClientFactory builds a fresh submission client. The comparator calls it
// after every checkout+sync so the in-process harness picks up the newly
// synced schemas instead of reusing a stale registry.
type ClientFactory func() (domain.SubmissionClient, error)

// CompareService compares schema-validation error rates between two
// revisions of the schema tree.
type CompareService struct {
	clients  ClientFactory
	vcs      domain.RevisionControl
	syncer   domain.ResourceSyncer
	store    domain.ReportStore
	progress domain.ProgressReporter
}

// NewCompareService wires the comparator's collaborators.
func NewCompareService(clients ClientFactory, vcs domain.RevisionControl, syncer domain.ResourceSyncer, store domain.ReportStore, progress domain.ProgressReporter) *CompareService {
	return &CompareService{
		clients:  clients,
		vcs:      vcs,
		syncer:   syncer,
		store:    store,
		progress: progress,
	}
}

// CompareResult describes one finished comparison run.
type CompareResult struct {
	RevA, RevB       string
	Diff             string
	DiffPath         string
	CachedA, CachedB bool
}

// Compare produces (or reuses) a report snapshot for each revision, diffs
// the reduced error rates, and persists the diff. The revision checked out
// before the run is restored on every exit path, including failures.
func (s *CompareService) Compare(cfg domain.Config, revA, revB string) (result *CompareResult, err error) {
	if cfg.External {
		return nil, ErrRemoteUnsupported
	}

	head, err := s.vcs.CurrentRevision()
	if err != nil {
		return nil, fmt.Errorf("recording current revision: %w", err)
	}
	defer func() {
		if restoreErr := s.vcs.Checkout(head); restoreErr != nil && err == nil {
			err = fmt.Errorf("restoring revision %s: %w", head, restoreErr)
		}
	}()

	reportA, cachedA, err := s.reportFor(cfg, revA)
	if err != nil {
		return nil, err
	}
	reportB, cachedB, err := s.reportFor(cfg, revB)
	if err != nil {
		return nil, err
	}

	diff, err := domain.DiffReports(revA, reportA, revB, reportB)
	if err != nil {
		return nil, err
	}

	diffPath := filepath.Join(cfg.ReportPath, fmt.Sprintf("%s-%s.diff", revA, revB))
	if err := s.store.SaveDiff(diffPath, diff); err != nil {
		return nil, err
	}

	return &CompareResult{
		RevA: revA, RevB: revB,
		Diff: diff, DiffPath: diffPath,
		CachedA: cachedA, CachedB: cachedB,
	}, nil
}

// reportFor returns the snapshot for rev, reusing a valid cached snapshot
// when caching is enabled. A corrupt cached file falls through to
// regeneration rather than failing the run.
func (s *CompareService) reportFor(cfg domain.Config, rev string) (*domain.Report, bool, error) {
	path := SnapshotPath(cfg.ReportPath, rev)

	if cfg.Cache && s.store.Exists(path) {
		report, err := s.store.Load(path)
		if err == nil {
			return report, true, nil
		}
	}

	if err := s.vcs.Checkout(rev); err != nil {
		return nil, false, err
	}
	if err := s.syncer.Sync(); err != nil {
		return nil, false, err
	}

	client, err := s.clients()
	if err != nil {
		return nil, false, fmt.Errorf("building submission client for %s: %w", rev, err)
	}

	report, err := NewReportService(client, s.store, s.progress).Run(cfg.DataPath, path)
	if err != nil {
		return nil, false, fmt.Errorf("generating report for %s: %w", rev, err)
	}
	return report, false, nil
}

// SnapshotPath is the canonical location of a revision's report snapshot.
func SnapshotPath(reportDir, rev string) string {
	return filepath.Join(reportDir, rev+".report.json")
}
