package domain

// SubmissionClient submits one JSON-encoded message to an ingestion route.
// A non-nil error means the message never reached the endpoint; samplers
// count that as a failed submission rather than aborting the run.
type SubmissionClient interface {
	Submit(route string, body []byte) (status int, bodyText string, err error)
}

// RevisionControl drives the checked-out revision of the schema tree.
type RevisionControl interface {
	Checkout(rev string) error
	CurrentRevision() (string, error)
}

// ResourceSyncer refreshes local resources after a checkout. The sync
// mechanics are owned entirely by the collaborator.
type ResourceSyncer interface {
	Sync() error
}

// ReportStore persists revision report snapshots and comparison diffs.
type ReportStore interface {
	Save(path string, report *Report) error
	Load(path string) (*Report, error)
	Exists(path string) bool
	SaveDiff(path, text string) error
}

// ProgressReporter receives per-sample results as a report run progresses.
type ProgressReporter interface {
	SampleDone(key string, outcome Outcome)
	KeyCollision(key string)
}

// ConfigLoader reads the tool configuration for a workspace.
type ConfigLoader interface {
	Load(workspacePath string) (Config, error)
}
