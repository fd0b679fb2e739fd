package domain

// Config holds the runtime configuration shared by the report and compare
// workflows.
type Config struct {
	// External selects the remote HTTP client instead of the in-process
	// harness.
	External bool   `yaml:"external"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`

	// DataPath is the root of the sampled data tree, one namespace per
	// directory.
	DataPath string `yaml:"data_path"`
	// ResourcesPath is the application resource folder kept up to date by
	// the sync collaborator.
	ResourcesPath string `yaml:"resources_path"`
	// ReportPath is where revision snapshots and diffs are written.
	ReportPath string `yaml:"report_path"`
	// SchemaRepoPath is the version-controlled schema tree that compare
	// runs check out.
	SchemaRepoPath string `yaml:"schema_repo_path"`
	// SyncScript is handed to the resource syncer verbatim.
	SyncScript string `yaml:"sync_script"`
	// Cache reuses existing revision snapshots during compare runs.
	Cache bool `yaml:"cache"`
}

// DefaultConfig mirrors the documented defaults for all configuration
// inputs.
func DefaultConfig() Config {
	return Config{
		Host:           "localhost",
		Port:           5000,
		DataPath:       "resources/data",
		ResourcesPath:  "resources",
		ReportPath:     "test-reports",
		SchemaRepoPath: "schemas",
		SyncScript:     "sync.sh",
		Cache:          true,
	}
}
