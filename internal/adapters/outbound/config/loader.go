package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/edgecheck/edgecheck/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".edgecheck.yaml"

// Loader implements domain.ConfigLoader by overlaying .edgecheck.yaml and
// the EXTERNAL/HOST/PORT environment variables on the documented defaults.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load reads .edgecheck.yaml from workspacePath. A missing file is not an
// error; defaults apply. Environment variables win over the file.
func (l *Loader) Load(workspacePath string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(workspacePath, fileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults
	case err != nil:
		return domain.Config{}, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *domain.Config) {
	if v := os.Getenv("EXTERNAL"); v != "" {
		cfg.External = true
	}
	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
}
