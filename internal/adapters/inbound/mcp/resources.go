package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/edgecheck/edgecheck/internal/adapters/outbound/store"
	"github.com/edgecheck/edgecheck/internal/application"
	"github.com/edgecheck/edgecheck/internal/domain"
)

// registerResources registers all edgecheck MCP resources on the given server.
func registerResources(s *server.MCPServer, workspacePath string) {
	// 1. edgecheck://snapshots - persisted revision snapshots
	s.AddResource(
		mcplib.NewResource(
			"edgecheck://snapshots",
			"Report Snapshots",
			mcplib.WithResourceDescription("Revision identifiers with a persisted report snapshot"),
			mcplib.WithMIMEType("application/json"),
		),
		handleSnapshotsResource(workspacePath),
	)

	// 2. edgecheck://snapshots/{rev} - one revision's report (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"edgecheck://snapshots/{rev}",
			"Revision Report",
			mcplib.WithTemplateDescription("Persisted report snapshot for a specific revision"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleSnapshotResource(workspacePath),
	)
}

func handleSnapshotsResource(workspacePath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := loadConfig(workspacePath)
		if err != nil {
			return nil, err
		}

		entries, err := os.ReadDir(cfg.ReportPath)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("listing snapshots: %w", err)
		}

		revs := []string{}
		for _, entry := range entries {
			if rev, ok := strings.CutSuffix(entry.Name(), ".report.json"); ok {
				revs = append(revs, rev)
			}
		}
		sort.Strings(revs)

		data, err := domain.EncodeIndented(revs)
		if err != nil {
			return nil, fmt.Errorf("marshaling snapshot list: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "edgecheck://snapshots",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleSnapshotResource(workspacePath string) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		rev, ok := request.Params.Arguments["rev"].(string)
		if !ok || rev == "" {
			return nil, fmt.Errorf("revision is required")
		}
		// Snapshot names are revision identifiers, never paths.
		if rev != filepath.Base(rev) {
			return nil, fmt.Errorf("invalid revision %q", rev)
		}

		cfg, err := loadConfig(workspacePath)
		if err != nil {
			return nil, err
		}

		report, err := store.New().Load(application.SnapshotPath(cfg.ReportPath, rev))
		if err != nil {
			return nil, fmt.Errorf("loading snapshot: %w", err)
		}

		data, err := domain.EncodeIndented(report)
		if err != nil {
			return nil, fmt.Errorf("marshaling snapshot: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
