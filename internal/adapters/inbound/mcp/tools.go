package mcp

import (
	"context"
	"fmt"
	"io"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/edgecheck/edgecheck/internal/adapters/outbound/config"
	"github.com/edgecheck/edgecheck/internal/adapters/outbound/store"
	"github.com/edgecheck/edgecheck/internal/adapters/outbound/submit"
	"github.com/edgecheck/edgecheck/internal/adapters/outbound/syncer"
	"github.com/edgecheck/edgecheck/internal/adapters/outbound/vcs"
	"github.com/edgecheck/edgecheck/internal/application"
	"github.com/edgecheck/edgecheck/internal/domain"
	"github.com/edgecheck/edgecheck/internal/endpoint"
)

// registerTools registers all edgecheck MCP tools on the given server.
func registerTools(s *server.MCPServer, workspacePath string) {
	// 1. edgecheck_report
	s.AddTool(
		mcplib.NewTool("edgecheck_report",
			mcplib.WithDescription("Run an integration report against the currently loaded schemas and return it as JSON"),
			mcplib.WithString("report_path", mcplib.Description("File to persist the report to (not persisted when omitted)")),
		),
		handleReport(workspacePath),
	)

	// 2. edgecheck_compare
	s.AddTool(
		mcplib.NewTool("edgecheck_compare",
			mcplib.WithDescription("Compare schema-validation error rates between two revisions of the schema repository; returns the unified diff"),
			mcplib.WithString("rev_a", mcplib.Required(), mcplib.Description("First revision identifier")),
			mcplib.WithString("rev_b", mcplib.Required(), mcplib.Description("Second revision identifier")),
			mcplib.WithBoolean("cache", mcplib.Description("Reuse existing report snapshots (default true)")),
		),
		handleCompare(workspacePath),
	)
}

// noopProgress discards per-sample progress; MCP callers only want the
// final result payload.
type noopProgress struct{}

func (noopProgress) SampleDone(string, domain.Outcome) {}
func (noopProgress) KeyCollision(string)               {}

func loadConfig(workspacePath string) (domain.Config, error) {
	cfg, err := config.New().Load(workspacePath)
	if err != nil {
		return domain.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func buildClient(cfg domain.Config) (domain.SubmissionClient, error) {
	if cfg.External {
		return submit.NewRemote(cfg.Host, cfg.Port), nil
	}
	app, err := endpoint.Load(cfg.ResourcesPath)
	if err != nil {
		return nil, err
	}
	return submit.NewHarness(app), nil
}

func handleReport(workspacePath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := loadConfig(workspacePath)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		client, err := buildClient(cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("building client: %v", err)), nil
		}

		reportPath, _ := request.GetArguments()["report_path"].(string)

		svc := application.NewReportService(client, store.New(), noopProgress{})
		report, err := svc.Run(cfg.DataPath, reportPath)
		if err != nil {
			return errorResult(fmt.Sprintf("report failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleCompare(workspacePath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		revA, err := request.RequireString("rev_a")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		revB, err := request.RequireString("rev_b")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cfg, err := loadConfig(workspacePath)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if cache, ok := request.GetArguments()["cache"].(bool); ok {
			cfg.Cache = cache
		}

		factory := func() (domain.SubmissionClient, error) {
			return buildClient(cfg)
		}
		svc := application.NewCompareService(
			factory,
			vcs.New(cfg.SchemaRepoPath),
			syncer.New(workspacePath, cfg.SyncScript, io.Discard),
			store.New(),
			noopProgress{},
		)

		result, err := svc.Compare(cfg, revA, revB)
		if err != nil {
			return errorResult(fmt.Sprintf("compare failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := domain.EncodeIndented(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
