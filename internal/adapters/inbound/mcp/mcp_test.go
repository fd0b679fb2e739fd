package mcp_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/edgecheck/edgecheck/internal/adapters/inbound/mcp"
	"github.com/edgecheck/edgecheck/internal/adapters/outbound/store"
	"github.com/edgecheck/edgecheck/internal/application"
	"github.com/edgecheck/edgecheck/internal/domain"
)

const payloadSchema = `{
	"type": "object",
	"properties": {
		"payload": {"type": "string"}
	},
	"required": ["payload"]
}`

// newWorkspace builds a workspace with one schema, one sample file of three
// messages (one invalid), and a config pointing at them.
func newWorkspace(t *testing.T) string {
	t.Helper()
	ws := t.TempDir()

	schemaPath := filepath.Join(ws, "resources", "schemas", "mozfoo", "test-doctype.1.schema.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(schemaPath), 0755))
	require.NoError(t, os.WriteFile(schemaPath, []byte(payloadSchema), 0644))

	samplePath := filepath.Join(ws, "data", "mozfoo", "mozfoo.test-doctype.1.batch.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(samplePath), 0755))
	sample := `{"content": {"payload": "hello"}}
{"content": {"payload": "world"}}
{"content": {"payload": 42}}
`
	require.NoError(t, os.WriteFile(samplePath, []byte(sample), 0644))

	cfg := fmt.Sprintf("resources_path: %s\ndata_path: %s\nreport_path: %s\n",
		filepath.Join(ws, "resources"),
		filepath.Join(ws, "data"),
		filepath.Join(ws, "reports"))
	require.NoError(t, os.WriteFile(filepath.Join(ws, ".edgecheck.yaml"), []byte(cfg), 0644))

	return ws
}

func callTool(t *testing.T, ws, name string, args map[string]any) *mcplib.CallToolResult {
	t.Helper()
	s := mcpadapter.NewEdgecheckMCPServer(ws)
	tool, ok := s.ListTools()[name]
	require.True(t, ok, "tool %q should be registered", name)

	result, err := tool.Handler(context.Background(), mcplib.CallToolRequest{
		Params: mcplib.CallToolParams{Name: name, Arguments: args},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcplib.TextContent)
	require.True(t, ok, "content should be text")
	return text.Text
}

func readResource(t *testing.T, ws, uri string) string {
	t.Helper()
	s := mcpadapter.NewEdgecheckMCPServer(ws)
	msg := fmt.Sprintf(`{"jsonrpc":"2.0","id":1,"method":"resources/read","params":{"uri":%q}}`, uri)
	resp := s.HandleMessage(context.Background(), json.RawMessage(msg))

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	return string(data)
}

func TestNewEdgecheckMCPServer(t *testing.T) {
	s := mcpadapter.NewEdgecheckMCPServer(".")
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewEdgecheckMCPServer(".")
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"edgecheck_report",
		"edgecheck_compare",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}

func TestReportTool(t *testing.T) {
	ws := newWorkspace(t)

	result := callTool(t, ws, "edgecheck_report", map[string]any{})
	require.False(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, `"mozfoo.test-doctype.1"`)
	assert.Contains(t, text, `"error_rate": 33.33`)
	assert.Contains(t, text, `"error_count": 1`)
}

func TestReportTool_PersistsWhenAsked(t *testing.T) {
	ws := newWorkspace(t)
	reportPath := filepath.Join(ws, "reports", "dev.report.json")

	result := callTool(t, ws, "edgecheck_report", map[string]any{"report_path": reportPath})
	require.False(t, result.IsError)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	require.NoError(t, domain.ValidateReport(data))
}

func TestCompareTool_RequiresRevisions(t *testing.T) {
	ws := newWorkspace(t)

	result := callTool(t, ws, "edgecheck_compare", map[string]any{"rev_b": "revB"})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "rev_a")
}

// saveSnapshot persists a minimal valid report snapshot for rev.
func saveSnapshot(t *testing.T, ws, rev string) {
	t.Helper()
	report := domain.NewReport()
	report.Merge(map[string]domain.Outcome{
		"mozfoo.test-doctype.1": {ErrorCount: 1, Total: 3, ErrorRate: 33.33, Time: 1.2},
	})
	path := application.SnapshotPath(filepath.Join(ws, "reports"), rev)
	require.NoError(t, store.New().Save(path, report))
}

func TestSnapshotsResource_ListsPersistedRevisions(t *testing.T) {
	ws := newWorkspace(t)
	saveSnapshot(t, ws, "abc123")
	saveSnapshot(t, ws, "def456")

	resp := readResource(t, ws, "edgecheck://snapshots")
	assert.Contains(t, resp, "abc123")
	assert.Contains(t, resp, "def456")
}

func TestSnapshotsResource_EmptyWhenNoneSaved(t *testing.T) {
	ws := newWorkspace(t)

	resp := readResource(t, ws, "edgecheck://snapshots")
	assert.NotContains(t, resp, "error_rate")
}

func TestSnapshotResource_ReturnsReport(t *testing.T) {
	ws := newWorkspace(t)
	saveSnapshot(t, ws, "abc123")

	resp := readResource(t, ws, "edgecheck://snapshots/abc123")
	assert.Contains(t, resp, "error_rate")
	assert.Contains(t, resp, "33.33")
}

func TestSnapshotResource_RejectsPathEscapes(t *testing.T) {
	ws := newWorkspace(t)
	saveSnapshot(t, ws, "abc123")

	// A revision argument carrying a path separator must never resolve to a
	// file outside the report directory.
	resp := readResource(t, ws, "edgecheck://snapshots/..%2Fabc123")
	assert.Contains(t, resp, "error")
	assert.NotContains(t, resp, "error_rate")
}

func TestSnapshotResource_UnknownRevision(t *testing.T) {
	ws := newWorkspace(t)

	resp := readResource(t, ws, "edgecheck://snapshots/deadbeef")
	assert.Contains(t, resp, "error")
	assert.NotContains(t, resp, "error_rate")
}
