package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/edgecheck/edgecheck/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	passStyle   = lipgloss.NewStyle().Foreground(success)
	failStyle   = lipgloss.NewStyle().Foreground(danger)
	warnStyle   = lipgloss.NewStyle().Foreground(warning)
)

// Progress implements domain.ProgressReporter, writing one styled line per
// processed sample.
type Progress struct {
	out io.Writer
}

// NewProgress returns a progress reporter writing to out.
func NewProgress(out io.Writer) *Progress {
	return &Progress{out: out}
}

func (p *Progress) SampleDone(key string, outcome domain.Outcome) {
	rateStyle := passStyle
	if outcome.ErrorCount > 0 {
		rateStyle = failStyle
	}
	fmt.Fprintf(p.out, "%s\t%s\t%s\t%s\n",
		rateStyle.Render(fmt.Sprintf("ErrorRate: %.2f%%", outcome.ErrorRate)),
		fmt.Sprintf("Total: %d", outcome.Total),
		dimStyle.Render(fmt.Sprintf("Time: %.1f seconds", outcome.Time)),
		fmt.Sprintf("DocType: %s", key),
	)
}

func (p *Progress) KeyCollision(key string) {
	fmt.Fprintf(p.out, "%s\n",
		warnStyle.Render(fmt.Sprintf("warning: duplicate report key %s, keeping the later sample", key)))
}

// RenderReport renders a report as a key-sorted summary table.
func RenderReport(report *domain.Report) string {
	keys := make([]string, 0, len(report.Results))
	for key := range report.Results {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(headerStyle.Render("edgecheck report"))
	b.WriteString("\n")
	for _, key := range keys {
		outcome := report.Results[key]
		rateStyle := passStyle
		if outcome.ErrorCount > 0 {
			rateStyle = failStyle
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			rateStyle.Render(fmt.Sprintf("%6.2f%%", outcome.ErrorRate)),
			dimStyle.Render(fmt.Sprintf("%5d msgs", outcome.Total)),
			key,
		))
	}
	return b.String()
}

// RenderDiff colors added and removed lines of a unified diff. An empty
// diff renders as a short notice instead of nothing.
func RenderDiff(text string) string {
	if text == "" {
		return dimStyle.Render("no error-rate changes between revisions") + "\n"
	}

	var b strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			b.WriteString(passStyle.Render(strings.TrimSuffix(line, "\n")) + "\n")
		case strings.HasPrefix(line, "-"):
			b.WriteString(failStyle.Render(strings.TrimSuffix(line, "\n")) + "\n")
		case line == "":
		default:
			b.WriteString(line)
		}
	}
	return b.String()
}
