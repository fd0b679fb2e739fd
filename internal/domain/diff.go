package domain

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// DiffReports renders both reports as reduced {key: {error_rate}} views and
// returns a unified diff between the two renderings. Identical inputs yield
// an empty string.
func DiffReports(labelA string, a *Report, labelB string, b *Report) (string, error) {
	textA, err := EncodeIndented(a.Reduce())
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", labelA, err)
	}
	textB, err := EncodeIndented(b.Reduce())
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", labelB, err)
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(textA)),
		B:        difflib.SplitLines(string(textB)),
		FromFile: labelA,
		ToFile:   labelB,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("computing diff %s..%s: %w", labelA, labelB, err)
	}
	return text, nil
}
