package domain_test

import (
	"testing"

	"github.com/edgecheck/edgecheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSampleName(t *testing.T) {
	id, err := domain.ParseSampleName("mozfoo", "mozfoo.test-doctype.4.batch.json")
	require.NoError(t, err)

	assert.Equal(t, "mozfoo", id.Namespace)
	assert.Equal(t, "test-doctype", id.Doctype)
	assert.Equal(t, 4, id.DocVersion)
	assert.Equal(t, "mozfoo.test-doctype.4", id.Key())
}

func TestParseSampleName_NamespaceComesFromDirectory(t *testing.T) {
	// The first filename field is the submission name, which may differ
	// from the enclosing directory.
	id, err := domain.ParseSampleName("telemetry", "submission.main.4.batch.json")
	require.NoError(t, err)

	assert.Equal(t, "telemetry", id.Namespace)
	assert.Equal(t, "telemetry.main.4", id.Key())
}

func TestParseSampleName_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{"too few fields", "doctype.1.batch.json"},
		{"too many fields", "a.b.c.1.batch.json"},
		{"no suffix", "mozfoo.json"},
		{"non-integer version", "mozfoo.doctype.one.batch.json"},
		{"negative version", "mozfoo.doctype.-1.batch.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseSampleName("mozfoo", tt.filename)
			assert.Error(t, err)
		})
	}
}

func TestRoute_VersionZeroHasNoVersionSegment(t *testing.T) {
	id := domain.SampleID{Namespace: "mozfoo", Doctype: "test-doctype", DocVersion: 0}
	assert.Equal(t, "/submit/mozfoo/test-doctype", id.Route())
}

func TestRoute_PositiveVersionIsAppended(t *testing.T) {
	id := domain.SampleID{Namespace: "mozfoo", Doctype: "test-doctype", DocVersion: 4}
	assert.Equal(t, "/submit/mozfoo/test-doctype/4", id.Route())
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.33, domain.Round2(1.0/3.0*100))
	assert.Equal(t, 66.67, domain.Round2(2.0/3.0*100))
	assert.Equal(t, 0.0, domain.Round2(0))
	assert.Equal(t, 100.0, domain.Round2(100))
}
