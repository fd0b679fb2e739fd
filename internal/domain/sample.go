package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const sampleSuffix = ".batch.json"

// SampleID identifies one sample file within the data set.
type SampleID struct {
	Namespace  string
	Doctype    string
	DocVersion int
}

// ParseSampleName derives a SampleID from a sample filename of the form
// <submission>.<doctype>.<version>.batch.json. The namespace comes from the
// enclosing directory, not the filename, so the caller supplies it.
func ParseSampleName(namespace, name string) (SampleID, error) {
	stem := strings.Split(name, sampleSuffix)[0]
	fields := strings.Split(stem, ".")
	if len(fields) != 3 {
		return SampleID{}, fmt.Errorf("malformed sample filename %q: want <submission>.<doctype>.<version>%s", name, sampleSuffix)
	}

	version, err := strconv.Atoi(fields[2])
	if err != nil || version < 0 {
		return SampleID{}, fmt.Errorf("malformed sample filename %q: version %q is not a non-negative integer", name, fields[2])
	}

	return SampleID{
		Namespace:  namespace,
		Doctype:    fields[1],
		DocVersion: version,
	}, nil
}

// Key returns the report key for this sample.
func (s SampleID) Key() string {
	return fmt.Sprintf("%s.%s.%d", s.Namespace, s.Doctype, s.DocVersion)
}

// Route returns the submission route. Version 0 means "unversioned": the
// route carries no trailing version segment.
func (s SampleID) Route() string {
	route := fmt.Sprintf("/submit/%s/%s", s.Namespace, s.Doctype)
	if s.DocVersion > 0 {
		route = fmt.Sprintf("%s/%d", route, s.DocVersion)
	}
	return route
}
