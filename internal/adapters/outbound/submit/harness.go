package submit

import (
	"bytes"
	"net/http"
	"net/http/httptest"
)

// Harness implements domain.SubmissionClient against an in-process handler.
// Requests are dispatched straight through ServeHTTP, so no network I/O
// happens and no shared state is touched.
type Harness struct {
	handler http.Handler
}

// NewHarness wraps an in-process ingestion app.
func NewHarness(handler http.Handler) *Harness {
	return &Harness{handler: handler}
}

func (h *Harness) Submit(route string, body []byte) (int, string, error) {
	req := httptest.NewRequest(http.MethodPost, route, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	return rec.Code, rec.Body.String(), nil
}
