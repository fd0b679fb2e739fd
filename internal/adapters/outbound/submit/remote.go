package submit

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

// Remote implements domain.SubmissionClient over HTTP against a running
// ingestion endpoint.
type Remote struct {
	base   string
	client *http.Client
}

// NewRemote targets http://<host>:<port>.
func NewRemote(host string, port int) *Remote {
	return &Remote{
		base:   fmt.Sprintf("http://%s:%d", host, port),
		client: &http.Client{},
	}
}

func (r *Remote) Submit(route string, body []byte) (int, string, error) {
	resp, err := r.client.Post(r.base+route, "application/json", bytes.NewReader(body))
	if err != nil {
		return 0, "", fmt.Errorf("posting to %s: %w", route, err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", fmt.Errorf("reading response from %s: %w", route, err)
	}
	return resp.StatusCode, string(text), nil
}
