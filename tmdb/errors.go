package tmdb

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// StatusError is returned when TMDB answers with a non-2xx status. The raw
// body is kept for diagnosis; TMDB's own status_code/status_message fields
// are extracted when present.
type StatusError struct {
	Method      string
	Path        string
	StatusCode  int
	Status      string
	Body        []byte
	TMDBCode    int
	TMDBMessage string
	RetryAfter  string
}

func newStatusError(method, path string, resp *http.Response, body []byte) *StatusError {
	e := &StatusError{
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       body,
		RetryAfter: resp.Header.Get("Retry-After"),
	}
	var payload struct {
		StatusCode    int    `json:"status_code"`
		StatusMessage string `json:"status_message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		e.TMDBCode = payload.StatusCode
		e.TMDBMessage = strings.TrimSpace(payload.StatusMessage)
	}
	return e
}

func (e *StatusError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d", e.StatusCode)
	}
	msg := fmt.Sprintf("tmdb: %s %s returned %s", e.Method, e.Path, status)
	switch {
	case e.TMDBMessage != "":
		msg += ": " + e.TMDBMessage
	case len(e.Body) > 0:
		msg += ": " + strings.TrimSpace(string(truncate(e.Body, 256)))
	}
	return msg
}

// DecodeError is returned when a successful response cannot be decoded into
// the expected result type. Body holds the raw response.
type DecodeError struct {
	Path       string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("tmdb: decode %s response: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func truncate(data []byte, limit int) []byte {
	if len(data) <= limit {
		return data
	}
	return data[:limit]
}
