package testsupport

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"
)

// Request is one call observed by a TMDBServer.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Query    url.Values
}

// APIKey returns the api_key parameter the request carried.
func (r Request) APIKey() string {
	return r.Query.Get("api_key")
}

type response struct {
	status int
	body   []byte
}

// TMDBServer is an httptest server that answers TMDB paths with canned JSON
// and records every request. Paths are relative to the API root, e.g.
// "search/movie". Unknown paths get TMDB's 404 payload.
type TMDBServer struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]response
	requests []Request
	validKey string
}

// NewTMDBServer starts a server and registers its shutdown with t.
func NewTMDBServer(t testing.TB) *TMDBServer {
	t.Helper()
	s := &TMDBServer{routes: make(map[string]response)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// BaseURL is the API root to hand to the client.
func (s *TMDBServer) BaseURL() string {
	return s.URL + "/3/"
}

// Handle answers path with status and body.
func (s *TMDBServer) Handle(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[strings.Trim(path, "/")] = response{status: status, body: []byte(body)}
}

// HandleFixture answers path with 200 and the contents of fixture.
func (s *TMDBServer) HandleFixture(t testing.TB, path, fixture string) {
	t.Helper()
	data, err := os.ReadFile(fixture)
	if err != nil {
		t.Fatalf("read fixture %s: %v", fixture, err)
	}
	s.Handle(path, http.StatusOK, string(data))
}

// RequireKey makes the server reject requests whose api_key differs from key
// with TMDB's 401 payload.
func (s *TMDBServer) RequireKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.validKey = key
}

// Requests returns a copy of every request seen so far.
func (s *TMDBServer) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Last returns the most recent request. It fails the test if there is none.
func (s *TMDBServer) Last(t testing.TB) Request {
	t.Helper()
	reqs := s.Requests()
	if len(reqs) == 0 {
		t.Fatalf("no requests recorded")
	}
	return reqs[len(reqs)-1]
}

func (s *TMDBServer) serve(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/3"), "/")

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:   r.Method,
		Path:     path,
		RawQuery: r.URL.RawQuery,
		Query:    r.URL.Query(),
	})
	resp, ok := s.routes[path]
	validKey := s.validKey
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json;charset=utf-8")
	if validKey != "" && r.URL.Query().Get("api_key") != validKey {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"status_code":7,"status_message":"Invalid API key: You must be granted a valid key.","success":false}`)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"status_code":34,"status_message":"The resource you requested could not be found.","success":false}`)
		return
	}
	w.WriteHeader(resp.status)
	_, _ = w.Write(resp.body)
}
