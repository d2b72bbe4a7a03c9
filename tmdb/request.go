package tmdb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tmdbkit/internal/logging"
)

// bundle is the immutable HTTP client, base URL, and codec built for one
// configuration epoch. Services hold a pointer to the bundle they were
// created with.
type bundle struct {
	baseURL *url.URL
	http    *http.Client
	codec   codec
	logger  *slog.Logger
}

// route declares one endpoint: an HTTP method and a path template relative to
// the API root, with {placeholders} for path parameters.
type route struct {
	method   string
	template string
}

func get(template string) route {
	return route{method: http.MethodGet, template: template}
}

// expand substitutes args, in order, for the template's placeholders. Each
// argument is path-escaped.
func (r route) expand(args ...string) (string, error) {
	var b strings.Builder
	rest := r.template
	used := 0
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("tmdb: unterminated placeholder in %q", r.template)
		}
		if used >= len(args) {
			return "", fmt.Errorf("tmdb: missing value for %s in %q", rest[open:open+end+1], r.template)
		}
		value := strings.TrimSpace(args[used])
		if value == "" {
			return "", fmt.Errorf("tmdb: empty value for %s in %q", rest[open:open+end+1], r.template)
		}
		if value == "." || value == ".." {
			return "", fmt.Errorf("tmdb: invalid value %q for %s in %q", value, rest[open:open+end+1], r.template)
		}
		b.WriteString(rest[:open])
		b.WriteString(url.PathEscape(value))
		rest = rest[open+end+1:]
		used++
	}
	if used != len(args) {
		return "", fmt.Errorf("tmdb: %d path values for %q, want %d", len(args), r.template, used)
	}
	return b.String(), nil
}

// query accumulates optional parameters, dropping zero values so TMDB applies
// its own defaults.
type query url.Values

func (q query) set(key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		url.Values(q).Set(key, value)
	}
}

func (q query) setInt(key string, value int) {
	if value > 0 {
		url.Values(q).Set(key, strconv.Itoa(value))
	}
}

func (q query) setFloat(key string, value float64) {
	if value > 0 {
		url.Values(q).Set(key, strconv.FormatFloat(value, 'f', -1, 64))
	}
}

func (q query) setBool(key string, value bool) {
	if value {
		url.Values(q).Set(key, "true")
	}
}

func (q query) setList(key string, values []string) {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) > 0 {
		url.Values(q).Set(key, strings.Join(parts, ","))
	}
}

func (q query) setDate(key string, value Date) {
	if !value.IsZero() {
		url.Values(q).Set(key, value.String())
	}
}

// ids formats integer identifiers for path placeholders.
func ids(values ...int) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Itoa(v)
	}
	return out
}

// normalizer is implemented by result types that fix up decoded values, e.g.
// replacing a null results array with an empty slice.
type normalizer interface {
	normalize()
}

const errorBodyLimit = 64 << 10

// call issues one request through the bundle and decodes the response into T.
func call[T any](ctx context.Context, b *bundle, r route, pathArgs []string, q query) (*T, error) {
	path, err := r.expand(pathArgs...)
	if err != nil {
		return nil, err
	}
	endpoint := b.baseURL.JoinPath(path)
	if len(q) > 0 {
		endpoint.RawQuery = url.Values(q).Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("tmdb: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := b.http.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("tmdb: execute request %s (latency=%v): %w", path, latency, err)
	}
	defer resp.Body.Close()

	logger := logging.WithContext(ctx, b.logger)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		logger.Debug("tmdb request rejected",
			logging.String("path", path),
			logging.Int("status", resp.StatusCode),
			logging.Duration("latency", latency),
		)
		return nil, newStatusError(r.method, path, resp, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tmdb: read response %s (latency=%v): %w", path, latency, err)
	}

	var payload T
	if err := b.codec.Decode(body, &payload); err != nil {
		return nil, &DecodeError{Path: path, StatusCode: resp.StatusCode, Body: body, Err: err}
	}
	if n, ok := any(&payload).(normalizer); ok {
		n.normalize()
	}

	logger.Debug("tmdb request complete",
		logging.String("path", path),
		logging.Int("status", resp.StatusCode),
		logging.Duration("latency", latency),
	)
	return &payload, nil
}
