package tmdb

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"tmdbkit/internal/logging"
)

var _ http.RoundTripper = (*apiKeyTransport)(nil)

// apiKeyTransport appends the api_key query parameter to every request it
// dispatches. It works on a clone so the caller's request is never modified.
type apiKeyTransport struct {
	apiKey string
	next   http.RoundTripper
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.URL.RawQuery = appendAPIKey(out.URL.RawQuery, t.apiKey)
	return t.next.RoundTrip(out)
}

// appendAPIKey adds api_key after the existing parameters, leaving their order
// intact. A query that already carries the same key (e.g. a redirect target
// built from a signed URL) is returned unchanged.
func appendAPIKey(rawQuery, apiKey string) string {
	param := ParamAPIKey + "=" + url.QueryEscape(apiKey)
	if rawQuery == "" {
		return param
	}
	if values, err := url.ParseQuery(rawQuery); err == nil {
		for _, existing := range values[ParamAPIKey] {
			if existing == apiKey {
				return rawQuery
			}
		}
	}
	return rawQuery + "&" + param
}

// redactURL masks the api_key value for logs and errors.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	clone := *u
	if clone.RawQuery != "" {
		parts := strings.Split(clone.RawQuery, "&")
		for i, part := range parts {
			if strings.HasPrefix(part, ParamAPIKey+"=") {
				parts[i] = ParamAPIKey + "=REDACTED"
			}
		}
		clone.RawQuery = strings.Join(parts, "&")
	}
	return clone.String()
}

const debugBodyLimit = 64 << 10

// debugTransport logs full request and response bodies. It is only installed
// while the client's debug flag is set.
type debugTransport struct {
	next   http.RoundTripper
	logger *slog.Logger
}

func (t *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	requestID, ok := logging.RequestIDFromContext(ctx)
	if !ok {
		requestID = uuid.NewString()
	}
	logger := t.logger.With(logging.String(logging.FieldCorrelationID, requestID))

	reqBody, err := drainBody(&req.Body)
	if err != nil {
		return nil, err
	}
	logger.Debug("tmdb request",
		logging.String("method", req.Method),
		logging.String("url", redactURL(req.URL)),
		logging.String("body", string(reqBody)),
	)

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	latency := time.Since(start)
	if err != nil {
		logger.Debug("tmdb request failed",
			logging.String("url", redactURL(req.URL)),
			logging.Duration("latency", latency),
			logging.Error(err),
		)
		return nil, err
	}

	respBody, err := drainBody(&resp.Body)
	if err != nil {
		resp.Body.Close()
		return nil, err
	}
	logger.Debug("tmdb response",
		logging.String("url", redactURL(req.URL)),
		logging.Int("status", resp.StatusCode),
		logging.Duration("latency", latency),
		logging.String("content_type", resp.Header.Get("Content-Type")),
		logging.String("body", truncateBody(respBody)),
	)
	return resp, nil
}

// drainBody reads *body fully and replaces it with an in-memory copy.
func drainBody(body *io.ReadCloser) ([]byte, error) {
	if *body == nil || *body == http.NoBody {
		return nil, nil
	}
	data, err := io.ReadAll(*body)
	(*body).Close()
	if err != nil {
		return nil, err
	}
	*body = io.NopCloser(bytes.NewReader(data))
	return data, nil
}

func truncateBody(data []byte) string {
	if len(data) <= debugBodyLimit {
		return string(data)
	}
	return string(data[:debugBodyLimit]) + "...(truncated)"
}
