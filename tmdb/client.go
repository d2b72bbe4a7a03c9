package tmdb

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"tmdbkit/internal/logging"
)

const (
	// DefaultBaseURL is the TMDB v3 API root.
	DefaultBaseURL = "https://api.themoviedb.org/3/"
	// ParamAPIKey is the query parameter carrying the API key.
	ParamAPIKey = "api_key"

	defaultHTTPTimeout = 10 * time.Second
)

// HTTPClientFactory returns the base HTTP client for a new bundle. It is
// called once per configuration epoch; the returned client is copied, never
// modified.
type HTTPClientFactory func() *http.Client

// Client is the entry point to the TMDB API. It is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	newHTTP    HTTPClientFactory
	logger     *slog.Logger
	httpLogger *slog.Logger

	mu      sync.Mutex
	apiKey  string
	debug   bool
	current *bundle
}

// Option configures a Client.
type Option func(*Client) error

// WithHTTPClientFactory overrides how the base *http.Client is created. The
// authentication step is still applied to whatever client the factory returns.
func WithHTTPClientFactory(factory HTTPClientFactory) Option {
	return func(c *Client) error {
		if factory != nil {
			c.newHTTP = factory
		}
		return nil
	}
}

// WithHTTPClient uses a copy of client as the base for every bundle.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) error {
		if client != nil {
			c.newHTTP = func() *http.Client { return client }
		}
		return nil
	}
}

// WithBaseURL points the client at a different API root, e.g. a test server.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil
		}
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		parsed, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("tmdb: parse base url: %w", err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("tmdb: base url %q must be absolute", raw)
		}
		c.baseURL = parsed
		return nil
	}
}

// WithLogger routes request logging to logger. Verbose exchange logging is
// emitted at debug level and only when SetDebug(true) is in effect.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}

// New creates a Client. Call SetAPIKey before issuing requests.
func New(opts ...Option) (*Client, error) {
	base, err := url.Parse(DefaultBaseURL)
	if err != nil {
		return nil, fmt.Errorf("tmdb: parse base url: %w", err)
	}
	c := &Client{
		baseURL: base,
		newHTTP: defaultHTTPClient,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	c.logger = logging.NewComponentLogger(c.logger, "tmdb")
	c.httpLogger = c.logger.With(logging.String("subsystem", "http"))
	return c, nil
}

func defaultHTTPClient() *http.Client {
	return &http.Client{Timeout: defaultHTTPTimeout}
}

// SetAPIKey sets the TMDB API key. The key is not validated; TMDB rejects bad
// keys with a 401. The next accessor call builds a fresh HTTP client.
func (c *Client) SetAPIKey(key string) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = key
	c.current = nil
	return c
}

// SetDebug toggles verbose logging of request and response bodies. The next
// accessor call builds a fresh HTTP client.
func (c *Client) SetDebug(enabled bool) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debug = enabled
	c.current = nil
	return c
}

// APIKey returns the configured key.
func (c *Client) APIKey() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apiKey
}

// bundle returns the HTTP client bundle for the current configuration,
// building it if a setter invalidated the previous one.
func (c *Client) bundle() *bundle {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		c.current = c.buildLocked()
	}
	return c.current
}

func (c *Client) buildLocked() *bundle {
	base := c.newHTTP()
	if base == nil {
		base = defaultHTTPClient()
	}
	httpClient := *base

	next := httpClient.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	if c.debug {
		next = &debugTransport{next: next, logger: c.httpLogger}
	}
	httpClient.Transport = &apiKeyTransport{apiKey: c.apiKey, next: next}

	c.logger.Debug("tmdb http client built",
		logging.Bool("debug", c.debug),
		logging.Bool("api_key_set", c.apiKey != ""),
		logging.String("base_url", c.baseURL.String()),
	)

	return &bundle{
		baseURL: c.baseURL,
		http:    &httpClient,
		codec:   jsonCodec{},
		logger:  c.logger,
	}
}

// Configuration returns the accessor for GET /configuration.
func (c *Client) Configuration() *ConfigurationService {
	return &ConfigurationService{b: c.bundle()}
}

// Find returns the accessor for lookups by external ID.
func (c *Client) Find() *FindService {
	return &FindService{b: c.bundle()}
}

// Movies returns the accessor for /movie endpoints.
func (c *Client) Movies() *MoviesService {
	return &MoviesService{b: c.bundle()}
}

// People returns the accessor for /person endpoints.
func (c *Client) People() *PeopleService {
	return &PeopleService{b: c.bundle()}
}

// Search returns the accessor for /search endpoints.
func (c *Client) Search() *SearchService {
	return &SearchService{b: c.bundle()}
}

// TV returns the accessor for /tv show endpoints.
func (c *Client) TV() *TVService {
	return &TVService{b: c.bundle()}
}

// TVSeasons returns the accessor for /tv/{id}/season endpoints.
func (c *Client) TVSeasons() *TVSeasonsService {
	return &TVSeasonsService{b: c.bundle()}
}

// TVEpisodes returns the accessor for /tv/{id}/season/{n}/episode endpoints.
func (c *Client) TVEpisodes() *TVEpisodesService {
	return &TVEpisodesService{b: c.bundle()}
}

// Discover returns the accessor for /discover endpoints.
func (c *Client) Discover() *DiscoverService {
	return &DiscoverService{b: c.bundle()}
}

// Collections returns the accessor for /collection endpoints.
func (c *Client) Collections() *CollectionsService {
	return &CollectionsService{b: c.bundle()}
}
