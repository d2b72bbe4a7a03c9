// Package tmdb is a client for The Movie Database (TMDB) v3 REST API.
//
// Create a Client, set the API key, and call one of the service accessors:
//
//	client, err := tmdb.New()
//	if err != nil {
//		return err
//	}
//	client.SetAPIKey(os.Getenv("TMDB_API_KEY"))
//	page, err := client.Search().Movie(ctx, "Fight Club", &tmdb.SearchOptions{Year: 1999})
//
// The Client lazily builds one HTTP client per configuration: the first
// accessor call constructs it and later calls reuse it until SetAPIKey or
// SetDebug invalidates it. Every request passes through a RoundTripper that
// appends the api_key query parameter, so callers never handle credentials
// per call. WithHTTPClientFactory substitutes the underlying *http.Client
// (timeouts, proxies, instrumentation) without bypassing that step.
//
// Accessors return cheap values bound to the HTTP client current at the time
// of the call. Fetch a new accessor after changing the configuration; one
// obtained earlier keeps using the old credentials.
//
// Non-2xx responses are returned as *StatusError and undecodable bodies as
// *DecodeError. The package performs no caching, retries, or rate limiting.
package tmdb
