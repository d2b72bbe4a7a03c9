package main

import (
	"errors"
	"fmt"
	"net/http"

	"tmdbkit/internal/config"
	"tmdbkit/tmdb"
)

// describeError appends a next step to errors a user can act on.
func describeError(err error) string {
	var statusErr *tmdb.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Sprintf("%v\nhint: %s", err, config.MissingAPIKeyHint())
		case http.StatusNotFound:
			return fmt.Sprintf("%v\nhint: check the id; TMDB ids differ between movies, shows and people", err)
		case http.StatusTooManyRequests:
			if statusErr.RetryAfter != "" {
				return fmt.Sprintf("%v\nhint: rate limited, retry after %ss", err, statusErr.RetryAfter)
			}
			return fmt.Sprintf("%v\nhint: rate limited, wait before retrying", err)
		}
	}
	var decodeErr *tmdb.DecodeError
	if errors.As(err, &decodeErr) {
		return fmt.Sprintf("%v\nhint: rerun with --debug to log the raw response", err)
	}
	return err.Error()
}
