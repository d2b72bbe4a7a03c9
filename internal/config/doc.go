// Package config loads, normalizes, and validates tmdbkit configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the TMDB_API_KEY environment
// fallback. Language and region settings are canonicalized to the tags TMDB
// expects so every command sends the same parameter spelling.
//
// Always obtain settings through this package so the CLI receives sanitized
// values and clear validation errors.
package config
