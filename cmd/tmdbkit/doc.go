// Package main hosts the tmdbkit CLI.
//
// Every command maps onto one tmdb service accessor: it loads configuration,
// builds a client with the configured key and language, issues the call, and
// renders the result as a table on a terminal or as JSON otherwise. Keep the
// request logic in the tmdb package; commands here only parse flags and print.
package main
