// Package match ranks TMDB search results against the title a user typed.
//
// Scores combine token cosine similarity, an exact-title bonus, release year
// proximity, and TMDB's own vote statistics. Best applies confidence gates so
// an obscure partial match is reported as "no match" rather than guessed.
package match
