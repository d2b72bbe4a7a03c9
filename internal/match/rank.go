package match

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"tmdbkit/internal/logging"
	"tmdbkit/tmdb"
)

// Candidate is the subset of a search result that scoring looks at.
type Candidate struct {
	ID          int
	Title       string
	Original    string
	Year        int
	VoteAverage float64
	VoteCount   int
}

// Result is a scored candidate.
type Result struct {
	Candidate
	Score      float64
	Similarity float64
	Exact      bool
}

// Options tune ranking. Year is the expected release year (0 = unknown).
// MinVoteCount rejects matches TMDB users have barely rated.
type Options struct {
	Year         int
	MinVoteCount int
}

const (
	exactMinVoteAverage   = 2.0
	partialMinVoteAverage = 3.0
	partialMinSimilarity  = 0.5
)

// FromMovies converts movie search results into candidates.
func FromMovies(movies []tmdb.BaseMovie) []Candidate {
	out := make([]Candidate, 0, len(movies))
	for _, m := range movies {
		out = append(out, Candidate{
			ID:          m.ID,
			Title:       m.Title,
			Original:    m.OriginalTitle,
			Year:        m.ReleaseDate.Year(),
			VoteAverage: m.VoteAverage,
			VoteCount:   m.VoteCount,
		})
	}
	return out
}

// FromShows converts TV search results into candidates.
func FromShows(shows []tmdb.BaseTvShow) []Candidate {
	out := make([]Candidate, 0, len(shows))
	for _, s := range shows {
		out = append(out, Candidate{
			ID:          s.ID,
			Title:       s.Name,
			Original:    s.OriginalName,
			Year:        s.FirstAirDate.Year(),
			VoteAverage: s.VoteAverage,
			VoteCount:   s.VoteCount,
		})
	}
	return out
}

// Rank scores every candidate and returns them best first. Ties keep the
// order TMDB returned.
func Rank(query string, candidates []Candidate, opts Options) []Result {
	queryPrint := newFingerprint(query)
	queryNorm := normalizeTitle(query)

	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		r := Result{Candidate: c}
		for _, title := range []string{c.Title, c.Original} {
			if title == "" {
				continue
			}
			if queryNorm != "" && normalizeTitle(title) == queryNorm {
				r.Exact = true
			}
			r.Similarity = math.Max(r.Similarity, cosine(queryPrint, newFingerprint(title)))
		}
		if r.Exact {
			r.Similarity = 1
		}
		r.Score = score(r, opts)
		results = append(results, r)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func score(r Result, opts Options) float64 {
	s := 2 * r.Similarity
	if r.Exact {
		s++
	}
	if opts.Year > 0 && r.Year > 0 {
		switch diff := r.Year - opts.Year; {
		case diff == 0:
			s += 0.5
		case diff == 1 || diff == -1:
			s += 0.25
		default:
			s -= 0.5
		}
	}
	s += r.VoteAverage / 10
	s += math.Min(float64(r.VoteCount)/1000, 1)
	return s
}

// Best returns the highest ranked candidate that passes the confidence gates.
// An exact title must have a vote average of at least 2; a partial match needs
// at least 3 and a title similarity of at least 0.5.
func Best(logger *slog.Logger, query string, candidates []Candidate, opts Options) (Result, bool) {
	if logger == nil {
		logger = logging.NewNop()
	}
	ranked := Rank(query, candidates, opts)
	if len(ranked) == 0 {
		return Result{}, false
	}
	for idx, r := range ranked {
		logger.Debug("match candidate",
			logging.Int("rank", idx),
			logging.Int("tmdb_id", r.ID),
			logging.String("title", r.Title),
			logging.Float64("score", r.Score),
			logging.Float64("similarity", r.Similarity),
			logging.Bool("exact", r.Exact),
		)
	}

	best := ranked[0]
	reject := func(reason string) (Result, bool) {
		logger.Debug("match rejected",
			logging.Int("tmdb_id", best.ID),
			logging.String("title", best.Title),
			logging.String("reason", reason),
		)
		return Result{}, false
	}

	if opts.MinVoteCount > 0 && best.VoteCount < opts.MinVoteCount {
		return reject("vote count below threshold")
	}
	if best.Exact {
		if best.VoteAverage < exactMinVoteAverage {
			return reject("exact title with low vote average")
		}
		return best, true
	}
	if best.VoteAverage < partialMinVoteAverage {
		return reject("partial title with low vote average")
	}
	if best.Similarity < partialMinSimilarity {
		return reject("title similarity too low")
	}
	return best, true
}

// Describe renders a one-line summary of r, e.g. "Fight Club (1999) exact".
func Describe(r Result) string {
	out := r.Title
	if r.Year > 0 {
		out += fmt.Sprintf(" (%d)", r.Year)
	}
	if r.Exact {
		out += " exact"
	}
	return out
}
