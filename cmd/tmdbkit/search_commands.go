package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tmdbkit/internal/logging"
	"tmdbkit/internal/match"
	"tmdbkit/tmdb"
)

type searchFlags struct {
	page             int
	year             int
	primaryYear      int
	firstAirDateYear int
	adult            bool
	searchType       string
	best             bool
	minVotes         int
}

func (f *searchFlags) options(c *commandContext, lang string) *tmdb.SearchOptions {
	adult := f.adult
	if cfg, err := c.ensureConfig(); err == nil && cfg.TMDB.IncludeAdult {
		adult = true
	}
	return &tmdb.SearchOptions{
		Page:               f.page,
		Language:           lang,
		IncludeAdult:       adult,
		Year:               f.year,
		PrimaryReleaseYear: f.primaryYear,
		FirstAirDateYear:   f.firstAirDateYear,
		SearchType:         tmdb.SearchType(f.searchType),
	}
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	flags := &searchFlags{}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search TMDB by name",
	}
	pf := cmd.PersistentFlags()
	pf.IntVar(&flags.page, "page", 0, "Result page (1-based)")
	pf.BoolVar(&flags.adult, "adult", false, "Include adult titles")
	pf.BoolVar(&flags.best, "best", false, "Keep only the most confident title match (movie and tv)")
	pf.IntVar(&flags.minVotes, "min-votes", 0, "With --best, reject matches with fewer votes")

	movie := newSearchSubcommand(ctx, flags, "movie <query>", "Search movies by title",
		func(rc context.Context, s *tmdb.SearchService, q string, opts *tmdb.SearchOptions) (renderable, error) {
			page, err := s.Movie(rc, q, opts)
			if err != nil {
				return renderable{}, err
			}
			if flags.best {
				year := opts.Year
				if year == 0 {
					year = opts.PrimaryReleaseYear
				}
				best, err := ctx.bestMatch(q, match.FromMovies(page.Results), year, flags.minVotes)
				if err != nil {
					return renderable{}, err
				}
				page.Results = keepMovie(page.Results, best.ID)
			}
			return moviePageView(page), nil
		})
	movie.Flags().IntVar(&flags.year, "year", 0, "Release year")
	movie.Flags().IntVar(&flags.primaryYear, "primary-year", 0, "Primary release year")
	movie.Flags().StringVar(&flags.searchType, "search-type", "", "Matching mode: phrase or ngram")

	tv := newSearchSubcommand(ctx, flags, "tv <query>", "Search TV shows by name",
		func(rc context.Context, s *tmdb.SearchService, q string, opts *tmdb.SearchOptions) (renderable, error) {
			page, err := s.TV(rc, q, opts)
			if err != nil {
				return renderable{}, err
			}
			if flags.best {
				best, err := ctx.bestMatch(q, match.FromShows(page.Results), opts.FirstAirDateYear, flags.minVotes)
				if err != nil {
					return renderable{}, err
				}
				page.Results = keepShow(page.Results, best.ID)
			}
			return tvPageView(page), nil
		})
	tv.Flags().IntVar(&flags.firstAirDateYear, "year", 0, "First air date year")
	tv.Flags().StringVar(&flags.searchType, "search-type", "", "Matching mode: phrase or ngram")

	person := newSearchSubcommand(ctx, flags, "person <query>", "Search people by name",
		func(rc context.Context, s *tmdb.SearchService, q string, opts *tmdb.SearchOptions) (renderable, error) {
			page, err := s.Person(rc, q, opts)
			if err != nil {
				return renderable{}, err
			}
			return personPageView(page), nil
		})
	person.Flags().StringVar(&flags.searchType, "search-type", "", "Matching mode: phrase or ngram")

	collection := newSearchSubcommand(ctx, flags, "collection <query>", "Search movie collections",
		func(rc context.Context, s *tmdb.SearchService, q string, opts *tmdb.SearchOptions) (renderable, error) {
			page, err := s.Collection(rc, q, opts)
			if err != nil {
				return renderable{}, err
			}
			return collectionPageView(page), nil
		})

	company := newSearchSubcommand(ctx, flags, "company <query>", "Search production companies",
		func(rc context.Context, s *tmdb.SearchService, q string, opts *tmdb.SearchOptions) (renderable, error) {
			page, err := s.Company(rc, q, opts)
			if err != nil {
				return renderable{}, err
			}
			return companyPageView(page), nil
		})

	keyword := newSearchSubcommand(ctx, flags, "keyword <query>", "Search keywords",
		func(rc context.Context, s *tmdb.SearchService, q string, opts *tmdb.SearchOptions) (renderable, error) {
			page, err := s.Keyword(rc, q, opts)
			if err != nil {
				return renderable{}, err
			}
			return keywordPageView(page), nil
		})

	multi := newSearchSubcommand(ctx, flags, "multi <query>", "Search movies, TV shows and people together",
		func(rc context.Context, s *tmdb.SearchService, q string, opts *tmdb.SearchOptions) (renderable, error) {
			page, err := s.Multi(rc, q, opts)
			if err != nil {
				return renderable{}, err
			}
			return mediaPageView(page), nil
		})

	cmd.AddCommand(movie, tv, person, collection, company, keyword, multi)
	return cmd
}

type searchFunc func(context.Context, *tmdb.SearchService, string, *tmdb.SearchOptions) (renderable, error)

func newSearchSubcommand(ctx *commandContext, flags *searchFlags, use, short string, fn searchFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return ctx.run(cmd, func(rc context.Context, client *tmdb.Client, lang string) (renderable, error) {
				return fn(rc, client.Search(), query, flags.options(ctx, lang))
			})
		},
	}
}

// bestMatch picks the most confident candidate or reports that none passed.
func (c *commandContext) bestMatch(query string, candidates []match.Candidate, year, minVotes int) (match.Result, error) {
	best, ok := match.Best(c.logger, query, candidates, match.Options{Year: year, MinVoteCount: minVotes})
	if !ok {
		return match.Result{}, fmt.Errorf("no confident match for %q among %d results", query, len(candidates))
	}
	c.logger.Info("best match selected",
		logging.Int("tmdb_id", best.ID),
		logging.String("match", match.Describe(best)),
		logging.Float64("score", best.Score),
	)
	return best, nil
}

func keepMovie(movies []tmdb.BaseMovie, id int) []tmdb.BaseMovie {
	for _, m := range movies {
		if m.ID == id {
			return []tmdb.BaseMovie{m}
		}
	}
	return []tmdb.BaseMovie{}
}

func keepShow(shows []tmdb.BaseTvShow, id int) []tmdb.BaseTvShow {
	for _, s := range shows {
		if s.ID == id {
			return []tmdb.BaseTvShow{s}
		}
	}
	return []tmdb.BaseTvShow{}
}
