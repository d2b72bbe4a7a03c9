package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tmdbkit/tmdb"
)

type discoverFlags struct {
	page          int
	year          int
	sortBy        string
	withGenres    []string
	withoutGenres []string
	minVotes      int
	minRating     float64
	originalLang  string
}

func newDiscoverCommand(ctx *commandContext) *cobra.Command {
	flags := &discoverFlags{}
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Browse movies or shows by filter",
	}
	pf := cmd.PersistentFlags()
	pf.IntVar(&flags.page, "page", 0, "Result page (1-based)")
	pf.IntVar(&flags.year, "year", 0, "Release or first air year")
	pf.StringVar(&flags.sortBy, "sort-by", string(tmdb.SortPopularityDesc), "Sort order, e.g. vote_average.desc")
	pf.StringSliceVar(&flags.withGenres, "with-genres", nil, "Genre ids to require")
	pf.StringSliceVar(&flags.withoutGenres, "without-genres", nil, "Genre ids to exclude")
	pf.IntVar(&flags.minVotes, "min-votes", 0, "Minimum vote count")
	pf.Float64Var(&flags.minRating, "min-rating", 0, "Minimum vote average")
	pf.StringVar(&flags.originalLang, "original-language", "", "Original language (ISO 639-1)")

	cmd.AddCommand(&cobra.Command{
		Use:   "movie",
		Short: "Discover movies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, func(rc context.Context, client *tmdb.Client, lang string) (renderable, error) {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return renderable{}, err
				}
				page, err := client.Discover().Movie(rc, &tmdb.DiscoverMovieOptions{
					Page:                 flags.page,
					Language:             lang,
					Region:               cfg.TMDB.Region,
					SortBy:               tmdb.SortBy(flags.sortBy),
					IncludeAdult:         cfg.TMDB.IncludeAdult,
					PrimaryReleaseYear:   flags.year,
					VoteCountGTE:         flags.minVotes,
					VoteAverageGTE:       flags.minRating,
					WithGenres:           flags.withGenres,
					WithoutGenres:        flags.withoutGenres,
					WithOriginalLanguage: flags.originalLang,
				})
				if err != nil {
					return renderable{}, fmt.Errorf("discover movies: %w", err)
				}
				return moviePageView(page), nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "tv",
		Short: "Discover TV shows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, func(rc context.Context, client *tmdb.Client, lang string) (renderable, error) {
				page, err := client.Discover().TV(rc, &tmdb.DiscoverTVOptions{
					Page:                 flags.page,
					Language:             lang,
					SortBy:               tmdb.SortBy(flags.sortBy),
					FirstAirDateYear:     flags.year,
					VoteCountGTE:         flags.minVotes,
					VoteAverageGTE:       flags.minRating,
					WithGenres:           flags.withGenres,
					WithoutGenres:        flags.withoutGenres,
					WithOriginalLanguage: flags.originalLang,
				})
				if err != nil {
					return renderable{}, fmt.Errorf("discover tv: %w", err)
				}
				return tvPageView(page), nil
			})
		},
	})
	return cmd
}
