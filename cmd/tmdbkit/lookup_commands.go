package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tmdbkit/tmdb"
)

func parseID(name, value string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", name, value)
	}
	return id, nil
}

func newMovieCommand(ctx *commandContext) *cobra.Command {
	var appendTo []string
	cmd := &cobra.Command{
		Use:   "movie <id>",
		Short: "Show a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("movie id", args[0])
			if err != nil {
				return err
			}
			return ctx.run(cmd, func(rc context.Context, client *tmdb.Client, lang string) (renderable, error) {
				movie, err := client.Movies().Summary(rc, id, &tmdb.DetailOptions{Language: lang, AppendToResponse: appendTo})
				if err != nil {
					return renderable{}, fmt.Errorf("movie %d: %w", id, err)
				}
				return movieView(movie), nil
			})
		},
	}
	cmd.Flags().StringSliceVar(&appendTo, "append", []string{tmdb.AppendCredits}, "Sub-resources to embed (credits, images, videos, ...)")

	cmd.AddCommand(&cobra.Command{
		Use:       "list <popular|top-rated|upcoming|now-playing>",
		Short:     "List movies from a TMDB chart",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"popular", "top-rated", "upcoming", "now-playing"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			return ctx.run(cmd, func(rc context.Context, client *tmdb.Client, lang string) (renderable, error) {
				svc := client.Movies()
				opts := &tmdb.PageOptions{Language: lang}
				var (
					page *tmdb.MovieResultsPage
					err  error
				)
				switch kind {
				case "popular":
					page, err = svc.Popular(rc, opts)
				case "top-rated":
					page, err = svc.TopRated(rc, opts)
				case "upcoming":
					page, err = svc.Upcoming(rc, opts)
				case "now-playing":
					page, err = svc.NowPlaying(rc, opts)
				default:
					return renderable{}, fmt.Errorf("unknown movie list %q", kind)
				}
				if err != nil {
					return renderable{}, err
				}
				return moviePageView(page), nil
			})
		},
	})
	return cmd
}

func newTVCommand(ctx *commandContext) *cobra.Command {
	var appendTo []string
	cmd := &cobra.Command{
		Use:   "tv <id>",
		Short: "Show a TV series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("tv id", args[0])
			if err != nil {
				return err
			}
			return ctx.run(cmd, func(rc context.Context, client *tmdb.Client, lang string) (renderable, error) {
				show, err := client.TV().Summary(rc, id, &tmdb.DetailOptions{Language: lang, AppendToResponse: appendTo})
				if err != nil {
					return renderable{}, fmt.Errorf("tv %d: %w", id, err)
				}
				return tvView(show), nil
			})
		},
	}
	cmd.Flags().StringSliceVar(&appendTo, "append", []string{tmdb.AppendCredits}, "Sub-resources to embed (credits, images, videos, ...)")

	cmd.AddCommand(&cobra.Command{
		Use:       "list <popular|top-rated|airing-today|on-the-air>",
		Short:     "List shows from a TMDB chart",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"popular", "top-rated", "airing-today", "on-the-air"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			return ctx.run(cmd, func(rc context.Context, client *tmdb.Client, lang string) (renderable, error) {
				svc := client.TV()
				opts := &tmdb.PageOptions{Language: lang}
				var (
					page *tmdb.TvShowResultsPage
					err  error
				)
				switch kind {
				case "popular":
					page, err = svc.Popular(rc, opts)
				case "top-rated":
					page, err = svc.TopRated(rc, opts)
				case "airing-today":
					page, err = svc.AiringToday(rc, opts)
				case "on-the-air":
					page, err = svc.OnTheAir(rc, opts)
				default:
					return renderable{}, fmt.Errorf("unknown tv list %q", kind)
				}
				if err != nil {
					return renderable{}, err
				}
				return tvPageView(page), nil
			})
		},
	})
	return cmd
}

func newSeasonCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "season <tv-id> <season>",
		Short: "List the episodes of a season",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tvID, err := parseID("tv id", args[0])
			if err != nil {
				return err
			}
			season, err := parseID("season number", args[1])
			if err != nil {
				return err
			}
			return ctx.run(cmd, func(rc context.Context, client *tmdb.Client, lang string) (renderable, error) {
				result, err := client.TVSeasons().Summary(rc, tvID, season, &tmdb.DetailOptions{Language: lang})
				if err != nil {
					return renderable{}, fmt.Errorf("tv %d season %d: %w", tvID, season, err)
				}
				return seasonView(result), nil
			})
		},
	}
}

func newEpisodeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "episode <tv-id> <season> <episode>",
		Short: "Show one episode",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			tvID, err := parseID("tv id", args[0])
			if err != nil {
				return err
			}
			season, err := parseID("season number", args[1])
			if err != nil {
				return err
			}
			episode, err := parseID("episode number", args[2])
			if err != nil {
				return err
			}
			return ctx.run(cmd, func(rc context.Context, client *tmdb.Client, lang string) (renderable, error) {
				result, err := client.TVEpisodes().Summary(rc, tvID, season, episode, &tmdb.DetailOptions{Language: lang})
				if err != nil {
					return renderable{}, fmt.Errorf("tv %d s%02de%02d: %w", tvID, season, episode, err)
				}
				return episodeView(result), nil
			})
		},
	}
}

func newPersonCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "person <id>",
		Short: "Show a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("person id", args[0])
			if err != nil {
				return err
			}
			return ctx.run(cmd, func(rc context.Context, client *tmdb.Client, lang string) (renderable, error) {
				person, err := client.People().Summary(rc, id, &tmdb.DetailOptions{Language: lang})
				if err != nil {
					return renderable{}, fmt.Errorf("person %d: %w", id, err)
				}
				return personView(person), nil
			})
		},
	}
}

func newCollectionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "collection <id>",
		Short: "List the movies in a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("collection id", args[0])
			if err != nil {
				return err
			}
			return ctx.run(cmd, func(rc context.Context, client *tmdb.Client, lang string) (renderable, error) {
				collection, err := client.Collections().Summary(rc, id, &tmdb.DetailOptions{Language: lang})
				if err != nil {
					return renderable{}, fmt.Errorf("collection %d: %w", id, err)
				}
				return collectionView(collection), nil
			})
		},
	}
}

func newFindCommand(ctx *commandContext) *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "find <external-id>",
		Short: "Look up TMDB entries by an IMDb, TVDB or other external id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := tmdb.ParseExternalSource(source)
			if err != nil {
				return err
			}
			externalID := strings.TrimSpace(args[0])
			return ctx.run(cmd, func(rc context.Context, client *tmdb.Client, lang string) (renderable, error) {
				results, err := client.Find().Find(rc, externalID, src, lang)
				if err != nil {
					return renderable{}, fmt.Errorf("find %s: %w", externalID, err)
				}
				return findView(results), nil
			})
		},
	}
	cmd.Flags().StringVar(&source, "source", string(tmdb.SourceIMDB), "External source (imdb_id, tvdb_id, wikidata_id, ...)")
	return cmd
}

func newConfigurationCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "configuration",
		Short: "Show TMDB image configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd, func(rc context.Context, client *tmdb.Client, _ string) (renderable, error) {
				cfg, err := client.Configuration().Get(rc)
				if err != nil {
					return renderable{}, fmt.Errorf("configuration: %w", err)
				}
				return configurationView(cfg), nil
			})
		},
	}
}
