package tmdb_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"tmdbkit/internal/testsupport"
	"tmdbkit/tmdb"
)

func TestRoutesExpandPathParameters(t *testing.T) {
	cases := []struct {
		path string
		call func(context.Context, *tmdb.Client) error
	}{
		{"movie/550/credits", func(ctx context.Context, c *tmdb.Client) error { _, err := c.Movies().Credits(ctx, 550); return err }},
		{"movie/550/releases", func(ctx context.Context, c *tmdb.Client) error { _, err := c.Movies().Releases(ctx, 550); return err }},
		{"movie/upcoming", func(ctx context.Context, c *tmdb.Client) error { _, err := c.Movies().Upcoming(ctx, nil); return err }},
		{"movie/latest", func(ctx context.Context, c *tmdb.Client) error { _, err := c.Movies().Latest(ctx); return err }},
		{"tv/1399/content_ratings", func(ctx context.Context, c *tmdb.Client) error {
			_, err := c.TV().ContentRatings(ctx, 1399)
			return err
		}},
		{"tv/on_the_air", func(ctx context.Context, c *tmdb.Client) error { _, err := c.TV().OnTheAir(ctx, nil); return err }},
		{"tv/1399/season/2/external_ids", func(ctx context.Context, c *tmdb.Client) error {
			_, err := c.TVSeasons().ExternalIDs(ctx, 1399, 2)
			return err
		}},
		{"tv/1399/season/2/episode/5/credits", func(ctx context.Context, c *tmdb.Client) error {
			_, err := c.TVEpisodes().Credits(ctx, 1399, 2, 5)
			return err
		}},
		{"person/287/combined_credits", func(ctx context.Context, c *tmdb.Client) error {
			_, err := c.People().CombinedCredits(ctx, 287, "")
			return err
		}},
		{"person/popular", func(ctx context.Context, c *tmdb.Client) error { _, err := c.People().Popular(ctx, nil); return err }},
		{"collection/10/images", func(ctx context.Context, c *tmdb.Client) error {
			_, err := c.Collections().Images(ctx, 10, "")
			return err
		}},
		{"discover/tv", func(ctx context.Context, c *tmdb.Client) error { _, err := c.Discover().TV(ctx, nil); return err }},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			srv := testsupport.NewTMDBServer(t)
			srv.Handle(tc.path, http.StatusOK, `{}`)
			client := newClient(t, srv).SetAPIKey("k")

			if err := tc.call(context.Background(), client); err != nil {
				t.Fatalf("call: %v", err)
			}
			if got := srv.Last(t).Path; got != tc.path {
				t.Fatalf("path = %q, want %q", got, tc.path)
			}
		})
	}
}

func TestMovieSummaryWithAppendedResources(t *testing.T) {
	srv := testsupport.NewTMDBServer(t)
	srv.HandleFixture(t, "movie/550", "testdata/movie_550.json")
	client := newClient(t, srv).SetAPIKey("k")

	movie, err := client.Movies().Summary(context.Background(), 550, &tmdb.DetailOptions{
		Language:         "en-US",
		AppendToResponse: []string{tmdb.AppendCredits, " ", tmdb.AppendExternalIDs},
	})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if got := srv.Last(t).Query.Get("append_to_response"); got != "credits,external_ids" {
		t.Fatalf("append_to_response = %q", got)
	}
	if movie.IMDBID != "tt0137523" || movie.Runtime != 139 || movie.Budget != 63000000 {
		t.Fatalf("unexpected summary fields: %+v", movie)
	}
	if movie.BelongsToCollection != nil {
		t.Fatalf("expected nil collection")
	}
	if movie.Credits == nil || len(movie.Credits.Cast) != 2 || movie.Credits.Cast[1].Character != "Tyler Durden" {
		t.Fatalf("credits not decoded: %+v", movie.Credits)
	}
	if movie.Credits.Crew[0].Job != "Director" {
		t.Fatalf("crew not decoded: %+v", movie.Credits.Crew)
	}
	if movie.ExternalIDs == nil || movie.ExternalIDs.WikidataID != "Q190050" {
		t.Fatalf("external ids not decoded: %+v", movie.ExternalIDs)
	}
	if movie.Images != nil || movie.Videos != nil {
		t.Fatalf("unrequested resources should stay nil")
	}
}

func TestSeasonSummaryListsEpisodes(t *testing.T) {
	srv := testsupport.NewTMDBServer(t)
	srv.HandleFixture(t, "tv/1399/season/1", "testdata/tv_season_1399_1.json")
	client := newClient(t, srv).SetAPIKey("k")

	season, err := client.TVSeasons().Summary(context.Background(), 1399, 1, nil)
	if err != nil {
		t.Fatalf("season: %v", err)
	}
	if season.SeasonNumber != 1 || len(season.Episodes) != 2 {
		t.Fatalf("unexpected season: %+v", season)
	}
	if ep := season.Episodes[1]; ep.Name != "The Kingsroad" || ep.AirDate.String() != "2011-04-24" {
		t.Fatalf("unexpected episode: %+v", ep)
	}
}

func TestFindByExternalID(t *testing.T) {
	srv := testsupport.NewTMDBServer(t)
	srv.HandleFixture(t, "find/tt0137523", "testdata/find_imdb.json")
	client := newClient(t, srv).SetAPIKey("k")

	results, err := client.Find().Find(context.Background(), "tt0137523", tmdb.SourceIMDB, "")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(results.MovieResults) != 1 || results.MovieResults[0].ID != 550 {
		t.Fatalf("unexpected movie results: %+v", results.MovieResults)
	}
	if got := srv.Last(t).Query.Get("external_source"); got != "imdb_id" {
		t.Fatalf("external_source = %q", got)
	}

	if _, err := client.Find().Find(context.Background(), "tt0137523", "", ""); err == nil {
		t.Fatalf("expected error without source")
	}
	if _, err := tmdb.ParseExternalSource("myspace_id"); err == nil {
		t.Fatalf("expected unknown source error")
	}

	sent := len(srv.Requests())
	for _, id := range []string{".", ".."} {
		if _, err := client.Find().Find(context.Background(), id, tmdb.SourceIMDB, ""); err == nil {
			t.Fatalf("expected error for id %q", id)
		}
	}
	if got := len(srv.Requests()); got != sent {
		t.Fatalf("dot-segment ids reached the server: %d requests", got-sent)
	}
}

func TestDiscoverMovieEncodesFilters(t *testing.T) {
	srv := testsupport.NewTMDBServer(t)
	srv.HandleFixture(t, "discover/movie", "testdata/search_movie_page.json")
	client := newClient(t, srv).SetAPIKey("k")

	_, err := client.Discover().Movie(context.Background(), &tmdb.DiscoverMovieOptions{
		SortBy:                tmdb.SortVoteAverageDesc,
		PrimaryReleaseDateGTE: tmdb.NewDate(1970, time.January, 1),
		VoteAverageGTE:        7.5,
		WithGenres:            []string{"18", "80"},
	})
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	q := srv.Last(t).Query
	checks := map[string]string{
		"sort_by":                  "vote_average.desc",
		"primary_release_date.gte": "1970-01-01",
		"vote_average.gte":         "7.5",
		"with_genres":              "18,80",
	}
	for key, want := range checks {
		if got := q.Get(key); got != want {
			t.Fatalf("%s = %q, want %q", key, got, want)
		}
	}
	for _, key := range []string{"page", "year", "include_adult", "language"} {
		if q.Has(key) {
			t.Fatalf("zero-valued %s should be omitted", key)
		}
	}
}

func TestConfigurationImageURL(t *testing.T) {
	srv := testsupport.NewTMDBServer(t)
	srv.HandleFixture(t, "configuration", "testdata/configuration.json")
	client := newClient(t, srv).SetAPIKey("k")

	cfg, err := client.Configuration().Get(context.Background())
	if err != nil {
		t.Fatalf("configuration: %v", err)
	}
	if got := cfg.Images.ImageURL("w500", "/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg"); got != "https://image.tmdb.org/t/p/w500/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg" {
		t.Fatalf("image url = %q", got)
	}
	if got := cfg.Images.ImageURL("w500", ""); got != "" {
		t.Fatalf("expected empty url for empty path, got %q", got)
	}
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		A tmdb.Date `json:"a"`
		B tmdb.Date `json:"b"`
		C tmdb.Date `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a":"2020-02-29","b":"","c":null}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.A.String() != "2020-02-29" || !payload.B.IsZero() || !payload.C.IsZero() {
		t.Fatalf("unexpected dates: %+v", payload)
	}
	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"a":"2020-02-29","b":null,"c":null}` {
		t.Fatalf("marshal = %s", out)
	}
	if err := json.Unmarshal([]byte(`{"a":"29/02/2020"}`), &payload); err == nil {
		t.Fatalf("expected parse error")
	}
}
