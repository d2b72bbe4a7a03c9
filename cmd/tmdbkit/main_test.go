package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tmdbkit/internal/config"
	"tmdbkit/internal/testsupport"
	"tmdbkit/tmdb"
)

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func setupServer(t *testing.T, opts ...testsupport.ConfigOption) (*testsupport.TMDBServer, string) {
	t.Helper()
	srv := testsupport.NewTMDBServer(t)
	all := append([]testsupport.ConfigOption{
		testsupport.WithBaseURL(srv.BaseURL()),
		testsupport.WithTMDBKey("cli-key"),
	}, opts...)
	cfg := testsupport.NewConfig(t, all...)
	return srv, testsupport.WriteConfig(t, cfg)
}

func TestSearchMovieWritesJSON(t *testing.T) {
	srv, configPath := setupServer(t)
	srv.HandleFixture(t, "search/movie", "../../tmdb/testdata/search_movie_fight_club.json")

	out, _, err := runCLI(t, []string{"search", "movie", "Fight", "Club", "--year", "1999", "--language", "german"}, configPath)
	if err != nil {
		t.Fatalf("search movie: %v", err)
	}

	var page tmdb.MovieResultsPage
	if err := json.Unmarshal([]byte(out), &page); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(page.Results) != 1 || page.Results[0].ID != 550 {
		t.Fatalf("unexpected output: %+v", page)
	}

	req := srv.Last(t)
	if req.APIKey() != "cli-key" {
		t.Fatalf("api_key = %q", req.APIKey())
	}
	if got := req.Query.Get("query"); got != "Fight Club" {
		t.Fatalf("query = %q", got)
	}
	if got := req.Query.Get("language"); got != "de" {
		t.Fatalf("language = %q", got)
	}
	if got := req.Query.Get("year"); got != "1999" {
		t.Fatalf("year = %q", got)
	}
}

func TestConfigLanguageUsedByDefault(t *testing.T) {
	srv, configPath := setupServer(t, testsupport.WithLanguage("fr-FR"))
	srv.HandleFixture(t, "tv/1399/season/1", "../../tmdb/testdata/tv_season_1399_1.json")

	out, _, err := runCLI(t, []string{"season", "1399", "1"}, configPath)
	if err != nil {
		t.Fatalf("season: %v", err)
	}
	requireContains(t, out, "Winter Is Coming")
	if got := srv.Last(t).Query.Get("language"); got != "fr-FR" {
		t.Fatalf("language = %q", got)
	}
}

func TestMovieNotFoundAddsHint(t *testing.T) {
	_, configPath := setupServer(t)

	_, _, err := runCLI(t, []string{"movie", "1"}, configPath)
	var statusErr *tmdb.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	requireContains(t, describeError(err), "hint: check the id")
}

func TestInvalidKeyAddsConfigHint(t *testing.T) {
	srv, configPath := setupServer(t)
	srv.RequireKey("other-key")

	_, _, err := runCLI(t, []string{"configuration"}, configPath)
	if err == nil {
		t.Fatalf("expected 401")
	}
	requireContains(t, describeError(err), "tmdbkit config set-key")
}

func TestRejectsBadArguments(t *testing.T) {
	_, configPath := setupServer(t)

	if _, _, err := runCLI(t, []string{"movie", "abc"}, configPath); err == nil {
		t.Fatalf("expected error for non-numeric id")
	}
	if _, _, err := runCLI(t, []string{"find", "tt0137523", "--source", "myspace"}, configPath); err == nil {
		t.Fatalf("expected error for unknown source")
	}
	if _, _, err := runCLI(t, []string{"search", "movie", "x", "--language", "not a language"}, configPath); err == nil {
		t.Fatalf("expected error for invalid language")
	}
}

func TestFindUsesSource(t *testing.T) {
	srv, configPath := setupServer(t)
	srv.HandleFixture(t, "find/tt0137523", "../../tmdb/testdata/find_imdb.json")

	out, _, err := runCLI(t, []string{"find", "tt0137523"}, configPath)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	requireContains(t, out, "Fight Club")
	if got := srv.Last(t).Query.Get("external_source"); got != "imdb_id" {
		t.Fatalf("external_source = %q", got)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatalf("expected error when config already exists")
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, "API key: no")
	requireContains(t, out, config.MissingAPIKeyHint())

	t.Setenv("TMDB_API_KEY", "env-key")
	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	if err != nil {
		t.Fatalf("config validate with env key: %v", err)
	}
	requireContains(t, out, "API key: yes")
}

func TestConfigSetKey(t *testing.T) {
	_, configPath := setupServer(t, testsupport.WithLanguage("es-ES"))

	out, _, err := runCLI(t, []string{"config", "set-key", "new-key"}, configPath)
	if err != nil {
		t.Fatalf("set-key: %v", err)
	}
	requireContains(t, out, "Stored API key")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TMDB.APIKey != "new-key" || cfg.TMDB.Language != "es-ES" {
		t.Fatalf("unexpected config after set-key: %+v", cfg.TMDB)
	}
}

func TestSearchMultiListsMixedResults(t *testing.T) {
	srv, configPath := setupServer(t)
	srv.HandleFixture(t, "search/multi", "../../tmdb/testdata/search_multi.json")

	out, _, err := runCLI(t, []string{"search", "multi", "fight", "--adult"}, configPath)
	if err != nil {
		t.Fatalf("search multi: %v", err)
	}
	var page tmdb.Page[tmdb.Media]
	if err := json.Unmarshal([]byte(out), &page); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(page.Results) != 3 || page.Results[1].MediaType != tmdb.MediaTypeTV || page.Results[2].Title() != "Brad Pitt" {
		t.Fatalf("unexpected output: %+v", page.Results)
	}
	if got := srv.Last(t).Query.Get("include_adult"); got != "true" {
		t.Fatalf("include_adult = %q", got)
	}

	var buf bytes.Buffer
	if err := writeTable(&buf, mediaPageView(&page)); err != nil {
		t.Fatalf("writeTable: %v", err)
	}
	for _, want := range []string{"Fight Club", "1999", "tv", "Game of Thrones", "2011", "person", "Brad Pitt"} {
		requireContains(t, buf.String(), want)
	}
}

func TestWriteTableRendersPage(t *testing.T) {
	page := &tmdb.MovieResultsPage{
		Page:         1,
		TotalPages:   5,
		TotalResults: 87,
		Results: []tmdb.BaseMovie{
			{ID: 550, Title: "Fight Club", OriginalLanguage: "en", ReleaseDate: tmdb.NewDate(1999, 10, 15), VoteAverage: 8.4, VoteCount: 26280},
		},
	}
	var buf bytes.Buffer
	if err := writeTable(&buf, moviePageView(page)); err != nil {
		t.Fatalf("writeTable: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Fight Club", "1999", "English", "8.4 (26280)", "Page 1 of 5 (87 results)"} {
		requireContains(t, out, want)
	}

	buf.Reset()
	if err := writeTable(&buf, moviePageView(&tmdb.MovieResultsPage{Results: []tmdb.BaseMovie{}})); err != nil {
		t.Fatalf("writeTable: %v", err)
	}
	requireContains(t, buf.String(), "No results")
}

func TestDetailViewSkipsEmptyFields(t *testing.T) {
	view := personView(&tmdb.Person{BasePerson: tmdb.BasePerson{ID: 287, Name: "Brad Pitt"}, PlaceOfBirth: "Shawnee, Oklahoma, USA"})
	if view.title != "Brad Pitt" {
		t.Fatalf("title = %q", view.title)
	}
	for _, row := range view.rows {
		if row[0] == "Died" {
			t.Fatalf("empty field should be skipped")
		}
	}
}

func TestSearchBestKeepsConfidentMatch(t *testing.T) {
	srv, configPath := setupServer(t)
	srv.HandleFixture(t, "search/movie", "../../tmdb/testdata/search_movie_page.json")

	out, _, err := runCLI(t, []string{"search", "movie", "The Godfather", "--best", "--year", "1972"}, configPath)
	if err != nil {
		t.Fatalf("search --best: %v", err)
	}
	var page tmdb.MovieResultsPage
	if err := json.Unmarshal([]byte(out), &page); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(page.Results) != 1 || page.Results[0].ID != 238 {
		t.Fatalf("expected only The Godfather, got %+v", page.Results)
	}

	if _, _, err := runCLI(t, []string{"search", "movie", "Casablanca", "--best"}, configPath); err == nil {
		t.Fatalf("expected no confident match")
	}
}
