package main

import (
	"fmt"
	"strconv"
	"strings"

	"tmdbkit/internal/language"
	"tmdbkit/tmdb"
)

func pageFooter[T any](p *tmdb.Page[T]) string {
	return fmt.Sprintf("Page %d of %d (%d results)", p.Page, p.TotalPages, p.TotalResults)
}

func year(d tmdb.Date) string {
	if d.IsZero() {
		return ""
	}
	return strconv.Itoa(d.Year())
}

func rating(avg float64, votes int) string {
	if votes == 0 {
		return ""
	}
	return fmt.Sprintf("%.1f (%d)", avg, votes)
}

func movieRows(movies []tmdb.BaseMovie) [][]string {
	rows := make([][]string, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, []string{
			strconv.Itoa(m.ID),
			m.Title,
			year(m.ReleaseDate),
			language.DisplayName(m.OriginalLanguage),
			rating(m.VoteAverage, m.VoteCount),
		})
	}
	return rows
}

var movieHeaders = []string{"ID", "Title", "Year", "Language", "Rating"}

func tvRows(shows []tmdb.BaseTvShow) [][]string {
	rows := make([][]string, 0, len(shows))
	for _, s := range shows {
		rows = append(rows, []string{
			strconv.Itoa(s.ID),
			s.Name,
			year(s.FirstAirDate),
			language.DisplayName(s.OriginalLanguage),
			rating(s.VoteAverage, s.VoteCount),
		})
	}
	return rows
}

var tvHeaders = []string{"ID", "Name", "First Aired", "Language", "Rating"}

var ratingAligns = []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight}

func moviePageView(p *tmdb.MovieResultsPage) renderable {
	return renderable{value: p, headers: movieHeaders, rows: movieRows(p.Results), aligns: ratingAligns, footer: pageFooter(p)}
}

func tvPageView(p *tmdb.TvShowResultsPage) renderable {
	return renderable{value: p, headers: tvHeaders, rows: tvRows(p.Results), aligns: ratingAligns, footer: pageFooter(p)}
}

func personPageView(p *tmdb.PersonResultsPage) renderable {
	rows := make([][]string, 0, len(p.Results))
	for _, person := range p.Results {
		known := make([]string, 0, len(person.KnownFor))
		for _, m := range person.KnownFor {
			known = append(known, m.Title())
		}
		rows = append(rows, []string{
			strconv.Itoa(person.ID),
			person.Name,
			person.KnownForDepartment,
			strings.Join(known, ", "),
		})
	}
	return renderable{
		value:   p,
		headers: []string{"ID", "Name", "Department", "Known For"},
		rows:    rows,
		aligns:  []columnAlignment{alignRight},
		footer:  pageFooter(p),
	}
}

func mediaPageView(p *tmdb.Page[tmdb.Media]) renderable {
	rows := make([][]string, 0, len(p.Results))
	for _, m := range p.Results {
		var released string
		switch {
		case m.Movie != nil:
			released = year(m.Movie.ReleaseDate)
		case m.TvShow != nil:
			released = year(m.TvShow.FirstAirDate)
		}
		rows = append(rows, []string{strconv.Itoa(m.ID()), m.MediaType, m.Title(), released})
	}
	return renderable{value: p, headers: []string{"ID", "Type", "Title", "Year"}, rows: rows, aligns: []columnAlignment{alignRight}, footer: pageFooter(p)}
}

func collectionPageView(p *tmdb.CollectionResultsPage) renderable {
	rows := make([][]string, 0, len(p.Results))
	for _, c := range p.Results {
		rows = append(rows, []string{strconv.Itoa(c.ID), c.Name})
	}
	return renderable{value: p, headers: []string{"ID", "Name"}, rows: rows, aligns: []columnAlignment{alignRight}, footer: pageFooter(p)}
}

func companyPageView(p *tmdb.CompanyResultsPage) renderable {
	rows := make([][]string, 0, len(p.Results))
	for _, c := range p.Results {
		rows = append(rows, []string{strconv.Itoa(c.ID), c.Name, c.OriginCountry})
	}
	return renderable{value: p, headers: []string{"ID", "Name", "Country"}, rows: rows, aligns: []columnAlignment{alignRight}, footer: pageFooter(p)}
}

func keywordPageView(p *tmdb.KeywordResultsPage) renderable {
	rows := make([][]string, 0, len(p.Results))
	for _, k := range p.Results {
		rows = append(rows, []string{strconv.Itoa(k.ID), k.Name})
	}
	return renderable{value: p, headers: []string{"ID", "Keyword"}, rows: rows, aligns: []columnAlignment{alignRight}, footer: pageFooter(p)}
}

// detailView renders a single entity as a two-column field/value table.
func detailView(value any, title string, fields [][2]string) renderable {
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			continue
		}
		rows = append(rows, []string{f[0], f[1]})
	}
	return renderable{value: value, title: title, headers: []string{"Field", "Value"}, rows: rows}
}

func names[T any](items []T, name func(T) string) string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, name(item))
	}
	return strings.Join(out, ", ")
}

func movieView(m *tmdb.Movie) renderable {
	fields := [][2]string{
		{"ID", strconv.Itoa(m.ID)},
		{"Original Title", m.OriginalTitle},
		{"Released", m.ReleaseDate.String()},
		{"Runtime", minutes(m.Runtime)},
		{"Genres", names(m.Genres, func(g tmdb.Genre) string { return g.Name })},
		{"Language", language.DisplayName(m.OriginalLanguage)},
		{"IMDb", m.IMDBID},
		{"Rating", rating(m.VoteAverage, m.VoteCount)},
		{"Tagline", m.Tagline},
		{"Overview", m.Overview},
	}
	if m.BelongsToCollection != nil {
		fields = append(fields, [2]string{"Collection", fmt.Sprintf("%s (%d)", m.BelongsToCollection.Name, m.BelongsToCollection.ID)})
	}
	if m.Credits != nil {
		fields = append(fields, [2]string{"Cast", topCast(m.Credits.Cast, 5)})
	}
	return detailView(m, m.Title, fields)
}

func tvView(s *tmdb.TvShow) renderable {
	fields := [][2]string{
		{"ID", strconv.Itoa(s.ID)},
		{"Original Name", s.OriginalName},
		{"First Aired", s.FirstAirDate.String()},
		{"Last Aired", s.LastAirDate.String()},
		{"Status", s.Status},
		{"Seasons", strconv.Itoa(s.NumberOfSeasons)},
		{"Episodes", strconv.Itoa(s.NumberOfEpisodes)},
		{"Networks", names(s.Networks, func(n tmdb.Network) string { return n.Name })},
		{"Genres", names(s.Genres, func(g tmdb.Genre) string { return g.Name })},
		{"Language", language.DisplayName(s.OriginalLanguage)},
		{"Rating", rating(s.VoteAverage, s.VoteCount)},
		{"Overview", s.Overview},
	}
	if s.Credits != nil {
		fields = append(fields, [2]string{"Cast", topCast(s.Credits.Cast, 5)})
	}
	return detailView(s, s.Name, fields)
}

func seasonView(s *tmdb.TvSeason) renderable {
	rows := make([][]string, 0, len(s.Episodes))
	for _, ep := range s.Episodes {
		rows = append(rows, []string{
			strconv.Itoa(ep.EpisodeNumber),
			ep.Name,
			ep.AirDate.String(),
			minutes(ep.Runtime),
		})
	}
	title := s.Name
	if !s.AirDate.IsZero() {
		title = fmt.Sprintf("%s (%s)", s.Name, s.AirDate.String())
	}
	return renderable{
		value:   s,
		title:   title,
		headers: []string{"#", "Episode", "Aired", "Runtime"},
		rows:    rows,
		aligns:  []columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
	}
}

func episodeView(e *tmdb.TvEpisode) renderable {
	fields := [][2]string{
		{"ID", strconv.Itoa(e.ID)},
		{"Episode", fmt.Sprintf("S%02dE%02d", e.SeasonNumber, e.EpisodeNumber)},
		{"Aired", e.AirDate.String()},
		{"Runtime", minutes(e.Runtime)},
		{"Rating", rating(e.VoteAverage, e.VoteCount)},
		{"Guest Stars", topCast(e.GuestStars, 5)},
		{"Overview", e.Overview},
	}
	return detailView(e, e.Name, fields)
}

func personView(p *tmdb.Person) renderable {
	fields := [][2]string{
		{"ID", strconv.Itoa(p.ID)},
		{"Known For", p.KnownForDepartment},
		{"Born", p.Birthday.String()},
		{"Died", p.Deathday.String()},
		{"Birthplace", p.PlaceOfBirth},
		{"IMDb", p.IMDBID},
		{"Biography", p.Biography},
	}
	return detailView(p, p.Name, fields)
}

func collectionView(c *tmdb.Collection) renderable {
	return renderable{
		value:   c,
		title:   c.Name,
		headers: movieHeaders,
		rows:    movieRows(c.Parts),
		aligns:  ratingAligns,
	}
}

func findView(r *tmdb.FindResults) renderable {
	var rows [][]string
	for _, m := range r.MovieResults {
		rows = append(rows, []string{tmdb.MediaTypeMovie, strconv.Itoa(m.ID), m.Title, year(m.ReleaseDate)})
	}
	for _, s := range r.TvResults {
		rows = append(rows, []string{tmdb.MediaTypeTV, strconv.Itoa(s.ID), s.Name, year(s.FirstAirDate)})
	}
	for _, p := range r.PersonResults {
		rows = append(rows, []string{tmdb.MediaTypePerson, strconv.Itoa(p.ID), p.Name, ""})
	}
	for _, s := range r.TvSeasonResults {
		rows = append(rows, []string{"tv_season", strconv.Itoa(s.ID), s.Name, year(s.AirDate)})
	}
	for _, e := range r.TvEpisodeResults {
		rows = append(rows, []string{"tv_episode", strconv.Itoa(e.ID), e.Name, year(e.AirDate)})
	}
	return renderable{value: r, headers: []string{"Type", "ID", "Name", "Year"}, rows: rows, aligns: []columnAlignment{alignLeft, alignRight}}
}

func configurationView(c *tmdb.Configuration) renderable {
	fields := [][2]string{
		{"Image Base URL", c.Images.SecureBaseURL},
		{"Poster Sizes", strings.Join(c.Images.PosterSizes, ", ")},
		{"Backdrop Sizes", strings.Join(c.Images.BackdropSizes, ", ")},
		{"Profile Sizes", strings.Join(c.Images.ProfileSizes, ", ")},
		{"Still Sizes", strings.Join(c.Images.StillSizes, ", ")},
		{"Logo Sizes", strings.Join(c.Images.LogoSizes, ", ")},
	}
	return detailView(c, "TMDB configuration", fields)
}

func topCast(cast []tmdb.CastMember, limit int) string {
	if len(cast) > limit {
		cast = cast[:limit]
	}
	return names(cast, func(c tmdb.CastMember) string {
		if c.Character == "" {
			return c.Name
		}
		return c.Name + " as " + c.Character
	})
}

func minutes(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%d min", n)
}
