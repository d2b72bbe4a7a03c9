package tmdb

import "context"

// BaseMovie is the movie shape used in lists and search results.
type BaseMovie struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	OriginalLanguage string  `json:"original_language"`
	Overview         string  `json:"overview"`
	ReleaseDate      Date    `json:"release_date"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	GenreIDs         []int   `json:"genre_ids"`
	Popularity       float64 `json:"popularity"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Adult            bool    `json:"adult"`
	Video            bool    `json:"video"`
	MediaType        string  `json:"media_type,omitempty"`
}

// Movie is the full movie summary. Appended sub-resources are populated only
// when requested through DetailOptions.AppendToResponse.
type Movie struct {
	BaseMovie
	IMDBID              string           `json:"imdb_id"`
	Budget              int64            `json:"budget"`
	Revenue             int64            `json:"revenue"`
	Runtime             int              `json:"runtime"`
	Status              string           `json:"status"`
	Tagline             string           `json:"tagline"`
	Homepage            string           `json:"homepage"`
	Genres              []Genre          `json:"genres"`
	ProductionCompanies []BaseCompany    `json:"production_companies"`
	ProductionCountries []Country        `json:"production_countries"`
	SpokenLanguages     []SpokenLanguage `json:"spoken_languages"`
	BelongsToCollection *BaseCollection  `json:"belongs_to_collection"`

	AlternativeTitles *AlternativeTitles `json:"alternative_titles,omitempty"`
	Credits           *Credits           `json:"credits,omitempty"`
	ExternalIDs       *ExternalIDs       `json:"external_ids,omitempty"`
	Images            *Images            `json:"images,omitempty"`
	Keywords          *Keywords          `json:"keywords,omitempty"`
	Releases          *Releases          `json:"releases,omitempty"`
	Similar           *Page[BaseMovie]   `json:"similar,omitempty"`
	Translations      *Translations      `json:"translations,omitempty"`
	Videos            *Videos            `json:"videos,omitempty"`
	Reviews           *Page[Review]      `json:"reviews,omitempty"`
}

type CountryRelease struct {
	ISO3166_1     string `json:"iso_3166_1"`
	Certification string `json:"certification"`
	ReleaseDate   Date   `json:"release_date"`
	Primary       bool   `json:"primary"`
}

type Releases struct {
	ID        int              `json:"id"`
	Countries []CountryRelease `json:"countries"`
}

var (
	routeMovieSummary           = get("movie/{movie_id}")
	routeMovieAlternativeTitles = get("movie/{movie_id}/alternative_titles")
	routeMovieCredits           = get("movie/{movie_id}/credits")
	routeMovieExternalIDs       = get("movie/{movie_id}/external_ids")
	routeMovieImages            = get("movie/{movie_id}/images")
	routeMovieKeywords          = get("movie/{movie_id}/keywords")
	routeMovieReleases          = get("movie/{movie_id}/releases")
	routeMovieVideos            = get("movie/{movie_id}/videos")
	routeMovieTranslations      = get("movie/{movie_id}/translations")
	routeMovieSimilar           = get("movie/{movie_id}/similar")
	routeMovieReviews           = get("movie/{movie_id}/reviews")
	routeMovieLatest            = get("movie/latest")
	routeMovieUpcoming          = get("movie/upcoming")
	routeMovieNowPlaying        = get("movie/now_playing")
	routeMoviePopular           = get("movie/popular")
	routeMovieTopRated          = get("movie/top_rated")
)

// MoviesService wraps the /movie endpoints.
type MoviesService struct {
	b *bundle
}

// Summary fetches the primary information about a movie.
func (s *MoviesService) Summary(ctx context.Context, movieID int, opts *DetailOptions) (*Movie, error) {
	return call[Movie](ctx, s.b, routeMovieSummary, ids(movieID), opts.apply(query{}))
}

// AlternativeTitles lists titles used in other markets. country filters by
// ISO 3166-1 code when set.
func (s *MoviesService) AlternativeTitles(ctx context.Context, movieID int, country string) (*AlternativeTitles, error) {
	q := query{}
	q.set("country", country)
	return call[AlternativeTitles](ctx, s.b, routeMovieAlternativeTitles, ids(movieID), q)
}

func (s *MoviesService) Credits(ctx context.Context, movieID int) (*Credits, error) {
	return call[Credits](ctx, s.b, routeMovieCredits, ids(movieID), nil)
}

func (s *MoviesService) ExternalIDs(ctx context.Context, movieID int) (*ExternalIDs, error) {
	return call[ExternalIDs](ctx, s.b, routeMovieExternalIDs, ids(movieID), nil)
}

func (s *MoviesService) Images(ctx context.Context, movieID int, language string) (*Images, error) {
	return call[Images](ctx, s.b, routeMovieImages, ids(movieID), languageQuery(language))
}

func (s *MoviesService) Keywords(ctx context.Context, movieID int) (*Keywords, error) {
	return call[Keywords](ctx, s.b, routeMovieKeywords, ids(movieID), nil)
}

// Releases lists release dates and certifications per country.
func (s *MoviesService) Releases(ctx context.Context, movieID int) (*Releases, error) {
	return call[Releases](ctx, s.b, routeMovieReleases, ids(movieID), nil)
}

func (s *MoviesService) Videos(ctx context.Context, movieID int, language string) (*Videos, error) {
	return call[Videos](ctx, s.b, routeMovieVideos, ids(movieID), languageQuery(language))
}

func (s *MoviesService) Translations(ctx context.Context, movieID int) (*Translations, error) {
	return call[Translations](ctx, s.b, routeMovieTranslations, ids(movieID), nil)
}

func (s *MoviesService) Similar(ctx context.Context, movieID int, opts *PageOptions) (*MovieResultsPage, error) {
	return call[MovieResultsPage](ctx, s.b, routeMovieSimilar, ids(movieID), opts.apply(query{}))
}

func (s *MoviesService) Reviews(ctx context.Context, movieID int, opts *PageOptions) (*ReviewResultsPage, error) {
	return call[ReviewResultsPage](ctx, s.b, routeMovieReviews, ids(movieID), opts.apply(query{}))
}

// Latest returns the most recently created movie.
func (s *MoviesService) Latest(ctx context.Context) (*Movie, error) {
	return call[Movie](ctx, s.b, routeMovieLatest, nil, nil)
}

func (s *MoviesService) Upcoming(ctx context.Context, opts *PageOptions) (*MovieResultsPage, error) {
	return call[MovieResultsPage](ctx, s.b, routeMovieUpcoming, nil, opts.apply(query{}))
}

func (s *MoviesService) NowPlaying(ctx context.Context, opts *PageOptions) (*MovieResultsPage, error) {
	return call[MovieResultsPage](ctx, s.b, routeMovieNowPlaying, nil, opts.apply(query{}))
}

func (s *MoviesService) Popular(ctx context.Context, opts *PageOptions) (*MovieResultsPage, error) {
	return call[MovieResultsPage](ctx, s.b, routeMoviePopular, nil, opts.apply(query{}))
}

func (s *MoviesService) TopRated(ctx context.Context, opts *PageOptions) (*MovieResultsPage, error) {
	return call[MovieResultsPage](ctx, s.b, routeMovieTopRated, nil, opts.apply(query{}))
}
