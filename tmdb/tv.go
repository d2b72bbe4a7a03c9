package tmdb

import "context"

// BaseTvShow is the TV show shape used in lists and search results.
type BaseTvShow struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	OriginalName     string   `json:"original_name"`
	OriginalLanguage string   `json:"original_language"`
	Overview         string   `json:"overview"`
	FirstAirDate     Date     `json:"first_air_date"`
	OriginCountry    []string `json:"origin_country"`
	PosterPath       string   `json:"poster_path"`
	BackdropPath     string   `json:"backdrop_path"`
	GenreIDs         []int    `json:"genre_ids"`
	Popularity       float64  `json:"popularity"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
	MediaType        string   `json:"media_type,omitempty"`
}

// TvShow is the full show summary.
type TvShow struct {
	BaseTvShow
	CreatedBy           []BasePerson  `json:"created_by"`
	EpisodeRunTime      []int         `json:"episode_run_time"`
	Genres              []Genre       `json:"genres"`
	Homepage            string        `json:"homepage"`
	InProduction        bool          `json:"in_production"`
	Languages           []string      `json:"languages"`
	LastAirDate         Date          `json:"last_air_date"`
	Networks            []Network     `json:"networks"`
	NumberOfEpisodes    int           `json:"number_of_episodes"`
	NumberOfSeasons     int           `json:"number_of_seasons"`
	ProductionCompanies []BaseCompany `json:"production_companies"`
	Seasons             []TvSeason    `json:"seasons"`
	Status              string        `json:"status"`
	Type                string        `json:"type"`
	Tagline             string        `json:"tagline"`

	AlternativeTitles *AlternativeTitles `json:"alternative_titles,omitempty"`
	ContentRatings    *ContentRatings    `json:"content_ratings,omitempty"`
	Credits           *Credits           `json:"credits,omitempty"`
	ExternalIDs       *ExternalIDs       `json:"external_ids,omitempty"`
	Images            *Images            `json:"images,omitempty"`
	Keywords          *Keywords          `json:"keywords,omitempty"`
	Similar           *Page[BaseTvShow]  `json:"similar,omitempty"`
	Translations      *Translations      `json:"translations,omitempty"`
	Videos            *Videos            `json:"videos,omitempty"`
}

type ContentRating struct {
	ISO3166_1 string `json:"iso_3166_1"`
	Rating    string `json:"rating"`
}

type ContentRatings struct {
	ID      int             `json:"id"`
	Results []ContentRating `json:"results"`
}

var (
	routeTVSummary           = get("tv/{tv_id}")
	routeTVAlternativeTitles = get("tv/{tv_id}/alternative_titles")
	routeTVContentRatings    = get("tv/{tv_id}/content_ratings")
	routeTVCredits           = get("tv/{tv_id}/credits")
	routeTVExternalIDs       = get("tv/{tv_id}/external_ids")
	routeTVImages            = get("tv/{tv_id}/images")
	routeTVKeywords          = get("tv/{tv_id}/keywords")
	routeTVSimilar           = get("tv/{tv_id}/similar")
	routeTVTranslations      = get("tv/{tv_id}/translations")
	routeTVVideos            = get("tv/{tv_id}/videos")
	routeTVLatest            = get("tv/latest")
	routeTVAiringToday       = get("tv/airing_today")
	routeTVOnTheAir          = get("tv/on_the_air")
	routeTVPopular           = get("tv/popular")
	routeTVTopRated          = get("tv/top_rated")
)

// TVService wraps the /tv show endpoints.
type TVService struct {
	b *bundle
}

// Summary fetches the primary information about a show.
func (s *TVService) Summary(ctx context.Context, tvID int, opts *DetailOptions) (*TvShow, error) {
	return call[TvShow](ctx, s.b, routeTVSummary, ids(tvID), opts.apply(query{}))
}

func (s *TVService) AlternativeTitles(ctx context.Context, tvID int) (*AlternativeTitles, error) {
	return call[AlternativeTitles](ctx, s.b, routeTVAlternativeTitles, ids(tvID), nil)
}

func (s *TVService) ContentRatings(ctx context.Context, tvID int) (*ContentRatings, error) {
	return call[ContentRatings](ctx, s.b, routeTVContentRatings, ids(tvID), nil)
}

func (s *TVService) Credits(ctx context.Context, tvID int, language string) (*Credits, error) {
	return call[Credits](ctx, s.b, routeTVCredits, ids(tvID), languageQuery(language))
}

func (s *TVService) ExternalIDs(ctx context.Context, tvID int) (*ExternalIDs, error) {
	return call[ExternalIDs](ctx, s.b, routeTVExternalIDs, ids(tvID), nil)
}

func (s *TVService) Images(ctx context.Context, tvID int, language string) (*Images, error) {
	return call[Images](ctx, s.b, routeTVImages, ids(tvID), languageQuery(language))
}

func (s *TVService) Keywords(ctx context.Context, tvID int) (*Keywords, error) {
	return call[Keywords](ctx, s.b, routeTVKeywords, ids(tvID), nil)
}

func (s *TVService) Similar(ctx context.Context, tvID int, opts *PageOptions) (*TvShowResultsPage, error) {
	return call[TvShowResultsPage](ctx, s.b, routeTVSimilar, ids(tvID), opts.apply(query{}))
}

func (s *TVService) Translations(ctx context.Context, tvID int) (*Translations, error) {
	return call[Translations](ctx, s.b, routeTVTranslations, ids(tvID), nil)
}

func (s *TVService) Videos(ctx context.Context, tvID int, language string) (*Videos, error) {
	return call[Videos](ctx, s.b, routeTVVideos, ids(tvID), languageQuery(language))
}

// Latest returns the most recently created show.
func (s *TVService) Latest(ctx context.Context) (*TvShow, error) {
	return call[TvShow](ctx, s.b, routeTVLatest, nil, nil)
}

func (s *TVService) AiringToday(ctx context.Context, opts *PageOptions) (*TvShowResultsPage, error) {
	return call[TvShowResultsPage](ctx, s.b, routeTVAiringToday, nil, opts.apply(query{}))
}

func (s *TVService) OnTheAir(ctx context.Context, opts *PageOptions) (*TvShowResultsPage, error) {
	return call[TvShowResultsPage](ctx, s.b, routeTVOnTheAir, nil, opts.apply(query{}))
}

func (s *TVService) Popular(ctx context.Context, opts *PageOptions) (*TvShowResultsPage, error) {
	return call[TvShowResultsPage](ctx, s.b, routeTVPopular, nil, opts.apply(query{}))
}

func (s *TVService) TopRated(ctx context.Context, opts *PageOptions) (*TvShowResultsPage, error) {
	return call[TvShowResultsPage](ctx, s.b, routeTVTopRated, nil, opts.apply(query{}))
}
