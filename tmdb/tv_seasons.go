package tmdb

import "context"

// TvSeason is a season summary. Episodes is populated by the season endpoint
// but not by the show summary.
type TvSeason struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Overview     string      `json:"overview"`
	SeasonNumber int         `json:"season_number"`
	AirDate      Date        `json:"air_date"`
	EpisodeCount int         `json:"episode_count"`
	PosterPath   string      `json:"poster_path"`
	Episodes     []TvEpisode `json:"episodes,omitempty"`

	Credits     *Credits     `json:"credits,omitempty"`
	ExternalIDs *ExternalIDs `json:"external_ids,omitempty"`
	Images      *Images      `json:"images,omitempty"`
	Videos      *Videos      `json:"videos,omitempty"`
}

var (
	routeSeasonSummary     = get("tv/{tv_id}/season/{season_number}")
	routeSeasonCredits     = get("tv/{tv_id}/season/{season_number}/credits")
	routeSeasonExternalIDs = get("tv/{tv_id}/season/{season_number}/external_ids")
	routeSeasonImages      = get("tv/{tv_id}/season/{season_number}/images")
	routeSeasonVideos      = get("tv/{tv_id}/season/{season_number}/videos")
)

// TVSeasonsService wraps the /tv/{tv_id}/season endpoints.
type TVSeasonsService struct {
	b *bundle
}

// Summary fetches a season with its episode list.
func (s *TVSeasonsService) Summary(ctx context.Context, tvID, season int, opts *DetailOptions) (*TvSeason, error) {
	return call[TvSeason](ctx, s.b, routeSeasonSummary, ids(tvID, season), opts.apply(query{}))
}

func (s *TVSeasonsService) Credits(ctx context.Context, tvID, season int) (*Credits, error) {
	return call[Credits](ctx, s.b, routeSeasonCredits, ids(tvID, season), nil)
}

func (s *TVSeasonsService) ExternalIDs(ctx context.Context, tvID, season int) (*ExternalIDs, error) {
	return call[ExternalIDs](ctx, s.b, routeSeasonExternalIDs, ids(tvID, season), nil)
}

func (s *TVSeasonsService) Images(ctx context.Context, tvID, season int, language string) (*Images, error) {
	return call[Images](ctx, s.b, routeSeasonImages, ids(tvID, season), languageQuery(language))
}

func (s *TVSeasonsService) Videos(ctx context.Context, tvID, season int, language string) (*Videos, error) {
	return call[Videos](ctx, s.b, routeSeasonVideos, ids(tvID, season), languageQuery(language))
}
