package tmdb

import "context"

// TvEpisode is one episode of a season.
type TvEpisode struct {
	ID             int          `json:"id"`
	Name           string       `json:"name"`
	Overview       string       `json:"overview"`
	SeasonNumber   int          `json:"season_number"`
	EpisodeNumber  int          `json:"episode_number"`
	AirDate        Date         `json:"air_date"`
	Runtime        int          `json:"runtime"`
	ProductionCode string       `json:"production_code"`
	StillPath      string       `json:"still_path"`
	VoteAverage    float64      `json:"vote_average"`
	VoteCount      int          `json:"vote_count"`
	Crew           []CrewMember `json:"crew,omitempty"`
	GuestStars     []CastMember `json:"guest_stars,omitempty"`

	Credits     *Credits     `json:"credits,omitempty"`
	ExternalIDs *ExternalIDs `json:"external_ids,omitempty"`
	Images      *Images      `json:"images,omitempty"`
	Videos      *Videos      `json:"videos,omitempty"`
}

var (
	routeEpisodeSummary     = get("tv/{tv_id}/season/{season_number}/episode/{episode_number}")
	routeEpisodeCredits     = get("tv/{tv_id}/season/{season_number}/episode/{episode_number}/credits")
	routeEpisodeExternalIDs = get("tv/{tv_id}/season/{season_number}/episode/{episode_number}/external_ids")
	routeEpisodeImages      = get("tv/{tv_id}/season/{season_number}/episode/{episode_number}/images")
	routeEpisodeVideos      = get("tv/{tv_id}/season/{season_number}/episode/{episode_number}/videos")
)

// TVEpisodesService wraps the /tv/{tv_id}/season/{n}/episode endpoints.
type TVEpisodesService struct {
	b *bundle
}

func (s *TVEpisodesService) Summary(ctx context.Context, tvID, season, episode int, opts *DetailOptions) (*TvEpisode, error) {
	return call[TvEpisode](ctx, s.b, routeEpisodeSummary, ids(tvID, season, episode), opts.apply(query{}))
}

func (s *TVEpisodesService) Credits(ctx context.Context, tvID, season, episode int) (*Credits, error) {
	return call[Credits](ctx, s.b, routeEpisodeCredits, ids(tvID, season, episode), nil)
}

func (s *TVEpisodesService) ExternalIDs(ctx context.Context, tvID, season, episode int) (*ExternalIDs, error) {
	return call[ExternalIDs](ctx, s.b, routeEpisodeExternalIDs, ids(tvID, season, episode), nil)
}

// Images returns episode stills.
func (s *TVEpisodesService) Images(ctx context.Context, tvID, season, episode int) (*Images, error) {
	return call[Images](ctx, s.b, routeEpisodeImages, ids(tvID, season, episode), nil)
}

func (s *TVEpisodesService) Videos(ctx context.Context, tvID, season, episode int, language string) (*Videos, error) {
	return call[Videos](ctx, s.b, routeEpisodeVideos, ids(tvID, season, episode), languageQuery(language))
}
