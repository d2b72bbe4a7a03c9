package tmdb

import (
	"context"
	"fmt"
)

// ExternalSource names the site an external id belongs to.
type ExternalSource string

const (
	SourceIMDB        ExternalSource = "imdb_id"
	SourceTVDB        ExternalSource = "tvdb_id"
	SourceTVRage      ExternalSource = "tvrage_id"
	SourceFreebase    ExternalSource = "freebase_id"
	SourceFreebaseMID ExternalSource = "freebase_mid"
	SourceWikidata    ExternalSource = "wikidata_id"
	SourceFacebook    ExternalSource = "facebook_id"
	SourceTwitter     ExternalSource = "twitter_id"
	SourceInstagram   ExternalSource = "instagram_id"
)

// ParseExternalSource maps a source name to its ExternalSource.
func ParseExternalSource(value string) (ExternalSource, error) {
	switch src := ExternalSource(value); src {
	case SourceIMDB, SourceTVDB, SourceTVRage, SourceFreebase, SourceFreebaseMID,
		SourceWikidata, SourceFacebook, SourceTwitter, SourceInstagram:
		return src, nil
	}
	return "", fmt.Errorf("tmdb: unknown external source %q", value)
}

// FindResults groups matches by entity type.
type FindResults struct {
	MovieResults     []BaseMovie  `json:"movie_results"`
	TvResults        []BaseTvShow `json:"tv_results"`
	PersonResults    []BasePerson `json:"person_results"`
	TvSeasonResults  []TvSeason   `json:"tv_season_results"`
	TvEpisodeResults []TvEpisode  `json:"tv_episode_results"`
}

var routeFind = get("find/{external_id}")

// FindService looks entities up by an id from another site.
type FindService struct {
	b *bundle
}

func (s *FindService) Find(ctx context.Context, externalID string, source ExternalSource, language string) (*FindResults, error) {
	if source == "" {
		return nil, fmt.Errorf("tmdb: find %q: external source is required", externalID)
	}
	q := query{}
	q.set("external_source", string(source))
	q.set("language", language)
	return call[FindResults](ctx, s.b, routeFind, []string{externalID}, q)
}
