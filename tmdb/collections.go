package tmdb

import "context"

// BaseCollection is the collection shape used in search results and movie
// summaries.
type BaseCollection struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	PosterPath   string `json:"poster_path"`
	BackdropPath string `json:"backdrop_path"`
}

// Collection is a movie series with its parts.
type Collection struct {
	BaseCollection
	Overview string      `json:"overview"`
	Parts    []BaseMovie `json:"parts"`

	Images *Images `json:"images,omitempty"`
}

var (
	routeCollectionSummary = get("collection/{collection_id}")
	routeCollectionImages  = get("collection/{collection_id}/images")
)

// CollectionsService wraps the /collection endpoints.
type CollectionsService struct {
	b *bundle
}

func (s *CollectionsService) Summary(ctx context.Context, collectionID int, opts *DetailOptions) (*Collection, error) {
	return call[Collection](ctx, s.b, routeCollectionSummary, ids(collectionID), opts.apply(query{}))
}

func (s *CollectionsService) Images(ctx context.Context, collectionID int, language string) (*Images, error) {
	return call[Images](ctx, s.b, routeCollectionImages, ids(collectionID), languageQuery(language))
}
