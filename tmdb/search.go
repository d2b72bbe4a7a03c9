package tmdb

import (
	"context"
	"errors"
	"strings"
)

// SearchType selects TMDB's matching mode for name searches.
type SearchType string

const (
	SearchTypePhrase SearchType = "phrase"
	SearchTypeNgram  SearchType = "ngram"
)

// SearchOptions holds the optional search parameters. Not every endpoint
// accepts every field; unsupported fields are ignored for that endpoint.
type SearchOptions struct {
	Page               int
	Language           string
	IncludeAdult       bool
	Year               int
	PrimaryReleaseYear int
	FirstAirDateYear   int
	SearchType         SearchType
}

var (
	routeSearchCompany    = get("search/company")
	routeSearchCollection = get("search/collection")
	routeSearchKeyword    = get("search/keyword")
	routeSearchMovie      = get("search/movie")
	routeSearchPerson     = get("search/person")
	routeSearchTV         = get("search/tv")
	routeSearchMulti      = get("search/multi")
)

// SearchService wraps the /search endpoints.
type SearchService struct {
	b *bundle
}

func searchQuery(term string) (query, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, errors.New("tmdb: search query is required")
	}
	q := query{}
	q.set("query", term)
	return q, nil
}

func (o *SearchOptions) page(q query) {
	if o != nil {
		q.setInt("page", o.Page)
	}
}

func (o *SearchOptions) language(q query) {
	if o != nil {
		q.set("language", o.Language)
	}
}

func (o *SearchOptions) adult(q query) {
	if o != nil {
		q.setBool("include_adult", o.IncludeAdult)
	}
}

func (o *SearchOptions) searchType(q query) {
	if o != nil {
		q.set("search_type", string(o.SearchType))
	}
}

// Company searches production companies by name.
func (s *SearchService) Company(ctx context.Context, term string, opts *SearchOptions) (*CompanyResultsPage, error) {
	q, err := searchQuery(term)
	if err != nil {
		return nil, err
	}
	opts.page(q)
	return call[CompanyResultsPage](ctx, s.b, routeSearchCompany, nil, q)
}

// Collection searches movie collections by name.
func (s *SearchService) Collection(ctx context.Context, term string, opts *SearchOptions) (*CollectionResultsPage, error) {
	q, err := searchQuery(term)
	if err != nil {
		return nil, err
	}
	opts.page(q)
	opts.language(q)
	return call[CollectionResultsPage](ctx, s.b, routeSearchCollection, nil, q)
}

// Keyword searches keywords by name.
func (s *SearchService) Keyword(ctx context.Context, term string, opts *SearchOptions) (*KeywordResultsPage, error) {
	q, err := searchQuery(term)
	if err != nil {
		return nil, err
	}
	opts.page(q)
	return call[KeywordResultsPage](ctx, s.b, routeSearchKeyword, nil, q)
}

// Movie searches movies by title.
func (s *SearchService) Movie(ctx context.Context, term string, opts *SearchOptions) (*MovieResultsPage, error) {
	q, err := searchQuery(term)
	if err != nil {
		return nil, err
	}
	opts.page(q)
	opts.language(q)
	opts.adult(q)
	if opts != nil {
		q.setInt("year", opts.Year)
		q.setInt("primary_release_year", opts.PrimaryReleaseYear)
	}
	opts.searchType(q)
	return call[MovieResultsPage](ctx, s.b, routeSearchMovie, nil, q)
}

// Person searches people by name.
func (s *SearchService) Person(ctx context.Context, term string, opts *SearchOptions) (*PersonResultsPage, error) {
	q, err := searchQuery(term)
	if err != nil {
		return nil, err
	}
	opts.page(q)
	opts.adult(q)
	opts.searchType(q)
	return call[PersonResultsPage](ctx, s.b, routeSearchPerson, nil, q)
}

// TV searches shows by name.
func (s *SearchService) TV(ctx context.Context, term string, opts *SearchOptions) (*TvShowResultsPage, error) {
	q, err := searchQuery(term)
	if err != nil {
		return nil, err
	}
	opts.page(q)
	opts.language(q)
	if opts != nil {
		q.setInt("first_air_date_year", opts.FirstAirDateYear)
	}
	opts.searchType(q)
	return call[TvShowResultsPage](ctx, s.b, routeSearchTV, nil, q)
}

// Multi searches movies, shows and people in one listing.
func (s *SearchService) Multi(ctx context.Context, term string, opts *SearchOptions) (*Page[Media], error) {
	q, err := searchQuery(term)
	if err != nil {
		return nil, err
	}
	opts.page(q)
	opts.language(q)
	opts.adult(q)
	return call[Page[Media]](ctx, s.b, routeSearchMulti, nil, q)
}
