package tmdb

import "context"

// SortBy orders discover results.
type SortBy string

const (
	SortPopularityDesc     SortBy = "popularity.desc"
	SortPopularityAsc      SortBy = "popularity.asc"
	SortReleaseDateDesc    SortBy = "release_date.desc"
	SortReleaseDateAsc     SortBy = "release_date.asc"
	SortPrimaryReleaseDesc SortBy = "primary_release_date.desc"
	SortPrimaryReleaseAsc  SortBy = "primary_release_date.asc"
	SortFirstAirDateDesc   SortBy = "first_air_date.desc"
	SortFirstAirDateAsc    SortBy = "first_air_date.asc"
	SortRevenueDesc        SortBy = "revenue.desc"
	SortVoteAverageDesc    SortBy = "vote_average.desc"
	SortVoteAverageAsc     SortBy = "vote_average.asc"
	SortVoteCountDesc      SortBy = "vote_count.desc"
	SortOriginalTitleAsc   SortBy = "original_title.asc"
)

// DiscoverMovieOptions filters GET /discover/movie. List fields are sent
// comma-separated, which TMDB treats as AND.
type DiscoverMovieOptions struct {
	Page                  int
	Language              string
	Region                string
	SortBy                SortBy
	IncludeAdult          bool
	IncludeVideo          bool
	Year                  int
	PrimaryReleaseYear    int
	PrimaryReleaseDateGTE Date
	PrimaryReleaseDateLTE Date
	ReleaseDateGTE        Date
	ReleaseDateLTE        Date
	VoteCountGTE          int
	VoteAverageGTE        float64
	WithGenres            []string
	WithoutGenres         []string
	WithKeywords          []string
	WithCompanies         []string
	WithCast              []string
	WithCrew              []string
	WithPeople            []string
	WithOriginalLanguage  string
	WithRuntimeGTE        int
	WithRuntimeLTE        int
	Certification         string
	CertificationCountry  string
}

func (o *DiscoverMovieOptions) values() query {
	q := query{}
	if o == nil {
		return q
	}
	q.setInt("page", o.Page)
	q.set("language", o.Language)
	q.set("region", o.Region)
	q.set("sort_by", string(o.SortBy))
	q.setBool("include_adult", o.IncludeAdult)
	q.setBool("include_video", o.IncludeVideo)
	q.setInt("year", o.Year)
	q.setInt("primary_release_year", o.PrimaryReleaseYear)
	q.setDate("primary_release_date.gte", o.PrimaryReleaseDateGTE)
	q.setDate("primary_release_date.lte", o.PrimaryReleaseDateLTE)
	q.setDate("release_date.gte", o.ReleaseDateGTE)
	q.setDate("release_date.lte", o.ReleaseDateLTE)
	q.setInt("vote_count.gte", o.VoteCountGTE)
	q.setFloat("vote_average.gte", o.VoteAverageGTE)
	q.setList("with_genres", o.WithGenres)
	q.setList("without_genres", o.WithoutGenres)
	q.setList("with_keywords", o.WithKeywords)
	q.setList("with_companies", o.WithCompanies)
	q.setList("with_cast", o.WithCast)
	q.setList("with_crew", o.WithCrew)
	q.setList("with_people", o.WithPeople)
	q.set("with_original_language", o.WithOriginalLanguage)
	q.setInt("with_runtime.gte", o.WithRuntimeGTE)
	q.setInt("with_runtime.lte", o.WithRuntimeLTE)
	q.set("certification", o.Certification)
	q.set("certification_country", o.CertificationCountry)
	return q
}

// DiscoverTVOptions filters GET /discover/tv.
type DiscoverTVOptions struct {
	Page                 int
	Language             string
	SortBy               SortBy
	FirstAirDateYear     int
	FirstAirDateGTE      Date
	FirstAirDateLTE      Date
	AirDateGTE           Date
	AirDateLTE           Date
	VoteCountGTE         int
	VoteAverageGTE       float64
	WithGenres           []string
	WithoutGenres        []string
	WithKeywords         []string
	WithNetworks         []string
	WithCompanies        []string
	WithOriginalLanguage string
	Timezone             string
}

func (o *DiscoverTVOptions) values() query {
	q := query{}
	if o == nil {
		return q
	}
	q.setInt("page", o.Page)
	q.set("language", o.Language)
	q.set("sort_by", string(o.SortBy))
	q.setInt("first_air_date_year", o.FirstAirDateYear)
	q.setDate("first_air_date.gte", o.FirstAirDateGTE)
	q.setDate("first_air_date.lte", o.FirstAirDateLTE)
	q.setDate("air_date.gte", o.AirDateGTE)
	q.setDate("air_date.lte", o.AirDateLTE)
	q.setInt("vote_count.gte", o.VoteCountGTE)
	q.setFloat("vote_average.gte", o.VoteAverageGTE)
	q.setList("with_genres", o.WithGenres)
	q.setList("without_genres", o.WithoutGenres)
	q.setList("with_keywords", o.WithKeywords)
	q.setList("with_networks", o.WithNetworks)
	q.setList("with_companies", o.WithCompanies)
	q.set("with_original_language", o.WithOriginalLanguage)
	q.set("timezone", o.Timezone)
	return q
}

var (
	routeDiscoverMovie = get("discover/movie")
	routeDiscoverTV    = get("discover/tv")
)

// DiscoverService wraps the /discover endpoints.
type DiscoverService struct {
	b *bundle
}

func (s *DiscoverService) Movie(ctx context.Context, opts *DiscoverMovieOptions) (*MovieResultsPage, error) {
	return call[MovieResultsPage](ctx, s.b, routeDiscoverMovie, nil, opts.values())
}

func (s *DiscoverService) TV(ctx context.Context, opts *DiscoverTVOptions) (*TvShowResultsPage, error) {
	return call[TvShowResultsPage](ctx, s.b, routeDiscoverTV, nil, opts.values())
}
