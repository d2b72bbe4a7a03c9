package tmdb

import "context"

// BasePerson is the person shape used in lists and search results.
type BasePerson struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	ProfilePath        string  `json:"profile_path"`
	Adult              bool    `json:"adult"`
	Popularity         float64 `json:"popularity"`
	Gender             int     `json:"gender"`
	KnownForDepartment string  `json:"known_for_department"`
	KnownFor           []Media `json:"known_for,omitempty"`
	MediaType          string  `json:"media_type,omitempty"`
}

// Person is the full person summary.
type Person struct {
	BasePerson
	Biography    string   `json:"biography"`
	Birthday     Date     `json:"birthday"`
	Deathday     Date     `json:"deathday"`
	PlaceOfBirth string   `json:"place_of_birth"`
	Homepage     string   `json:"homepage"`
	IMDBID       string   `json:"imdb_id"`
	AlsoKnownAs  []string `json:"also_known_as"`

	MovieCredits    *PersonCredits `json:"movie_credits,omitempty"`
	TVCredits       *PersonCredits `json:"tv_credits,omitempty"`
	CombinedCredits *PersonCredits `json:"combined_credits,omitempty"`
	ExternalIDs     *ExternalIDs   `json:"external_ids,omitempty"`
	Images          *Images        `json:"images,omitempty"`
}

// PersonCastCredit is a role the person played. Movie credits carry Title and
// ReleaseDate, TV credits Name and FirstAirDate.
type PersonCastCredit struct {
	ID           int    `json:"id"`
	CreditID     string `json:"credit_id"`
	Character    string `json:"character"`
	Title        string `json:"title"`
	Name         string `json:"name"`
	ReleaseDate  Date   `json:"release_date"`
	FirstAirDate Date   `json:"first_air_date"`
	EpisodeCount int    `json:"episode_count"`
	PosterPath   string `json:"poster_path"`
	MediaType    string `json:"media_type,omitempty"`
}

type PersonCrewCredit struct {
	ID           int    `json:"id"`
	CreditID     string `json:"credit_id"`
	Department   string `json:"department"`
	Job          string `json:"job"`
	Title        string `json:"title"`
	Name         string `json:"name"`
	ReleaseDate  Date   `json:"release_date"`
	FirstAirDate Date   `json:"first_air_date"`
	PosterPath   string `json:"poster_path"`
	MediaType    string `json:"media_type,omitempty"`
}

type PersonCredits struct {
	ID   int                `json:"id"`
	Cast []PersonCastCredit `json:"cast"`
	Crew []PersonCrewCredit `json:"crew"`
}

var (
	routePersonSummary         = get("person/{person_id}")
	routePersonMovieCredits    = get("person/{person_id}/movie_credits")
	routePersonTVCredits       = get("person/{person_id}/tv_credits")
	routePersonCombinedCredits = get("person/{person_id}/combined_credits")
	routePersonExternalIDs     = get("person/{person_id}/external_ids")
	routePersonImages          = get("person/{person_id}/images")
	routePersonPopular         = get("person/popular")
	routePersonLatest          = get("person/latest")
)

// PeopleService wraps the /person endpoints.
type PeopleService struct {
	b *bundle
}

func (s *PeopleService) Summary(ctx context.Context, personID int, opts *DetailOptions) (*Person, error) {
	return call[Person](ctx, s.b, routePersonSummary, ids(personID), opts.apply(query{}))
}

func (s *PeopleService) MovieCredits(ctx context.Context, personID int, language string) (*PersonCredits, error) {
	return call[PersonCredits](ctx, s.b, routePersonMovieCredits, ids(personID), languageQuery(language))
}

func (s *PeopleService) TVCredits(ctx context.Context, personID int, language string) (*PersonCredits, error) {
	return call[PersonCredits](ctx, s.b, routePersonTVCredits, ids(personID), languageQuery(language))
}

// CombinedCredits lists movie and TV credits together; MediaType tells them
// apart.
func (s *PeopleService) CombinedCredits(ctx context.Context, personID int, language string) (*PersonCredits, error) {
	return call[PersonCredits](ctx, s.b, routePersonCombinedCredits, ids(personID), languageQuery(language))
}

func (s *PeopleService) ExternalIDs(ctx context.Context, personID int) (*ExternalIDs, error) {
	return call[ExternalIDs](ctx, s.b, routePersonExternalIDs, ids(personID), nil)
}

// Images returns profile images.
func (s *PeopleService) Images(ctx context.Context, personID int) (*Images, error) {
	return call[Images](ctx, s.b, routePersonImages, ids(personID), nil)
}

func (s *PeopleService) Popular(ctx context.Context, opts *PageOptions) (*PersonResultsPage, error) {
	return call[PersonResultsPage](ctx, s.b, routePersonPopular, nil, opts.apply(query{}))
}

func (s *PeopleService) Latest(ctx context.Context) (*Person, error) {
	return call[Person](ctx, s.b, routePersonLatest, nil, nil)
}
