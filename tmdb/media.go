package tmdb

import (
	"encoding/json"
	"fmt"
)

// Media types reported in the media_type field of mixed listings.
const (
	MediaTypeMovie  = "movie"
	MediaTypeTV     = "tv"
	MediaTypePerson = "person"
)

// Media is one entry of a mixed listing such as a person's known_for. Exactly
// one of Movie, TvShow or Person is set, according to MediaType.
type Media struct {
	MediaType string
	Movie     *BaseMovie
	TvShow    *BaseTvShow
	Person    *BasePerson
}

func (m *Media) UnmarshalJSON(data []byte) error {
	var head struct {
		MediaType string `json:"media_type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	*m = Media{MediaType: head.MediaType}
	switch head.MediaType {
	case MediaTypeMovie:
		m.Movie = &BaseMovie{}
		return json.Unmarshal(data, m.Movie)
	case MediaTypeTV:
		m.TvShow = &BaseTvShow{}
		return json.Unmarshal(data, m.TvShow)
	case MediaTypePerson:
		m.Person = &BasePerson{}
		return json.Unmarshal(data, m.Person)
	default:
		return fmt.Errorf("tmdb: unknown media_type %q", head.MediaType)
	}
}

func (m Media) MarshalJSON() ([]byte, error) {
	switch {
	case m.Movie != nil:
		return json.Marshal(m.Movie)
	case m.TvShow != nil:
		return json.Marshal(m.TvShow)
	case m.Person != nil:
		return json.Marshal(m.Person)
	}
	return []byte("null"), nil
}

// ID returns the TMDB id of whichever entity is set.
func (m Media) ID() int {
	switch {
	case m.Movie != nil:
		return m.Movie.ID
	case m.TvShow != nil:
		return m.TvShow.ID
	case m.Person != nil:
		return m.Person.ID
	}
	return 0
}

// Title returns the movie title, show name, or person name.
func (m Media) Title() string {
	switch {
	case m.Movie != nil:
		return m.Movie.Title
	case m.TvShow != nil:
		return m.TvShow.Name
	case m.Person != nil:
		return m.Person.Name
	}
	return ""
}
