package tmdb

// Genre is a movie or TV genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// BaseCompany is a production company as returned by search and summaries.
type BaseCompany struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LogoPath      string `json:"logo_path"`
	OriginCountry string `json:"origin_country"`
}

// Network is a TV broadcaster.
type Network struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LogoPath      string `json:"logo_path"`
	OriginCountry string `json:"origin_country"`
}

type Country struct {
	ISO3166_1 string `json:"iso_3166_1"`
	Name      string `json:"name"`
}

type SpokenLanguage struct {
	ISO639_1    string `json:"iso_639_1"`
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
}

type Keyword struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Keywords wraps a keyword list. Movies use "keywords", TV shows "results".
type Keywords struct {
	ID       int       `json:"id"`
	Keywords []Keyword `json:"keywords"`
	Results  []Keyword `json:"results"`
}

// All returns the keywords regardless of which key TMDB used.
func (k *Keywords) All() []Keyword {
	if k == nil {
		return nil
	}
	if len(k.Keywords) > 0 {
		return k.Keywords
	}
	return k.Results
}

type Image struct {
	FilePath    string  `json:"file_path"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AspectRatio float64 `json:"aspect_ratio"`
	ISO639_1    string  `json:"iso_639_1"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

type Images struct {
	ID        int     `json:"id"`
	Backdrops []Image `json:"backdrops"`
	Posters   []Image `json:"posters"`
	Logos     []Image `json:"logos"`
	Profiles  []Image `json:"profiles"`
	Stills    []Image `json:"stills"`
}

type Video struct {
	ID        string `json:"id"`
	ISO639_1  string `json:"iso_639_1"`
	ISO3166_1 string `json:"iso_3166_1"`
	Key       string `json:"key"`
	Name      string `json:"name"`
	Site      string `json:"site"`
	Size      int    `json:"size"`
	Type      string `json:"type"`
	Official  bool   `json:"official"`
}

type Videos struct {
	ID      int     `json:"id"`
	Results []Video `json:"results"`
}

// CastMember is one credited performer.
type CastMember struct {
	ID          int    `json:"id"`
	CreditID    string `json:"credit_id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	Order       int    `json:"order"`
	ProfilePath string `json:"profile_path"`
	CastID      int    `json:"cast_id"`
}

// CrewMember is one credited off-screen contributor.
type CrewMember struct {
	ID          int    `json:"id"`
	CreditID    string `json:"credit_id"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	Job         string `json:"job"`
	ProfilePath string `json:"profile_path"`
}

type Credits struct {
	ID         int          `json:"id"`
	Cast       []CastMember `json:"cast"`
	Crew       []CrewMember `json:"crew"`
	GuestStars []CastMember `json:"guest_stars"`
}

// ExternalIDs lists identifiers of the same entity on other sites. Not every
// field applies to every entity type.
type ExternalIDs struct {
	ID          int    `json:"id"`
	IMDBID      string `json:"imdb_id"`
	TVDBID      int    `json:"tvdb_id"`
	TVRageID    int    `json:"tvrage_id"`
	FreebaseID  string `json:"freebase_id"`
	FreebaseMID string `json:"freebase_mid"`
	WikidataID  string `json:"wikidata_id"`
	FacebookID  string `json:"facebook_id"`
	InstagramID string `json:"instagram_id"`
	TwitterID   string `json:"twitter_id"`
}

type AlternativeTitle struct {
	ISO3166_1 string `json:"iso_3166_1"`
	Title     string `json:"title"`
	Type      string `json:"type"`
}

// AlternativeTitles wraps a title list. Movies use "titles", TV shows
// "results".
type AlternativeTitles struct {
	ID      int                `json:"id"`
	Titles  []AlternativeTitle `json:"titles"`
	Results []AlternativeTitle `json:"results"`
}

// All returns the titles regardless of which key TMDB used.
func (a *AlternativeTitles) All() []AlternativeTitle {
	if a == nil {
		return nil
	}
	if len(a.Titles) > 0 {
		return a.Titles
	}
	return a.Results
}

type TranslationData struct {
	Title    string `json:"title"`
	Name     string `json:"name"`
	Overview string `json:"overview"`
	Homepage string `json:"homepage"`
	Tagline  string `json:"tagline"`
}

type Translation struct {
	ISO3166_1   string          `json:"iso_3166_1"`
	ISO639_1    string          `json:"iso_639_1"`
	Name        string          `json:"name"`
	EnglishName string          `json:"english_name"`
	Data        TranslationData `json:"data"`
}

type Translations struct {
	ID           int           `json:"id"`
	Translations []Translation `json:"translations"`
}

type Review struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
	URL     string `json:"url"`
}
