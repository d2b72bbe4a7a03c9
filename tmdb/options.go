package tmdb

// PageOptions are the optional parameters shared by paged listings.
type PageOptions struct {
	Page     int
	Language string
}

func (o *PageOptions) apply(q query) query {
	if o == nil {
		return q
	}
	q.setInt("page", o.Page)
	q.set("language", o.Language)
	return q
}

// DetailOptions are the optional parameters of summary endpoints.
// AppendToResponse names sub-resources (e.g. "credits", "images") to embed in
// the same response.
type DetailOptions struct {
	Language         string
	AppendToResponse []string
}

func (o *DetailOptions) apply(q query) query {
	if o == nil {
		return q
	}
	q.set("language", o.Language)
	q.setList("append_to_response", o.AppendToResponse)
	return q
}

// Common append_to_response values.
const (
	AppendAlternativeTitles = "alternative_titles"
	AppendCredits           = "credits"
	AppendExternalIDs       = "external_ids"
	AppendImages            = "images"
	AppendKeywords          = "keywords"
	AppendReleases          = "releases"
	AppendSimilar           = "similar"
	AppendTranslations      = "translations"
	AppendVideos            = "videos"
	AppendReviews           = "reviews"
	AppendContentRatings    = "content_ratings"
)

func languageQuery(language string) query {
	q := query{}
	q.set("language", language)
	return q
}
