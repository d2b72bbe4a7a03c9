package tmdb

// Page is one page of a paged TMDB listing. Results is never nil after a
// successful call.
type Page[T any] struct {
	Page         int `json:"page"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
	Results      []T `json:"results"`
}

func (p *Page[T]) normalize() {
	if p.Results == nil {
		p.Results = []T{}
	}
}

// Empty reports whether the page carries no results.
func (p *Page[T]) Empty() bool {
	return p == nil || len(p.Results) == 0
}

// HasMore reports whether TMDB has pages after this one.
func (p *Page[T]) HasMore() bool {
	return p != nil && p.Page < p.TotalPages
}

type (
	MovieResultsPage      = Page[BaseMovie]
	TvShowResultsPage     = Page[BaseTvShow]
	PersonResultsPage     = Page[BasePerson]
	CollectionResultsPage = Page[BaseCollection]
	CompanyResultsPage    = Page[BaseCompany]
	KeywordResultsPage    = Page[Keyword]
	ReviewResultsPage     = Page[Review]
)
