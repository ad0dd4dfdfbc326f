package domain

import "context"

// GlobalSearchResult holds the top matches per type plus the total count of
// all matches across the three types before truncation.
type GlobalSearchResult struct {
	Query        string    `json:"query"`
	Vacancies    []Vacancy `json:"vacancies"`
	Articles     []Article `json:"articles"`
	News         []News    `json:"news"`
	TotalResults int64     `json:"total_results"`
}

// HomePayload is the aggregate for the landing page.
type HomePayload struct {
	LatestNews      []News     `json:"latest_news"`
	LatestArticles  []Article  `json:"latest_articles"`
	LatestVacancies []Vacancy  `json:"latest_vacancies"`
	JobCategories   []Category `json:"job_categories"`
}

type SearchUsecase interface {
	GlobalSearch(ctx context.Context, q string) (*GlobalSearchResult, error)
	Home(ctx context.Context) (*HomePayload, error)
}
