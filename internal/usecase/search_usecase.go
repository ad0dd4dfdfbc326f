package usecase

import (
	"context"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"strings"
)

// Per-type cap for global search results. Totals are counted before the cap.
const globalSearchLimit = 5

const (
	homeNewsLimit     = 5
	homeArticlesLimit = 3
	homeVacancyLimit  = 6
	homeCategoryLimit = 8
)

type searchUsecase struct {
	vacancyRepo domain.VacancyRepository
	contentRepo domain.ContentRepository
	catalogRepo domain.CatalogRepository
}

func NewSearchUsecase(
	vacancyRepo domain.VacancyRepository,
	contentRepo domain.ContentRepository,
	catalogRepo domain.CatalogRepository,
) domain.SearchUsecase {
	return &searchUsecase{
		vacancyRepo: vacancyRepo,
		contentRepo: contentRepo,
		catalogRepo: catalogRepo,
	}
}

func (u *searchUsecase) GlobalSearch(ctx context.Context, q string) (*domain.GlobalSearchResult, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, apperror.BadRequest("Search query is required")
	}

	vacancies, vacancyTotal, err := u.vacancyRepo.Search(ctx, q, globalSearchLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	articles, articleTotal, err := u.contentRepo.SearchArticles(ctx, q, globalSearchLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	news, newsTotal, err := u.contentRepo.SearchNews(ctx, q, globalSearchLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.GlobalSearchResult{
		Query:        q,
		Vacancies:    vacancies,
		Articles:     articles,
		News:         news,
		TotalResults: vacancyTotal + articleTotal + newsTotal,
	}, nil
}

func (u *searchUsecase) Home(ctx context.Context) (*domain.HomePayload, error) {
	news, _, err := u.contentRepo.FetchNews(ctx, "", true, homeNewsLimit, 0)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	articles, _, err := u.contentRepo.FetchArticles(ctx, domain.ArticleFilter{}, true, homeArticlesLimit, 0)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	vacancies, err := u.vacancyRepo.FetchLatestOpen(ctx, homeVacancyLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	categories, err := u.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(categories) > homeCategoryLimit {
		categories = categories[:homeCategoryLimit]
	}

	return &domain.HomePayload{
		LatestNews:      news,
		LatestArticles:  articles,
		LatestVacancies: vacancies,
		JobCategories:   categories,
	}, nil
}
