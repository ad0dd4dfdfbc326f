package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestGlobalSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an empty query", func(t *testing.T) {
		uc := usecase.NewSearchUsecase(new(MockVacancyRepo), new(MockContentRepo), new(MockCatalogRepo))
		_, err := uc.GlobalSearch(ctx, "   ")

		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindBadRequest))
	})

	t.Run("Should cap each type at five and sum the uncapped totals", func(t *testing.T) {
		vacancyRepo := new(MockVacancyRepo)
		vacancyRepo.On("Search", ctx, "golang", 5).Return(make([]domain.Vacancy, 5), int64(23), nil)

		contentRepo := new(MockContentRepo)
		contentRepo.On("SearchArticles", ctx, "golang", 5).Return(make([]domain.Article, 3), int64(3), nil)
		contentRepo.On("SearchNews", ctx, "golang", 5).Return(make([]domain.News, 5), int64(12), nil)

		uc := usecase.NewSearchUsecase(vacancyRepo, contentRepo, new(MockCatalogRepo))
		result, err := uc.GlobalSearch(ctx, "  golang ")

		assert.NoError(t, err)
		assert.Equal(t, "golang", result.Query)
		assert.Len(t, result.Vacancies, 5)
		assert.Len(t, result.Articles, 3)
		assert.Len(t, result.News, 5)
		assert.Equal(t, int64(38), result.TotalResults)
	})
}

func TestHome(t *testing.T) {
	ctx := context.Background()

	t.Run("Should aggregate published content, latest vacancies and categories", func(t *testing.T) {
		contentRepo := new(MockContentRepo)
		contentRepo.On("FetchNews", ctx, "", true, 5, 0).Return([]domain.News{{ID: 1}}, int64(1), nil)
		contentRepo.On("FetchArticles", ctx, domain.ArticleFilter{}, true, 3, 0).Return([]domain.Article{{ID: 1}, {ID: 2}}, int64(2), nil)

		vacancyRepo := new(MockVacancyRepo)
		vacancyRepo.On("FetchLatestOpen", ctx, 6).Return([]domain.Vacancy{{ID: 1}, {ID: 2}, {ID: 3}}, nil)

		catalogRepo := new(MockCatalogRepo)
		catalogRepo.On("ListCategories", ctx).Return([]domain.Category{{ID: 1, Name: "Engineering"}}, nil)

		uc := usecase.NewSearchUsecase(vacancyRepo, contentRepo, catalogRepo)
		payload, err := uc.Home(ctx)

		assert.NoError(t, err)
		assert.Len(t, payload.LatestNews, 1)
		assert.Len(t, payload.LatestArticles, 2)
		assert.Len(t, payload.LatestVacancies, 3)
		assert.Len(t, payload.JobCategories, 1)
	})
}
