package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetArticle(t *testing.T) {
	ctx := context.Background()
	staff := &domain.User{ID: 99, Role: domain.RoleAdmin}

	t.Run("Should hide drafts from anonymous readers", func(t *testing.T) {
		contentRepo := new(MockContentRepo)
		contentRepo.On("GetArticleBySlug", ctx, "draft-post").Return(&domain.Article{ID: 1, Slug: "draft-post", IsPublished: false}, nil)

		uc := usecase.NewContentUsecase(contentRepo)
		_, err := uc.GetArticle(ctx, nil, "draft-post")

		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
		contentRepo.AssertNotCalled(t, "IncrementArticleViews", mock.Anything, mock.Anything)
	})

	t.Run("Should show drafts to staff", func(t *testing.T) {
		contentRepo := new(MockContentRepo)
		contentRepo.On("GetArticleBySlug", ctx, "draft-post").Return(&domain.Article{ID: 1, Slug: "draft-post", IsPublished: false, Views: 3}, nil)
		contentRepo.On("IncrementArticleViews", ctx, int64(1)).Return(nil)

		uc := usecase.NewContentUsecase(contentRepo)
		article, err := uc.GetArticle(ctx, staff, "draft-post")

		assert.NoError(t, err)
		assert.Equal(t, int64(4), article.Views)
	})

	t.Run("Should not fail the read when the view bump fails", func(t *testing.T) {
		contentRepo := new(MockContentRepo)
		contentRepo.On("GetArticleBySlug", ctx, "hot-post").Return(&domain.Article{ID: 2, Slug: "hot-post", IsPublished: true, Views: 10}, nil)
		contentRepo.On("IncrementArticleViews", ctx, int64(2)).Return(errors.New("connection reset"))

		uc := usecase.NewContentUsecase(contentRepo)
		article, err := uc.GetArticle(ctx, nil, "hot-post")

		assert.NoError(t, err)
		assert.Equal(t, int64(10), article.Views)
	})
}

func TestListArticles(t *testing.T) {
	ctx := context.Background()
	staff := &domain.User{ID: 99, Role: domain.RoleAdmin}

	t.Run("Should reject an unknown category slug", func(t *testing.T) {
		contentRepo := new(MockContentRepo)
		contentRepo.On("GetArticleCategoryBySlug", ctx, "nope").Return(nil, domain.ErrNotFound)

		uc := usecase.NewContentUsecase(contentRepo)
		_, _, err := uc.ListArticles(ctx, nil, domain.ArticleFilter{CategorySlug: "nope"}, 1, 10)

		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("Should list drafts for staff and published only for everyone else", func(t *testing.T) {
		contentRepo := new(MockContentRepo)
		contentRepo.On("FetchArticles", ctx, domain.ArticleFilter{}, true, 10, 0).Return([]domain.Article{{ID: 1}}, int64(1), nil)
		contentRepo.On("FetchArticles", ctx, domain.ArticleFilter{}, false, 10, 0).Return([]domain.Article{{ID: 1}, {ID: 2}}, int64(2), nil)

		uc := usecase.NewContentUsecase(contentRepo)

		_, publicTotal, err := uc.ListArticles(ctx, nil, domain.ArticleFilter{}, 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), publicTotal)

		_, staffTotal, err := uc.ListArticles(ctx, staff, domain.ArticleFilter{}, 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), staffTotal)
	})
}

func TestArticleCRUD(t *testing.T) {
	ctx := context.Background()
	staff := &domain.User{ID: 99, Role: domain.RoleAdmin}
	seeker := &domain.User{ID: 1, Role: domain.RoleJobSeeker}

	t.Run("Should forbid non-staff writes", func(t *testing.T) {
		uc := usecase.NewContentUsecase(new(MockContentRepo))
		err := uc.CreateArticle(ctx, seeker, &domain.Article{Title: "Nope"})

		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	})

	t.Run("Should slugify the title and record the author on create", func(t *testing.T) {
		contentRepo := new(MockContentRepo)
		contentRepo.On("CreateArticle", ctx, mock.AnythingOfType("*domain.Article")).Return(nil)

		article := &domain.Article{Title: "How to Interview Well"}
		uc := usecase.NewContentUsecase(contentRepo)
		err := uc.CreateArticle(ctx, staff, article)

		assert.NoError(t, err)
		assert.Equal(t, "how-to-interview-well", article.Slug)
		assert.Equal(t, staff.ID, article.AuthorID)
	})

	t.Run("Should keep the original author on update", func(t *testing.T) {
		contentRepo := new(MockContentRepo)
		contentRepo.On("GetArticleBySlug", ctx, "how-to-interview-well").
			Return(&domain.Article{ID: 4, Slug: "how-to-interview-well", AuthorID: 42}, nil)
		contentRepo.On("UpdateArticle", ctx, mock.AnythingOfType("*domain.Article")).Return(nil)

		update := &domain.Article{Slug: "how-to-interview-well", Title: "Interviewing"}
		uc := usecase.NewContentUsecase(contentRepo)
		err := uc.UpdateArticle(ctx, staff, update)

		assert.NoError(t, err)
		assert.Equal(t, int64(4), update.ID)
		assert.Equal(t, int64(42), update.AuthorID)
	})
}

func TestGroupedFAQs(t *testing.T) {
	ctx := context.Background()

	t.Run("Should bucket uncategorized entries under General", func(t *testing.T) {
		hiring := "Hiring"
		contentRepo := new(MockContentRepo)
		contentRepo.On("ListPublishedFAQs", ctx).Return([]domain.FAQ{
			{ID: 1, Question: "How do I apply?", Category: &hiring},
			{ID: 2, Question: "Is it free?"},
			{ID: 3, Question: "Who are you?", Category: nil},
		}, nil)

		uc := usecase.NewContentUsecase(contentRepo)
		grouped, err := uc.GroupedFAQs(ctx)

		assert.NoError(t, err)
		assert.Len(t, grouped["Hiring"], 1)
		assert.Len(t, grouped["General"], 2)
	})
}

func TestGetPage(t *testing.T) {
	ctx := context.Background()

	t.Run("Should hide unpublished pages from the public", func(t *testing.T) {
		contentRepo := new(MockContentRepo)
		contentRepo.On("GetPageBySlug", ctx, "about").Return(&domain.Page{ID: 1, Slug: "about", IsPublished: false}, nil)

		uc := usecase.NewContentUsecase(contentRepo)
		_, err := uc.GetPage(ctx, nil, "about")

		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}
