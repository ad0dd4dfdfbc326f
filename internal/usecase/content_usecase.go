package usecase

import (
	"context"
	"errors"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/slug"
)

const (
	relatedArticleLimit = 3
	similarNewsLimit    = 4
)

type contentUsecase struct {
	contentRepo domain.ContentRepository
}

func NewContentUsecase(contentRepo domain.ContentRepository) domain.ContentUsecase {
	return &contentUsecase{contentRepo: contentRepo}
}

func (u *contentUsecase) ListArticles(ctx context.Context, actor *domain.User, filter domain.ArticleFilter, page, pageSize int) ([]domain.Article, int64, error) {
	if filter.CategorySlug != "" {
		if _, err := u.contentRepo.GetArticleCategoryBySlug(ctx, filter.CategorySlug); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, 0, apperror.NotFound("Article category not found")
			}
			return nil, 0, apperror.Internal(err)
		}
	}
	if filter.TagSlug != "" {
		if _, err := u.contentRepo.GetTagBySlug(ctx, filter.TagSlug); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, 0, apperror.NotFound("Tag not found")
			}
			return nil, 0, apperror.Internal(err)
		}
	}

	limit, offset := paginate(page, pageSize)
	articles, total, err := u.contentRepo.FetchArticles(ctx, filter, !actor.IsStaff(), limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return articles, total, nil
}

func (u *contentUsecase) GetArticle(ctx context.Context, actor *domain.User, slug string) (*domain.Article, error) {
	article, err := u.contentRepo.GetArticleBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Article not found")
		}
		return nil, apperror.Internal(err)
	}
	// Drafts are invisible to everyone but staff
	if !article.IsPublished && !actor.IsStaff() {
		return nil, apperror.NotFound("Article not found")
	}

	if err := u.contentRepo.IncrementArticleViews(ctx, article.ID); err != nil {
		// A lost view count never fails the read
		logger.Log.Warn("failed to increment article views", "article_id", article.ID, "error", err)
	} else {
		article.Views++
	}
	return article, nil
}

func (u *contentUsecase) GetRelatedArticles(ctx context.Context, article *domain.Article) ([]domain.Article, error) {
	related, err := u.contentRepo.FetchRelatedArticles(ctx, article.CategoryID, article.ID, relatedArticleLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return related, nil
}

func (u *contentUsecase) ListArticleCategories(ctx context.Context) ([]domain.ArticleCategory, error) {
	categories, err := u.contentRepo.ListArticleCategories(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return categories, nil
}

func (u *contentUsecase) ListTags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := u.contentRepo.ListTags(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return tags, nil
}

func (u *contentUsecase) ListNews(ctx context.Context, actor *domain.User, q string, page, pageSize int) ([]domain.News, int64, error) {
	limit, offset := paginate(page, pageSize)
	news, total, err := u.contentRepo.FetchNews(ctx, q, !actor.IsStaff(), limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return news, total, nil
}

func (u *contentUsecase) GetNews(ctx context.Context, actor *domain.User, slug string) (*domain.News, error) {
	news, err := u.contentRepo.GetNewsBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("News item not found")
		}
		return nil, apperror.Internal(err)
	}
	if !news.IsPublished && !actor.IsStaff() {
		return nil, apperror.NotFound("News item not found")
	}

	if err := u.contentRepo.IncrementNewsViews(ctx, news.ID); err != nil {
		logger.Log.Warn("failed to increment news views", "news_id", news.ID, "error", err)
	} else {
		news.Views++
	}
	return news, nil
}

func (u *contentUsecase) GetSimilarNews(ctx context.Context, news *domain.News) ([]domain.News, error) {
	similar, err := u.contentRepo.FetchSimilarNews(ctx, news.ID, similarNewsLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return similar, nil
}

func (u *contentUsecase) CreateArticle(ctx context.Context, actor *domain.User, article *domain.Article) error {
	if !actor.IsStaff() {
		return apperror.Forbidden("Staff access required")
	}
	article.AuthorID = actor.ID
	article.Slug = slug.Make(article.Title)
	if err := u.contentRepo.CreateArticle(ctx, article); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *contentUsecase) UpdateArticle(ctx context.Context, actor *domain.User, article *domain.Article) error {
	if !actor.IsStaff() {
		return apperror.Forbidden("Staff access required")
	}
	existing, err := u.contentRepo.GetArticleBySlug(ctx, article.Slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Article not found")
		}
		return apperror.Internal(err)
	}
	article.ID = existing.ID
	article.AuthorID = existing.AuthorID
	if err := u.contentRepo.UpdateArticle(ctx, article); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *contentUsecase) DeleteArticle(ctx context.Context, actor *domain.User, id int64) error {
	if !actor.IsStaff() {
		return apperror.Forbidden("Staff access required")
	}
	if err := u.contentRepo.DeleteArticle(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Article not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *contentUsecase) CreateNews(ctx context.Context, actor *domain.User, news *domain.News) error {
	if !actor.IsStaff() {
		return apperror.Forbidden("Staff access required")
	}
	news.AuthorID = actor.ID
	news.Slug = slug.Make(news.Title)
	if err := u.contentRepo.CreateNews(ctx, news); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *contentUsecase) UpdateNews(ctx context.Context, actor *domain.User, news *domain.News) error {
	if !actor.IsStaff() {
		return apperror.Forbidden("Staff access required")
	}
	existing, err := u.contentRepo.GetNewsBySlug(ctx, news.Slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("News item not found")
		}
		return apperror.Internal(err)
	}
	news.ID = existing.ID
	news.AuthorID = existing.AuthorID
	if err := u.contentRepo.UpdateNews(ctx, news); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *contentUsecase) DeleteNews(ctx context.Context, actor *domain.User, id int64) error {
	if !actor.IsStaff() {
		return apperror.Forbidden("Staff access required")
	}
	if err := u.contentRepo.DeleteNews(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("News item not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *contentUsecase) GetPage(ctx context.Context, actor *domain.User, slug string) (*domain.Page, error) {
	page, err := u.contentRepo.GetPageBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Page not found")
		}
		return nil, apperror.Internal(err)
	}
	if !page.IsPublished && !actor.IsStaff() {
		return nil, apperror.NotFound("Page not found")
	}
	return page, nil
}

func (u *contentUsecase) ListMenuPages(ctx context.Context) ([]domain.Page, error) {
	pages, err := u.contentRepo.ListMenuPages(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return pages, nil
}

// GroupedFAQs buckets published entries by category name; uncategorized
// entries land under "General".
func (u *contentUsecase) GroupedFAQs(ctx context.Context) (map[string][]domain.FAQ, error) {
	faqs, err := u.contentRepo.ListPublishedFAQs(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	grouped := make(map[string][]domain.FAQ)
	for _, f := range faqs {
		key := "General"
		if f.Category != nil && *f.Category != "" {
			key = *f.Category
		}
		grouped[key] = append(grouped[key], f)
	}
	return grouped, nil
}
