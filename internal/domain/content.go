package domain

import (
	"context"
	"time"
)

type ArticleCategory struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
}

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Article struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	CategoryID  int64     `json:"category_id"`
	Content     string    `json:"content"`
	ImageURL    *string   `json:"image_url,omitempty"`
	AuthorID    int64     `json:"author_id"`
	IsPublished bool      `json:"is_published"`
	Views       int64     `json:"views"`
	TagIDs      []int64   `json:"tag_ids,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	CategoryName *string `json:"category_name,omitempty"`
	AuthorName   *string `json:"author_name,omitempty"`
}

type News struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	ImageURL    *string   `json:"image_url,omitempty"`
	AuthorID    int64     `json:"author_id"`
	IsPublished bool      `json:"is_published"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Page struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	IsPublished bool      `json:"is_published"`
	IsInMenu    bool      `json:"is_in_menu"`
	MenuOrder   int       `json:"menu_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type FAQ struct {
	ID          int64     `json:"id"`
	Question    string    `json:"question"`
	Answer      string    `json:"answer"`
	Category    *string   `json:"category,omitempty"`
	Order       int       `json:"order"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Contact message status lifecycle
const (
	ContactStatusNew        = "new"
	ContactStatusInProgress = "in_progress"
	ContactStatusAnswered   = "answered"
	ContactStatusClosed     = "closed"
)

type ContactMessage struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Subject     string     `json:"subject"`
	Message     string     `json:"message"`
	Status      string     `json:"status"`
	Response    *string    `json:"response,omitempty"`
	RespondedBy *int64     `json:"responded_by,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ContactRequest is the public contact form payload.
type ContactRequest struct {
	Name    string `json:"name" binding:"required,valid_name"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ArticleFilter narrows the public article list. Zero values impose nothing.
type ArticleFilter struct {
	CategorySlug string
	TagSlug      string
	Query        string
}

type ContentRepository interface {
	ListArticleCategories(ctx context.Context) ([]ArticleCategory, error)
	GetArticleCategoryBySlug(ctx context.Context, slug string) (*ArticleCategory, error)
	ListTags(ctx context.Context) ([]Tag, error)
	GetTagBySlug(ctx context.Context, slug string) (*Tag, error)

	CreateArticle(ctx context.Context, article *Article) error
	GetArticleBySlug(ctx context.Context, slug string) (*Article, error)
	FetchArticles(ctx context.Context, filter ArticleFilter, publishedOnly bool, limit, offset int) ([]Article, int64, error)
	FetchRelatedArticles(ctx context.Context, categoryID, excludeID int64, limit int) ([]Article, error)
	UpdateArticle(ctx context.Context, article *Article) error
	DeleteArticle(ctx context.Context, id int64) error
	IncrementArticleViews(ctx context.Context, id int64) error
	SearchArticles(ctx context.Context, q string, limit int) ([]Article, int64, error)
	BulkSetArticlePublished(ctx context.Context, ids []int64, published bool) (int64, error)

	CreateNews(ctx context.Context, news *News) error
	GetNewsBySlug(ctx context.Context, slug string) (*News, error)
	FetchNews(ctx context.Context, q string, publishedOnly bool, limit, offset int) ([]News, int64, error)
	FetchSimilarNews(ctx context.Context, excludeID int64, limit int) ([]News, error)
	UpdateNews(ctx context.Context, news *News) error
	DeleteNews(ctx context.Context, id int64) error
	IncrementNewsViews(ctx context.Context, id int64) error
	SearchNews(ctx context.Context, q string, limit int) ([]News, int64, error)
	BulkSetNewsPublished(ctx context.Context, ids []int64, published bool) (int64, error)

	GetPageBySlug(ctx context.Context, slug string) (*Page, error)
	ListMenuPages(ctx context.Context) ([]Page, error)

	ListPublishedFAQs(ctx context.Context) ([]FAQ, error)

	CreateContactMessage(ctx context.Context, msg *ContactMessage) error
	ListContactMessages(ctx context.Context, status string, limit, offset int) ([]ContactMessage, int64, error)
	RespondContactMessage(ctx context.Context, id, responderID int64, response, status string) error
}

type ContentUsecase interface {
	ListArticles(ctx context.Context, actor *User, filter ArticleFilter, page, pageSize int) ([]Article, int64, error)
	GetArticle(ctx context.Context, actor *User, slug string) (*Article, error)
	GetRelatedArticles(ctx context.Context, article *Article) ([]Article, error)
	ListArticleCategories(ctx context.Context) ([]ArticleCategory, error)
	ListTags(ctx context.Context) ([]Tag, error)

	ListNews(ctx context.Context, actor *User, q string, page, pageSize int) ([]News, int64, error)
	GetNews(ctx context.Context, actor *User, slug string) (*News, error)
	GetSimilarNews(ctx context.Context, news *News) ([]News, error)

	CreateArticle(ctx context.Context, actor *User, article *Article) error
	UpdateArticle(ctx context.Context, actor *User, article *Article) error
	DeleteArticle(ctx context.Context, actor *User, id int64) error
	CreateNews(ctx context.Context, actor *User, news *News) error
	UpdateNews(ctx context.Context, actor *User, news *News) error
	DeleteNews(ctx context.Context, actor *User, id int64) error

	GetPage(ctx context.Context, actor *User, slug string) (*Page, error)
	ListMenuPages(ctx context.Context) ([]Page, error)

	// GroupedFAQs returns published FAQ entries grouped by category, with
	// uncategorized entries under a "General" bucket.
	GroupedFAQs(ctx context.Context) (map[string][]FAQ, error)
}

type ContactUsecase interface {
	SubmitContactMessage(ctx context.Context, req *ContactRequest) (*ContactMessage, error)
}
