package postgres

import (
	"context"
	"errors"
	"fmt"
	"go-jobboard-backend/internal/domain"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contentRepo struct {
	db *pgxpool.Pool
}

func NewContentRepository(db *pgxpool.Pool) domain.ContentRepository {
	return &contentRepo{db: db}
}

func (r *contentRepo) ListArticleCategories(ctx context.Context) ([]domain.ArticleCategory, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, slug, description FROM article_categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.ArticleCategory
	for rows.Next() {
		var c domain.ArticleCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *contentRepo) GetArticleCategoryBySlug(ctx context.Context, slug string) (*domain.ArticleCategory, error) {
	var c domain.ArticleCategory
	err := r.db.QueryRow(ctx,
		`SELECT id, name, slug, description FROM article_categories WHERE slug = $1`, slug,
	).Scan(&c.ID, &c.Name, &c.Slug, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *contentRepo) ListTags(ctx context.Context) ([]domain.Tag, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, slug FROM tags ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (r *contentRepo) GetTagBySlug(ctx context.Context, slug string) (*domain.Tag, error) {
	var t domain.Tag
	err := r.db.QueryRow(ctx, `SELECT id, name, slug FROM tags WHERE slug = $1`, slug).
		Scan(&t.ID, &t.Name, &t.Slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

const articleSelect = `
	SELECT a.id, a.title, a.slug, a.category_id, a.content, a.image_url, a.author_id,
	       a.is_published, a.views, a.created_at, a.updated_at,
	       ac.name AS category_name, u.username AS author_name
	FROM articles a
	JOIN article_categories ac ON a.category_id = ac.id
	JOIN users u ON a.author_id = u.id`

func scanArticle(row pgx.Row, a *domain.Article) error {
	return row.Scan(
		&a.ID, &a.Title, &a.Slug, &a.CategoryID, &a.Content, &a.ImageURL, &a.AuthorID,
		&a.IsPublished, &a.Views, &a.CreatedAt, &a.UpdatedAt,
		&a.CategoryName, &a.AuthorName,
	)
}

func (r *contentRepo) CreateArticle(ctx context.Context, article *domain.Article) error {
	query := `INSERT INTO articles
              (title, slug, category_id, content, image_url, author_id, is_published, views, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9)
              RETURNING id`
	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now
	err := r.db.QueryRow(ctx, query,
		article.Title, article.Slug, article.CategoryID, article.Content,
		article.ImageURL, article.AuthorID, article.IsPublished,
		article.CreatedAt, article.UpdatedAt,
	).Scan(&article.ID)
	if err != nil {
		return err
	}
	return r.replaceArticleTags(ctx, article.ID, article.TagIDs)
}

func (r *contentRepo) GetArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	var a domain.Article
	if err := scanArticle(r.db.QueryRow(ctx, articleSelect+` WHERE a.slug = $1`, slug), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	tagIDs, err := r.articleTagIDs(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	a.TagIDs = tagIDs
	return &a, nil
}

func (r *contentRepo) FetchArticles(ctx context.Context, filter domain.ArticleFilter, publishedOnly bool, limit, offset int) ([]domain.Article, int64, error) {
	conds := []string{"TRUE"}
	var args []interface{}

	arg := func(val interface{}) string {
		args = append(args, val)
		return fmt.Sprintf("$%d", len(args))
	}

	if publishedOnly {
		conds = append(conds, "a.is_published = TRUE")
	}
	if filter.CategorySlug != "" {
		conds = append(conds, "ac.slug = "+arg(filter.CategorySlug))
	}
	if filter.TagSlug != "" {
		conds = append(conds, `a.id IN (
			SELECT at.article_id FROM article_tags at
			JOIN tags t ON at.tag_id = t.id
			WHERE t.slug = `+arg(filter.TagSlug)+`)`)
	}
	if filter.Query != "" {
		p := arg("%" + filter.Query + "%")
		conds = append(conds, fmt.Sprintf("(a.title ILIKE %[1]s OR a.content ILIKE %[1]s)", p))
	}

	where := strings.Join(conds, " AND ")

	countQuery := `SELECT COUNT(*) FROM articles a
		JOIN article_categories ac ON a.category_id = ac.id
		WHERE ` + where
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("%s WHERE %s ORDER BY a.created_at DESC, a.id DESC LIMIT $%d OFFSET $%d",
		articleSelect, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	articles, err := r.fetchArticles(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *contentRepo) FetchRelatedArticles(ctx context.Context, categoryID, excludeID int64, limit int) ([]domain.Article, error) {
	query := articleSelect + ` WHERE a.category_id = $1 AND a.is_published = TRUE AND a.id <> $2
		ORDER BY a.created_at DESC, a.id DESC LIMIT $3`
	return r.fetchArticles(ctx, query, categoryID, excludeID, limit)
}

func (r *contentRepo) UpdateArticle(ctx context.Context, article *domain.Article) error {
	query := `UPDATE articles SET
		title = $2,
		category_id = $3,
		content = $4,
		image_url = $5,
		is_published = $6,
		updated_at = $7
	WHERE id = $1`
	article.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		article.ID, article.Title, article.CategoryID, article.Content,
		article.ImageURL, article.IsPublished, article.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return r.replaceArticleTags(ctx, article.ID, article.TagIDs)
}

func (r *contentRepo) DeleteArticle(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IncrementArticleViews bumps the counter in SQL so concurrent reads never
// lose an increment.
func (r *contentRepo) IncrementArticleViews(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE articles SET views = views + 1 WHERE id = $1`, id)
	return err
}

func (r *contentRepo) SearchArticles(ctx context.Context, q string, limit int) ([]domain.Article, int64, error) {
	pattern := "%" + q + "%"
	where := ` WHERE a.is_published = TRUE AND (a.title ILIKE $1 OR a.content ILIKE $1)`

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM articles a`+where, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := articleSelect + where + ` ORDER BY a.created_at DESC, a.id DESC LIMIT $2`
	articles, err := r.fetchArticles(ctx, query, pattern, limit)
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *contentRepo) BulkSetArticlePublished(ctx context.Context, ids []int64, published bool) (int64, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE articles SET is_published = $2, updated_at = $3 WHERE id = ANY($1)`,
		ids, published, time.Now())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func (r *contentRepo) fetchArticles(ctx context.Context, query string, args ...interface{}) ([]domain.Article, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		var a domain.Article
		if err := scanArticle(rows, &a); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (r *contentRepo) replaceArticleTags(ctx context.Context, articleID int64, tagIDs []int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM article_tags WHERE article_id = $1`, articleID); err != nil {
		return err
	}
	for _, tagID := range tagIDs {
		if _, err := r.db.Exec(ctx,
			`INSERT INTO article_tags (article_id, tag_id) VALUES ($1, $2)`,
			articleID, tagID); err != nil {
			return err
		}
	}
	return nil
}

func (r *contentRepo) articleTagIDs(ctx context.Context, articleID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT tag_id FROM article_tags WHERE article_id = $1 ORDER BY tag_id`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

const newsSelect = `
	SELECT id, title, slug, content, image_url, author_id, is_published, views, created_at, updated_at
	FROM news`

func scanNews(row pgx.Row, n *domain.News) error {
	return row.Scan(
		&n.ID, &n.Title, &n.Slug, &n.Content, &n.ImageURL, &n.AuthorID,
		&n.IsPublished, &n.Views, &n.CreatedAt, &n.UpdatedAt,
	)
}

func (r *contentRepo) CreateNews(ctx context.Context, news *domain.News) error {
	query := `INSERT INTO news
              (title, slug, content, image_url, author_id, is_published, views, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8)
              RETURNING id`
	now := time.Now()
	news.CreatedAt = now
	news.UpdatedAt = now
	return r.db.QueryRow(ctx, query,
		news.Title, news.Slug, news.Content, news.ImageURL, news.AuthorID,
		news.IsPublished, news.CreatedAt, news.UpdatedAt,
	).Scan(&news.ID)
}

func (r *contentRepo) GetNewsBySlug(ctx context.Context, slug string) (*domain.News, error) {
	var n domain.News
	if err := scanNews(r.db.QueryRow(ctx, newsSelect+` WHERE slug = $1`, slug), &n); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *contentRepo) FetchNews(ctx context.Context, q string, publishedOnly bool, limit, offset int) ([]domain.News, int64, error) {
	conds := []string{"TRUE"}
	var args []interface{}

	if publishedOnly {
		conds = append(conds, "is_published = TRUE")
	}
	if q != "" {
		args = append(args, "%"+q+"%")
		conds = append(conds, fmt.Sprintf("(title ILIKE $%[1]d OR content ILIKE $%[1]d)", len(args)))
	}
	where := strings.Join(conds, " AND ")

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM news WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("%s WHERE %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d",
		newsSelect, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	news, err := r.fetchNews(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return news, total, nil
}

func (r *contentRepo) FetchSimilarNews(ctx context.Context, excludeID int64, limit int) ([]domain.News, error) {
	query := newsSelect + ` WHERE is_published = TRUE AND id <> $1 ORDER BY created_at DESC, id DESC LIMIT $2`
	return r.fetchNews(ctx, query, excludeID, limit)
}

func (r *contentRepo) UpdateNews(ctx context.Context, news *domain.News) error {
	query := `UPDATE news SET
		title = $2,
		content = $3,
		image_url = $4,
		is_published = $5,
		updated_at = $6
	WHERE id = $1`
	news.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		news.ID, news.Title, news.Content, news.ImageURL, news.IsPublished, news.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contentRepo) DeleteNews(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contentRepo) IncrementNewsViews(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE news SET views = views + 1 WHERE id = $1`, id)
	return err
}

func (r *contentRepo) SearchNews(ctx context.Context, q string, limit int) ([]domain.News, int64, error) {
	pattern := "%" + q + "%"
	where := ` WHERE is_published = TRUE AND (title ILIKE $1 OR content ILIKE $1)`

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM news`+where, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := newsSelect + where + ` ORDER BY created_at DESC, id DESC LIMIT $2`
	news, err := r.fetchNews(ctx, query, pattern, limit)
	if err != nil {
		return nil, 0, err
	}
	return news, total, nil
}

func (r *contentRepo) BulkSetNewsPublished(ctx context.Context, ids []int64, published bool) (int64, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE news SET is_published = $2, updated_at = $3 WHERE id = ANY($1)`,
		ids, published, time.Now())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func (r *contentRepo) fetchNews(ctx context.Context, query string, args ...interface{}) ([]domain.News, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.News
	for rows.Next() {
		var n domain.News
		if err := scanNews(rows, &n); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

func (r *contentRepo) GetPageBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	var p domain.Page
	err := r.db.QueryRow(ctx,
		`SELECT id, title, slug, content, is_published, is_in_menu, menu_order, created_at, updated_at
		 FROM pages WHERE slug = $1`, slug,
	).Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.IsPublished, &p.IsInMenu, &p.MenuOrder, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *contentRepo) ListMenuPages(ctx context.Context) ([]domain.Page, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, slug, content, is_published, is_in_menu, menu_order, created_at, updated_at
		 FROM pages WHERE is_published = TRUE AND is_in_menu = TRUE ORDER BY menu_order, title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []domain.Page
	for rows.Next() {
		var p domain.Page
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.IsPublished, &p.IsInMenu,
			&p.MenuOrder, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

func (r *contentRepo) ListPublishedFAQs(ctx context.Context) ([]domain.FAQ, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, question, answer, category, "order", is_published, created_at, updated_at
		 FROM faqs WHERE is_published = TRUE ORDER BY category NULLS FIRST, "order", id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faqs []domain.FAQ
	for rows.Next() {
		var f domain.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.Order,
			&f.IsPublished, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

func (r *contentRepo) CreateContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	query := `INSERT INTO contact_messages
              (name, email, subject, message, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING id`
	now := time.Now()
	msg.CreatedAt = now
	msg.UpdatedAt = now
	if msg.Status == "" {
		msg.Status = domain.ContactStatusNew
	}
	return r.db.QueryRow(ctx, query,
		msg.Name, msg.Email, msg.Subject, msg.Message, msg.Status, msg.CreatedAt, msg.UpdatedAt,
	).Scan(&msg.ID)
}

func (r *contentRepo) ListContactMessages(ctx context.Context, status string, limit, offset int) ([]domain.ContactMessage, int64, error) {
	where := "TRUE"
	var args []interface{}
	if status != "" {
		args = append(args, status)
		where = "status = $1"
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT id, name, email, subject, message, status, response, responded_by, responded_at, created_at, updated_at
		FROM contact_messages WHERE %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var messages []domain.ContactMessage
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Status,
			&m.Response, &m.RespondedBy, &m.RespondedAt, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, 0, err
		}
		messages = append(messages, m)
	}
	return messages, total, rows.Err()
}

func (r *contentRepo) RespondContactMessage(ctx context.Context, id, responderID int64, response, status string) error {
	query := `UPDATE contact_messages SET
		response = $2,
		responded_by = $3,
		responded_at = $4,
		status = $5,
		updated_at = $4
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, response, responderID, time.Now(), status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
