package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentUC domain.ContentUsecase
}

func NewContentHandler(public *gin.RouterGroup, protected *gin.RouterGroup, contentUC domain.ContentUsecase) {
	handler := &ContentHandler{contentUC: contentUC}

	articles := public.Group("/articles")
	{
		articles.GET("", handler.ListArticles)
		articles.GET("/:slug", handler.GetArticle)
		articles.GET("/:slug/related", handler.RelatedArticles)
	}
	public.GET("/article-categories", handler.ListArticleCategories)
	public.GET("/tags", handler.ListTags)

	news := public.Group("/news")
	{
		news.GET("", handler.ListNews)
		news.GET("/:slug", handler.GetNews)
		news.GET("/:slug/similar", handler.SimilarNews)
	}

	public.GET("/pages/menu", handler.MenuPages)
	public.GET("/pages/:slug", handler.GetPage)
	public.GET("/faqs", handler.FAQs)

	// Editorial routes are staff-only
	staff := protected.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	{
		staff.GET("/articles", handler.ListAllArticles)
		staff.POST("/articles", handler.CreateArticle)
		staff.PUT("/articles/:slug", handler.UpdateArticle)
		staff.DELETE("/articles/:id", handler.DeleteArticle)
		staff.GET("/news", handler.ListAllNews)
		staff.POST("/news", handler.CreateNews)
		staff.PUT("/news/:slug", handler.UpdateNews)
		staff.DELETE("/news/:id", handler.DeleteNews)
	}
}

type ArticleRequest struct {
	Title       string  `json:"title" binding:"required,min=3,max=200"`
	CategoryID  int64   `json:"category_id" binding:"required"`
	Content     string  `json:"content" binding:"required"`
	ImageURL    string  `json:"image_url" binding:"omitempty,url"`
	IsPublished bool    `json:"is_published"`
	TagIDs      []int64 `json:"tag_ids"`
}

type NewsRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=200"`
	Content     string `json:"content" binding:"required"`
	ImageURL    string `json:"image_url" binding:"omitempty,url"`
	IsPublished bool   `json:"is_published"`
}

// ListArticles godoc
// @Summary      List published articles
// @Tags         content
// @Produce      json
// @Param        category  query  string  false  "Article category slug"
// @Param        tag       query  string  false  "Tag slug"
// @Param        q         query  string  false  "Search in title and body"
// @Success      200  {object}  response.Response
// @Router       /articles [get]
func (h *ContentHandler) ListArticles(c *gin.Context) {
	page, pageSize := pageParams(c)
	filter := domain.ArticleFilter{
		CategorySlug: c.Query("category"),
		TagSlug:      c.Query("tag"),
		Query:        c.Query("q"),
	}
	articles, total, err := h.contentUC.ListArticles(c.Request.Context(), middleware.CurrentUser(c), filter, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", paginatedData(articles, total, page, pageSize))
}

// GetArticle godoc
// @Summary      Article details
// @Description  Reading an article increments its view counter
// @Tags         content
// @Produce      json
// @Param        slug  path  string  true  "Article slug"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /articles/{slug} [get]
func (h *ContentHandler) GetArticle(c *gin.Context) {
	article, err := h.contentUC.GetArticle(c.Request.Context(), middleware.CurrentUser(c), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", article)
}

func (h *ContentHandler) RelatedArticles(c *gin.Context) {
	article, err := h.contentUC.GetArticle(c.Request.Context(), middleware.CurrentUser(c), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	related, err := h.contentUC.GetRelatedArticles(c.Request.Context(), article)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", related)
}

func (h *ContentHandler) ListArticleCategories(c *gin.Context) {
	categories, err := h.contentUC.ListArticleCategories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", categories)
}

func (h *ContentHandler) ListTags(c *gin.Context) {
	tags, err := h.contentUC.ListTags(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", tags)
}

func (h *ContentHandler) ListNews(c *gin.Context) {
	page, pageSize := pageParams(c)
	news, total, err := h.contentUC.ListNews(c.Request.Context(), middleware.CurrentUser(c), c.Query("q"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", paginatedData(news, total, page, pageSize))
}

func (h *ContentHandler) GetNews(c *gin.Context) {
	news, err := h.contentUC.GetNews(c.Request.Context(), middleware.CurrentUser(c), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", news)
}

func (h *ContentHandler) SimilarNews(c *gin.Context) {
	news, err := h.contentUC.GetNews(c.Request.Context(), middleware.CurrentUser(c), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	similar, err := h.contentUC.GetSimilarNews(c.Request.Context(), news)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", similar)
}

func (h *ContentHandler) MenuPages(c *gin.Context) {
	pages, err := h.contentUC.ListMenuPages(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", pages)
}

func (h *ContentHandler) GetPage(c *gin.Context) {
	page, err := h.contentUC.GetPage(c.Request.Context(), middleware.CurrentUser(c), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", page)
}

// FAQs godoc
// @Summary      FAQ entries grouped by category
// @Description  Uncategorized entries appear under the General group
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /faqs [get]
func (h *ContentHandler) FAQs(c *gin.Context) {
	grouped, err := h.contentUC.GroupedFAQs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", grouped)
}

func (h *ContentHandler) ListAllArticles(c *gin.Context) {
	page, pageSize := pageParams(c)
	filter := domain.ArticleFilter{
		CategorySlug: c.Query("category"),
		TagSlug:      c.Query("tag"),
		Query:        c.Query("q"),
	}
	articles, total, err := h.contentUC.ListArticles(c.Request.Context(), middleware.CurrentUser(c), filter, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", paginatedData(articles, total, page, pageSize))
}

func (h *ContentHandler) CreateArticle(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	article := &domain.Article{
		Title:       req.Title,
		CategoryID:  req.CategoryID,
		Content:     req.Content,
		ImageURL:    toPtr(req.ImageURL),
		IsPublished: req.IsPublished,
		TagIDs:      req.TagIDs,
	}
	if err := h.contentUC.CreateArticle(c.Request.Context(), middleware.CurrentUser(c), article); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Article created", article)
}

func (h *ContentHandler) UpdateArticle(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	article := &domain.Article{
		Title:       req.Title,
		Slug:        c.Param("slug"),
		CategoryID:  req.CategoryID,
		Content:     req.Content,
		ImageURL:    toPtr(req.ImageURL),
		IsPublished: req.IsPublished,
		TagIDs:      req.TagIDs,
	}
	if err := h.contentUC.UpdateArticle(c.Request.Context(), middleware.CurrentUser(c), article); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Article updated", article)
}

func (h *ContentHandler) DeleteArticle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid article id"))
		return
	}
	if err := h.contentUC.DeleteArticle(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Article deleted", nil)
}

func (h *ContentHandler) ListAllNews(c *gin.Context) {
	page, pageSize := pageParams(c)
	news, total, err := h.contentUC.ListNews(c.Request.Context(), middleware.CurrentUser(c), c.Query("q"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", paginatedData(news, total, page, pageSize))
}

func (h *ContentHandler) CreateNews(c *gin.Context) {
	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	news := &domain.News{
		Title:       req.Title,
		Content:     req.Content,
		ImageURL:    toPtr(req.ImageURL),
		IsPublished: req.IsPublished,
	}
	if err := h.contentUC.CreateNews(c.Request.Context(), middleware.CurrentUser(c), news); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "News created", news)
}

func (h *ContentHandler) UpdateNews(c *gin.Context) {
	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	news := &domain.News{
		Title:       req.Title,
		Slug:        c.Param("slug"),
		Content:     req.Content,
		ImageURL:    toPtr(req.ImageURL),
		IsPublished: req.IsPublished,
	}
	if err := h.contentUC.UpdateNews(c.Request.Context(), middleware.CurrentUser(c), news); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "News updated", news)
}

func (h *ContentHandler) DeleteNews(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid news id"))
		return
	}
	if err := h.contentUC.DeleteNews(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "News deleted", nil)
}
