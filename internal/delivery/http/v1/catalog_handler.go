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

type CatalogHandler struct {
	catalogUC domain.CatalogUsecase
}

func NewCatalogHandler(public *gin.RouterGroup, protected *gin.RouterGroup, catalogUC domain.CatalogUsecase) {
	handler := &CatalogHandler{catalogUC: catalogUC}

	public.GET("/categories", handler.ListCategories)
	public.GET("/categories/:slug", handler.GetCategory)
	public.GET("/skills", handler.ListSkills)
	public.GET("/skills/:slug", handler.GetSkill)
	public.GET("/locations", handler.ListLocations)

	// Reference data management is staff-only
	admin := protected.Group("", middleware.RequireRole(domain.RoleAdmin))
	{
		admin.POST("/categories", handler.CreateCategory)
		admin.PUT("/categories/:id", handler.UpdateCategory)
		admin.DELETE("/categories/:id", handler.DeleteCategory)
		admin.POST("/skills", handler.CreateSkill)
		admin.POST("/locations", handler.CreateLocation)
	}
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=50"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type SkillRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=50"`
	Description string `json:"description"`
}

type LocationRequest struct {
	City    string `json:"city" binding:"required,min=2,max=80"`
	Region  string `json:"region" binding:"required,min=2,max=80"`
	Address string `json:"address"`
}

// ListCategories godoc
// @Summary      List vacancy categories
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogUC.ListCategories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", categories)
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, err := h.catalogUC.GetCategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", category)
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	category := &domain.Category{
		Name:        req.Name,
		Description: toPtr(req.Description),
		Icon:        toPtr(req.Icon),
	}
	if err := h.catalogUC.CreateCategory(c.Request.Context(), category); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Category created", category)
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid category id"))
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	category := &domain.Category{
		ID:          id,
		Name:        req.Name,
		Description: toPtr(req.Description),
		Icon:        toPtr(req.Icon),
	}
	if err := h.catalogUC.UpdateCategory(c.Request.Context(), category); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category updated", category)
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid category id"))
		return
	}
	if err := h.catalogUC.DeleteCategory(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category deleted", nil)
}

func (h *CatalogHandler) ListSkills(c *gin.Context) {
	skills, err := h.catalogUC.ListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", skills)
}

func (h *CatalogHandler) GetSkill(c *gin.Context) {
	skill, err := h.catalogUC.GetSkillBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", skill)
}

func (h *CatalogHandler) CreateSkill(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	skill := &domain.Skill{
		Name:        req.Name,
		Description: toPtr(req.Description),
	}
	if err := h.catalogUC.CreateSkill(c.Request.Context(), skill); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Skill created", skill)
}

func (h *CatalogHandler) ListLocations(c *gin.Context) {
	locations, err := h.catalogUC.ListLocations(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", locations)
}

func (h *CatalogHandler) CreateLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	location := &domain.Location{
		City:    req.City,
		Region:  req.Region,
		Address: toPtr(req.Address),
	}
	if err := h.catalogUC.CreateLocation(c.Request.Context(), location); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Location created", location)
}
