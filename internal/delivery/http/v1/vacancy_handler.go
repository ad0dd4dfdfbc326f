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

type VacancyHandler struct {
	vacancyUC domain.VacancyUsecase
}

func NewVacancyHandler(public *gin.RouterGroup, protected *gin.RouterGroup, vacancyUC domain.VacancyUsecase) {
	handler := &VacancyHandler{vacancyUC: vacancyUC}

	vacancies := public.Group("/vacancies")
	{
		vacancies.GET("", handler.List)
		vacancies.GET("/:slug", handler.GetBySlug)
		vacancies.GET("/:slug/similar", handler.Similar)
	}
	public.GET("/categories/:slug/vacancies", handler.ListByCategory)

	employerVacancies := protected.Group("/vacancies", middleware.RequireRole(domain.RoleEmployer))
	{
		employerVacancies.POST("", handler.Create)
		employerVacancies.PUT("/:slug", handler.Update)
		employerVacancies.DELETE("/:slug", handler.Delete)
	}
	protected.GET("/employers/vacancies", middleware.RequireRole(domain.RoleEmployer), handler.ListOwn)
}

type VacancyRequest struct {
	Title              string   `json:"title" binding:"required,min=3,max=150"`
	CategoryID         int64    `json:"category_id" binding:"required"`
	Description        string   `json:"description" binding:"required"`
	Requirements       string   `json:"requirements" binding:"required"`
	Responsibilities   string   `json:"responsibilities" binding:"required"`
	Benefits           string   `json:"benefits"`
	SalaryMin          *float64 `json:"salary_min" binding:"omitempty,gt=0"`
	SalaryMax          *float64 `json:"salary_max" binding:"omitempty,gt=0"`
	LocationID         *int64   `json:"location_id"`
	IsRemote           bool     `json:"is_remote"`
	Status             string   `json:"status" binding:"omitempty,oneof=open closed archived"`
	EmploymentType     string   `json:"employment_type" binding:"required,oneof=full_time part_time contract internship remote"`
	ExperienceRequired string   `json:"experience_required" binding:"required,oneof=no_experience 1-3 3-5 5+"`
	SkillIDs           []int64  `json:"skill_ids"`
}

func (r *VacancyRequest) toDomain() *domain.Vacancy {
	return &domain.Vacancy{
		Title:              r.Title,
		CategoryID:         r.CategoryID,
		Description:        r.Description,
		Requirements:       r.Requirements,
		Responsibilities:   r.Responsibilities,
		Benefits:           toPtr(r.Benefits),
		SalaryMin:          r.SalaryMin,
		SalaryMax:          r.SalaryMax,
		LocationID:         r.LocationID,
		IsRemote:           r.IsRemote,
		Status:             r.Status,
		EmploymentType:     r.EmploymentType,
		ExperienceRequired: r.ExperienceRequired,
		SkillIDs:           r.SkillIDs,
	}
}

// filterFromQuery maps list query parameters onto a VacancyFilter.
func filterFromQuery(c *gin.Context) domain.VacancyFilter {
	filter := domain.VacancyFilter{
		Keywords:       c.Query("q"),
		CategorySlug:   c.Query("category"),
		LocationCity:   c.Query("city"),
		EmploymentType: c.Query("employment_type"),
		Experience:     c.Query("experience"),
	}
	if remote := c.Query("remote"); remote != "" {
		val, err := strconv.ParseBool(remote)
		if err == nil {
			filter.Remote = &val
		}
	}
	return filter
}

// List godoc
// @Summary      List open vacancies
// @Description  Open vacancies newest first; q, category, city, employment_type, experience and remote narrow the list
// @Tags         vacancies
// @Produce      json
// @Param        q         query  string  false  "Keywords, matched against title, description and requirements"
// @Param        category  query  string  false  "Category slug"
// @Param        city      query  string  false  "Location city"
// @Param        remote    query  bool    false  "Remote only"
// @Success      200  {object}  response.Response
// @Router       /vacancies [get]
func (h *VacancyHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	vacancies, total, err := h.vacancyUC.ListOpenVacancies(c.Request.Context(), filterFromQuery(c), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", paginatedData(vacancies, total, page, pageSize))
}

// GetBySlug godoc
// @Summary      Vacancy details
// @Tags         vacancies
// @Produce      json
// @Param        slug  path  string  true  "Vacancy slug"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vacancies/{slug} [get]
func (h *VacancyHandler) GetBySlug(c *gin.Context) {
	vacancy, err := h.vacancyUC.GetVacancyBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", vacancy)
}

func (h *VacancyHandler) Similar(c *gin.Context) {
	vacancy, err := h.vacancyUC.GetVacancyBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	similar, err := h.vacancyUC.GetSimilarVacancies(c.Request.Context(), vacancy)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", similar)
}

// ListByCategory godoc
// @Summary      Vacancies in a category
// @Description  404 when the category slug is unknown
// @Tags         vacancies
// @Produce      json
// @Param        slug  path  string  true  "Category slug"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /categories/{slug}/vacancies [get]
func (h *VacancyHandler) ListByCategory(c *gin.Context) {
	page, pageSize := pageParams(c)
	vacancies, total, err := h.vacancyUC.ListVacanciesByCategory(c.Request.Context(), c.Param("slug"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", paginatedData(vacancies, total, page, pageSize))
}

func (h *VacancyHandler) ListOwn(c *gin.Context) {
	page, pageSize := pageParams(c)
	userID := c.GetInt64(string(domain.KeyUserID))
	vacancies, total, err := h.vacancyUC.ListEmployerVacancies(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", paginatedData(vacancies, total, page, pageSize))
}

// Create godoc
// @Summary      Post a vacancy
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Param        vacancy  body      VacancyRequest  true  "Vacancy"
// @Success      201  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /vacancies [post]
// @Security     BearerAuth
func (h *VacancyHandler) Create(c *gin.Context) {
	var req VacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	vacancy := req.toDomain()
	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.vacancyUC.CreateVacancy(c.Request.Context(), userID, vacancy); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Vacancy created", vacancy)
}

func (h *VacancyHandler) Update(c *gin.Context) {
	var req VacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	vacancy := req.toDomain()
	vacancy.Slug = c.Param("slug")

	actor := middleware.CurrentUser(c)
	if actor == nil {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}
	if err := h.vacancyUC.UpdateVacancy(c.Request.Context(), actor, vacancy); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy updated", vacancy)
}

func (h *VacancyHandler) Delete(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}
	if err := h.vacancyUC.DeleteVacancy(c.Request.Context(), actor, c.Param("slug")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy deleted", nil)
}
