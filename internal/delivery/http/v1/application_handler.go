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

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	protected.POST("/vacancies/:slug/apply", middleware.RequireRole(domain.RoleJobSeeker), handler.Apply)

	applications := protected.Group("/applications")
	{
		applications.GET("/my", middleware.RequireRole(domain.RoleJobSeeker), handler.ListMine)
		applications.GET("/received", middleware.RequireRole(domain.RoleEmployer), handler.ListReceived)
		applications.PATCH("/status", middleware.RequireRole(domain.RoleEmployer), handler.BulkStatus)
		applications.PATCH("/:id/notes", middleware.RequireRole(domain.RoleEmployer), handler.SetNotes)
	}
}

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter" binding:"max=5000"`
	ResumeURL   string `json:"resume_url" binding:"omitempty,url"`
}

type BulkStatusRequest struct {
	IDs    []int64 `json:"ids" binding:"required,min=1"`
	Status string  `json:"status" binding:"required"`
}

type NotesRequest struct {
	Notes string `json:"notes" binding:"max=5000"`
}

// Apply godoc
// @Summary      Apply to a vacancy
// @Description  One application per vacancy per job seeker; duplicates are rejected with 409
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        slug         path  string        true  "Vacancy slug"
// @Param        application  body  ApplyRequest  true  "Application"
// @Success      201  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /vacancies/{slug}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	app, err := h.applicationUC.Submit(c.Request.Context(), userID, c.Param("slug"), req.CoverLetter, req.ResumeURL)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ListMine godoc
// @Summary      Own applications
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /applications/my [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	applications, err := h.applicationUC.ListForSeeker(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", applications)
}

// ListReceived godoc
// @Summary      Applications to own vacancies
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /applications/received [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListReceived(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	applications, err := h.applicationUC.ListForEmployer(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", applications)
}

// BulkStatus godoc
// @Summary      Bulk status update
// @Description  Sets the given status on every selected application, whatever state it is in
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        update  body  BulkStatusRequest  true  "Target ids and status"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /applications/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) BulkStatus(c *gin.Context) {
	var req BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	actor := middleware.CurrentUser(c)
	if actor == nil {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}
	updated, err := h.applicationUC.BulkSetStatus(c.Request.Context(), actor, req.IDs, req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Status updated", gin.H{"updated": updated})
}

func (h *ApplicationHandler) SetNotes(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application id"))
		return
	}

	var req NotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	actor := middleware.CurrentUser(c)
	if actor == nil {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}
	if err := h.applicationUC.SetNotes(c.Request.Context(), actor, id, req.Notes); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notes saved", nil)
}
