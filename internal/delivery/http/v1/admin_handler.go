package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	admin := protected.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	{
		admin.PATCH("/articles/publish", handler.BulkPublishArticles)
		admin.PATCH("/news/publish", handler.BulkPublishNews)
		admin.GET("/contact-messages", handler.ListContactMessages)
		admin.POST("/contact-messages/:id/respond", handler.RespondContactMessage)
	}

	// Employers may export their own applications; staff may export one
	// employer's by user id, or everything.
	protected.GET("/applications/export", middleware.RequireRole(domain.RoleEmployer), handler.ExportApplications)
}

type BulkPublishRequest struct {
	IDs       []int64 `json:"ids" binding:"required,min=1"`
	Published bool    `json:"published"`
}

type RespondRequest struct {
	Response string `json:"response" binding:"required"`
	Status   string `json:"status" binding:"omitempty,oneof=new in_progress answered closed"`
}

// BulkPublishArticles godoc
// @Summary      Bulk publish or unpublish articles
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        update  body  BulkPublishRequest  true  "Target ids and desired state"
// @Success      200  {object}  response.Response
// @Router       /admin/articles/publish [patch]
// @Security     BearerAuth
func (h *AdminHandler) BulkPublishArticles(c *gin.Context) {
	var req BulkPublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	actor := middleware.CurrentUser(c)
	updated, err := h.adminUC.BulkPublishArticles(c.Request.Context(), actor, req.IDs, req.Published)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Articles updated", gin.H{"updated": updated})
}

func (h *AdminHandler) BulkPublishNews(c *gin.Context) {
	var req BulkPublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	actor := middleware.CurrentUser(c)
	updated, err := h.adminUC.BulkPublishNews(c.Request.Context(), actor, req.IDs, req.Published)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "News updated", gin.H{"updated": updated})
}

// ListContactMessages godoc
// @Summary      List contact messages
// @Tags         admin
// @Produce      json
// @Param        status  query  string  false  "Filter by status"
// @Success      200  {object}  response.Response
// @Router       /admin/contact-messages [get]
// @Security     BearerAuth
func (h *AdminHandler) ListContactMessages(c *gin.Context) {
	page, pageSize := pageParams(c)
	actor := middleware.CurrentUser(c)
	messages, total, err := h.adminUC.ListContactMessages(c.Request.Context(), actor, c.Query("status"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", paginatedData(messages, total, page, pageSize))
}

func (h *AdminHandler) RespondContactMessage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid message id"))
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	actor := middleware.CurrentUser(c)
	if err := h.adminUC.RespondContactMessage(c.Request.Context(), actor, id, req.Response, req.Status); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Response recorded", nil)
}

// ExportApplications godoc
// @Summary      Export applications as xlsx
// @Description  Employers export applications to their own vacancies; staff may pass ?user_id= for one employer or omit it to export everything
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /applications/export [get]
// @Security     BearerAuth
func (h *AdminHandler) ExportApplications(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		c.Error(apperror.Unauthorized("Authentication required"))
		return
	}

	// Staff with no target export everything; the usecase reads zero as "all"
	targetID := actor.ID
	if actor.IsStaff() {
		targetID = 0
		if raw := c.Query("user_id"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				c.Error(apperror.BadRequest("Invalid user id"))
				return
			}
			targetID = parsed
		}
	}

	data, err := h.adminUC.ExportApplications(c.Request.Context(), actor, targetID)
	if err != nil {
		c.Error(err)
		return
	}

	filename := fmt.Sprintf("applications_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
