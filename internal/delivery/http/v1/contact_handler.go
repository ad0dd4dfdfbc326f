package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{contactUC: contactUC}
	public.POST("/contact", handler.Submit)
}

// Submit godoc
// @Summary      Submit contact form
// @Description  Stores the message and notifies the site team by email
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        message  body      domain.ContactRequest  true  "Contact message"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	msg, err := h.contactUC.SubmitContactMessage(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Message received", msg)
}
