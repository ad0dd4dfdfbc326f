package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchUC domain.SearchUsecase
}

func NewSearchHandler(public *gin.RouterGroup, searchUC domain.SearchUsecase) {
	handler := &SearchHandler{searchUC: searchUC}

	public.GET("/search", handler.GlobalSearch)
	public.GET("/home", handler.Home)
}

// GlobalSearch godoc
// @Summary      Global search
// @Description  Top matches per type (vacancies, articles, news) plus the total count of all matches before truncation
// @Tags         search
// @Produce      json
// @Param        q  query  string  true  "Search query"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /search [get]
func (h *SearchHandler) GlobalSearch(c *gin.Context) {
	result, err := h.searchUC.GlobalSearch(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", result)
}

// Home godoc
// @Summary      Landing page payload
// @Description  Latest news, articles and open vacancies plus the category list
// @Tags         search
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /home [get]
func (h *SearchHandler) Home(c *gin.Context) {
	payload, err := h.searchUC.Home(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", payload)
}
