package v1

import (
	"errors"
	"strconv"

	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindError maps a binding failure to an AppError, with field-level messages
// when the failure came from struct validation.
func bindError(err error) *apperror.AppError {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return apperror.Validation("Validation failed", validation.FormatValidationErrors(validationErrors))
	}
	return apperror.BadRequest("Invalid request body")
}

func toPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// pageParams reads ?page= and ?page_size= with defaults.
func pageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

// paginatedData is the standard shape for list responses.
func paginatedData(items interface{}, total int64, page, pageSize int) gin.H {
	return gin.H{
		"items":     items,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	}
}
