package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "carteira/internal/errors"
	"carteira/internal/schemas"
	"carteira/internal/validator"
)

// ErrorResponse documents the error body. Fields is set on uniqueness
// conflicts and Details on rule violations.
type ErrorResponse struct {
	Code    string                 `json:"code" example:"CLIENTE_NOT_FOUND"`
	Message string                 `json:"message" example:"Customer not found"`
	Fields  []string               `json:"fields,omitempty"`
	Details []apperrors.FieldError `json:"details,omitempty"`
}

// bindID parses the :id path parameter as a positive integer.
func bindID(c *gin.Context) (uint, error) {
	var p schemas.IDParam
	if err := c.ShouldBindUri(&p); err != nil {
		return 0, validator.BindingError(err)
	}
	return p.ID, nil
}

// bindJSON decodes and validates the request body into obj.
func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return validator.BindingError(err)
	}
	return nil
}

// respondWithError records err on the context and stops the chain.
// middleware.ErrorHandler renders it, so routes serving these handlers must
// mount that middleware.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
