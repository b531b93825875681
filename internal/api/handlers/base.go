package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eshaffer321/komisi/internal/api/dto"
)

// Base provides shared functionality for all handlers.
type Base struct{}

// WriteJSON writes a JSON response with the given status code.
func (b *Base) WriteJSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// WriteError writes an error response with the given status code and stops
// the handler chain.
func (b *Base) WriteError(c *gin.Context, status int, err dto.APIError) {
	c.AbortWithStatusJSON(status, err)
}

// WriteServiceError maps a calculation error to a response. Input errors are
// 422 with their stable code; anything else is a 500.
func (b *Base) WriteServiceError(c *gin.Context, err error) {
	if apiErr, ok := dto.CommissionError(err); ok {
		b.WriteError(c, http.StatusUnprocessableEntity, apiErr)
		return
	}
	_ = c.Error(err)
	b.WriteError(c, http.StatusInternalServerError, dto.InternalError())
}
