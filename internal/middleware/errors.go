package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/mflive/internal/domain/dto"
)

// ErrorHandler renders errors attached with c.Error as a 500 ErrorResponse,
// unless the handler already wrote a response.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	last := c.Errors.Last()
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", last.Err))
}

// AbortWithError stops the chain, records err on the context for the request
// logger and writes status with a dto.ErrorResponse body.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
