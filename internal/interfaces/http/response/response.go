package response

import (
	"github.com/gin-gonic/gin"
	domainerrors "contract-hub.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. AppError keeps its own status and message;
// every other error goes through the domain status mapping.
func Error(c *gin.Context, err error) {
	if appErr, ok := err.(*domainerrors.AppError); ok {
		c.JSON(appErr.Status, gin.H{"message": appErr.Message})
		return
	}

	status := domainerrors.StatusOf(err)
	message := err.Error()
	if status == 500 {
		// never leak internals
		message = "internal server error"
	}
	c.JSON(status, gin.H{"message": message})
}

// ErrorWithStatus sends an error response with an explicit status and message
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
