package resp

import (
	"net/http"

	"dishpatch-be/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "data": data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": message, "data": data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"success": false, "error": msg})
}

// Error maps a service error onto the JSON error envelope. Unknown errors
// become a 500 without leaking internals.
func Error(c *gin.Context, err error) {
	if ae := apperr.From(err); ae != nil {
		c.JSON(ae.Status(), gin.H{"success": false, "error": ae.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
}
