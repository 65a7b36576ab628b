package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports liveness plus the security features the frontend can rely on.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": "1.0.0",
		"features": gin.H{
			"csrf_protection":  true,
			"refresh_rotation": true,
			"input_sanitizing": true,
		},
	})
}
