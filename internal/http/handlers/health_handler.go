package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports whether the process is up. The completion service is not
// probed here; its failures surface per request as apology replies.
func Health(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"status": "healthy",
		"services": gin.H{
			"api": "running",
			"bot": "initialized",
		},
	})
}
