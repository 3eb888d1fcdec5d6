package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is reported by the info endpoint.
const Version = "1.0.0"

// Info serves GET /.
func Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "consorcio",
		"message": "Consorcio shared-expense ledger API",
		"version": Version,
	})
}

// Health serves GET /health.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "server is running",
	})
}
