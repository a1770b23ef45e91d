package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Liveness handles GET /healthz
func Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
