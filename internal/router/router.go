package router

import (
	"github.com/gin-gonic/gin"

	"webpconv/internal/handler"
	"webpconv/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(fileH *handler.FileHandler, allowedOrigins []string) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	r.GET("/healthz", handler.Liveness)

	// Keys may contain slashes, so the download route takes the rest of the path.
	r.POST("/file", fileH.CreateUpload)
	r.GET("/file/*objectKey", fileH.GetDownloadURL)

	return r
}
