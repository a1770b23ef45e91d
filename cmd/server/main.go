// Command server issues presigned upload and download URLs for the image
// bucket. Uploads land in the bucket directly and trigger the converter.
//
// @title webpconv file API
// @version 1.0
// @description Presigned S3 URLs for browser uploads and WebP-preferring downloads.
// @BasePath /
package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"webpconv/internal/config"
	"webpconv/internal/handler"
	"webpconv/internal/router"
	"webpconv/internal/service"
	"webpconv/internal/storage"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := storage.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	fileSvc := service.NewFileService(store, &cfg.S3)
	fileH := handler.NewFileHandler(fileSvc)
	r := router.Setup(fileH, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on %s (bucket %s)", cfg.Server.Port, cfg.S3.Bucket)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
