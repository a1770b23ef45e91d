// Command lambda is the function entry point: it converts JPEG/PNG uploads
// announced by S3 object-created notifications into 800px-wide WebP copies.
package main

import (
	"fmt"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"webpconv/internal/config"
	"webpconv/internal/handler"
	"webpconv/internal/imageproc"
	"webpconv/internal/service"
	"webpconv/internal/storage"
)

func main() {
	h, err := setup()
	if err != nil {
		log.Fatal(err)
	}
	lambda.Start(h.Handle)
}

// setup builds the storage client once per process so warm invocations reuse it.
func setup() (*handler.S3EventHandler, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	converter := service.NewConverterService(store, imageproc.NewProcessor())
	return handler.NewS3EventHandler(converter), nil
}
