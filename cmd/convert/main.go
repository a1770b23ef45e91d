// Command convert runs the WebP conversion outside the function runtime,
// either for a single object or by replaying a saved S3 notification.
// Usage:
//
//	go run ./cmd/convert -bucket uploads -key 'photos/a+b.jpg'
//	go run ./cmd/convert -event testdata/put.json
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"

	"webpconv/internal/config"
	"webpconv/internal/handler"
	"webpconv/internal/imageproc"
	"webpconv/internal/service"
	"webpconv/internal/storage"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	bucket := fs.String("bucket", "", "bucket containing the source object")
	key := fs.String("key", "", "object key, encoded as in S3 notifications")
	eventPath := fs.String("event", "", "path to an S3 notification JSON file, or - for stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	event, err := buildEvent(*bucket, *key, *eventPath, os.Stdin)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := storage.New(cfg)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	converter := service.NewConverterService(store, imageproc.NewProcessor())
	return handler.NewS3EventHandler(converter).Handle(context.Background(), event)
}

func buildEvent(bucket, key, eventPath string, stdin io.Reader) (events.S3Event, error) {
	var event events.S3Event

	switch {
	case eventPath != "" && (bucket != "" || key != ""):
		return event, errors.New("use either -event or -bucket/-key, not both")
	case eventPath != "":
		var r io.Reader = stdin
		if eventPath != "-" {
			f, err := os.Open(eventPath)
			if err != nil {
				return event, fmt.Errorf("opening event file: %w", err)
			}
			defer f.Close()
			r = f
		}
		if err := json.NewDecoder(r).Decode(&event); err != nil {
			return event, fmt.Errorf("decoding event: %w", err)
		}
		return event, nil
	case bucket != "" && key != "":
		var record events.S3EventRecord
		record.S3.Bucket.Name = bucket
		record.S3.Object.Key = key
		event.Records = []events.S3EventRecord{record}
		return event, nil
	default:
		return event, errors.New("either -event or both -bucket and -key are required")
	}
}
