package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gcsstorage "cloud.google.com/go/storage"
)

// ParseGCSTarget splits gs://bucket/object. ok is false for anything else.
func ParseGCSTarget(target string) (bucket, object string, ok bool) {
	rest, found := strings.CutPrefix(target, "gs://")
	if !found {
		return "", "", false
	}
	bucket, object, found = strings.Cut(rest, "/")
	if !found || bucket == "" || object == "" {
		return "", "", false
	}
	return bucket, object, true
}

// Upload writes data to an object in bucket.
func Upload(ctx context.Context, bucket *gcsstorage.BucketHandle, object string, data []byte) error {
	w := bucket.Object(object).NewWriter(ctx)
	w.ContentType = XLSXContentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("upload %s: %w", object, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize upload %s: %w", object, err)
	}
	return nil
}

// Write stores data at target, either a local path or gs://bucket/object.
func Write(ctx context.Context, target string, data []byte) error {
	if bucket, object, ok := ParseGCSTarget(target); ok {
		client, err := gcsstorage.NewClient(ctx)
		if err != nil {
			return fmt.Errorf("create storage client: %w", err)
		}
		defer client.Close()
		return Upload(ctx, client.Bucket(bucket), object, data)
	}
	if strings.HasPrefix(target, "gs://") {
		return fmt.Errorf("invalid storage target %q, want gs://bucket/object", target)
	}

	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}
