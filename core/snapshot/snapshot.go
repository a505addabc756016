package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"content-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// Writer persists one named JSON document.
type Writer interface {
	Write(ctx context.Context, name string, data []byte) error
}

// Encode renders v as two-space indented JSON without HTML escaping.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileWriter writes documents as {Dir}/{name}.json.
type FileWriter struct {
	Dir string
}

// NewFileWriter creates a FileWriter rooted at dir.
func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{Dir: dir}
}

// Path returns the file path of a document.
func (w *FileWriter) Path(name string) string {
	return filepath.Join(w.Dir, name+".json")
}

// Write replaces the document atomically: the data goes to a temporary file in the
// same directory which is then renamed over the target.
func (w *FileWriter) Write(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory %s: %w", w.Dir, err)
	}

	tmp, err := os.CreateTemp(w.Dir, "."+name+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", name, err)
	}
	if err := os.Rename(tmpName, w.Path(name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", w.Path(name), err)
	}
	return nil
}

// BucketWriter uploads documents to {bucket}/{prefix}/{name}.json.
type BucketWriter struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucketWriter creates a BucketWriter.
func NewBucketWriter(client storage.Client, bucket, prefix string) *BucketWriter {
	return &BucketWriter{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// ObjectName returns the object key of a document.
func (w *BucketWriter) ObjectName(name string) string {
	if w.prefix == "" {
		return name + ".json"
	}
	return w.prefix + "/" + name + ".json"
}

// EnsureBucket creates the bucket when it does not exist yet.
func (w *BucketWriter) EnsureBucket(ctx context.Context) error {
	exists, err := w.client.BucketExists(ctx, w.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := w.client.MakeBucket(ctx, w.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", w.bucket, err)
	}
	return nil
}

// Write uploads one document.
func (w *BucketWriter) Write(ctx context.Context, name string, data []byte) error {
	_, err := w.client.PutObject(ctx, w.bucket, w.ObjectName(name), bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", w.ObjectName(name), err)
	}
	return nil
}
