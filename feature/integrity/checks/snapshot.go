package checks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"content-sync/core/storage"
	"content-sync/feature/content/models"

	"github.com/minio/minio-go/v7"
	"github.com/tidwall/gjson"
)

// FileReport describes one local snapshot document.
type FileReport struct {
	Name       string    `json:"name"`
	Present    bool      `json:"present"`
	Valid      bool      `json:"valid"`
	Records    int       `json:"records"`
	ModifiedAt time.Time `json:"modifiedAt,omitempty"`
}

// ObjectReport describes one published snapshot object.
type ObjectReport struct {
	Name       string    `json:"name"`
	Present    bool      `json:"present"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modifiedAt,omitempty"`
}

// CheckSnapshot inspects the snapshot documents in dir.
// A document is valid when it parses as a JSON array.
func CheckSnapshot(dir string) ([]FileReport, error) {
	reports := make([]FileReport, 0, len(models.Categories))

	for _, name := range models.Categories {
		report := FileReport{Name: name}
		path := filepath.Join(dir, name+".json")

		info, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			reports = append(reports, report)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		report.Present = true
		report.ModifiedAt = info.ModTime().UTC()
		if gjson.ValidBytes(data) {
			if doc := gjson.ParseBytes(data); doc.IsArray() {
				report.Valid = true
				report.Records = len(doc.Array())
			}
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// CheckPublished lists the snapshot objects under prefix in the bucket.
func CheckPublished(ctx context.Context, client storage.Client, bucket, prefix string) ([]ObjectReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	prefix = strings.Trim(prefix, "/")
	listPrefix := ""
	if prefix != "" {
		listPrefix = prefix + "/"
	}

	found := make(map[string]minio.ObjectInfo)
	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: listPrefix}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s/%s: %w", bucket, listPrefix, obj.Err)
		}
		found[obj.Key] = obj
	}

	reports := make([]ObjectReport, 0, len(models.Categories))
	for _, name := range models.Categories {
		report := ObjectReport{Name: name}
		if obj, ok := found[listPrefix+name+".json"]; ok {
			report.Present = true
			report.Size = obj.Size
			report.ModifiedAt = obj.LastModified.UTC()
		}
		reports = append(reports, report)
	}
	return reports, nil
}
