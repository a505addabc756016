// Package storage wraps the MinIO Go client for snapshot publication.
//
// The Client interface exposes only the calls the snapshot publisher and the
// integrity check make, which keeps it easy to mock (see core/storage/mocks).
// Both AWS S3 and self-hosted MinIO endpoints are supported.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, "content")
package storage
