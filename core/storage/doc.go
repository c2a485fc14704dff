// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so snapshot archiving
// works against AWS S3 or a self-hosted MinIO, and can be mocked in tests
// (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: used by EnsureBucket at startup.
//   - PutObject: archives a raw provider response.
//   - ListObjects / GetObject: browse archived responses.
//   - RemoveObject: prunes snapshots beyond the retention limit.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	created, err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
