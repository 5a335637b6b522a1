// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a narrow interface over the bucket that holds
// ingested golden statements (golden/...) and the ledger's holdings snapshots (system/...).
// Both AWS S3 and self-hosted MinIO are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easy
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	data, err := storage.ReadObject(ctx, client, cfg.Storage.Bucket, "golden/2024-03.json", cfg.Storage.MaxObjectBytes)
package storage
