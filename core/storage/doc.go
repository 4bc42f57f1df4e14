// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a narrow Client interface. The service uses
// object storage as the delivery outbox for finalized audit reports, and the integrity
// feature checks (and optionally creates) the outbox bucket.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easy to mock
// storage interactions in unit tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "audit-reports")
package storage
