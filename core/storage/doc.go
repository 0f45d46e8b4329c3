// Package storage wraps the MinIO/S3 client used to archive change-log entries.
//
// The Client interface mirrors the subset of minio-go operations the
// application needs, so tests can substitute the testify mock in
// storage/mocks. EnsureBucket and PutJSON are the helpers the archive
// handler uses to write one JSON object per committed change-log entry.
package storage
