package checks

import (
	"context"
	"fmt"

	"workforce-manager/core/storage"

	"go.uber.org/zap"
)

// StorageReport is the result of a change-log archive check.
type StorageReport struct {
	Enabled bool   `json:"enabled"`
	Bucket  string `json:"bucket"`
	Exists  bool   `json:"exists"`
	Status  string `json:"status"` // "ok", "missing", "disabled"
}

// CheckStorage verifies that the archive bucket exists. A nil client means
// archiving is disabled.
func CheckStorage(ctx context.Context, client storage.Client, bucket string) (*StorageReport, error) {
	report := &StorageReport{Bucket: bucket}
	if client == nil {
		report.Status = "disabled"
		return report, nil
	}
	report.Enabled = true

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.Exists = exists
	report.Status = "ok"
	if !exists {
		report.Status = "missing"
	}
	return report, nil
}

// FixStorage creates the archive bucket.
func FixStorage(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger) error {
	if client == nil {
		return fmt.Errorf("storage is disabled")
	}
	logger.Info("Creating archive bucket", zap.String("bucket", bucket))
	return storage.EnsureBucket(ctx, client, bucket, region)
}
