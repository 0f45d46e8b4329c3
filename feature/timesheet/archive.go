package timesheet

import (
	"context"
	"fmt"
	"path"
	"strconv"

	"workforce-manager/core/storage"
	"workforce-manager/feature/timesheet/models"

	"gorm.io/gorm"
)

// Archiver copies committed change-log entries to object storage.
type Archiver struct {
	client storage.Client
	bucket string
	prefix string
}

// NewArchiver creates an archiver writing under prefix in bucket.
func NewArchiver(client storage.Client, bucket, prefix string) *Archiver {
	return &Archiver{client: client, bucket: bucket, prefix: prefix}
}

// ObjectName returns the archive path of a change-log entry.
func (a *Archiver) ObjectName(timesheetID uint, changeLogID string) string {
	return path.Join(a.prefix, strconv.FormatUint(uint64(timesheetID), 10), changeLogID+".json")
}

// Archive loads a change-log entry and writes it as JSON.
func (a *Archiver) Archive(ctx context.Context, db *gorm.DB, changeLogID string) error {
	var entry models.ChangeLog
	if err := db.WithContext(ctx).First(&entry, "id = ?", changeLogID).Error; err != nil {
		return fmt.Errorf("failed to load change log %s: %w", changeLogID, err)
	}
	return storage.PutJSON(ctx, a.client, a.bucket, a.ObjectName(entry.TimesheetID, entry.ID), entry)
}
