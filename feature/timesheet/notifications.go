package timesheet

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"workforce-manager/feature/timesheet/models"

	"gorm.io/gorm"
)

// Acknowledger closes the open review notifications of a timesheet.
type Acknowledger struct {
	topic    string
	response string
	now      func() time.Time
}

// NewAcknowledger creates an acknowledger for the given topic and response text.
func NewAcknowledger(topic, response string) *Acknowledger {
	return &Acknowledger{topic: topic, response: response, now: time.Now}
}

// Acknowledge records a read and a response by editorID on every open
// notification of the timesheet, and returns how many it closed. db may be
// a transaction. Failures wrap ErrNotificationWriteFailed.
func (a *Acknowledger) Acknowledge(ctx context.Context, db *gorm.DB, timesheetID uint, editorID string) (int, error) {
	var open []models.Notification
	err := db.WithContext(ctx).
		Where("topic = ? AND reference_id = ?", a.topic, strconv.FormatUint(uint64(timesheetID), 10)).
		Where("NOT EXISTS (SELECT 1 FROM notification_responses r WHERE r.notification_id = notifications.id)").
		Order("id").
		Find(&open).Error
	if err != nil {
		return 0, fmt.Errorf("%w: find open notifications: %w", ErrNotificationWriteFailed, err)
	}
	if len(open) == 0 {
		return 0, nil
	}

	now := a.now().UTC()
	reads := make([]models.NotificationRead, 0, len(open))
	responses := make([]models.NotificationResponse, 0, len(open))
	for _, n := range open {
		reads = append(reads, models.NotificationRead{
			NotificationID: n.ID,
			UserID:         editorID,
			ReadAt:         now,
		})
		responses = append(responses, models.NotificationResponse{
			NotificationID: n.ID,
			UserID:         editorID,
			Response:       a.response,
			RespondedAt:    now,
		})
	}

	if err := db.WithContext(ctx).Create(&reads).Error; err != nil {
		return 0, fmt.Errorf("%w: mark read: %w", ErrNotificationWriteFailed, err)
	}
	if err := db.WithContext(ctx).Create(&responses).Error; err != nil {
		return 0, fmt.Errorf("%w: record response: %w", ErrNotificationWriteFailed, err)
	}
	return len(open), nil
}
