package timesheet

import (
	"context"
	"fmt"
	"time"

	"workforce-manager/core/events"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventTimesheetEdited is published after an edit commits.
const EventTimesheetEdited events.Type = "timesheet.edited"

// TimesheetEdited is the payload of EventTimesheetEdited.
type TimesheetEdited struct {
	TimesheetID uint      `json:"timesheetId"`
	EditorID    string    `json:"editorId"`
	ChangeLogID string    `json:"changeLogId,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// Cache keys invalidated by an edit.
const cacheKeyTimesheets = "timesheets"

func cacheKeyTimesheet(id uint) string {
	return fmt.Sprintf("admin/timesheets/%d", id)
}

// RegisterHandlers subscribes the post-commit handlers of the service.
func (s *Service) RegisterHandlers(d *events.Dispatcher) {
	if s.cfg.NotificationAck == AckEvent {
		d.Subscribe(EventTimesheetEdited, "notification-ack", s.handleAcknowledge)
	}
	if s.cache != nil {
		d.Subscribe(EventTimesheetEdited, "cache-invalidation", s.handleInvalidate)
	}
	if s.archiver != nil {
		d.Subscribe(EventTimesheetEdited, "changelog-archive", s.handleArchive)
	}
}

func payload(evt *events.Event) (TimesheetEdited, error) {
	p, ok := evt.Payload.(TimesheetEdited)
	if !ok {
		return TimesheetEdited{}, fmt.Errorf("unexpected payload %T for %s", evt.Payload, evt.Type)
	}
	return p, nil
}

func (s *Service) handleAcknowledge(ctx context.Context, evt *events.Event) error {
	p, err := payload(evt)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.ack.Acknowledge(ctx, tx, p.TimesheetID, p.EditorID)
		if err != nil {
			return err
		}
		s.logger.Debug("Notifications acknowledged",
			zap.Uint("timesheet_id", p.TimesheetID),
			zap.Int("count", n))
		return nil
	})
}

func (s *Service) handleInvalidate(ctx context.Context, evt *events.Event) error {
	p, err := payload(evt)
	if err != nil {
		return err
	}
	return s.cache.Invalidate(ctx, cacheKeyTimesheets, cacheKeyTimesheet(p.TimesheetID))
}

func (s *Service) handleArchive(ctx context.Context, evt *events.Event) error {
	p, err := payload(evt)
	if err != nil {
		return err
	}
	if p.ChangeLogID == "" {
		return nil
	}
	return s.archiver.Archive(ctx, s.db, p.ChangeLogID)
}
