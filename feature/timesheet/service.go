package timesheet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"workforce-manager/core/cache"
	"workforce-manager/core/events"
	corereconcile "workforce-manager/core/reconcile"
	"workforce-manager/feature/timesheet/models"
	"workforce-manager/feature/timesheet/reconcile"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service edits and reads timesheets.
type Service struct {
	db         *gorm.DB
	cfg        Config
	logger     *zap.Logger
	cache      *cache.Cache
	dispatcher *events.Dispatcher
	archiver   *Archiver
	ack        *Acknowledger
	validate   *validator.Validate
	now        func() time.Time
}

// Option configures optional collaborators of the service.
type Option func(*Service)

// WithCache enables cached reads and post-commit invalidation.
func WithCache(c *cache.Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithDispatcher publishes TimesheetEdited on d after every commit.
func WithDispatcher(d *events.Dispatcher) Option {
	return func(s *Service) { s.dispatcher = d }
}

// WithArchiver copies change-log entries to object storage after commit.
func WithArchiver(a *Archiver) Option {
	return func(s *Service) { s.archiver = a }
}

// WithClock replaces the clock used for change-log and update timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a timesheet service. Its post-commit handlers are
// registered on the given dispatcher, or on a private one.
func NewService(db *gorm.DB, cfg Config, logger *zap.Logger, opts ...Option) *Service {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		db:       db,
		cfg:      cfg,
		logger:   logger,
		ack:      NewAcknowledger(cfg.SubmissionTopic, cfg.ApprovalResponse),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.dispatcher == nil {
		s.dispatcher = events.NewDispatcher(logger)
	}
	s.RegisterHandlers(s.dispatcher)
	return s
}

// UpdateTimesheet applies one edit atomically: it acknowledges pending
// reviews, writes the change log, updates the timesheet's own fields and
// reconciles every child kind. Any failure rolls the whole edit back.
func (s *Service) UpdateTimesheet(ctx context.Context, req UpdateRequest) (*ChangeSummary, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	var (
		editor      models.User
		owner       models.User
		version     int
		changeLogID string
		acked       int
		reports     []corereconcile.Report
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error

		editor, err = findUser(tx, req.EditorID)
		if err != nil {
			return err
		}

		ts, err := findTimesheet(tx, req.TimesheetID)
		if err != nil {
			return err
		}
		owner = ts.User

		if req.Before != nil && req.Before.Version != nil && *req.Before.Version != ts.Version {
			return fmt.Errorf("%w: timesheet %d is at version %d, edit is based on %d",
				ErrStaleEdit, ts.ID, ts.Version, *req.Before.Version)
		}

		before, err := s.resolveBefore(ctx, tx, req)
		if err != nil {
			return err
		}

		if s.cfg.NotificationAck == AckInline {
			if acked, err = s.ack.Acknowledge(ctx, tx, ts.ID, editor.ID); err != nil {
				return err
			}
		}

		if len(req.Changes) > 0 {
			if changeLogID, err = s.writeChangeLog(ctx, tx, req); err != nil {
				return err
			}
		}

		if version, err = updateScalars(ctx, tx, ts, req.After, s.now().UTC()); err != nil {
			return err
		}

		reports, err = reconcile.ApplyAll(ctx, tx, ts.ID, before, req.After)
		return err
	})
	if err != nil {
		s.logger.Warn("Timesheet update rolled back",
			zap.Uint("timesheet_id", req.TimesheetID),
			zap.String("editor_id", req.EditorID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Timesheet updated",
		zap.Uint("timesheet_id", req.TimesheetID),
		zap.String("editor_id", req.EditorID),
		zap.Int("version", version),
		zap.String("change_log_id", changeLogID),
		zap.Int("notifications_acknowledged", acked))

	s.publish(ctx, TimesheetEdited{
		TimesheetID: req.TimesheetID,
		EditorID:    editor.ID,
		ChangeLogID: changeLogID,
		OccurredAt:  s.now().UTC(),
	})

	summary := BuildSummary(editor, owner, req.WasStatusChange, req.changeCount())
	summary.TimesheetID = req.TimesheetID
	summary.Version = version
	summary.ChangeLogID = changeLogID
	summary.NotificationsAcknowledged = acked
	summary.Reconciled = reports
	return &summary, nil
}

// PlanUpdate validates an edit and reports what it would write, without writing.
func (s *Service) PlanUpdate(ctx context.Context, req UpdateRequest) ([]corereconcile.Report, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	var reports []corereconcile.Report
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findUser(tx, req.EditorID); err != nil {
			return err
		}
		ts, err := findTimesheet(tx, req.TimesheetID)
		if err != nil {
			return err
		}
		if req.Before != nil && req.Before.Version != nil && *req.Before.Version != ts.Version {
			return fmt.Errorf("%w: timesheet %d is at version %d, edit is based on %d",
				ErrStaleEdit, ts.ID, ts.Version, *req.Before.Version)
		}
		before, err := s.resolveBefore(ctx, tx, req)
		if err != nil {
			return err
		}
		reports, err = reconcile.PlanAll(before, req.After)
		return err
	})
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// GetTimesheet returns a timesheet with its children, through the cache.
func (s *Service) GetTimesheet(ctx context.Context, id uint) (*models.Timesheet, error) {
	var ts models.Timesheet
	err := s.cache.GetOrLoad(ctx, cacheKeyTimesheet(id), &ts, func(ctx context.Context) (any, error) {
		loaded, err := reconcile.LoadTimesheet(ctx, s.db, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrTimesheetNotFound, id)
		}
		return loaded, err
	})
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

// ListTimesheets returns every timesheet without children, newest first, through the cache.
func (s *Service) ListTimesheets(ctx context.Context) ([]models.Timesheet, error) {
	var list []models.Timesheet
	err := s.cache.GetOrLoad(ctx, cacheKeyTimesheets, &list, func(ctx context.Context) (any, error) {
		var rows []models.Timesheet
		if err := s.db.WithContext(ctx).Preload("User").Order("date DESC, id DESC").Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to list timesheets: %w", err)
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListChangeLogs returns the change-log entries of a timesheet, newest first.
func (s *Service) ListChangeLogs(ctx context.Context, timesheetID uint) ([]models.ChangeLog, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Timesheet{}).Where("id = ?", timesheetID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to look up timesheet %d: %w", timesheetID, err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: %d", ErrTimesheetNotFound, timesheetID)
	}

	var logs []models.ChangeLog
	err := s.db.WithContext(ctx).
		Where("timesheet_id = ?", timesheetID).
		Order("changed_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list change logs: %w", err)
	}
	return logs, nil
}

// resolveBefore returns the snapshot the edit is diffed against. Without a
// caller snapshot the stored state is used; a nil caller collection whose
// after collection is set is filled from the stored state too.
func (s *Service) resolveBefore(ctx context.Context, tx *gorm.DB, req UpdateRequest) (models.TimesheetSnapshot, error) {
	if req.Before != nil && !needsStored(*req.Before, req.After) {
		return *req.Before, nil
	}

	stored, err := reconcile.LoadSnapshot(ctx, tx, req.TimesheetID)
	if err != nil {
		return models.TimesheetSnapshot{}, fmt.Errorf("failed to load timesheet %d: %w", req.TimesheetID, err)
	}
	if req.Before == nil {
		return stored, nil
	}

	before := *req.Before
	if before.MaintenanceLogs == nil {
		before.MaintenanceLogs = stored.MaintenanceLogs
	}
	if before.TruckingLogs == nil {
		before.TruckingLogs = stored.TruckingLogs
	}
	if before.TascoLogs == nil {
		before.TascoLogs = stored.TascoLogs
	}
	if before.EmployeeEquipmentLogs == nil {
		before.EmployeeEquipmentLogs = stored.EmployeeEquipmentLogs
	}
	return before, nil
}

func needsStored(before, after models.TimesheetSnapshot) bool {
	return (before.MaintenanceLogs == nil && after.MaintenanceLogs != nil) ||
		(before.TruckingLogs == nil && after.TruckingLogs != nil) ||
		(before.TascoLogs == nil && after.TascoLogs != nil) ||
		(before.EmployeeEquipmentLogs == nil && after.EmployeeEquipmentLogs != nil)
}

func (s *Service) writeChangeLog(ctx context.Context, tx *gorm.DB, req UpdateRequest) (string, error) {
	reason := strings.TrimSpace(req.ChangeReason)
	if reason == "" {
		reason = DefaultChangeReason
	}

	entry := models.ChangeLog{
		ID:              uuid.NewString(),
		TimesheetID:     req.TimesheetID,
		ChangedByID:     req.EditorID,
		ChangedAt:       s.now().UTC(),
		ChangeReason:    reason,
		WasStatusChange: req.WasStatusChange,
		NumberOfChanges: req.changeCount(),
	}
	if err := entry.SetChanges(req.Changes); err != nil {
		return "", err
	}
	if err := tx.WithContext(ctx).Create(&entry).Error; err != nil {
		return "", fmt.Errorf("failed to write change log: %w", err)
	}
	return entry.ID, nil
}

// updateScalars writes the timesheet's own fields present in after, clears
// the fields named in after.Clear, stamps updated_at with now and bumps the
// version. The update is
// conditional on the version read in this transaction.
func updateScalars(ctx context.Context, tx *gorm.DB, ts *models.Timesheet, after models.TimesheetSnapshot, now time.Time) (int, error) {
	updates := map[string]any{
		"version":    gorm.Expr("version + 1"),
		"updated_at": now,
	}
	if after.Date != nil {
		updates["date"] = *after.Date
	}
	if after.StartTime != nil {
		updates["start_time"] = *after.StartTime
	}
	if after.EndTime != nil {
		updates["end_time"] = *after.EndTime
	}
	if after.WorkType != nil {
		updates["work_type"] = *after.WorkType
	}
	if after.Status != nil {
		updates["status"] = *after.Status
	}
	if after.Comment != nil {
		updates["comment"] = *after.Comment
	}
	if after.UserID != nil {
		updates["user_id"] = *after.UserID
	}
	if after.JobsiteID != nil {
		updates["jobsite_id"] = *after.JobsiteID
	}
	if after.CostCodeID != nil {
		updates["cost_code_id"] = *after.CostCodeID
	}
	for _, field := range after.Clear {
		if column, ok := models.ClearableColumns[field]; ok {
			updates[column] = nil
		}
	}

	res := tx.WithContext(ctx).Model(&models.Timesheet{}).
		Where("id = ? AND version = ?", ts.ID, ts.Version).
		Updates(updates)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update timesheet %d: %w", ts.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, fmt.Errorf("%w: timesheet %d changed during the edit", ErrStaleEdit, ts.ID)
	}
	return ts.Version + 1, nil
}

func findUser(tx *gorm.DB, id string) (models.User, error) {
	var user models.User
	if err := tx.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, fmt.Errorf("%w: unknown user %s", ErrEditorNotPermitted, id)
		}
		return user, fmt.Errorf("failed to resolve editor %s: %w", id, err)
	}
	return user, nil
}

func findTimesheet(tx *gorm.DB, id uint) (*models.Timesheet, error) {
	var ts models.Timesheet
	if err := tx.Preload("User").First(&ts, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrTimesheetNotFound, id)
		}
		return nil, fmt.Errorf("failed to load timesheet %d: %w", id, err)
	}
	return &ts, nil
}

// publish dispatches TimesheetEdited. Handler failures are logged only.
func (s *Service) publish(ctx context.Context, p TimesheetEdited) {
	if err := s.dispatcher.Dispatch(ctx, events.New(EventTimesheetEdited, p)); err != nil {
		s.logger.Warn("Post-commit handlers failed",
			zap.Uint("timesheet_id", p.TimesheetID),
			zap.Error(err))
	}
}
