package timesheet_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"workforce-manager/core/cache"
	"workforce-manager/core/events"
	corereconcile "workforce-manager/core/reconcile"
	"workforce-manager/core/storage/mocks"
	"workforce-manager/feature/timesheet"
	"workforce-manager/feature/timesheet/models"
	"workforce-manager/feature/timesheet/reconcile"

	"github.com/minio/minio-go/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func truckingEdit(t *testing.T, db *gorm.DB, svc *timesheet.Service) models.TimesheetSnapshot {
	t.Helper()
	_, err := svc.UpdateTimesheet(context.Background(), timesheet.UpdateRequest{
		TimesheetID: 1,
		EditorID:    "editor",
		After: models.TimesheetSnapshot{TruckingLogs: []models.TruckingLogSnapshot{{
			ID:          "T1",
			TruckNumber: "100",
			Materials:   []models.MaterialSnapshot{{Name: "gravel", Quantity: decimal.NewFromInt(5)}},
		}}},
	})
	require.NoError(t, err)

	before, err := reconcile.LoadSnapshot(context.Background(), db, 1)
	require.NoError(t, err)
	return before
}

func TestUpdateTimesheet_MaterialScenario(t *testing.T) {
	db := setupDB(t)
	svc := timesheet.NewService(db, timesheet.Config{}, zap.NewNop())
	before := truckingEdit(t, db, svc)
	require.Equal(t, 2, *before.Version)

	edited := before.TruckingLogs[0]
	edited.Materials = []models.MaterialSnapshot{{
		ID:       before.TruckingLogs[0].Materials[0].ID,
		Name:     "gravel",
		Quantity: decimal.NewFromInt(8),
	}}

	summary, err := svc.UpdateTimesheet(context.Background(), timesheet.UpdateRequest{
		TimesheetID:  1,
		EditorID:     "editor",
		ChangeReason: "wrong load count",
		Changes:      []models.FieldChange{{Field: "truckingLogs.T1.materials", Old: 5, New: 8}},
		Before:       &before,
		After:        models.TimesheetSnapshot{TruckingLogs: []models.TruckingLogSnapshot{edited}},
	})
	require.NoError(t, err)

	assert.True(t, summary.Success)
	assert.Equal(t, "Eddie Editor", summary.EditorFullName)
	assert.Equal(t, "Olive Owner", summary.UserFullName)
	assert.False(t, summary.OnlyStatusUpdated)
	assert.Equal(t, 3, summary.Version)
	assert.NotEmpty(t, summary.ChangeLogID)
	require.Len(t, summary.Reconciled, 1)
	assert.Equal(t, []corereconcile.ActionReport{{Type: corereconcile.ActionUpdate, Key: "T1"}}, summary.Reconciled[0].Actions)

	var materials []models.Material
	require.NoError(t, db.Where("trucking_log_id = ?", "T1").Find(&materials).Error)
	require.Len(t, materials, 1)
	assert.True(t, materials[0].Quantity.Equal(decimal.NewFromInt(8)))

	var entry models.ChangeLog
	require.NoError(t, db.First(&entry, "id = ?", summary.ChangeLogID).Error)
	assert.Equal(t, "wrong load count", entry.ChangeReason)
	assert.Equal(t, "editor", entry.ChangedByID)
	assert.Equal(t, 1, entry.NumberOfChanges)
	changes, err := entry.FieldChanges()
	require.NoError(t, err)
	assert.Equal(t, "truckingLogs.T1.materials", changes[0].Field)
}

func TestUpdateTimesheet_RollsBackOnGrandchildFailure(t *testing.T) {
	db := setupDB(t)
	svc := timesheet.NewService(db, timesheet.Config{}, zap.NewNop())
	before := truckingEdit(t, db, svc)
	seedNotification(t, db, "timecard-submitted", "1")

	injected := errors.New("injected material failure")
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail_materials", func(tx *gorm.DB) {
		if tx.Statement.Table == "materials" {
			_ = tx.AddError(injected)
		}
	}))

	edited := before.TruckingLogs[0]
	edited.TruckNumber = "200"
	edited.Materials = []models.MaterialSnapshot{{Name: "sand", Quantity: decimal.NewFromInt(9)}}

	_, err := svc.UpdateTimesheet(context.Background(), timesheet.UpdateRequest{
		TimesheetID: 1,
		EditorID:    "editor",
		Changes:     []models.FieldChange{{Field: "status", Old: "PENDING", New: "APPROVED"}},
		Before:      &before,
		After: models.TimesheetSnapshot{
			Status:       ptr(models.StatusApproved),
			Clear:        []string{"comment"},
			TruckingLogs: []models.TruckingLogSnapshot{edited},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, corereconcile.ErrWriteFailed)
	assert.ErrorIs(t, err, injected)

	after, err := reconcile.LoadSnapshot(context.Background(), db, 1)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, models.StatusPending, *after.Status)
	assert.Equal(t, "first day", *after.Comment)
	assert.Zero(t, count(t, db, &models.ChangeLog{}, ""))
	assert.Zero(t, count(t, db, &models.NotificationRead{}, ""))
	assert.Zero(t, count(t, db, &models.NotificationResponse{}, ""))
}

func TestUpdateTimesheet_RollsBackOnNotificationFailure(t *testing.T) {
	db := setupDB(t)
	svc := timesheet.NewService(db, timesheet.Config{}, zap.NewNop())
	seedNotification(t, db, "timecard-submitted", "1")

	injected := errors.New("injected response failure")
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail_responses", func(tx *gorm.DB) {
		if tx.Statement.Table == "notification_responses" {
			_ = tx.AddError(injected)
		}
	}))

	_, err := svc.UpdateTimesheet(context.Background(), timesheet.UpdateRequest{
		TimesheetID: 1,
		EditorID:    "editor",
		Changes:     []models.FieldChange{{Field: "status", Old: "PENDING", New: "APPROVED"}},
		After:       models.TimesheetSnapshot{Status: ptr(models.StatusApproved)},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, timesheet.ErrNotificationWriteFailed)
	assert.ErrorIs(t, err, injected)

	var ts models.Timesheet
	require.NoError(t, db.First(&ts, 1).Error)
	assert.Equal(t, models.StatusPending, ts.Status)
	assert.Equal(t, 1, ts.Version)
	assert.Zero(t, count(t, db, &models.NotificationRead{}, ""))
	assert.Zero(t, count(t, db, &models.NotificationResponse{}, ""))
	assert.Zero(t, count(t, db, &models.ChangeLog{}, ""))
}

func TestUpdateTimesheet_UsesServiceClock(t *testing.T) {
	db := setupDB(t)
	fixed := time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)
	svc := timesheet.NewService(db, timesheet.Config{}, zap.NewNop(),
		timesheet.WithClock(func() time.Time { return fixed }))

	_, err := svc.UpdateTimesheet(context.Background(), timesheet.UpdateRequest{
		TimesheetID: 1,
		EditorID:    "editor",
		Changes:     []models.FieldChange{{Field: "comment", Old: "first day", New: "second day"}},
		After:       models.TimesheetSnapshot{Comment: ptr("second day")},
	})
	require.NoError(t, err)

	var ts models.Timesheet
	require.NoError(t, db.First(&ts, 1).Error)
	assert.True(t, fixed.Equal(ts.UpdatedAt), "updated_at = %s", ts.UpdatedAt)

	var entry models.ChangeLog
	require.NoError(t, db.First(&entry).Error)
	assert.True(t, fixed.Equal(entry.ChangedAt), "changed_at = %s", entry.ChangedAt)
}

func TestUpdateTimesheet_AcknowledgesNotificationOnce(t *testing.T) {
	db := setupDB(t)
	svc := timesheet.NewService(db, timesheet.Config{}, zap.NewNop())
	n := seedNotification(t, db, "timecard-submitted", "1")
	seedNotification(t, db, "timecard-submitted", "2")
	seedNotification(t, db, "other-topic", "1")

	req := timesheet.UpdateRequest{
		TimesheetID: 1,
		EditorID:    "editor",
		After:       models.TimesheetSnapshot{Comment: ptr("checked")},
	}

	summary, err := svc.UpdateTimesheet(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.NotificationsAcknowledged)

	summary, err = svc.UpdateTimesheet(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.NotificationsAcknowledged)

	assert.Equal(t, int64(1), count(t, db, &models.NotificationRead{}, ""))
	var responses []models.NotificationResponse
	require.NoError(t, db.Find(&responses).Error)
	require.Len(t, responses, 1)
	assert.Equal(t, n.ID, responses[0].NotificationID)
	assert.Equal(t, "editor", responses[0].UserID)
	assert.Equal(t, "Approved", responses[0].Response)
}

func TestUpdateTimesheet_EventModeAcknowledgesAfterCommit(t *testing.T) {
	db := setupDB(t)
	d := events.NewDispatcher(zap.NewNop())
	svc := timesheet.NewService(db, timesheet.Config{NotificationAck: timesheet.AckEvent}, zap.NewNop(),
		timesheet.WithDispatcher(d))
	seedNotification(t, db, "timecard-submitted", "1")

	names := []string{}
	for _, h := range d.ListHandlers(timesheet.EventTimesheetEdited) {
		names = append(names, h.Name)
	}
	assert.Equal(t, []string{"notification-ack"}, names)

	summary, err := svc.UpdateTimesheet(context.Background(), timesheet.UpdateRequest{
		TimesheetID: 1,
		EditorID:    "editor",
		After:       models.TimesheetSnapshot{Status: ptr(models.StatusApproved)},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.NotificationsAcknowledged)
	assert.Equal(t, int64(1), count(t, db, &models.NotificationResponse{}, "response = ?", "Approved"))
}

func TestUpdateTimesheet_StaleEdit(t *testing.T) {
	db := setupDB(t)
	svc := timesheet.NewService(db, timesheet.Config{}, zap.NewNop())

	_, err := svc.UpdateTimesheet(context.Background(), timesheet.UpdateRequest{
		TimesheetID: 1,
		EditorID:    "editor",
		Before:      &models.TimesheetSnapshot{Version: ptr(0)},
		After:       models.TimesheetSnapshot{Comment: ptr("late")},
	})
	assert.ErrorIs(t, err, timesheet.ErrStaleEdit)

	var ts models.Timesheet
	require.NoError(t, db.First(&ts, 1).Error)
	assert.Equal(t, 1, ts.Version)
	assert.Equal(t, "first day", *ts.Comment)
}

func TestUpdateTimesheet_ResolutionErrors(t *testing.T) {
	db := setupDB(t)
	svc := timesheet.NewService(db, timesheet.Config{}, zap.NewNop())

	tests := []struct {
		name string
		req  timesheet.UpdateRequest
		want error
	}{
		{
			name: "unknown editor",
			req:  timesheet.UpdateRequest{TimesheetID: 1, EditorID: "ghost"},
			want: timesheet.ErrEditorNotPermitted,
		},
		{
			name: "unknown timesheet",
			req:  timesheet.UpdateRequest{TimesheetID: 42, EditorID: "editor"},
			want: timesheet.ErrTimesheetNotFound,
		},
		{
			name: "missing editor",
			req:  timesheet.UpdateRequest{TimesheetID: 1},
			want: timesheet.ErrInvalidRequest,
		},
		{
			name: "bad status",
			req: timesheet.UpdateRequest{TimesheetID: 1, EditorID: "editor",
				After: models.TimesheetSnapshot{Status: ptr(models.Status("DONE"))}},
			want: timesheet.ErrInvalidRequest,
		},
		{
			name: "bad clear field",
			req: timesheet.UpdateRequest{TimesheetID: 1, EditorID: "editor",
				After: models.TimesheetSnapshot{Clear: []string{"userId"}}},
			want: timesheet.ErrInvalidRequest,
		},
		{
			name: "duplicate child id",
			req: timesheet.UpdateRequest{TimesheetID: 1, EditorID: "editor",
				Changes: []models.FieldChange{{Field: "equipment"}},
				After: models.TimesheetSnapshot{EmployeeEquipmentLogs: []models.EmployeeEquipmentLogSnapshot{
					{ID: "E1", EquipmentID: "A"}, {ID: "E1", EquipmentID: "B"},
				}}},
			want: corereconcile.ErrDuplicateIdentifier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateTimesheet(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.Zero(t, count(t, db, &models.ChangeLog{}, ""))
	assert.Zero(t, count(t, db, &models.EmployeeEquipmentLog{}, ""))
	var ts models.Timesheet
	require.NoError(t, db.First(&ts, 1).Error)
	assert.Equal(t, 1, ts.Version)
}

func TestUpdateTimesheet_PartialScalarUpdate(t *testing.T) {
	db := setupDB(t)
	svc := timesheet.NewService(db, timesheet.Config{}, zap.NewNop())
	end := day.Add(15 * time.Hour)

	summary, err := svc.UpdateTimesheet(context.Background(), timesheet.UpdateRequest{
		TimesheetID:     1,
		EditorID:        "editor",
		WasStatusChange: true,
		Changes:         []models.FieldChange{{Field: "status", Old: "PENDING", New: "APPROVED"}},
		After: models.TimesheetSnapshot{
			Status:  ptr(models.StatusApproved),
			EndTime: &end,
			Clear:   []string{"jobsiteId"},
		},
	})
	require.NoError(t, err)
	assert.True(t, summary.OnlyStatusUpdated)
	assert.Equal(t, 2, summary.Version)

	var ts models.Timesheet
	require.NoError(t, db.First(&ts, 1).Error)
	assert.Equal(t, models.StatusApproved, ts.Status)
	assert.True(t, ts.EndTime.Equal(end))
	assert.Nil(t, ts.JobsiteID)
	assert.Equal(t, "first day", *ts.Comment)
	assert.Equal(t, models.WorkTypeTruckDriver, ts.WorkType)
	assert.Equal(t, "owner", ts.UserID)

	var entry models.ChangeLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, timesheet.DefaultChangeReason, entry.ChangeReason)
	assert.True(t, entry.WasStatusChange)
}

func TestUpdateTimesheet_NoChangesWritesNoChangeLog(t *testing.T) {
	db := setupDB(t)
	svc := timesheet.NewService(db, timesheet.Config{}, zap.NewNop())

	summary, err := svc.UpdateTimesheet(context.Background(), timesheet.UpdateRequest{
		TimesheetID: 1,
		EditorID:    "editor",
		After:       models.TimesheetSnapshot{Comment: ptr("x")},
	})
	require.NoError(t, err)
	assert.Empty(t, summary.ChangeLogID)
	assert.Zero(t, count(t, db, &models.ChangeLog{}, ""))
}

func TestGetTimesheet_CachedAndInvalidated(t *testing.T) {
	db := setupDB(t)
	c := cache.New(cache.NewMemoryStore(), time.Minute, "")
	svc := timesheet.NewService(db, timesheet.Config{}, zap.NewNop(), timesheet.WithCache(c))
	ctx := context.Background()

	ts, err := svc.GetTimesheet(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, ts.Status)
	list, err := svc.ListTimesheets(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	// A write behind the service's back is not visible through the cache
	require.NoError(t, db.Model(&models.Timesheet{}).Where("id = ?", 1).Update("comment", "direct").Error)
	ts, err = svc.GetTimesheet(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "first day", *ts.Comment)

	_, err = svc.UpdateTimesheet(ctx, timesheet.UpdateRequest{
		TimesheetID: 1,
		EditorID:    "editor",
		After:       models.TimesheetSnapshot{Status: ptr(models.StatusApproved)},
	})
	require.NoError(t, err)

	ts, err = svc.GetTimesheet(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, ts.Status)
	assert.Equal(t, "direct", *ts.Comment)

	list, err = svc.ListTimesheets(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, list[0].Status)

	_, err = svc.GetTimesheet(ctx, 99)
	assert.ErrorIs(t, err, timesheet.ErrTimesheetNotFound)
}

func TestUpdateTimesheet_ArchivesChangeLog(t *testing.T) {
	db := setupDB(t)
	client := new(mocks.Client)
	archiver := timesheet.NewArchiver(client, "audit", "changelogs")
	svc := timesheet.NewService(db, timesheet.Config{}, zap.NewNop(), timesheet.WithArchiver(archiver))

	client.On("PutObject", mock.Anything, "audit", mock.MatchedBy(func(name string) bool {
		return len(name) > len("changelogs/1/") && name[:len("changelogs/1/")] == "changelogs/1/"
	}), mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil).Once()

	summary, err := svc.UpdateTimesheet(context.Background(), timesheet.UpdateRequest{
		TimesheetID: 1,
		EditorID:    "editor",
		Changes:     []models.FieldChange{{Field: "comment", Old: "first day", New: "second"}},
		After:       models.TimesheetSnapshot{Comment: ptr("second")},
	})
	require.NoError(t, err)
	assert.Equal(t, "changelogs/1/"+summary.ChangeLogID+".json", archiver.ObjectName(1, summary.ChangeLogID))
	client.AssertExpectations(t)
}

func TestUpdateTimesheet_ArchiveFailureDoesNotFailEdit(t *testing.T) {
	db := setupDB(t)
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("storage down"))
	svc := timesheet.NewService(db, timesheet.Config{}, zap.NewNop(),
		timesheet.WithArchiver(timesheet.NewArchiver(client, "audit", "changelogs")))

	_, err := svc.UpdateTimesheet(context.Background(), timesheet.UpdateRequest{
		TimesheetID: 1,
		EditorID:    "editor",
		Changes:     []models.FieldChange{{Field: "comment"}},
		After:       models.TimesheetSnapshot{Comment: ptr("second")},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count(t, db, &models.ChangeLog{}, ""))
}

func TestPlanUpdate(t *testing.T) {
	db := setupDB(t)
	svc := timesheet.NewService(db, timesheet.Config{}, zap.NewNop())
	truckingEdit(t, db, svc)

	reports, err := svc.PlanUpdate(context.Background(), timesheet.UpdateRequest{
		TimesheetID: 1,
		EditorID:    "editor",
		After:       models.TimesheetSnapshot{TruckingLogs: []models.TruckingLogSnapshot{}},
	})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 1, reports[0].Summary.Deleted)
	assert.Equal(t, int64(1), count(t, db, &models.TruckingLog{}, ""))
}

func TestListChangeLogs(t *testing.T) {
	db := setupDB(t)
	svc := timesheet.NewService(db, timesheet.Config{}, zap.NewNop())

	for _, comment := range []string{"a", "b"} {
		_, err := svc.UpdateTimesheet(context.Background(), timesheet.UpdateRequest{
			TimesheetID: 1,
			EditorID:    "editor",
			Changes:     []models.FieldChange{{Field: "comment", New: comment}},
			After:       models.TimesheetSnapshot{Comment: ptr(comment)},
		})
		require.NoError(t, err)
	}

	logs, err := svc.ListChangeLogs(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, logs, 2)

	_, err = svc.ListChangeLogs(context.Background(), 7)
	assert.ErrorIs(t, err, timesheet.ErrTimesheetNotFound)
}
