package timesheet_test

import (
	"testing"
	"time"

	"workforce-manager/core/database"
	"workforce-manager/feature/timesheet/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var day = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

// setupDB returns a migrated in-memory database holding two users and
// timesheet 1 owned by "owner".
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, models.Models()...))

	require.NoError(t, db.Create(&[]models.User{
		{ID: "owner", FirstName: "Olive", LastName: "Owner"},
		{ID: "editor", FirstName: "Eddie", LastName: "Editor"},
	}).Error)

	require.NoError(t, db.Create(&models.Timesheet{
		ID:        1,
		Version:   1,
		Date:      day,
		StartTime: day.Add(7 * time.Hour),
		WorkType:  models.WorkTypeTruckDriver,
		Status:    models.StatusPending,
		Comment:   ptr("first day"),
		UserID:    "owner",
		JobsiteID: ptr("J1"),
	}).Error)
	return db
}

func seedNotification(t *testing.T, db *gorm.DB, topic, ref string) models.Notification {
	t.Helper()
	n := models.Notification{Topic: topic, ReferenceID: ref}
	require.NoError(t, db.Create(&n).Error)
	return n
}

func count(t *testing.T, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}
