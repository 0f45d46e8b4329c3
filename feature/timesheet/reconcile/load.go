package reconcile

import (
	"context"

	"workforce-manager/feature/timesheet/models"

	"gorm.io/gorm"
)

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// LoadTimesheet reads a timesheet with its owner, children and grandchildren.
// A missing timesheet returns gorm.ErrRecordNotFound.
func LoadTimesheet(ctx context.Context, tx *gorm.DB, id uint) (*models.Timesheet, error) {
	var ts models.Timesheet
	err := tx.WithContext(ctx).
		Preload("User").
		Preload("MaintenanceLogs", orderByID).
		Preload("TruckingLogs", orderByID).
		Preload("TruckingLogs.EquipmentHauled", orderByID).
		Preload("TruckingLogs.Materials", orderByID).
		Preload("TruckingLogs.RefuelLogs", orderByID).
		Preload("TruckingLogs.StateMileages", orderByID).
		Preload("TascoLogs", orderByID).
		Preload("TascoLogs.RefuelLogs", orderByID).
		Preload("EmployeeEquipmentLogs", orderByID).
		First(&ts, id).Error
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

// LoadSnapshot reads the stored state of a timesheet in snapshot shape.
func LoadSnapshot(ctx context.Context, tx *gorm.DB, id uint) (models.TimesheetSnapshot, error) {
	ts, err := LoadTimesheet(ctx, tx, id)
	if err != nil {
		return models.TimesheetSnapshot{}, err
	}
	return models.SnapshotOf(*ts), nil
}
