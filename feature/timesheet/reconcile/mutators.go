package reconcile

import (
	"context"
	"errors"

	"workforce-manager/feature/timesheet/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotOwned is returned when a record id does not exist under the timesheet being edited.
var ErrNotOwned = errors.New("record does not belong to timesheet")

// scope restricts a query to one record of one timesheet.
func scope(tx *gorm.DB, id any, timesheetID uint) *gorm.DB {
	return tx.Where("id = ? AND timesheet_id = ?", id, timesheetID)
}

// ensureOwned fails with ErrNotOwned unless the record exists under timesheetID.
func ensureOwned(ctx context.Context, tx *gorm.DB, model any, id any, timesheetID uint) error {
	var count int64
	if err := scope(tx.WithContext(ctx).Model(model), id, timesheetID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotOwned
	}
	return nil
}

// deleteOwned deletes one record of the timesheet, failing when nothing matched.
func deleteOwned(ctx context.Context, tx *gorm.DB, model any, id any, timesheetID uint) error {
	res := scope(tx.WithContext(ctx), id, timesheetID).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotOwned
	}
	return nil
}

// MaintenanceMutator writes maintenance logs of one timesheet.
type MaintenanceMutator struct {
	tx          *gorm.DB
	timesheetID uint
}

// NewMaintenanceMutator binds a mutator to a transaction and timesheet.
func NewMaintenanceMutator(tx *gorm.DB, timesheetID uint) *MaintenanceMutator {
	return &MaintenanceMutator{tx: tx, timesheetID: timesheetID}
}

func (m *MaintenanceMutator) Delete(ctx context.Context, id uint) error {
	return deleteOwned(ctx, m.tx, &models.MaintenanceLog{}, id, m.timesheetID)
}

func (m *MaintenanceMutator) Update(ctx context.Context, s models.MaintenanceLogSnapshot) error {
	if err := ensureOwned(ctx, m.tx, &models.MaintenanceLog{}, s.ID, m.timesheetID); err != nil {
		return err
	}
	return scope(m.tx.WithContext(ctx).Model(&models.MaintenanceLog{}), s.ID, m.timesheetID).
		Updates(map[string]any{
			"maintenance_id": s.MaintenanceID,
			"start_time":     s.StartTime,
			"end_time":       s.EndTime,
			"comment":        s.Comment,
		}).Error
}

// Create inserts the log. A zero id is assigned by the database.
func (m *MaintenanceMutator) Create(ctx context.Context, s models.MaintenanceLogSnapshot) error {
	row := models.MaintenanceLog{
		ID:            s.ID,
		TimesheetID:   m.timesheetID,
		MaintenanceID: s.MaintenanceID,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		Comment:       s.Comment,
	}
	return m.tx.WithContext(ctx).Create(&row).Error
}

// TruckingMutator writes trucking logs of one timesheet and fully replaces
// their grandchildren on every update or create.
type TruckingMutator struct {
	tx          *gorm.DB
	timesheetID uint
}

// NewTruckingMutator binds a mutator to a transaction and timesheet.
func NewTruckingMutator(tx *gorm.DB, timesheetID uint) *TruckingMutator {
	return &TruckingMutator{tx: tx, timesheetID: timesheetID}
}

func (m *TruckingMutator) Delete(ctx context.Context, id string) error {
	if err := ensureOwned(ctx, m.tx, &models.TruckingLog{}, id, m.timesheetID); err != nil {
		return err
	}
	if err := deleteTruckingChildren(ctx, m.tx, id); err != nil {
		return err
	}
	return deleteOwned(ctx, m.tx, &models.TruckingLog{}, id, m.timesheetID)
}

func (m *TruckingMutator) Update(ctx context.Context, s models.TruckingLogSnapshot) error {
	if err := ensureOwned(ctx, m.tx, &models.TruckingLog{}, s.ID, m.timesheetID); err != nil {
		return err
	}
	err := scope(m.tx.WithContext(ctx).Model(&models.TruckingLog{}), s.ID, m.timesheetID).
		Updates(map[string]any{
			"labor_type":       s.LaborType,
			"truck_number":     s.TruckNumber,
			"equipment_id":     s.EquipmentID,
			"starting_mileage": s.StartingMileage,
			"ending_mileage":   s.EndingMileage,
		}).Error
	if err != nil {
		return err
	}
	if err := deleteTruckingChildren(ctx, m.tx, s.ID); err != nil {
		return err
	}
	return createTruckingChildren(ctx, m.tx, s)
}

func (m *TruckingMutator) Create(ctx context.Context, s models.TruckingLogSnapshot) error {
	row := models.TruckingLog{
		ID:              s.ID,
		TimesheetID:     m.timesheetID,
		LaborType:       s.LaborType,
		TruckNumber:     s.TruckNumber,
		EquipmentID:     s.EquipmentID,
		StartingMileage: s.StartingMileage,
		EndingMileage:   s.EndingMileage,
	}
	if err := m.tx.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return err
	}
	return createTruckingChildren(ctx, m.tx, s)
}

// TascoMutator writes tasco logs of one timesheet and fully replaces their
// refuel logs on every update or create.
type TascoMutator struct {
	tx          *gorm.DB
	timesheetID uint
}

// NewTascoMutator binds a mutator to a transaction and timesheet.
func NewTascoMutator(tx *gorm.DB, timesheetID uint) *TascoMutator {
	return &TascoMutator{tx: tx, timesheetID: timesheetID}
}

func (m *TascoMutator) Delete(ctx context.Context, id string) error {
	if err := ensureOwned(ctx, m.tx, &models.TascoLog{}, id, m.timesheetID); err != nil {
		return err
	}
	if err := deleteTascoChildren(ctx, m.tx, id); err != nil {
		return err
	}
	return deleteOwned(ctx, m.tx, &models.TascoLog{}, id, m.timesheetID)
}

func (m *TascoMutator) Update(ctx context.Context, s models.TascoLogSnapshot) error {
	if err := ensureOwned(ctx, m.tx, &models.TascoLog{}, s.ID, m.timesheetID); err != nil {
		return err
	}
	err := scope(m.tx.WithContext(ctx).Model(&models.TascoLog{}), s.ID, m.timesheetID).
		Updates(map[string]any{
			"shift_type":    s.ShiftType,
			"labor_type":    s.LaborType,
			"equipment_id":  s.EquipmentID,
			"material_type": s.MaterialType,
			"load_quantity": s.LoadQuantity,
		}).Error
	if err != nil {
		return err
	}
	if err := deleteTascoChildren(ctx, m.tx, s.ID); err != nil {
		return err
	}
	return createTascoChildren(ctx, m.tx, s)
}

func (m *TascoMutator) Create(ctx context.Context, s models.TascoLogSnapshot) error {
	row := models.TascoLog{
		ID:           s.ID,
		TimesheetID:  m.timesheetID,
		ShiftType:    s.ShiftType,
		LaborType:    s.LaborType,
		EquipmentID:  s.EquipmentID,
		MaterialType: s.MaterialType,
		LoadQuantity: s.LoadQuantity,
	}
	if err := m.tx.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return err
	}
	return createTascoChildren(ctx, m.tx, s)
}

// EquipmentMutator writes employee equipment logs of one timesheet.
type EquipmentMutator struct {
	tx          *gorm.DB
	timesheetID uint
}

// NewEquipmentMutator binds a mutator to a transaction and timesheet.
func NewEquipmentMutator(tx *gorm.DB, timesheetID uint) *EquipmentMutator {
	return &EquipmentMutator{tx: tx, timesheetID: timesheetID}
}

func (m *EquipmentMutator) Delete(ctx context.Context, id string) error {
	return deleteOwned(ctx, m.tx, &models.EmployeeEquipmentLog{}, id, m.timesheetID)
}

func (m *EquipmentMutator) Update(ctx context.Context, s models.EmployeeEquipmentLogSnapshot) error {
	if err := ensureOwned(ctx, m.tx, &models.EmployeeEquipmentLog{}, s.ID, m.timesheetID); err != nil {
		return err
	}
	return scope(m.tx.WithContext(ctx).Model(&models.EmployeeEquipmentLog{}), s.ID, m.timesheetID).
		Updates(map[string]any{
			"equipment_id": s.EquipmentID,
			"start_time":   s.StartTime,
			"end_time":     s.EndTime,
			"comment":      s.Comment,
		}).Error
}

func (m *EquipmentMutator) Create(ctx context.Context, s models.EmployeeEquipmentLogSnapshot) error {
	row := models.EmployeeEquipmentLog{
		ID:          s.ID,
		TimesheetID: m.timesheetID,
		EquipmentID: s.EquipmentID,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		Comment:     s.Comment,
	}
	return m.tx.WithContext(ctx).Create(&row).Error
}
