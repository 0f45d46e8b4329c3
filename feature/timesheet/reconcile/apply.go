package reconcile

import (
	"context"

	"workforce-manager/core/reconcile"
	"workforce-manager/feature/timesheet/models"

	"gorm.io/gorm"
)

// Record kinds, in the order they are reconciled.
const (
	KindMaintenance = "maintenance"
	KindTrucking    = "trucking"
	KindTasco       = "tasco"
	KindEquipment   = "equipment"
)

// Kinds lists every child kind in reconciliation order.
var Kinds = []string{KindMaintenance, KindTrucking, KindTasco, KindEquipment}

// ApplyAll reconciles every child kind of a timesheet inside tx, in the order
// of Kinds. A kind whose after collection is nil is skipped. The first failure
// stops the run; the caller is expected to roll tx back.
func ApplyAll(ctx context.Context, tx *gorm.DB, timesheetID uint, before, after models.TimesheetSnapshot) ([]reconcile.Report, error) {
	var reports []reconcile.Report

	if after.MaintenanceLogs != nil {
		report, err := applyMaintenance(ctx, NewMaintenanceMutator(tx, timesheetID), before.MaintenanceLogs, after.MaintenanceLogs)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	if after.TruckingLogs != nil {
		plan, err := reconcile.Reconcile[string, models.TruckingLogSnapshot](ctx, KindTrucking, before.TruckingLogs, after.TruckingLogs, NewTruckingMutator(tx, timesheetID))
		if err != nil {
			return nil, err
		}
		reports = append(reports, plan.Report())
	}

	if after.TascoLogs != nil {
		plan, err := reconcile.Reconcile[string, models.TascoLogSnapshot](ctx, KindTasco, before.TascoLogs, after.TascoLogs, NewTascoMutator(tx, timesheetID))
		if err != nil {
			return nil, err
		}
		reports = append(reports, plan.Report())
	}

	if after.EmployeeEquipmentLogs != nil {
		plan, err := reconcile.Reconcile[string, models.EmployeeEquipmentLogSnapshot](ctx, KindEquipment, before.EmployeeEquipmentLogs, after.EmployeeEquipmentLogs, NewEquipmentMutator(tx, timesheetID))
		if err != nil {
			return nil, err
		}
		reports = append(reports, plan.Report())
	}

	return reports, nil
}

// PlanAll computes the reports ApplyAll would produce without writing.
func PlanAll(before, after models.TimesheetSnapshot) ([]reconcile.Report, error) {
	var reports []reconcile.Report

	if after.MaintenanceLogs != nil {
		keyed, unkeyed := splitUnkeyed(after.MaintenanceLogs)
		plan, err := reconcile.PlanDiff[uint](KindMaintenance, keyedOnly(before.MaintenanceLogs), keyed)
		if err != nil {
			return nil, err
		}
		reports = append(reports, withUnkeyedCreates(plan.Report(), len(unkeyed)))
	}
	if after.TruckingLogs != nil {
		plan, err := reconcile.PlanDiff[string](KindTrucking, before.TruckingLogs, after.TruckingLogs)
		if err != nil {
			return nil, err
		}
		reports = append(reports, plan.Report())
	}
	if after.TascoLogs != nil {
		plan, err := reconcile.PlanDiff[string](KindTasco, before.TascoLogs, after.TascoLogs)
		if err != nil {
			return nil, err
		}
		reports = append(reports, plan.Report())
	}
	if after.EmployeeEquipmentLogs != nil {
		plan, err := reconcile.PlanDiff[string](KindEquipment, before.EmployeeEquipmentLogs, after.EmployeeEquipmentLogs)
		if err != nil {
			return nil, err
		}
		reports = append(reports, plan.Report())
	}

	return reports, nil
}

// applyMaintenance reconciles maintenance logs. Entries without an id are
// new and get a database-assigned id after the keyed plan has run.
func applyMaintenance(ctx context.Context, m *MaintenanceMutator, before, after []models.MaintenanceLogSnapshot) (reconcile.Report, error) {
	keyed, unkeyed := splitUnkeyed(after)

	plan, err := reconcile.Reconcile[uint, models.MaintenanceLogSnapshot](ctx, KindMaintenance, keyedOnly(before), keyed, m)
	if err != nil {
		return reconcile.Report{}, err
	}

	for _, s := range unkeyed {
		if err := m.Create(ctx, s); err != nil {
			return reconcile.Report{}, &reconcile.WriteError{
				Kind:   KindMaintenance,
				Action: reconcile.ActionCreate,
				Key:    "(new)",
				Err:    err,
			}
		}
	}

	return withUnkeyedCreates(plan.Report(), len(unkeyed)), nil
}

func splitUnkeyed(logs []models.MaintenanceLogSnapshot) (keyed, unkeyed []models.MaintenanceLogSnapshot) {
	keyed = make([]models.MaintenanceLogSnapshot, 0, len(logs))
	for _, l := range logs {
		if l.ID == 0 {
			unkeyed = append(unkeyed, l)
			continue
		}
		keyed = append(keyed, l)
	}
	return keyed, unkeyed
}

func keyedOnly(logs []models.MaintenanceLogSnapshot) []models.MaintenanceLogSnapshot {
	keyed, _ := splitUnkeyed(logs)
	return keyed
}

func withUnkeyedCreates(r reconcile.Report, n int) reconcile.Report {
	for i := 0; i < n; i++ {
		r.Actions = append(r.Actions, reconcile.ActionReport{Type: reconcile.ActionCreate, Key: "(new)"})
	}
	r.Summary.Added += n
	return r
}
