package models

// SnapshotOf converts a stored timesheet with its children preloaded.
// Every collection of the result is non-nil.
func SnapshotOf(ts Timesheet) TimesheetSnapshot {
	version := ts.Version
	date := ts.Date
	start := ts.StartTime
	workType := ts.WorkType
	status := ts.Status
	userID := ts.UserID

	s := TimesheetSnapshot{
		Version:               &version,
		Date:                  &date,
		StartTime:             &start,
		EndTime:               ts.EndTime,
		WorkType:              &workType,
		Status:                &status,
		Comment:               ts.Comment,
		UserID:                &userID,
		JobsiteID:             ts.JobsiteID,
		CostCodeID:            ts.CostCodeID,
		MaintenanceLogs:       make([]MaintenanceLogSnapshot, 0, len(ts.MaintenanceLogs)),
		TruckingLogs:          make([]TruckingLogSnapshot, 0, len(ts.TruckingLogs)),
		TascoLogs:             make([]TascoLogSnapshot, 0, len(ts.TascoLogs)),
		EmployeeEquipmentLogs: make([]EmployeeEquipmentLogSnapshot, 0, len(ts.EmployeeEquipmentLogs)),
	}

	for _, m := range ts.MaintenanceLogs {
		s.MaintenanceLogs = append(s.MaintenanceLogs, MaintenanceLogSnapshotOf(m))
	}
	for _, t := range ts.TruckingLogs {
		s.TruckingLogs = append(s.TruckingLogs, TruckingLogSnapshotOf(t))
	}
	for _, t := range ts.TascoLogs {
		s.TascoLogs = append(s.TascoLogs, TascoLogSnapshotOf(t))
	}
	for _, e := range ts.EmployeeEquipmentLogs {
		s.EmployeeEquipmentLogs = append(s.EmployeeEquipmentLogs, EmployeeEquipmentLogSnapshotOf(e))
	}
	return s
}

func MaintenanceLogSnapshotOf(m MaintenanceLog) MaintenanceLogSnapshot {
	return MaintenanceLogSnapshot{
		ID:            m.ID,
		MaintenanceID: m.MaintenanceID,
		StartTime:     m.StartTime,
		EndTime:       m.EndTime,
		Comment:       m.Comment,
	}
}

func TruckingLogSnapshotOf(t TruckingLog) TruckingLogSnapshot {
	s := TruckingLogSnapshot{
		ID:              t.ID,
		LaborType:       t.LaborType,
		TruckNumber:     t.TruckNumber,
		EquipmentID:     t.EquipmentID,
		StartingMileage: t.StartingMileage,
		EndingMileage:   t.EndingMileage,
		EquipmentHauled: make([]EquipmentHauledSnapshot, 0, len(t.EquipmentHauled)),
		Materials:       make([]MaterialSnapshot, 0, len(t.Materials)),
		RefuelLogs:      make([]RefuelLogSnapshot, 0, len(t.RefuelLogs)),
		StateMileages:   make([]StateMileageSnapshot, 0, len(t.StateMileages)),
	}
	for _, e := range t.EquipmentHauled {
		s.EquipmentHauled = append(s.EquipmentHauled, EquipmentHauledSnapshot{
			ID:          e.ID,
			EquipmentID: e.EquipmentID,
			JobsiteID:   e.JobsiteID,
		})
	}
	for _, m := range t.Materials {
		s.Materials = append(s.Materials, MaterialSnapshot{
			ID:                 m.ID,
			Name:               m.Name,
			Quantity:           m.Quantity,
			Unit:               m.Unit,
			LocationOfMaterial: m.LocationOfMaterial,
		})
	}
	for _, r := range t.RefuelLogs {
		s.RefuelLogs = append(s.RefuelLogs, refuelSnapshotOf(r))
	}
	for _, sm := range t.StateMileages {
		s.StateMileages = append(s.StateMileages, StateMileageSnapshot{
			ID:               sm.ID,
			State:            sm.State,
			StateLineMileage: sm.StateLineMileage,
		})
	}
	return s
}

func TascoLogSnapshotOf(t TascoLog) TascoLogSnapshot {
	s := TascoLogSnapshot{
		ID:           t.ID,
		ShiftType:    t.ShiftType,
		LaborType:    t.LaborType,
		EquipmentID:  t.EquipmentID,
		MaterialType: t.MaterialType,
		LoadQuantity: t.LoadQuantity,
		RefuelLogs:   make([]RefuelLogSnapshot, 0, len(t.RefuelLogs)),
	}
	for _, r := range t.RefuelLogs {
		s.RefuelLogs = append(s.RefuelLogs, refuelSnapshotOf(r))
	}
	return s
}

func EmployeeEquipmentLogSnapshotOf(e EmployeeEquipmentLog) EmployeeEquipmentLogSnapshot {
	return EmployeeEquipmentLogSnapshot{
		ID:          e.ID,
		EquipmentID: e.EquipmentID,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Comment:     e.Comment,
	}
}

func refuelSnapshotOf(r RefuelLog) RefuelLogSnapshot {
	return RefuelLogSnapshot{
		ID:              r.ID,
		GallonsRefueled: r.GallonsRefueled,
		MilesAtFueling:  r.MilesAtFueling,
	}
}
