package models

// Models returns every persisted model in dependency order.
func Models() []any {
	return []any{
		&User{},
		&Timesheet{},
		&MaintenanceLog{},
		&TruckingLog{},
		&TascoLog{},
		&EmployeeEquipmentLog{},
		&EquipmentHauled{},
		&Material{},
		&RefuelLog{},
		&StateMileage{},
		&ChangeLog{},
		&Notification{},
		&NotificationRead{},
		&NotificationResponse{},
	}
}
