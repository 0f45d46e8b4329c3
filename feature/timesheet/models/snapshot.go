package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimesheetSnapshot is the caller-facing shape of a timesheet and its children.
//
// Scalar pointers that are nil are left untouched by an update; fields named in
// Clear are set to NULL. A nil child collection leaves that kind untouched, an
// empty one removes every child of that kind. Server-managed timestamps are
// not part of a snapshot.
type TimesheetSnapshot struct {
	Version    *int       `json:"version,omitempty"`
	Date       *time.Time `json:"date,omitempty"`
	StartTime  *time.Time `json:"startTime,omitempty"`
	EndTime    *time.Time `json:"endTime,omitempty"`
	WorkType   *WorkType  `json:"workType,omitempty" validate:"omitempty,oneof=LABOR MECHANIC TRUCK_DRIVER TASCO"`
	Status     *Status    `json:"status,omitempty" validate:"omitempty,oneof=DRAFT PENDING APPROVED REJECTED ARCHIVED"`
	Comment    *string    `json:"comment,omitempty"`
	UserID     *string    `json:"userId,omitempty" validate:"omitempty,min=1"`
	JobsiteID  *string    `json:"jobsiteId,omitempty"`
	CostCodeID *string    `json:"costCodeId,omitempty"`
	Clear      []string   `json:"clear,omitempty" validate:"dive,oneof=endTime comment jobsiteId costCodeId"`

	MaintenanceLogs       []MaintenanceLogSnapshot       `json:"maintenanceLogs,omitempty" validate:"dive"`
	TruckingLogs          []TruckingLogSnapshot          `json:"truckingLogs,omitempty" validate:"dive"`
	TascoLogs             []TascoLogSnapshot             `json:"tascoLogs,omitempty" validate:"dive"`
	EmployeeEquipmentLogs []EmployeeEquipmentLogSnapshot `json:"employeeEquipmentLogs,omitempty" validate:"dive"`
}

// ClearableColumns maps the names accepted in TimesheetSnapshot.Clear to columns.
var ClearableColumns = map[string]string{
	"endTime":    "end_time",
	"comment":    "comment",
	"jobsiteId":  "jobsite_id",
	"costCodeId": "cost_code_id",
}

// MaintenanceLogSnapshot is a maintenance entry. A zero ID asks the store to assign one.
type MaintenanceLogSnapshot struct {
	ID            uint       `json:"id"`
	MaintenanceID string     `json:"maintenanceId" validate:"required"`
	StartTime     time.Time  `json:"startTime" validate:"required"`
	EndTime       *time.Time `json:"endTime"`
	Comment       *string    `json:"comment"`
}

// Key returns the record identifier.
func (s MaintenanceLogSnapshot) Key() uint { return s.ID }

// TruckingLogSnapshot is a trucking log with its grandchildren.
type TruckingLogSnapshot struct {
	ID              string                    `json:"id" validate:"required"`
	LaborType       string                    `json:"laborType"`
	TruckNumber     string                    `json:"truckNumber"`
	EquipmentID     *string                   `json:"equipmentId"`
	StartingMileage *int                      `json:"startingMileage"`
	EndingMileage   *int                      `json:"endingMileage"`
	EquipmentHauled []EquipmentHauledSnapshot `json:"equipmentHauled" validate:"dive"`
	Materials       []MaterialSnapshot        `json:"materials" validate:"dive"`
	RefuelLogs      []RefuelLogSnapshot       `json:"refuelLogs" validate:"dive"`
	StateMileages   []StateMileageSnapshot    `json:"stateMileages" validate:"dive"`
}

// Key returns the record identifier.
func (s TruckingLogSnapshot) Key() string { return s.ID }

// TascoLogSnapshot is a tasco log with its refuel logs.
type TascoLogSnapshot struct {
	ID           string              `json:"id" validate:"required"`
	ShiftType    string              `json:"shiftType"`
	LaborType    string              `json:"laborType"`
	EquipmentID  *string             `json:"equipmentId"`
	MaterialType *string             `json:"materialType"`
	LoadQuantity int                 `json:"loadQuantity" validate:"min=0"`
	RefuelLogs   []RefuelLogSnapshot `json:"refuelLogs" validate:"dive"`
}

// Key returns the record identifier.
func (s TascoLogSnapshot) Key() string { return s.ID }

// EmployeeEquipmentLogSnapshot is an equipment usage entry.
type EmployeeEquipmentLogSnapshot struct {
	ID          string     `json:"id" validate:"required"`
	EquipmentID string     `json:"equipmentId" validate:"required"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Comment     *string    `json:"comment"`
}

// Key returns the record identifier.
func (s EmployeeEquipmentLogSnapshot) Key() string { return s.ID }

// Grandchild snapshots carry their stored id for comparison only; a write
// always recreates them with new ids.

type EquipmentHauledSnapshot struct {
	ID          string  `json:"id,omitempty"`
	EquipmentID string  `json:"equipmentId" validate:"required"`
	JobsiteID   *string `json:"jobsiteId"`
}

type MaterialSnapshot struct {
	ID                 string          `json:"id,omitempty"`
	Name               string          `json:"name" validate:"required"`
	Quantity           decimal.Decimal `json:"quantity" swaggertype:"string"`
	Unit               string          `json:"unit"`
	LocationOfMaterial *string         `json:"locationOfMaterial"`
}

type RefuelLogSnapshot struct {
	ID              string          `json:"id,omitempty"`
	GallonsRefueled decimal.Decimal `json:"gallonsRefueled" swaggertype:"string"`
	MilesAtFueling  *int            `json:"milesAtFueling"`
}

type StateMileageSnapshot struct {
	ID               string `json:"id,omitempty"`
	State            string `json:"state" validate:"required,len=2"`
	StateLineMileage int    `json:"stateLineMileage" validate:"min=0"`
}
