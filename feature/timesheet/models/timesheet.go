package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// WorkType tags the kind of work a timesheet records.
type WorkType string

const (
	WorkTypeLabor       WorkType = "LABOR"
	WorkTypeMechanic    WorkType = "MECHANIC"
	WorkTypeTruckDriver WorkType = "TRUCK_DRIVER"
	WorkTypeTasco       WorkType = "TASCO"
)

// Status is the approval state of a timesheet.
type Status string

const (
	StatusDraft    Status = "DRAFT"
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusArchived Status = "ARCHIVED"
)

// User is an employee who owns or edits timesheets.
type User struct {
	ID        string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	FirstName string    `gorm:"column:first_name;type:varchar(100);not null" json:"firstName"`
	LastName  string    `gorm:"column:last_name;type:varchar(100);not null" json:"lastName"`
	CreatedAt time.Time `gorm:"column:created_at;type:datetime" json:"createdAt"`
}

// TableName overrides the table name.
func (User) TableName() string {
	return "users"
}

// FullName returns "First Last", trimmed when either part is empty.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Timesheet is the aggregate root owning every child log.
type Timesheet struct {
	ID         uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Version    int        `gorm:"column:version;type:int;not null;default:1" json:"version"`
	Date       time.Time  `gorm:"column:date;type:datetime;not null" json:"date"`
	StartTime  time.Time  `gorm:"column:start_time;type:datetime;not null" json:"startTime"`
	EndTime    *time.Time `gorm:"column:end_time;type:datetime" json:"endTime"`
	WorkType   WorkType   `gorm:"column:work_type;type:varchar(20);not null" json:"workType"`
	Status     Status     `gorm:"column:status;type:varchar(20);not null;index" json:"status"`
	Comment    *string    `gorm:"column:comment;type:text" json:"comment"`
	UserID     string     `gorm:"column:user_id;type:varchar(36);not null;index" json:"userId"`
	JobsiteID  *string    `gorm:"column:jobsite_id;type:varchar(36)" json:"jobsiteId"`
	CostCodeID *string    `gorm:"column:cost_code_id;type:varchar(36)" json:"costCodeId"`
	CreatedAt  time.Time  `gorm:"column:created_at;type:datetime" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;type:datetime" json:"updatedAt"`

	User                  User                   `gorm:"foreignKey:UserID" json:"user"`
	MaintenanceLogs       []MaintenanceLog       `gorm:"foreignKey:TimesheetID;constraint:OnDelete:CASCADE" json:"maintenanceLogs"`
	TruckingLogs          []TruckingLog          `gorm:"foreignKey:TimesheetID;constraint:OnDelete:CASCADE" json:"truckingLogs"`
	TascoLogs             []TascoLog             `gorm:"foreignKey:TimesheetID;constraint:OnDelete:CASCADE" json:"tascoLogs"`
	EmployeeEquipmentLogs []EmployeeEquipmentLog `gorm:"foreignKey:TimesheetID;constraint:OnDelete:CASCADE" json:"employeeEquipmentLogs"`
}

// TableName overrides the table name.
func (Timesheet) TableName() string {
	return "timesheets"
}

// MaintenanceLog is a mechanic's work interval on a repair project.
type MaintenanceLog struct {
	ID            uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TimesheetID   uint       `gorm:"column:timesheet_id;not null;index" json:"timesheetId"`
	MaintenanceID string     `gorm:"column:maintenance_id;type:varchar(36);not null" json:"maintenanceId"`
	StartTime     time.Time  `gorm:"column:start_time;type:datetime;not null" json:"startTime"`
	EndTime       *time.Time `gorm:"column:end_time;type:datetime" json:"endTime"`
	Comment       *string    `gorm:"column:comment;type:text" json:"comment"`
}

// TableName overrides the table name.
func (MaintenanceLog) TableName() string {
	return "maintenance_logs"
}

// TruckingLog is a truck driver's shift log.
type TruckingLog struct {
	ID              string  `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	TimesheetID     uint    `gorm:"column:timesheet_id;not null;index" json:"timesheetId"`
	LaborType       string  `gorm:"column:labor_type;type:varchar(50)" json:"laborType"`
	TruckNumber     string  `gorm:"column:truck_number;type:varchar(50)" json:"truckNumber"`
	EquipmentID     *string `gorm:"column:equipment_id;type:varchar(36)" json:"equipmentId"`
	StartingMileage *int    `gorm:"column:starting_mileage;type:int" json:"startingMileage"`
	EndingMileage   *int    `gorm:"column:ending_mileage;type:int" json:"endingMileage"`

	EquipmentHauled []EquipmentHauled `gorm:"foreignKey:TruckingLogID;constraint:OnDelete:CASCADE" json:"equipmentHauled"`
	Materials       []Material        `gorm:"foreignKey:TruckingLogID;constraint:OnDelete:CASCADE" json:"materials"`
	RefuelLogs      []RefuelLog       `gorm:"foreignKey:TruckingLogID;constraint:OnDelete:CASCADE" json:"refuelLogs"`
	StateMileages   []StateMileage    `gorm:"foreignKey:TruckingLogID;constraint:OnDelete:CASCADE" json:"stateMileages"`
}

// TableName overrides the table name.
func (TruckingLog) TableName() string {
	return "trucking_logs"
}

// TascoLog is a TASCO operator's shift log.
type TascoLog struct {
	ID           string  `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	TimesheetID  uint    `gorm:"column:timesheet_id;not null;index" json:"timesheetId"`
	ShiftType    string  `gorm:"column:shift_type;type:varchar(50)" json:"shiftType"`
	LaborType    string  `gorm:"column:labor_type;type:varchar(50)" json:"laborType"`
	EquipmentID  *string `gorm:"column:equipment_id;type:varchar(36)" json:"equipmentId"`
	MaterialType *string `gorm:"column:material_type;type:varchar(100)" json:"materialType"`
	LoadQuantity int     `gorm:"column:load_quantity;type:int;not null;default:0" json:"loadQuantity"`

	RefuelLogs []RefuelLog `gorm:"foreignKey:TascoLogID;constraint:OnDelete:CASCADE" json:"refuelLogs"`
}

// TableName overrides the table name.
func (TascoLog) TableName() string {
	return "tasco_logs"
}

// EmployeeEquipmentLog records equipment use by the timesheet's owner.
type EmployeeEquipmentLog struct {
	ID          string     `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	TimesheetID uint       `gorm:"column:timesheet_id;not null;index" json:"timesheetId"`
	EquipmentID string     `gorm:"column:equipment_id;type:varchar(36);not null" json:"equipmentId"`
	StartTime   *time.Time `gorm:"column:start_time;type:datetime" json:"startTime"`
	EndTime     *time.Time `gorm:"column:end_time;type:datetime" json:"endTime"`
	Comment     *string    `gorm:"column:comment;type:text" json:"comment"`
}

// TableName overrides the table name.
func (EmployeeEquipmentLog) TableName() string {
	return "employee_equipment_logs"
}

// EquipmentHauled is a piece of equipment moved during a trucking shift.
type EquipmentHauled struct {
	ID            string  `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	TruckingLogID string  `gorm:"column:trucking_log_id;type:varchar(36);not null;index" json:"truckingLogId"`
	EquipmentID   string  `gorm:"column:equipment_id;type:varchar(36);not null" json:"equipmentId"`
	JobsiteID     *string `gorm:"column:jobsite_id;type:varchar(36)" json:"jobsiteId"`
}

// TableName overrides the table name.
func (EquipmentHauled) TableName() string {
	return "equipment_hauled"
}

// Material is a load of material carried during a trucking shift.
type Material struct {
	ID                 string          `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	TruckingLogID      string          `gorm:"column:trucking_log_id;type:varchar(36);not null;index" json:"truckingLogId"`
	Name               string          `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Quantity           decimal.Decimal `gorm:"column:quantity;type:decimal(10,2);not null" json:"quantity"`
	Unit               string          `gorm:"column:unit;type:varchar(20)" json:"unit"`
	LocationOfMaterial *string         `gorm:"column:location_of_material;type:varchar(255)" json:"locationOfMaterial"`
}

// TableName overrides the table name.
func (Material) TableName() string {
	return "materials"
}

// RefuelLog is a refuelling stop. It belongs to either a trucking or a tasco log.
type RefuelLog struct {
	ID              string          `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	TruckingLogID   *string         `gorm:"column:trucking_log_id;type:varchar(36);index" json:"truckingLogId"`
	TascoLogID      *string         `gorm:"column:tasco_log_id;type:varchar(36);index" json:"tascoLogId"`
	GallonsRefueled decimal.Decimal `gorm:"column:gallons_refueled;type:decimal(10,2);not null" json:"gallonsRefueled"`
	MilesAtFueling  *int            `gorm:"column:miles_at_fueling;type:int" json:"milesAtFueling"`
}

// TableName overrides the table name.
func (RefuelLog) TableName() string {
	return "refuel_logs"
}

// StateMileage is the distance driven inside one state.
type StateMileage struct {
	ID               string `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	TruckingLogID    string `gorm:"column:trucking_log_id;type:varchar(36);not null;index" json:"truckingLogId"`
	State            string `gorm:"column:state;type:varchar(2);not null" json:"state"`
	StateLineMileage int    `gorm:"column:state_line_mileage;type:int;not null" json:"stateLineMileage"`
}

// TableName overrides the table name.
func (StateMileage) TableName() string {
	return "state_mileages"
}
