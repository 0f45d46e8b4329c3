package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// FieldChange is one entry of a change-log diff.
type FieldChange struct {
	Field string `json:"field" validate:"required"`
	Old   any    `json:"old"`
	New   any    `json:"new"`
}

// ChangeLog is an immutable audit record of one timesheet edit.
type ChangeLog struct {
	ID              string         `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	TimesheetID     uint           `gorm:"column:timesheet_id;not null;index" json:"timesheetId"`
	ChangedByID     string         `gorm:"column:changed_by_id;type:varchar(36);not null" json:"changedById"`
	ChangedAt       time.Time      `gorm:"column:changed_at;type:datetime;not null" json:"changedAt"`
	ChangeReason    string         `gorm:"column:change_reason;type:text;not null" json:"changeReason"`
	WasStatusChange bool           `gorm:"column:was_status_change;type:tinyint(1);not null;default:0" json:"wasStatusChange"`
	NumberOfChanges int            `gorm:"column:number_of_changes;type:int;not null;default:0" json:"numberOfChanges"`
	Changes         datatypes.JSON `gorm:"column:changes;type:json" json:"changes" swaggertype:"array,object"`

	Timesheet Timesheet `gorm:"foreignKey:TimesheetID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name.
func (ChangeLog) TableName() string {
	return "timesheet_change_logs"
}

// SetChanges encodes changes into the JSON column.
func (c *ChangeLog) SetChanges(changes []FieldChange) error {
	data, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("failed to encode changes: %w", err)
	}
	c.Changes = datatypes.JSON(data)
	return nil
}

// FieldChanges decodes the JSON column.
func (c ChangeLog) FieldChanges() ([]FieldChange, error) {
	if len(c.Changes) == 0 {
		return nil, nil
	}
	var changes []FieldChange
	if err := json.Unmarshal(c.Changes, &changes); err != nil {
		return nil, fmt.Errorf("failed to decode changes of change log %s: %w", c.ID, err)
	}
	return changes, nil
}
