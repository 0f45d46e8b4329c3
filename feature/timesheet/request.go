package timesheet

import (
	"workforce-manager/core/reconcile"
	"workforce-manager/feature/timesheet/models"
)

// DefaultChangeReason is stored when an edit gives no reason.
const DefaultChangeReason = "No reason provided"

// UpdateRequest is one edit of a timesheet.
type UpdateRequest struct {
	// TimesheetID identifies the edited timesheet.
	TimesheetID uint `json:"timesheetId" validate:"required"`
	// EditorID is the user making the edit.
	EditorID string `json:"editorId" validate:"required"`
	// ChangeReason is free text stored on the change log.
	ChangeReason string `json:"changeReason"`
	// WasStatusChange flags an edit whose purpose is a status change.
	WasStatusChange bool `json:"wasStatusChange"`
	// NumberOfChanges defaults to len(Changes).
	NumberOfChanges *int `json:"numberOfChanges,omitempty" validate:"omitempty,min=0"`
	// Changes is the field-level diff recorded on the change log. No change
	// log is written when it is empty.
	Changes []models.FieldChange `json:"changes,omitempty" validate:"dive"`
	// Before is the state the editor started from. When nil the stored state is used.
	Before *models.TimesheetSnapshot `json:"before,omitempty"`
	// After is the edited state.
	After models.TimesheetSnapshot `json:"after"`
}

// changeCount returns the number of changed fields the request reports.
func (r UpdateRequest) changeCount() int {
	if r.NumberOfChanges != nil {
		return *r.NumberOfChanges
	}
	return len(r.Changes)
}

// ChangeSummary is the result of a successful edit.
type ChangeSummary struct {
	Success           bool   `json:"success"`
	EditorFullName    string `json:"editorFullName"`
	UserFullName      string `json:"userFullName"`
	OnlyStatusUpdated bool   `json:"onlyStatusUpdated"`

	TimesheetID               uint               `json:"timesheetId"`
	Version                   int                `json:"version"`
	ChangeLogID               string             `json:"changeLogId,omitempty"`
	NotificationsAcknowledged int                `json:"notificationsAcknowledged"`
	Reconciled                []reconcile.Report `json:"reconciled"`
}
