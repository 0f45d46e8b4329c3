package timesheet

import (
	"slices"
	"time"

	"workforce-manager/feature/timesheet/models"
)

// BuildSummary reports the outcome of an edit. onlyStatusUpdated holds when
// the caller flagged a status change and reported exactly one changed field.
func BuildSummary(editor, owner models.User, wasStatusChange bool, numberOfChanges int) ChangeSummary {
	return ChangeSummary{
		Success:           true,
		EditorFullName:    editor.FullName(),
		UserFullName:      owner.FullName(),
		OnlyStatusUpdated: wasStatusChange && numberOfChanges == 1,
	}
}

// DescribeChanges lists the scalar fields that after changes relative to
// before. Fields named in after.Clear are reported with a nil new value.
func DescribeChanges(before, after models.TimesheetSnapshot) []models.FieldChange {
	var changes []models.FieldChange

	add := func(field string, old, next any, changed bool) {
		if changed {
			changes = append(changes, models.FieldChange{Field: field, Old: old, New: next})
		}
	}

	if after.Date != nil {
		add("date", timeValue(before.Date), *after.Date, !timeEqual(before.Date, after.Date))
	}
	if after.StartTime != nil {
		add("startTime", timeValue(before.StartTime), *after.StartTime, !timeEqual(before.StartTime, after.StartTime))
	}
	if after.EndTime != nil {
		add("endTime", timeValue(before.EndTime), *after.EndTime, !timeEqual(before.EndTime, after.EndTime))
	}
	if after.WorkType != nil {
		add("workType", deref(before.WorkType), *after.WorkType, !ptrEqual(before.WorkType, after.WorkType))
	}
	if after.Status != nil {
		add("status", deref(before.Status), *after.Status, !ptrEqual(before.Status, after.Status))
	}
	if after.Comment != nil {
		add("comment", deref(before.Comment), *after.Comment, !ptrEqual(before.Comment, after.Comment))
	}
	if after.UserID != nil {
		add("userId", deref(before.UserID), *after.UserID, !ptrEqual(before.UserID, after.UserID))
	}
	if after.JobsiteID != nil {
		add("jobsiteId", deref(before.JobsiteID), *after.JobsiteID, !ptrEqual(before.JobsiteID, after.JobsiteID))
	}
	if after.CostCodeID != nil {
		add("costCodeId", deref(before.CostCodeID), *after.CostCodeID, !ptrEqual(before.CostCodeID, after.CostCodeID))
	}

	for _, field := range after.Clear {
		old := clearedValue(before, field)
		if old == nil || slices.ContainsFunc(changes, func(c models.FieldChange) bool { return c.Field == field }) {
			continue
		}
		add(field, old, nil, true)
	}

	return changes
}

// clearedValue returns the before value of a clearable field, or nil.
func clearedValue(s models.TimesheetSnapshot, field string) any {
	switch field {
	case "endTime":
		return timeValue(s.EndTime)
	case "comment":
		return deref(s.Comment)
	case "jobsiteId":
		return deref(s.JobsiteID)
	case "costCodeId":
		return deref(s.CostCodeID)
	}
	return nil
}

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func timeValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func timeEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
