package timesheet

import "errors"

var (
	// ErrInvalidRequest wraps request validation failures.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrTimesheetNotFound is returned when the timesheet id does not resolve.
	ErrTimesheetNotFound = errors.New("timesheet not found")
	// ErrEditorNotPermitted is returned when the editor id does not resolve to a user.
	ErrEditorNotPermitted = errors.New("editor not permitted")
	// ErrStaleEdit is returned when the timesheet changed since the caller's snapshot.
	ErrStaleEdit = errors.New("timesheet was modified by another edit")
	// ErrNotificationWriteFailed wraps failures while acknowledging notifications.
	ErrNotificationWriteFailed = errors.New("notification write failed")
)
