package timesheet

import "fmt"

// Notification acknowledgment modes.
const (
	// AckInline acknowledges pending reviews inside the edit transaction.
	AckInline = "inline"
	// AckEvent acknowledges them after commit from the TimesheetEdited event.
	AckEvent = "event"
)

// Config holds configuration for timesheet editing.
type Config struct {
	// NotificationAck selects when pending reviews are acknowledged (inline, event).
	NotificationAck string `mapstructure:"notification_ack" default:"inline"`
	// SubmissionTopic is the notification topic raised when a timesheet is submitted.
	SubmissionTopic string `mapstructure:"submission_topic" default:"timecard-submitted"`
	// ApprovalResponse is the response recorded when an edit acknowledges a review.
	ApprovalResponse string `mapstructure:"approval_response" default:"Approved"`
}

// Validate checks the configured values.
func (c Config) Validate() error {
	switch c.NotificationAck {
	case AckInline, AckEvent:
	default:
		return fmt.Errorf("invalid notification_ack %q: must be %s or %s", c.NotificationAck, AckInline, AckEvent)
	}
	if c.SubmissionTopic == "" {
		return fmt.Errorf("submission_topic is required")
	}
	if c.ApprovalResponse == "" {
		return fmt.Errorf("approval_response is required")
	}
	return nil
}

// withDefaults fills empty fields.
func (c Config) withDefaults() Config {
	if c.NotificationAck == "" {
		c.NotificationAck = AckInline
	}
	if c.SubmissionTopic == "" {
		c.SubmissionTopic = "timecard-submitted"
	}
	if c.ApprovalResponse == "" {
		c.ApprovalResponse = "Approved"
	}
	return c
}
