package models

import "time"

// Notification is a review request tied to a record by topic and reference id.
// It stays open until a NotificationResponse exists for it.
type Notification struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Topic       string    `gorm:"column:topic;type:varchar(100);not null;index:idx_notifications_topic_ref" json:"topic"`
	ReferenceID string    `gorm:"column:reference_id;type:varchar(64);not null;index:idx_notifications_topic_ref" json:"referenceId"`
	Body        *string   `gorm:"column:body;type:text" json:"body"`
	CreatedAt   time.Time `gorm:"column:created_at;type:datetime" json:"createdAt"`
}

// TableName overrides the table name.
func (Notification) TableName() string {
	return "notifications"
}

// NotificationRead records that a user has seen a notification.
type NotificationRead struct {
	ID             uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	NotificationID uint      `gorm:"column:notification_id;not null;index" json:"notificationId"`
	UserID         string    `gorm:"column:user_id;type:varchar(36);not null" json:"userId"`
	ReadAt         time.Time `gorm:"column:read_at;type:datetime;not null" json:"readAt"`

	Notification Notification `gorm:"foreignKey:NotificationID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name.
func (NotificationRead) TableName() string {
	return "notification_reads"
}

// NotificationResponse closes a notification.
type NotificationResponse struct {
	ID             uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	NotificationID uint      `gorm:"column:notification_id;not null;index" json:"notificationId"`
	UserID         string    `gorm:"column:user_id;type:varchar(36);not null" json:"userId"`
	Response       string    `gorm:"column:response;type:varchar(50);not null" json:"response"`
	RespondedAt    time.Time `gorm:"column:responded_at;type:datetime;not null" json:"respondedAt"`

	Notification Notification `gorm:"foreignKey:NotificationID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name.
func (NotificationResponse) TableName() string {
	return "notification_responses"
}
