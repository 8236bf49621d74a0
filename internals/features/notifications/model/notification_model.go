// file: internals/features/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel: fire-and-forget per-user message. Immutable after
// creation except for the read flag.
type NotificationModel struct {
	NotificationID        uuid.UUID `gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notification_id"`
	NotificationUserID    uuid.UUID `gorm:"column:notification_user_id;type:uuid;not null" json:"notification_user_id"`
	NotificationTitle     string    `gorm:"column:notification_title;size:200;not null" json:"notification_title"`
	NotificationMessage   string    `gorm:"column:notification_message;not null" json:"notification_message"`
	NotificationType      string    `gorm:"column:notification_type;size:20;not null;default:'general'" json:"notification_type"`
	NotificationIsRead    bool      `gorm:"column:notification_is_read;not null;default:false" json:"notification_is_read"`
	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

// Notification types
const (
	NotificationTypeGeneral    = "general"
	NotificationTypeSchedule   = "schedule"
	NotificationTypeAssignment = "assignment"
	NotificationTypeEnrollment = "enrollment"
)
