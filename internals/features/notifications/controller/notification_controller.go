// file: internals/features/notifications/controller/notification_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"academyos_backend/internals/features/notifications/model"
	helper "academyos_backend/internals/helpers"
)

type NotificationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewNotificationController(db *gorm.DB, v *validator.Validate) *NotificationController {
	return &NotificationController{DB: db, Validate: v}
}

/* =========================
   GET /api/notifications
   ========================= */

func (ctl *NotificationController) GetMyNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).
		Model(&model.NotificationModel{}).
		Where("notification_user_id = ?", userID)
	if c.Query("unread") == "true" {
		q = q.Where("notification_is_read = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] count notifications:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve notifications")
	}

	var notifs []model.NotificationModel
	if err := q.Order("notification_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&notifs).Error; err != nil {
		log.Println("[ERROR] fetch notifications:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve notifications")
	}

	var unread int64
	ctl.DB.WithContext(c.Context()).
		Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = ?", userID, false).
		Count(&unread)

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	p.Count = len(notifs)
	return helper.JsonList(c, "Notifications fetched successfully", fiber.Map{
		"notifications": notifs,
		"unread_count":  unread,
	}, &p)
}

/* =========================
   PATCH /api/notifications/:id/read
   ========================= */

func (ctl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	idStr := strings.TrimSpace(c.Params("id"))
	id, err := uuid.Parse(idStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var notif model.NotificationModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&notif, "notification_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}
	if notif.NotificationUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to update this notification")
	}

	if err := ctl.DB.WithContext(c.Context()).
		Model(&model.NotificationModel{}).
		Where("notification_id = ?", id).
		Update("notification_is_read", true).Error; err != nil {
		log.Println("[ERROR] mark read:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notification")
	}

	return helper.JsonUpdated(c, "Notification marked as read", fiber.Map{"notification_id": id})
}

/* =========================
   PATCH /api/notifications/read-all
   ========================= */

func (ctl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	tx := ctl.DB.WithContext(c.Context()).
		Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = ?", userID, false).
		Update("notification_is_read", true)
	if tx.Error != nil {
		log.Println("[ERROR] mark all read:", tx.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notifications")
	}

	return helper.JsonUpdated(c, "All notifications marked as read", fiber.Map{
		"updated": tx.RowsAffected,
	})
}
