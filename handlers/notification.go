package handlers

import (
	"fmt"
	"net/http"

	"urbanhelp/middleware"
	"urbanhelp/services/notification"
	"urbanhelp/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the user-facing notifications API.
type NotificationHandler struct {
	Service notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{Service: svc}
}

// ListNotifications handles GET /api/notifications.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	email := middleware.UserEmail(c)
	if email == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required.", nil)
		return
	}

	notifications, err := h.Service.ListForUser(c.Request.Context(), email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch notifications.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": notifications})
}

// MarkNotificationRead handles PUT /api/notifications/:id/read.
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	n, err := h.Service.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to mark notification as read.", err)
		return
	}
	if n == nil {
		utils.JSONError(c, http.StatusNotFound, "Notification not found.", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "notification": n})
}

// MarkAllNotificationsRead handles PUT /api/notifications/mark-all-read.
func (h *NotificationHandler) MarkAllNotificationsRead(c *gin.Context) {
	email := middleware.UserEmail(c)
	if email == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required.", nil)
		return
	}

	count, err := h.Service.MarkAllRead(c.Request.Context(), email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to mark all notifications as read.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Marked %d notifications as read", count),
	})
}

// DeleteNotification handles DELETE /api/notifications/:id.
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Notification not found.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Notification deleted successfully"})
}
