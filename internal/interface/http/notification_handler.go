package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gatherly/gatherly/internal/application"
	"github.com/gatherly/gatherly/internal/interface/middleware"
	"github.com/gatherly/gatherly/pkg/response"
)

type NotificationHandler struct {
	Svc    *application.NotificationService
	Logger *logrus.Logger
}

func NewNotificationHandler(svc *application.NotificationService, logger *logrus.Logger) *NotificationHandler {
	return &NotificationHandler{Svc: svc, Logger: logger}
}

// List returns the caller's notifications, newest first. An anonymous
// caller gets an empty list.
func (h *NotificationHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	notifications, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]gin.H, 0, len(notifications))
	for _, n := range notifications {
		item := gin.H{
			"id":         n.ID,
			"type":       n.Type,
			"title":      n.Title,
			"message":    n.Message,
			"is_read":    n.IsRead,
			"created_at": n.CreatedAt,
		}
		if n.EventID != "" {
			item["event_id"] = n.EventID
		}
		out = append(out, item)
	}
	response.Success(c, http.StatusOK, out, "notifications", gin.H{"count": len(out)})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.MarkRead(c.Request.Context(), uid, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id")}, "notification read", nil)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	count, err := h.Svc.MarkAllRead(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": count}, "notifications read", nil)
}
