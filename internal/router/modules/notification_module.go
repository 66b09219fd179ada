package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gatherly/gatherly/internal/container"
	handlers "github.com/gatherly/gatherly/internal/interface/http"
	"github.com/gatherly/gatherly/internal/interface/middleware"
	"github.com/gatherly/gatherly/pkg/helpers"
)

// NotificationModule wires the notification outbox routes.
// Listing uses soft auth (anonymous → empty list); mutations require auth.

type NotificationModule struct {
	Handler *handlers.NotificationHandler
	JWT     *helpers.JWTManager
}

func NewNotificationModule(h *handlers.NotificationHandler, jwt *helpers.JWTManager) *NotificationModule {
	return &NotificationModule{Handler: h, JWT: jwt}
}

func (m *NotificationModule) Register(rg *gin.RouterGroup) {
	soft := rg.Group("/")
	soft.Use(middleware.OptionalAuth(m.JWT))
	soft.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil))
	{
		soft.GET("/notifications", m.Handler.List)
	}

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/notifications/:id/read", m.Handler.MarkRead)
		auth.POST("/notifications/read-all", m.Handler.MarkAllRead)
	}
}
