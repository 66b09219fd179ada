package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gatherly/gatherly/internal/container"
	handlers "github.com/gatherly/gatherly/internal/interface/http"
	"github.com/gatherly/gatherly/internal/interface/middleware"
	"github.com/gatherly/gatherly/pkg/helpers"
)

// EventModule wires the event catalog routes.
// Public (anonymous allowed): GET /api/events, GET /api/events/:id
// Protected: GET /api/me/events, POST /api/events, PATCH/DELETE /api/events/:id,
// POST /api/events/:id/image

type EventModule struct {
	Handler *handlers.EventHandler
	JWT     *helpers.JWTManager
}

func NewEventModule(h *handlers.EventHandler, jwt *helpers.JWTManager) *EventModule {
	return &EventModule{Handler: h, JWT: jwt}
}

func (m *EventModule) Register(rg *gin.RouterGroup) {
	// search fan-out is the expensive read path, so limit per route
	listLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIPAndPath(), nil)

	public := rg.Group("/")
	public.Use(middleware.OptionalAuth(m.JWT))
	{
		public.GET("/events", listLimiter, m.Handler.List)
		public.GET("/events/:id", listLimiter, m.Handler.Get)
	}

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/me/events", m.Handler.Mine)
		auth.POST("/events", m.Handler.Create)
		auth.PATCH("/events/:id", m.Handler.Update)
		auth.DELETE("/events/:id", m.Handler.Delete)
		auth.POST("/events/:id/image", m.Handler.UploadImage)
	}
}
