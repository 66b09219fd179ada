package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gatherly/gatherly/internal/container"
	handlers "github.com/gatherly/gatherly/internal/interface/http"
	"github.com/gatherly/gatherly/internal/interface/middleware"
	"github.com/gatherly/gatherly/pkg/helpers"
)

// RSVPModule wires the RSVP ledger routes.
// Soft-auth read: GET /api/events/:id/rsvp (anonymous gets null).
// Protected: PUT/DELETE /api/events/:id/rsvp, GET /api/events/:id/rsvps.

type RSVPModule struct {
	Handler *handlers.RSVPHandler
	JWT     *helpers.JWTManager
}

func NewRSVPModule(h *handlers.RSVPHandler, jwt *helpers.JWTManager) *RSVPModule {
	return &RSVPModule{Handler: h, JWT: jwt}
}

func (m *RSVPModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)

	soft := rg.Group("/")
	soft.Use(middleware.OptionalAuth(m.JWT))
	{
		soft.GET("/events/:id/rsvp", readLimiter, m.Handler.Mine)
	}

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.PUT("/events/:id/rsvp", m.Handler.Submit)
		auth.DELETE("/events/:id/rsvp", m.Handler.Delete)
		auth.GET("/events/:id/rsvps", m.Handler.ListForEvent)
	}
}
