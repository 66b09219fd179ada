package router

import (
	"github.com/gatherly/gatherly/internal/application"
	"github.com/gatherly/gatherly/internal/container"
	pginfra "github.com/gatherly/gatherly/internal/infrastructure/postgres"
	"github.com/gatherly/gatherly/internal/infrastructure/search"
	handlers "github.com/gatherly/gatherly/internal/interface/http"
	"github.com/gatherly/gatherly/internal/router/modules"
)

// InitModules builds every feature module from the container singletons
// and registers it with the router registry. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	profiles := pginfra.NewProfileRepository(pool)
	events := pginfra.NewEventRepository(pool)
	rsvps := pginfra.NewRSVPRepository(pool)
	notifications := pginfra.NewNotificationRepository(pool)

	index := search.NewESEventIndex(container.GetES(), cfg.ESEventsIndex, logger)

	// The typed-nil publisher must not end up inside the interface value.
	var pub application.NotificationPublisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}

	eventSvc := application.NewEventService(events, rsvps, users, profiles, index, container.GetGCS(), cfg.GCSBucket, logger)
	rsvpSvc := application.NewRSVPService(rsvps, events, users, profiles, notifications, pub, logger)
	notificationSvc := application.NewNotificationService(notifications, logger)
	profileSvc := application.NewProfileService(users, profiles, logger)

	jwt := container.GetJWT()
	r.Add(modules.NewEventModule(handlers.NewEventHandler(eventSvc, logger), jwt))
	r.Add(modules.NewRSVPModule(handlers.NewRSVPHandler(rsvpSvc, logger), jwt))
	r.Add(modules.NewNotificationModule(handlers.NewNotificationHandler(notificationSvc, logger), jwt))
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(profileSvc, logger), jwt))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
