package router

import (
	"tourcrm/internal/handlers/auth"
	"tourcrm/internal/handlers/booking"
	"tourcrm/internal/handlers/dashboard"
	"tourcrm/internal/handlers/health"
	"tourcrm/internal/handlers/lead"
	"tourcrm/internal/handlers/message"
	"tourcrm/internal/handlers/notification"
	"tourcrm/internal/handlers/organization"
	"tourcrm/internal/handlers/settings"
	"tourcrm/internal/handlers/tour"
	"tourcrm/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Booking      booking.Handler
	Dashboard    dashboard.Handler
	Health       health.Handler
	Lead         lead.Handler
	Message      message.Handler
	Notification notification.Handler
	Organization organization.Handler
	Settings     settings.Handler
	Tour         tour.Handler
	User         user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Lead.Router(routerGroup)
		r.DomainHandlers.Message.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
		r.DomainHandlers.Organization.Router(routerGroup)
		r.DomainHandlers.Settings.Router(routerGroup)
		r.DomainHandlers.Tour.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
