//go:build wireinject
// +build wireinject

package di

import (
	"tourcrm/config"
	"tourcrm/infras/jwt"
	"tourcrm/infras/kafka"
	"tourcrm/infras/otel"
	"tourcrm/infras/redis"
	"tourcrm/infras/s3"
	"tourcrm/internal/events"
	"tourcrm/permissions"
	"tourcrm/shared/cache"
	"tourcrm/transport/http"
	"tourcrm/transport/http/middleware"
	"tourcrm/transport/http/router"

	authService "tourcrm/internal/domains/auth/service"
	bookingService "tourcrm/internal/domains/booking/service"
	dashboardService "tourcrm/internal/domains/dashboard/service"
	leadService "tourcrm/internal/domains/lead/service"
	messageService "tourcrm/internal/domains/message/service"
	notificationService "tourcrm/internal/domains/notification/service"
	organizationService "tourcrm/internal/domains/organization/service"
	settingsService "tourcrm/internal/domains/settings/service"
	tourService "tourcrm/internal/domains/tour/service"
	userService "tourcrm/internal/domains/user/service"

	authHandler "tourcrm/internal/handlers/auth"
	bookingHandler "tourcrm/internal/handlers/booking"
	dashboardHandler "tourcrm/internal/handlers/dashboard"
	healthHandler "tourcrm/internal/handlers/health"
	leadHandler "tourcrm/internal/handlers/lead"
	messageHandler "tourcrm/internal/handlers/message"
	notificationHandler "tourcrm/internal/handlers/notification"
	organizationHandler "tourcrm/internal/handlers/organization"
	settingsHandler "tourcrm/internal/handlers/settings"
	tourHandler "tourcrm/internal/handlers/tour"
	userHandler "tourcrm/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	ProvidePostgres,
	ProvideLocalStore,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
)

var repositories = wire.NewSet(
	ProvideLeadRepository,
	ProvideTourRepository,
	ProvideBookingRepository,
	ProvideUserRepository,
	ProvideOrganizationRepository,
	ProvideMessageRepository,
	ProvideNotificationRepository,
	ProvidePreferencesRepository,
)

var services = wire.NewSet(
	authService.New,
	leadService.New,
	tourService.New,
	bookingService.New,
	userService.New,
	organizationService.New,
	messageService.New,
	notificationService.New,
	dashboardService.New,
	settingsService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	dashboardHandler.New,
	healthHandler.New,
	leadHandler.New,
	messageHandler.New,
	notificationHandler.New,
	organizationHandler.New,
	settingsHandler.New,
	tourHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		services,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
