package di

import (
	"context"
	"tourcrm/config"
	"tourcrm/infras/localdb"
	"tourcrm/infras/otel"
	"tourcrm/infras/postgres"
	"tourcrm/shared/cache"

	bookingRepository "tourcrm/internal/domains/booking/repository"
	leadRepository "tourcrm/internal/domains/lead/repository"
	messageRepository "tourcrm/internal/domains/message/repository"
	notificationRepository "tourcrm/internal/domains/notification/repository"
	organizationRepository "tourcrm/internal/domains/organization/repository"
	settingsRepository "tourcrm/internal/domains/settings/repository"
	tourRepository "tourcrm/internal/domains/tour/repository"
	userRepository "tourcrm/internal/domains/user/repository"

	"github.com/rs/zerolog/log"
)

func localMode(cfg *config.Config) bool {
	return cfg.Storage.Driver == config.StorageDriverLocal
}

// ProvidePostgres connects to Postgres only when it is the selected
// storage driver. In local mode the connection is never opened.
func ProvidePostgres(cfg *config.Config) *postgres.Connection {
	if localMode(cfg) {
		return nil
	}

	return postgres.New(cfg)
}

// ProvideLocalStore opens the embedded store only when the local
// storage driver is selected.
func ProvideLocalStore(cfg *config.Config) *localdb.Store {
	if !localMode(cfg) {
		return nil
	}

	store, err := localdb.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open local store")
	}

	if err := store.Initialize(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize local store")
	}

	return store
}

func ProvideLeadRepository(cfg *config.Config, db *postgres.Connection, store *localdb.Store, ot otel.Otel) leadRepository.Lead {
	if localMode(cfg) {
		return leadRepository.NewLocal(store, ot)
	}

	return leadRepository.New(db, ot)
}

func ProvideTourRepository(cfg *config.Config, db *postgres.Connection, store *localdb.Store, ot otel.Otel) tourRepository.Tour {
	if localMode(cfg) {
		return tourRepository.NewLocal(store, ot)
	}

	return tourRepository.New(db, ot)
}

func ProvideBookingRepository(cfg *config.Config, db *postgres.Connection, store *localdb.Store, ot otel.Otel) bookingRepository.Booking {
	if localMode(cfg) {
		return bookingRepository.NewLocal(store, ot)
	}

	return bookingRepository.New(db, ot)
}

func ProvideUserRepository(cfg *config.Config, db *postgres.Connection, store *localdb.Store, ot otel.Otel) userRepository.User {
	if localMode(cfg) {
		return userRepository.NewLocal(store, ot)
	}

	return userRepository.New(db, ot)
}

func ProvideOrganizationRepository(cfg *config.Config, db *postgres.Connection, store *localdb.Store, ot otel.Otel) organizationRepository.Organization {
	if localMode(cfg) {
		return organizationRepository.NewLocal(store, ot)
	}

	return organizationRepository.New(db, ot)
}

func ProvideMessageRepository(cfg *config.Config, db *postgres.Connection, store *localdb.Store, ot otel.Otel) messageRepository.Message {
	if localMode(cfg) {
		return messageRepository.NewLocal(store, ot)
	}

	return messageRepository.New(db, ot)
}

func ProvideNotificationRepository(cfg *config.Config, db *postgres.Connection, store *localdb.Store, ot otel.Otel) notificationRepository.Notification {
	if localMode(cfg) {
		return notificationRepository.NewLocal(store, ot)
	}

	return notificationRepository.New(db, ot)
}

func ProvidePreferencesRepository(cfg *config.Config, redisCache cache.RedisCache, store *localdb.Store) settingsRepository.Preferences {
	if localMode(cfg) {
		return settingsRepository.NewLocal(store)
	}

	return settingsRepository.New(redisCache)
}
