package main

import (
	"tourcrm/config"
	"tourcrm/infras/postgres"
	"tourcrm/internal/schema"
	"tourcrm/shared/logger"
	"tourcrm/shared/password"
	"tourcrm/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const seedAdminPassword = "demo1234"

// Seeds the hosted database with the demo fixture. The embedded store seeds
// itself on first open, this command brings a fresh Postgres install to the
// same starting state.
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	db := postgres.CreatePostgresWriteConn(*cfg)
	defer db.Close()

	hash, err := password.Hash(seedAdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash seed password")
	}

	now := timezone.Now()

	for _, table := range schema.SeedData(now, hash) {
		for _, row := range table.Rows {
			query, args, err := schema.BuildInsert(table.Table, row)
			if err != nil {
				log.Fatal().Err(err).Str("table", table.Table).Msg("Failed to build seed insert")
			}

			if _, err := db.Exec(sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
				log.Fatal().Err(err).Str("table", table.Table).Msg("Failed to seed table")
			}
		}

		log.Info().Str("table", table.Table).Int("rows", len(table.Rows)).Msg("Seeded table")
	}

	log.Info().Msg("Database seeding completed successfully")
}
