package main

import (
	"context"
	"database/sql"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/daviderapp/travel-aggregator/internal/adapters/observability"
	"github.com/daviderapp/travel-aggregator/internal/app"
	"github.com/daviderapp/travel-aggregator/internal/shared"
	mysqlrepo "github.com/daviderapp/travel-aggregator/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	_ = godotenv.Load()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	seeder := app.NewSeedService(repo, time.Now().UnixNano())

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, name := range seeder.Destinations() {
		name := name

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(dest string) {
			defer wg.Done()
			defer sem.Release(1)

			if err := seeder.SeedDestination(ctx, dest); err != nil {
				log.Warn().Str("destination", dest).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("destination", dest).Msg("seed ok")
		}(name)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
