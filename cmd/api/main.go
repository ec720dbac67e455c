package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/daviderapp/travel-aggregator/internal/adapters/hf"
	server "github.com/daviderapp/travel-aggregator/internal/adapters/http_server"
	"github.com/daviderapp/travel-aggregator/internal/adapters/observability"
	redisad "github.com/daviderapp/travel-aggregator/internal/adapters/redis"
	"github.com/daviderapp/travel-aggregator/internal/app"
	"github.com/daviderapp/travel-aggregator/internal/domain"
	"github.com/daviderapp/travel-aggregator/internal/shared"
	mysqlrepo "github.com/daviderapp/travel-aggregator/internal/storage/mysql"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// text-generation backends: none when no credential is present,
	// which sends every free-text search straight to the deterministic
	// fallback without any network attempt.
	var backends []domain.TextBackend
	if cfg.HFKey != "" {
		client, err := hf.New(cfg.HFBase, cfg.HFKey, cfg.HFTimeout, 2)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize HF client")
		}
		for _, m := range cfg.HFModels {
			backends = append(backends, client.Backend(m))
		}
		log.Info().Strs("models", cfg.HFModels).Msg("intent backends configured")
	}

	// deps
	policy := app.DefaultPolicy()
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	extractor := app.NewIntentExtractor(backends, policy, cfg.FallbackOnly)
	svc := app.NewSearchService(repo, cache, extractor, policy, cfg.CacheTTL)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{S: svc})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
