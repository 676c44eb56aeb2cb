package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/webdawg/futures-api/internal/api"
	"github.com/webdawg/futures-api/internal/infrastructure/config"
	mongodb "github.com/webdawg/futures-api/internal/infrastructure/db/mongo"
	redisdb "github.com/webdawg/futures-api/internal/infrastructure/db/redis"
	"github.com/webdawg/futures-api/internal/session"
	"github.com/webdawg/futures-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// devSessionSecret keeps local development friction-free. Production refuses
// to start without SESSION_SECRET (enforced in config.Load).
const devSessionSecret = "dev-only-insecure-secret"

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet.
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	// Unique indexes back the signup and one-application-per-job invariants.
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := mongodb.NewApplicationRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("application index creation failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Sessions ---
	secret := cfg.Session.Secret
	if secret == "" {
		log.Warn().Msg("SESSION_SECRET not set, using development secret")
		secret = devSessionSecret
	}
	sessions, err := session.NewManager(secret, cfg.Session.CookieName, cfg.IsProduction(), cfg.Session.TTL)
	if err != nil {
		log.Fatal().Err(err).Msg("session manager init failed")
	}

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		DB:         db,
		Redis:      rdb,
		Sessions:   sessions,
		Logger:     log,
		BcryptCost: cfg.Auth.BcryptCost,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped cleanly")
}
