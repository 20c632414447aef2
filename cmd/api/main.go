package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gokatarajesh/trivia-api/internal/app"
	"github.com/gokatarajesh/trivia-api/internal/config"
)

const envFile = "configs/.env"

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Str("cmd", "trivia-api").Logger()

	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(envFile); err != nil {
			log.Warn().Err(err).Str("file", envFile).Msg("env file not loaded, using process environment")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	log.Info().
		Str("env", cfg.Env).
		Str("addr", cfg.HTTPAddr).
		Int("questions_per_page", cfg.Pagination.QuestionsPerPage).
		Bool("auto_migrate", cfg.Postgres.AutoMigrate).
		Msg("config loaded")

	appCtx := context.Background()
	instance, err := app.New(appCtx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("pg_host", cfg.Postgres.Host).Msg("failed to build app")
	}

	if err := instance.Run(appCtx); err != nil {
		log.Fatal().Err(err).Msg("runtime error")
	}
}
