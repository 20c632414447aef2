package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"trivia-api"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Postgres   Postgres
	Pagination Pagination
	CORS       CORS
}

// Postgres captures connection info for the SQL database.
type Postgres struct {
	Host        string `env:"PG_HOST,notEmpty"`
	Port        int    `env:"PG_PORT" envDefault:"5432"`
	User        string `env:"PG_USER,notEmpty"`
	Password    string `env:"PG_PASSWORD,notEmpty"`
	Database    string `env:"PG_DATABASE,notEmpty"`
	SSLMode     string `env:"PG_SSL_MODE" envDefault:"disable"`
	MaxConns    int    `env:"PG_MAX_CONNS" envDefault:"10"`
	AutoMigrate bool   `env:"PG_AUTO_MIGRATE" envDefault:"false"`
}

// ConnString renders the keyword/value DSN understood by pgx.
func (p Postgres) ConnString() string {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
	if p.MaxConns > 0 {
		dsn += fmt.Sprintf(" pool_max_conns=%d", p.MaxConns)
	}
	return dsn
}

// Pagination controls list endpoint page sizes.
type Pagination struct {
	QuestionsPerPage int `env:"QUESTIONS_PER_PAGE" envDefault:"10"`
}

// CORS holds Cross-Origin Resource Sharing configuration for /api routes.
type CORS struct {
	AllowedOrigin  string   `env:"CORS_ALLOWED_ORIGIN" envDefault:"*"`
	AllowedMethods []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,PUT,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders []string `env:"CORS_ALLOWED_HEADERS" envSeparator:"," envDefault:"Content-Type,Authorization"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Pagination.QuestionsPerPage <= 0 {
		return nil, fmt.Errorf("QUESTIONS_PER_PAGE must be positive, got %d", cfg.Pagination.QuestionsPerPage)
	}
	return cfg, nil
}

// LoadPostgres parses only the database group, for tools that need nothing else.
func LoadPostgres() (*Postgres, error) {
	cfg := &Postgres{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}
	return cfg, nil
}
