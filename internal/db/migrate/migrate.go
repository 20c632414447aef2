// Package migrate applies the embedded goose migrations.
package migrate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/db"
)

const versionTable = "goose_db_version"

// Command names accepted by Run.
const (
	CommandUp      = "up"
	CommandDown    = "down"
	CommandStatus  = "status"
	CommandVersion = "version"
	CommandReset   = "reset"
)

// Run executes a goose command against sqlDB using the embedded migrations.
func Run(ctx context.Context, sqlDB *sql.DB, command string, logger zerolog.Logger) error {
	goose.SetBaseFS(db.Migrations)
	goose.SetTableName(versionTable)
	goose.SetLogger(gooseLogger{logger: logger.With().Str("component", "migrate").Logger()})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	var err error
	switch command {
	case CommandUp:
		err = goose.UpContext(ctx, sqlDB, db.MigrationsDir)
	case CommandDown:
		err = goose.DownContext(ctx, sqlDB, db.MigrationsDir)
	case CommandStatus:
		err = goose.StatusContext(ctx, sqlDB, db.MigrationsDir)
	case CommandVersion:
		err = goose.VersionContext(ctx, sqlDB, db.MigrationsDir)
	case CommandReset:
		err = goose.ResetContext(ctx, sqlDB, db.MigrationsDir)
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", command, err)
	}
	return nil
}

// gooseLogger routes goose output through zerolog.
type gooseLogger struct {
	logger zerolog.Logger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info().Msgf(format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Fatal().Msgf(format, v...)
}
