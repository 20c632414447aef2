package migrate

import (
	"bytes"
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/db"
)

func TestRunRejectsUnknownCommand(t *testing.T) {
	err := Run(context.Background(), nil, "sideways", zerolog.Nop())
	assert.ErrorContains(t, err, "unknown migrate command")
}

func TestEmbeddedMigrationsHaveGooseAnnotations(t *testing.T) {
	entries, err := fs.ReadDir(db.Migrations, db.MigrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		body, err := fs.ReadFile(db.Migrations, db.MigrationsDir+"/"+e.Name())
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(body), "-- +goose Up"), e.Name())
		assert.True(t, strings.Contains(string(body), "-- +goose Down"), e.Name())
	}
}

func TestGooseLoggerWritesThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	gooseLogger{logger: zerolog.New(&buf)}.Printf("applied %d migrations", 2)
	assert.Contains(t, buf.String(), "applied 2 migrations")
}
