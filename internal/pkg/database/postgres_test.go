package database

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPQError(t *testing.T) {
	dup := &pq.Error{Code: UniqueViolation}

	assert.True(t, IsPQError(dup, UniqueViolation))
	assert.True(t, IsPQError(fmt.Errorf("insert user: %w", dup), UniqueViolation))
	assert.False(t, IsPQError(dup, ForeignKeyViolation))
	assert.False(t, IsPQError(errors.New("qualquer"), UniqueViolation))
	assert.False(t, IsPQError(nil, UniqueViolation))
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.Len(t, files, 3)

	for _, f := range files {
		body, err := fs.ReadFile(migrations, f)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(body), "-- +goose Up"), f)
		assert.Contains(t, string(body), "-- +goose Down", f)
	}

	socios, err := fs.ReadFile(migrations, "migrations/00003_create_socios.sql")
	require.NoError(t, err)
	assert.Contains(t, string(socios), "ON DELETE RESTRICT")
}
