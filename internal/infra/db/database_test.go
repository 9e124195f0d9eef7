package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentaldesk/backend/config"
	"github.com/rentaldesk/backend/internal/integration/persistence/model"
)

func TestOpen_SQLite(t *testing.T) {
	database, err := Open(&config.DatabaseConfig{
		Driver: DriverSQLite,
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, database.Migrate())
	assert.NoError(t, database.Ping(context.Background()))

	for table := range model.All() {
		assert.True(t, database.DB().Migrator().HasTable(table), table)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}
