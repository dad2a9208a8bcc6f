package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestDb(t *testing.T) *DbContext {
	t.Helper()

	dbContext, err := NewDbContext(":memory:")
	require.NoError(t, err)

	// the in-memory db lives per connection, so the pool must stay at one
	sqlDB, err := dbContext.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbContext.Migrate())

	t.Cleanup(func() { _ = dbContext.Close() })
	return dbContext
}
