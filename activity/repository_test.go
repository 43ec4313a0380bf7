package activity

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "aggregator.db"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(db)
}

func TestRecordUpsertsPerDay(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.Record(ctx, "user-1", "2024-05-10")
	require.NoError(t, err)

	second, err := repo.Record(ctx, "user-1", "2024-05-10")
	require.NoError(t, err)

	assert.Equal(t, first, second, "same day must update the existing record")

	records, err := repo.All(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2, records[0].SessionsCount)
	assert.Equal(t, "2024-05-10", records[0].Date)
	assert.Equal(t, first, records[0].ID)
}

func TestRecordKeepsUsersApart(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Record(ctx, "user-1", "2024-05-10")
	require.NoError(t, err)

	_, err = repo.Record(ctx, "user-2", "2024-05-10")
	require.NoError(t, err)

	records, err := repo.All(ctx, "user-2")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].SessionsCount)
}

func TestRange(t *testing.T) {
	repo := newTestRepository(t)
	repo.now = func() time.Time {
		return time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	}

	ctx := context.Background()

	for _, date := range []string{"2024-05-01", "2024-05-05", "2024-05-05", "2024-05-09", "2024-06-01"} {
		_, err := repo.Record(ctx, "user-1", date)
		require.NoError(t, err)
	}

	records, err := repo.Range(ctx, "user-1", "2024-05-01", "2024-05-09")
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "2024-05-01", records[0].Date)
	assert.Equal(t, 2, records[1].SessionsCount)
	assert.Equal(t, "2024-05-09", records[2].Date)
	assert.True(t, records[0].CreatedAt.Equal(repo.now()))

	empty, err := repo.Range(ctx, "nobody", "2024-01-01", "2024-12-31")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aggregator.db")

	db, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, migrate(context.Background(), db))
	require.NoError(t, db.Close())

	db, err = OpenSQLite(path)
	require.NoError(t, err)

	defer db.Close()

	var version int
	require.NoError(t, db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, 1, version)
}
