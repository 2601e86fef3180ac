//go:build integration

package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/burenotti/go_fitness_backend/internal/adapter/storage"
	"github.com/burenotti/go_fitness_backend/internal/domain/workout"
	"github.com/leporo/sqlf"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func TestPostgresStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	sqlf.SetDialect(sqlf.PostgreSQL)

	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("fitness"),
		postgrescontainer.WithUsername("fitness"),
		postgrescontainer.WithPassword("fitness"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db := waitForDatabase(t, ctx, dsn)
	t.Cleanup(func() { _ = db.Close() })

	store := NewPostgresStorage(db)

	_, err = store.Load(ctx)
	require.ErrorIs(t, err, ErrCatalogNotInstalled)

	require.NoError(t, store.EnsureSchema(ctx))
	require.NoError(t, store.EnsureSchema(ctx))

	want, err := Embedded()
	require.NoError(t, err)

	seed := func() error {
		return storage.Atomic(ctx, db, func(tx storage.DBContext) error {
			return NewPostgresStorage(tx).Replace(ctx, want)
		})
	}
	require.NoError(t, seed())
	// Replace is idempotent.
	require.NoError(t, seed())

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)

	plan := workout.SelectPlan(got, workout.Mesomorph, workout.Advanced, 2)
	require.Len(t, plan, 2)
	require.Equal(t, "chest", plan[0].Title)
}

func waitForDatabase(t *testing.T, ctx context.Context, dsn string) *storage.DB {
	t.Helper()
	deadline := time.Now().Add(30 * time.Second)
	for {
		db, err := storage.Open(ctx, dsn)
		if err == nil {
			return db
		}
		if time.Now().After(deadline) {
			require.NoError(t, err)
		}
		time.Sleep(time.Second)
	}
}
