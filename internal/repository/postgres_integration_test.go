//go:build integration

package repository

import (
	"context"
	"testing"

	"hvrdb/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) *Repository {
	ctx := context.Background()

	// Start PostgreSQL container with PostGIS
	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
	})

	repo := NewRepository(pool)
	require.NoError(t, repo.CreateSchema(ctx))

	_, err = repo.ReplaceDataset(ctx, "keva", []models.Location{
		{Company: "ACE", Name: "ACE Haifa", Category: "בית", Address: "Haifa", City: "Haifa", Latitude: 32.794, Longitude: 34.989},
		{Company: "ACE", Name: "ACE Eilat", Category: "בית", Address: "Eilat", City: "Eilat", Latitude: 29.557, Longitude: 34.951},
		{Company: "Castro", Name: "Castro Dizengoff", Category: "אופנה", Address: "Dizengoff 50", City: "Tel Aviv", Latitude: 32.078, Longitude: 34.774},
	})
	require.NoError(t, err)

	return repo
}

func TestRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	repo := setupTestDatabase(t)
	ctx := context.Background()

	t.Run("count", func(t *testing.T) {
		count, err := repo.CountStores(ctx, "keva")
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("search by text", func(t *testing.T) {
		tests := []struct {
			name     string
			query    string
			expected []string
		}{
			{name: "company", query: "ACE", expected: []string{"ACE Haifa", "ACE Eilat"}},
			{name: "address", query: "Dizengoff", expected: []string{"Castro Dizengoff"}},
			{name: "no results", query: "nonexistent", expected: []string{}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				locations, err := repo.SearchStoresByText(ctx, tt.query)
				require.NoError(t, err)
				names := []string{}
				for _, l := range locations {
					names = append(names, l.Name)
				}
				assert.ElementsMatch(t, tt.expected, names)
			})
		}
	})

	t.Run("list by category", func(t *testing.T) {
		locations, err := repo.ListStoresByCategory(ctx, "אופנה")
		require.NoError(t, err)
		require.Len(t, locations, 1)
		assert.Equal(t, "keva", locations[0].Dataset)
		assert.InDelta(t, 32.078, locations[0].Latitude, 1e-9)
	})

	t.Run("nearest", func(t *testing.T) {
		loc, err := repo.FindNearestStore(ctx, 32.80, 34.99)
		require.NoError(t, err)
		assert.Equal(t, "ACE Haifa", loc.Name)

		_, err = repo.FindNearestStore(ctx, 31.0, 35.5)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("replace dataset", func(t *testing.T) {
		n, err := repo.ReplaceDataset(ctx, "keva", []models.Location{{Name: "only", Latitude: 31.5, Longitude: 34.8}})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		count, err := repo.CountStores(ctx, "keva")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
