package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-services/catalog-service/internal/config"
	"catalog-services/catalog-service/internal/entity"
	"catalog-services/catalog-service/migrations"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := config.ConnectDB(config.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, db.Close()) })

	require.NoError(t, migrations.AutoMigrateUsers(config.DriverSQLite, db))
	require.NoError(t, migrations.AutoMigrateProducts(config.DriverSQLite, db))
	return db
}

func TestQueryHelper_QueryOne(t *testing.T) {
	db := setupTestDB(t)
	q := NewQueryHelper(db)
	ctx := context.Background()

	_, _, err := q.Exec(ctx, `INSERT INTO users (name, email) VALUES (?, ?), (?, ?)`,
		[]any{"Ann", "ann@x.com", "Bob", "bob@x.com"})
	require.NoError(t, err)

	t.Run("returns first record", func(t *testing.T) {
		var name string
		found, err := q.QueryOne(ctx, `SELECT name FROM users ORDER BY id`, nil, func(row Scanner) error {
			return row.Scan(&name)
		})
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "Ann", name)
	})

	t.Run("reports absence", func(t *testing.T) {
		called := false
		found, err := q.QueryOne(ctx, `SELECT name FROM users WHERE id = ?`, []any{999}, func(row Scanner) error {
			called = true
			return nil
		})
		require.NoError(t, err)
		assert.False(t, found)
		assert.False(t, called)
	})

	t.Run("binds parameters instead of interpolating", func(t *testing.T) {
		count := 0
		err := q.Query(ctx, `SELECT id FROM users WHERE name = ?`, []any{"Ann' OR '1'='1"}, func(row Scanner) error {
			count++
			return nil
		})
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("surfaces statement errors", func(t *testing.T) {
		err := q.Query(ctx, `SELECT nope FROM missing_table`, nil, func(row Scanner) error { return nil })
		assert.Error(t, err)
	})
}

func TestQueryHelper_ReleasesConnections(t *testing.T) {
	db := setupTestDB(t)
	db.SetMaxOpenConns(1)
	q := NewQueryHelper(db)
	ctx := context.Background()

	// With a single connection allowed, a leaked connection would block the
	// next acquisition forever.
	for i := 0; i < 5; i++ {
		_ = q.Query(ctx, `SELECT nope FROM missing_table`, nil, func(row Scanner) error { return nil })
		_, err := q.QueryOne(ctx, `SELECT COUNT(*) FROM users`, nil, func(row Scanner) error {
			var n int
			return row.Scan(&n)
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 0, db.Stats().InUse)
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	users, err := repo.GetUsers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	ann, err := repo.CreateUser(ctx, &entity.User{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)
	assert.NotZero(t, ann.ID)

	bob, err := repo.CreateUser(ctx, &entity.User{Name: "Bob", Email: "bob@x.com"})
	require.NoError(t, err)
	assert.Greater(t, bob.ID, ann.ID)

	got, err := repo.GetUserByID(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, &entity.User{ID: ann.ID, Name: "Ann", Email: "ann@x.com"}, got)

	users, err = repo.GetUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.User{*ann, *bob}, users)

	deleted, err := repo.DeleteUser(ctx, ann.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteUser(ctx, ann.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	got, err = repo.GetUserByID(ctx, ann.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	lamp, err := repo.CreateProduct(ctx, &entity.Product{Name: "Lamp", Price: 19.99})
	require.NoError(t, err)

	got, err := repo.GetProductByID(ctx, lamp.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Lamp", got.Name)
	assert.InDelta(t, 19.99, got.Price, 1e-9)

	products, err := repo.GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)

	deleted, err := repo.DeleteProduct(ctx, lamp.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err = repo.GetProductByID(ctx, lamp.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestIDsAreNotReused(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first, err := repo.CreateUser(ctx, &entity.User{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)
	firstID := first.ID

	_, err = repo.DeleteUser(ctx, firstID)
	require.NoError(t, err)

	second, err := repo.CreateUser(ctx, &entity.User{Name: "Cid", Email: "cid@x.com"})
	require.NoError(t, err)
	assert.NotEqual(t, firstID, second.ID)
}
