package migrator

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	_ "modernc.org/sqlite"
)

func setup(t *testing.T) (*sql.DB, *Migrator, string) {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	dir := filepath.Join(t.TempDir(), "migrations")
	builder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	return db, New(db, builder, dir, nil), dir
}

func writeMigration(t *testing.T, dir, id, up, down string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))

	data, err := json.Marshal(MigrationFile{Migration: Migration{
		ID:        id,
		Name:      id,
		Up:        up,
		Down:      down,
		Checksum:  Checksum(up),
		CreatedAt: time.Now(),
	}})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, id+".json"), data, 0644))
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&n))
	return n > 0
}

func writeRolesAndPermissions(t *testing.T, dir string) {
	writeMigration(t, dir, "20240101000000_roles",
		"CREATE TABLE roles (id INTEGER PRIMARY KEY, name TEXT NOT NULL UNIQUE, description TEXT);",
		"DROP TABLE roles;")
	writeMigration(t, dir, "20240102000000_permissions",
		"-- permissions\nCREATE TABLE permissions (id INTEGER PRIMARY KEY, name TEXT NOT NULL);\nINSERT INTO permissions (name) VALUES ('a;b');",
		"DROP TABLE permissions;")
}

func TestCreate(t *testing.T) {
	_, m, dir := setup(t)

	path, err := m.Create("Create Users Table")
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Contains(t, filepath.Base(path), "_create_users_table.json")

	migrations, err := m.Load()
	require.NoError(t, err)
	require.Len(t, migrations, 1)
	assert.Equal(t, "Create Users Table", migrations[0].Name)
	assert.Equal(t, Checksum(migrations[0].Up), migrations[0].Checksum)

	_, err = m.Create("  !!  ")
	assert.Error(t, err)
}

func TestLoadMissingDirectory(t *testing.T) {
	_, m, _ := setup(t)

	migrations, err := m.Load()
	require.NoError(t, err)
	assert.Empty(t, migrations)
}

func TestApplyAndStatus(t *testing.T) {
	db, m, dir := setup(t)
	writeRolesAndPermissions(t, dir)
	ctx := context.Background()

	n, err := m.Apply(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, tableExists(t, db, "roles"))
	assert.True(t, tableExists(t, db, "permissions"))

	var name string
	require.NoError(t, db.QueryRow("SELECT name FROM permissions").Scan(&name))
	assert.Equal(t, "a;b", name)

	n, err = m.Apply(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	items, err := m.Status(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.True(t, item.Applied)
		assert.NotNil(t, item.AppliedAt)
		assert.False(t, item.Modified)
	}
}

func TestApplyStopsAtFirstFailure(t *testing.T) {
	db, m, dir := setup(t)
	writeMigration(t, dir, "20240101000000_ok", "CREATE TABLE ok (id INTEGER);", "DROP TABLE ok;")
	writeMigration(t, dir, "20240102000000_broken",
		"CREATE TABLE half (id INTEGER); CREATE TABLE ok (id INTEGER);", "DROP TABLE half;")
	writeMigration(t, dir, "20240103000000_later", "CREATE TABLE later (id INTEGER);", "DROP TABLE later;")

	n, err := m.Apply(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, n)
	assert.False(t, tableExists(t, db, "half"))
	assert.False(t, tableExists(t, db, "later"))

	items, err := m.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, items[0].Applied)
	assert.False(t, items[1].Applied)
	assert.False(t, items[2].Applied)
}

func TestRollback(t *testing.T) {
	db, m, dir := setup(t)
	writeRolesAndPermissions(t, dir)
	ctx := context.Background()

	_, err := m.Apply(ctx)
	require.NoError(t, err)

	n, err := m.Rollback(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, tableExists(t, db, "roles"))
	assert.False(t, tableExists(t, db, "permissions"))

	n, err = m.Rollback(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.False(t, tableExists(t, db, "roles"))
}

func TestRefreshRebuildsSchema(t *testing.T) {
	db, m, dir := setup(t)
	writeRolesAndPermissions(t, dir)
	ctx := context.Background()

	_, err := m.Apply(ctx)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO roles (name) VALUES ('admin')")
	require.NoError(t, err)

	require.NoError(t, m.Refresh(ctx))

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM roles").Scan(&n))
	assert.Zero(t, n)
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM permissions").Scan(&n))
	assert.Equal(t, 1, n)
}

func TestModifiedMigrationWarns(t *testing.T) {
	db, _, dir := setup(t)
	core, logs := observer.New(zapcore.WarnLevel)
	m := New(db, squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question), dir, zap.New(core))
	ctx := context.Background()

	writeMigration(t, dir, "20240101000000_roles", "CREATE TABLE roles (id INTEGER);", "DROP TABLE roles;")
	_, err := m.Apply(ctx)
	require.NoError(t, err)

	writeMigration(t, dir, "20240101000000_roles", "CREATE TABLE roles (id INTEGER, name TEXT);", "DROP TABLE roles;")
	n, err := m.Apply(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 1, logs.FilterMessageSnippet("changed after it was applied").Len())

	items, err := m.Status(ctx)
	require.NoError(t, err)
	assert.True(t, items[0].Modified)
}

func TestRollbackMissingFile(t *testing.T) {
	_, m, dir := setup(t)
	writeMigration(t, dir, "20240101000000_roles", "CREATE TABLE roles (id INTEGER);", "DROP TABLE roles;")
	ctx := context.Background()

	_, err := m.Apply(ctx)
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(dir, "20240101000000_roles.json")))

	_, err = m.Rollback(ctx, 1)
	assert.ErrorContains(t, err, "not found")
}
