package seeds

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/Rana718/groundwork/internal/seeder"
)

const schema = `
CREATE TABLE roles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	description TEXT
);
CREATE TABLE permissions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	description TEXT
);`

func setup(t *testing.T) (*sql.DB, *seeder.Runner) {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "seeds.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(schema)
	require.NoError(t, err)

	store := seeder.NewSQLStore(db, squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question))
	return db, seeder.NewRunner(store, nil, nil)
}

func count(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestRunAllIsIdempotent(t *testing.T) {
	db, runner := setup(t)
	ctx := context.Background()

	first := runner.RunAll(ctx, All()...)
	assert.Equal(t, 2, first.Completed)
	assert.Zero(t, first.Failed)
	assert.Equal(t, 4, count(t, db, "roles"))
	assert.Equal(t, 10, count(t, db, "permissions"))

	second := runner.RunAll(ctx, All()...)
	assert.Equal(t, 2, second.Skipped)
	assert.Equal(t, 4, count(t, db, "roles"))
	assert.Equal(t, 10, count(t, db, "permissions"))
}

func TestRolesSeederSkipsWhenAnyRoleExists(t *testing.T) {
	db, runner := setup(t)
	_, err := db.Exec("INSERT INTO roles (name) VALUES ('admin')")
	require.NoError(t, err)

	assert.Equal(t, seeder.Skipped, runner.SafeRun(context.Background(), &RolesSeeder{}))
	assert.Equal(t, 1, count(t, db, "roles"))
}

func TestRolesSeederIgnoresUnrelatedRows(t *testing.T) {
	db, runner := setup(t)
	_, err := db.Exec("INSERT INTO roles (name) VALUES ('auditor')")
	require.NoError(t, err)

	assert.Equal(t, seeder.Completed, runner.SafeRun(context.Background(), &RolesSeeder{}))
	assert.Equal(t, 5, count(t, db, "roles"))

	var description string
	require.NoError(t, db.QueryRow("SELECT description FROM roles WHERE name = 'super_user'").Scan(&description))
	assert.Equal(t, "Super user with the highest level of access.", description)
}

func TestPermissionsSeederRollsBackPartialInsert(t *testing.T) {
	db, runner := setup(t)
	_, err := db.Exec("CREATE TRIGGER reject_delete_users BEFORE INSERT ON permissions " +
		"WHEN NEW.name = 'delete_users' BEGIN SELECT RAISE(ABORT, 'blocked'); END")
	require.NoError(t, err)

	assert.Equal(t, seeder.Failed, runner.SafeRun(context.Background(), &PermissionsSeeder{}))
	assert.Equal(t, 0, count(t, db, "permissions"))
}

func TestByName(t *testing.T) {
	u, err := ByName("rolesseeder")
	require.NoError(t, err)
	assert.Equal(t, "roles", u.TableName())

	_, err = ByName("users")
	assert.ErrorContains(t, err, "RolesSeeder, PermissionsSeeder")
}
