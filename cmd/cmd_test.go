package cmd

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/Rana718/groundwork/internal/enums"
	"github.com/Rana718/groundwork/internal/migrator"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEnumsJSON(t *testing.T) {
	out, err := execute(t, "enums", "role", "--format", "json")
	require.NoError(t, err)

	var c enums.Catalog
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, "role", c.Name)
	assert.Len(t, c.Entries, 4)
}

func TestEnumsYAML(t *testing.T) {
	out, err := execute(t, "enums", "pagination_type", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: pagination_type")
	assert.Contains(t, out, "value: length_aware")
}

func TestEnumsUnknown(t *testing.T) {
	_, err := execute(t, "enums", "colours")
	assert.ErrorIs(t, err, enums.ErrUnknownValue)
}

func TestMigrateAndSeed(t *testing.T) {
	dir := t.TempDir()
	migrations := filepath.Join(dir, "migrations")
	require.NoError(t, os.MkdirAll(migrations, 0755))

	up := `CREATE TABLE roles (id INTEGER PRIMARY KEY, name TEXT NOT NULL UNIQUE, description TEXT);
CREATE TABLE permissions (id INTEGER PRIMARY KEY, name TEXT NOT NULL UNIQUE, description TEXT);`
	data, err := json.Marshal(migrator.MigrationFile{Migration: migrator.Migration{
		ID:   "20240101000000_reference_data",
		Name: "reference data",
		Up:   up,
		Down: "DROP TABLE permissions; DROP TABLE roles;",
	}})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(migrations, "20240101000000_reference_data.json"), data, 0644))

	dbPath := filepath.Join(dir, "app.db")
	t.Setenv("DATABASE_URL", dbPath)
	viper.Set("migrations_path", migrations)
	viper.Set("database.provider", "sqlite")
	viper.Set("database.driver", "modernc")
	t.Cleanup(viper.Reset)

	_, err = execute(t, "migrate")
	require.NoError(t, err)

	_, err = execute(t, "seed")
	require.NoError(t, err)
	_, err = execute(t, "seed", "--unit", "RolesSeeder")
	require.NoError(t, err)

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var roles, permissions int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM roles").Scan(&roles))
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM permissions").Scan(&permissions))
	assert.Equal(t, 4, roles)
	assert.Equal(t, 10, permissions)

	_, err = execute(t, "seed", "--unit", "UsersSeeder")
	assert.ErrorContains(t, err, "unknown seeder")
	seedUnit = ""
}
