// Package migrator applies and reverts JSON migration files and records
// what has been applied in the _groundwork_migrations table.
package migrator

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

const TableName = "_groundwork_migrations"

var nameCleaner = regexp.MustCompile(`[^a-z0-9_]+`)

// Migration is the content of one migration file.
type Migration struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Up        string    `json:"up"`
	Down      string    `json:"down"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
}

// MigrationFile is the on-disk envelope of a Migration.
type MigrationFile struct {
	Migration Migration `json:"migration"`
}

type StatusItem struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Applied   bool       `json:"applied"`
	AppliedAt *time.Time `json:"applied_at,omitempty"`
	Modified  bool       `json:"modified"`
}

type appliedRecord struct {
	ID        string
	Checksum  string
	AppliedAt time.Time
}

type Migrator struct {
	db      *sql.DB
	builder squirrel.StatementBuilderType
	dir     string
	logger  *zap.Logger
}

func New(db *sql.DB, builder squirrel.StatementBuilderType, dir string, logger *zap.Logger) *Migrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Migrator{db: db, builder: builder, dir: dir, logger: logger}
}

// Create writes a new migration file with template SQL and returns its path.
func (m *Migrator) Create(name string) (string, error) {
	cleanName := nameCleaner.ReplaceAllString(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_"), "")
	if cleanName == "" {
		return "", fmt.Errorf("invalid migration name %q", name)
	}

	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create migrations directory: %w", err)
	}

	now := time.Now().UTC()
	id := fmt.Sprintf("%s_%s", now.Format("20060102150405"), cleanName)

	upSQL := fmt.Sprintf(`-- Migration: %s
-- Add your SQL commands here

-- Example:
-- CREATE TABLE example (
--     id INTEGER PRIMARY KEY,
--     name VARCHAR(255) NOT NULL
-- );`, name)

	downSQL := `-- Reverse the statements of the up section

-- Example:
-- DROP TABLE IF EXISTS example;`

	file := MigrationFile{Migration: Migration{
		ID:        id,
		Name:      name,
		Up:        upSQL,
		Down:      downSQL,
		Checksum:  Checksum(upSQL),
		CreatedAt: now,
	}}

	path := filepath.Join(m.dir, id+".json")
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode migration: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("failed to write migration file: %w", err)
	}

	m.logger.Info("✨ Generated migration", zap.String("path", path))
	return path, nil
}

// Load reads every migration file in the directory, sorted by ID. A missing
// directory yields no migrations.
func (m *Migrator) Load() ([]Migration, error) {
	entries, err := os.ReadDir(m.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var migrations []Migration
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(m.dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		var file MigrationFile
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse migration file %s: %w", entry.Name(), err)
		}
		if file.Migration.ID == "" {
			file.Migration.ID = strings.TrimSuffix(entry.Name(), ".json")
		}
		migrations = append(migrations, file.Migration)
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].ID < migrations[j].ID
	})
	return migrations, nil
}

// Checksum fingerprints the up section of a migration.
func Checksum(content string) string {
	h := sha256.Sum256([]byte(content))
	return hex.EncodeToString(h[:])
}

func (m *Migrator) ensureTable(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS ` + TableName + ` (
		id VARCHAR(255) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		checksum VARCHAR(64) NOT NULL,
		applied_at TIMESTAMP NOT NULL
	)`
	if _, err := m.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// applied returns the recorded migrations, oldest first.
func (m *Migrator) applied(ctx context.Context) ([]appliedRecord, error) {
	query, args, err := m.builder.Select("id", "checksum", "applied_at").
		From(TableName).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get applied migrations: %w", err)
	}
	defer rows.Close()

	var records []appliedRecord
	for rows.Next() {
		var r appliedRecord
		if err := rows.Scan(&r.ID, &r.Checksum, &r.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan applied migration: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
