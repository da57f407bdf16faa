package migrator

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/Rana718/groundwork/internal/database"
)

// Apply runs every pending migration in ID order and returns how many were
// applied. It stops at the first failure.
func (m *Migrator) Apply(ctx context.Context) (int, error) {
	if err := m.ensureTable(ctx); err != nil {
		return 0, err
	}

	migrations, err := m.Load()
	if err != nil {
		return 0, err
	}

	records, err := m.applied(ctx)
	if err != nil {
		return 0, err
	}
	done := make(map[string]appliedRecord, len(records))
	for _, r := range records {
		done[r.ID] = r
	}

	var pending []Migration
	for _, migration := range migrations {
		r, ok := done[migration.ID]
		if !ok {
			pending = append(pending, migration)
			continue
		}
		if r.Checksum != Checksum(migration.Up) {
			m.logger.Warn("⚠️  Migration changed after it was applied", zap.String("migration", migration.ID))
		}
	}

	if len(pending) == 0 {
		m.logger.Info("No pending migrations")
		return 0, nil
	}

	m.logger.Info(fmt.Sprintf("Found %d pending migrations", len(pending)))

	for i, migration := range pending {
		if err := m.applyOne(ctx, migration); err != nil {
			return i, fmt.Errorf("failed to apply migration %s: %w", migration.ID, err)
		}
		m.logger.Info("✅ Applied migration", zap.String("migration", migration.ID))
	}

	m.logger.Info("All migrations applied successfully")
	return len(pending), nil
}

// Rollback reverts the last steps applied migrations, newest first. A steps
// value of zero or less reverts all of them.
func (m *Migrator) Rollback(ctx context.Context, steps int) (int, error) {
	if err := m.ensureTable(ctx); err != nil {
		return 0, err
	}

	migrations, err := m.Load()
	if err != nil {
		return 0, err
	}
	byID := make(map[string]Migration, len(migrations))
	for _, migration := range migrations {
		byID[migration.ID] = migration
	}

	records, err := m.applied(ctx)
	if err != nil {
		return 0, err
	}
	if steps <= 0 || steps > len(records) {
		steps = len(records)
	}

	for i := 0; i < steps; i++ {
		r := records[len(records)-1-i]
		migration, ok := byID[r.ID]
		if !ok {
			return i, fmt.Errorf("migration file for %s not found", r.ID)
		}
		if err := m.revertOne(ctx, migration); err != nil {
			return i, fmt.Errorf("failed to roll back migration %s: %w", migration.ID, err)
		}
		m.logger.Info("↩️  Rolled back migration", zap.String("migration", migration.ID))
	}

	return steps, nil
}

// Refresh reverts every applied migration and applies them all again.
func (m *Migrator) Refresh(ctx context.Context) error {
	reverted, err := m.Rollback(ctx, 0)
	if err != nil {
		return err
	}
	applied, err := m.Apply(ctx)
	if err != nil {
		return err
	}
	m.logger.Info("🔄 Database refreshed", zap.Int("rolled_back", reverted), zap.Int("applied", applied))
	return nil
}

func (m *Migrator) Status(ctx context.Context) ([]StatusItem, error) {
	if err := m.ensureTable(ctx); err != nil {
		return nil, err
	}

	migrations, err := m.Load()
	if err != nil {
		return nil, err
	}

	records, err := m.applied(ctx)
	if err != nil {
		return nil, err
	}
	done := make(map[string]appliedRecord, len(records))
	for _, r := range records {
		done[r.ID] = r
	}

	items := make([]StatusItem, 0, len(migrations))
	for _, migration := range migrations {
		item := StatusItem{ID: migration.ID, Name: migration.Name}
		if r, ok := done[migration.ID]; ok {
			appliedAt := r.AppliedAt
			item.Applied = true
			item.AppliedAt = &appliedAt
			item.Modified = r.Checksum != Checksum(migration.Up)
		}
		items = append(items, item)
	}
	return items, nil
}

func (m *Migrator) applyOne(ctx context.Context, migration Migration) error {
	record := m.builder.Insert(TableName).
		Columns("id", "name", "checksum", "applied_at").
		Values(migration.ID, migration.Name, Checksum(migration.Up), time.Now().UTC())
	return m.execInTx(ctx, migration.Up, record)
}

func (m *Migrator) revertOne(ctx context.Context, migration Migration) error {
	record := m.builder.Delete(TableName).Where(squirrel.Eq{"id": migration.ID})
	return m.execInTx(ctx, migration.Down, record)
}

// execInTx runs script followed by the bookkeeping statement in one
// transaction.
func (m *Migrator) execInTx(ctx context.Context, script string, bookkeeping squirrel.Sqlizer) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range database.SplitStatements(script) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute statement: %w", err)
		}
	}

	query, args, err := bookkeeping.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build statement: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}

	return tx.Commit()
}
