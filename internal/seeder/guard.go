package seeder

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/Rana718/groundwork/internal/utils"
)

// GuardResult is the outcome of an existence check.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Guard runs read-only existence checks against the table of one unit.
// Every successful check emits exactly one info entry. Guards never stop
// Run on their own; the unit decides what to do with the answer.
type Guard struct {
	store  Store
	logger *zap.Logger
	table  string
}

func NewGuard(store Store, logger *zap.Logger, table string) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{store: store, logger: logger, table: table}
}

func (g *Guard) Table() string {
	return g.table
}

// TableIsEmpty reports whether the table has no rows at all. pkColumn
// names the key column for the log entry and defaults to "id"; it does not
// change what is counted.
func (g *Guard) TableIsEmpty(ctx context.Context, pkColumn string) (bool, error) {
	result, err := g.CheckEmpty(ctx, pkColumn)
	return result.Allowed, err
}

func (g *Guard) CheckEmpty(ctx context.Context, pkColumn string) (GuardResult, error) {
	if pkColumn == "" {
		pkColumn = "id"
	}
	if err := utils.ValidateIdentifiers("column", pkColumn); err != nil {
		return GuardResult{}, err
	}

	count, err := g.store.Count(ctx, g.table, nil)
	if err != nil {
		return GuardResult{}, err
	}

	var result GuardResult
	if count > 0 {
		result.Reason = fmt.Sprintf("🚀 [Seeder Skipped] %s already has records.", g.table)
	} else {
		result.Allowed = true
		result.Reason = fmt.Sprintf("✅ [Seeder Allowed] %s is empty. Seeding...", g.table)
	}

	g.logger.Info(result.Reason,
		zap.String("table", g.table),
		zap.String("pk", pkColumn),
		zap.Int64("rows", count))
	return result, nil
}

// RecordsNotInTable reports whether none of values appear in column.
func (g *Guard) RecordsNotInTable(ctx context.Context, column string, values []string) (bool, error) {
	result, err := g.CheckRecordsAbsent(ctx, column, values)
	return result.Allowed, err
}

func (g *Guard) CheckRecordsAbsent(ctx context.Context, column string, values []string) (GuardResult, error) {
	if err := utils.ValidateIdentifiers("column", column); err != nil {
		return GuardResult{}, err
	}

	count, err := g.store.Count(ctx, g.table, squirrel.Eq{column: values})
	if err != nil {
		return GuardResult{}, err
	}

	var result GuardResult
	if count > 0 {
		result.Reason = fmt.Sprintf("🚀 [Seeder Skipped] Some records already exist in %s.", g.table)
	} else {
		result.Allowed = true
		result.Reason = fmt.Sprintf("✅ [Seeder Allowed] No matching records found in %s. Seeding...", g.table)
	}

	g.logger.Info(result.Reason,
		zap.String("table", g.table),
		zap.String("column", column),
		zap.Int64("matches", count))
	return result, nil
}
