package seeder

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Rana718/groundwork/internal/utils"
)

// Store is the data-store collaborator: row counting for guards and
// transactions for seeding work.
type Store interface {
	// Count returns the number of rows in table matching where. A nil
	// where counts every row.
	Count(ctx context.Context, table string, where squirrel.Sqlizer) (int64, error)
	Begin(ctx context.Context) (Tx, error)
}

// Tx is the transaction handed to Unit.Run. Commit and Rollback belong to
// the Runner; units only build and execute statements.
type Tx interface {
	Builder() squirrel.StatementBuilderType
	Exec(ctx context.Context, stmt squirrel.Sqlizer) (sql.Result, error)
	Commit() error
	Rollback() error
}

type SQLStore struct {
	db      *sql.DB
	builder squirrel.StatementBuilderType
}

func NewSQLStore(db *sql.DB, builder squirrel.StatementBuilderType) *SQLStore {
	return &SQLStore{db: db, builder: builder}
}

func (s *SQLStore) Count(ctx context.Context, table string, where squirrel.Sqlizer) (int64, error) {
	if err := utils.ValidateIdentifiers("table", table); err != nil {
		return 0, err
	}

	query := s.builder.Select("COUNT(*)").From(table)
	if where != nil {
		query = query.Where(where)
	}

	stmt, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int64
	if err := s.db.QueryRowContext(ctx, stmt, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count, nil
}

func (s *SQLStore) Begin(ctx context.Context) (Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &sqlTx{tx: tx, builder: s.builder}, nil
}

type sqlTx struct {
	tx      *sql.Tx
	builder squirrel.StatementBuilderType
}

func (t *sqlTx) Builder() squirrel.StatementBuilderType {
	return t.builder
}

func (t *sqlTx) Exec(ctx context.Context, stmt squirrel.Sqlizer) (sql.Result, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build statement: %w", err)
	}
	return t.tx.ExecContext(ctx, query, args...)
}

func (t *sqlTx) Commit() error {
	return t.tx.Commit()
}

func (t *sqlTx) Rollback() error {
	return t.tx.Rollback()
}
