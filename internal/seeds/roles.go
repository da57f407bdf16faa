package seeds

import (
	"context"
	"fmt"

	"github.com/Rana718/groundwork/internal/enums"
	"github.com/Rana718/groundwork/internal/seeder"
)

// RolesSeeder inserts one row per enums.Role. It stays out of the way as
// soon as any known role name is present.
type RolesSeeder struct{}

func (RolesSeeder) TableName() string { return "roles" }

func (RolesSeeder) ShouldRun(ctx context.Context, guard *seeder.Guard) (bool, error) {
	return guard.RecordsNotInTable(ctx, "name", enums.RoleStrings())
}

func (s RolesSeeder) Run(ctx context.Context, tx seeder.Tx) error {
	insert := tx.Builder().Insert(s.TableName()).Columns("name", "description")
	for _, role := range enums.RoleValues() {
		insert = insert.Values(string(role), role.Description())
	}
	if _, err := tx.Exec(ctx, insert); err != nil {
		return fmt.Errorf("insert roles: %w", err)
	}
	return nil
}
