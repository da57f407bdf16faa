package seeds

import (
	"context"
	"fmt"

	"github.com/Rana718/groundwork/internal/enums"
	"github.com/Rana718/groundwork/internal/seeder"
)

// PermissionsSeeder fills an empty permissions table from enums.Permission.
type PermissionsSeeder struct{}

func (PermissionsSeeder) TableName() string { return "permissions" }

func (PermissionsSeeder) ShouldRun(ctx context.Context, guard *seeder.Guard) (bool, error) {
	return guard.TableIsEmpty(ctx, "id")
}

func (s PermissionsSeeder) Run(ctx context.Context, tx seeder.Tx) error {
	for _, perm := range enums.PermissionValues() {
		insert := tx.Builder().Insert(s.TableName()).
			Columns("name", "description").
			Values(string(perm), perm.Description())
		if _, err := tx.Exec(ctx, insert); err != nil {
			return fmt.Errorf("insert permission %s: %w", perm, err)
		}
	}
	return nil
}
