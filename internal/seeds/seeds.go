// Package seeds holds the reference-data seeding units run by `seed` and
// `init`.
package seeds

import (
	"fmt"
	"strings"

	"github.com/Rana718/groundwork/internal/seeder"
)

// All returns every unit in the order it must run.
func All() []seeder.Unit {
	return []seeder.Unit{
		&RolesSeeder{},
		&PermissionsSeeder{},
	}
}

// ByName finds a unit by its display name, case-insensitively.
func ByName(name string) (seeder.Unit, error) {
	var known []string
	for _, u := range All() {
		unitName := seeder.UnitName(u)
		if strings.EqualFold(unitName, name) {
			return u, nil
		}
		known = append(known, unitName)
	}
	return nil, fmt.Errorf("unknown seeder %q (available: %s)", name, strings.Join(known, ", "))
}
