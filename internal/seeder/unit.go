// Package seeder runs seeding units so that they can be invoked over and
// over from a deployment pipeline: a unit declares whether it is safe to
// run, its work happens inside one transaction, and every outcome is
// logged.
package seeder

import (
	"context"
	"fmt"
	"strings"
)

// Unit is a single seeding operation bound to one table.
type Unit interface {
	// TableName identifies the target table. It must not be empty.
	TableName() string

	// ShouldRun decides, before any mutation, whether the unit is safe to
	// execute against the current data. It is called once per invocation.
	ShouldRun(ctx context.Context, guard *Guard) (bool, error)

	// Run performs the inserts/updates inside tx.
	Run(ctx context.Context, tx Tx) error
}

// Named lets a unit choose the name used in log entries.
type Named interface {
	Name() string
}

// UnitName returns the display name of u: Name() when implemented,
// otherwise its bare type name.
func UnitName(u Unit) string {
	if n, ok := u.(Named); ok {
		return n.Name()
	}
	name := strings.TrimPrefix(fmt.Sprintf("%T", u), "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
