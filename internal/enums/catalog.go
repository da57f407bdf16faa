// Package enums holds the closed value sets shared by the application:
// error codes, roles, permissions, environments and reference
// classifications. Each set has a description table for display.
package enums

import (
	"errors"
	"fmt"
	"slices"
)

var ErrUnknownValue = errors.New("unknown enum value")

type Entry struct {
	Value       string `json:"value" yaml:"value"`
	Description string `json:"description" yaml:"description"`
}

type Catalog struct {
	Name    string  `json:"name" yaml:"name"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

type describedValue interface {
	~string
	Description() string
}

func parse[T ~string](kind, raw string, values []T) (T, error) {
	if slices.Contains(values, T(raw)) {
		return T(raw), nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q", ErrUnknownValue, kind, raw)
}

func catalogOf[T describedValue](name string, values []T) Catalog {
	entries := make([]Entry, len(values))
	for i, v := range values {
		entries[i] = Entry{Value: string(v), Description: v.Description()}
	}
	return Catalog{Name: name, Entries: entries}
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// Catalogs lists every enum in a stable order.
func Catalogs() []Catalog {
	return []Catalog{
		catalogOf("api_error_code", ApiErrorCodeValues()),
		catalogOf("app_environment", AppEnvironmentValues()),
		catalogOf("app_theme", AppThemeValues()),
		catalogOf("authentication_type", AuthenticationTypeValues()),
		catalogOf("barangay_classification", BarangayClassificationValues()),
		catalogOf("municipal_classification", MunicipalClassificationValues()),
		catalogOf("pagination_type", PaginationTypeValues()),
		catalogOf("permission", PermissionValues()),
		catalogOf("role", RoleValues()),
		catalogOf("sexual_category", SexualCategoryValues()),
	}
}

// FindCatalog returns the catalog registered under name.
func FindCatalog(name string) (Catalog, error) {
	for _, c := range Catalogs() {
		if c.Name == name {
			return c, nil
		}
	}
	return Catalog{}, fmt.Errorf("%w: catalog %q", ErrUnknownValue, name)
}
