package enums

import "maps"

// PaginationType selects how list endpoints page their results.
type PaginationType string

const (
	PaginationLengthAware PaginationType = "length_aware"
	PaginationSimple      PaginationType = "simple"
	PaginationCursor      PaginationType = "cursor"
)

var paginationTypeDescriptions = map[PaginationType]string{
	PaginationLengthAware: "Pagination with total result count and multiple pages.",
	PaginationSimple:      "Basic pagination with next/previous links, but no total count.",
	PaginationCursor:      "Efficient pagination using database cursors, suitable for large datasets.",
}

func PaginationTypeValues() []PaginationType {
	return []PaginationType{PaginationLengthAware, PaginationSimple, PaginationCursor}
}

func PaginationTypeDescriptions() map[PaginationType]string {
	return maps.Clone(paginationTypeDescriptions)
}

func ParsePaginationType(raw string) (PaginationType, error) {
	return parse("pagination type", raw, PaginationTypeValues())
}

func (p PaginationType) Description() string {
	if d, ok := paginationTypeDescriptions[p]; ok {
		return d
	}
	return "Unknown pagination type."
}

func (p PaginationType) Valid() bool {
	_, ok := paginationTypeDescriptions[p]
	return ok
}

// CountsTotal reports whether the strategy computes the total row count.
func (p PaginationType) CountsTotal() bool {
	return p == PaginationLengthAware
}
