package ports

import "gwspec/internal/types"

// ColumnRenamerPort maps display names to safe field identifiers. The result
// has the same length and order as the input.
type ColumnRenamerPort interface {
	RenameColumns(names []string) []string
}

// IDSourcePort produces unique random strings.
type IDSourcePort interface {
	NewID() string
}

// FieldListPort loads a dataset's authoritative field list.
type FieldListPort interface {
	LoadFields(path string) ([]types.Field, error)
}
