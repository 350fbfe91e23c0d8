package plotter

import (
	"fmt"
	"strings"
)

// Arrangement describes how flat indices map onto table rows and columns.
type Arrangement int

const (
	// RowMajor stores consecutive elements in the same row.
	RowMajor Arrangement = iota
	// ColumnMajor stores consecutive elements in the same column.
	ColumnMajor
)

// String returns the canonical flag spelling of the arrangement.
func (a Arrangement) String() string {
	switch a {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return fmt.Sprintf("Arrangement(%d)", int(a))
	}
}

// ParseArrangement converts a user supplied name to an Arrangement.
// Empty string defaults to RowMajor.
func ParseArrangement(s string) (Arrangement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "row", "rows", "row-major", "rowmajor", "row_major":
		return RowMajor, nil
	case "column", "columns", "col", "column-major", "columnmajor", "column_major":
		return ColumnMajor, nil
	default:
		return RowMajor, fmt.Errorf("invalid arrangement %q (expected row-major|column-major)", s)
	}
}
