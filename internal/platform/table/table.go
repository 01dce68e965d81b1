// Package table implements the console's tabular data engine: given a slice
// of canonical records, a column specification and a view state, it computes
// the exact visible page, selection transitions and per-cell render hints.
// Every operation is a pure transform over plain data; the package has no
// dependency on any transport or UI toolkit and never reorders rows --
// sorting, when wanted, happens before the engine is invoked.
package table

import (
	"strings"
)

// Row is one canonical record as seen by the engine: stable field names
// mapped to primitive or nested values. The record's identifier lives under
// "id" and is always a string.
type Row = map[string]any

// CellKind enumerates the render hints a column can carry.
type CellKind string

const (
	CellPlain  CellKind = "plain"
	CellChip   CellKind = "chip"
	CellDate   CellKind = "date"
	CellAvatar CellKind = "avatar"
)

// Column describes one table column. Columns are supplied by the view and
// consumed read-only; the engine never mutates or infers them.
type Column struct {
	Field  string
	Header string
	Width  int
	Align  string
	Type   CellKind

	// ChipColor maps a cell value to a badge color for chip columns.
	// Optional; a chip without it gets the default category.
	ChipColor func(value any) string

	// Render is the caller-supplied formatter. When set it wins over Type.
	Render func(value any, row Row) Cell
}

// Cell is the displayable outcome of rendering one row/column pair. The
// view layer turns it into concrete markup; the engine only guarantees that
// Text is always renderable.
type Cell struct {
	Kind   CellKind `json:"kind"`
	Text   string   `json:"text"`
	Color  string   `json:"color,omitempty"`
	Avatar string   `json:"avatar,omitempty"`
}

// ViewState drives what a table currently shows. Values are replaced, never
// mutated in place: every transition returns a new state.
type ViewState struct {
	Page        int               `json:"page"`
	RowsPerPage int               `json:"rows_per_page"`
	SearchTerm  string            `json:"search_term"`
	Filters     map[string]string `json:"filters"`
	Selected    []string          `json:"selected"`
}

// RowsPerPageOptions is the enumerated set of allowed page sizes.
var RowsPerPageOptions = []int{5, 10, 25, 50, 100}

// DefaultRowsPerPage is the page size a fresh view starts with.
const DefaultRowsPerPage = 10

// NewViewState returns the initial state for a freshly mounted table.
func NewViewState() ViewState {
	return ViewState{RowsPerPage: DefaultRowsPerPage}
}

// ClampRowsPerPage coerces an arbitrary size onto the allowed set, picking
// the nearest option (ties resolve downward).
func ClampRowsPerPage(size int) int {
	best := RowsPerPageOptions[0]
	bestDist := abs(size - best)
	for _, opt := range RowsPerPageOptions[1:] {
		if d := abs(size - opt); d < bestDist {
			best, bestDist = opt, d
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// matchesSearch reports whether any column field of the row, stringified,
// contains the term case-insensitively. An empty term matches everything.
func matchesSearch(row Row, cols []Column, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, col := range cols {
		v, ok := row[col.Field]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(stringify(v)), needle) {
			return true
		}
	}
	return false
}

// matchesFilters reports whether the row equals every non-empty filter value
// exactly. Comparison is on the stringified value, so numeric filters match
// numeric fields ("42" matches 42) without substring semantics.
func matchesFilters(row Row, filters map[string]string) bool {
	for field, want := range filters {
		if want == "" {
			continue
		}
		if stringify(row[field]) != want {
			return false
		}
	}
	return true
}

// ComputeVisible filters the dataset by the state's search term and filters,
// then slices out the current page. The returned total counts every row
// satisfying both predicates, before pagination. Input order is preserved.
func ComputeVisible(rows []Row, cols []Column, state ViewState) (visible []Row, total int) {
	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		if matchesSearch(row, cols, state.SearchTerm) && matchesFilters(row, state.Filters) {
			filtered = append(filtered, row)
		}
	}
	total = len(filtered)

	per := state.RowsPerPage
	if per <= 0 {
		per = DefaultRowsPerPage
	}
	start := state.Page * per
	if start >= total {
		return []Row{}, total
	}
	end := start + per
	if end > total {
		end = total
	}
	return filtered[start:end], total
}

// RowID extracts the row's identifier.
func RowID(row Row) string {
	if s, ok := row["id"].(string); ok {
		return s
	}
	return stringify(row["id"])
}
