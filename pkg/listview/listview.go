// Package listview bridges console list requests and the table engine: it
// parses a table view state from query parameters, converts canonical
// records into engine rows, and shapes the paged response envelope.
package listview

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/caredash/caredash/internal/platform/table"
)

// StateFromContext extracts the view state from the request query:
// `search`, `page`, `per_page` and any number of `filter[field]=value`
// pairs. Out-of-range values fall back to the defaults.
func StateFromContext(c echo.Context) table.ViewState {
	state := table.NewViewState()

	state.SearchTerm = c.QueryParam("search")

	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil && page > 0 {
		state.Page = page
	}
	if per, err := strconv.Atoi(c.QueryParam("per_page")); err == nil && per > 0 {
		state.RowsPerPage = table.ClampRowsPerPage(per)
	}

	for key, vals := range c.QueryParams() {
		if !strings.HasPrefix(key, "filter[") || !strings.HasSuffix(key, "]") {
			continue
		}
		field := key[len("filter[") : len(key)-1]
		if field == "" || len(vals) == 0 || vals[0] == "" {
			continue
		}
		if state.Filters == nil {
			state.Filters = map[string]string{}
		}
		state.Filters[field] = vals[0]
	}

	return state
}

// Rows converts a slice of canonical records into engine rows via their
// JSON encoding, so the engine sees exactly the field names the console
// renders.
func Rows[T any](records []T) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			continue
		}
		var row table.Row
		if err := json.Unmarshal(data, &row); err != nil {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// Response is the list endpoint envelope.
type Response struct {
	Rows      []table.Row    `json:"rows"`
	Cells     [][]table.Cell `json:"cells"`
	Total     int            `json:"total"`
	Page      int            `json:"page"`
	PerPage   int            `json:"per_page"`
	Synthetic bool           `json:"synthetic"`
}

// NewResponse runs the table engine over the dataset and renders the
// visible rows with the view-supplied columns. The page is clamped first so
// a stale page position yields the first page instead of an empty one.
func NewResponse(rows []table.Row, cols []table.Column, state table.ViewState, synthetic bool) Response {
	_, total := table.ComputeVisible(rows, cols, state)
	state = table.ClampPage(state, total)
	visible, total := table.ComputeVisible(rows, cols, state)

	cells := make([][]table.Cell, len(visible))
	for i, row := range visible {
		cells[i] = table.RenderRow(row, cols)
	}

	return Response{
		Rows:      visible,
		Cells:     cells,
		Total:     total,
		Page:      state.Page,
		PerPage:   state.RowsPerPage,
		Synthetic: synthetic,
	}
}
