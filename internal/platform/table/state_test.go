package table

import (
	"reflect"
	"testing"
)

func TestToggleSelectRow_AddsAndRemoves(t *testing.T) {
	sel := []string{"a", "b", "c"}

	sel = ToggleSelectRow("d", sel)
	if !reflect.DeepEqual(sel, []string{"a", "b", "c", "d"}) {
		t.Fatalf("add: got %v", sel)
	}

	sel = ToggleSelectRow("b", sel)
	if !reflect.DeepEqual(sel, []string{"a", "c", "d"}) {
		t.Fatalf("remove middle: got %v", sel)
	}
}

func TestToggleSelectRow_IsItsOwnInverse(t *testing.T) {
	orig := []string{"a", "b", "c"}
	for _, id := range []string{"a", "c", "x"} {
		got := ToggleSelectRow(id, ToggleSelectRow(id, orig))
		if !reflect.DeepEqual(got, orig) {
			t.Errorf("toggle %q twice: got %v, want %v", id, got, orig)
		}
	}
}

func TestToggleSelectRow_BoundaryRemovalPreservesOrder(t *testing.T) {
	if got := ToggleSelectRow("a", []string{"a", "b", "c"}); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Errorf("remove first: got %v", got)
	}
	if got := ToggleSelectRow("c", []string{"a", "b", "c"}); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("remove last: got %v", got)
	}
}

func TestToggleSelectAll_SelectsPageWithoutDuplicates(t *testing.T) {
	// 3 already selected from a prior page, 5 rows on this page.
	selected := []string{"p1", "p2", "p3"}
	page := []string{"q1", "q2", "q3", "q4", "q5"}

	got := ToggleSelectAll(page, selected)
	if len(got) != 8 {
		t.Fatalf("expected 8 selected, got %d: %v", len(got), got)
	}

	// One page row already selected: still no duplicates.
	selected = []string{"p1", "q2"}
	got = ToggleSelectAll(page, selected)
	if len(got) != 6 {
		t.Fatalf("expected 6 selected, got %d: %v", len(got), got)
	}
	seen := map[string]bool{}
	for _, id := range got {
		if seen[id] {
			t.Errorf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestToggleSelectAll_DeselectsFullySelectedPage(t *testing.T) {
	page := []string{"q1", "q2"}
	selected := []string{"p1", "q1", "q2", "p2"}

	got := ToggleSelectAll(page, selected)
	if !reflect.DeepEqual(got, []string{"p1", "p2"}) {
		t.Errorf("expected off-page selection kept in order, got %v", got)
	}
}

func TestToggleSelectAll_EmptyPageIsNoop(t *testing.T) {
	selected := []string{"a"}
	got := ToggleSelectAll(nil, selected)
	if !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("got %v", got)
	}
}

func TestPruneSelection_DropsDepartedIDs(t *testing.T) {
	state := NewViewState()
	state.Selected = []string{"a", "b", "c"}

	state = PruneSelection([]string{"c", "a"}, state)
	if !reflect.DeepEqual(state.Selected, []string{"a", "c"}) {
		t.Errorf("expected survivors in selection order, got %v", state.Selected)
	}
}

func TestChangeRowsPerPage_AlwaysResetsPage(t *testing.T) {
	state := NewViewState()
	state.Page = 7
	state.RowsPerPage = 10

	state = ChangeRowsPerPage(25, state)
	if state.Page != 0 {
		t.Errorf("page must reset to 0, got %d", state.Page)
	}
	if state.RowsPerPage != 25 {
		t.Errorf("expected 25 rows per page, got %d", state.RowsPerPage)
	}

	// Even a size change that keeps the page valid resets it.
	state.Page = 0
	state = ChangeRowsPerPage(25, state)
	if state.Page != 0 {
		t.Errorf("page must stay 0, got %d", state.Page)
	}
}

func TestChangeRowsPerPage_CoercesOntoAllowedSet(t *testing.T) {
	state := ChangeRowsPerPage(7, NewViewState())
	if state.RowsPerPage != 5 {
		t.Errorf("7 should coerce to 5, got %d", state.RowsPerPage)
	}
	state = ChangeRowsPerPage(9000, NewViewState())
	if state.RowsPerPage != 100 {
		t.Errorf("9000 should coerce to 100, got %d", state.RowsPerPage)
	}
}

func TestSetSearchTermAndSetFilter_ResetPage(t *testing.T) {
	state := NewViewState()
	state.Page = 3

	state = SetSearchTerm("dr", state)
	if state.Page != 0 || state.SearchTerm != "dr" {
		t.Errorf("got page=%d term=%q", state.Page, state.SearchTerm)
	}

	state.Page = 2
	state = SetFilter("status", "verified", state)
	if state.Page != 0 || state.Filters["status"] != "verified" {
		t.Errorf("got page=%d filters=%v", state.Page, state.Filters)
	}

	prev := state.Filters
	state = SetFilter("status", "", state)
	if _, ok := state.Filters["status"]; ok {
		t.Errorf("empty value must remove the filter: %v", state.Filters)
	}
	if _, ok := prev["status"]; !ok {
		t.Errorf("SetFilter must not mutate the previous filter map")
	}
}

func TestClampPage(t *testing.T) {
	state := NewViewState()
	state.RowsPerPage = 10
	state.Page = 2

	if got := ClampPage(state, 35); got.Page != 2 {
		t.Errorf("page 2 of 35 rows is valid, got %d", got.Page)
	}
	if got := ClampPage(state, 20); got.Page != 0 {
		t.Errorf("page 2 of 20 rows is empty, expected reset, got %d", got.Page)
	}
}
