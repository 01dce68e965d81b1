package table

// ToggleSelectRow adds the id when absent and removes it when present. The
// relative order of the remaining ids is preserved, including removals at
// either end of the slice.
func ToggleSelectRow(id string, selected []string) []string {
	for i, s := range selected {
		if s == id {
			out := make([]string, 0, len(selected)-1)
			out = append(out, selected[:i]...)
			out = append(out, selected[i+1:]...)
			return out
		}
	}
	out := make([]string, 0, len(selected)+1)
	out = append(out, selected...)
	return append(out, id)
}

// ToggleSelectAll implements the header checkbox: when any row on the
// current page is unselected the page's ids are added to the selection;
// when every page row is already selected the page's ids are removed.
// Selection itself persists across pages, only the toggle is page-scoped.
func ToggleSelectAll(pageIDs, selected []string) []string {
	have := make(map[string]bool, len(selected))
	for _, id := range selected {
		have[id] = true
	}

	all := len(pageIDs) > 0
	for _, id := range pageIDs {
		if !have[id] {
			all = false
			break
		}
	}

	if all {
		onPage := make(map[string]bool, len(pageIDs))
		for _, id := range pageIDs {
			onPage[id] = true
		}
		out := make([]string, 0, len(selected))
		for _, id := range selected {
			if !onPage[id] {
				out = append(out, id)
			}
		}
		return out
	}

	out := make([]string, 0, len(selected)+len(pageIDs))
	out = append(out, selected...)
	for _, id := range pageIDs {
		if !have[id] {
			out = append(out, id)
			have[id] = true
		}
	}
	return out
}

// PruneSelection drops selected ids that are no longer present in the
// dataset, keeping the survivors in their existing order.
func PruneSelection(datasetIDs []string, state ViewState) ViewState {
	present := make(map[string]bool, len(datasetIDs))
	for _, id := range datasetIDs {
		present[id] = true
	}
	kept := make([]string, 0, len(state.Selected))
	for _, id := range state.Selected {
		if present[id] {
			kept = append(kept, id)
		}
	}
	state.Selected = kept
	return state
}

// ChangeRowsPerPage sets the page size (coerced onto RowsPerPageOptions)
// and resets the page to 0 unconditionally, even when the current page
// would still be in range. Resetting always keeps the transition
// predictable regardless of the old position.
func ChangeRowsPerPage(size int, state ViewState) ViewState {
	state.RowsPerPage = ClampRowsPerPage(size)
	state.Page = 0
	return state
}

// ChangePage moves to the given page; negative pages clamp to 0.
func ChangePage(page int, state ViewState) ViewState {
	if page < 0 {
		page = 0
	}
	state.Page = page
	return state
}

// SetSearchTerm replaces the search term and resets to the first page, since
// the filtered set the old page position referred to no longer exists.
func SetSearchTerm(term string, state ViewState) ViewState {
	state.SearchTerm = term
	state.Page = 0
	return state
}

// SetFilter sets (or, with an empty value, removes) one exact-match filter
// and resets to the first page. The filter map is copied, never mutated.
func SetFilter(field, value string, state ViewState) ViewState {
	filters := make(map[string]string, len(state.Filters)+1)
	for k, v := range state.Filters {
		filters[k] = v
	}
	if value == "" {
		delete(filters, field)
	} else {
		filters[field] = value
	}
	state.Filters = filters
	state.Page = 0
	return state
}

// ClampPage resets the page to 0 when the current page would start past the
// end of a filtered set of the given size.
func ClampPage(state ViewState, total int) ViewState {
	per := state.RowsPerPage
	if per <= 0 {
		per = DefaultRowsPerPage
	}
	if state.Page*per >= total {
		state.Page = 0
	}
	return state
}
