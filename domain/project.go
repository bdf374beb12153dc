package domain

import (
	"cmp"
	"slices"
)

// Project returns the tasks visible under filter, ordered for display:
// open tasks before completed ones, newest first within each group.
// The input slice is left untouched.
func Project(tasks []Task, filter Filter) []Task {
	visible := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if filter.Matches(t.Priority) {
			visible = append(visible, t)
		}
	}
	slices.SortStableFunc(visible, compareForDisplay)
	return visible
}

func compareForDisplay(a, b Task) int {
	if a.Done != b.Done {
		if !a.Done {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(b.CreatedAt, a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
