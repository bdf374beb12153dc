package board

import (
	"fmt"

	"tasklist/domain"
)

// FilterState holds the currently selected priority filter. The zero value
// selects domain.FilterAll.
type FilterState struct {
	value domain.Filter
}

func (f *FilterState) Value() domain.Filter {
	if f.value == "" {
		return domain.FilterAll
	}
	return f.value
}

// Select replaces the current filter. Values outside the enum are rejected and
// leave the selection unchanged.
func (f *FilterState) Select(value domain.Filter) error {
	if !value.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidFilter, value)
	}
	f.value = value
	return nil
}

// Next advances to the following filter in domain.Filters order and returns it.
func (f *FilterState) Next() domain.Filter {
	cur := f.Value()
	for i, v := range domain.Filters {
		if v == cur {
			f.value = domain.Filters[(i+1)%len(domain.Filters)]
			return f.value
		}
	}
	f.value = domain.FilterAll
	return f.value
}
