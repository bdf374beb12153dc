package domain

import (
	"fmt"
	"strings"
)

// Priority classifies how urgent a task is. It carries no sort weight.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"

	DefaultPriority = PriorityMedium
)

// Priorities lists every priority in display order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ParsePriority maps user input to a Priority. Empty input yields the default.
func ParsePriority(s string) (Priority, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultPriority, nil
	}
	p := Priority(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
	return p, nil
}

// Next returns the priority following p, wrapping around after low.
func (p Priority) Next() Priority {
	for i, candidate := range Priorities {
		if candidate == p {
			return Priorities[(i+1)%len(Priorities)]
		}
	}
	return DefaultPriority
}

// Filter restricts the visible tasks to a single priority, or none for FilterAll.
type Filter string

const (
	FilterAll    Filter = "all"
	FilterHigh   Filter = Filter(PriorityHigh)
	FilterMedium Filter = Filter(PriorityMedium)
	FilterLow    Filter = Filter(PriorityLow)
)

// Filters lists every filter value in selection order.
var Filters = []Filter{FilterAll, FilterHigh, FilterMedium, FilterLow}

func (f Filter) Valid() bool {
	return f == FilterAll || Priority(f).Valid()
}

// ParseFilter maps user input to a Filter. Empty input yields FilterAll.
func ParseFilter(s string) (Filter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FilterAll, nil
	}
	f := Filter(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
	}
	return f, nil
}

// Matches reports whether a task with priority p passes the filter.
func (f Filter) Matches(p Priority) bool {
	if f == FilterAll {
		return true
	}
	return Priority(f) == p
}
