package domain

import (
	"sort"
	"strings"
)

// FilterAll is the wildcard value accepted by every filter dimension.
const FilterAll = "all"

// SortOption selects the list ordering.
type SortOption string

const (
	SortDateAsc  SortOption = "date-asc"
	SortDateDesc SortOption = "date-desc"
	SortPriority SortOption = "priority"
	SortTitle    SortOption = "title"
)

// ActivityFilter narrows a collection. Empty or "all" values match
// everything; SearchTerm is a case-insensitive substring match over title
// and description.
type ActivityFilter struct {
	Status     string `json:"status,omitempty"`
	Category   string `json:"category,omitempty"`
	Priority   string `json:"priority,omitempty"`
	SearchTerm string `json:"searchTerm,omitempty"`
}

func wildcard(v string) bool {
	return v == "" || v == FilterAll
}

// FilterActivities returns the activities matching every set dimension of
// the filter.
func FilterActivities(activities []Activity, f ActivityFilter) []Activity {
	term := strings.ToLower(f.SearchTerm)
	var out []Activity
	for _, a := range activities {
		if !wildcard(f.Status) && string(a.Status) != f.Status {
			continue
		}
		if !wildcard(f.Category) && string(a.Category) != f.Category {
			continue
		}
		if !wildcard(f.Priority) && string(a.Priority) != f.Priority {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(a.Title), term) &&
			!strings.Contains(strings.ToLower(a.Description), term) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// SortActivities returns a sorted copy of the collection. The sort is
// stable so equal entries keep their relative order.
func SortActivities(activities []Activity, by SortOption) []Activity {
	out := make([]Activity, len(activities))
	copy(out, activities)

	switch by {
	case SortDateAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.Before(out[j].Date)
		})
	case SortDateDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[j].Date.Before(out[i].Date)
		})
	case SortPriority:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Priority.Rank() > out[j].Priority.Rank()
		})
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	}
	return out
}
