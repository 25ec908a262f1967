// Package filter holds the search/filter/sort/pagination selection that
// drives catalog queries. The Store is the only mutation path; every
// filter transition resets the page to 1 because changing the result
// set invalidates the current page position.
package filter

// Defaults for a fresh selection
const (
	DefaultOrdering = "-added"
	DefaultPageSize = 12
)

// State is the current catalog selection. Zero values mean "no filter"
// for every field except Page and PageSize.
type State struct {
	Search    string // Free-text query; empty = no text filter
	Genres    []int  // Genre IDs; order irrelevant, no duplicates
	Platforms []int  // Parent platform IDs
	Tags      []int  // Tag IDs
	Dates     string // Inclusive year range "start,end"; empty = no date filter
	Rating    int    // Minimum community rating 0-5; 0 = unrestricted
	Ordering  string // One of Orderings(); "-" prefix = descending
	Page      int    // 1-based page number
	PageSize  int    // Results per page
}

// Defaults returns the selection used at application start and after a
// reset.
func Defaults() State {
	return State{
		Ordering: DefaultOrdering,
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// Option is a fixed choice presented in the filter panel.
type Option struct {
	Value string
	Label string
}

// Orderings returns the sort keys the catalog accepts.
func Orderings() []Option {
	return []Option{
		{Value: "-added", Label: "Recently Added"},
		{Value: "-released", Label: "Recently Released"},
		{Value: "-metacritic", Label: "Metacritic Rating"},
		{Value: "-rating", Label: "User Rating"},
		{Value: "name", Label: "Name (A-Z)"},
		{Value: "-name", Label: "Name (Z-A)"},
	}
}

// YearRanges returns the release-year presets, newest first.
func YearRanges() []Option {
	return []Option{
		{Value: "2023,2025", Label: "Recent (2023-2025)"},
		{Value: "2020,2022", Label: "2020-2022"},
		{Value: "2015,2019", Label: "2015-2019"},
		{Value: "2010,2014", Label: "2010-2014"},
		{Value: "2000,2009", Label: "2000-2009"},
		{Value: "1990,1999", Label: "1990-1999"},
		{Value: "1970,1989", Label: "Retro (Pre-1990)"},
	}
}
