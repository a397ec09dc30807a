package models

// Filter is the category constraining which projects are displayed
type Filter string

// Recognized filters
const (
	FilterWeb    Filter = TypeWeb
	FilterMobile Filter = TypeMobile
	FilterAll    Filter = "all"
)

// DefaultFilter is active until a fragment or control selects another
const DefaultFilter = FilterWeb

// Filters lists the recognized values in control order
var Filters = []Filter{FilterWeb, FilterMobile, FilterAll}

// ParseFilter reports whether s is exactly one of the recognized filters
func ParseFilter(s string) (Filter, bool) {
	for _, f := range Filters {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// Matches reports whether the project belongs to the filter's category.
// Comparison is exact and case-sensitive.
func (f Filter) Matches(p Project) bool {
	return f == FilterAll || p.Type == string(f)
}
