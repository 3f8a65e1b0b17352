package discovery

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter selects checks by name pattern
type Filter struct {
	pattern string
}

// NewFilter creates a new Filter. Patterns are case-insensitive globs such as
// "Post reactions*" or "*{likes,comments}"; a pattern without glob characters
// matches as a substring. An empty pattern selects everything.
func NewFilter(pattern string) *Filter {
	return &Filter{pattern: strings.ToLower(strings.TrimSpace(pattern))}
}

// Match reports whether a check name is selected
func (f *Filter) Match(name string) bool {
	if f.pattern == "" {
		return true
	}

	name = strings.ToLower(name)
	if !hasGlob(f.pattern) {
		return strings.Contains(name, f.pattern)
	}

	matched, err := doublestar.Match(f.pattern, name)
	if err != nil {
		// Malformed globs fall back to a plain substring match
		return strings.Contains(name, f.pattern)
	}
	return matched
}

// FilterByName returns the names selected by the filter, preserving order
func (f *Filter) FilterByName(names []string) []string {
	filtered := make([]string, 0, len(names))
	for _, name := range names {
		if f.Match(name) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}

// Validate reports a malformed glob pattern
func (f *Filter) Validate() error {
	if f.pattern == "" || !hasGlob(f.pattern) {
		return nil
	}
	if !doublestar.ValidatePattern(f.pattern) {
		return doublestar.ErrBadPattern
	}
	return nil
}

func hasGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
