package stats

import (
	"regexp"
	"slices"
	"strings"
)

// Wildcard requests every field except the ones whose value is zero.
const Wildcard = "*"

var filterSeparatorRe = regexp.MustCompile(`[,|;]`)

// Filter is the set of canonical field ids a caller asked for.
type Filter struct {
	wildcard bool
	fields   map[string]struct{}
}

// NewFilter builds a filter from field ids. Passing Wildcard among them turns
// on wildcard mode; explicit ids are still remembered.
func NewFilter(fields ...string) Filter {
	f := Filter{fields: make(map[string]struct{}, len(fields))}
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if field == Wildcard {
			f.wildcard = true
			continue
		}
		f.fields[field] = struct{}{}
	}
	return f
}

// AllFields returns the wildcard filter.
func AllFields() Filter {
	return NewFilter(Wildcard)
}

// ParseFilter parses a comma, pipe or semicolon separated list of field ids.
// An empty list means Wildcard.
func ParseFilter(raw string) Filter {
	if strings.TrimSpace(raw) == "" {
		return AllFields()
	}
	return NewFilter(filterSeparatorRe.Split(raw, -1)...)
}

// IsWildcard reports whether every field was requested.
func (f Filter) IsWildcard() bool {
	return f.wildcard
}

// Requested reports whether id was named explicitly.
func (f Filter) Requested(id string) bool {
	_, ok := f.fields[id]
	return ok
}

// Allows reports whether a record for id may be emitted.
func (f Filter) Allows(id string) bool {
	return f.wildcard || f.Requested(id)
}

// Fields returns the explicit ids, sorted.
func (f Filter) Fields() []string {
	out := make([]string, 0, len(f.fields))
	for field := range f.fields {
		out = append(out, field)
	}
	slices.Sort(out)
	return out
}

func (f Filter) String() string {
	fields := f.Fields()
	if f.wildcard {
		fields = append([]string{Wildcard}, fields...)
	}
	return strings.Join(fields, ",")
}
