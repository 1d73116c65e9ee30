// Package profiles builds enriched, JSON-ready views of genealogical
// entities. Profile output is transient: nested map[string]any trees that
// resolve handle references into display data and attach derived fields
// (localized types and dates, age and marriage spans, citation ratings,
// event participants). Missing or dangling handles degrade to empty
// profiles instead of failing the whole request.
package profiles

// Expansion option names recognized by the profile builders.
const (
	OptAll          = "all"
	OptEvents       = "events"
	OptAge          = "age"
	OptSpan         = "span"
	OptRatings      = "ratings"
	OptFamilies     = "families"
	OptParticipants = "participants"
)

// Options is an immutable set of expansion option names. "all" implies
// every other option. Profile builders never forward the incoming set to
// sub-profiles; each constructs the exact subset that applies.
type Options struct {
	names map[string]bool
}

// NewOptions builds an option set from the given names.
func NewOptions(names ...string) Options {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return Options{names: set}
}

// Has reports whether the option was requested, either by name or via
// "all".
func (o Options) Has(name string) bool {
	return o.names[OptAll] || o.names[name]
}

// With returns a copy of the set with the given names added.
func (o Options) With(names ...string) Options {
	set := make(map[string]bool, len(o.names)+len(names))
	for n := range o.names {
		set[n] = true
	}
	for _, n := range names {
		set[n] = true
	}
	return Options{names: set}
}

// Names returns the requested option names, unordered.
func (o Options) Names() []string {
	out := make([]string, 0, len(o.names))
	for n := range o.names {
		out = append(out, n)
	}
	return out
}
