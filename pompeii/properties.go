package pompeii

import (
	"strings"

	"golang.org/x/exp/slices"
)

// PropertySet is an immutable, ordered list of capability names, either
// extensions or layers. Order is source order and duplicates are kept
// unless Dedup is called. The zero value is the empty set.
type PropertySet struct {
	names []string
}

// NewPropertySet copies names into a new set.
func NewPropertySet(names ...string) PropertySet {
	if len(names) == 0 {
		return PropertySet{}
	}
	return PropertySet{names: slices.Clone(names)}
}

// ConcatPropertySets joins sources in order into one allocation.
func ConcatPropertySets(sources ...PropertySet) PropertySet {
	total := 0
	for _, s := range sources {
		total += s.Count()
	}
	if total == 0 {
		return PropertySet{}
	}

	names := make([]string, 0, total)
	for _, s := range sources {
		names = append(names, s.names...)
	}
	return PropertySet{names: names}
}

func (p PropertySet) Count() int {
	return len(p.names)
}

func (p PropertySet) Empty() bool {
	return len(p.names) == 0
}

// Names returns a copy of the names, nil for an empty set.
func (p PropertySet) Names() []string {
	return slices.Clone(p.names)
}

func (p PropertySet) At(i int) string {
	return p.names[i]
}

func (p PropertySet) Contains(name string) bool {
	return slices.Index(p.names, name) >= 0
}

// Dedup returns a set without repeated names, keeping first occurrences.
func (p PropertySet) Dedup() PropertySet {
	if p.Empty() {
		return p
	}
	seen := make(map[string]struct{}, len(p.names))
	names := make([]string, 0, len(p.names))
	for _, n := range p.names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	return PropertySet{names: names}
}

func (p PropertySet) String() string {
	return "[" + strings.Join(p.names, " ") + "]"
}
