package ssa

import (
	"fmt"
	"sort"
)

// Grouping binds a validated set of named component groups to the
// decomposition they select from.
type Grouping struct {
	d      *Decomposition
	names  []string
	groups map[string][]int
}

// Group validates a named grouping of eigentriple indices against the
// decomposition. Indices are 1-based ranks into the ordered eigentriples and
// must lie in [1, Len()]. Groups may overlap or repeat indices; no residual
// group is synthesized for unselected components. Validation runs in
// lexicographic group-name order, so the reported failure is deterministic.
func (d *Decomposition) Group(groups map[string][]int) (*Grouping, error) {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	validated := make(map[string][]int, len(groups))
	for _, name := range names {
		indices := groups[name]
		for _, idx := range indices {
			if idx < 1 || idx > len(d.triples) {
				return nil, fmt.Errorf("group %q: index %d not in [1, %d]: %w", name, idx, len(d.triples), ErrIndexOutOfRange)
			}
		}
		copied := make([]int, len(indices))
		copy(copied, indices)
		validated[name] = copied
	}

	return &Grouping{d: d, names: names, groups: validated}, nil
}

// Names returns the group names in lexicographic order.
func (g *Grouping) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Indices returns a copy of the 1-based eigentriple indices of the named
// group, or nil if the group does not exist.
func (g *Grouping) Indices(name string) []int {
	indices, ok := g.groups[name]
	if !ok {
		return nil
	}
	out := make([]int, len(indices))
	copy(out, indices)
	return out
}
