package catalog

import "github.com/leapstack-labs/convcat/pkg/core"

// Group is the run of entries sharing one target type.
type Group struct {
	Target  core.TypeRef
	Entries []core.Entry
}

// Groups is an ordered mapping from target type to entries. Order is the
// first-seen order of targets; entries keep their relative order.
type Groups struct {
	groups []Group
	index  map[core.TypeRef]int
}

// GroupEntries groups any entry sequence, e.g. a filtered subset, by target.
func GroupEntries(entries []core.Entry) *Groups {
	g := &Groups{index: make(map[core.TypeRef]int)}
	for _, e := range entries {
		pos, ok := g.index[e.Target]
		if !ok {
			pos = len(g.groups)
			g.index[e.Target] = pos
			g.groups = append(g.groups, Group{Target: e.Target})
		}
		g.groups[pos].Entries = append(g.groups[pos].Entries, e.Clone())
	}
	return g
}

// Len returns the number of groups.
func (g *Groups) Len() int {
	return len(g.groups)
}

// Keys returns the target types in group order.
func (g *Groups) Keys() []core.TypeRef {
	keys := make([]core.TypeRef, len(g.groups))
	for i, grp := range g.groups {
		keys[i] = grp.Target
	}
	return keys
}

// Get returns the entries of target t.
func (g *Groups) Get(t core.TypeRef) ([]core.Entry, bool) {
	pos, ok := g.index[t]
	if !ok {
		return nil, false
	}
	return cloneEntries(g.groups[pos].Entries), true
}

// Groups returns a copy of all groups in order.
func (g *Groups) Groups() []Group {
	out := make([]Group, len(g.groups))
	for i, grp := range g.groups {
		out[i] = Group{Target: grp.Target, Entries: cloneEntries(grp.Entries)}
	}
	return out
}

// Each calls fn for every group in order until fn returns false.
func (g *Groups) Each(fn func(Group) bool) {
	for _, grp := range g.groups {
		if !fn(Group{Target: grp.Target, Entries: cloneEntries(grp.Entries)}) {
			return
		}
	}
}

// Flatten concatenates all groups in order.
func (g *Groups) Flatten() []core.Entry {
	var out []core.Entry
	for _, grp := range g.groups {
		out = append(out, cloneEntries(grp.Entries)...)
	}
	return out
}
