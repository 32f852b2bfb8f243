package catalog

import "github.com/leapstack-labs/convcat/pkg/core"

// ByTarget returns all entries coercing into t, in catalog order.
// The result is empty, not an error, when nothing matches.
func (c *Catalog) ByTarget(t core.TypeRef) []core.Entry {
	idx := c.byTarget[t]
	out := make([]core.Entry, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.entries[i].Clone())
	}
	return out
}

// ByMode returns all entries with mode m, in catalog order.
func (c *Catalog) ByMode(m core.Mode) []core.Entry {
	return c.Filter(Query{Mode: m})
}

// ByChannel returns all entries declared exactly on channel ch, in catalog order.
func (c *Catalog) ByChannel(ch core.Channel) []core.Entry {
	return c.Filter(Query{Channel: ch})
}

// Query is a conjunction of optional entry predicates. Zero fields match anything.
type Query struct {
	Target  core.TypeRef
	Input   core.TypeRef
	Mode    core.Mode
	Channel core.Channel
	// Covering makes a Native or Wire channel also match entries declared on Both.
	Covering bool
}

// Match reports whether e satisfies the query.
func (q Query) Match(e core.Entry) bool {
	if !q.Target.IsZero() && e.Target != q.Target {
		return false
	}
	if !q.Input.IsZero() && e.Input != q.Input {
		return false
	}
	if q.Mode != 0 && e.Mode != q.Mode {
		return false
	}
	if q.Channel != 0 {
		if q.Covering {
			if !e.Channel.Covers(q.Channel) {
				return false
			}
		} else if e.Channel != q.Channel {
			return false
		}
	}
	return true
}

// Filter returns the entries matching q, in catalog order.
func (c *Catalog) Filter(q Query) []core.Entry {
	out := []core.Entry{}
	for _, e := range c.entries {
		if q.Match(e) {
			out = append(out, e.Clone())
		}
	}
	return out
}

// GroupByTarget groups the catalog by target type in first-seen order.
func (c *Catalog) GroupByTarget() *Groups {
	return GroupEntries(c.entries)
}
