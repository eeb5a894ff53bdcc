// Package thinker keeps the ordered set of entities that run once per tic.
package thinker

// Thinker is anything ticked by the list.
type Thinker interface {
	// Think performs one simulation tic.
	Think()
}

// Reclaimer is implemented by thinkers that release resources once they
// have been dropped from the list.
type Reclaimer interface {
	Reclaim()
}

// Node is a thinker's membership record.
type Node struct {
	thinker Thinker
	removed bool
}

// Removed reports whether the node has been scheduled for removal.
// A removed thinker is never run again.
func (n *Node) Removed() bool {
	return n.removed
}

// Thinker returns the entity held by the node.
func (n *Node) Thinker() Thinker {
	return n.thinker
}

// List runs thinkers in insertion order. Removal during a sweep only
// tombstones the node; the slice is compacted when the sweep ends so
// iteration never observes a reclaimed entity.
type List struct {
	nodes    []*Node
	live     int
	sweeping bool
}

// NewList creates an empty list.
func NewList() *List {
	return &List{nodes: make([]*Node, 0, 256)}
}

// Add appends t. Thinkers added during a sweep run later in the same sweep.
func (l *List) Add(t Thinker) *Node {
	n := &Node{thinker: t}
	l.nodes = append(l.nodes, n)
	l.live++
	return n
}

// Remove schedules n for removal. Removing twice is a no-op.
func (l *List) Remove(n *Node) {
	if n == nil || n.removed {
		return
	}
	n.removed = true
	l.live--

	if !l.sweeping {
		l.compact()
	}
}

// Run ticks every live thinker once.
func (l *List) Run() {
	l.sweeping = true
	// len is re-read each iteration: spawns during the sweep must run too
	for i := 0; i < len(l.nodes); i++ {
		n := l.nodes[i]
		if n.removed {
			continue
		}
		n.thinker.Think()
	}
	l.sweeping = false
	l.compact()
}

// Each calls fn for every live thinker in order until fn returns false.
func (l *List) Each(fn func(Thinker) bool) {
	for _, n := range l.nodes {
		if n.removed {
			continue
		}
		if !fn(n.thinker) {
			return
		}
	}
}

// Count returns the number of live thinkers.
func (l *List) Count() int {
	return l.live
}

// Clear drops every thinker without reclaiming them, used on level teardown.
func (l *List) Clear() {
	for _, n := range l.nodes {
		n.removed = true
	}
	l.nodes = l.nodes[:0]
	l.live = 0
}

func (l *List) compact() {
	kept := l.nodes[:0]
	for _, n := range l.nodes {
		if !n.removed {
			kept = append(kept, n)
			continue
		}
		if r, ok := n.thinker.(Reclaimer); ok {
			r.Reclaim()
		}
	}
	for i := len(kept); i < len(l.nodes); i++ {
		l.nodes[i] = nil
	}
	l.nodes = kept
}
