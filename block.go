package flexkit

// Build resolves a block of sibling entries into one node:
//
//   - no entries: Empty
//   - one entry: that entry unchanged, or Empty when it is nil
//   - two or more: a Collection in declared order with nil entries dropped
//
// A nil entry is an absent optional, typically the result of When.
func Build(entries ...Node) Node {
	switch len(entries) {
	case 0:
		return Empty()
	case 1:
		if entries[0] == nil {
			return Empty()
		}
		return entries[0]
	default:
		return Group(entries...)
	}
}

// Collection is an ordered sequence of nodes whose output is the
// concatenation of its entries' output.
type Collection struct {
	entries []Node
}

// Group builds a Collection from nodes. Nil entries are dropped and nested
// collections are spliced in place, so a Collection never holds another.
func Group(nodes ...Node) Collection {
	c := Collection{entries: make([]Node, 0, len(nodes))}
	for _, n := range nodes {
		switch n := n.(type) {
		case nil:
		case Collection:
			c.entries = append(c.entries, n.entries...)
		default:
			c.entries = append(c.entries, n)
		}
	}
	return c
}

// ForEach builds a Collection with one entry per item, in item order.
func ForEach[T any](items []T, fn func(T) Node) Collection {
	nodes := make([]Node, 0, len(items))
	for _, item := range items {
		nodes = append(nodes, fn(item))
	}
	return Group(nodes...)
}

// Len returns the number of entries after flattening.
func (c Collection) Len() int {
	return len(c.entries)
}

// Produce concatenates every entry's output in order.
func (c Collection) Produce() []*Element {
	var out []*Element
	for _, n := range c.entries {
		out = append(out, n.Produce()...)
	}
	return out
}

// When returns fn's node if cond holds and nil (an absent entry) otherwise.
// fn is not called when cond is false.
func When(cond bool, fn func() Node) Node {
	if !cond {
		return nil
	}
	return fn()
}
