package flexkit

// Transform post-processes one produced element. Transforms must not mutate
// their input; Styled shows the pattern of cloning first.
type Transform func(*Element) *Element

// Decorated applies a Transform to everything its node produces.
type Decorated struct {
	node      Node
	transform Transform
}

// Apply wraps n so every produced element passes through t.
func Apply(n Node, t Transform) Decorated {
	return Decorated{node: n, transform: t}
}

// Produce maps the transform over the inner node's output, preserving order
// and count.
func (d Decorated) Produce() []*Element {
	in := produceOrEmpty(d.node)
	out := make([]*Element, len(in))
	for i, e := range in {
		out[i] = d.transform(e)
	}
	return out
}

// Chain composes transforms, applying them left to right.
func Chain(ts ...Transform) Transform {
	return func(e *Element) *Element {
		for _, t := range ts {
			e = t(e)
		}
		return e
	}
}

// Styled returns a Transform that clones each element and applies opts to
// the clone.
func Styled(opts ...Option) Transform {
	return func(e *Element) *Element {
		return e.Clone(opts...)
	}
}
