package flexkit

// Branch identifies which side of a Conditional was taken.
type Branch uint8

const (
	BranchLeft  Branch = iota // the "then" side
	BranchRight               // the "else" side
)

func (b Branch) String() string {
	if b == BranchRight {
		return "right"
	}
	return "left"
}

// Conditional holds exactly one of two alternatives, fixed at construction.
type Conditional struct {
	node   Node
	branch Branch
}

// EitherLeft commits to the left alternative.
func EitherLeft(n Node) Conditional {
	return Conditional{node: n, branch: BranchLeft}
}

// EitherRight commits to the right alternative.
func EitherRight(n Node) Conditional {
	return Conditional{node: n, branch: BranchRight}
}

// If constructs only the branch cond selects. A nil otherwise with a false
// cond yields a right branch that produces a placeholder; use When for an
// if without else inside a block.
func If(cond bool, then, otherwise func() Node) Conditional {
	if cond {
		return EitherLeft(then())
	}
	if otherwise == nil {
		return EitherRight(nil)
	}
	return EitherRight(otherwise())
}

// Branch reports which alternative was taken.
func (c Conditional) Branch() Branch {
	return c.branch
}

// Produce delegates to the taken branch.
func (c Conditional) Produce() []*Element {
	return produceOrEmpty(c.node)
}
