package flexkit

import (
	"errors"
	"fmt"

	"github.com/grindlemire/flexkit/internal/debug"
)

// Compose resolves entries as a block and produces the concrete elements.
// It is the entry point a hosting view calls once per layout pass.
func Compose(entries ...Node) []*Element {
	out := Build(entries...).Produce()
	debug.Logger().Debug("composed layout tree", "entries", len(entries), "elements", len(out))
	return out
}

// ComposeRoot is Compose for hosts that need a single root: one produced
// element is returned as is, several are wrapped in a wrapper element.
func ComposeRoot(entries ...Node) *Element {
	out := Compose(entries...)
	if len(out) == 1 {
		return out[0]
	}
	root := newElement(KindWrapper, layerStyle())
	root.addChild(out...)
	return root
}

// TryCompose is ComposeRoot for trees built from untrusted input. A
// contract violation is returned as an error wrapping ErrContract instead of
// panicking; any other panic propagates.
func TryCompose(entries ...Node) (root *Element, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var cerr *ContractError
		if e, ok := r.(error); ok && errors.As(e, &cerr) {
			debug.Logger().Debug("layout contract violated", "error", cerr)
			root, err = nil, fmt.Errorf("composing layout: %w", cerr)
			return
		}
		panic(r)
	}()
	return ComposeRoot(entries...), nil
}
