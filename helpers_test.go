package flexkit

import (
	"errors"
	"testing"
)

// expectContractPanic runs fn and returns the *ContractError it panics with.
func expectContractPanic(t *testing.T, fn func()) *ContractError {
	t.Helper()
	var cerr *ContractError
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected a contract panic, got none")
			}
			err, ok := r.(error)
			if !ok || !errors.As(err, &cerr) {
				t.Fatalf("panic value = %#v, want *ContractError", r)
			}
		}()
		fn()
	}()
	return cerr
}

// texts returns the text of each element.
func texts(elems []*Element) []string {
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = e.Text()
	}
	return out
}

// layoutRoot composes nodes under a layer root and lays them out.
func layoutRoot(width, height int, nodes ...Node) *Element {
	root := ComposeRoot(ZStack(Build(nodes...)))
	Calculate(root, width, height)
	return root
}
