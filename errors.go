package flexkit

import (
	"errors"
	"fmt"
)

// ErrContract is the sentinel every ContractError unwraps to.
var ErrContract = errors.New("flexkit: builder contract violated")

// ContractError describes a programmer error in a node tree, such as an
// overlay whose content produced two elements. Adapters panic with a
// *ContractError; TryCompose turns the panic back into an error.
type ContractError struct {
	Adapter string // adapter that detected the violation, e.g. "overlay"
	Role    string // child role, e.g. "content"
	Got     int    // number of elements the child produced
	Detail  string // set instead of Role/Got for parameter errors
}

func (e *ContractError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Adapter, e.Detail)
	}
	return fmt.Sprintf("%s: %s must produce exactly one element, got %d", e.Adapter, e.Role, e.Got)
}

// Unwrap returns ErrContract.
func (e *ContractError) Unwrap() error {
	return ErrContract
}

// produceOne enforces the exactly-one contract for adapter children.
func produceOne(adapter, role string, n Node) *Element {
	out := produceOrEmpty(n)
	if len(out) != 1 {
		panic(&ContractError{Adapter: adapter, Role: role, Got: len(out)})
	}
	return out[0]
}
