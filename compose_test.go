package flexkit

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompose(t *testing.T) {
	type tc struct {
		entries []Node
		want    []string
	}

	tests := map[string]tc{
		"no entries yields placeholder": {
			want: []string{"placeholder"},
		},
		"entries in order": {
			entries: []Node{Label("a"), Box(), Label("b")},
			want:    []string{"text", "box", "text"},
		},
		"absent optional dropped": {
			entries: []Node{Label("a"), When(false, func() Node { return Box() })},
			want:    []string{"text"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var got []string
			for _, e := range Compose(tt.entries...) {
				got = append(got, e.Kind().String())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compose kinds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComposeRoot(t *testing.T) {
	single := ComposeRoot(VStack(Label("a")))
	if single.Kind() != KindStack {
		t.Errorf("single root Kind() = %v, want the stack itself", single.Kind())
	}

	multi := ComposeRoot(Label("a"), Label("b"))
	if multi.Kind() != KindWrapper {
		t.Errorf("multi root Kind() = %v, want wrapper", multi.Kind())
	}
	if diff := cmp.Diff([]string{"a", "b"}, texts(multi.Children())); diff != "" {
		t.Errorf("wrapper children mismatch (-want +got):\n%s", diff)
	}
	for _, child := range multi.Children() {
		if child.Parent() != multi {
			t.Error("wrapper child not parented to the wrapper")
		}
	}
}

func TestTryCompose(t *testing.T) {
	type tc struct {
		entries   []Node
		wantErr   bool
		wantInErr string
	}

	tests := map[string]tc{
		"valid tree": {
			entries: []Node{Overlay(Label("a"), Label("b"))},
		},
		"empty background side": {
			entries:   []Node{Background(Label("a"), Group())},
			wantErr:   true,
			wantInErr: "background: background must produce exactly one element, got 0",
		},
		"nested violation": {
			entries:   []Node{VStack(Build(Label("ok"), Overlay(Group(Label("a"), Label("b")), Label("c"))))},
			wantErr:   true,
			wantInErr: "overlay: content must produce exactly one element, got 2",
		},
		"invalid ratio built lazily": {
			entries: []Node{NodeFunc(func() []*Element {
				return AspectRatio(Box(), -2).Produce()
			})},
			wantErr:   true,
			wantInErr: "ratio must be positive",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root, err := TryCompose(tt.entries...)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("TryCompose() error = %v", err)
				}
				if root == nil {
					t.Fatal("TryCompose() returned a nil root")
				}
				return
			}
			if err == nil {
				t.Fatal("TryCompose() expected an error")
			}
			if root != nil {
				t.Error("TryCompose() returned a root alongside an error")
			}
			if !errors.Is(err, ErrContract) {
				t.Errorf("errors.Is(err, ErrContract) = false for %v", err)
			}
			var cerr *ContractError
			if !errors.As(err, &cerr) {
				t.Errorf("errors.As(err, *ContractError) = false for %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantInErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantInErr)
			}
		})
	}
}

func TestTryCompose_OtherPanicsPropagate(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("recovered %v, want boom", r)
		}
	}()
	_, _ = TryCompose(NodeFunc(func() []*Element { panic("boom") }))
	t.Error("TryCompose swallowed a non-contract panic")
}
