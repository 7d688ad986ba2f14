package flexkit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestApply_PreservesOrderAndCount(t *testing.T) {
	upper := func(e *Element) *Element {
		c := e.Clone()
		c.text = c.text + "!"
		return c
	}

	type tc struct {
		node Node
		want []string
	}

	tests := map[string]tc{
		"single":   {node: Label("a"), want: []string{"a!"}},
		"group":    {node: Group(Label("a"), Label("b"), Label("c")), want: []string{"a!", "b!", "c!"}},
		"empty":    {node: Group(), want: []string{}},
		"nil node": {node: nil, want: []string{"!"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := texts(Apply(tt.node, upper).Produce())
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Apply output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChain_AppliesLeftToRight(t *testing.T) {
	var order []string
	mark := func(tag string) Transform {
		return func(e *Element) *Element {
			order = append(order, tag)
			return e
		}
	}

	Apply(Label("x"), Chain(mark("first"), mark("second"), mark("third"))).Produce()

	if diff := cmp.Diff([]string{"first", "second", "third"}, order); diff != "" {
		t.Errorf("Chain order mismatch (-want +got):\n%s", diff)
	}

	e := Apply(Box(), Chain(Styled(WithWidth(3)), Styled(WithWidth(5)))).Produce()[0]
	if e.Style().Width != Fixed(5) {
		t.Errorf("Width = %+v, want the later transform to win with Fixed(5)", e.Style().Width)
	}
}

func TestChain_Empty(t *testing.T) {
	e := Text("x")
	if got := Chain()(e); got != e {
		t.Error("empty Chain should return its input")
	}
}

func TestStyled_DoesNotMutateInput(t *testing.T) {
	orig := Text("hello", WithWidth(2))

	out := Apply(Leaf(orig), Styled(WithWidth(9), WithBorder(BorderSingle))).Produce()

	if len(out) != 1 {
		t.Fatalf("len(Produce()) = %d, want 1", len(out))
	}
	if out[0] == orig {
		t.Fatal("Styled returned the input element")
	}
	if orig.Style().Width != Fixed(2) || orig.Border() != BorderNone {
		t.Errorf("original changed: width=%+v border=%v", orig.Style().Width, orig.Border())
	}
	if out[0].Style().Width != Fixed(9) || out[0].Border() != BorderSingle {
		t.Errorf("styled copy: width=%+v border=%v, want 9 and single", out[0].Style().Width, out[0].Border())
	}
	if out[0].Text() != "hello" {
		t.Errorf("Text() = %q, want hello", out[0].Text())
	}
}

func TestApply_InsideContainer(t *testing.T) {
	root := ComposeRoot(HStack(Apply(Group(Label("a"), Label("b")), Styled(WithFlexGrow(1)))))
	Calculate(root, 10, 1)

	want := []Rect{NewRect(0, 0, 5, 1), NewRect(5, 0, 5, 1)}
	for i, child := range root.Children() {
		if child.Rect() != want[i] {
			t.Errorf("child %d Rect = %+v, want %+v", i, child.Rect(), want[i])
		}
	}
}
