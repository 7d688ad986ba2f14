package flexkit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStack_Produce(t *testing.T) {
	type tc struct {
		node          StackNode
		wantDirection Direction
		wantGap       int
		wantJustify   Justify
		wantAlign     Align
	}

	content := func() Node { return Build(Label("x"), Label("y"), Label("z")) }

	tests := map[string]tc{
		"vstack defaults": {
			node:          VStack(content()),
			wantDirection: Column,
			wantGap:       0,
			wantJustify:   JustifyStart,
			wantAlign:     AlignStretch,
		},
		"hstack defaults": {
			node:          HStack(content()),
			wantDirection: Row,
			wantJustify:   JustifyStart,
			wantAlign:     AlignStretch,
		},
		"vstack with options": {
			node:          VStack(content(), WithSpacing(2), WithJustify(JustifySpaceBetween), WithAlign(AlignCenter)),
			wantDirection: Column,
			wantGap:       2,
			wantJustify:   JustifySpaceBetween,
			wantAlign:     AlignCenter,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out := tt.node.Produce()
			if len(out) != 1 {
				t.Fatalf("len(Produce()) = %d, want 1", len(out))
			}
			stack := out[0]
			if stack.Kind() != KindStack {
				t.Errorf("Kind() = %v, want stack", stack.Kind())
			}

			style := stack.Style()
			if style.Direction != tt.wantDirection {
				t.Errorf("Direction = %v, want %v", style.Direction, tt.wantDirection)
			}
			if style.Gap != tt.wantGap {
				t.Errorf("Gap = %d, want %d", style.Gap, tt.wantGap)
			}
			if style.JustifyContent != tt.wantJustify {
				t.Errorf("JustifyContent = %v, want %v", style.JustifyContent, tt.wantJustify)
			}
			if style.AlignItems != tt.wantAlign {
				t.Errorf("AlignItems = %v, want %v", style.AlignItems, tt.wantAlign)
			}

			want := append(append(Label("x").Produce(), Label("y").Produce()...), Label("z").Produce()...)
			if diff := cmp.Diff(Snapshots(want), Snapshots(stack.Children())); diff != "" {
				t.Errorf("children mismatch (-want +got):\n%s", diff)
			}
			for _, child := range stack.Children() {
				if child.Parent() != stack {
					t.Error("child parent is not the stack element")
				}
			}
		})
	}
}

func TestStack_EmptyContentHoldsPlaceholder(t *testing.T) {
	for name, n := range map[string]Node{
		"empty block": VStack(Build()),
		"nil content": HStack(nil),
	} {
		t.Run(name, func(t *testing.T) {
			children := n.Produce()[0].Children()
			if len(children) != 1 || children[0].Kind() != KindPlaceholder {
				t.Errorf("children = %v, want one placeholder", children)
			}
		})
	}
}

func TestStack_Layout(t *testing.T) {
	root := ComposeRoot(HStack(Build(
		Label("a", WithName("a")),
		HSpacer(1),
		Label("b", WithName("b")),
	)))
	Calculate(root, 10, 1)

	if got := root.Find("a").Rect(); got != NewRect(0, 0, 1, 1) {
		t.Errorf("a.Rect = %+v, want {0 0 1 1}", got)
	}
	if got := root.Find("b").Rect(); got != NewRect(9, 0, 1, 1) {
		t.Errorf("b.Rect = %+v, want {9 0 1 1}", got)
	}
}

func TestLayer_Produce(t *testing.T) {
	type tc struct {
		node     LayerNode
		wantKind Kind
	}

	tests := map[string]tc{
		"zstack": {node: ZStack(Build(Box(), Label("top"))), wantKind: KindLayer},
		"wrap":   {node: Wrap(Build(Box(), Label("top"))), wantKind: KindWrapper},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out := tt.node.Produce()
			if len(out) != 1 {
				t.Fatalf("len(Produce()) = %d, want 1", len(out))
			}
			e := out[0]
			if e.Kind() != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", e.Kind(), tt.wantKind)
			}
			if e.Style().Arrange != ArrangeLayer {
				t.Errorf("Arrange = %v, want layer", e.Style().Arrange)
			}
			if len(e.Children()) != 2 || e.Children()[1].Text() != "top" {
				t.Errorf("children = %v, want [box top]", Snapshots(e.Children()))
			}
		})
	}
}

func TestSpacer_Produce(t *testing.T) {
	type tc struct {
		node    SpacerNode
		wantMin [2]Value
	}

	tests := map[string]tc{
		"horizontal": {node: HSpacer(3), wantMin: [2]Value{Fixed(3), Fixed(0)}},
		"vertical":   {node: VSpacer(2), wantMin: [2]Value{Fixed(0), Fixed(2)}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out := tt.node.Produce()
			if len(out) != 1 || out[0].Kind() != KindSpacer {
				t.Fatalf("Produce() = %v, want one spacer", out)
			}
			style := out[0].Style()
			if style.FlexGrow != 1 || style.FlexShrink != 0 {
				t.Errorf("grow/shrink = %v/%v, want 1/0", style.FlexGrow, style.FlexShrink)
			}
			if got := [2]Value{style.MinWidth, style.MinHeight}; got != tt.wantMin {
				t.Errorf("min size = %v, want %v", got, tt.wantMin)
			}
		})
	}
}
