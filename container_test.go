package flexkit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWrapEach_OnePerProducedElement(t *testing.T) {
	content := func() Node { return Group(Label("a"), Label("b"), Label("c")) }

	type tc struct {
		node     Node
		wantKind Kind
	}

	tests := map[string]tc{
		"center":   {node: Center(content()), wantKind: KindCenter},
		"relative": {node: Relative(content()), wantKind: KindRelative},
		"inset":    {node: Inset(content(), EdgeAll(1)), wantKind: KindInset},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out := tt.node.Produce()
			if len(out) != 3 {
				t.Fatalf("len(Produce()) = %d, want 3", len(out))
			}
			for i, e := range out {
				if e.Kind() != tt.wantKind {
					t.Errorf("out[%d].Kind() = %v, want %v", i, e.Kind(), tt.wantKind)
				}
				if len(e.Children()) != 1 {
					t.Fatalf("out[%d] has %d children, want 1", i, len(e.Children()))
				}
			}
			var got []*Element
			for _, e := range out {
				got = append(got, e.Primary())
			}
			if diff := cmp.Diff([]string{"a", "b", "c"}, texts(got)); diff != "" {
				t.Errorf("wrapped texts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWrapEach_EmptyContent(t *testing.T) {
	if out := Inset(Group(), EdgeAll(1)).Produce(); len(out) != 0 {
		t.Errorf("Inset over empty group produced %d elements, want 0", len(out))
	}
	if out := Center(nil).Produce(); len(out) != 1 || out[0].Primary().Kind() != KindPlaceholder {
		t.Errorf("Center(nil) = %v, want one center around a placeholder", out)
	}
}

func TestCenter_Layout(t *testing.T) {
	type tc struct {
		opts       []PlaceOption
		wantCenter Rect
		wantBox    Rect
	}

	tests := map[string]tc{
		"default centers both axes": {
			wantCenter: NewRect(0, 0, 20, 10),
			wantBox:    NewRect(8, 4, 4, 2),
		},
		"x only": {
			opts:       []PlaceOption{CenterOn(CenterX)},
			wantCenter: NewRect(0, 0, 20, 10),
			wantBox:    NewRect(8, 0, 4, 2),
		},
		"none": {
			opts:       []PlaceOption{CenterOn(CenterNone)},
			wantCenter: NewRect(0, 0, 20, 10),
			wantBox:    NewRect(0, 0, 4, 2),
		},
		"minimum sizing shrinks to child": {
			opts:       []PlaceOption{WithSizing(SizingMinimumXY)},
			wantCenter: NewRect(0, 0, 4, 2),
			wantBox:    NewRect(0, 0, 4, 2),
		},
		"minimum x keeps full height": {
			opts:       []PlaceOption{WithSizing(SizingMinimumX)},
			wantCenter: NewRect(0, 0, 4, 10),
			wantBox:    NewRect(0, 4, 4, 2),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := layoutRoot(20, 10, Center(Box(WithName("box"), WithSize(4, 2)), tt.opts...))

			center := root.Children()[0]
			if center.Rect() != tt.wantCenter {
				t.Errorf("center.Rect = %+v, want %+v", center.Rect(), tt.wantCenter)
			}
			if got := root.Find("box").Rect(); got != tt.wantBox {
				t.Errorf("box.Rect = %+v, want %+v", got, tt.wantBox)
			}
		})
	}
}

func TestRelative_Layout(t *testing.T) {
	type tc struct {
		opts []PlaceOption
		want Rect
	}

	tests := map[string]tc{
		"default start start": {want: NewRect(0, 0, 4, 2)},
		"end center": {
			opts: []PlaceOption{AtX(PositionEnd), AtY(PositionCenter)},
			want: NewRect(16, 4, 4, 2),
		},
		"center end": {
			opts: []PlaceOption{AtX(PositionCenter), AtY(PositionEnd)},
			want: NewRect(8, 8, 4, 2),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := layoutRoot(20, 10, Relative(Box(WithName("box"), WithSize(4, 2)), tt.opts...))
			if got := root.Find("box").Rect(); got != tt.want {
				t.Errorf("box.Rect = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInset_Layout(t *testing.T) {
	root := layoutRoot(20, 10, Inset(Box(WithName("box")), EdgeTRBL(1, 2, 3, 4)))

	inset := root.Children()[0]
	if inset.Style().Padding != EdgeTRBL(1, 2, 3, 4) {
		t.Errorf("Padding = %+v, want {1 2 3 4}", inset.Style().Padding)
	}
	if got := root.Find("box").Rect(); got != NewRect(4, 1, 14, 6) {
		t.Errorf("box.Rect = %+v, want {4 1 14 6}", got)
	}
}
