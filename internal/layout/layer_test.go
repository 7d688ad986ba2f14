package layout

import "testing"

func TestLayoutLayer_Placement(t *testing.T) {
	type tc struct {
		place Placement
		width Value
		want  Rect
	}

	tests := map[string]tc{
		"stretch fills content rect": {
			place: Placement{X: AlignStretch, Y: AlignStretch},
			width: Auto(),
			want:  NewRect(0, 0, 20, 10),
		},
		"centered shrinks to intrinsic": {
			place: Placement{X: AlignCenter, Y: AlignCenter},
			width: Auto(),
			want:  NewRect(8, 4, 4, 2),
		},
		"end x start y with fixed width": {
			place: Placement{X: AlignEnd, Y: AlignStart},
			width: Fixed(6),
			want:  NewRect(14, 0, 6, 2),
		},
		"fixed width stretch y": {
			place: Placement{X: AlignStart, Y: AlignStretch},
			width: Fixed(6),
			want:  NewRect(0, 0, 6, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := newTestNode(styled(func(s *Style) {
				s.Arrange = ArrangeLayer
				s.Place = tt.place
			}))
			child := newTestNode(styled(func(s *Style) {
				s.Width = tt.width
			}))
			child.SetIntrinsicSize(4, 2)
			root.AddChild(child)
			Calculate(root, 20, 10)

			if child.layout.Rect != tt.want {
				t.Errorf("child.Rect = %+v, want %+v", child.layout.Rect, tt.want)
			}
		})
	}
}

func TestLayoutLayer_ChildrenShareContentRect(t *testing.T) {
	root := newTestNode(styled(func(s *Style) {
		s.Arrange = ArrangeLayer
		s.Padding = EdgeSymmetric(1, 2)
	}))
	back := newTestNode(DefaultStyle())
	front := newTestNode(DefaultStyle())
	root.AddChild(back, front)
	Calculate(root, 20, 10)

	want := NewRect(2, 1, 16, 8)
	if back.layout.Rect != want {
		t.Errorf("back.Rect = %+v, want %+v", back.layout.Rect, want)
	}
	if front.layout.Rect != want {
		t.Errorf("front.Rect = %+v, want %+v", front.layout.Rect, want)
	}
}
