package canvas

import (
	"testing"

	"github.com/grindlemire/flexkit/internal/layout"
)

func TestNew_FilledWithSpaces(t *testing.T) {
	c := New(3, 2)

	if c.Width() != 3 || c.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", c.Width(), c.Height())
	}
	if got := c.String(); got != "   \n   " {
		t.Errorf("String() = %q, want two rows of spaces", got)
	}
	if got := c.StringTrimmed(); got != "" {
		t.Errorf("StringTrimmed() = %q, want empty", got)
	}
}

func TestNew_NegativeSize(t *testing.T) {
	c := New(-1, -5)
	if c.Width() != 0 || c.Height() != 0 {
		t.Errorf("size = %dx%d, want 0x0", c.Width(), c.Height())
	}
}

func TestSetString_Clipping(t *testing.T) {
	type tc struct {
		x, y     int
		s        string
		clip     layout.Rect
		want     string
		consumed int
	}

	tests := map[string]tc{
		"fits": {
			x: 1, y: 0, s: "hi",
			clip:     layout.NewRect(0, 0, 5, 1),
			want:     " hi",
			consumed: 2,
		},
		"clipped by rect": {
			x: 0, y: 0, s: "hello",
			clip:     layout.NewRect(0, 0, 3, 1),
			want:     "hel",
			consumed: 5,
		},
		"clipped by canvas": {
			x: 3, y: 0, s: "hello",
			clip:     layout.NewRect(0, 0, 100, 100),
			want:     "   he",
			consumed: 5,
		},
		"wide rune": {
			x: 0, y: 0, s: "世a",
			clip:     layout.NewRect(0, 0, 5, 1),
			want:     "世a",
			consumed: 3,
		},
		"wide rune straddling clip edge is dropped": {
			x: 0, y: 0, s: "a世",
			clip:     layout.NewRect(0, 0, 2, 1),
			want:     "a",
			consumed: 3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := New(5, 1)
			n := c.SetString(tt.x, tt.y, tt.s, tt.clip)
			if n != tt.consumed {
				t.Errorf("SetString() = %d, want %d", n, tt.consumed)
			}
			if got := c.StringTrimmed(); got != tt.want {
				t.Errorf("canvas = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFill(t *testing.T) {
	c := New(4, 3)
	c.Fill(layout.NewRect(1, 1, 10, 10), '#')

	want := "\n ###\n ###"
	if got := c.StringTrimmed(); got != want {
		t.Errorf("canvas = %q, want %q", got, want)
	}
	if c.Rune(0, 0) != ' ' || c.Rune(1, 1) != '#' {
		t.Error("Rune() does not reflect Fill")
	}
	if c.Rune(-1, 0) != ' ' {
		t.Error("Rune() out of bounds should be a space")
	}
}
