package canvas

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/flexkit/internal/layout"
)

// continuation marks the trailing cell of a wide rune.
const continuation rune = -1

// Canvas is a 2D grid of runes.
type Canvas struct {
	cells  []rune
	width  int
	height int
}

// New creates a canvas of the given dimensions filled with spaces.
func New(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)

	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = ' '
	}
	return &Canvas{cells: cells, width: width, height: height}
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in rows.
func (c *Canvas) Height() int {
	return c.height
}

// Bounds returns the canvas area as a Rect at the origin.
func (c *Canvas) Bounds() layout.Rect {
	return layout.NewRect(0, 0, c.width, c.height)
}

// Rune returns the rune at (x, y), or a space when out of bounds or
// covered by the wide rune to its left.
func (c *Canvas) Rune(x, y int) rune {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ' '
	}
	if r := c.cells[y*c.width+x]; r != continuation {
		return r
	}
	return ' '
}

// SetRune writes r at (x, y). Wide runes also claim the next cell; a wide
// rune that would not fit on the row is dropped.
func (c *Canvas) SetRune(x, y int, r rune) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	w := runewidth.RuneWidth(r)
	if w == 2 && x+1 >= c.width {
		return
	}
	c.cells[y*c.width+x] = r
	if w == 2 {
		c.cells[y*c.width+x+1] = continuation
	}
}

// SetString writes s starting at (x, y), clipped to clip and the canvas.
// Returns the number of columns consumed, clipped or not.
func (c *Canvas) SetString(x, y int, s string, clip layout.Rect) int {
	clip = clip.Intersect(c.Bounds())
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if clip.Contains(col, y) && clip.Contains(col+w-1, y) {
			c.SetRune(col, y, r)
		}
		col += w
	}
	return col - x
}

// Fill sets every cell in rect to r.
func (c *Canvas) Fill(rect layout.Rect, r rune) {
	rect = rect.Intersect(c.Bounds())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			c.SetRune(x, y, r)
		}
	}
}

// String renders the canvas with rows separated by newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		sb.WriteString(c.row(y))
		if y < c.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// StringTrimmed renders the canvas with trailing spaces removed from each
// line and trailing blank lines dropped.
func (c *Canvas) StringTrimmed() string {
	lines := make([]string, c.height)
	for y := range lines {
		lines[y] = strings.TrimRight(c.row(y), " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func (c *Canvas) row(y int) string {
	var sb strings.Builder
	for x := 0; x < c.width; x++ {
		r := c.cells[y*c.width+x]
		if r == continuation {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
