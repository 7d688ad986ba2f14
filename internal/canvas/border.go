package canvas

import (
	"strings"

	"github.com/grindlemire/flexkit/internal/layout"
)

// BorderStyle represents different styles of box borders.
type BorderStyle int

const (
	// BorderNone indicates no border should be drawn.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses thick/heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
)

var borderNames = map[BorderStyle]string{
	BorderNone:    "none",
	BorderSingle:  "single",
	BorderDouble:  "double",
	BorderRounded: "rounded",
	BorderThick:   "thick",
}

// String returns the lower-case border name.
func (b BorderStyle) String() string {
	if name, ok := borderNames[b]; ok {
		return name
	}
	return "unknown"
}

// ParseBorder looks a border style up by name. Matching is case-insensitive.
func ParseBorder(name string) (BorderStyle, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for style, n := range borderNames {
		if n == name {
			return style, true
		}
	}
	return BorderNone, false
}

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderSingle:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case BorderThick:
		return BorderChars{'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'}
	default:
		return BorderChars{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
	}
}

// DrawBox draws a box border along the edge of rect.
// Rectangles smaller than 2x2 and BorderNone draw nothing. Edges that fall
// outside the canvas are skipped.
func DrawBox(c *Canvas, rect layout.Rect, border BorderStyle) {
	if rect.Width < 2 || rect.Height < 2 || border == BorderNone {
		return
	}

	chars := border.Chars()
	left := rect.X
	right := rect.Right() - 1
	top := rect.Y
	bottom := rect.Bottom() - 1

	c.SetRune(left, top, chars.TopLeft)
	c.SetRune(right, top, chars.TopRight)
	c.SetRune(left, bottom, chars.BottomLeft)
	c.SetRune(right, bottom, chars.BottomRight)

	for x := left + 1; x < right; x++ {
		c.SetRune(x, top, chars.Top)
		c.SetRune(x, bottom, chars.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		c.SetRune(left, y, chars.Left)
		c.SetRune(right, y, chars.Right)
	}
}
