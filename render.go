package flexkit

import "github.com/grindlemire/flexkit/internal/canvas"

// Render lays root out in a width x height area and draws borders and text
// back to front into a character grid. Trailing blanks are trimmed.
// It is a debugging aid for inspecting layouts, not a view system.
func Render(root *Element, width, height int) string {
	Calculate(root, width, height)

	c := canvas.New(width, height)
	paint(c, root, c.Bounds())
	return c.StringTrimmed()
}

// paint draws e and its subtree, clipping content to clip.
func paint(c *canvas.Canvas, e *Element, clip Rect) {
	rect := e.Rect()
	if e.border != BorderNone {
		canvas.DrawBox(c, rect, e.border)
	}

	content := e.ContentRect().Intersect(clip)
	for i, line := range e.lines() {
		y := e.ContentRect().Y + i
		if y >= content.Bottom() {
			break
		}
		c.SetString(e.ContentRect().X, y, line, content)
	}

	for _, child := range e.paintOrder() {
		paint(c, child, clip)
	}
}
