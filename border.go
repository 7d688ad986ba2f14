package flexkit

import "github.com/grindlemire/flexkit/internal/canvas"

// BorderStyle represents different styles of box borders.
type BorderStyle = canvas.BorderStyle

const (
	BorderNone    = canvas.BorderNone
	BorderSingle  = canvas.BorderSingle
	BorderDouble  = canvas.BorderDouble
	BorderRounded = canvas.BorderRounded
	BorderThick   = canvas.BorderThick
)

// ParseBorder looks a border style up by name ("single", "rounded", ...).
func ParseBorder(name string) (BorderStyle, bool) {
	return canvas.ParseBorder(name)
}
