package flexkit

// Kind identifies the engine category of an Element.
type Kind uint8

const (
	KindBox         Kind = iota // plain leaf or user container
	KindText                    // leaf with text content
	KindPlaceholder             // produced for empty content
	KindStack                   // flex arrangement along one axis
	KindLayer                   // children stacked back to front
	KindWrapper                 // pass-through container
	KindInset                   // padding around one child
	KindCenter                  // centers one child
	KindRelative                // positions one child at start/center/end
	KindOverlay                 // content with an overlay on top
	KindBackground              // content with a background behind
	KindRatio                   // constrains one child to an aspect ratio
	KindSpacer                  // flexible gap
)

var kindNames = [...]string{
	KindBox:         "box",
	KindText:        "text",
	KindPlaceholder: "placeholder",
	KindStack:       "stack",
	KindLayer:       "layer",
	KindWrapper:     "wrapper",
	KindInset:       "inset",
	KindCenter:      "center",
	KindRelative:    "relative",
	KindOverlay:     "overlay",
	KindBackground:  "background",
	KindRatio:       "ratio",
	KindSpacer:      "spacer",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsContainer reports whether elements of this kind are built by a
// container adapter.
func (k Kind) IsContainer() bool {
	return k >= KindStack && k != KindSpacer
}
