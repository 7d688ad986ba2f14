package flexkit

// WithWidthAuto resets width to auto, undoing a fixed or percent width.
// Restyling transforms use it to let a cloned element size to content again.
func WithWidthAuto() Option {
	return func(e *Element) {
		e.style.Width = Auto()
	}
}

// WithHeightAuto resets height to auto.
func WithHeightAuto() Option {
	return func(e *Element) {
		e.style.Height = Auto()
	}
}
