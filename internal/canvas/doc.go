// Package canvas is the character grid that laid-out element trees are
// previewed on. It holds one rune per terminal cell and knows how to draw
// box-drawing borders and clipped strings.
package canvas
