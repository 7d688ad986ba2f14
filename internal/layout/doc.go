// Package layout implements the pure-Go layout engine that flexkit elements
// are arranged with.
//
// Containers arrange children in one of two ways: flex arrangement (row or
// column direction, justify and align modes, gap, grow and shrink factors)
// or layer arrangement, where every child shares the container's content
// rect and is placed on each axis independently. Padding, margin, min/max
// constraints, percentage and fixed dimensions, intrinsic sizing, aspect
// ratios and fit-to-content sizing apply to both.
// Types are re-exported through the root flexkit package for public consumption.
//
// The main entry point is [Calculate], which takes a [Layoutable] tree and
// computes absolute [Rect] positions for each node.
package layout
