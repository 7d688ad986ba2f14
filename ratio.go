package flexkit

import (
	"fmt"
	"math"
)

// RatioNode constrains its single content element to height = width*ratio.
type RatioNode struct {
	ratio   float64
	content Node
}

// AspectRatio constrains content to ratio (height divided by width).
// A ratio that is not a positive finite number is a contract violation.
func AspectRatio(content Node, ratio float64) RatioNode {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0 {
		panic(&ContractError{Adapter: "ratio", Detail: fmt.Sprintf("ratio must be positive and finite, got %v", ratio)})
	}
	return RatioNode{ratio: ratio, content: content}
}

// AspectRatioOf derives the ratio from a width/height pair as height/width.
func AspectRatioOf(content Node, width, height float64) RatioNode {
	return AspectRatio(content, height/width)
}

// Ratio returns the height-to-width ratio.
func (n RatioNode) Ratio() float64 {
	return n.ratio
}

// Produce returns one ratio element around the content element.
func (n RatioNode) Produce() []*Element {
	style := layerStyle()
	style.AspectRatio = n.ratio

	e := newElement(KindRatio, style)
	e.addChild(produceOne("ratio", "content", n.content))
	return []*Element{e}
}
