// Package flexkit builds layout trees declaratively.
//
// A layout is described with [Node] values: leaves wrapping concrete
// elements, containers such as [VStack], [Inset] and [Overlay], and block
// helpers such as [Build], [When], [If] and [ForEach]. Producing a node
// flattens the description into the concrete [*Element] tree the layout
// engine arranges:
//
//	root := flexkit.ComposeRoot(
//		flexkit.VStack(flexkit.Build(
//			flexkit.Label("title"),
//			flexkit.When(showHint, func() flexkit.Node { return flexkit.Label("hint") }),
//			flexkit.VSpacer(1),
//		), flexkit.WithSpacing(1)),
//	)
//	flexkit.Calculate(root, 80, 24)
//
// Layout types and the engine entry point are re-exported from the internal
// layout package, so this is the only package callers need.
package flexkit
