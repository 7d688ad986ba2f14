// Package describe loads layout trees from YAML or TOML description files.
//
// A description names a root node and an optional set of boolean variables:
//
//	vars:
//	  compact: false
//	root:
//	  vstack:
//	    spacing: 1
//	    children:
//	      - text: Title
//	        border: rounded
//	      - if:
//	          var: compact
//	          then: {text: short}
//	          else: {text: "a much longer body"}
//
// Every node sets exactly one kind key. Style keys (width, height, border,
// padding, ...) may be set on any node; on leaves they become element options,
// on containers they restyle each produced element.
package describe
