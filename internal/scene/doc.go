// Package scene describes render trees in YAML so they can be laid out and
// painted from the command line and from fixtures.
//
// A scene has root constraints and a root node:
//
//	constraints:
//	  max_width: 80
//	  max_height: 24
//	root:
//	  kind: padding
//	  padding: {all: 1}
//	  children:
//	    - kind: text
//	      text: hello world
//
// Missing maxima are unbounded; YAML's .inf is accepted as well.
package scene
