/*
Package style holds the value types for resolved SVG style attributes.

SVG styling is textual: every resolved attribute of a document node is a
string, whether it arrived as an XML attribute, a stylesheet declaration or
an inline style=. This package provides the Property value type, the ordered
AttributeSet a node's cascade result is stored in, the fixed set of
attributes exempt from inheritance, and the declaration normalizer that
canonicalizes name/value pairs before they enter the cascade.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'svgdom.style'.
func tracer() tracing.Trace {
	return tracing.Select("svgdom.style")
}
