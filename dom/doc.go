/*
Package dom builds resolved SVG document trees.

Overview

An SVG document is parsed into a raw element tree and then resolved, node by
node, against its styling cascade: attribute inheritance, stylesheet and
inline-style declarations, currentColor and inherit substitution,
whitespace-sensitive text reflow, and conditional inclusion. The result is a
tree of immutable Nodes that downstream renderers consume read-only.

Loading is a single synchronous recursive pass. Cross-document references
(fragment URLs, tref text references) are resolved during the build, with an
optional caller-supplied cache that lets sibling loads reuse a parsed
document and its stylesheet matchers while recomputing the cascade for each
new parent context.

Tree Construction

Styling involves repeated cascade evaluation against the document's
stylesheets. CSS handling is de-coupled through the interfaces of package
cssom; the default implementation lives in package douceuradapter. The raw
element tree is the beevik/etree document; Nodes keep a non-owning reference
to their originating element for diagnostics and later rendering.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'svgdom.dom'.
func tracer() tracing.Trace {
	return tracing.Select("svgdom.dom")
}
