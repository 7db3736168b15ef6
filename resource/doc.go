/*
Package resource provides the fetch capability used by the document tree
builder, plus small URL helpers.

There is no implicit global fetch function: loads receive an explicit
Fetcher, with DefaultFetcher bound only at the outermost entry point.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package resource

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'svgdom.resource'.
func tracer() tracing.Trace {
	return tracing.Select("svgdom.resource")
}
