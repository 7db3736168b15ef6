package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import "errors"

// Errors raised by document loading. All of them are fatal to the load that
// raised them: a failed load never yields a partially built node tree.
// Malformed style declarations are not an error at this layer; they are
// dropped silently at the CSS parser boundary.
var (
	// ErrNoInput is thrown if a load is requested without any input source.
	ErrNoInput = errors.New("no input given, use one of bytes, reader or URL")

	// ErrMalformedInput is thrown if the document cannot be parsed.
	ErrMalformedInput = errors.New("malformed document")

	// ErrUnresolvedReference is thrown if a fragment id or cross-document
	// reference target cannot be found.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrInsecureInput is thrown if a document requests external entity or
	// DTD resolution while the load is not marked unsafe.
	ErrInsecureInput = errors.New("document requests external entity resolution")

	// ErrFetchFailure wraps an I/O error of the fetch collaborator. Fetches
	// are never retried at this layer.
	ErrFetchFailure = errors.New("resource fetch failed")

	// ErrCyclicReference is thrown if cross-document references form a
	// cycle. The reference cache only prevents re-parsing; recursion over a
	// reference cycle has to be rejected explicitly.
	ErrCyclicReference = errors.New("cyclic cross-document reference")
)
