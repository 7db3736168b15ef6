package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"io"

	"github.com/lofting/svgdom/dom/features"
	"github.com/lofting/svgdom/dom/style/cssom"
	"github.com/lofting/svgdom/resource"
)

// config collects the inputs and collaborators of a top-level Load call.
type config struct {
	bytes    []byte
	reader   io.Reader
	url      string
	parent   *Node
	fetch    resource.Fetcher
	split    cssom.InlineSplitter
	include  features.Predicate
	cache    *Cache
	unsafe   bool
	haveData bool
}

// Option is a type to help configuring document loads. Use it like this:
//
//	tree, err := dom.Load(dom.FromURL("https://example.org/image.svg"),
//	    dom.WithCache(cache))
//
type Option func(config) config

// FromBytes provides the document content directly. If a URL is given as
// well it serves as the base for relative references only.
func FromBytes(data []byte) Option {
	return func(cfg config) config {
		cfg.bytes = data
		cfg.haveData = true
		return cfg
	}
}

// FromReader provides the document content from a stream. The reader is
// drained during Load.
func FromReader(r io.Reader) Option {
	return func(cfg config) config {
		cfg.reader = r
		cfg.haveData = true
		return cfg
	}
}

// FromURL names the document to load. Without FromBytes or FromReader the
// content is fetched from this URL; a fragment part selects a subtree.
func FromURL(url string) Option {
	return func(cfg config) config {
		cfg.url = url
		return cfg
	}
}

// WithFetcher replaces the default resource fetcher. Reference resolution
// and stylesheet imports go through the fetcher exclusively, so clients can
// restrict, redirect or fake external access.
func WithFetcher(fetch resource.Fetcher) Option {
	return func(cfg config) config {
		cfg.fetch = fetch
		return cfg
	}
}

// WithParent loads the document as a reference from an existing node: a
// relative URL resolves against the parent's document URL, the cascade runs
// in the parent's context, and the parent's collaborators (fetcher, cache,
// feature predicate) serve as defaults.
func WithParent(parent *Node) Option {
	return func(cfg config) config {
		cfg.parent = parent
		return cfg
	}
}

// WithCache shares a reference cache between top-level loads.
func WithCache(cache *Cache) Option {
	return func(cfg config) config {
		cfg.cache = cache
		return cfg
	}
}

// WithFeatures replaces the conditional-inclusion predicate, which decides
// for each element whether its feature, extension and language requirements
// hold. The default accepts the static SVG 1.1 feature set and language "en".
func WithFeatures(include features.Predicate) Option {
	return func(cfg config) config {
		cfg.include = include
		return cfg
	}
}

// Unsafe disables the pre-parse scan for external entity declarations and
// lets malformed markup pass permissively. Only use this for trusted input.
func Unsafe() Option {
	return func(cfg config) config {
		cfg.unsafe = true
		return cfg
	}
}
