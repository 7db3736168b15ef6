package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"bytes"
	"fmt"
	"io"
	"regexp"

	"github.com/beevik/etree"
	"github.com/klauspost/compress/gzip"

	"github.com/lofting/svgdom/dom/features"
	"github.com/lofting/svgdom/dom/style/cssom"
	"github.com/lofting/svgdom/dom/style/cssom/douceuradapter"
	"github.com/lofting/svgdom/resource"
)

// Tree is a fully resolved document: the root node of the attributed node
// tree plus the parsed markup it was built from. For trees resolved within
// an already loaded document (fragment references) no separate document
// exists and Document returns nil.
type Tree struct {
	Node
	doc *etree.Document
}

// Document returns the parsed markup underlying the tree, if the tree owns
// one.
func (t *Tree) Document() *etree.Document {
	return t.doc
}

// Load resolves an SVG document into an attributed node tree. Input comes
// from FromBytes, FromReader or FromURL; when both content and a URL are
// given, the URL only serves as the base for relative references.
//
// Load runs the full pipeline: decompression, the safety scan, parsing,
// stylesheet collection, the cascade, text reflow and reference resolution.
func Load(opts ...Option) (*Tree, error) {
	var cfg config
	for _, option := range opts {
		cfg = option(cfg)
	}
	if cfg.parent != nil && cfg.parent.env != nil {
		penv := cfg.parent.env
		if cfg.fetch == nil {
			cfg.fetch = penv.fetch
		}
		if cfg.split == nil {
			cfg.split = penv.split
		}
		if cfg.include == nil {
			cfg.include = penv.include
		}
		if cfg.cache == nil {
			cfg.cache = penv.cache
		}
	}
	if cfg.fetch == nil {
		cfg.fetch = resource.DefaultFetcher()
	}
	if cfg.split == nil {
		cfg.split = douceuradapter.ParseInline
	}
	if cfg.include == nil {
		cfg.include = features.Match
	}
	if cfg.cache == nil {
		cfg.cache = NewCache()
	}
	env := &environ{
		fetch:   cfg.fetch,
		split:   cfg.split,
		include: cfg.include,
		cache:   cfg.cache,
		loading: make(map[cacheKey]bool),
	}
	data := cfg.bytes
	if cfg.reader != nil {
		var err error
		if data, err = io.ReadAll(cfg.reader); err != nil {
			return nil, fmt.Errorf("%w: reading input: %v", ErrFetchFailure, err)
		}
	}
	if !cfg.haveData && cfg.url == "" {
		return nil, ErrNoInput
	}
	return env.load(loadParams{
		url:      cfg.url,
		data:     data,
		haveData: cfg.haveData,
		parent:   cfg.parent,
		unsafe:   cfg.unsafe,
	})
}

// loadParams are the inputs for resolving one document or fragment.
type loadParams struct {
	url      string
	data     []byte
	haveData bool
	parent   *Node // referencing node for nested loads, nil at top level
	unsafe   bool
}

var gzipMagic = []byte{0x1f, 0x8b}

// entityDecl flags document type declarations that pull in external
// content, and entity declarations in general.
var entityDecl = regexp.MustCompile(`(?i)<!DOCTYPE\s[^>]*\b(SYSTEM|PUBLIC)\b|<!ENTITY`)

// load resolves one document or document fragment into a tree. Nested
// loads, triggered by references during the build, arrive here with the
// referencing node as parent; their URLs resolve against the referencing
// document and their results share the environ's cache.
func (env *environ) load(p loadParams) (*Tree, error) {
	url := p.url
	if p.parent != nil && url != "" {
		url = resource.Resolve(p.parent.url, url)
	}
	docURL := resource.StripFragment(url)
	fragment := resource.Fragment(url)
	key := cacheKey{url: docURL, fragment: fragment}
	tracer().Debugf("load %q (fragment %q)", docURL, fragment)

	if env.loading[key] {
		return nil, fmt.Errorf("%w: %s", ErrCyclicReference, url)
	}
	env.loading[key] = true
	defer delete(env.loading, key)

	// only loads with a known document URL take part in caching
	if docURL != "" {
		if cached, ok := env.cache.get(key); ok {
			return env.rebuild(cached, p.parent, docURL, p.unsafe)
		}
	}

	// a reference into an already loaded ancestor document reuses the
	// parsed markup and its stylesheet matchers
	if p.parent != nil && !p.haveData {
		for a := p.parent; a != nil; a = a.parent {
			if a.root && a.url == docURL {
				return env.assemble(nil, documentElement(a.element), a.matchers,
					p.parent, docURL, fragment, p.unsafe)
			}
		}
	}

	data := p.data
	if !p.haveData {
		if docURL == "" {
			return nil, ErrNoInput
		}
		fetched, err := env.fetch(docURL, "image/svg+xml")
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFetchFailure, docURL, err)
		}
		data = fetched
	}
	if bytes.HasPrefix(data, gzipMagic) {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		if data, err = io.ReadAll(zr); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoInput
	}
	if !p.unsafe && entityDecl.Match(data) {
		return nil, fmt.Errorf("%w: document declares external entities", ErrInsecureInput)
	}

	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = p.unsafe
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: no document element", ErrMalformedInput)
	}
	// stylesheet matchers are computed once per top-level document; a
	// referenced document styles in its referencing context
	var matchers cssom.MatcherPair
	if p.parent != nil {
		matchers = p.parent.matchers
	} else {
		matchers = douceuradapter.MatchersFor(doc, docURL, env.fetch)
	}
	return env.assemble(doc, doc.Root(), matchers, p.parent, docURL, fragment, p.unsafe)
}

// assemble resolves the node tree over parsed markup and registers the
// result in the reference cache.
func (env *environ) assemble(doc *etree.Document, root *etree.Element,
	matchers cssom.MatcherPair, parent *Node, docURL, fragment string, unsafe bool) (*Tree, error) {
	//
	el := root
	if fragment != "" {
		el = findByID(root, fragment)
		if el == nil {
			return nil, fmt.Errorf("%w: fragment %q not found in %s",
				ErrUnresolvedReference, fragment, docURL)
		}
	}
	tree := &Tree{doc: doc}
	err := env.buildInto(&tree.Node, buildParams{
		el:       el,
		matchers: matchers,
		parent:   parent,
		url:      docURL,
		unsafe:   unsafe,
		root:     true,
	})
	if err != nil {
		return nil, err
	}
	if docURL != "" {
		env.cache.put(cacheKey{url: docURL, fragment: el.SelectAttrValue("id", "")}, tree)
	}
	return tree, nil
}

// rebuild resolves a fresh node tree over a cached document: the markup and
// matchers are shared, attribute resolution runs anew in the referencing
// context.
func (env *environ) rebuild(cached *Tree, parent *Node, docURL string, unsafe bool) (*Tree, error) {
	tree := &Tree{doc: cached.doc}
	err := env.buildInto(&tree.Node, buildParams{
		el:       cached.element,
		matchers: cached.matchers,
		parent:   parent,
		url:      docURL,
		unsafe:   unsafe,
		root:     true,
	})
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// documentElement ascends from an element, which may be a fragment root,
// to its document's top element.
func documentElement(el *etree.Element) *etree.Element {
	for p := el.Parent(); p != nil && p.Tag != ""; p = el.Parent() {
		el = p
	}
	return el
}

// findByID searches a subtree, root included, for the element with the
// given id attribute.
func findByID(el *etree.Element, id string) *etree.Element {
	if el.SelectAttrValue("id", "") == id {
		return el
	}
	for _, child := range el.ChildElements() {
		if found := findByID(child, id); found != nil {
			return found
		}
	}
	return nil
}
