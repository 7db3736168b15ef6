package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/lofting/svgdom/dom/style"
	"github.com/lofting/svgdom/dom/style/cssom"
	"github.com/lofting/svgdom/resource"
)

// Namespace URIs appearing in resolved tags and attribute keys.
const (
	svgNamespace   = "http://www.w3.org/2000/svg"
	xlinkNamespace = "http://www.w3.org/1999/xlink"
	xmlNamespace   = "http://www.w3.org/XML/1998/namespace"
)

// xmlSpaceAttr selects the whitespace handling mode of text content.
const xmlSpaceAttr = "{" + xmlNamespace + "}space"

// Node is one resolved element of a document tree. A Node is fully
// constructed in one recursive pass and immutable thereafter; it owns its
// children exclusively and keeps a non-owning back-reference to its parent,
// used for attribute inheritance during construction only.
type Node struct {
	tag      string
	attrs    *style.AttributeSet
	text     string
	children []*Node
	parent   *Node
	element  *etree.Element
	root     bool
	url      string // absolute URL of the owning document, sans fragment
	unsafe   bool
	matchers cssom.MatcherPair // shared by every node of one document
	env      *environ
}

// Tag returns the node's namespace-qualified name: the local name for
// elements of the default (SVG) namespace, '{namespace-uri}local-name'
// otherwise.
func (n *Node) Tag() string {
	return n.tag
}

// Text returns the node's directly-owned leading text content, after
// whitespace processing.
func (n *Node) Text() string {
	return n.text
}

// Attr returns the resolved value of an attribute, together with an
// indicator wether the attribute is present.
func (n *Node) Attr(key string) (style.Property, bool) {
	return n.attrs.Get(key)
}

// AttrValue returns the resolved value of an attribute, or dflt if unset.
func (n *Node) AttrValue(key string, dflt style.Property) style.Property {
	return n.attrs.Value(key, dflt)
}

// Attributes returns the node's resolved attributes in insertion order.
func (n *Node) Attributes() []style.KeyValue {
	return n.attrs.Properties()
}

// Children returns the node's ordered child nodes. The returned slice must
// not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the node's parent, or nil for a tree root. The relation is
// read-only; it is primarily of use during construction.
func (n *Node) Parent() *Node {
	return n.parent
}

// SourceElement returns the raw element this node was built from, for
// diagnostics and later rendering.
func (n *Node) SourceElement() *etree.Element {
	return n.element
}

// IsRoot returns wether this node is the root of a (sub-)tree load.
func (n *Node) IsRoot() bool {
	return n.root
}

// URL returns the absolute URL of the document this node was loaded from,
// without fragment, or "" if unknown.
func (n *Node) URL() string {
	return n.url
}

// Unsafe returns wether external entity resolution was permitted when this
// node's document was parsed.
func (n *Node) Unsafe() bool {
	return n.unsafe
}

// FetchURL retrieves an external resource (image, font, …) through the
// fetch capability captured at construction time. A relative url is
// resolved against the node's document URL.
func (n *Node) FetchURL(url string, resourceKind string) ([]byte, error) {
	target := resource.Resolve(n.url, url)
	content, err := n.env.fetch(target, resourceKind)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrFetchFailure, target, err)
	}
	return content, nil
}

// Walk visits n and its descendants in document order. Returning false from
// visit skips the current node's children.
func (n *Node) Walk(visit func(*Node) bool) {
	if !visit(n) {
		return
	}
	for _, child := range n.children {
		child.Walk(visit)
	}
}

func (n *Node) String() string {
	return fmt.Sprintf("(Node %s #ch=%d)", n.tag, len(n.children))
}

// qualifiedTag returns the tag name of an element: the local name for the
// default and SVG namespaces, Clark notation otherwise.
func qualifiedTag(el *etree.Element) string {
	ns := el.NamespaceURI()
	if ns == "" || ns == svgNamespace {
		return el.Tag
	}
	return "{" + ns + "}" + el.Tag
}

// clarkKey returns an attribute's key in Clark notation. Attributes without
// a prefix have no namespace. Namespace declarations return "".
func clarkKey(a etree.Attr) string {
	if a.Space == "" {
		if a.Key == "xmlns" {
			return ""
		}
		return a.Key
	}
	if a.Space == "xmlns" {
		return ""
	}
	ns := a.NamespaceURI()
	if ns == "" {
		switch a.Space {
		case "xml":
			ns = xmlNamespace
		case "xlink":
			ns = xlinkNamespace
		default:
			return a.Space + ":" + a.Key
		}
	}
	return "{" + ns + "}" + a.Key
}
