package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"github.com/beevik/etree"

	"github.com/lofting/svgdom/dom/features"
	"github.com/lofting/svgdom/dom/style/cssom"
	"github.com/lofting/svgdom/resource"
)

// environ carries the collaborators of one top-level conversion through the
// recursive build: the fetch capability, the inline-style splitter, the
// feature predicate, the shared reference cache and the set of loads on the
// active path (the cycle guard).
type environ struct {
	fetch   resource.Fetcher
	split   cssom.InlineSplitter
	include features.Predicate
	cache   *Cache
	loading map[cacheKey]bool
}

// buildParams are the inputs for constructing one node (and its subtree).
type buildParams struct {
	el             *etree.Element
	matchers       cssom.MatcherPair
	parent         *Node
	parentChildren bool // duplicate the parent's children under the new node
	url            string
	unsafe         bool
	root           bool
}

func (env *environ) buildNode(p buildParams) (*Node, error) {
	n := &Node{}
	if err := env.buildInto(n, p); err != nil {
		return nil, err
	}
	return n, nil
}

// buildInto recursively resolves one subtree. An error in any descendant
// fails the whole build; no partial trees are handed out.
func (env *environ) buildInto(n *Node, p buildParams) error {
	matchers := p.matchers
	if matchers.Normal == nil {
		matchers.Normal = cssom.NullMatcher
	}
	if matchers.Important == nil {
		matchers.Important = cssom.NullMatcher
	}
	n.env = env
	n.element = p.el
	n.matchers = matchers
	n.tag = qualifiedTag(p.el)
	n.root = p.root
	n.unsafe = p.unsafe
	n.url = p.url
	n.parent = p.parent
	if n.url == "" && p.parent != nil {
		n.url = p.parent.url
	}
	n.attrs = env.computeAttributes(p.el, p.parent, matchers)
	n.text = p.el.Text()

	// text-bearing elements get their content reflowed into runs
	if isTextTag(n.tag) {
		children, _, err := env.reflowText(n, p.el, true, true, nil, nil)
		if err != nil {
			return err
		}
		n.children = children
	}

	switch {
	case p.parentChildren:
		// re-wrap the parent's children fresh under this node, re-running
		// the cascade in the new ancestor context without re-parsing
		n.children = nil
		for _, sibling := range p.parent.children {
			child, err := env.buildNode(buildParams{
				el:       sibling.element,
				matchers: matchers,
				parent:   n,
				unsafe:   n.unsafe,
			})
			if err != nil {
				return err
			}
			n.children = append(n.children, child)
		}
	case len(n.children) == 0:
		for _, childEl := range p.el.ChildElements() {
			if !env.include(childEl) {
				continue
			}
			child, err := env.buildNode(buildParams{
				el:       childEl,
				matchers: matchers,
				parent:   n,
				unsafe:   n.unsafe,
			})
			if err != nil {
				return err
			}
			n.children = append(n.children, child)
			if n.tag == "switch" {
				// a switch keeps only its first matching child
				break
			}
		}
	}
	return nil
}

// isTextTag returns wether a tag carries reflowable text content.
func isTextTag(tag string) bool {
	return tag == "text" || tag == "textPath" || tag == "a"
}
