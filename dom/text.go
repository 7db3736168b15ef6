package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/lofting/svgdom/dom/style"
)

var multiSpace = regexp.MustCompile(`  +`)

// handleWhiteSpaces processes white space in text content, following the
// SVG rules for xml:space. In preserve mode every newline, carriage return
// and tab becomes a single space. In default mode newlines and carriage
// returns are removed, tabs become spaces, and runs of spaces collapse to
// one.
func handleWhiteSpaces(s string, preserve bool) string {
	if s == "" {
		return ""
	}
	if preserve {
		return strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(s)
	}
	s = strings.NewReplacer("\n", "", "\r", "", "\t", " ").Replace(s)
	return multiSpace.ReplaceAllString(s, " ")
}

// rotations parses a node's rotate list. Values are separated by white
// space and/or commas; unparsable tokens are skipped.
func rotations(n *Node) []float64 {
	raw, ok := n.attrs.Get("rotate")
	if !ok {
		return nil
	}
	fields := strings.FieldsFunc(string(raw), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ','
	})
	var values []float64
	for _, f := range fields {
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			values = append(values, v)
		}
	}
	return values
}

// popRotation rewrites a run's rotate attribute to exactly one value per
// character of its text, consumed from the front of the active list; once
// the list is exhausted the final value of the original list repeats.
func popRotation(n *Node, original []float64, rotate *[]float64) {
	count := len([]rune(n.text))
	values := make([]string, 0, count)
	for i := 0; i < count; i++ {
		v := original[len(original)-1]
		if len(*rotate) > 0 {
			v = (*rotate)[0]
			*rotate = (*rotate)[1:]
		}
		values = append(values, strconv.FormatFloat(v, 'g', -1, 64))
	}
	n.attrs.Set("rotate", style.Property(strings.Join(values, " ")))
}

// flatten returns the entire descendant text of an element in document
// order, ignoring structure and styling. It never mutates the element:
// flattening twice yields the same string.
func flatten(el *etree.Element) string {
	var b strings.Builder
	b.WriteString(el.Text())
	for _, child := range el.ChildElements() {
		b.WriteString(flatten(child))
		b.WriteString(child.Tail())
	}
	return b.String()
}

// reflowText converts an element's mixed text-and-child content into a run
// list with correct whitespace and rotation semantics. A single pending
// trailing-space flag threads through the whole reflow in document order:
// a run loses its leading space if the previously emitted run ended in one
// and the current mode is not preserve.
//
// The rotation list of the nearest ancestor that declares one distributes
// one value per character over the subtree's runs; a descendant declaring
// its own list is skipped and consumes its own instead.
func (env *environ) reflowText(n *Node, el *etree.Element, trailingSpace, textRoot bool,
	original []float64, rotate *[]float64) ([]*Node, bool, error) {
	//
	preserve := n.attrs.Value(xmlSpaceAttr, "") == "preserve"
	n.text = handleWhiteSpaces(el.Text(), preserve)
	if trailingSpace && !preserve {
		n.text = strings.TrimLeft(n.text, " ")
	}
	if own := rotations(n); len(own) > 0 {
		remaining := append([]float64(nil), own...)
		original, rotate = own, &remaining
	}
	if len(original) > 0 {
		popRotation(n, original, rotate)
	}
	if n.text != "" {
		trailingSpace = strings.HasSuffix(n.text, " ")
	}

	var children []*Node
	for _, childEl := range el.ChildElements() {
		var child *Node
		reflowEl := childEl
		if isTextRef(childEl) {
			flatEl, trefNode, err := env.resolveTextRef(n, childEl)
			if err != nil {
				return nil, false, err
			}
			child, reflowEl = trefNode, flatEl
		} else {
			built, err := env.buildNode(buildParams{
				el:       childEl,
				matchers: n.matchers,
				parent:   n,
				unsafe:   n.unsafe,
			})
			if err != nil {
				return nil, false, err
			}
			child = built
		}
		grandchildren, trailing, err := env.reflowText(child, reflowEl, trailingSpace, false, original, rotate)
		if err != nil {
			return nil, false, err
		}
		child.children, trailingSpace = grandchildren, trailing
		children = append(children, child)

		if tail := childEl.Tail(); tail != "" {
			// the text following the child becomes an anonymous inline run,
			// inheriting the ambient preserve mode
			anonymous, err := env.buildNode(buildParams{
				el:       anonymousRunElement(),
				matchers: n.matchers,
				parent:   n,
				unsafe:   n.unsafe,
			})
			if err != nil {
				return nil, false, err
			}
			anonymous.text = handleWhiteSpaces(tail, preserve)
			if trailingSpace && !preserve {
				anonymous.text = strings.TrimLeft(anonymous.text, " ")
			}
			if len(original) > 0 {
				popRotation(anonymous, original, rotate)
			}
			if anonymous.text != "" {
				trailingSpace = strings.HasSuffix(anonymous.text, " ")
			}
			children = append(children, anonymous)
		}
	}

	if textRoot && len(children) == 0 && !preserve {
		n.text = strings.TrimRight(n.text, " ")
	}
	return children, trailingSpace, nil
}

// resolveTextRef resolves a text-reference (tref) element. The target, a
// tree load, possibly cross-document, through the regular reference-cache
// path, is flattened into a single synthetic inline run. The run's cascade
// runs in the referencing context, so the duplication wrapper carries the
// referencing node's attributes.
func (env *environ) resolveTextRef(n *Node, trefEl *etree.Element) (*etree.Element, *Node, error) {
	href := hrefValue(trefEl)
	target, err := env.load(loadParams{
		url:    href,
		parent: n,
		unsafe: n.unsafe,
	})
	if err != nil {
		return nil, nil, err
	}
	wrapper := &Node{
		tag:      target.tag,
		attrs:    n.attrs.Clone(),
		children: target.children,
		parent:   n,
		element:  target.element,
		url:      target.url,
		unsafe:   target.unsafe,
		matchers: target.matchers,
		env:      env,
	}
	trefNode, err := env.buildNode(buildParams{
		el:             trefEl,
		matchers:       n.matchers,
		parent:         wrapper,
		parentChildren: true,
		unsafe:         n.unsafe,
	})
	if err != nil {
		return nil, nil, err
	}
	trefNode.tag = "tspan"
	flatEl := etree.NewElement("tspan")
	flatEl.SetText(flatten(target.element))
	return flatEl, trefNode, nil
}

// anonymousRunElement returns a fresh synthetic tspan element backing an
// anonymous inline run.
func anonymousRunElement() *etree.Element {
	return etree.NewElement("tspan")
}

// isTextRef returns wether an element is a text-reference element.
func isTextRef(el *etree.Element) bool {
	return el.Tag == "tref" && (el.NamespaceURI() == svgNamespace || el.NamespaceURI() == "")
}

// hrefValue returns an element's href attribute, preferring the
// xlink-namespaced form.
func hrefValue(el *etree.Element) string {
	for _, a := range el.Attr {
		if a.Key == "href" && a.Space == "xlink" {
			return a.Value
		}
	}
	for _, a := range el.Attr {
		if a.Key == "href" && a.Space == "" {
			return a.Value
		}
	}
	return ""
}
