package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/lofting/svgdom/dom/style"
	"github.com/lofting/svgdom/dom/style/cssom"
)

// computeAttributes resolves one node's attribute set. Precedence, low to
// high, later assignments overwriting earlier ones per property:
//
//  1. values inherited from the parent (minus the non-inherited set)
//  2. raw element attributes, verbatim
//  3. stylesheet normal-precedence declarations, in matcher order
//  4. inline-style normal declarations
//  5. stylesheet important-precedence declarations, in matcher order
//  6. inline-style important declarations
//
// Stylesheet and inline declarations pass through the normalizer before
// assignment. After the merge, currentColor and inherit indirections are
// substituted. This never fails: malformed declarations have already been
// dropped at the CSS parser boundary.
func (env *environ) computeAttributes(el *etree.Element, parent *Node, matchers cssom.MatcherPair) *style.AttributeSet {
	attrs := style.NewAttributeSet()
	if parent != nil {
		attrs.InheritedFrom(parent.attrs)
	}
	for _, a := range el.Attr {
		if key := clarkKey(a); key != "" {
			attrs.Set(key, style.Property(a.Value))
		}
	}

	var inlineNormal, inlineImportant cssom.DeclarationList
	if styleAttr := el.SelectAttrValue("style", ""); styleAttr != "" && env.split != nil {
		inlineNormal, inlineImportant = env.split(styleAttr)
	}
	apply := func(lists []cssom.DeclarationList) {
		for _, declarations := range lists {
			for _, d := range declarations {
				name, value := style.NormalizeDeclaration(d.Name, d.Value)
				attrs.Set(name, style.Property(strings.TrimSpace(value)))
			}
		}
	}
	apply(matchers.Normal.Match(el))
	apply([]cssom.DeclarationList{inlineNormal})
	apply(matchers.Important.Match(el))
	apply([]cssom.DeclarationList{inlineImportant})

	// replace currentColor by the resolved color value
	for _, key := range style.ColorAttributes {
		if attrs.Value(key, style.NullStyle).IsCurrentColor() {
			attrs.Set(key, attrs.Value("color", "black"))
		}
	}
	// replace inherit by the parent value, or drop the attribute
	for _, key := range attrs.Keys() {
		if v, _ := attrs.Get(key); !v.IsInherit() {
			continue
		}
		if parent != nil {
			if inherited, ok := parent.attrs.Get(key); ok {
				attrs.Set(key, inherited)
				continue
			}
		}
		attrs.Delete(key)
	}
	return attrs
}
