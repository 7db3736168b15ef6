/*
Package douceuradapter is a concrete implementation of the matcher
interfaces in package cssom, backed by the douceur CSS parser.

It collects the stylesheets reachable from a parsed SVG document
(<style> elements, <?xml-stylesheet?> processing instructions and one level
of @import rules), parses them with douceur, and builds the normal/important
matcher pair consumed by the tree builder. Selector support is deliberately
small: type, class, id and universal compound selectors with descendant and
child combinators. Rules with selectors outside this subset are skipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package douceuradapter

import (
	"regexp"
	"sort"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/beevik/etree"
	"github.com/npillmayer/schuko/tracing"

	"github.com/lofting/svgdom/dom/style/cssom"
	"github.com/lofting/svgdom/resource"
)

// tracer traces with key 'svgdom.style'.
func tracer() tracing.Trace {
	return tracing.Select("svgdom.style")
}

const svgNamespace = "http://www.w3.org/2000/svg"

// maxImportDepth bounds recursive @import expansion.
const maxImportDepth = 4

// --- Matcher pair construction ---------------------------------------------

// MatchersFor collects and parses every stylesheet reachable from a parsed
// document and builds the document's matcher pair. External sources are
// resolved against baseURL and fetched with fetch; sources that cannot be
// fetched or parsed are skipped, they never fail a document load.
func MatchersFor(doc *etree.Document, baseURL string, fetch resource.Fetcher) cssom.MatcherPair {
	sheets := CollectStylesheets(doc, baseURL, fetch)
	return BuildMatcherPair(sheets)
}

// BuildMatcherPair splits the rules of the given stylesheets into their
// normal and important declaration tiers and wraps each tier in a Matcher.
// Document order across sheets is preserved for cascade tie-breaking.
func BuildMatcherPair(sheets []*css.Stylesheet) cssom.MatcherPair {
	var normal, important []styleRule
	order := 0
	var walk func(rules []*css.Rule)
	walk = func(rules []*css.Rule) {
		for _, r := range rules {
			if r.Kind == css.AtRule {
				if r.EmbedsRules() {
					walk(r.Rules)
				}
				continue
			}
			selectors := parseSelectorGroup(r.Selectors)
			if len(selectors) == 0 {
				continue
			}
			var normalDecls, importantDecls cssom.DeclarationList
			for _, d := range r.Declarations {
				decl := cssom.Declaration{Name: d.Property, Value: d.Value}
				if d.Important {
					importantDecls = append(importantDecls, decl)
				} else {
					normalDecls = append(normalDecls, decl)
				}
			}
			if len(normalDecls) > 0 {
				normal = append(normal, styleRule{selectors, normalDecls, order})
			}
			if len(importantDecls) > 0 {
				important = append(important, styleRule{selectors, importantDecls, order})
			}
			order++
		}
	}
	for _, sheet := range sheets {
		walk(sheet.Rules)
	}
	return cssom.MatcherPair{
		Normal:    &matcher{rules: normal},
		Important: &matcher{rules: important},
	}
}

// ParseInline splits the text of an inline style= attribute into normal and
// important declaration lists. Malformed input yields empty lists.
func ParseInline(styleText string) (normalDecls, importantDecls cssom.DeclarationList) {
	decls, err := parser.ParseDeclarations(styleText)
	if err != nil {
		tracer().Debugf("styling: dropping malformed inline style %q", styleText)
		return nil, nil
	}
	for _, d := range decls {
		decl := cssom.Declaration{Name: d.Property, Value: d.Value}
		if d.Important {
			importantDecls = append(importantDecls, decl)
		} else {
			normalDecls = append(normalDecls, decl)
		}
	}
	return normalDecls, importantDecls
}

// styleRule is one qualified rule of one tier, with its parsed selectors and
// its position in document order.
type styleRule struct {
	selectors []complexSelector
	decls     cssom.DeclarationList
	order     int
}

type matcher struct {
	rules []styleRule
}

var _ cssom.Matcher = &matcher{}

// Match returns the declaration lists of all rules matching el, ordered by
// increasing selector specificity with document order breaking ties. Every
// matching selector of a rule contributes individually, with the rule's
// declarations.
func (m *matcher) Match(el *etree.Element) []cssom.DeclarationList {
	type hit struct {
		spec  specificity
		order int
		decls cssom.DeclarationList
	}
	var hits []hit
	for _, rule := range m.rules {
		for _, sel := range rule.selectors {
			if sel.matches(el) {
				hits = append(hits, hit{sel.spec, rule.order, rule.decls})
			}
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].spec != hits[j].spec {
			return hits[i].spec.less(hits[j].spec)
		}
		return hits[i].order < hits[j].order
	})
	result := make([]cssom.DeclarationList, len(hits))
	for i, h := range hits {
		result[i] = h.decls
	}
	return result
}

// --- Selectors ---------------------------------------------------------------

// specificity is the usual (ids, classes, types) ranking.
type specificity [3]int

func (s specificity) less(o specificity) bool {
	for i := range s {
		if s[i] != o[i] {
			return s[i] < o[i]
		}
	}
	return false
}

// compound is one simple-selector sequence, e.g. "rect.big#main".
type compound struct {
	tag     string // "" or "*" matches any element
	id      string
	classes []string
}

// complexSelector is a chain of compounds joined by descendant (' ') or
// child ('>') combinators, matched right to left.
type complexSelector struct {
	parts       []compound // leftmost first
	combinators []byte     // combinators[i] joins parts[i] and parts[i+1]
	spec        specificity
}

func parseSelectorGroup(selectors []string) []complexSelector {
	var result []complexSelector
	for _, s := range selectors {
		if sel, ok := parseComplex(s); ok {
			result = append(result, sel)
		} else if s = strings.TrimSpace(s); s != "" {
			tracer().Debugf("styling: skipping unsupported selector %q", s)
		}
	}
	return result
}

func parseComplex(s string) (complexSelector, bool) {
	var sel complexSelector
	s = strings.ReplaceAll(s, ">", " > ")
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return sel, false
	}
	expectCompound := true
	for _, tok := range tokens {
		if tok == ">" {
			if expectCompound || len(sel.combinators) >= len(sel.parts) {
				return sel, false
			}
			sel.combinators = append(sel.combinators, '>')
			expectCompound = true
			continue
		}
		c, ok := parseCompound(tok)
		if !ok {
			return sel, false
		}
		if !expectCompound {
			// two compounds without explicit combinator: descendant
			sel.combinators = append(sel.combinators, ' ')
		}
		sel.parts = append(sel.parts, c)
		expectCompound = false
	}
	if expectCompound {
		return sel, false // trailing combinator
	}
	for _, c := range sel.parts {
		if c.id != "" {
			sel.spec[0]++
		}
		sel.spec[1] += len(c.classes)
		if c.tag != "" && c.tag != "*" {
			sel.spec[2]++
		}
	}
	return sel, true
}

func parseCompound(tok string) (compound, bool) {
	var c compound
	if strings.ContainsAny(tok, "[]():+~,=\"'") {
		return c, false // attribute selectors, pseudos etc. are unsupported
	}
	rest := tok
	if !strings.HasPrefix(rest, ".") && !strings.HasPrefix(rest, "#") {
		end := strings.IndexAny(rest, ".#")
		if end < 0 {
			end = len(rest)
		}
		c.tag = rest[:end]
		rest = rest[end:]
	}
	for rest != "" {
		marker := rest[0]
		rest = rest[1:]
		end := strings.IndexAny(rest, ".#")
		if end < 0 {
			end = len(rest)
		}
		name := rest[:end]
		rest = rest[end:]
		if name == "" {
			return c, false
		}
		switch marker {
		case '.':
			c.classes = append(c.classes, name)
		case '#':
			if c.id != "" {
				return c, false
			}
			c.id = name
		}
	}
	return c, true
}

func (c compound) matches(el *etree.Element) bool {
	if c.tag != "" && c.tag != "*" && c.tag != el.Tag {
		return false
	}
	if c.id != "" && el.SelectAttrValue("id", "") != c.id {
		return false
	}
	if len(c.classes) > 0 {
		have := strings.Fields(el.SelectAttrValue("class", ""))
		for _, want := range c.classes {
			found := false
			for _, cls := range have {
				if cls == want {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

func (sel complexSelector) matches(el *etree.Element) bool {
	last := len(sel.parts) - 1
	if !sel.parts[last].matches(el) {
		return false
	}
	return matchAncestors(sel.parts[:last], sel.combinators, el.Parent())
}

// matchAncestors matches the remaining compounds right to left against the
// ancestor chain starting at el.
func matchAncestors(parts []compound, combinators []byte, el *etree.Element) bool {
	if len(parts) == 0 {
		return true
	}
	last := len(parts) - 1
	comb := combinators[last]
	for el != nil && el.Tag != "" {
		if parts[last].matches(el) &&
			matchAncestors(parts[:last], combinators[:last], el.Parent()) {
			return true
		}
		if comb == '>' {
			return false // child combinator: only the direct parent may match
		}
		el = el.Parent()
	}
	return false
}

// --- Stylesheet collection ---------------------------------------------------

// CollectStylesheets gathers the CSS sources reachable from a parsed
// document, in document order: <?xml-stylesheet?> processing instructions,
// then <style> elements of type text/css (or untyped). @import rules are
// expanded in place, up to a fixed depth. Sources that fail to fetch or
// parse are skipped.
func CollectStylesheets(doc *etree.Document, baseURL string, fetch resource.Fetcher) []*css.Stylesheet {
	var sheets []*css.Stylesheet
	add := func(text string) {
		sheet, err := parser.Parse(text)
		if err != nil {
			tracer().Infof("styling: skipping unparsable stylesheet: %v", err)
			return
		}
		sheet.Rules = expandImports(sheet.Rules, baseURL, fetch, 0)
		sheets = append(sheets, sheet)
	}
	for _, tok := range doc.Child {
		pi, ok := tok.(*etree.ProcInst)
		if !ok || pi.Target != "xml-stylesheet" {
			continue
		}
		attrs := parsePseudoAttrs(pi.Inst)
		if t := attrs["type"]; t != "" && t != "text/css" {
			continue
		}
		href := attrs["href"]
		if href == "" || fetch == nil {
			continue
		}
		content, err := fetch(resource.Resolve(baseURL, href), "text/css")
		if err != nil {
			tracer().Infof("styling: cannot fetch stylesheet %q: %v", href, err)
			continue
		}
		add(string(content))
	}
	if root := doc.Root(); root != nil {
		collectStyleElements(root, add)
	}
	return sheets
}

func collectStyleElements(el *etree.Element, add func(string)) {
	if el.Tag == "style" && (el.NamespaceURI() == svgNamespace || el.NamespaceURI() == "") {
		if t := el.SelectAttrValue("type", ""); t == "" || t == "text/css" {
			add(elementText(el))
		}
		return
	}
	for _, child := range el.ChildElements() {
		collectStyleElements(child, add)
	}
}

// elementText concatenates all character data of an element, including
// CDATA sections.
func elementText(el *etree.Element) string {
	var b strings.Builder
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			b.WriteString(cd.Data)
		}
	}
	return b.String()
}

// expandImports replaces @import rules by the rules of the imported sheets,
// keeping document position.
func expandImports(rules []*css.Rule, baseURL string, fetch resource.Fetcher, depth int) []*css.Rule {
	if depth >= maxImportDepth || fetch == nil {
		return rules
	}
	var expanded []*css.Rule
	for _, r := range rules {
		if r.Kind != css.AtRule || !strings.EqualFold(r.Name, "@import") {
			expanded = append(expanded, r)
			continue
		}
		href := importURL(r.Prelude)
		if href == "" {
			continue
		}
		target := resource.Resolve(baseURL, href)
		content, err := fetch(target, "text/css")
		if err != nil {
			tracer().Infof("styling: cannot fetch @import %q: %v", href, err)
			continue
		}
		imported, err := parser.Parse(string(content))
		if err != nil {
			tracer().Infof("styling: skipping unparsable @import %q: %v", href, err)
			continue
		}
		expanded = append(expanded, expandImports(imported.Rules, target, fetch, depth+1)...)
	}
	return expanded
}

var importPrelude = regexp.MustCompile(`(?i)^\s*(?:url\(\s*)?["']?([^"')\s]+)["']?\s*\)?`)

// importURL extracts the target URL of an @import prelude, which is either
// a quoted string or a url(…) notation, possibly followed by media queries.
func importURL(prelude string) string {
	m := importPrelude.FindStringSubmatch(prelude)
	if m == nil {
		return ""
	}
	return m[1]
}

var pseudoAttr = regexp.MustCompile(`(\w[\w-]*)\s*=\s*(?:"([^"]*)"|'([^']*)')`)

// parsePseudoAttrs reads the pseudo-attributes of a processing instruction,
// e.g. href="style.css" type="text/css".
func parsePseudoAttrs(inst string) map[string]string {
	attrs := make(map[string]string)
	for _, m := range pseudoAttr.FindAllStringSubmatch(inst, -1) {
		value := m[2]
		if value == "" {
			value = m[3]
		}
		attrs[m[1]] = value
	}
	return attrs
}
