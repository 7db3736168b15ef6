package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import "github.com/beevik/etree"

// Declaration is a single 'name: value' pair as delivered by a stylesheet
// or an inline style attribute. Values are raw: normalization happens when
// a declaration is applied during the cascade.
type Declaration struct {
	Name  string
	Value string
}

// DeclarationList is an ordered sequence of declarations originating from
// one rule block.
type DeclarationList []Declaration

// Matcher returns, for a given element, the declaration lists of all
// stylesheet rules matching that element. The result is pre-sorted by
// increasing selector specificity, with document order breaking ties; the
// cascade applies it as-is, later entries overwriting earlier ones.
//
// A Matcher is constructed once per document and shared by every node of
// that document.
type Matcher interface {
	Match(el *etree.Element) []DeclarationList
}

// MatcherPair bundles the two precedence tiers of a document's stylesheets:
// normal declarations and '!important' declarations.
type MatcherPair struct {
	Normal    Matcher
	Important Matcher
}

// InlineSplitter splits the text of an inline style= attribute into its
// normal and important declaration lists. Malformed declarations are
// dropped silently.
type InlineSplitter func(styleText string) (normal, important DeclarationList)

// NullMatcher is an empty Matcher: it matches no element. It serves as the
// matcher pair for documents without any stylesheet.
var NullMatcher Matcher = nullMatcher{}

type nullMatcher struct{}

func (nullMatcher) Match(*etree.Element) []DeclarationList { return nil }
