/*
Package features implements SVG conditional processing.

Elements may restrict their own inclusion with the requiredFeatures,
requiredExtensions and systemLanguage attributes. The tree builder consults
a predicate before building each child; children failing it are omitted from
the tree entirely, and a 'switch' element keeps only the first passing
child.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package features

import (
	"strings"

	"github.com/beevik/etree"
)

// Predicate decides wether an element passes conditional processing.
type Predicate func(el *etree.Element) bool

const featureRoot = "http://www.w3.org/TR/SVG11/feature"

// supportedFeatures is the static SVG 1.1 feature set this tree builder can
// honor.
var supportedFeatures = func() map[string]bool {
	features := []string{
		"SVG",
		"SVG-static",
		"CoreAttribute",
		"Structure",
		"BasicStructure",
		"ContainerAttribute",
		"ConditionalProcessing",
		"Image",
		"Style",
		"ViewportAttribute",
		"Shape",
		"Text",
		"BasicText",
		"PaintAttribute",
		"BasicPaintAttribute",
		"OpacityAttribute",
		"GraphicsAttribute",
		"BasicGraphicsAttribute",
		"Marker",
		"Gradient",
		"Pattern",
		"Clip",
		"BasicClip",
		"Mask",
	}
	m := make(map[string]bool, len(features))
	for _, f := range features {
		m[featureRoot+"#"+f] = true
	}
	return m
}()

// Match is the default predicate, matching against language "en".
var Match = ForLanguage("en")

// ForLanguage returns a predicate evaluating systemLanguage against the
// given language tag. Matching is prefix-based, as mandated for
// systemLanguage: "en" matches "en" and "en-GB".
func ForLanguage(language string) Predicate {
	primary := language
	if i := strings.IndexByte(primary, '-'); i >= 0 {
		primary = primary[:i]
	}
	return func(el *etree.Element) bool {
		if required := el.SelectAttrValue("requiredFeatures", ""); required != "" {
			for _, feature := range strings.Fields(required) {
				if !supportedFeatures[feature] {
					return false
				}
			}
		}
		// no extensions are supported
		if el.SelectAttrValue("requiredExtensions", "") != "" {
			return false
		}
		if langs := el.SelectAttrValue("systemLanguage", ""); langs != "" {
			for _, lang := range strings.Split(langs, ",") {
				lang = strings.TrimSpace(lang)
				if lang == language || strings.HasPrefix(lang, primary+"-") || lang == primary {
					return true
				}
			}
			return false
		}
		return true
	}
}
