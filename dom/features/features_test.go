package features

import (
	"testing"

	"github.com/beevik/etree"
)

func element(attrs map[string]string) *etree.Element {
	el := etree.NewElement("g")
	for k, v := range attrs {
		el.CreateAttr(k, v)
	}
	return el
}

func TestMatchPlainElement(t *testing.T) {
	if !Match(element(nil)) {
		t.Error("expected element without conditions to match, didn't")
	}
}

func TestRequiredFeatures(t *testing.T) {
	el := element(map[string]string{
		"requiredFeatures": "http://www.w3.org/TR/SVG11/feature#Shape",
	})
	if !Match(el) {
		t.Error("expected supported feature to match, didn't")
	}
	el = element(map[string]string{
		"requiredFeatures": "http://www.w3.org/TR/SVG11/feature#Font",
	})
	if Match(el) {
		t.Error("expected unsupported feature to fail, didn't")
	}
}

func TestRequiredExtensions(t *testing.T) {
	el := element(map[string]string{
		"requiredExtensions": "http://example.org/ext",
	})
	if Match(el) {
		t.Error("expected element requiring extensions to fail, didn't")
	}
}

func TestSystemLanguage(t *testing.T) {
	match := ForLanguage("en-US")
	tests := []struct {
		langs string
		want  bool
	}{
		{"en", true},
		{"en-GB, fr", true}, // prefix match on the primary tag
		{"fr, de", false},
		{"en-US", true},
	}
	for _, tc := range tests {
		el := element(map[string]string{"systemLanguage": tc.langs})
		if got := match(el); got != tc.want {
			t.Errorf("systemLanguage %q: expected %v, have %v", tc.langs, tc.want, got)
		}
	}
}
