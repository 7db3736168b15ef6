package style

import (
	"reflect"
	"testing"
)

func TestAttributeSetInsertionOrder(t *testing.T) {
	as := NewAttributeSet()
	as.Set("fill", "red")
	as.Set("stroke", "blue")
	as.Set("color", "green")
	as.Set("fill", "black") // overwrite keeps position
	want := []string{"fill", "stroke", "color"}
	if !reflect.DeepEqual(as.Keys(), want) {
		t.Errorf("expected keys %v, have %v", want, as.Keys())
	}
	if v, _ := as.Get("fill"); v != "black" {
		t.Errorf("expected fill to be overwritten to 'black', is %q", v)
	}
}

func TestAttributeSetDelete(t *testing.T) {
	as := NewAttributeSet()
	as.Set("a", "1")
	as.Set("b", "2")
	as.Set("c", "3")
	as.Delete("b")
	as.Delete("not-present")
	want := []string{"a", "c"}
	if !reflect.DeepEqual(as.Keys(), want) {
		t.Errorf("expected keys %v after delete, have %v", want, as.Keys())
	}
	if as.Has("b") {
		t.Error("expected 'b' to be gone, isn't")
	}
}

func TestInheritedFromSkipsNonInherited(t *testing.T) {
	parent := NewAttributeSet()
	parent.Set("fill", "red")
	parent.Set("id", "parent")
	parent.Set("transform", "scale(2)")
	parent.Set("font-family", "Serif")
	parent.Set(XLinkHrefAttr, "#other")
	child := NewAttributeSet()
	child.InheritedFrom(parent)
	for _, key := range []string{"id", "transform", XLinkHrefAttr} {
		if child.Has(key) {
			t.Errorf("expected non-inherited %q not to propagate, did", key)
		}
	}
	for _, key := range []string{"fill", "font-family"} {
		if !child.Has(key) {
			t.Errorf("expected %q to propagate, didn't", key)
		}
	}
}

func TestAttributeSetZeroValue(t *testing.T) {
	var as AttributeSet
	if as.Has("x") || as.Len() != 0 {
		t.Error("zero value should be empty")
	}
	as.Set("x", "1")
	if v := as.Value("x", NullStyle); v != "1" {
		t.Errorf("expected '1', have %q", v)
	}
	if v := as.Value("y", "dflt"); v != "dflt" {
		t.Errorf("expected default for missing key, have %q", v)
	}
}
