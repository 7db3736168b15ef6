package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// XLinkHrefAttr is the Clark-notation key of the xlink-namespaced href
// attribute, as it appears in attribute sets.
const XLinkHrefAttr = "{http://www.w3.org/1999/xlink}href"

// notInherited is the fixed set of attributes that do not propagate from
// parent to child. 'display' is actually inherited but handled differently
// because some markers are part of a none-displaying group.
var notInherited = map[string]bool{
	"clip":         true,
	"clip-path":    true,
	"display":      true,
	"filter":       true,
	"height":       true,
	"id":           true,
	"mask":         true,
	"opacity":      true,
	"overflow":     true,
	"rotate":       true,
	"stop-color":   true,
	"stop-opacity": true,
	"style":        true,
	"transform":    true,
	"viewBox":      true,
	"width":        true,
	"x":            true,
	"y":            true,
	"dx":           true,
	"dy":           true,
	XLinkHrefAttr:  true,
}

// IsInherited returns wether an attribute propagates from parent to child
// by default.
func IsInherited(key string) bool {
	return !notInherited[key]
}

// AttributeSet is an ordered string-keyed map holding a node's resolved
// attributes. Keys are unique; lookup ignores order, but insertion order is
// preserved for iteration and diagnostics. Overwriting a key keeps its
// original position. The zero value is ready to use.
type AttributeSet struct {
	keys   []string
	values map[string]Property
}

// NewAttributeSet returns a new empty attribute set.
func NewAttributeSet() *AttributeSet {
	return &AttributeSet{}
}

// Len returns the number of attributes in the set.
func (as *AttributeSet) Len() int {
	if as == nil {
		return 0
	}
	return len(as.keys)
}

// Has is a predicate wether an attribute is present.
func (as *AttributeSet) Has(key string) bool {
	if as == nil || as.values == nil {
		return false
	}
	_, ok := as.values[key]
	return ok
}

// Get returns an attribute's value, together with an indicator wether it is
// present in the set.
func (as *AttributeSet) Get(key string) (Property, bool) {
	if as == nil || as.values == nil {
		return NullStyle, false
	}
	p, ok := as.values[key]
	return p, ok
}

// Value returns an attribute's value, or dflt if the attribute is unset.
func (as *AttributeSet) Value(key string, dflt Property) Property {
	if p, ok := as.Get(key); ok {
		return p
	}
	return dflt
}

// Set an attribute's value. Overwrites an existing value, if present,
// keeping the attribute's original position.
func (as *AttributeSet) Set(key string, p Property) {
	if as.values == nil {
		as.values = make(map[string]Property)
	}
	if _, exists := as.values[key]; !exists {
		as.keys = append(as.keys, key)
	}
	as.values[key] = p
}

// Delete removes an attribute from the set. Removing an absent attribute is
// a no-op.
func (as *AttributeSet) Delete(key string) {
	if as == nil || as.values == nil {
		return
	}
	if _, exists := as.values[key]; !exists {
		return
	}
	delete(as.values, key)
	for i, k := range as.keys {
		if k == key {
			as.keys = append(as.keys[:i], as.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the attribute names in insertion order. The returned slice
// is a copy.
func (as *AttributeSet) Keys() []string {
	if as == nil {
		return nil
	}
	keys := make([]string, len(as.keys))
	copy(keys, as.keys)
	return keys
}

// Each calls f for every attribute in insertion order.
func (as *AttributeSet) Each(f func(key string, value Property)) {
	if as == nil {
		return
	}
	for _, k := range as.keys {
		f(k, as.values[k])
	}
}

// Properties returns all attributes of the set in insertion order.
func (as *AttributeSet) Properties() []KeyValue {
	if as == nil {
		return nil
	}
	r := make([]KeyValue, 0, len(as.keys))
	for _, k := range as.keys {
		r = append(r, KeyValue{k, as.values[k]})
	}
	return r
}

// Clone returns an independent copy of the set.
func (as *AttributeSet) Clone() *AttributeSet {
	clone := NewAttributeSet()
	as.Each(func(k string, v Property) {
		clone.Set(k, v)
	})
	return clone
}

// InheritedFrom copies every inheritable attribute of parent into as,
// preserving parent's insertion order. Attributes already present keep
// their value.
func (as *AttributeSet) InheritedFrom(parent *AttributeSet) {
	parent.Each(func(k string, v Property) {
		if IsInherited(k) && !as.Has(k) {
			as.Set(k, v)
		}
	})
}

func (as *AttributeSet) String() string {
	s := "{"
	for i, k := range as.Keys() {
		if i > 0 {
			s += " "
		}
		s += k + "=" + string(as.values[k])
	}
	return s + "}"
}
