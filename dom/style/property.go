package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// Property is a raw value for an SVG style attribute. For example, with
//
//	fill: black
//
// a property value of "black" is set. The main purpose of wrapping the raw
// string value into type Property is to provide a small set of predicates
// used during cascade post-processing.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// IsInherit denotes if a property is of inheritence-type "inherit".
// Such a value is never left in a resolved attribute set: it is either
// replaced by the parent's value or removed entirely.
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsCurrentColor denotes if a property carries the literal indirection
// "currentColor", to be substituted by the node's resolved color.
//
// The comparison is case-sensitive: stylesheet values are lowercased by the
// normalizer and will read "currentcolor", but raw XML attributes reach the
// cascade verbatim.
func (p Property) IsCurrentColor() bool {
	return p == "currentColor"
}

// KeyValue is a container for a single style property.
type KeyValue struct {
	Key   string
	Value Property
}

// ColorAttributes lists the paint attributes subject to currentColor
// substitution after the cascade.
var ColorAttributes = []string{
	"fill",
	"flood-color",
	"lighting-color",
	"stop-color",
	"stroke",
}
