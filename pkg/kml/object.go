// Package kml holds the in-memory KML 2.2 document model.
//
// Values are built once by a reader and treated as immutable afterwards.
// The polymorphic schema groups (features, geometries, style selectors,
// views and time primitives) are closed sets: each group is an interface
// implemented only by the pointer types of this package.
package kml

// IdAttributes carries the id and targetId attributes present on every
// KML object. Uniqueness of ids is not enforced by the model.
type IdAttributes struct {
	ID       string
	TargetID string
}

func (a IdAttributes) Attributes() IdAttributes {
	return a
}

// Object is any identifiable KML value.
type Object interface {
	Attributes() IdAttributes
}

// Kml is the document root.
type Kml struct {
	Hint               string
	NetworkLinkControl *NetworkLinkControl
	Feature            Feature
}
