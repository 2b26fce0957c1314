package kml

// Geometry is the AbstractGeometry group.
type Geometry interface {
	Object
	isGeometry()
}

type Point struct {
	IdAttributes
	Extrude      bool
	AltitudeMode AltitudeMode
	Coordinates  Coordinates
}

func NewPoint() *Point {
	return &Point{Extrude: DefaultExtrude, AltitudeMode: DefaultAltitudeMode}
}

type LineString struct {
	IdAttributes
	Extrude      bool
	Tessellate   bool
	AltitudeMode AltitudeMode
	Coordinates  Coordinates
}

func NewLineString() *LineString {
	return &LineString{AltitudeMode: DefaultAltitudeMode}
}

type LinearRing struct {
	IdAttributes
	Extrude      bool
	Tessellate   bool
	AltitudeMode AltitudeMode
	Coordinates  Coordinates
}

func NewLinearRing() *LinearRing {
	return &LinearRing{AltitudeMode: DefaultAltitudeMode}
}

type Polygon struct {
	IdAttributes
	Extrude         bool
	Tessellate      bool
	AltitudeMode    AltitudeMode
	OuterBoundary   *LinearRing
	InnerBoundaries []*LinearRing
}

func NewPolygon() *Polygon {
	return &Polygon{AltitudeMode: DefaultAltitudeMode}
}

type MultiGeometry struct {
	IdAttributes
	Geometries []Geometry
}

func NewMultiGeometry() *MultiGeometry {
	return &MultiGeometry{}
}

type Model struct {
	IdAttributes
	AltitudeMode AltitudeMode
	Location     *Location
	Orientation  *Orientation
	Scale        *Scale
	Link         *Link
	ResourceMap  *ResourceMap
}

func NewModel() *Model {
	return &Model{AltitudeMode: DefaultAltitudeMode}
}

type Location struct {
	IdAttributes
	Longitude float64
	Latitude  float64
	Altitude  float64
}

type Orientation struct {
	IdAttributes
	Heading float64
	Tilt    float64
	Roll    float64
}

type Scale struct {
	IdAttributes
	X float64
	Y float64
	Z float64
}

func NewScale() *Scale {
	return &Scale{X: DefaultScale, Y: DefaultScale, Z: DefaultScale}
}

type ResourceMap struct {
	IdAttributes
	Aliases []*Alias
}

type Alias struct {
	IdAttributes
	TargetHref string
	SourceHref string
}

func (*Point) isGeometry()         {}
func (*LineString) isGeometry()    {}
func (*LinearRing) isGeometry()    {}
func (*Polygon) isGeometry()       {}
func (*MultiGeometry) isGeometry() {}
func (*Model) isGeometry()         {}

// GeometryCoordinates returns every coordinate of g in document order.
// Model geometries contribute their location.
func GeometryCoordinates(g Geometry) Coordinates {
	var out Coordinates
	switch v := g.(type) {
	case *Point:
		out = append(out, v.Coordinates...)
	case *LineString:
		out = append(out, v.Coordinates...)
	case *LinearRing:
		out = append(out, v.Coordinates...)
	case *Polygon:
		if v.OuterBoundary != nil {
			out = append(out, v.OuterBoundary.Coordinates...)
		}
		for _, r := range v.InnerBoundaries {
			out = append(out, r.Coordinates...)
		}
	case *MultiGeometry:
		for _, c := range v.Geometries {
			out = append(out, GeometryCoordinates(c)...)
		}
	case *Model:
		if v.Location != nil {
			out = append(out, Coordinate{Lon: v.Location.Longitude, Lat: v.Location.Latitude, Alt: v.Location.Altitude})
		}
	}
	return out
}
