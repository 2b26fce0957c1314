// Package geo converts KML geometries to go-geom values and formats
// positions.
package geo

import (
	"github.com/pkg/errors"
	geom "github.com/twpayne/go-geom"

	"kmlstream/pkg/kml"
)

func flat(cs kml.Coordinates) []float64 {
	out := make([]float64, 0, 3*len(cs))
	for _, c := range cs {
		out = append(out, c.Lon, c.Lat, c.Alt)
	}
	return out
}

// FromKML converts g to a three dimensional (lon, lat, alt) go-geom value.
// A Model converts to its location point. Geometries without coordinates
// yield an error.
func FromKML(g kml.Geometry) (geom.T, error) {
	switch v := g.(type) {
	case *kml.Point:
		if len(v.Coordinates) == 0 {
			return nil, errors.New("point without coordinates")
		}
		return geom.NewPointFlat(geom.XYZ, flat(v.Coordinates[:1])), nil
	case *kml.LineString:
		return geom.NewLineStringFlat(geom.XYZ, flat(v.Coordinates)), nil
	case *kml.LinearRing:
		return geom.NewLinearRingFlat(geom.XYZ, flat(v.Coordinates)), nil
	case *kml.Polygon:
		if v.OuterBoundary == nil {
			return nil, errors.New("polygon without outer boundary")
		}
		fc := flat(v.OuterBoundary.Coordinates)
		ends := []int{len(fc)}
		for _, r := range v.InnerBoundaries {
			fc = append(fc, flat(r.Coordinates)...)
			ends = append(ends, len(fc))
		}
		return geom.NewPolygonFlat(geom.XYZ, fc, ends), nil
	case *kml.MultiGeometry:
		gc := geom.NewGeometryCollection()
		for i, c := range v.Geometries {
			t, err := FromKML(c)
			if err != nil {
				return nil, errors.Wrapf(err, "multigeometry member %d", i)
			}
			if err := gc.Push(t); err != nil {
				return nil, errors.WithStack(err)
			}
		}
		return gc, nil
	case *kml.Model:
		if v.Location == nil {
			return nil, errors.New("model without location")
		}
		return geom.NewPointFlat(geom.XYZ, []float64{v.Location.Longitude, v.Location.Latitude, v.Location.Altitude}), nil
	}
	return nil, errors.Errorf("unsupported geometry %T", g)
}

// Extend grows b to cover t. Collections are walked member by member,
// go-geom does not expose their coordinates as one flat slice.
func Extend(b *geom.Bounds, t geom.T) *geom.Bounds {
	if gc, ok := t.(*geom.GeometryCollection); ok {
		for _, m := range gc.Geoms() {
			Extend(b, m)
		}
		return b
	}
	return b.Extend(t)
}
