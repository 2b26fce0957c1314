package kmlwrite

import (
	gokml "github.com/twpayne/go-kml"

	"kmlstream/pkg/kml"
)

// Geometry builds the element for any geometry variant.
func Geometry(g kml.Geometry) gokml.Element {
	switch v := g.(type) {
	case *kml.Point:
		var es elems
		if v.Extrude {
			es.add(gokml.Extrude(true))
		}
		es.altitudeMode(v.AltitudeMode)
		es.coordinates(v.Coordinates)
		return withIDs(gokml.Point(es...), v.IdAttributes)
	case *kml.LineString:
		es := lineFields(v.Extrude, v.Tessellate, v.AltitudeMode)
		es.coordinates(v.Coordinates)
		return withIDs(gokml.LineString(es...), v.IdAttributes)
	case *kml.LinearRing:
		return linearRing(v)
	case *kml.Polygon:
		es := lineFields(v.Extrude, v.Tessellate, v.AltitudeMode)
		if v.OuterBoundary != nil {
			es.add(gokml.OuterBoundaryIs(linearRing(v.OuterBoundary)))
		}
		for _, r := range v.InnerBoundaries {
			es.add(gokml.InnerBoundaryIs(linearRing(r)))
		}
		return withIDs(gokml.Polygon(es...), v.IdAttributes)
	case *kml.MultiGeometry:
		var es elems
		for _, c := range v.Geometries {
			es.add(Geometry(c))
		}
		return withIDs(gokml.MultiGeometry(es...), v.IdAttributes)
	case *kml.Model:
		return model(v)
	}
	return nil
}

func lineFields(extrude, tessellate bool, mode kml.AltitudeMode) elems {
	var es elems
	if extrude {
		es.add(gokml.Extrude(true))
	}
	if tessellate {
		es.add(gokml.Tessellate(true))
	}
	es.altitudeMode(mode)
	return es
}

func linearRing(r *kml.LinearRing) *gokml.CompoundElement {
	es := lineFields(r.Extrude, r.Tessellate, r.AltitudeMode)
	es.coordinates(r.Coordinates)
	return withIDs(gokml.LinearRing(es...), r.IdAttributes)
}

func model(m *kml.Model) gokml.Element {
	var es elems
	es.altitudeMode(m.AltitudeMode)
	if l := m.Location; l != nil {
		var le elems
		le.float("longitude", l.Longitude, 0)
		le.float("latitude", l.Latitude, 0)
		le.float("altitude", l.Altitude, 0)
		es.add(withIDs(compound("Location", le...), l.IdAttributes))
	}
	if o := m.Orientation; o != nil {
		var oe elems
		oe.float("heading", o.Heading, 0)
		oe.float("tilt", o.Tilt, 0)
		oe.float("roll", o.Roll, 0)
		es.add(withIDs(compound("Orientation", oe...), o.IdAttributes))
	}
	if s := m.Scale; s != nil {
		var se elems
		se.float("x", s.X, kml.DefaultScale)
		se.float("y", s.Y, kml.DefaultScale)
		se.float("z", s.Z, kml.DefaultScale)
		es.add(withIDs(compound("Scale", se...), s.IdAttributes))
	}
	if m.Link != nil {
		es.add(link("Link", m.Link))
	}
	if rm := m.ResourceMap; rm != nil {
		var ae elems
		for _, a := range rm.Aliases {
			var fe elems
			fe.str("targetHref", a.TargetHref)
			fe.str("sourceHref", a.SourceHref)
			ae.add(withIDs(compound("Alias", fe...), a.IdAttributes))
		}
		es.add(withIDs(compound("ResourceMap", ae...), rm.IdAttributes))
	}
	return withIDs(compound("Model", es...), m.IdAttributes)
}
