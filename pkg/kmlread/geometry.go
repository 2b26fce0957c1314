package kmlread

import (
	"kmlstream/pkg/kml"
	"kmlstream/pkg/xmlevent"
)

// readGeometry dispatches on the AbstractGeometry substitution group.
func (p *parser) readGeometry(ev xmlevent.Event) (g kml.Geometry, ok bool, err error) {
	switch p.name(ev) {
	case "Point":
		g, err = p.readPoint(ev)
	case "LineString":
		g, err = p.readLineString(ev)
	case "LinearRing":
		g, err = p.readLinearRing(ev)
	case "Polygon":
		g, err = p.readPolygon(ev)
	case "MultiGeometry":
		g, err = p.readMultiGeometry(ev)
	case "Model":
		g, err = p.readModel(ev)
	default:
		return nil, false, nil
	}
	return g, true, err
}

func (p *parser) readPoint(start xmlevent.Event) (*kml.Point, error) {
	pt := kml.NewPoint()
	pt.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "extrude":
			return p.boolean(ev, &pt.Extrude)
		case "altitudeMode":
			return p.altitudeMode(ev, &pt.AltitudeMode)
		case "coordinates":
			return p.coordinates(ev, &pt.Coordinates)
		}
		return p.skip(ev)
	})
	return pt, err
}

func (p *parser) readLineString(start xmlevent.Event) (*kml.LineString, error) {
	ls := kml.NewLineString()
	ls.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "extrude":
			return p.boolean(ev, &ls.Extrude)
		case "tessellate":
			return p.boolean(ev, &ls.Tessellate)
		case "altitudeMode":
			return p.altitudeMode(ev, &ls.AltitudeMode)
		case "coordinates":
			return p.coordinates(ev, &ls.Coordinates)
		}
		return p.skip(ev)
	})
	return ls, err
}

func (p *parser) readLinearRing(start xmlevent.Event) (*kml.LinearRing, error) {
	lr := kml.NewLinearRing()
	lr.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "extrude":
			return p.boolean(ev, &lr.Extrude)
		case "tessellate":
			return p.boolean(ev, &lr.Tessellate)
		case "altitudeMode":
			return p.altitudeMode(ev, &lr.AltitudeMode)
		case "coordinates":
			return p.coordinates(ev, &lr.Coordinates)
		}
		return p.skip(ev)
	})
	return lr, err
}

func (p *parser) readPolygon(start xmlevent.Event) (*kml.Polygon, error) {
	pg := kml.NewPolygon()
	pg.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "extrude":
			return p.boolean(ev, &pg.Extrude)
		case "tessellate":
			return p.boolean(ev, &pg.Tessellate)
		case "altitudeMode":
			return p.altitudeMode(ev, &pg.AltitudeMode)
		case "outerBoundaryIs":
			return p.readBoundary(ev, func(lr *kml.LinearRing) { pg.OuterBoundary = lr })
		case "innerBoundaryIs":
			return p.readBoundary(ev, func(lr *kml.LinearRing) { pg.InnerBoundaries = append(pg.InnerBoundaries, lr) })
		}
		return p.skip(ev)
	})
	return pg, err
}

// readBoundary hands every LinearRing inside a boundary wrapper to add.
func (p *parser) readBoundary(start xmlevent.Event, add func(*kml.LinearRing)) error {
	return p.each(start, func(ev xmlevent.Event) error {
		if p.name(ev) != "LinearRing" {
			return p.skip(ev)
		}
		lr, err := p.readLinearRing(ev)
		add(lr)
		return err
	})
}

func (p *parser) readMultiGeometry(start xmlevent.Event) (*kml.MultiGeometry, error) {
	mg := kml.NewMultiGeometry()
	mg.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		if g, ok, err := p.readGeometry(ev); ok {
			mg.Geometries = append(mg.Geometries, g)
			return err
		}
		return p.skip(ev)
	})
	return mg, err
}

func (p *parser) readModel(start xmlevent.Event) (*kml.Model, error) {
	m := kml.NewModel()
	m.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "altitudeMode":
			return p.altitudeMode(ev, &m.AltitudeMode)
		case "Location":
			l, err := p.readLocation(ev)
			m.Location = l
			return err
		case "Orientation":
			o, err := p.readOrientation(ev)
			m.Orientation = o
			return err
		case "Scale":
			s, err := p.readScale(ev)
			m.Scale = s
			return err
		case "Link":
			l, err := p.readLink(ev)
			m.Link = l
			return err
		case "ResourceMap":
			r, err := p.readResourceMap(ev)
			m.ResourceMap = r
			return err
		}
		return p.skip(ev)
	})
	return m, err
}

func (p *parser) readLocation(start xmlevent.Event) (*kml.Location, error) {
	l := &kml.Location{IdAttributes: p.idAttributes(start)}
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "longitude":
			return p.angle(ev, &l.Longitude, kml.Angle180)
		case "latitude":
			return p.angle(ev, &l.Latitude, kml.Angle90)
		case "altitude":
			return p.float(ev, &l.Altitude)
		}
		return p.skip(ev)
	})
	return l, err
}

func (p *parser) readOrientation(start xmlevent.Event) (*kml.Orientation, error) {
	o := &kml.Orientation{IdAttributes: p.idAttributes(start)}
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "heading":
			return p.angle(ev, &o.Heading, kml.Angle360)
		case "tilt":
			return p.angle(ev, &o.Tilt, kml.Angle180)
		case "roll":
			return p.angle(ev, &o.Roll, kml.Angle180)
		}
		return p.skip(ev)
	})
	return o, err
}

func (p *parser) readScale(start xmlevent.Event) (*kml.Scale, error) {
	s := kml.NewScale()
	s.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "x":
			return p.float(ev, &s.X)
		case "y":
			return p.float(ev, &s.Y)
		case "z":
			return p.float(ev, &s.Z)
		}
		return p.skip(ev)
	})
	return s, err
}

func (p *parser) readResourceMap(start xmlevent.Event) (*kml.ResourceMap, error) {
	rm := &kml.ResourceMap{IdAttributes: p.idAttributes(start)}
	err := p.each(start, func(ev xmlevent.Event) error {
		if p.name(ev) != "Alias" {
			return p.skip(ev)
		}
		a := &kml.Alias{IdAttributes: p.idAttributes(ev)}
		rm.Aliases = append(rm.Aliases, a)
		return p.each(ev, func(c xmlevent.Event) error {
			switch p.name(c) {
			case "targetHref":
				return p.str(c, &a.TargetHref)
			case "sourceHref":
				return p.str(c, &a.SourceHref)
			}
			return p.skip(c)
		})
	})
	return rm, err
}
