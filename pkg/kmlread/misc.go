package kmlread

import (
	"kmlstream/pkg/kml"
	"kmlstream/pkg/xmlevent"
)

func (p *parser) readView(ev xmlevent.Event) (v kml.View, ok bool, err error) {
	switch p.name(ev) {
	case "Camera":
		v, err = p.readCamera(ev)
	case "LookAt":
		v, err = p.readLookAt(ev)
	default:
		return nil, false, nil
	}
	return v, true, err
}

func (p *parser) readTimePrimitive(ev xmlevent.Event) (t kml.TimePrimitive, ok bool, err error) {
	switch p.name(ev) {
	case "TimeStamp":
		t, err = p.readTimeStamp(ev)
	case "TimeSpan":
		t, err = p.readTimeSpan(ev)
	default:
		return nil, false, nil
	}
	return t, true, err
}

func (p *parser) readCamera(start xmlevent.Event) (*kml.Camera, error) {
	c := kml.NewCamera()
	c.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "longitude":
			return p.angle(ev, &c.Longitude, kml.Angle180)
		case "latitude":
			return p.angle(ev, &c.Latitude, kml.Angle90)
		case "altitude":
			return p.float(ev, &c.Altitude)
		case "heading":
			return p.angle(ev, &c.Heading, kml.Angle360)
		case "tilt":
			return p.angle(ev, &c.Tilt, kml.Angle180)
		case "roll":
			return p.angle(ev, &c.Roll, kml.Angle180)
		case "altitudeMode":
			return p.altitudeMode(ev, &c.AltitudeMode)
		}
		return p.skip(ev)
	})
	return c, err
}

func (p *parser) readLookAt(start xmlevent.Event) (*kml.LookAt, error) {
	la := kml.NewLookAt()
	la.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "longitude":
			return p.angle(ev, &la.Longitude, kml.Angle180)
		case "latitude":
			return p.angle(ev, &la.Latitude, kml.Angle90)
		case "altitude":
			return p.float(ev, &la.Altitude)
		case "heading":
			return p.angle(ev, &la.Heading, kml.Angle360)
		case "tilt":
			return p.angle(ev, &la.Tilt, kml.Angle180)
		case "range":
			return p.float(ev, &la.Range)
		case "altitudeMode":
			return p.altitudeMode(ev, &la.AltitudeMode)
		}
		return p.skip(ev)
	})
	return la, err
}

func (p *parser) readTimeStamp(start xmlevent.Event) (*kml.TimeStamp, error) {
	ts := &kml.TimeStamp{IdAttributes: p.idAttributes(start)}
	err := p.each(start, func(ev xmlevent.Event) error {
		if p.name(ev) == "when" {
			return p.dateTime(ev, &ts.When)
		}
		return p.skip(ev)
	})
	return ts, err
}

func (p *parser) readTimeSpan(start xmlevent.Event) (*kml.TimeSpan, error) {
	ts := &kml.TimeSpan{IdAttributes: p.idAttributes(start)}
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "begin":
			return p.dateTime(ev, &ts.Begin)
		case "end":
			return p.dateTime(ev, &ts.End)
		}
		return p.skip(ev)
	})
	return ts, err
}

func (p *parser) readRegion(start xmlevent.Event) (*kml.Region, error) {
	r := &kml.Region{IdAttributes: p.idAttributes(start)}
	err := p.each(start, func(ev xmlevent.Event) error {
		var err error
		switch p.name(ev) {
		case "LatLonAltBox":
			r.LatLonAltBox, err = p.readLatLonAltBox(ev)
		case "Lod":
			r.Lod, err = p.readLod(ev)
		default:
			err = p.skip(ev)
		}
		return err
	})
	return r, err
}

func (p *parser) readLatLonAltBox(start xmlevent.Event) (*kml.LatLonAltBox, error) {
	b := kml.NewLatLonAltBox()
	b.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "north":
			return p.angle(ev, &b.North, kml.Angle90)
		case "south":
			return p.angle(ev, &b.South, kml.Angle90)
		case "east":
			return p.angle(ev, &b.East, kml.Angle180)
		case "west":
			return p.angle(ev, &b.West, kml.Angle180)
		case "minAltitude":
			return p.float(ev, &b.MinAltitude)
		case "maxAltitude":
			return p.float(ev, &b.MaxAltitude)
		case "altitudeMode":
			return p.altitudeMode(ev, &b.AltitudeMode)
		}
		return p.skip(ev)
	})
	return b, err
}

func (p *parser) readLod(start xmlevent.Event) (*kml.Lod, error) {
	l := kml.NewLod()
	l.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "minLodPixels":
			return p.float(ev, &l.MinLodPixels)
		case "maxLodPixels":
			return p.float(ev, &l.MaxLodPixels)
		case "minFadeExtent":
			return p.float(ev, &l.MinFadeExtent)
		case "maxFadeExtent":
			return p.float(ev, &l.MaxFadeExtent)
		}
		return p.skip(ev)
	})
	return l, err
}

func (p *parser) readLatLonBox(start xmlevent.Event) (*kml.LatLonBox, error) {
	b := &kml.LatLonBox{IdAttributes: p.idAttributes(start)}
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "north":
			return p.angle(ev, &b.North, kml.Angle90)
		case "south":
			return p.angle(ev, &b.South, kml.Angle90)
		case "east":
			return p.angle(ev, &b.East, kml.Angle180)
		case "west":
			return p.angle(ev, &b.West, kml.Angle180)
		case "rotation":
			return p.angle(ev, &b.Rotation, kml.Angle180)
		}
		return p.skip(ev)
	})
	return b, err
}

func (p *parser) readExtendedData(start xmlevent.Event) (*kml.ExtendedData, error) {
	x := &kml.ExtendedData{}
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "Data":
			d, err := p.readData(ev)
			x.Data = append(x.Data, d)
			return err
		case "SchemaData":
			sd, err := p.readSchemaData(ev)
			x.SchemaData = append(x.SchemaData, sd)
			return err
		}
		return p.skip(ev)
	})
	return x, err
}

func (p *parser) readData(start xmlevent.Event) (*kml.Data, error) {
	d := &kml.Data{IdAttributes: p.idAttributes(start)}
	d.Name, _ = start.Attr("name")
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "displayName":
			return p.str(ev, &d.DisplayName)
		case "value":
			return p.str(ev, &d.Value)
		}
		return p.skip(ev)
	})
	return d, err
}

func (p *parser) readSchemaData(start xmlevent.Event) (*kml.SchemaData, error) {
	sd := &kml.SchemaData{IdAttributes: p.idAttributes(start)}
	sd.SchemaURL, _ = start.Attr("schemaUrl")
	err := p.each(start, func(ev xmlevent.Event) error {
		if p.name(ev) != "SimpleData" {
			return p.skip(ev)
		}
		s := &kml.SimpleData{}
		s.Name, _ = ev.Attr("name")
		sd.SimpleData = append(sd.SimpleData, s)
		return p.str(ev, &s.Value)
	})
	return sd, err
}

func (p *parser) readNetworkLinkControl(start xmlevent.Event) (*kml.NetworkLinkControl, error) {
	nlc := kml.NewNetworkLinkControl()
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "minRefreshPeriod":
			return p.float(ev, &nlc.MinRefreshPeriod)
		case "maxSessionLength":
			return p.float(ev, &nlc.MaxSessionLength)
		case "cookie":
			return p.str(ev, &nlc.Cookie)
		case "message":
			return p.str(ev, &nlc.Message)
		case "linkName":
			return p.str(ev, &nlc.LinkName)
		case "linkDescription":
			return p.str(ev, &nlc.LinkDescription)
		case "linkSnippet":
			s, err := p.readSnippet(ev)
			nlc.LinkSnippet = s
			return err
		case "expires":
			return p.dateTime(ev, &nlc.Expires)
		case "Update":
			u, err := p.readUpdate(ev)
			nlc.Update = u
			return err
		}
		if v, ok, err := p.readView(ev); ok {
			nlc.View = v
			return err
		}
		return p.skip(ev)
	})
	return nlc, err
}

func (p *parser) readUpdate(start xmlevent.Event) (*kml.Update, error) {
	u := &kml.Update{}
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "targetHref":
			return p.str(ev, &u.TargetHref)
		case "Create":
			c := &kml.Create{}
			u.Operations = append(u.Operations, c)
			return p.each(ev, func(child xmlevent.Event) error {
				if f, ok, err := p.readFeature(child); ok {
					c.Features = append(c.Features, f)
					return err
				}
				return p.skip(child)
			})
		case "Delete":
			d := &kml.Delete{}
			u.Operations = append(u.Operations, d)
			return p.each(ev, func(child xmlevent.Event) error {
				if f, ok, err := p.readFeature(child); ok {
					d.Features = append(d.Features, f)
					return err
				}
				return p.skip(child)
			})
		case "Change":
			c := &kml.Change{}
			u.Operations = append(u.Operations, c)
			return p.each(ev, func(child xmlevent.Event) error {
				if o, ok, err := p.readObject(child); ok {
					c.Objects = append(c.Objects, o)
					return err
				}
				return p.skip(child)
			})
		}
		return p.skip(ev)
	})
	return u, err
}

// readObject reads any object that may be the target of a Change.
func (p *parser) readObject(ev xmlevent.Event) (kml.Object, bool, error) {
	if f, ok, err := p.readFeature(ev); ok {
		return f, true, err
	}
	if g, ok, err := p.readGeometry(ev); ok {
		return g, true, err
	}
	if s, ok, err := p.readStyleSelector(ev); ok {
		return s, true, err
	}
	if v, ok, err := p.readView(ev); ok {
		return v, true, err
	}
	if t, ok, err := p.readTimePrimitive(ev); ok {
		return t, true, err
	}
	var o kml.Object
	var err error
	switch p.name(ev) {
	case "Region":
		o, err = p.readRegion(ev)
	case "Link":
		o, err = p.readLink(ev)
	case "IconStyle":
		o, err = p.readIconStyle(ev)
	case "LabelStyle":
		o, err = p.readLabelStyle(ev)
	case "LineStyle":
		o, err = p.readLineStyle(ev)
	case "PolyStyle":
		o, err = p.readPolyStyle(ev)
	case "BalloonStyle":
		o, err = p.readBalloonStyle(ev)
	case "ListStyle":
		o, err = p.readListStyle(ev)
	default:
		return nil, false, nil
	}
	return o, true, err
}
