package kmlread

import (
	"kmlstream/pkg/kml"
	"kmlstream/pkg/xmlevent"
)

func (p *parser) readKml(start xmlevent.Event) (*kml.Kml, error) {
	k := &kml.Kml{}
	k.Hint, _ = start.Attr("hint")
	err := p.each(start, func(ev xmlevent.Event) error {
		if p.name(ev) == "NetworkLinkControl" {
			nlc, err := p.readNetworkLinkControl(ev)
			k.NetworkLinkControl = nlc
			return err
		}
		// the schema allows one root feature; a later one replaces it
		if f, ok, err := p.readFeature(ev); ok {
			k.Feature = f
			return err
		}
		return p.skip(ev)
	})
	return k, err
}

// readFeature dispatches on the AbstractFeature substitution group. ok is
// false, and nothing is consumed, when ev is not a feature.
func (p *parser) readFeature(ev xmlevent.Event) (f kml.Feature, ok bool, err error) {
	switch p.name(ev) {
	case "Placemark":
		f, err = p.readPlacemark(ev)
	case "Folder":
		f, err = p.readFolder(ev)
	case "Document":
		f, err = p.readDocument(ev)
	case "NetworkLink":
		f, err = p.readNetworkLink(ev)
	case "GroundOverlay":
		f, err = p.readGroundOverlay(ev)
	case "ScreenOverlay":
		f, err = p.readScreenOverlay(ev)
	case "PhotoOverlay":
		f, err = p.readPhotoOverlay(ev)
	default:
		return nil, false, nil
	}
	return f, true, err
}

// featureField reads one child of the AbstractFeature element set into fd.
func (p *parser) featureField(fd *kml.FeatureData, ev xmlevent.Event) (bool, error) {
	switch p.name(ev) {
	case "name":
		return true, p.str(ev, &fd.Name)
	case "visibility":
		return true, p.boolean(ev, &fd.Visibility)
	case "open":
		return true, p.boolean(ev, &fd.Open)
	case "atom:author":
		a, err := p.readAuthor(ev)
		fd.Author = a
		return true, err
	case "atom:link":
		fd.AtomLink = &kml.AtomLink{}
		fd.AtomLink.Href, _ = ev.Attr("href")
		return true, p.skip(ev)
	case "address":
		return true, p.str(ev, &fd.Address)
	case "phoneNumber":
		return true, p.str(ev, &fd.PhoneNumber)
	case "Snippet", "snippet":
		s, err := p.readSnippet(ev)
		fd.Snippet = s
		return true, err
	case "description":
		return true, p.str(ev, &fd.Description)
	case "styleUrl":
		return true, p.str(ev, &fd.StyleURL)
	case "Region":
		r, err := p.readRegion(ev)
		fd.Region = r
		return true, err
	case "ExtendedData":
		x, err := p.readExtendedData(ev)
		fd.ExtendedData = x
		return true, err
	}
	if v, ok, err := p.readView(ev); ok {
		fd.View = v
		return true, err
	}
	if t, ok, err := p.readTimePrimitive(ev); ok {
		fd.TimePrimitive = t
		return true, err
	}
	if s, ok, err := p.readStyleSelector(ev); ok {
		fd.StyleSelectors = append(fd.StyleSelectors, s)
		return true, err
	}
	return false, nil
}

func (p *parser) readAuthor(start xmlevent.Event) (*kml.Author, error) {
	a := &kml.Author{}
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "atom:name":
			return p.str(ev, &a.Name)
		case "atom:uri":
			return p.str(ev, &a.URI)
		case "atom:email":
			return p.str(ev, &a.Email)
		}
		return p.skip(ev)
	})
	return a, err
}

func (p *parser) readSnippet(start xmlevent.Event) (*kml.Snippet, error) {
	s := kml.NewSnippet()
	if v, ok := start.Attr("maxLines"); ok {
		if n, err := kml.ParseInt(v); err == nil {
			s.MaxLines = n
		} else {
			p.warn(start.Local, err)
		}
	}
	return s, p.str(start, &s.Text)
}

func (p *parser) readPlacemark(start xmlevent.Event) (*kml.Placemark, error) {
	pm := kml.NewPlacemark()
	pm.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		if ok, err := p.featureField(&pm.FeatureData, ev); ok {
			return err
		}
		if g, ok, err := p.readGeometry(ev); ok {
			pm.Geometry = g
			return err
		}
		return p.skip(ev)
	})
	return pm, err
}

func (p *parser) readFolder(start xmlevent.Event) (*kml.Folder, error) {
	f := kml.NewFolder()
	f.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		if ok, err := p.featureField(&f.FeatureData, ev); ok {
			return err
		}
		if c, ok, err := p.readFeature(ev); ok {
			f.Features = append(f.Features, c)
			return err
		}
		return p.skip(ev)
	})
	return f, err
}

func (p *parser) readDocument(start xmlevent.Event) (*kml.Document, error) {
	d := kml.NewDocument()
	d.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		if p.name(ev) == "Schema" {
			s, err := p.readSchema(ev)
			d.Schemas = append(d.Schemas, s)
			return err
		}
		if ok, err := p.featureField(&d.FeatureData, ev); ok {
			return err
		}
		if c, ok, err := p.readFeature(ev); ok {
			d.Features = append(d.Features, c)
			return err
		}
		return p.skip(ev)
	})
	return d, err
}

func (p *parser) readSchema(start xmlevent.Event) (*kml.Schema, error) {
	s := &kml.Schema{}
	s.ID, _ = start.Attr("id")
	s.Name, _ = start.Attr("name")
	err := p.each(start, func(ev xmlevent.Event) error {
		if p.name(ev) != "SimpleField" {
			return p.skip(ev)
		}
		sf := &kml.SimpleField{}
		sf.Type, _ = ev.Attr("type")
		sf.Name, _ = ev.Attr("name")
		s.SimpleFields = append(s.SimpleFields, sf)
		return p.each(ev, func(c xmlevent.Event) error {
			if p.name(c) == "displayName" {
				return p.str(c, &sf.DisplayName)
			}
			return p.skip(c)
		})
	})
	return s, err
}

func (p *parser) readNetworkLink(start xmlevent.Event) (*kml.NetworkLink, error) {
	nl := kml.NewNetworkLink()
	nl.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "refreshVisibility":
			return p.boolean(ev, &nl.RefreshVisibility)
		case "flyToView":
			return p.boolean(ev, &nl.FlyToView)
		case "Link":
			l, err := p.readLink(ev)
			nl.Link = l
			return err
		case "Url":
			l, err := p.readURL(ev)
			nl.Link = l
			return err
		}
		if ok, err := p.featureField(&nl.FeatureData, ev); ok {
			return err
		}
		return p.skip(ev)
	})
	return nl, err
}

// overlayField reads one child of the AbstractOverlay element set.
func (p *parser) overlayField(od *kml.OverlayData, ev xmlevent.Event) (bool, error) {
	switch p.name(ev) {
	case "color":
		return true, p.color(ev, &od.Color)
	case "drawOrder":
		return true, p.integer(ev, &od.DrawOrder)
	case "Icon":
		l, err := p.readIcon(ev)
		od.Icon = l
		return true, err
	}
	return p.featureField(&od.FeatureData, ev)
}

func (p *parser) readGroundOverlay(start xmlevent.Event) (*kml.GroundOverlay, error) {
	g := kml.NewGroundOverlay()
	g.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "altitude":
			return p.float(ev, &g.Altitude)
		case "altitudeMode":
			return p.altitudeMode(ev, &g.AltitudeMode)
		case "LatLonBox":
			b, err := p.readLatLonBox(ev)
			g.LatLonBox = b
			return err
		}
		if ok, err := p.overlayField(&g.OverlayData, ev); ok {
			return err
		}
		return p.skip(ev)
	})
	return g, err
}

func (p *parser) readScreenOverlay(start xmlevent.Event) (*kml.ScreenOverlay, error) {
	s := kml.NewScreenOverlay()
	s.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		var dst **kml.Vec2
		switch p.name(ev) {
		case "overlayXY":
			dst = &s.OverlayXY
		case "screenXY":
			dst = &s.ScreenXY
		case "rotationXY":
			dst = &s.RotationXY
		case "size":
			dst = &s.Size
		case "rotation":
			return p.angle(ev, &s.Rotation, kml.Angle180)
		default:
			if ok, err := p.overlayField(&s.OverlayData, ev); ok {
				return err
			}
			return p.skip(ev)
		}
		v, err := p.readVec2(ev)
		*dst = v
		return err
	})
	return s, err
}

func (p *parser) readPhotoOverlay(start xmlevent.Event) (*kml.PhotoOverlay, error) {
	po := kml.NewPhotoOverlay()
	po.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "rotation":
			return p.angle(ev, &po.Rotation, kml.Angle180)
		case "ViewVolume":
			v, err := p.readViewVolume(ev)
			po.ViewVolume = v
			return err
		case "ImagePyramid":
			ip, err := p.readImagePyramid(ev)
			po.ImagePyramid = ip
			return err
		case "Point":
			pt, err := p.readPoint(ev)
			po.Point = pt
			return err
		case "shape":
			return enum(p, ev, &po.Shape, kml.ParseShape)
		}
		if ok, err := p.overlayField(&po.OverlayData, ev); ok {
			return err
		}
		return p.skip(ev)
	})
	return po, err
}

func (p *parser) readViewVolume(start xmlevent.Event) (*kml.ViewVolume, error) {
	v := &kml.ViewVolume{IdAttributes: p.idAttributes(start)}
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "leftFov":
			return p.angle(ev, &v.LeftFov, kml.Angle180)
		case "rightFov":
			return p.angle(ev, &v.RightFov, kml.Angle180)
		case "bottomFov":
			return p.angle(ev, &v.BottomFov, kml.Angle90)
		case "topFov":
			return p.angle(ev, &v.TopFov, kml.Angle90)
		case "near":
			return p.float(ev, &v.Near)
		}
		return p.skip(ev)
	})
	return v, err
}

func (p *parser) readImagePyramid(start xmlevent.Event) (*kml.ImagePyramid, error) {
	ip := kml.NewImagePyramid()
	ip.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "tileSize":
			return p.integer(ev, &ip.TileSize)
		case "maxWidth":
			return p.integer(ev, &ip.MaxWidth)
		case "maxHeight":
			return p.integer(ev, &ip.MaxHeight)
		case "gridOrigin":
			return enum(p, ev, &ip.GridOrigin, kml.ParseGridOrigin)
		}
		return p.skip(ev)
	})
	return ip, err
}
