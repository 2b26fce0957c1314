package kmlwrite

import (
	gokml "github.com/twpayne/go-kml"

	"kmlstream/pkg/kml"
)

// Feature builds the element for any feature variant.
func Feature(f kml.Feature) gokml.Element {
	switch v := f.(type) {
	case *kml.Placemark:
		es := featureData(&v.FeatureData)
		if v.Geometry != nil {
			es.add(Geometry(v.Geometry))
		}
		return withIDs(gokml.Placemark(es...), v.IdAttributes)
	case *kml.Folder:
		es := featureData(&v.FeatureData)
		for _, c := range v.Features {
			es.add(Feature(c))
		}
		return withIDs(gokml.Folder(es...), v.IdAttributes)
	case *kml.Document:
		es := featureData(&v.FeatureData)
		for _, s := range v.Schemas {
			es.add(schema(s))
		}
		for _, c := range v.Features {
			es.add(Feature(c))
		}
		return withIDs(gokml.Document(es...), v.IdAttributes)
	case *kml.NetworkLink:
		es := featureData(&v.FeatureData)
		es.boolean("refreshVisibility", v.RefreshVisibility, kml.DefaultRefreshVisibility)
		es.boolean("flyToView", v.FlyToView, kml.DefaultFlyToView)
		if v.Link != nil {
			es.add(link("Link", v.Link))
		}
		return withIDs(gokml.NetworkLink(es...), v.IdAttributes)
	case *kml.GroundOverlay:
		es := overlayData(&v.OverlayData)
		es.float("altitude", v.Altitude, 0)
		es.altitudeMode(v.AltitudeMode)
		if v.LatLonBox != nil {
			es.add(latLonBox(v.LatLonBox))
		}
		return withIDs(gokml.GroundOverlay(es...), v.IdAttributes)
	case *kml.ScreenOverlay:
		es := overlayData(&v.OverlayData)
		for _, xy := range []struct {
			name string
			v    *kml.Vec2
		}{
			{"overlayXY", v.OverlayXY},
			{"screenXY", v.ScreenXY},
			{"rotationXY", v.RotationXY},
			{"size", v.Size},
		} {
			if xy.v != nil {
				es.add(vec2(xy.name, xy.v))
			}
		}
		es.float("rotation", v.Rotation, 0)
		return withIDs(gokml.ScreenOverlay(es...), v.IdAttributes)
	case *kml.PhotoOverlay:
		es := overlayData(&v.OverlayData)
		es.float("rotation", v.Rotation, 0)
		if v.ViewVolume != nil {
			es.add(viewVolume(v.ViewVolume))
		}
		if v.ImagePyramid != nil {
			es.add(imagePyramid(v.ImagePyramid))
		}
		if v.Point != nil {
			es.add(Geometry(v.Point))
		}
		if v.Shape != kml.DefaultShape {
			es.str("shape", string(v.Shape))
		}
		return withIDs(gokml.PhotoOverlay(es...), v.IdAttributes)
	}
	return nil
}

func featureData(fd *kml.FeatureData) elems {
	var es elems
	if fd.Name != "" {
		es.add(gokml.Name(fd.Name))
	}
	if fd.Visibility != kml.DefaultVisibility {
		es.add(gokml.Visibility(fd.Visibility))
	}
	if fd.Open != kml.DefaultOpen {
		es.add(gokml.Open(fd.Open))
	}
	if a := fd.Author; a != nil {
		var ae elems
		if a.Name != "" {
			ae.add(atomSimple("name", a.Name))
		}
		if a.URI != "" {
			ae.add(atomSimple("uri", a.URI))
		}
		if a.Email != "" {
			ae.add(atomSimple("email", a.Email))
		}
		es.add(atom("author", ae...))
	}
	if fd.AtomLink != nil {
		l := atom("link")
		l.Attr = append(l.Attr, attr("href", fd.AtomLink.Href))
		es.add(l)
	}
	es.str("address", fd.Address)
	es.str("phoneNumber", fd.PhoneNumber)
	if fd.Snippet != nil {
		es.add(snippet("Snippet", fd.Snippet))
	}
	if fd.Description != "" {
		es.add(gokml.Description(fd.Description))
	}
	if fd.View != nil {
		es.add(view(fd.View))
	}
	if fd.TimePrimitive != nil {
		es.add(timePrimitive(fd.TimePrimitive))
	}
	if fd.StyleURL != "" {
		es.add(gokml.StyleURL(fd.StyleURL))
	}
	for _, s := range fd.StyleSelectors {
		es.add(StyleSelector(s))
	}
	if fd.Region != nil {
		es.add(region(fd.Region))
	}
	if fd.ExtendedData != nil {
		es.add(extendedData(fd.ExtendedData))
	}
	return es
}

func overlayData(od *kml.OverlayData) elems {
	es := featureData(&od.FeatureData)
	if od.Color != kml.DefaultColor {
		es.add(gokml.Color(od.Color.RGBA()))
	}
	es.integer("drawOrder", od.DrawOrder, kml.DefaultDrawOrder)
	if od.Icon != nil {
		es.add(link("Icon", od.Icon))
	}
	return es
}

func schema(s *kml.Schema) gokml.Element {
	ce := compound("Schema")
	if s.Name != "" {
		ce.Attr = append(ce.Attr, attr("name", s.Name))
	}
	if s.ID != "" {
		ce.Attr = append(ce.Attr, attr("id", s.ID))
	}
	for _, sf := range s.SimpleFields {
		f := compound("SimpleField")
		if sf.Type != "" {
			f.Attr = append(f.Attr, attr("type", sf.Type))
		}
		if sf.Name != "" {
			f.Attr = append(f.Attr, attr("name", sf.Name))
		}
		if sf.DisplayName != "" {
			f.Add(gokml.DisplayName(sf.DisplayName))
		}
		ce.Add(f)
	}
	return ce
}

func viewVolume(v *kml.ViewVolume) gokml.Element {
	var es elems
	es.float("leftFov", v.LeftFov, 0)
	es.float("rightFov", v.RightFov, 0)
	es.float("bottomFov", v.BottomFov, 0)
	es.float("topFov", v.TopFov, 0)
	es.float("near", v.Near, 0)
	return withIDs(compound("ViewVolume", es...), v.IdAttributes)
}

func imagePyramid(ip *kml.ImagePyramid) gokml.Element {
	var es elems
	es.integer("tileSize", ip.TileSize, kml.DefaultTileSize)
	es.integer("maxWidth", ip.MaxWidth, 0)
	es.integer("maxHeight", ip.MaxHeight, 0)
	if ip.GridOrigin != kml.DefaultGridOrigin {
		es.str("gridOrigin", string(ip.GridOrigin))
	}
	return withIDs(compound("ImagePyramid", es...), ip.IdAttributes)
}
