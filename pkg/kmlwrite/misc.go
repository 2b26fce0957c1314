package kmlwrite

import (
	gokml "github.com/twpayne/go-kml"

	"kmlstream/pkg/kml"
)

func view(v kml.View) gokml.Element {
	switch c := v.(type) {
	case *kml.Camera:
		var es elems
		es.float("longitude", c.Longitude, 0)
		es.float("latitude", c.Latitude, 0)
		es.float("altitude", c.Altitude, 0)
		es.float("heading", c.Heading, 0)
		es.float("tilt", c.Tilt, 0)
		es.float("roll", c.Roll, 0)
		es.altitudeMode(c.AltitudeMode)
		return withIDs(gokml.Camera(es...), c.IdAttributes)
	case *kml.LookAt:
		var es elems
		es.float("longitude", c.Longitude, 0)
		es.float("latitude", c.Latitude, 0)
		es.float("altitude", c.Altitude, 0)
		es.float("heading", c.Heading, 0)
		es.float("tilt", c.Tilt, 0)
		es.float("range", c.Range, 0)
		es.altitudeMode(c.AltitudeMode)
		return withIDs(gokml.LookAt(es...), c.IdAttributes)
	}
	return nil
}

func timePrimitive(t kml.TimePrimitive) gokml.Element {
	switch v := t.(type) {
	case *kml.TimeStamp:
		var es elems
		es.date("when", v.When)
		return withIDs(gokml.TimeStamp(es...), v.IdAttributes)
	case *kml.TimeSpan:
		var es elems
		es.date("begin", v.Begin)
		es.date("end", v.End)
		return withIDs(gokml.TimeSpan(es...), v.IdAttributes)
	}
	return nil
}

// link writes the Link element set under the given element name.
func link(name string, l *kml.Link) gokml.Element {
	var es elems
	if l.Href != "" {
		es.add(gokml.Href(l.Href))
	}
	if l.RefreshMode != kml.DefaultRefreshMode {
		es.str("refreshMode", string(l.RefreshMode))
	}
	es.float("refreshInterval", l.RefreshInterval, kml.DefaultRefreshInterval)
	if l.ViewRefreshMode != kml.DefaultViewRefreshMode {
		es.str("viewRefreshMode", string(l.ViewRefreshMode))
	}
	es.float("viewRefreshTime", l.ViewRefreshTime, kml.DefaultViewRefreshTime)
	es.float("viewBoundScale", l.ViewBoundScale, kml.DefaultViewBoundScale)
	es.str("viewFormat", l.ViewFormat)
	es.str("httpQuery", l.HTTPQuery)
	return withIDs(compound(name, es...), l.IdAttributes)
}

func region(r *kml.Region) gokml.Element {
	var es elems
	if b := r.LatLonAltBox; b != nil {
		var be elems
		be.float("north", b.North, 0)
		be.float("south", b.South, 0)
		be.float("east", b.East, 0)
		be.float("west", b.West, 0)
		be.float("minAltitude", b.MinAltitude, 0)
		be.float("maxAltitude", b.MaxAltitude, 0)
		be.altitudeMode(b.AltitudeMode)
		es.add(withIDs(gokml.LatLonAltBox(be...), b.IdAttributes))
	}
	if l := r.Lod; l != nil {
		var le elems
		le.float("minLodPixels", l.MinLodPixels, kml.DefaultMinLodPixels)
		le.float("maxLodPixels", l.MaxLodPixels, kml.DefaultMaxLodPixels)
		le.float("minFadeExtent", l.MinFadeExtent, 0)
		le.float("maxFadeExtent", l.MaxFadeExtent, 0)
		es.add(withIDs(gokml.LOD(le...), l.IdAttributes))
	}
	return withIDs(gokml.Region(es...), r.IdAttributes)
}

func latLonBox(b *kml.LatLonBox) gokml.Element {
	var es elems
	es.float("north", b.North, 0)
	es.float("south", b.South, 0)
	es.float("east", b.East, 0)
	es.float("west", b.West, 0)
	es.float("rotation", b.Rotation, 0)
	return withIDs(gokml.LatLonBox(es...), b.IdAttributes)
}

func extendedData(x *kml.ExtendedData) gokml.Element {
	var es elems
	for _, d := range x.Data {
		var de elems
		if d.DisplayName != "" {
			de.add(gokml.DisplayName(d.DisplayName))
		}
		de.add(gokml.Value(d.Value))
		ce := withIDs(compound("Data", de...), d.IdAttributes)
		ce.Attr = append(ce.Attr, attr("name", d.Name))
		es.add(ce)
	}
	for _, sd := range x.SchemaData {
		ce := withIDs(compound("SchemaData"), sd.IdAttributes)
		if sd.SchemaURL != "" {
			ce.Attr = append(ce.Attr, attr("schemaUrl", sd.SchemaURL))
		}
		for _, s := range sd.SimpleData {
			se := simple("SimpleData", s.Value)
			se.Attr = append(se.Attr, attr("name", s.Name))
			ce.Add(se)
		}
		es.add(ce)
	}
	return gokml.ExtendedData(es...)
}

func networkLinkControl(n *kml.NetworkLinkControl) gokml.Element {
	var es elems
	es.float("minRefreshPeriod", n.MinRefreshPeriod, kml.DefaultMinRefreshPeriod)
	es.float("maxSessionLength", n.MaxSessionLength, kml.DefaultMaxSessionLength)
	es.str("cookie", n.Cookie)
	es.str("message", n.Message)
	es.str("linkName", n.LinkName)
	es.str("linkDescription", n.LinkDescription)
	if n.LinkSnippet != nil {
		es.add(snippet("linkSnippet", n.LinkSnippet))
	}
	es.date("expires", n.Expires)
	if u := n.Update; u != nil {
		var ue elems
		ue.str("targetHref", u.TargetHref)
		for _, op := range u.Operations {
			ue.add(updateOperation(op))
		}
		es.add(compound("Update", ue...))
	}
	if n.View != nil {
		es.add(view(n.View))
	}
	return compound("NetworkLinkControl", es...)
}

func updateOperation(op kml.UpdateOperation) gokml.Element {
	var es elems
	switch v := op.(type) {
	case *kml.Create:
		for _, f := range v.Features {
			es.add(Feature(f))
		}
		return compound("Create", es...)
	case *kml.Delete:
		for _, f := range v.Features {
			es.add(Feature(f))
		}
		return compound("Delete", es...)
	case *kml.Change:
		for _, o := range v.Objects {
			if e := Object(o); e != nil {
				es.add(e)
			}
		}
		return compound("Change", es...)
	}
	return nil
}

// Object builds the element for any object a Change may carry. It
// returns nil for types that have no standalone element.
func Object(o kml.Object) gokml.Element {
	switch v := o.(type) {
	case kml.Feature:
		return Feature(v)
	case kml.Geometry:
		return Geometry(v)
	case kml.StyleSelector:
		return StyleSelector(v)
	case kml.View:
		return view(v)
	case kml.TimePrimitive:
		return timePrimitive(v)
	case *kml.Region:
		return region(v)
	case *kml.Link:
		return link("Link", v)
	case *kml.IconStyle:
		return iconStyle(v)
	case *kml.LabelStyle:
		return labelStyle(v)
	case *kml.LineStyle:
		return lineStyle(v)
	case *kml.PolyStyle:
		return polyStyle(v)
	case *kml.BalloonStyle:
		return balloonStyle(v)
	case *kml.ListStyle:
		return listStyle(v)
	}
	return nil
}
