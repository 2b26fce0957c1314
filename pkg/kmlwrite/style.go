package kmlwrite

import (
	"strings"

	gokml "github.com/twpayne/go-kml"

	"kmlstream/pkg/kml"
)

// StyleSelector builds a Style or StyleMap element.
func StyleSelector(s kml.StyleSelector) gokml.Element {
	switch v := s.(type) {
	case *kml.Style:
		return style(v)
	case *kml.StyleMap:
		var es elems
		for _, p := range v.Pairs {
			var pe elems
			if p.Key != kml.DefaultStyleState {
				pe.str("key", string(p.Key))
			}
			if p.StyleURL != "" {
				pe.add(gokml.StyleURL(p.StyleURL))
			}
			if p.StyleSelector != nil {
				pe.add(StyleSelector(p.StyleSelector))
			}
			es.add(withIDs(compound("Pair", pe...), p.IdAttributes))
		}
		return withIDs(compound("StyleMap", es...), v.IdAttributes)
	}
	return nil
}

func style(s *kml.Style) *gokml.CompoundElement {
	var es elems
	if s.IconStyle != nil {
		es.add(iconStyle(s.IconStyle))
	}
	if s.LabelStyle != nil {
		es.add(labelStyle(s.LabelStyle))
	}
	if s.LineStyle != nil {
		es.add(lineStyle(s.LineStyle))
	}
	if s.PolyStyle != nil {
		es.add(polyStyle(s.PolyStyle))
	}
	if s.BalloonStyle != nil {
		es.add(balloonStyle(s.BalloonStyle))
	}
	if s.ListStyle != nil {
		es.add(listStyle(s.ListStyle))
	}
	return withIDs(gokml.Style(es...), s.IdAttributes)
}

func iconStyle(is *kml.IconStyle) *gokml.CompoundElement {
	es := colorStyle(&is.ColorStyleData)
	if is.Scale != kml.DefaultScale {
		es.add(gokml.Scale(is.Scale))
	}
	if is.Heading != 0 {
		es.add(gokml.Heading(is.Heading))
	}
	if is.Icon != nil {
		var le elems
		if is.Icon.Href != "" {
			le.add(gokml.Href(is.Icon.Href))
		}
		es.add(withIDs(gokml.Icon(le...), is.Icon.IdAttributes))
	}
	if is.HotSpot != nil {
		es.add(vec2("hotSpot", is.HotSpot))
	}
	return withIDs(gokml.IconStyle(es...), is.IdAttributes)
}

func labelStyle(ls *kml.LabelStyle) *gokml.CompoundElement {
	es := colorStyle(&ls.ColorStyleData)
	if ls.Scale != kml.DefaultScale {
		es.add(gokml.Scale(ls.Scale))
	}
	return withIDs(gokml.LabelStyle(es...), ls.IdAttributes)
}

func lineStyle(ls *kml.LineStyle) *gokml.CompoundElement {
	es := colorStyle(&ls.ColorStyleData)
	if ls.Width != kml.DefaultWidth {
		es.add(gokml.Width(ls.Width))
	}
	return withIDs(gokml.LineStyle(es...), ls.IdAttributes)
}

func polyStyle(ps *kml.PolyStyle) *gokml.CompoundElement {
	es := colorStyle(&ps.ColorStyleData)
	es.boolean("fill", ps.Fill, kml.DefaultFill)
	es.boolean("outline", ps.Outline, kml.DefaultOutline)
	return withIDs(gokml.PolyStyle(es...), ps.IdAttributes)
}

func balloonStyle(bs *kml.BalloonStyle) *gokml.CompoundElement {
	var es elems
	if bs.BgColor != kml.DefaultBgColor {
		es.add(gokml.BgColor(bs.BgColor.RGBA()))
	}
	if bs.TextColor != kml.DefaultTextColor {
		es.add(gokml.TextColor(bs.TextColor.RGBA()))
	}
	if bs.Text != "" {
		es.add(gokml.Text(bs.Text))
	}
	if bs.DisplayMode != kml.DefaultDisplayMode {
		es.str("displayMode", string(bs.DisplayMode))
	}
	return withIDs(gokml.BalloonStyle(es...), bs.IdAttributes)
}

func listStyle(ls *kml.ListStyle) *gokml.CompoundElement {
	var es elems
	if ls.ListItemType != kml.DefaultListItemType {
		es.str("listItemType", string(ls.ListItemType))
	}
	if ls.BgColor != kml.DefaultBgColor {
		es.add(gokml.BgColor(ls.BgColor.RGBA()))
	}
	for _, ii := range ls.ItemIcons {
		var ie elems
		if len(ii.States) > 0 {
			ie.str("state", joinStates(ii.States))
		}
		ie.str("href", ii.Href)
		es.add(withIDs(compound("ItemIcon", ie...), ii.IdAttributes))
	}
	es.integer("maxSnippetLines", ls.MaxSnippetLines, kml.DefaultMaxSnippetLines)
	return withIDs(compound("ListStyle", es...), ls.IdAttributes)
}

func colorStyle(cs *kml.ColorStyleData) elems {
	var es elems
	if cs.Color != kml.DefaultColor {
		es.add(gokml.Color(cs.Color.RGBA()))
	}
	if cs.ColorMode != kml.DefaultColorMode {
		es.str("colorMode", string(cs.ColorMode))
	}
	return es
}

func joinStates(states []kml.ItemIconState) string {
	ss := make([]string, len(states))
	for i, st := range states {
		ss[i] = string(st)
	}
	return strings.Join(ss, " ")
}
