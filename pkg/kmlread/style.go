package kmlread

import (
	"kmlstream/pkg/kml"
	"kmlstream/pkg/xmlevent"
)

// readStyleSelector dispatches on the AbstractStyleSelector group and
// registers selectors carrying an id in Result.Styles.
func (p *parser) readStyleSelector(ev xmlevent.Event) (s kml.StyleSelector, ok bool, err error) {
	switch p.name(ev) {
	case "Style":
		s, err = p.readStyle(ev)
	case "StyleMap":
		s, err = p.readStyleMap(ev)
	default:
		return nil, false, nil
	}
	if id := s.Attributes().ID; id != "" {
		p.res.Styles[id] = s
	}
	return s, true, err
}

func (p *parser) readStyle(start xmlevent.Event) (*kml.Style, error) {
	s := &kml.Style{IdAttributes: p.idAttributes(start)}
	err := p.each(start, func(ev xmlevent.Event) error {
		var err error
		switch p.name(ev) {
		case "IconStyle":
			s.IconStyle, err = p.readIconStyle(ev)
		case "LabelStyle":
			s.LabelStyle, err = p.readLabelStyle(ev)
		case "LineStyle":
			s.LineStyle, err = p.readLineStyle(ev)
		case "PolyStyle":
			s.PolyStyle, err = p.readPolyStyle(ev)
		case "BalloonStyle":
			s.BalloonStyle, err = p.readBalloonStyle(ev)
		case "ListStyle":
			s.ListStyle, err = p.readListStyle(ev)
		default:
			err = p.skip(ev)
		}
		return err
	})
	return s, err
}

func (p *parser) readStyleMap(start xmlevent.Event) (*kml.StyleMap, error) {
	sm := &kml.StyleMap{IdAttributes: p.idAttributes(start)}
	err := p.each(start, func(ev xmlevent.Event) error {
		if p.name(ev) != "Pair" {
			return p.skip(ev)
		}
		pr, err := p.readPair(ev)
		sm.Pairs = append(sm.Pairs, pr)
		return err
	})
	return sm, err
}

func (p *parser) readPair(start xmlevent.Event) (*kml.Pair, error) {
	pr := kml.NewPair()
	pr.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "key":
			return enum(p, ev, &pr.Key, kml.ParseStyleState)
		case "styleUrl":
			return p.str(ev, &pr.StyleURL)
		}
		if s, ok, err := p.readStyleSelector(ev); ok {
			pr.StyleSelector = s
			return err
		}
		return p.skip(ev)
	})
	return pr, err
}

// colorStyleField reads one child of the AbstractColorStyle element set.
func (p *parser) colorStyleField(cs *kml.ColorStyleData, ev xmlevent.Event) (bool, error) {
	switch p.name(ev) {
	case "color":
		return true, p.color(ev, &cs.Color)
	case "colorMode":
		return true, enum(p, ev, &cs.ColorMode, kml.ParseColorMode)
	}
	return false, nil
}

func (p *parser) readIconStyle(start xmlevent.Event) (*kml.IconStyle, error) {
	is := kml.NewIconStyle()
	is.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "scale":
			return p.float(ev, &is.Scale)
		case "heading":
			return p.angle(ev, &is.Heading, kml.Angle360)
		case "Icon":
			l, err := p.readBasicLink(ev)
			is.Icon = l
			return err
		case "hotSpot":
			v, err := p.readVec2(ev)
			is.HotSpot = v
			return err
		}
		if ok, err := p.colorStyleField(&is.ColorStyleData, ev); ok {
			return err
		}
		return p.skip(ev)
	})
	return is, err
}

func (p *parser) readLabelStyle(start xmlevent.Event) (*kml.LabelStyle, error) {
	ls := kml.NewLabelStyle()
	ls.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		if p.name(ev) == "scale" {
			return p.float(ev, &ls.Scale)
		}
		if ok, err := p.colorStyleField(&ls.ColorStyleData, ev); ok {
			return err
		}
		return p.skip(ev)
	})
	return ls, err
}

func (p *parser) readLineStyle(start xmlevent.Event) (*kml.LineStyle, error) {
	ls := kml.NewLineStyle()
	ls.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		if p.name(ev) == "width" {
			return p.float(ev, &ls.Width)
		}
		if ok, err := p.colorStyleField(&ls.ColorStyleData, ev); ok {
			return err
		}
		return p.skip(ev)
	})
	return ls, err
}

func (p *parser) readPolyStyle(start xmlevent.Event) (*kml.PolyStyle, error) {
	ps := kml.NewPolyStyle()
	ps.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "fill":
			return p.boolean(ev, &ps.Fill)
		case "outline":
			return p.boolean(ev, &ps.Outline)
		}
		if ok, err := p.colorStyleField(&ps.ColorStyleData, ev); ok {
			return err
		}
		return p.skip(ev)
	})
	return ps, err
}

func (p *parser) readBalloonStyle(start xmlevent.Event) (*kml.BalloonStyle, error) {
	bs := kml.NewBalloonStyle()
	bs.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		// <color> is the KML 2.0 spelling of bgColor
		case "bgColor", "color":
			return p.color(ev, &bs.BgColor)
		case "textColor":
			return p.color(ev, &bs.TextColor)
		case "text":
			return p.str(ev, &bs.Text)
		case "displayMode":
			return enum(p, ev, &bs.DisplayMode, kml.ParseDisplayMode)
		}
		return p.skip(ev)
	})
	return bs, err
}

func (p *parser) readListStyle(start xmlevent.Event) (*kml.ListStyle, error) {
	ls := kml.NewListStyle()
	ls.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "listItemType":
			return enum(p, ev, &ls.ListItemType, kml.ParseListItemType)
		case "bgColor":
			return p.color(ev, &ls.BgColor)
		case "maxSnippetLines":
			return p.integer(ev, &ls.MaxSnippetLines)
		case "ItemIcon":
			ii, err := p.readItemIcon(ev)
			ls.ItemIcons = append(ls.ItemIcons, ii)
			return err
		}
		return p.skip(ev)
	})
	return ls, err
}

func (p *parser) readItemIcon(start xmlevent.Event) (*kml.ItemIcon, error) {
	ii := &kml.ItemIcon{IdAttributes: p.idAttributes(start)}
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "state":
			return enum(p, ev, &ii.States, kml.ParseItemIconStates)
		case "href":
			return p.str(ev, &ii.Href)
		}
		return p.skip(ev)
	})
	return ii, err
}
