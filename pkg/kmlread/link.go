package kmlread

import (
	"fmt"

	"kmlstream/pkg/kml"
	"kmlstream/pkg/xmlevent"
)

// Element names that may terminate a shared link body.
var linkTerminators = map[string]bool{
	"Link": true,
	"Icon": true,
	"Url":  true,
}

func (p *parser) readLink(start xmlevent.Event) (*kml.Link, error) {
	return p.readLinkBody(start, "Link")
}

func (p *parser) readIcon(start xmlevent.Event) (*kml.Link, error) {
	return p.readLinkBody(start, "Icon")
}

// readURL reads the pre 2.1 <Url> form of a NetworkLink link.
func (p *parser) readURL(start xmlevent.Event) (*kml.Link, error) {
	return p.readLinkBody(start, "Url")
}

// readLinkBody reads the Link element set for <Link>, <Icon> and <Url>.
// terminator must be one of those and must name start.
func (p *parser) readLinkBody(start xmlevent.Event, terminator string) (*kml.Link, error) {
	l := kml.NewLink()
	if !linkTerminators[terminator] {
		return l, &ContractError{Element: start.Local, Reason: fmt.Sprintf("undeclared link terminator %q", terminator)}
	}
	if start.Local != terminator {
		return l, &ContractError{Element: start.Local, Reason: fmt.Sprintf("link body expects <%s>", terminator)}
	}
	l.IdAttributes = p.idAttributes(start)
	err := p.each(start, func(ev xmlevent.Event) error {
		switch p.name(ev) {
		case "href":
			return p.str(ev, &l.Href)
		case "refreshMode":
			return enum(p, ev, &l.RefreshMode, kml.ParseRefreshMode)
		case "refreshInterval":
			return p.float(ev, &l.RefreshInterval)
		case "viewRefreshMode":
			return enum(p, ev, &l.ViewRefreshMode, kml.ParseViewRefreshMode)
		case "viewRefreshTime":
			return p.float(ev, &l.ViewRefreshTime)
		case "viewBoundScale":
			return p.float(ev, &l.ViewBoundScale)
		case "viewFormat":
			return p.str(ev, &l.ViewFormat)
		case "httpQuery":
			return p.str(ev, &l.HTTPQuery)
		}
		return p.skip(ev)
	})
	return l, err
}

// readBasicLink reads the href-only <Icon> of IconStyle.
func (p *parser) readBasicLink(start xmlevent.Event) (*kml.BasicLink, error) {
	l := &kml.BasicLink{IdAttributes: p.idAttributes(start)}
	err := p.each(start, func(ev xmlevent.Event) error {
		if p.name(ev) == "href" {
			return p.str(ev, &l.Href)
		}
		return p.skip(ev)
	})
	return l, err
}
