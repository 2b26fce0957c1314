// Package kmlread builds a kml.Kml tree from a stream of XML events.
//
// Every element type has one read method which consumes exactly its own
// start/end pair. Children it does not know are skipped whole, absent
// children leave their schema default in place, and repeated children
// keep document order.
package kmlread

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"kmlstream/pkg/kml"
	"kmlstream/pkg/kmz"
	"kmlstream/pkg/xmlevent"
)

type Reader struct {
	opts Options
}

// New returns a Reader. Zero fields of opts take their DefaultOptions value.
func New(opts Options) *Reader {
	def := DefaultOptions()
	if opts.Namespace == "" {
		opts.Namespace = def.Namespace
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = def.MaxDepth
	}
	if opts.Logger == nil {
		opts.Logger = def.Logger
	}
	if opts.Backend == "" {
		opts.Backend = def.Backend
	}
	return &Reader{opts: opts}
}

// Read reads src with the default options.
func Read(src xmlevent.Source) (*Result, error) {
	return New(DefaultOptions()).Read(src)
}

// Read consumes src up to the end of the first <kml> element.
//
// The returned error is non-nil only for fatal failures (*ContractError,
// ErrDepthExceeded). Stream failures are logged and recorded in
// Result.Warnings as a *StreamError, and the tree built up to that point
// is returned.
func (r *Reader) Read(src xmlevent.Source) (*Result, error) {
	p := &parser{
		opts: r.opts,
		src:  src,
		log:  r.opts.Logger,
		res:  &Result{Styles: map[string]kml.StyleSelector{}},
	}
	if r.opts.CheckIDs {
		p.ids = map[string]string{}
	}
	for {
		ev, err := src.Next()
		if err == io.EOF {
			p.warn("", ErrNoRoot)
			return p.res, nil
		}
		if err != nil {
			p.streamFailure(&StreamError{Err: err})
			return p.res, nil
		}
		if ev.Kind != xmlevent.StartElement {
			continue
		}
		if p.name(ev) != "kml" {
			if err := p.skip(ev); err != nil {
				p.streamFailure(err)
				return p.res, nil
			}
			continue
		}
		k, err := p.readKml(ev)
		p.res.Kml = k
		if err != nil {
			if isFatal(err) {
				return nil, err
			}
			p.streamFailure(err)
		}
		return p.res, nil
	}
}

// ReadBytes reads a KML document or a KMZ archive held in dat.
func (r *Reader) ReadBytes(dat []byte) (*Result, error) {
	if kmz.Sniff(dat) == kmz.IS_KMZ {
		doc, err := kmz.Extract(bytes.NewReader(dat), int64(len(dat)))
		if err != nil {
			return nil, err
		}
		dat = doc
	}
	return r.Read(xmlevent.New(bytes.NewReader(dat), r.opts.Backend))
}

// ReadFile reads the KML or KMZ file fn.
func (r *Reader) ReadFile(fn string) (*Result, error) {
	dat, err := os.ReadFile(fn)
	if err != nil {
		return nil, errors.Wrap(err, "kmlread")
	}
	return r.ReadBytes(dat)
}

type parser struct {
	opts  Options
	src   xmlevent.Source
	log   logrus.FieldLogger
	res   *Result
	depth int
	ids   map[string]string
}

func (p *parser) warn(element string, err error) {
	p.res.Warnings = append(p.res.Warnings, Warning{Element: element, Err: err})
	p.log.WithField("element", element).Debugf("kmlread: %v", err)
}

func (p *parser) streamFailure(err error) {
	var se *StreamError
	element := ""
	if errors.As(err, &se) {
		element = se.Element
	}
	p.res.Warnings = append(p.res.Warnings, Warning{Element: element, Err: err})
	p.log.WithField("element", element).Warnf("kmlread: document truncated: %v", err)
}

// name returns the local name of a KML element, "atom:"+local for Atom
// elements and "" for anything in a foreign namespace. Elements without a
// namespace count as KML.
func (p *parser) name(ev xmlevent.Event) string {
	switch {
	case ev.Space == "", strings.Contains(p.opts.Namespace, ev.Space):
		return ev.Local
	case ev.Space == kml.AtomNamespace:
		return "atom:" + ev.Local
	}
	return ""
}

func isEnd(start, ev xmlevent.Event) bool {
	return ev.Kind == xmlevent.EndElement && ev.Local == start.Local && strings.Contains(start.Space, ev.Space)
}

func (p *parser) next(start xmlevent.Event) (xmlevent.Event, error) {
	ev, err := p.src.Next()
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return ev, &StreamError{Element: start.Local, Err: err}
	}
	return ev, nil
}

// each calls fn for every child element of start and returns once the
// matching end element is consumed. fn must consume the child it is
// handed, falling back to p.skip.
func (p *parser) each(start xmlevent.Event, fn func(ev xmlevent.Event) error) error {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.opts.MaxDepth {
		return errors.Wrapf(ErrDepthExceeded, "<%s> at depth %d", start.Local, p.depth)
	}
	for {
		ev, err := p.next(start)
		if err != nil {
			return err
		}
		switch ev.Kind {
		case xmlevent.StartElement:
			if err := fn(ev); err != nil {
				return err
			}
		case xmlevent.EndElement:
			if isEnd(start, ev) {
				return nil
			}
			return &StreamError{Element: start.Local, Err: errors.Errorf("unexpected </%s>", ev.Local)}
		}
	}
}

// skip consumes start and its whole subtree.
func (p *parser) skip(start xmlevent.Event) error {
	depth := 0
	for {
		ev, err := p.next(start)
		if err != nil {
			return err
		}
		switch ev.Kind {
		case xmlevent.StartElement:
			depth++
		case xmlevent.EndElement:
			if depth == 0 {
				return nil
			}
			depth--
		}
	}
}

// text returns the character data of a leaf element. Nested elements are
// skipped.
func (p *parser) text(start xmlevent.Event) (string, error) {
	var sb strings.Builder
	for {
		ev, err := p.next(start)
		if err != nil {
			return sb.String(), err
		}
		switch ev.Kind {
		case xmlevent.CharData:
			sb.WriteString(ev.Text)
		case xmlevent.StartElement:
			if err := p.skip(ev); err != nil {
				return sb.String(), err
			}
		case xmlevent.EndElement:
			return sb.String(), nil
		}
	}
}

// idAttributes reads id and targetId and, with CheckIDs, notes repeats.
func (p *parser) idAttributes(start xmlevent.Event) kml.IdAttributes {
	var a kml.IdAttributes
	a.ID, _ = start.Attr("id")
	a.TargetID, _ = start.Attr("targetId")
	if p.ids != nil && a.ID != "" {
		if prev, ok := p.ids[a.ID]; ok {
			p.warn(start.Local, errors.Wrapf(ErrDuplicateID, "%q already used by <%s>", a.ID, prev))
		} else {
			p.ids[a.ID] = start.Local
		}
	}
	return a
}

// Leaf readers. A value that does not convert is recorded as a warning
// and dst keeps its default.

func (p *parser) str(ev xmlevent.Event, dst *string) error {
	s, err := p.text(ev)
	if err != nil {
		return err
	}
	*dst = s
	return nil
}

func leaf[T any](p *parser, ev xmlevent.Event, dst *T, parse func(string) (T, error)) error {
	s, err := p.text(ev)
	if err != nil {
		return err
	}
	v, perr := parse(s)
	if perr != nil {
		p.warn(ev.Local, perr)
		return nil
	}
	*dst = v
	return nil
}

// enum reads an enumeration; unknown literals yield the default silently.
func enum[T any](p *parser, ev xmlevent.Event, dst *T, parse func(string) T) error {
	s, err := p.text(ev)
	if err != nil {
		return err
	}
	*dst = parse(strings.TrimSpace(s))
	return nil
}

func (p *parser) float(ev xmlevent.Event, dst *float64) error {
	return leaf(p, ev, dst, kml.ParseFloat)
}

func (p *parser) integer(ev xmlevent.Event, dst *int) error {
	return leaf(p, ev, dst, kml.ParseInt)
}

func (p *parser) boolean(ev xmlevent.Event, dst *bool) error {
	return leaf(p, ev, dst, kml.ParseBool)
}

func (p *parser) angle(ev xmlevent.Event, dst *float64, bound float64) error {
	return leaf(p, ev, dst, func(s string) (float64, error) { return kml.ParseAngle(s, bound) })
}

func (p *parser) color(ev xmlevent.Event, dst *kml.Color) error {
	return leaf(p, ev, dst, kml.ParseColor)
}

func (p *parser) dateTime(ev xmlevent.Event, dst *kml.DateTime) error {
	return leaf(p, ev, dst, kml.ParseDateTime)
}

func (p *parser) coordinates(ev xmlevent.Event, dst *kml.Coordinates) error {
	return leaf(p, ev, dst, kml.ParseCoordinates)
}

func (p *parser) altitudeMode(ev xmlevent.Event, dst *kml.AltitudeMode) error {
	return enum(p, ev, dst, kml.ParseAltitudeMode)
}

// readVec2 reads the x, y, xunits and yunits attributes of a vec2 element.
func (p *parser) readVec2(start xmlevent.Event) (*kml.Vec2, error) {
	v := kml.NewVec2()
	if s, ok := start.Attr("x"); ok {
		if f, err := kml.ParseFloat(s); err == nil {
			v.X = f
		} else {
			p.warn(start.Local, err)
		}
	}
	if s, ok := start.Attr("y"); ok {
		if f, err := kml.ParseFloat(s); err == nil {
			v.Y = f
		} else {
			p.warn(start.Local, err)
		}
	}
	if s, ok := start.Attr("xunits"); ok {
		v.XUnits = kml.ParseUnits(s)
	}
	if s, ok := start.Attr("yunits"); ok {
		v.YUnits = kml.ParseUnits(s)
	}
	return v, p.skip(start)
}
