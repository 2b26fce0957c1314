package styles

import (
	"fmt"
	"math"

	"github.com/mazznoer/colorgrad"
	"github.com/mazznoer/csscolorparser"
	"github.com/pkg/errors"
	"github.com/twpayne/go-kml/icon"

	"kmlstream/pkg/kml"
)

const (
	NUM_GRAD = 21
	GRAD_RED = "red"
	GRAD_RGN = "rdylgn"
	GRAD_YOR = "ylorrd"
)

var ErrUnknownGradient = errors.New("unknown gradient")

func gradient(name string) (colorgrad.Gradient, bool, error) {
	switch name {
	case GRAD_RGN:
		return colorgrad.RdYlGn(), false, nil
	case GRAD_YOR:
		return colorgrad.YlOrRd(), true, nil
	case GRAD_RED, "":
		return colorgrad.Reds(), true, nil
	}
	var g colorgrad.Gradient
	return g, false, errors.Wrap(ErrUnknownGradient, name)
}

// GradientID names the i-th shared gradient style.
func GradientID(i int) string {
	return fmt.Sprintf("styleGrad%03d", i)
}

// GradientStyles samples the named palette into n shared styles. Index 0
// is the low end of the scale; the sequential palettes are reversed so
// that low values get the strongest colour.
func GradientStyles(name string, n int) ([]*kml.Style, error) {
	if n < 2 {
		return nil, errors.Errorf("gradient needs at least 2 steps, got %d", n)
	}
	grad, reverse, err := gradient(name)
	if err != nil {
		return nil, err
	}
	out := make([]*kml.Style, 0, n)
	for i := 0; i < n; i++ {
		k := i
		if reverse {
			k = n - 1 - i
		}
		c := kml.ColorOf(grad.At(float64(k) / float64(n-1)))

		is := kml.NewIconStyle()
		is.Color = c
		is.Scale = 0.5
		is.Icon = &kml.BasicLink{Href: icon.PaletteHref(2, 18)}

		ls := kml.NewLineStyle()
		ls.Color = c
		ls.Width = 4.0

		s := kml.NewStyle()
		s.ID = GradientID(i)
		s.IconStyle = is
		s.LineStyle = ls
		out = append(out, s)
	}
	return out, nil
}

// ApplyGradient adds n gradient styles to doc and points every unstyled
// placemark at the step matching its mean altitude. It returns the number
// of placemarks restyled.
func ApplyGradient(doc *kml.Document, name string, n int) (int, error) {
	gs, err := GradientStyles(name, n)
	if err != nil {
		return 0, err
	}
	type target struct {
		pm  *kml.Placemark
		alt float64
	}
	var targets []target
	lo, hi := math.Inf(1), math.Inf(-1)
	kml.Walk(doc, func(f kml.Feature) {
		pm, ok := f.(*kml.Placemark)
		if !ok || pm.Geometry == nil || pm.StyleURL != "" || len(pm.StyleSelectors) > 0 {
			return
		}
		cs := kml.GeometryCoordinates(pm.Geometry)
		if len(cs) == 0 {
			return
		}
		sum := 0.0
		for _, c := range cs {
			sum += c.Alt
		}
		alt := sum / float64(len(cs))
		lo = math.Min(lo, alt)
		hi = math.Max(hi, alt)
		targets = append(targets, target{pm, alt})
	})
	for _, s := range gs {
		doc.StyleSelectors = append(doc.StyleSelectors, s)
	}
	for _, t := range targets {
		i := 0
		if hi > lo {
			i = int(math.Round((t.alt - lo) / (hi - lo) * float64(n-1)))
		}
		t.pm.StyleURL = "#" + GradientID(i)
	}
	return len(targets), nil
}

// ParseCSSColor accepts any CSS colour notation (names, #rgb, rgb(), hsl()).
func ParseCSSColor(s string) (kml.Color, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return kml.Color{}, errors.Wrapf(err, "colour %q", s)
	}
	r, g, b, a := c.RGBA255()
	return kml.Color{R: r, G: g, B: b, A: a}, nil
}

// ApplyLineColor gives every line geometry of f that has no effective line
// style an inline LineStyle of colour c, returning the count changed.
func ApplyLineColor(f kml.Feature, r *Resolver, c kml.Color) int {
	count := 0
	kml.Walk(f, func(f kml.Feature) {
		pm, ok := f.(*kml.Placemark)
		if !ok || !hasLine(pm.Geometry) {
			return
		}
		if s := r.Effective(pm, kml.StyleStateNormal); s != nil && s.LineStyle != nil {
			return
		}
		ls := kml.NewLineStyle()
		ls.Color = c
		st := kml.NewStyle()
		st.LineStyle = ls
		pm.StyleSelectors = append(pm.StyleSelectors, st)
		count++
	})
	return count
}

func hasLine(g kml.Geometry) bool {
	switch v := g.(type) {
	case *kml.LineString, *kml.LinearRing, *kml.Polygon:
		return true
	case *kml.MultiGeometry:
		for _, c := range v.Geometries {
			if hasLine(c) {
				return true
			}
		}
	}
	return false
}
