// Package summary reports statistics for a parsed KML document.
package summary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmizerany/perks/quantile"
	"github.com/dustin/go-humanize"
	geom "github.com/twpayne/go-geom"

	"kmlstream/pkg/geo"
	"kmlstream/pkg/kml"
	"kmlstream/pkg/kmlread"
)

var altQuantiles = []float64{0.05, 0.50, 0.95}

type Summary struct {
	Name        string
	Size        int64
	Features    map[string]int
	Geometries  map[string]int
	Styles      int
	Warnings    int
	Coordinates int
	// Bounds is lon, lat, alt. It is empty when the document has no
	// positioned geometry.
	Bounds *geom.Bounds
	// Altitude holds the 5th, 50th and 95th percentile altitudes.
	Altitude   [3]float64
	PathLength float64
	Control    bool
}

func kindOf(v any) string {
	s := fmt.Sprintf("%T", v)
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		s = s[i+1:]
	}
	return s
}

// Summarize walks res.Kml. size is the encoded input size in bytes.
func Summarize(res *kmlread.Result, size int64) *Summary {
	s := &Summary{
		Size:       size,
		Features:   map[string]int{},
		Geometries: map[string]int{},
		Bounds:     geom.NewBounds(geom.XYZ),
		Styles:     len(res.Styles),
		Warnings:   len(res.Warnings),
	}
	if res.Kml == nil {
		return s
	}
	s.Control = res.Kml.NetworkLinkControl != nil
	if res.Kml.Feature != nil {
		s.Name = res.Kml.Feature.Common().Name
	}

	q := quantile.NewTargeted(altQuantiles...)
	kml.Walk(res.Kml.Feature, func(f kml.Feature) {
		s.Features[kindOf(f)]++
		pm, ok := f.(*kml.Placemark)
		if !ok || pm.Geometry == nil {
			return
		}
		s.geometry(pm.Geometry)
		cs := kml.GeometryCoordinates(pm.Geometry)
		s.Coordinates += len(cs)
		for _, c := range cs {
			q.Insert(c.Alt)
		}
		if t, err := geo.FromKML(pm.Geometry); err == nil {
			geo.Extend(s.Bounds, t)
		}
	})
	if q.Count() > 0 {
		for i, v := range altQuantiles {
			s.Altitude[i] = q.Query(v)
		}
	}
	return s
}

func (s *Summary) geometry(g kml.Geometry) {
	s.Geometries[kindOf(g)]++
	switch v := g.(type) {
	case *kml.LineString:
		s.PathLength += geo.PathLength(v.Coordinates)
	case *kml.MultiGeometry:
		for _, c := range v.Geometries {
			s.geometry(c)
		}
	}
}

func counts(m map[string]int) string {
	if len(m) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, m[k])
	}
	return strings.Join(parts, " ")
}

// Format renders the report one "key : value" line at a time; dms selects
// degrees, minutes and seconds for positions.
func (s *Summary) Format(dms bool) string {
	var sb strings.Builder
	line := func(k, v string) {
		fmt.Fprintf(&sb, "%-8.8s : %s\n", k, v)
	}
	if s.Name != "" {
		line("Name", s.Name)
	}
	line("Size", humanize.Bytes(uint64(s.Size)))
	line("Features", counts(s.Features))
	line("Geometry", counts(s.Geometries))
	line("Styles", fmt.Sprintf("%d", s.Styles))
	line("Points", humanize.Comma(int64(s.Coordinates)))
	if !s.Bounds.IsEmpty() {
		line("SW", geo.PositionFormat(s.Bounds.Min(1), s.Bounds.Min(0), dms))
		line("NE", geo.PositionFormat(s.Bounds.Max(1), s.Bounds.Max(0), dms))
		line("Altitude", fmt.Sprintf("%.1f / %.1f / %.1f m (5/50/95%%)", s.Altitude[0], s.Altitude[1], s.Altitude[2]))
	}
	if s.PathLength > 0 {
		line("Path", fmt.Sprintf("%.2f km", s.PathLength/1000))
	}
	if s.Control {
		line("Control", "NetworkLinkControl")
	}
	if s.Warnings > 0 {
		line("Warnings", fmt.Sprintf("%d", s.Warnings))
	}
	return sb.String()
}

func (s *Summary) String() string {
	return s.Format(false)
}
