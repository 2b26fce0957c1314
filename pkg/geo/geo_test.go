package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"

	"kmlstream/pkg/kml"
)

func TestPositionFormat(t *testing.T) {
	assert.Equal(t, "50.910500 -1.535000", PositionFormat(50.9105, -1.535, false))
	assert.Equal(t, "50:54:37.8N 001:32:06.0W", PositionFormat(50.9105, -1.535, true))
	assert.Equal(t, "33:52:00.0S", LatFormat(-33.866666666, true))
	// 59.99s rounds up into the next minute
	assert.Equal(t, "000:01:00.0E", LonFormat(59.99/3600, true))
}

func TestCsedist(t *testing.T) {
	c, d := Csedist(0, 0, 0, 1)
	assert.InDelta(t, 90.0, c, 1e-9)
	assert.InDelta(t, 111195.0, d, 1.0)

	c, d = Csedist(0, 0, 1, 0)
	assert.InDelta(t, 0.0, c, 1e-9)
	assert.InDelta(t, 111195.0, d, 1.0)

	_, d = Csedist(51.5, -0.12, 51.5, -0.12)
	assert.Zero(t, d)
}

func TestPathLength(t *testing.T) {
	cs := kml.Coordinates{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0, Alt: 1000}, {Lon: 1, Lat: 1}}
	assert.InDelta(t, 2*111195.0, PathLength(cs), 2.0)
	assert.Zero(t, PathLength(cs[:1]))
	assert.Zero(t, PathLength(nil))
}

func TestFromKML(t *testing.T) {
	pt := kml.NewPoint()
	pt.Coordinates = kml.Coordinates{{Lon: 1, Lat: 2, Alt: 3}}
	g, err := FromKML(pt)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, g.FlatCoords())

	ring := func(off float64) *kml.LinearRing {
		r := kml.NewLinearRing()
		r.Coordinates = kml.Coordinates{{Lon: off, Lat: off}, {Lon: off + 1, Lat: off}, {Lon: off, Lat: off + 1}, {Lon: off, Lat: off}}
		return r
	}
	poly := kml.NewPolygon()
	poly.OuterBoundary = ring(0)
	poly.InnerBoundaries = []*kml.LinearRing{ring(0.1)}
	g, err = FromKML(poly)
	require.NoError(t, err)
	require.IsType(t, &geom.Polygon{}, g)
	assert.Equal(t, []int{12, 24}, g.Ends())

	mg := kml.NewMultiGeometry()
	mg.Geometries = []kml.Geometry{pt, poly}
	g, err = FromKML(mg)
	require.NoError(t, err)
	b := Extend(geom.NewBounds(geom.XYZ), g)
	assert.Equal(t, 0.0, b.Min(0))
	assert.Equal(t, 3.0, b.Max(2))
	assert.Equal(t, 2.0, b.Max(1))

	_, err = FromKML(kml.NewPoint())
	assert.Error(t, err)
	_, err = FromKML(kml.NewPolygon())
	assert.Error(t, err)
	bad := kml.NewMultiGeometry()
	bad.Geometries = []kml.Geometry{kml.NewModel()}
	_, err = FromKML(bad)
	assert.Error(t, err)
}
