package kml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinates(t *testing.T) {
	cs, err := ParseCoordinates("1.0,2.0,3.0 4.0,5.0 6.0,7.0,8.0")
	require.NoError(t, err)
	assert.Equal(t, Coordinates{{1, 2, 3}, {4, 5, 0}, {6, 7, 8}}, cs)
}

func TestParseCoordinatesWhitespace(t *testing.T) {
	cs, err := ParseCoordinates("\n\t-122.1, 37.4 ,10\n  -122.2,37.5\n")
	require.NoError(t, err)
	assert.Equal(t, Coordinates{{-122.1, 37.4, 10}, {-122.2, 37.5, 0}}, cs)

	cs, err = ParseCoordinates("   ")
	require.NoError(t, err)
	assert.Empty(t, cs)
}

func TestParseCoordinatesInvalid(t *testing.T) {
	cs, err := ParseCoordinates("1,2 3 4,5")
	require.ErrorIs(t, err, ErrInvalidCoordinates)
	assert.Equal(t, Coordinates{{1, 2, 0}}, cs)

	_, err = ParseCoordinates("1,2,3,4")
	assert.ErrorIs(t, err, ErrInvalidCoordinates)

	_, err = ParseCoordinates("a,b")
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func TestCoordinatesString(t *testing.T) {
	cs := Coordinates{{1.5, 2, 0}, {-3, 4.25, 100}}
	assert.Equal(t, "1.5,2,0 -3,4.25,100", cs.String())
	back, err := ParseCoordinates(cs.String())
	require.NoError(t, err)
	assert.Equal(t, cs, back)
}

func TestGeometryCoordinates(t *testing.T) {
	mg := NewMultiGeometry()
	p := NewPoint()
	p.Coordinates = Coordinates{{1, 2, 3}}
	poly := NewPolygon()
	poly.OuterBoundary = NewLinearRing()
	poly.OuterBoundary.Coordinates = Coordinates{{0, 0, 0}, {1, 0, 0}, {0, 0, 0}}
	mg.Geometries = []Geometry{p, poly}
	assert.Len(t, GeometryCoordinates(mg), 4)
}
