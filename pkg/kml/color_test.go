package kml

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("ff8020aa")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0xaa, G: 0x20, B: 0x80, A: 0xff}, c)
	assert.Equal(t, "ff8020aa", c.String())

	c, err = ParseColor("#7F00FF00")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0x00, G: 0xff, B: 0x00, A: 0x7f}, c)
	assert.Equal(t, "7f00ff00", c.String())
}

func TestParseColorInvalid(t *testing.T) {
	for _, lit := range []string{"", "fff", "ff8020aa00", "zz8020aa"} {
		_, err := ParseColor(lit)
		require.ErrorIs(t, err, ErrInvalidColor, lit)
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, lit, fe.Literal)
	}
}

func TestColorStringIsFixedPoint(t *testing.T) {
	for _, c := range []Color{DefaultColor, DefaultTextColor, {R: 1, G: 2, B: 3, A: 4}} {
		back, err := ParseColor(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, back)
	}
}

func TestColorOf(t *testing.T) {
	c := Color{R: 0x10, G: 0x20, B: 0x30, A: 0xff}
	assert.Equal(t, c, ColorOf(c.RGBA()))
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, c.NRGBA())
}
