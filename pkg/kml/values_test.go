package kml

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBool(t *testing.T) {
	tests := []struct {
		lit  string
		want bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{" True ", true},
		{"0", false},
		{"false", false},
		{"False", false},
	}
	for _, tt := range tests {
		got, err := ParseBool(tt.lit)
		require.NoError(t, err, tt.lit)
		assert.Equal(t, tt.want, got, tt.lit)
	}
}

func TestParseBoolInvalid(t *testing.T) {
	for _, lit := range []string{"yes", "no", "2", ""} {
		_, err := ParseBool(lit)
		assert.ErrorIs(t, err, ErrInvalidBool, lit)
	}
}

func TestParseAngle(t *testing.T) {
	v, err := ParseAngle("-45.5", Angle90)
	require.NoError(t, err)
	assert.Equal(t, -45.5, v)

	_, err = ParseAngle("91", Angle90)
	assert.ErrorIs(t, err, ErrInvalidAngle)

	_, err = ParseAngle("north", Angle180)
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestParseDateTimeKeepsLayout(t *testing.T) {
	tests := []string{
		"1997",
		"1997-07",
		"1997-07-16",
		"1997-07-16T07:30:15Z",
		"1997-07-16T10:30:15+03:00",
		"1997-07-16T07:30:15",
	}
	for _, lit := range tests {
		d, err := ParseDateTime(lit)
		require.NoError(t, err, lit)
		assert.Equal(t, lit, d.String())
	}

	d, err := ParseDateTime("1997-07-16T07:30:15.25Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1997, 7, 16, 7, 30, 15, 250000000, time.UTC), d.Time.UTC())

	_, err = ParseDateTime("16/07/1997")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestEnumLookup(t *testing.T) {
	assert.Equal(t, AltitudeModeAbsolute, ParseAltitudeMode("absolute"))
	assert.Equal(t, DefaultAltitudeMode, ParseAltitudeMode("sideways"))
	assert.Equal(t, StyleStateHighlight, ParseStyleState("highlight"))
	assert.Equal(t, []ItemIconState{ItemIconOpen, ItemIconError}, ParseItemIconStates("open bogus error"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1", FormatBool(true))
	assert.Equal(t, "0", FormatBool(false))
	assert.Equal(t, "0.1", FormatFloat(0.1))
	assert.Equal(t, "-1", FormatFloat(-1))
}
