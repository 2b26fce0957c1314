package kml

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseBool accepts true/false in any case and the numeric forms 1/0.
// Anything else is ErrInvalidBool.
func ParseBool(s string) (bool, error) {
	lit := strings.TrimSpace(s)
	switch {
	case strings.EqualFold(lit, "true"), lit == "1":
		return true, nil
	case strings.EqualFold(lit, "false"), lit == "0":
		return false, nil
	}
	return false, formatError(ErrInvalidBool, s)
}

func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, formatError(ErrInvalidNumber, s)
	}
	return v, nil
}

func ParseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, formatError(ErrInvalidNumber, s)
	}
	return v, nil
}

// ParseAngle parses a number and checks |v| <= bound.
func ParseAngle(s string, bound float64) (float64, error) {
	v, err := ParseFloat(s)
	if err != nil {
		return 0, err
	}
	if math.Abs(v) > bound {
		return 0, formatError(ErrInvalidAngle, s)
	}
	return v, nil
}

// Angle bounds per KML angle type.
const (
	Angle90  = 90.0
	Angle180 = 180.0
	Angle360 = 360.0
)

// Vec2 is the KML vec2Type used by hotSpot and the screen overlay anchors.
type Vec2 struct {
	X      float64
	Y      float64
	XUnits Units
	YUnits Units
}

func NewVec2() *Vec2 {
	return &Vec2{X: DefaultVec2X, Y: DefaultVec2Y, XUnits: DefaultUnits, YUnits: DefaultUnits}
}

// DateTime keeps a parsed KML dateTime together with the lexical form it
// was written in (gYear, gYearMonth, date or dateTime).
type DateTime struct {
	Time   time.Time
	Layout string
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
	"2006-01",
	"2006",
}

func ParseDateTime(s string) (DateTime, error) {
	lit := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, lit); err == nil {
			return DateTime{Time: t, Layout: layout}, nil
		}
	}
	return DateTime{}, formatError(ErrInvalidDate, s)
}

func (d DateTime) IsZero() bool {
	return d.Layout == "" && d.Time.IsZero()
}

func (d DateTime) String() string {
	if d.IsZero() {
		return ""
	}
	layout := d.Layout
	if layout == "" {
		layout = time.RFC3339
	}
	return d.Time.Format(layout)
}

// FormatFloat renders v with the shortest representation that parses back
// to the same value.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func FormatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
