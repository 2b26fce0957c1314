package kml

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"
)

// Color is a straight (non-premultiplied) RGBA colour. KML writes colours
// as eight hex digits in aabbggrr order.
type Color struct {
	R, G, B, A uint8
}

// ParseColor decodes a KML aabbggrr colour. A leading '#' is tolerated.
func ParseColor(s string) (Color, error) {
	lit := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(lit) != 8 {
		return Color{}, formatError(ErrInvalidColor, s)
	}
	b, err := hex.DecodeString(lit)
	if err != nil {
		return Color{}, formatError(ErrInvalidColor, s)
	}
	return Color{R: b[3], G: b[2], B: b[1], A: b[0]}, nil
}

// String encodes c as lower case aabbggrr.
func (c Color) String() string {
	return fmt.Sprintf("%02x%02x%02x%02x", c.A, c.B, c.G, c.R)
}

// RGBA returns c in image/color form without premultiplying, which is
// what the KML encoders expect.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// ColorOf converts any image/color value to a straight KML colour.
func ColorOf(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}
