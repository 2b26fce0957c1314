package kml

import (
	"strings"
	"unicode"
)

// Coordinate is one lon,lat[,alt] tuple. Alt is 0 when the tuple has no
// third value.
type Coordinate struct {
	Lon float64
	Lat float64
	Alt float64
}

type Coordinates []Coordinate

// ParseCoordinates splits a KML coordinates blob. Tuples are separated by
// whitespace, values within a tuple by commas; whitespace next to a comma
// is ignored. On error the tuples decoded so far are returned.
func ParseCoordinates(s string) (Coordinates, error) {
	var coords Coordinates
	for _, tuple := range splitTuples(s) {
		parts := strings.Split(tuple, ",")
		if len(parts) < 2 || len(parts) > 3 {
			return coords, formatError(ErrInvalidCoordinates, tuple)
		}
		var c Coordinate
		var err error
		if c.Lon, err = ParseFloat(parts[0]); err != nil {
			return coords, formatError(ErrInvalidCoordinates, tuple)
		}
		if c.Lat, err = ParseFloat(parts[1]); err != nil {
			return coords, formatError(ErrInvalidCoordinates, tuple)
		}
		if len(parts) == 3 {
			if c.Alt, err = ParseFloat(parts[2]); err != nil {
				return coords, formatError(ErrInvalidCoordinates, tuple)
			}
		}
		coords = append(coords, c)
	}
	return coords, nil
}

func splitTuples(s string) []string {
	var tuples []string
	var sb strings.Builder
	pendingSpace := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = sb.Len() > 0
		case r == ',':
			sb.WriteRune(r)
			pendingSpace = false
		default:
			if pendingSpace {
				if last := sb.String(); !strings.HasSuffix(last, ",") {
					tuples = append(tuples, last)
					sb.Reset()
				}
				pendingSpace = false
			}
			sb.WriteRune(r)
		}
	}
	if sb.Len() > 0 {
		tuples = append(tuples, sb.String())
	}
	return tuples
}

// String renders the blob as space separated lon,lat,alt tuples.
func (cs Coordinates) String() string {
	var sb strings.Builder
	for i, c := range cs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(FormatFloat(c.Lon))
		sb.WriteByte(',')
		sb.WriteString(FormatFloat(c.Lat))
		sb.WriteByte(',')
		sb.WriteString(FormatFloat(c.Alt))
	}
	return sb.String()
}
