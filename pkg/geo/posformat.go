package geo

import (
	"fmt"
	"math"
	"strings"
)

func LatFormat(lat float64, dms bool) string {
	if !dms {
		return fmt.Sprintf("%.6f", lat)
	}
	return dmsFormat(lat, "%02d:%02d:%04.1f%c", "NS")
}

func LonFormat(lon float64, dms bool) string {
	if !dms {
		return fmt.Sprintf("%.6f", lon)
	}
	return dmsFormat(lon, "%03d:%02d:%04.1f%c", "EW")
}

func PositionFormat(lat, lon float64, dms bool) string {
	var sb strings.Builder
	sb.WriteString(LatFormat(lat, dms))
	sb.WriteByte(' ')
	sb.WriteString(LonFormat(lon, dms))
	return sb.String()
}

// dmsFormat renders |coord| as degrees, minutes and tenths of seconds,
// carrying a rounded 60.0s into the minutes and 60m into the degrees.
func dmsFormat(coord float64, ofmt string, hemi string) string {
	ds := math.Abs(coord)
	d := int(ds)
	rem := (ds - float64(d)) * 3600.0
	m := int(rem / 60)
	s := rem - float64(m*60)
	if math.Round(s*10) >= 600 {
		m++
		s = 0
	}
	if m == 60 {
		m = 0
		d++
	}
	q := hemi[0]
	if coord < 0 {
		q = hemi[1]
	}
	return fmt.Sprintf(ofmt, d, m, s, q)
}
