package geo

import (
	"math"

	"kmlstream/pkg/kml"
)

const earthRadius = 6371008.8 // metres, IUGG mean

func rad(d float64) float64 { return d * math.Pi / 180 }
func deg(r float64) float64 { return r * 180 / math.Pi }

// Csedist returns the initial great-circle course (degrees, 0..360) and
// the distance (metres) from the first position to the second.
func Csedist(lat1, lon1, lat2, lon2 float64) (float64, float64) {
	p1, p2 := rad(lat1), rad(lat2)
	dl := rad(lon2 - lon1)
	dp := p2 - p1

	a := math.Sin(dp/2)*math.Sin(dp/2) + math.Cos(p1)*math.Cos(p2)*math.Sin(dl/2)*math.Sin(dl/2)
	d := 2 * earthRadius * math.Asin(math.Min(1, math.Sqrt(a)))

	y := math.Sin(dl) * math.Cos(p2)
	x := math.Cos(p1)*math.Sin(p2) - math.Sin(p1)*math.Cos(p2)*math.Cos(dl)
	c := math.Mod(deg(math.Atan2(y, x))+360, 360)
	return c, d
}

// PathLength is the great-circle length of cs in metres, ignoring altitude.
func PathLength(cs kml.Coordinates) float64 {
	total := 0.0
	for i := 1; i < len(cs); i++ {
		_, d := Csedist(cs[i-1].Lat, cs[i-1].Lon, cs[i].Lat, cs[i].Lon)
		total += d
	}
	return total
}
