package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords encodes coordinates with the google encoded polyline
// format.
func PolylineFromCoords(coords []Coordinate) string {
	latLngs := make([][]float64, 0, len(coords))
	for _, c := range coords {
		latLngs = append(latLngs, []float64{c.GetLat(), c.GetLon()})
	}
	return string(polyline.EncodeCoords(latLngs))
}
