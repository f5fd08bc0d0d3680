package pipeline

import (
	"math"

	"hvrdb/internal/models"
)

const (
	baseRadius      = 0.0001
	radiusPerMember = 0.000003
)

// DispersalRadius is the circle radius, in degrees, used for a cluster of n stores.
func DispersalRadius(n int) float64 {
	return baseRadius + float64(n-1)*radiusPerMember
}

// Disperse spreads stores sharing one coordinate pair evenly on a small circle around it.
// The first store lands due east of the original point (angle 0). A single store is
// returned unchanged, as is a cluster whose shared coordinates do not parse.
func Disperse(cluster []models.Store) []models.Store {
	out := make([]models.Store, len(cluster))
	copy(out, cluster)

	n := len(out)
	if n <= 1 {
		return out
	}

	lat, latOK := models.ParseCoordinate(out[0].Latitude)
	lon, lonOK := models.ParseCoordinate(out[0].Longitude)
	if !latOK || !lonOK {
		return out
	}

	radius := DispersalRadius(n)
	step := 2 * math.Pi / float64(n)
	for i := range out {
		angle := step * float64(i)
		out[i].Latitude = models.FormatCoordinate(lat + radius*math.Sin(angle))
		out[i].Longitude = models.FormatCoordinate(lon + radius*math.Cos(angle))
	}

	return out
}
