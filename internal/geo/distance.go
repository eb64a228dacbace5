package geo

import "math"

const (
	// EarthRadiusMeters is the mean Earth radius used by the distance formula.
	EarthRadiusMeters = 6371000.0

	// SearchRadiusMeters is the fixed radius the search engine filters by.
	SearchRadiusMeters = 50000.0
)

// Point is a latitude/longitude pair in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Distance returns the great-circle distance in meters between two points
// given in decimal degrees, using the spherical law of cosines.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1r := radians(lat1)
	lat2r := radians(lat2)
	dLon := radians(lon2 - lon1)

	arg := math.Cos(lat1r)*math.Cos(lat2r)*math.Cos(dLon) + math.Sin(lat1r)*math.Sin(lat2r)

	// Rounding can push the argument just outside [-1, 1] for identical or
	// antipodal points, which is outside acos's domain.
	if arg > 1 {
		arg = 1
	} else if arg < -1 {
		arg = -1
	}

	return EarthRadiusMeters * math.Acos(arg)
}

// WithinRadius reports whether the point lies strictly closer than
// radiusMeters to the center. Points exactly on the boundary are excluded.
func WithinRadius(centerLat, centerLon, pointLat, pointLon, radiusMeters float64) bool {
	return Distance(centerLat, centerLon, pointLat, pointLon) < radiusMeters
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
