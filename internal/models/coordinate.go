package models

import (
	"math"
	"strconv"
	"strings"
)

// DefaultCoordinateFloor is the smallest absolute latitude/longitude accepted as a real location.
const DefaultCoordinateFloor = 1.0

// ParseCoordinate parses a decimal coordinate string. Missing or malformed values report false.
func ParseCoordinate(value string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// IsUsableCoordinate reports whether value parses and lies at least floor away from zero.
func IsUsableCoordinate(value string, floor float64) bool {
	v, ok := ParseCoordinate(value)
	return ok && math.Abs(v) >= floor
}

// FormatCoordinate renders a coordinate with the fewest digits that round-trip.
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
