// Package geo - Distance classification into carrier zones
package geo

import (
	"math"

	"shipwaste/core/types"
)

// kmToMiles converts great-circle kilometers to statute miles.
const kmToMiles = 0.621371

// Boundary is one bracket of the distance->zone table: distances up to and
// including UpperMiles fall into Zone.
type Boundary struct {
	UpperMiles float64
	Zone       int
}

// DefaultBoundaries returns the USPS distance brackets. The first bracket
// is inclusive of zero; each subsequent one is left-exclusive and
// right-inclusive. Distances past the last bracket, and destinations that
// cannot be resolved at all, land in the catch-all zone 8.
func DefaultBoundaries() []Boundary {
	return []Boundary{
		{UpperMiles: 50, Zone: 1},
		{UpperMiles: 150, Zone: 2},
		{UpperMiles: 300, Zone: 3},
		{UpperMiles: 600, Zone: 4},
		{UpperMiles: 1000, Zone: 5},
		{UpperMiles: 1400, Zone: 6},
		{UpperMiles: 1800, Zone: 7},
	}
}

// Classifier turns (origin, destination) postal code pairs into distances
// and zones. Pure reads over the immutable gazetteer; safe for concurrent
// use.
type Classifier struct {
	gaz        *Gazetteer
	boundaries []Boundary
}

// NewClassifier builds a classifier. A nil boundary slice selects the
// default USPS brackets.
func NewClassifier(gaz *Gazetteer, boundaries []Boundary) *Classifier {
	if len(boundaries) == 0 {
		boundaries = DefaultBoundaries()
	}
	return &Classifier{gaz: gaz, boundaries: boundaries}
}

// DistanceMiles computes the great-circle distance between two postal
// codes. The second return is false when either code is not in the
// reference; that is an expected outcome for foreign destinations and must
// not abort a batch.
func (c *Classifier) DistanceMiles(originZip, destZip string) (float64, bool) {
	from, ok := c.gaz.Lookup(originZip)
	if !ok {
		return 0, false
	}
	to, ok := c.gaz.Lookup(destZip)
	if !ok {
		return 0, false
	}
	return haversineKm(from.Lat, from.Lon, to.Lat, to.Lon) * kmToMiles, true
}

// ZoneOf maps a distance to a carrier zone. Total over its inputs: every
// (miles, known) pair yields exactly one zone in 1..8.
func (c *Classifier) ZoneOf(miles float64, known bool) int {
	if !known {
		return types.MaxZone
	}
	for _, b := range c.boundaries {
		if miles <= b.UpperMiles {
			return b.Zone
		}
	}
	return types.MaxZone
}

// Classify resolves distance and zone in one call.
func (c *Classifier) Classify(originZip, destZip string) (miles float64, known bool, zone int) {
	miles, known = c.DistanceMiles(originZip, destZip)
	return miles, known, c.ZoneOf(miles, known)
}

// haversineKm returns the spherical distance in kilometers.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
