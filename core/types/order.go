// Package types holds the shared domain types for the waste estimation engine.
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a single shipped sale as reported by the seller's order export.
// Orders are immutable inputs; derived quantities live on OrderEstimate.
type Order struct {
	// SaleDate is the calendar date the sale occurred
	SaleDate time.Time `json:"sale_date"`

	// ShippingPrice is the shipping charge paid by the customer
	ShippingPrice decimal.Decimal `json:"shipping_price"`

	// ShipZipcode is the destination postal code, normalized to 5 digits
	ShipZipcode string `json:"ship_zipcode"`

	// ShipState is the destination state/region, may be empty
	ShipState string `json:"ship_state,omitempty"`

	// ShipCountry is the destination country name
	ShipCountry string `json:"ship_country"`
}

// CountryUS is the only country with state-level aggregation support.
const CountryUS = "United States"

// MinZone and MaxZone bound the carrier zone ids. Zone 8 doubles as the
// catch-all for unresolvable and international destinations.
const (
	MinZone = 1
	MaxZone = 8
)

// OrderEstimate is an order plus everything the engine derived for it.
type OrderEstimate struct {
	Order

	// DistanceMiles is the great-circle origin-to-destination distance.
	// Only meaningful when DistanceKnown is true.
	DistanceMiles float64 `json:"distance_miles,omitempty"`

	// DistanceKnown is false when either postal code could not be geocoded
	DistanceKnown bool `json:"distance_known"`

	// Zone is the carrier zone (1..8) assigned from the distance
	Zone int `json:"zone"`

	// CostBasis is the assumed carrier cost (charged price / markup factor)
	CostBasis decimal.Decimal `json:"cost_basis"`

	// MatchedWeight is the carrier weight break matched against the rate table
	MatchedWeight decimal.Decimal `json:"matched_weight"`

	// PackageWeight is the estimated packaging material weight
	PackageWeight decimal.Decimal `json:"package_weight"`
}

// InZoneRange reports whether the derived zone is a valid carrier zone.
// Estimates outside the range are excluded from aggregation.
func (e *OrderEstimate) InZoneRange() bool {
	return e.Zone >= MinZone && e.Zone <= MaxZone
}
