// Package types - Aggregated waste result types
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyWaste is the packaging waste summed over one calendar month.
type MonthlyWaste struct {
	// Month is the first day of the calendar month, UTC
	Month time.Time `json:"month"`

	// Waste is the packaging weight summed over the month
	Waste decimal.Decimal `json:"waste"`
}

// CumulativePoint is one step of the running waste total, one per order
// in sale-date order.
type CumulativePoint struct {
	// Date is the sale date of the order producing this step
	Date time.Time `json:"date"`

	// Waste is the running packaging weight total up to and including this order
	Waste decimal.Decimal `json:"waste"`
}

// RegionRank is one row of the ranked waste-by-region table.
type RegionRank struct {
	// Rank is 1-based, assigned in descending-waste order
	Rank int `json:"rank"`

	// Region is the ship state
	Region string `json:"region"`

	// Waste is the packaging weight summed over the region
	Waste decimal.Decimal `json:"waste"`
}

// Result is the complete outcome of one analysis run. It is immutable once
// returned; callers hold it for as long as they need, the engine keeps no
// copy between runs.
type Result struct {
	// Orders holds the per-order estimates in input order
	Orders []OrderEstimate `json:"orders"`

	// TotalWaste is the packaging weight summed over all estimable orders
	TotalWaste decimal.Decimal `json:"total_waste"`

	// Monthly is the calendar-month waste series in chronological order
	Monthly []MonthlyWaste `json:"monthly"`

	// Cumulative is the running waste total in sale-date order
	Cumulative []CumulativePoint `json:"cumulative"`

	// ByRegion maps US ship state to summed packaging weight
	ByRegion map[string]decimal.Decimal `json:"by_region"`

	// TopRegions ranks the heaviest regions, at most five rows
	TopRegions []RegionRank `json:"top_regions"`

	// Skipped counts input records dropped for missing required fields
	Skipped int `json:"skipped"`

	// Unresolved counts orders whose destination could not be geocoded
	Unresolved int `json:"unresolved"`
}
