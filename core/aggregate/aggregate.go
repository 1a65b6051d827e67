// Package aggregate rolls per-order package weight estimates up into the
// reporting views: total, monthly series, cumulative series, and by-region.
// Every function is pure over the estimate slice; input order is never
// mutated, and date ties keep input order (stable sorts throughout).
package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"shipwaste/core/types"
)

// estimable filters to orders whose zone landed in 1..8. The catch-all
// zone makes anything else unreachable in practice; the filter is defensive
// so one bad derivation can never poison a report.
func estimable(orders []types.OrderEstimate) []types.OrderEstimate {
	out := make([]types.OrderEstimate, 0, len(orders))
	for _, o := range orders {
		if o.InZoneRange() {
			out = append(out, o)
		}
	}
	return out
}

// bySaleDate returns a copy sorted ascending by sale date, stable on ties.
func bySaleDate(orders []types.OrderEstimate) []types.OrderEstimate {
	sorted := make([]types.OrderEstimate, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SaleDate.Before(sorted[j].SaleDate)
	})
	return sorted
}

// TotalWaste sums package weight over all estimable orders.
func TotalWaste(orders []types.OrderEstimate) decimal.Decimal {
	total := decimal.Zero
	for _, o := range estimable(orders) {
		total = total.Add(o.PackageWeight)
	}
	return total
}

// MonthlyWaste groups estimable orders by calendar month of sale date and
// returns the series in chronological order.
func MonthlyWaste(orders []types.OrderEstimate) []types.MonthlyWaste {
	var series []types.MonthlyWaste
	for _, o := range bySaleDate(estimable(orders)) {
		month := time.Date(o.SaleDate.Year(), o.SaleDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		if n := len(series); n > 0 && series[n-1].Month.Equal(month) {
			series[n-1].Waste = series[n-1].Waste.Add(o.PackageWeight)
			continue
		}
		series = append(series, types.MonthlyWaste{Month: month, Waste: o.PackageWeight})
	}
	return series
}

// CumulativeWaste produces the running package weight total, one point per
// estimable order in sale-date order.
func CumulativeWaste(orders []types.OrderEstimate) []types.CumulativePoint {
	sorted := bySaleDate(estimable(orders))
	points := make([]types.CumulativePoint, 0, len(sorted))
	running := decimal.Zero
	for _, o := range sorted {
		running = running.Add(o.PackageWeight)
		points = append(points, types.CumulativePoint{Date: o.SaleDate, Waste: running})
	}
	return points
}

// WasteByRegion sums package weight per ship state for United States
// orders. Orders shipped elsewhere carry no state-level region and are left
// out of this view only.
func WasteByRegion(orders []types.OrderEstimate) map[string]decimal.Decimal {
	byRegion := make(map[string]decimal.Decimal)
	for _, o := range estimable(orders) {
		if o.ShipCountry != types.CountryUS {
			continue
		}
		byRegion[o.ShipState] = byRegion[o.ShipState].Add(o.PackageWeight)
	}
	return byRegion
}

// TopRegions ranks regions by descending waste, at most n rows, rank
// 1-based. Equal totals keep the order regions first appeared in the input.
func TopRegions(orders []types.OrderEstimate, n int) []types.RegionRank {
	totals := make(map[string]decimal.Decimal)
	var firstSeen []string
	for _, o := range estimable(orders) {
		if o.ShipCountry != types.CountryUS {
			continue
		}
		if _, ok := totals[o.ShipState]; !ok {
			firstSeen = append(firstSeen, o.ShipState)
		}
		totals[o.ShipState] = totals[o.ShipState].Add(o.PackageWeight)
	}

	ranked := make([]types.RegionRank, 0, len(firstSeen))
	for _, region := range firstSeen {
		ranked = append(ranked, types.RegionRank{Region: region, Waste: totals[region]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Waste.GreaterThan(ranked[j].Waste)
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
