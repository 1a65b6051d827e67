// Package rate implements the discrete carrier rate table: forward price
// lookup by (zone, weight break) and reverse nearest-weight lookup by price.
package rate

import (
	"github.com/shopspring/decimal"

	"shipwaste/core/types"
	errs "shipwaste/internal/errors"
)

// Table is an immutable carrier rate table. Weights are the discrete
// billable weight breaks in strictly increasing order; each zone holds one
// price per weight break. Built once at startup, safe for concurrent reads.
type Table struct {
	weights []decimal.Decimal
	// prices is column-major: prices[zone-1][i] pairs with weights[i]
	prices [types.MaxZone][]decimal.Decimal
}

// New builds a table from raw weight breaks and per-zone price columns.
// zonePrices must hold exactly one column per zone 1..8, each with one price
// per weight break.
func New(weights []float64, zonePrices [][]float64) (*Table, error) {
	if len(weights) == 0 {
		return nil, errs.Config("rate table has no weight breaks")
	}
	if len(zonePrices) != types.MaxZone {
		return nil, errs.Newf(errs.TypeConfig, "rate table needs %d zone columns, got %d", types.MaxZone, len(zonePrices))
	}

	t := &Table{weights: make([]decimal.Decimal, len(weights))}
	prev := 0.0
	for i, w := range weights {
		if w <= prev {
			return nil, errs.Newf(errs.TypeConfig, "weight breaks must be strictly increasing at index %d", i)
		}
		prev = w
		t.weights[i] = decimal.NewFromFloat(w)
	}

	for z, col := range zonePrices {
		if len(col) != len(weights) {
			return nil, errs.Newf(errs.TypeConfig, "zone %d has %d prices, want %d", z+1, len(col), len(weights))
		}
		t.prices[z] = make([]decimal.Decimal, len(col))
		for i, p := range col {
			t.prices[z][i] = decimal.NewFromFloat(p)
		}
	}

	return t, nil
}

// Weights returns the weight breaks in ascending order.
func (t *Table) Weights() []decimal.Decimal {
	out := make([]decimal.Decimal, len(t.weights))
	copy(out, t.weights)
	return out
}

func (t *Table) zoneColumn(zone int) ([]decimal.Decimal, error) {
	if zone < types.MinZone || zone > types.MaxZone {
		return nil, errs.Lookupf("zone %d outside %d..%d", zone, types.MinZone, types.MaxZone)
	}
	return t.prices[zone-1], nil
}

// PriceOf returns the tabulated price for a zone and weight break. The
// weight must be one of the table's exact weight breaks.
func (t *Table) PriceOf(zone int, weightBreak decimal.Decimal) (decimal.Decimal, error) {
	col, err := t.zoneColumn(zone)
	if err != nil {
		return decimal.Zero, err
	}
	for i, w := range t.weights {
		if w.Equal(weightBreak) {
			return col[i], nil
		}
	}
	return decimal.Zero, errs.Lookupf("weight break %s not in rate table", weightBreak.String())
}

// NearestWeightForPrice returns the weight break whose tabulated price is
// closest to the observed price by absolute difference. Equidistant
// candidates resolve to the smaller weight: the scan runs in ascending
// weight order and only a strictly smaller difference displaces the
// current best.
func (t *Table) NearestWeightForPrice(zone int, price decimal.Decimal) (decimal.Decimal, error) {
	col, err := t.zoneColumn(zone)
	if err != nil {
		return decimal.Zero, err
	}

	best := t.weights[0]
	bestDiff := col[0].Sub(price).Abs()
	for i := 1; i < len(col); i++ {
		diff := col[i].Sub(price).Abs()
		if diff.LessThan(bestDiff) {
			best = t.weights[i]
			bestDiff = diff
		}
	}
	return best, nil
}
