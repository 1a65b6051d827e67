// Package estimate recovers an estimated package weight from the shipping
// price the customer was charged, by inverting the carrier rate table.
package estimate

import (
	"github.com/shopspring/decimal"

	"shipwaste/core/rate"
	"shipwaste/core/types"
)

// Default model constants. The markup factor is the fraction of carrier
// cost passed through as the customer-visible shipping charge; the
// packaging fraction is the share of shipped weight attributable to
// packaging material.
const (
	DefaultMarkupFactor      = 0.78
	DefaultPackagingFraction = 0.20
)

// Options configures an Estimator. Zero values fall back to the defaults.
type Options struct {
	// MarkupFactor divides the charged price to recover the carrier cost basis
	MarkupFactor float64

	// PackagingFraction is the flat shipped-weight-to-packaging multiplier
	PackagingFraction float64

	// CategoryFractions overrides PackagingFraction per business category
	CategoryFractions map[types.Category]float64
}

// Estimator is a pure function object over an immutable rate table.
type Estimator struct {
	rates      *rate.Table
	markup     decimal.Decimal
	fraction   decimal.Decimal
	byCategory map[types.Category]decimal.Decimal
}

// New builds an estimator against a rate table.
func New(rates *rate.Table, opts Options) *Estimator {
	if opts.MarkupFactor <= 0 {
		opts.MarkupFactor = DefaultMarkupFactor
	}
	if opts.PackagingFraction <= 0 {
		opts.PackagingFraction = DefaultPackagingFraction
	}
	byCategory := make(map[types.Category]decimal.Decimal, len(opts.CategoryFractions))
	for cat, f := range opts.CategoryFractions {
		byCategory[cat] = decimal.NewFromFloat(f)
	}
	return &Estimator{
		rates:      rates,
		markup:     decimal.NewFromFloat(opts.MarkupFactor),
		fraction:   decimal.NewFromFloat(opts.PackagingFraction),
		byCategory: byCategory,
	}
}

// CostBasis derives the assumed carrier cost from the charged price.
func (e *Estimator) CostBasis(chargedPrice decimal.Decimal) decimal.Decimal {
	return chargedPrice.Div(e.markup)
}

// EstimateShippedWeight inverts the rate table: it derives the carrier cost
// basis and matches it to the nearest tabulated price in the zone's column.
// Errors only on a zone outside 1..8, which indicates broken configuration.
func (e *Estimator) EstimateShippedWeight(zone int, chargedPrice decimal.Decimal) (decimal.Decimal, error) {
	return e.rates.NearestWeightForPrice(zone, e.CostBasis(chargedPrice))
}

// PackagingFraction returns the fraction for a category, or the flat
// default when the category is unset or has no entry.
func (e *Estimator) PackagingFraction(cat types.Category) decimal.Decimal {
	if cat != types.CategoryNone {
		if f, ok := e.byCategory[cat]; ok {
			return f
		}
	}
	return e.fraction
}

// EstimatePackageWeight converts shipped weight to packaging weight. No
// rounding here; display rounding is an output concern.
func (e *Estimator) EstimatePackageWeight(shippedWeight decimal.Decimal, cat types.Category) decimal.Decimal {
	return shippedWeight.Mul(e.PackagingFraction(cat))
}
