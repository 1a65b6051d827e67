package estimate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipwaste/core/rate"
	"shipwaste/core/types"
	errs "shipwaste/internal/errors"
)

func newEstimator(t *testing.T) *Estimator {
	t.Helper()
	return New(rate.DefaultUSPS(), Options{})
}

func TestCostBasis(t *testing.T) {
	est := newEstimator(t)

	// charged 6.513 at the default 0.78 markup recovers a cost basis of 8.35
	basis := est.CostBasis(decimal.RequireFromString("6.513"))
	assert.True(t, basis.Equal(decimal.RequireFromString("8.35")), "got %s", basis)
}

func TestEstimateShippedWeightScenario(t *testing.T) {
	est := newEstimator(t)

	// zone 1 tabulates 8.35 at the 1 lb break; a charged price of
	// 8.35 * 0.78 must match back to exactly 1 lb
	weight, err := est.EstimateShippedWeight(1, decimal.RequireFromString("6.513"))
	require.NoError(t, err)
	assert.True(t, weight.Equal(decimal.NewFromInt(1)), "got %s", weight)

	pkg := est.EstimatePackageWeight(weight, types.CategoryNone)
	assert.True(t, pkg.Equal(decimal.RequireFromString("0.2")), "got %s", pkg)
}

func TestEstimateShippedWeightBadZone(t *testing.T) {
	est := newEstimator(t)
	_, err := est.EstimateShippedWeight(9, decimal.NewFromInt(10))
	require.Error(t, err)
	assert.True(t, errs.IsType(err, errs.TypeLookup))
}

func TestPackagingFractionByCategory(t *testing.T) {
	est := New(rate.DefaultUSPS(), Options{
		CategoryFractions: map[types.Category]float64{
			types.CategoryClothing: 0.08,
		},
	})

	assert.True(t, est.PackagingFraction(types.CategoryClothing).Equal(decimal.RequireFromString("0.08")))
	// unset category and categories without an entry use the flat default
	assert.True(t, est.PackagingFraction(types.CategoryNone).Equal(decimal.RequireFromString("0.2")))
	assert.True(t, est.PackagingFraction(types.CategoryFood).Equal(decimal.RequireFromString("0.2")))
}

func TestEstimatePackageWeightMonotonic(t *testing.T) {
	est := newEstimator(t)
	prev := decimal.Zero
	for _, w := range []float64{0.25, 1, 5, 20, 80} {
		pkg := est.EstimatePackageWeight(decimal.NewFromFloat(w), types.CategoryNone)
		assert.True(t, pkg.GreaterThanOrEqual(prev), "package weight must be non-decreasing in shipped weight")
		prev = pkg
	}
}

func TestZeroOptionsFallBackToDefaults(t *testing.T) {
	est := New(rate.DefaultUSPS(), Options{})
	basis := est.CostBasis(decimal.NewFromInt(78))
	assert.True(t, basis.Equal(decimal.NewFromInt(100)), "got %s", basis)
}
