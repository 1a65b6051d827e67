package engine

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipwaste/core/estimate"
	"shipwaste/core/geo"
	"shipwaste/core/rate"
	"shipwaste/core/types"
	errs "shipwaste/internal/errors"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	gaz := geo.NewGazetteer(map[string]geo.Coord{
		"10001": {Lat: 40.7506, Lon: -73.9971},
		"10002": {Lat: 40.7158, Lon: -73.9863},
		"94103": {Lat: 37.7726, Lon: -122.4099},
	})
	rates := rate.DefaultUSPS()
	return New(geo.NewClassifier(gaz, nil), estimate.New(rates, estimate.Options{}), Options{Workers: 2})
}

func order(date, zip, state, country string, price string) types.Order {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return types.Order{
		SaleDate:      d,
		ShippingPrice: decimal.RequireFromString(price),
		ShipZipcode:   zip,
		ShipState:     state,
		ShipCountry:   country,
	}
}

func TestRunScenario(t *testing.T) {
	eng := newTestEngine(t)

	// destination a few miles away, charged 8.35 * 0.78: matches the 1 lb
	// break in zone 1, packaging weight 0.2 lb
	result, err := eng.Run(context.Background(), Params{
		OriginZip: "10001",
		Orders:    []types.Order{order("2024-01-15", "10002", "NY", types.CountryUS, "6.513")},
	})
	require.NoError(t, err)
	require.Len(t, result.Orders, 1)

	got := result.Orders[0]
	assert.Equal(t, 1, got.Zone)
	assert.True(t, got.DistanceKnown)
	assert.True(t, got.MatchedWeight.Equal(decimal.NewFromInt(1)), "matched %s", got.MatchedWeight)
	assert.True(t, got.PackageWeight.Equal(decimal.RequireFromString("0.2")), "package %s", got.PackageWeight)
	assert.True(t, result.TotalWaste.Equal(decimal.RequireFromString("0.2")))
	assert.Equal(t, 0, result.Unresolved)
}

func TestRunUnresolvableDestination(t *testing.T) {
	eng := newTestEngine(t)

	result, err := eng.Run(context.Background(), Params{
		OriginZip: "10001",
		Orders: []types.Order{
			order("2024-01-15", "10002", "NY", types.CountryUS, "6.513"),
			order("2024-01-20", "K1A0B1", "Ontario", "Canada", "7.371"), // 9.45/zone8 basis
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Orders, 2)

	foreign := result.Orders[1]
	assert.False(t, foreign.DistanceKnown)
	assert.Equal(t, types.MaxZone, foreign.Zone)
	assert.Equal(t, 1, result.Unresolved)

	// the foreign order still counts toward total and monthly, but not by-region
	assert.True(t, result.TotalWaste.GreaterThan(decimal.RequireFromString("0.2")))
	require.Len(t, result.Monthly, 1)
	assert.Len(t, result.ByRegion, 1)
	require.Len(t, result.TopRegions, 1)
	assert.Equal(t, "NY", result.TopRegions[0].Region)
}

func TestRunCategoryFraction(t *testing.T) {
	gaz := geo.NewGazetteer(map[string]geo.Coord{
		"10001": {Lat: 40.7506, Lon: -73.9971},
		"10002": {Lat: 40.7158, Lon: -73.9863},
	})
	rates := rate.DefaultUSPS()
	eng := New(geo.NewClassifier(gaz, nil), estimate.New(rates, estimate.Options{
		CategoryFractions: map[types.Category]float64{types.CategoryClothing: 0.08},
	}), Options{})

	result, err := eng.Run(context.Background(), Params{
		OriginZip: "10001",
		Category:  types.CategoryClothing,
		Orders:    []types.Order{order("2024-01-15", "10002", "NY", types.CountryUS, "6.513")},
	})
	require.NoError(t, err)
	assert.True(t, result.TotalWaste.Equal(decimal.RequireFromString("0.08")), "got %s", result.TotalWaste)
}

func TestRunRejectsBadOrigin(t *testing.T) {
	eng := newTestEngine(t)
	for _, origin := range []string{"", "abcde", "123456x"} {
		_, err := eng.Run(context.Background(), Params{OriginZip: origin})
		require.Error(t, err, origin)
		assert.True(t, errs.IsType(err, errs.TypeInput))
	}
}

func TestRunRejectsUnknownCategory(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.Run(context.Background(), Params{
		OriginZip: "10001",
		Category:  types.Category("gadgets"),
	})
	require.Error(t, err)
	assert.True(t, errs.IsType(err, errs.TypeInput))
}

func TestRunEmptyBatch(t *testing.T) {
	eng := newTestEngine(t)
	result, err := eng.Run(context.Background(), Params{OriginZip: "10001", Skipped: 4})
	require.NoError(t, err)
	assert.True(t, result.TotalWaste.IsZero())
	assert.Empty(t, result.Monthly)
	assert.Equal(t, 4, result.Skipped)
}

func TestRunPreservesInputOrder(t *testing.T) {
	eng := newTestEngine(t)
	orders := []types.Order{
		order("2024-03-01", "10002", "NY", types.CountryUS, "5.00"),
		order("2024-01-01", "94103", "CA", types.CountryUS, "9.00"),
		order("2024-02-01", "10002", "NY", types.CountryUS, "6.00"),
	}
	result, err := eng.Run(context.Background(), Params{OriginZip: "10001", Orders: orders})
	require.NoError(t, err)
	require.Len(t, result.Orders, 3)
	for i := range orders {
		assert.Equal(t, orders[i].SaleDate, result.Orders[i].SaleDate)
	}
	// cumulative series is in sale-date order regardless of input order
	require.Len(t, result.Cumulative, 3)
	assert.Equal(t, 2024, result.Cumulative[0].Date.Year())
	assert.True(t, result.Cumulative[0].Date.Before(result.Cumulative[1].Date))
}
