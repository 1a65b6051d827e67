package input

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "shipwaste/internal/errors"
)

const sampleCSV = `Sale Date,Order Shipping,Ship Zipcode,Ship State,Ship Country
2024-01-15,6.513,10001,NY,United States
01/20/2024,"$1,234.50",94103,CA,United States
2024-02-02,5.25,K1A0B1,ON,Canada
notadate,5.25,10001,NY,United States
2024-02-10,,10001,NY,United States
2024-02-11,4.00,,NY,United States
`

func TestReadOrders(t *testing.T) {
	orders, stats, err := ReadOrders(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, 6, stats.Rows)
	assert.Equal(t, 3, stats.Skipped) // bad date, missing price, missing zip
	require.Len(t, orders, 3)

	assert.True(t, orders[0].ShippingPrice.Equal(decimal.RequireFromString("6.513")))
	assert.Equal(t, "10001", orders[0].ShipZipcode)
	assert.Equal(t, "United States", orders[0].ShipCountry)
	assert.Equal(t, 2024, orders[0].SaleDate.Year())

	// currency symbol and thousands separator are stripped
	assert.True(t, orders[1].ShippingPrice.Equal(decimal.RequireFromString("1234.50")))
	assert.Equal(t, "01", orders[1].SaleDate.Format("01"))

	// foreign postal codes pass through; geocoding decides later
	assert.Equal(t, "K1A0B1", orders[2].ShipZipcode)
}

func TestReadOrdersMissingColumn(t *testing.T) {
	csv := "Sale Date,Ship Zipcode\n2024-01-15,10001\n"
	_, _, err := ReadOrders(strings.NewReader(csv))
	require.Error(t, err)
	assert.True(t, errs.IsType(err, errs.TypeInput))
}

func TestReadOrdersEmptyStream(t *testing.T) {
	_, _, err := ReadOrders(strings.NewReader(""))
	require.Error(t, err)
}

func TestReadOrdersNegativePriceSkipped(t *testing.T) {
	csv := "Sale Date,Order Shipping,Ship Zipcode\n2024-01-15,-2.00,10001\n"
	orders, stats, err := ReadOrders(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Equal(t, 1, stats.Skipped)
}

func TestParseSaleDateLayouts(t *testing.T) {
	for _, in := range []string{"2024-03-09", "03/09/2024", "03/09/24"} {
		d, ok := ParseSaleDate(in)
		require.True(t, ok, in)
		assert.Equal(t, 2024, d.Year())
		assert.Equal(t, 3, int(d.Month()))
	}
	if _, ok := ParseSaleDate("March 9 2024"); ok {
		t.Error("unexpected layout accepted")
	}
}
