// Package input reads seller sold-order exports into domain orders.
package input

import (
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"shipwaste/core/types"
	errs "shipwaste/internal/errors"
)

// Column headers of the sold-orders CSV export.
const (
	colSaleDate = "Sale Date"
	colShipping = "Order Shipping"
	colZipcode  = "Ship Zipcode"
	colState    = "Ship State"
	colCountry  = "Ship Country"
)

// saleDateLayouts are the date formats seen across marketplace exports.
var saleDateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"01/02/06",
}

// ReadStats reports how a read went. Skipped rows are the explicit
// partial-failure policy: a record missing its price or date is dropped and
// counted, it never aborts the batch.
type ReadStats struct {
	// Rows is the number of data rows seen (header excluded)
	Rows int

	// Skipped is the number of rows dropped for missing required fields
	Skipped int
}

// ReadOrders parses a sold-orders CSV. The header row is required; column
// order is free. Only a missing header or an unreadable stream is an error.
func ReadOrders(r io.Reader) ([]types.Order, ReadStats, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, ReadStats{}, errs.Parsing("read CSV header", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colSaleDate, colShipping, colZipcode} {
		if _, ok := idx[required]; !ok {
			return nil, ReadStats{}, errs.Input("missing required column: " + required)
		}
	}

	var (
		orders []types.Order
		stats  ReadStats
	)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, errs.Parsing("read CSV row", err)
		}
		stats.Rows++

		order, ok := parseRecord(record, idx)
		if !ok {
			stats.Skipped++
			continue
		}
		orders = append(orders, order)
	}
	return orders, stats, nil
}

func parseRecord(record []string, idx map[string]int) (types.Order, bool) {
	date, ok := parseSaleDate(field(record, idx, colSaleDate))
	if !ok {
		return types.Order{}, false
	}
	price, err := decimal.NewFromString(cleanAmount(field(record, idx, colShipping)))
	if err != nil || price.IsNegative() {
		return types.Order{}, false
	}
	zip := strings.TrimSpace(field(record, idx, colZipcode))
	if zip == "" {
		return types.Order{}, false
	}
	return types.Order{
		SaleDate:      date,
		ShippingPrice: price,
		ShipZipcode:   zip,
		ShipState:     strings.TrimSpace(field(record, idx, colState)),
		ShipCountry:   strings.TrimSpace(field(record, idx, colCountry)),
	}, true
}

func field(record []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

// cleanAmount strips currency symbols and thousands separators.
func cleanAmount(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	return strings.ReplaceAll(s, ",", "")
}

func parseSaleDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range saleDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseSaleDate parses a sale date in any of the accepted export layouts.
// Exposed for callers that accept order records outside of CSV.
func ParseSaleDate(s string) (time.Time, bool) {
	return parseSaleDate(s)
}
