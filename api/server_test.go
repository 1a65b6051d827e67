package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipwaste/core/engine"
	"shipwaste/core/estimate"
	"shipwaste/core/geo"
	"shipwaste/core/rate"
)

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestServer(t *testing.T, maxBatch int) *Server {
	t.Helper()
	gaz := geo.NewGazetteer(map[string]geo.Coord{
		"10001": {Lat: 40.7506, Lon: -73.9971},
		"10002": {Lat: 40.7158, Lon: -73.9863},
	})
	rates := rate.DefaultUSPS()
	eng := engine.New(geo.NewClassifier(gaz, nil), estimate.New(rates, estimate.Options{}), engine.Options{})
	return NewServer(eng, "test", maxBatch, nil)
}

func postAnalyze(t *testing.T, srv *Server, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeHappyPath(t *testing.T) {
	srv := newTestServer(t, 0)
	rec := postAnalyze(t, srv, AnalyzeRequest{
		OriginZip: "10001",
		Orders: []OrderRecord{
			{SaleDate: "2024-01-15", ShippingPrice: mustDecimal("6.513"), ShipZipcode: "10002", ShipState: "NY", ShipCountry: "United States"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Equal(t, "0.2", resp.Result.TotalWaste.String())
	assert.NotEmpty(t, resp.Metadata.RequestID)
	assert.Equal(t, "test", resp.Metadata.EngineVersion)
}

func TestAnalyzeSkipsBadRecords(t *testing.T) {
	srv := newTestServer(t, 0)
	rec := postAnalyze(t, srv, AnalyzeRequest{
		OriginZip: "10001",
		Orders: []OrderRecord{
			{SaleDate: "2024-01-15", ShippingPrice: mustDecimal("6.513"), ShipZipcode: "10002", ShipCountry: "United States"},
			{SaleDate: "not a date", ShippingPrice: mustDecimal("5.00"), ShipZipcode: "10002"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Result.Skipped)
	assert.Len(t, resp.Result.Orders, 1)
}

func TestAnalyzeRejectsBadInput(t *testing.T) {
	srv := newTestServer(t, 0)

	// malformed JSON
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// empty batch
	rec = postAnalyze(t, srv, AnalyzeRequest{OriginZip: "10001"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// bad origin surfaces as a validation error
	rec = postAnalyze(t, srv, AnalyzeRequest{
		OriginZip: "bogus",
		Orders:    []OrderRecord{{SaleDate: "2024-01-15", ShippingPrice: mustDecimal("5.00"), ShipZipcode: "10002"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "VALIDATION_ERROR", errResp.Code)
}

func TestAnalyzeBatchLimit(t *testing.T) {
	srv := newTestServer(t, 1)
	rec := postAnalyze(t, srv, AnalyzeRequest{
		OriginZip: "10001",
		Orders: []OrderRecord{
			{SaleDate: "2024-01-15", ShippingPrice: mustDecimal("5.00"), ShipZipcode: "10002"},
			{SaleDate: "2024-01-16", ShippingPrice: mustDecimal("5.00"), ShipZipcode: "10002"},
		},
	})
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHealthAndVersion(t *testing.T) {
	srv := newTestServer(t, 0)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "shipwaste")
}
