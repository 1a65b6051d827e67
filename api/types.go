// Package api - Request and response envelopes
package api

import (
	"shipwaste/core/types"

	"github.com/shopspring/decimal"
)

// OrderRecord is one order as submitted over the wire. Dates arrive as
// strings in any accepted export layout; prices accept JSON numbers or
// strings.
type OrderRecord struct {
	SaleDate      string          `json:"sale_date"`
	ShippingPrice decimal.Decimal `json:"shipping_price"`
	ShipZipcode   string          `json:"ship_zipcode"`
	ShipState     string          `json:"ship_state,omitempty"`
	ShipCountry   string          `json:"ship_country,omitempty"`
}

// AnalyzeRequest is the POST /analyze payload.
type AnalyzeRequest struct {
	// OriginZip is the seller's 5-digit origin ZIP
	OriginZip string `json:"origin_zip"`

	// Category is the optional business category slug
	Category string `json:"category,omitempty"`

	// Orders is the batch to analyze
	Orders []OrderRecord `json:"orders"`
}

// AnalyzeResponse wraps the engine result with request metadata.
type AnalyzeResponse struct {
	Result *types.Result `json:"result"`

	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes how the response was produced.
type ResponseMetadata struct {
	// RequestID is the server-assigned id for correlation
	RequestID string `json:"request_id"`

	// EngineVersion is the engine build version
	EngineVersion string `json:"engine_version"`

	// DurationMs is the server-side processing time
	DurationMs int64 `json:"duration_ms"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
