// Package api - Thin HTTP layer over the estimation engine
// The API is only responsible for input ingestion, engine orchestration and
// output serialization. It never performs estimation logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"shipwaste/core/engine"
	"shipwaste/core/input"
	"shipwaste/core/types"
	errs "shipwaste/internal/errors"
)

// Server is the API server.
type Server struct {
	engine   *engine.Engine
	version  string
	maxBatch int
	log      *zap.Logger
	router   chi.Router
}

// NewServer builds the server and its routes. maxBatch caps the accepted
// order count per request; <=0 disables the cap.
func NewServer(eng *engine.Engine, version string, maxBatch int, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		engine:   eng,
		version:  version,
		maxBatch: maxBatch,
		log:      log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Post("/analyze", s.handleAnalyze)
	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := uuid.NewString()

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Orders) == 0 {
		s.writeError(w, "VALIDATION_ERROR", "orders must not be empty", http.StatusBadRequest)
		return
	}
	if s.maxBatch > 0 && len(req.Orders) > s.maxBatch {
		s.writeError(w, "VALIDATION_ERROR", "order batch exceeds the configured limit", http.StatusRequestEntityTooLarge)
		return
	}

	orders, skipped := convertOrders(req.Orders)

	result, err := s.engine.Run(r.Context(), engine.Params{
		OriginZip: req.OriginZip,
		Category:  types.Category(req.Category),
		Orders:    orders,
		Skipped:   skipped,
	})
	if err != nil {
		status := http.StatusInternalServerError
		code := "ENGINE_ERROR"
		if errs.IsType(err, errs.TypeInput) {
			status = http.StatusBadRequest
			code = "VALIDATION_ERROR"
		}
		s.log.Warn("analyze failed", zap.String("request_id", requestID), zap.Error(err))
		s.writeError(w, code, err.Error(), status)
		return
	}

	s.log.Info("analyze ok",
		zap.String("request_id", requestID),
		zap.Int("orders", len(orders)),
		zap.Duration("duration", time.Since(start)),
	)
	s.writeJSON(w, AnalyzeResponse{
		Result: result,
		Metadata: ResponseMetadata{
			RequestID:     requestID,
			EngineVersion: s.version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}, http.StatusOK)
}

// convertOrders maps wire records to domain orders, dropping records with
// unparseable dates. The skip count flows into the result so callers see
// the full picture.
func convertOrders(records []OrderRecord) ([]types.Order, int) {
	orders := make([]types.Order, 0, len(records))
	skipped := 0
	for _, rec := range records {
		date, ok := input.ParseSaleDate(rec.SaleDate)
		if !ok || rec.ShipZipcode == "" || rec.ShippingPrice.IsNegative() {
			skipped++
			continue
		}
		orders = append(orders, types.Order{
			SaleDate:      date,
			ShippingPrice: rec.ShippingPrice,
			ShipZipcode:   rec.ShipZipcode,
			ShipState:     rec.ShipState,
			ShipCountry:   rec.ShipCountry,
		})
	}
	return orders, skipped
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version": s.version,
		"engine":  "shipwaste",
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, ErrorResponse{Code: code, Message: message}, status)
}
