// Package engine orchestrates one analysis run: classify each order's
// destination into a zone, invert the rate table to estimate shipped and
// packaging weight, then aggregate the reporting views. The engine keeps no
// state between runs; each Run returns a self-contained immutable Result.
package engine

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"shipwaste/core/aggregate"
	"shipwaste/core/estimate"
	"shipwaste/core/geo"
	"shipwaste/core/types"
	errs "shipwaste/internal/errors"
)

// TopRegionCount is how many regions the ranked table carries.
const TopRegionCount = 5

// Options tunes an Engine.
type Options struct {
	// Workers bounds the parallel per-order map stage; <=0 selects NumCPU
	Workers int

	// Logger receives run-level progress; nil disables logging
	Logger *zap.Logger
}

// Engine wires the classifier, estimator and aggregator together.
type Engine struct {
	classifier *geo.Classifier
	estimator  *estimate.Estimator
	workers    int
	log        *zap.Logger
}

// New builds an engine over shared read-only lookup structures.
func New(classifier *geo.Classifier, estimator *estimate.Estimator, opts Options) *Engine {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		classifier: classifier,
		estimator:  estimator,
		workers:    workers,
		log:        log,
	}
}

// Params describes one analysis run.
type Params struct {
	// OriginZip is the seller's 5-digit origin ZIP
	OriginZip string

	// Category selects the packaging fraction; CategoryNone uses the flat default
	Category types.Category

	// Orders is the validated order batch
	Orders []types.Order

	// Skipped carries the count of records the reader already dropped, so
	// the result reports the full picture of the input file
	Skipped int
}

// Run executes one batch analysis. Per-order geocoding misses are recovered
// to the catch-all zone; only structural failures (invalid origin,
// malformed configuration) return an error.
func (e *Engine) Run(ctx context.Context, p Params) (*types.Result, error) {
	if _, ok := geo.NormalizeZip(p.OriginZip); !ok {
		return nil, errs.Input("origin ZIP must be a 5-digit US code")
	}
	if !p.Category.Valid() {
		return nil, errs.Input("unknown business category: " + p.Category.String())
	}

	estimates := make([]types.OrderEstimate, len(p.Orders))

	// Map stage: each order depends only on itself and the shared
	// read-only tables, so rows are scored in parallel.
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := range p.Orders {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			est, err := e.scoreOrder(p.OriginZip, p.Category, p.Orders[i])
			if err != nil {
				return err
			}
			estimates[i] = est
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Reduce stage: sequential and order-respecting.
	unresolved := 0
	for i := range estimates {
		if !estimates[i].DistanceKnown {
			unresolved++
		}
	}

	result := &types.Result{
		Orders:     estimates,
		TotalWaste: aggregate.TotalWaste(estimates),
		Monthly:    aggregate.MonthlyWaste(estimates),
		Cumulative: aggregate.CumulativeWaste(estimates),
		ByRegion:   aggregate.WasteByRegion(estimates),
		TopRegions: aggregate.TopRegions(estimates, TopRegionCount),
		Skipped:    p.Skipped,
		Unresolved: unresolved,
	}

	e.log.Info("analysis complete",
		zap.Int("orders", len(estimates)),
		zap.Int("unresolved", unresolved),
		zap.Int("skipped", p.Skipped),
		zap.String("total_waste_lb", result.TotalWaste.StringFixed(2)),
	)
	return result, nil
}

// scoreOrder derives every per-order field. A destination that cannot be
// geocoded lands in the catch-all zone and stays in the batch.
func (e *Engine) scoreOrder(originZip string, cat types.Category, order types.Order) (types.OrderEstimate, error) {
	miles, known, zone := e.classifier.Classify(originZip, order.ShipZipcode)

	matched, err := e.estimator.EstimateShippedWeight(zone, order.ShippingPrice)
	if err != nil {
		// only reachable with a broken boundary table; structural, so it
		// aborts the run rather than skewing the totals silently
		return types.OrderEstimate{}, err
	}

	return types.OrderEstimate{
		Order:         order,
		DistanceMiles: miles,
		DistanceKnown: known,
		Zone:          zone,
		CostBasis:     e.estimator.CostBasis(order.ShippingPrice),
		MatchedWeight: matched,
		PackageWeight: e.estimator.EstimatePackageWeight(matched, cat),
	}, nil
}
