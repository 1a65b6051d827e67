// Package cmd - analyze command
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shipwaste/core/engine"
	"shipwaste/core/estimate"
	"shipwaste/core/geo"
	"shipwaste/core/input"
	"shipwaste/core/output"
	"shipwaste/core/rate"
	"shipwaste/core/types"
	"shipwaste/internal/config"
	"shipwaste/internal/logging"
)

var (
	originZip    string
	categorySlug string
	zipDataPath  string
	outputFormat string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [orders.csv]",
	Short: "Estimate packaging waste for a sold-orders export",
	Long: `Read a sold-orders CSV export, estimate each package's weight from its
shipping charge and distance, and report the aggregated packaging waste.

Examples:
  shipwaste analyze --origin 10001 orders.csv
  shipwaste analyze --origin 10001 --category jewelry-accessories orders.csv
  shipwaste analyze --origin 10001 --format json orders.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&originZip, "origin", "o", "", "seller origin ZIP code (required)")
	analyzeCmd.Flags().StringVarP(&categorySlug, "category", "c", "", "business category slug for the packaging fraction")
	analyzeCmd.Flags().StringVar(&zipDataPath, "zip-data", "", "GeoNames postal dataset path (overrides config)")
	analyzeCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	_ = analyzeCmd.MarkFlagRequired("origin")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	start := time.Now()
	cfg := config.Get()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open orders file: %w", err)
	}
	defer f.Close()

	orders, stats, err := input.ReadOrders(f)
	if err != nil {
		return err
	}
	logging.Info("orders loaded",
		zap.Int("rows", stats.Rows),
		zap.Int("skipped", stats.Skipped),
	)

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	result, err := eng.Run(ctx, engine.Params{
		OriginZip: originZip,
		Category:  types.Category(categorySlug),
		Orders:    orders,
		Skipped:   stats.Skipped,
	})
	if err != nil {
		return err
	}

	switch outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	default:
		fmt.Print(output.FormatReport(result))
	}

	logging.Info("analysis finished", zap.Duration("duration", time.Since(start)))
	return nil
}

// buildEngine wires the shared lookup structures from configuration.
func buildEngine(cfg *config.Config) (*engine.Engine, error) {
	path := zipDataPath
	if path == "" {
		path = cfg.Geo.GazetteerPath
	}
	gaz, err := geo.LoadGazetteer(path)
	if err != nil {
		return nil, err
	}
	logging.Debug("gazetteer loaded", zap.Int("postal_codes", gaz.Len()))

	rates := rate.DefaultUSPS()
	classifier := geo.NewClassifier(gaz, cfg.Geo.Boundaries())
	estimator := estimate.New(rates, estimate.Options{
		MarkupFactor:      cfg.Estimation.MarkupFactor,
		PackagingFraction: cfg.Estimation.PackagingFraction,
		CategoryFractions: cfg.Estimation.CategoryFractions,
	})

	return engine.New(classifier, estimator, engine.Options{
		Logger: logging.Logger,
	}), nil
}
