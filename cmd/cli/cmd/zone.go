// Package cmd - zone command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"shipwaste/core/geo"
	"shipwaste/internal/config"
)

var zoneOrigin string

// zoneCmd classifies a single destination ZIP into a carrier zone.
var zoneCmd = &cobra.Command{
	Use:   "zone [destination-zip]",
	Short: "Show the distance and carrier zone for one destination",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		path := zipDataPath
		if path == "" {
			path = cfg.Geo.GazetteerPath
		}
		gaz, err := geo.LoadGazetteer(path)
		if err != nil {
			return err
		}
		classifier := geo.NewClassifier(gaz, cfg.Geo.Boundaries())

		miles, known, zone := classifier.Classify(zoneOrigin, args[0])
		if !known {
			fmt.Printf("%s: destination not resolvable, catch-all zone %d\n", args[0], zone)
			return nil
		}
		fmt.Printf("%s: %.1f miles, zone %d\n", args[0], miles, zone)
		return nil
	},
}

func init() {
	zoneCmd.Flags().StringVarP(&zoneOrigin, "origin", "o", "", "seller origin ZIP code (required)")
	zoneCmd.Flags().StringVar(&zipDataPath, "zip-data", "", "GeoNames postal dataset path (overrides config)")
	_ = zoneCmd.MarkFlagRequired("origin")
}
