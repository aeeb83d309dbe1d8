package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ulko-io/ulko/internal/aws"
	"github.com/ulko-io/ulko/internal/config"
	"github.com/ulko-io/ulko/internal/inventory"
	"github.com/ulko-io/ulko/internal/report"
)

var (
	inventoryConfig  string
	inventoryRegion  string
	inventoryRegions []string
	inventoryOutput  string
	inventoryDebug   bool
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Collect externally reachable AWS assets into a spreadsheet",
	Long: `Collect the account's externally reachable assets across all enabled
regions and write them into one spreadsheet with a sheet per resource
kind. The run continues past per-region and per-resource failures; only
a failure to resolve the account identity aborts it.`,
	Example: `  ulko inventory                                # all enabled regions
  ulko inventory --regions eu-west-1,eu-north-1 # fixed region set
  ulko inventory --output /tmp/reports          # artifact directory`,
	RunE: runInventory,
}

func init() {
	rootCmd.AddCommand(inventoryCmd)

	inventoryCmd.Flags().StringVarP(&inventoryConfig, "config", "c", "", "Path to YAML config file")
	inventoryCmd.Flags().StringVarP(&inventoryRegion, "region", "r", "", "Region for credential resolution and region discovery")
	inventoryCmd.Flags().StringSliceVar(&inventoryRegions, "regions", nil, "Comma-separated region override, skips discovery")
	inventoryCmd.Flags().StringVarP(&inventoryOutput, "output", "o", "", "Directory the report is written to")
	inventoryCmd.Flags().BoolVar(&inventoryDebug, "debug", false, "Enable debug logging")
}

func runInventory(cmd *cobra.Command, args []string) error {
	cfg, err := loadInventoryConfig()
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if inventoryDebug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	collector, err := aws.New(ctx, aws.Config{Region: cfg.Region, Regions: cfg.Regions})
	if err != nil {
		return fmt.Errorf("create collector: %w", err)
	}

	path, err := inventory.Run(ctx, collector, report.NewExcelWriter(cfg.OutputDir))
	if err != nil {
		return err
	}

	log.Info().Str("path", path).Msg("report written")
	fmt.Println(path)
	return nil
}

// loadInventoryConfig merges defaults, the optional config file, and flags.
// Flags win.
func loadInventoryConfig() (*config.Config, error) {
	cfg := config.Default()
	if inventoryConfig != "" {
		loaded, err := config.Load(inventoryConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if inventoryRegion != "" {
		cfg.Region = inventoryRegion
	}
	if len(inventoryRegions) > 0 {
		cfg.Regions = inventoryRegions
	}
	if inventoryOutput != "" {
		cfg.OutputDir = inventoryOutput
	}
	return cfg, nil
}
