package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	rootCmd = &cobra.Command{
		Use:   "ulko",
		Short: "External asset inventory for AWS",
		Long: `Ulko - External Asset Inventory

Ulko walks an AWS account's externally reachable surface - DNS records,
API endpoints, function URLs, CDN distributions, hosted apps, load
balancers, database endpoints and public instances - and writes the
flattened results into a multi-sheet spreadsheet report.`,
		Version: version,
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(`Ulko {{.Version}} - External Asset Inventory
`)
}
