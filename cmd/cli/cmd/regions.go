// Package cmd - regions command
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"cloud-quote/core/catalog"
	"cloud-quote/core/ui"
	"cloud-quote/internal/config"
)

// regionsCmd lists the supported pricing regions
var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List supported pricing regions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := ui.NewWriter(os.Stdout, config.Get().Output.NoColor)
		w.RegionTable(catalog.Regions())
	},
}
