// Package cmd - catalog command
package cmd

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cloud-quote/adapters/pricing"
	"cloud-quote/core/session"
	"cloud-quote/core/ui"
	"cloud-quote/internal/config"
)

// catalogCmd loads and prints a region's pricing catalog
var catalogCmd = &cobra.Command{
	Use:   "catalog REGION",
	Short: "Show the pricing catalog for a region",
	Long: `Load a region's pricing data and print its instance types,
storage rate, and bandwidth tiers.

Examples:
  cloud-quote catalog US
  cloud-quote catalog JP`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	w := ui.NewWriter(os.Stdout, cfg.Output.NoColor)

	sess := newSession(cfg)
	cat, err := sess.LoadRegion(context.Background(), strings.ToUpper(args[0]))
	if err != nil {
		w.Error("%v", err)
		return err
	}

	w.CatalogTable(cat)
	return nil
}

// newSession builds a session from the configured catalog source
func newSession(cfg *config.Config) *session.Session {
	timeout := time.Duration(cfg.Catalog.TimeoutSeconds) * time.Second
	return session.New(pricing.NewSource(cfg.Catalog.Source, timeout))
}
