// Package cmd - quote command
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cloud-quote/adapters/quotefile"
	"cloud-quote/core/ui"
	"cloud-quote/internal/config"
	"cloud-quote/internal/logging"
)

var (
	quoteFormat string
	quoteExport bool
)

// quoteCmd builds and renders a quote from a quotefile
var quoteCmd = &cobra.Command{
	Use:   "quote QUOTEFILE",
	Short: "Build a quote from a quote-definition file",
	Long: `Build a quote from an HCL quote-definition file and render it.

A quotefile declares a region, instance blocks, and an estimated monthly
bandwidth volume:

  region = "SG"

  instance {
    type       = "cax31"
    quantity   = 2
    storage    = "network"
    storage_gb = 40
  }

  bandwidth_tb = 12.5

Examples:
  cloud-quote quote my-setup.hcl
  cloud-quote quote my-setup.hcl --format csv
  cloud-quote quote my-setup.hcl --export`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "", "output format (table, csv)")
	quoteCmd.Flags().BoolVarP(&quoteExport, "export", "e", false, "write the CSV artifact to the export directory")
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	w := ui.NewWriter(os.Stdout, cfg.Output.NoColor)

	qf, err := quotefile.Decode(args[0])
	if err != nil {
		w.Error("%v", err)
		return err
	}

	sess := newSession(cfg)
	if err := quotefile.Apply(context.Background(), qf, sess); err != nil {
		w.Error("%v", err)
		return err
	}

	format := quoteFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}

	switch format {
	case "csv":
		data, err := sess.ExportCSV()
		if err != nil {
			w.Error("%v", err)
			return err
		}
		fmt.Fprint(os.Stdout, data)
	case "table", "":
		w.QuoteTable(sess.Engine().Items(), sess.Catalog().Currency(), sess.FormattedTotal())
	default:
		err := fmt.Errorf("unknown output format: %s", format)
		w.Error("%v", err)
		return err
	}

	if quoteExport {
		path, err := sess.ExportFile(cfg.Output.ExportDir, time.Now())
		if err != nil {
			w.Error("%v", err)
			return err
		}
		logging.Info("quote exported", zap.String("path", path))
		w.Success("Exported %s", path)
	}

	return nil
}
