// Package ui - Terminal user interface
// Plain-text tables and status lines for the CLI.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"cloud-quote/core/catalog"
	"cloud-quote/core/format"
	"cloud-quote/core/quote"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out     io.Writer
	noColor bool
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{out: out, noColor: noColor}
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println(w.color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Println("")
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	w.Println(w.color(Green, "✓ ") + fmt.Sprintf(format, args...))
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	w.Println(w.color(Yellow, "⚠ ") + fmt.Sprintf(format, args...))
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	w.Println(w.color(Red, "✗ ") + fmt.Sprintf(format, args...))
}

// RegionTable prints the supported region list
func (w *Writer) RegionTable(regions []catalog.Region) {
	w.Header("Supported Regions")
	rows := make([][]string, 0, len(regions))
	for _, r := range regions {
		rows = append(rows, []string{r.Key, r.DisplayName, r.Filename})
	}
	w.table([]string{"Key", "Region", "Pricing File"}, rows)
}

// CatalogTable prints a region's instance catalog and rates
func (w *Writer) CatalogTable(cat *catalog.Catalog) {
	currency := cat.Currency()

	w.Header(fmt.Sprintf("Instance Pricing — %s (%s)", cat.Entity(), currency))
	rows := make([][]string, 0)
	for _, key := range cat.InstanceTypes() {
		spec, _ := cat.Instance(key)
		rows = append(rows, []string{
			spec.Type,
			spec.Series,
			fmt.Sprintf("%d", spec.VCPU),
			spec.MemoryGiB.String() + " GiB",
			format.Price(spec.PricePerHour, currency, 4) + " /hr",
			format.Price(spec.PricePerMonth, currency, 2) + " /mo",
			spec.BaselineBandwidth,
		})
	}
	w.table([]string{"Type", "Series", "vCPU", "RAM", "Hourly", "Monthly", "Baseline BW"}, rows)

	if rate, ok := cat.StorageRate(); ok {
		w.Println("Network storage: %s per GB-month (first %d GB included per instance)",
			format.Price(rate.PricePerGBMonth, currency, 4), quote.BaselineStorageGB)
	} else {
		w.Warning("No network storage pricing available for this region.")
	}

	tiers := cat.BandwidthTiers()
	if len(tiers) > 0 {
		w.Println("")
		w.Println("Bandwidth tiers (first 1 TB free):")
		trows := make([][]string, 0, len(tiers))
		for _, t := range tiers {
			trows = append(trows, []string{
				t.ThresholdTB.String() + " TB",
				format.Price(t.PricePerTB, currency, 4) + " /TB",
			})
		}
		w.table([]string{"Threshold", "Rate"}, trows)
	}
}

// QuoteTable prints the current quote with its grand total
func (w *Writer) QuoteTable(items []quote.LineItem, currency string, formattedTotal string) {
	w.Header("Quote")

	if len(items) == 0 {
		w.Println("Your quote is empty. Add an instance configuration first.")
		return
	}

	rows := make([][]string, 0, len(items))
	for i, item := range items {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			item.DisplayQuantity(),
			string(item.Type),
			item.Description,
			format.Price(item.PricePerUnit, currency, item.PriceDecimals),
			format.Price(item.Subtotal, currency, 2),
		})
	}
	w.table([]string{"#", "Qty", "Item / Type", "Description", "Price / Unit", "Subtotal"}, rows)

	w.Println("")
	w.Println(w.color(Bold, "TOTAL MONTHLY COST: "+formattedTotal))
}

// table renders an aligned column table with a rule under the header
func (w *Writer) table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); i < len(widths) && n > widths[i] {
				widths[i] = n
			}
		}
	}

	line := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = pad(cell, widths[i])
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	w.Println("%s", w.color(Bold, line(headers)))
	rule := make([]string, len(headers))
	for i := range headers {
		rule[i] = strings.Repeat("─", widths[i])
	}
	w.Println("%s", w.color(Dim, line(rule)))
	for _, row := range rows {
		w.Println("%s", line(row))
	}
}

// pad right-pads to width, measuring in runes so multi-byte cell
// content keeps columns aligned.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
