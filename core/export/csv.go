// Package export serializes a quote into the portable CSV artifact.
//
// The layout is fixed: every field is quoted, descriptions escape embedded
// double-quotes by doubling, and the total row carries the pre-formatted
// display total verbatim so the file always matches what was on screen.
// encoding/csv is deliberately not used here; its quoting heuristics cannot
// reproduce the always-quoted rows and the bare blank separator line this
// format requires.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloud-quote/core/quote"
	"cloud-quote/internal/errors"
)

// header is the fixed CSV header row
const header = "Qty,Item / Type,Description,Price / Unit,Subtotal"

// CSV renders the quote lines as CSV text. formattedTotal is the display
// total (currency symbol and grouping included) and is embedded unchanged.
func CSV(items []quote.LineItem, formattedTotal string) (string, error) {
	if len(items) == 0 {
		return "", errors.EmptyQuote()
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')

	for _, item := range items {
		b.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s\n",
			quoteField(item.DisplayQuantity()),
			quoteField(string(item.Type)),
			quoteField(item.Description),
			quoteField(item.PricePerUnit.StringFixed(item.PriceDecimals)),
			quoteField(item.Subtotal.StringFixed(2)),
		))
	}

	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf(",,,TOTAL MONTHLY COST,%s\n", quoteField(formattedTotal)))

	return b.String(), nil
}

// quoteField wraps a value in double quotes, doubling any embedded quotes
func quoteField(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// Filename returns the export artifact name for a region and date
func Filename(entity string, now time.Time) string {
	return fmt.Sprintf("cloud_quote_%s_%s.csv", entity, now.Format("2006-01-02"))
}

// WriteFile writes the CSV artifact into dir and returns its full path
func WriteFile(dir, entity string, data string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Internal("creating export directory", err)
	}
	path := filepath.Join(dir, Filename(entity, now))
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return "", errors.Internal("writing export file", err)
	}
	return path, nil
}
