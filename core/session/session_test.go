package session

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"cloud-quote/core/quote"
	"cloud-quote/internal/errors"
)

const usDoc = `{
	"entity": "US",
	"currency": "US",
	"instance_pricing": [
		{
			"instance_type": "cpx31",
			"series": "CPX",
			"vCPU": 4,
			"Memory_GiB": 8,
			"Price_per_hour": 0.074,
			"Price_per_month": 50.00,
			"Baseline_bandwidth": "1 Gbps",
			"Burst_bandwidth": "2 Gbps",
			"Private_network": "included"
		}
	],
	"local_nvme_storage": [],
	"central_storage": [{"Price_per_GB_Month": 0.10}],
	"bandwidth_pricing": [
		{"threshold_tb": 10, "price_per_tb": 0.085},
		{"threshold_tb": 150, "price_per_tb": 0.07}
	]
}`

const sgDoc = `{
	"entity": "SG",
	"currency": "SGD",
	"instance_pricing": [],
	"local_nvme_storage": [],
	"central_storage": [],
	"bandwidth_pricing": []
}`

// fetchGate blocks a fetch until released and reports when the fetch
// has started, to simulate a slow in-flight load deterministically.
type fetchGate struct {
	started chan struct{}
	release chan struct{}
}

// stubSource serves in-memory documents, optionally gated per filename.
type stubSource struct {
	mu    sync.Mutex
	docs  map[string]string
	gates map[string]*fetchGate
}

func newStubSource() *stubSource {
	return &stubSource{
		docs:  map[string]string{"us.json": usDoc, "sg.json": sgDoc},
		gates: make(map[string]*fetchGate),
	}
}

func (s *stubSource) gate(filename string) *fetchGate {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := &fetchGate{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	s.gates[filename] = g
	return g
}

func (s *stubSource) Fetch(ctx context.Context, filename string) ([]byte, error) {
	s.mu.Lock()
	g := s.gates[filename]
	doc, ok := s.docs[filename]
	s.mu.Unlock()

	if g != nil {
		close(g.started)
		<-g.release
	}
	if !ok {
		return nil, errors.Newf(errors.TypeFetchFailure, "file not found: %s", filename)
	}
	return []byte(doc), nil
}

func TestLoadRegion(t *testing.T) {
	sess := New(newStubSource())

	cat, err := sess.LoadRegion(context.Background(), "US")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Entity() != "US" {
		t.Errorf("entity = %q, want US", cat.Entity())
	}
	if sess.Catalog() != cat {
		t.Error("loaded catalog was not installed")
	}
}

func TestLoadRegionUnknownKey(t *testing.T) {
	sess := New(newStubSource())

	_, err := sess.LoadRegion(context.Background(), "XX")
	if !errors.IsType(err, errors.TypeInvalidCatalog) {
		t.Errorf("error = %v, want InvalidCatalog", err)
	}
}

func TestLoadRegionFetchFailure(t *testing.T) {
	src := newStubSource()
	delete(src.docs, "us.json")
	sess := New(src)

	_, err := sess.LoadRegion(context.Background(), "US")
	if !errors.IsType(err, errors.TypeFetchFailure) {
		t.Errorf("error = %v, want FetchFailure", err)
	}
	if sess.Catalog() != nil {
		t.Error("failed load must leave no catalog active")
	}
}

func TestLoadRegionSupersession(t *testing.T) {
	// A slow US load that finishes after a newer SG load must not
	// install its catalog over the newer one.
	src := newStubSource()
	g := src.gate("us.json")
	sess := New(src)

	done := make(chan error, 1)
	go func() {
		_, err := sess.LoadRegion(context.Background(), "US")
		done <- err
	}()

	// Wait for the US load to be in flight, then supersede it.
	<-g.started
	if _, err := sess.LoadRegion(context.Background(), "SG"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	close(g.release)
	if err := <-done; err != nil {
		t.Fatalf("superseded load errored: %v", err)
	}

	if got := sess.Catalog().Entity(); got != "SG" {
		t.Errorf("active catalog entity = %q, want the most recently requested SG", got)
	}
}

func TestOperationsRequireCatalog(t *testing.T) {
	sess := New(newStubSource())

	if _, err := sess.AddInstance("cpx31", 1, quote.StorageLocal, 5); !errors.IsType(err, errors.TypeInvalidCatalog) {
		t.Errorf("AddInstance without catalog = %v, want InvalidCatalog", err)
	}
	if _, err := sess.SetBandwidth(decimal.NewFromInt(2)); !errors.IsType(err, errors.TypeInvalidCatalog) {
		t.Errorf("SetBandwidth without catalog = %v, want InvalidCatalog", err)
	}
	if _, err := sess.ExportFile(t.TempDir(), time.Now()); !errors.IsType(err, errors.TypeInvalidCatalog) {
		t.Errorf("ExportFile without catalog = %v, want InvalidCatalog", err)
	}
}

func TestFormattedTotalWithoutCatalog(t *testing.T) {
	sess := New(newStubSource())
	if got := sess.FormattedTotal(); got != "N/A0.00" {
		t.Errorf("FormattedTotal without catalog = %q, want N/A0.00", got)
	}
}

func TestSessionQuoteFlow(t *testing.T) {
	sess := New(newStubSource())
	if _, err := sess.LoadRegion(context.Background(), "US"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := sess.AddInstance("cpx31", 3, quote.StorageNetwork, 25); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := sess.SetBandwidth(decimal.NewFromInt(12)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := sess.FormattedTotal(); got != "US156.92" {
		t.Errorf("formatted total = %q, want US156.92", got)
	}

	data, err := sess.ExportCSV()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(data, `,,,TOTAL MONTHLY COST,"US156.92"`) {
		t.Errorf("export missing total row:\n%s", data)
	}

	dir := t.TempDir()
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	path, err := sess.ExportFile(dir, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(path, "cloud_quote_US_2026-08-28.csv") {
		t.Errorf("export path = %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("export artifact missing: %v", err)
	}
}

func TestResetKeepsCatalogResetAllDropsIt(t *testing.T) {
	sess := New(newStubSource())
	if _, err := sess.LoadRegion(context.Background(), "US"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := sess.AddInstance("cpx31", 1, quote.StorageLocal, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sess.Reset()
	if sess.Engine().Len() != 0 {
		t.Error("Reset must clear the quote")
	}
	if sess.Catalog() == nil {
		t.Error("Reset must keep the catalog")
	}

	sess.ResetAll()
	if sess.Catalog() != nil {
		t.Error("ResetAll must drop the catalog")
	}
}

func TestExportEmptyQuote(t *testing.T) {
	sess := New(newStubSource())
	if _, err := sess.LoadRegion(context.Background(), "US"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := sess.ExportCSV(); !errors.IsType(err, errors.TypeEmptyQuote) {
		t.Errorf("export of empty quote = %v, want EmptyQuote", err)
	}
}
