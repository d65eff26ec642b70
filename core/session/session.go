// Package session holds one browsing session's mutable state: the active
// catalog and the active quote. Engine operations go through the session so
// callers never juggle the catalog themselves, and region loads carry a
// generation stamp so an overlapping load can never install a stale
// catalog over a newer one.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"cloud-quote/adapters/pricing"
	"cloud-quote/core/catalog"
	"cloud-quote/core/export"
	"cloud-quote/core/format"
	"cloud-quote/core/quote"
	"cloud-quote/internal/errors"
	"cloud-quote/internal/logging"
)

// Session is the single-editor quoting session
type Session struct {
	mu      sync.Mutex
	source  pricing.Source
	catalog *catalog.Catalog
	engine  *quote.Engine
	gen     uint64
}

// New creates a session backed by a catalog source
func New(source pricing.Source) *Session {
	return &Session{
		source: source,
		engine: quote.NewEngine(),
	}
}

// LoadRegion fetches, parses, and installs the catalog for a region key.
// Only the most recently requested load may install its catalog: a load
// that finishes after a newer one started is discarded silently (the
// parsed catalog is still returned to its caller).
func (s *Session) LoadRegion(ctx context.Context, key string) (*catalog.Catalog, error) {
	region, ok := catalog.RegionByKey(key)
	if !ok {
		return nil, errors.InvalidCatalog("unsupported region: " + key)
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	raw, err := s.source.Fetch(ctx, region.Filename)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Parse(raw)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		logging.Debug("discarding superseded catalog load",
			zap.String("region", key), zap.Uint64("generation", gen))
		return cat, nil
	}
	s.catalog = cat

	logging.Info("region pricing loaded",
		zap.String("region", key),
		zap.String("entity", cat.Entity()),
		zap.String("currency", cat.Currency()),
		zap.Int("instance_types", len(cat.InstanceTypes())))
	return cat, nil
}

// Catalog returns the active catalog, or nil when none is loaded
func (s *Session) Catalog() *catalog.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog
}

// Engine returns the session's quote engine
func (s *Session) Engine() *quote.Engine {
	return s.engine
}

func (s *Session) activeCatalog() (*catalog.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.catalog == nil {
		return nil, errors.InvalidCatalog("no catalog loaded: set a region first")
	}
	return s.catalog, nil
}

// AddInstance adds an instance (and its paired storage line) against the
// active catalog
func (s *Session) AddInstance(instanceKey string, quantity int, storageType quote.StorageType, totalStorageGB int) ([]quote.LineItem, error) {
	cat, err := s.activeCatalog()
	if err != nil {
		return nil, err
	}
	return s.engine.AddInstance(cat, instanceKey, quantity, storageType, totalStorageGB)
}

// SetBandwidth replaces the bandwidth line against the active catalog
func (s *Session) SetBandwidth(totalTB decimal.Decimal) (*quote.LineItem, error) {
	cat, err := s.activeCatalog()
	if err != nil {
		return nil, err
	}
	return s.engine.SetBandwidth(cat, totalTB)
}

// RemoveItem removes the quote line at index
func (s *Session) RemoveItem(index int) error {
	return s.engine.RemoveItem(index)
}

// FormattedTotal renders the quote total in the active currency, or with
// an "N/A" currency marker when no catalog is loaded.
func (s *Session) FormattedTotal() string {
	currency := "N/A"
	if cat := s.Catalog(); cat != nil {
		currency = cat.Currency()
	}
	return format.Price(s.engine.Total(), currency, 2)
}

// ExportCSV serializes the current quote, embedding the on-screen total
func (s *Session) ExportCSV() (string, error) {
	return export.CSV(s.engine.Items(), s.FormattedTotal())
}

// ExportFile writes the CSV artifact for the active region into dir
func (s *Session) ExportFile(dir string, now time.Time) (string, error) {
	cat, err := s.activeCatalog()
	if err != nil {
		return "", err
	}
	data, err := s.ExportCSV()
	if err != nil {
		return "", err
	}
	return export.WriteFile(dir, cat.Entity(), data, now)
}

// Reset clears the quote but keeps the active catalog
func (s *Session) Reset() {
	s.engine.Reset()
}

// ResetAll clears the quote and drops the active catalog (region reset)
func (s *Session) ResetAll() {
	s.engine.Reset()
	s.mu.Lock()
	s.catalog = nil
	s.mu.Unlock()
}
