// Package catalog - Region pricing catalogs
// A catalog is the validated pricing dataset for one region: instance
// prices, a storage rate, and tiered bandwidth pricing. Validation happens
// once at parse time; an accepted catalog is trusted by everything
// downstream.
package catalog

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"cloud-quote/internal/errors"
)

// InstanceSpec describes one catalog instance type
type InstanceSpec struct {
	// Type is the instance type key (e.g. "cpx31")
	Type string `json:"instance_type"`

	// Series is the product series
	Series string `json:"series"`

	// VCPU is the vCPU count
	VCPU int `json:"vCPU"`

	// MemoryGiB is the RAM size
	MemoryGiB decimal.Decimal `json:"Memory_GiB"`

	// PricePerHour is the hourly on-demand price
	PricePerHour decimal.Decimal `json:"Price_per_hour"`

	// PricePerMonth is the monthly price
	PricePerMonth decimal.Decimal `json:"Price_per_month"`

	// BaselineBandwidth is the guaranteed network throughput (descriptive)
	BaselineBandwidth string `json:"Baseline_bandwidth"`

	// BurstBandwidth is the burst network throughput (descriptive)
	BurstBandwidth string `json:"Burst_bandwidth"`

	// PrivateNetwork describes the private networking option
	PrivateNetwork string `json:"Private_network"`
}

// StorageRate is the per-GB-month price for network storage
type StorageRate struct {
	PricePerGBMonth decimal.Decimal `json:"Price_per_GB_Month"`
}

// BandwidthTier is a priced bandwidth volume band
type BandwidthTier struct {
	// ThresholdTB is where the band starts, in TB
	ThresholdTB decimal.Decimal `json:"threshold_tb"`

	// PricePerTB is the rate within the band
	PricePerTB decimal.Decimal `json:"price_per_tb"`
}

// Catalog is an immutable pricing snapshot for one region
type Catalog struct {
	entity       string
	currency     string
	instances    map[string]InstanceSpec
	order        []string
	storage      *StorageRate
	tiers        []BandwidthTier
	localStorage int
}

// rawDocument mirrors the region pricing file. Sections are RawMessage so
// a missing section can be told apart from a mistyped one.
type rawDocument struct {
	Entity           string          `json:"entity"`
	Currency         string          `json:"currency"`
	InstancePricing  json.RawMessage `json:"instance_pricing"`
	LocalNVMeStorage json.RawMessage `json:"local_nvme_storage"`
	CentralStorage   json.RawMessage `json:"central_storage"`
	BandwidthPricing json.RawMessage `json:"bandwidth_pricing"`
}

// Parse validates a raw region pricing document and returns a catalog.
// The document is accepted wholesale or rejected wholesale: no partial
// catalog is ever returned.
func Parse(raw []byte) (*Catalog, error) {
	var doc rawDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(errors.TypeInvalidCatalog, "pricing document is not valid JSON", err)
	}

	if doc.Entity == "" {
		return nil, errors.InvalidCatalog("pricing document has no entity field")
	}
	if doc.Currency == "" {
		return nil, errors.InvalidCatalog("pricing document has no currency field")
	}

	var instances []InstanceSpec
	if err := decodeSection(doc.InstancePricing, "instance_pricing", &instances); err != nil {
		return nil, err
	}

	var localStorage []json.RawMessage
	if err := decodeSection(doc.LocalNVMeStorage, "local_nvme_storage", &localStorage); err != nil {
		return nil, err
	}

	var centralStorage []StorageRate
	if err := decodeSection(doc.CentralStorage, "central_storage", &centralStorage); err != nil {
		return nil, err
	}

	var tiers []BandwidthTier
	if err := decodeSection(doc.BandwidthPricing, "bandwidth_pricing", &tiers); err != nil {
		return nil, err
	}

	cat := &Catalog{
		entity:       doc.Entity,
		currency:     doc.Currency,
		instances:    make(map[string]InstanceSpec, len(instances)),
		order:        make([]string, 0, len(instances)),
		tiers:        tiers,
		localStorage: len(localStorage),
	}
	for _, spec := range instances {
		if _, dup := cat.instances[spec.Type]; !dup {
			cat.order = append(cat.order, spec.Type)
		}
		cat.instances[spec.Type] = spec
	}

	// Effective storage rate is the first central_storage entry. An empty
	// list is a valid state until storage pricing is actually needed.
	if len(centralStorage) > 0 {
		rate := centralStorage[0]
		cat.storage = &rate
	}

	return cat, nil
}

func decodeSection(raw json.RawMessage, name string, dst interface{}) error {
	if raw == nil {
		return errors.Newf(errors.TypeInvalidCatalog, "pricing document is missing the %s section", name)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errors.Wrapf(errors.TypeInvalidCatalog, err, "pricing document section %s is malformed", name)
	}
	return nil
}

// Entity returns the region identifier
func (c *Catalog) Entity() string {
	return c.entity
}

// Currency returns the catalog currency code
func (c *Catalog) Currency() string {
	return c.currency
}

// Instance looks up an instance spec by type key
func (c *Catalog) Instance(key string) (InstanceSpec, bool) {
	spec, ok := c.instances[key]
	return spec, ok
}

// InstanceTypes returns the instance type keys in document order
func (c *Catalog) InstanceTypes() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// StorageRate returns the effective storage rate, if the region has one
func (c *Catalog) StorageRate() (StorageRate, bool) {
	if c.storage == nil {
		return StorageRate{}, false
	}
	return *c.storage, true
}

// BandwidthTiers returns the bandwidth tiers as provided, unsorted
func (c *Catalog) BandwidthTiers() []BandwidthTier {
	out := make([]BandwidthTier, len(c.tiers))
	copy(out, c.tiers)
	return out
}

// LocalStorageOptions returns how many local NVMe storage entries the
// region document carried. The entries themselves are informational only;
// local storage is included in the instance price.
func (c *Catalog) LocalStorageOptions() int {
	return c.localStorage
}
