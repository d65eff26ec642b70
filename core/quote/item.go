// Package quote - Quote line items
package quote

import "github.com/shopspring/decimal"

// ItemType classifies a quote line
type ItemType string

const (
	// ItemInstance is a compute instance line
	ItemInstance ItemType = "Instance"

	// ItemStorage is a network storage line
	ItemStorage ItemType = "Storage"

	// ItemBandwidth is the single outgoing traffic line
	ItemBandwidth ItemType = "Bandwidth"
)

// BandwidthItemID is the reserved id of the single allowed bandwidth line
const BandwidthItemID = "GLOBAL_BANDWIDTH"

// BaselineStorageGB is the storage allowance included in every instance
const BaselineStorageGB = 5

// LineItem is one priced row in a quote. Subtotal equals
// PricePerUnit * Quantity at creation time and is never mutated afterward;
// when inputs change the whole item is replaced.
type LineItem struct {
	// ID distinguishes item instances; BandwidthItemID is reserved
	ID string `json:"item_id"`

	// Type is the line classification
	Type ItemType `json:"item_type"`

	// Quantity is the raw billed quantity
	Quantity decimal.Decimal `json:"quantity"`

	// QuantityDisplay overrides Quantity in rendering when non-empty
	QuantityDisplay string `json:"quantity_display,omitempty"`

	// PricePerUnit is the unit price
	PricePerUnit decimal.Decimal `json:"price_per_unit"`

	// Subtotal is PricePerUnit * Quantity
	Subtotal decimal.Decimal `json:"subtotal"`

	// PriceDecimals is the precision hint for rendering PricePerUnit
	PriceDecimals int32 `json:"price_decimals"`

	// Description summarizes the configuration behind the line
	Description string `json:"description"`
}

// DisplayQuantity returns the quantity as shown to the user
func (li LineItem) DisplayQuantity() string {
	if li.QuantityDisplay != "" {
		return li.QuantityDisplay
	}
	return li.Quantity.String()
}

// StorageType selects where instance storage lives
type StorageType string

const (
	// StorageLocal is local NVMe storage, included in the instance price
	StorageLocal StorageType = "Local"

	// StorageNetwork is central network storage, charged past the baseline
	StorageNetwork StorageType = "Network"
)

// String returns the display name
func (s StorageType) String() string {
	return string(s)
}
