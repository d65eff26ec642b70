// Package quote - Quote engine
// Owns the ordered list of quote line items. Every operation validates its
// inputs before touching the list, so a rejected operation never leaves a
// partial line behind.
package quote

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cloud-quote/core/catalog"
	"cloud-quote/core/pricing"
	"cloud-quote/internal/errors"
)

// Engine holds one session's quote: an ordered, insertion-significant
// sequence of line items.
type Engine struct {
	items []LineItem
}

// NewEngine creates an empty quote engine
func NewEngine() *Engine {
	return &Engine{}
}

// ParseStorageType parses a storage type name, case-insensitively
func ParseStorageType(s string) (StorageType, error) {
	switch strings.ToLower(s) {
	case "local":
		return StorageLocal, nil
	case "network":
		return StorageNetwork, nil
	default:
		return "", errors.InvalidStorage(fmt.Sprintf("unknown storage type %q (want local or network)", s))
	}
}

// ParseBandwidth validates a raw bandwidth volume at the float boundary
// and converts it for the engine: it must be a finite number >= 0.
func ParseBandwidth(totalTB float64) (decimal.Decimal, error) {
	if math.IsNaN(totalTB) || math.IsInf(totalTB, 0) || totalTB < 0 {
		return decimal.Zero, errors.InvalidBandwidth(fmt.Sprintf("bandwidth must be a non-negative number of TB, got %v", totalTB))
	}
	return decimal.NewFromFloat(totalTB), nil
}

// AddInstance appends an instance line and, when the requested capacity
// exceeds the baseline allowance, a paired storage line. Returns the
// appended items in order.
//
// Chargeable storage is totalStorageGB - BaselineStorageGB for both Local
// and Network storage. That mirrors the source system, where the
// local-is-free branch was disabled; the two types price identically.
func (e *Engine) AddInstance(cat *catalog.Catalog, instanceKey string, quantity int, storageType StorageType, totalStorageGB int) ([]LineItem, error) {
	if quantity <= 0 {
		return nil, errors.InvalidQuantity(fmt.Sprintf("instance quantity must be a positive integer, got %d", quantity))
	}
	if totalStorageGB < BaselineStorageGB {
		return nil, errors.InvalidStorage(fmt.Sprintf("total storage must be at least %d GB, got %d", BaselineStorageGB, totalStorageGB))
	}

	spec, ok := cat.Instance(instanceKey)
	if !ok {
		return nil, errors.UnknownInstance(instanceKey)
	}

	chargeableGB := totalStorageGB - BaselineStorageGB

	// Resolve the storage rate before any mutation so a missing rate
	// rejects the whole operation.
	var rate catalog.StorageRate
	if chargeableGB > 0 {
		rate, ok = cat.StorageRate()
		if !ok {
			return nil, errors.MissingStoragePricing(cat.Entity())
		}
	}

	qty := decimal.NewFromInt(int64(quantity))

	instanceItem := LineItem{
		ID:            uuid.NewString(),
		Type:          ItemInstance,
		Quantity:      qty,
		PricePerUnit:  spec.PricePerMonth,
		Subtotal:      spec.PricePerMonth.Mul(qty),
		PriceDecimals: 2,
		Description: fmt.Sprintf("%s (%s) - %d vCPU / %s GiB RAM / %d GB %s Storage",
			spec.Type, spec.Series, spec.VCPU, spec.MemoryGiB.String(), totalStorageGB, storageType),
	}

	added := []LineItem{instanceItem}
	e.items = append(e.items, instanceItem)

	if chargeableGB > 0 {
		chargeable := decimal.NewFromInt(int64(chargeableGB))
		storageQty := chargeable.Mul(qty)

		storageItem := LineItem{
			ID:              uuid.NewString(),
			Type:            ItemStorage,
			Quantity:        storageQty,
			QuantityDisplay: fmt.Sprintf("%d GB/instance x %d", chargeableGB, quantity),
			PricePerUnit:    rate.PricePerGBMonth,
			Subtotal:        rate.PricePerGBMonth.Mul(storageQty),
			PriceDecimals:   4,
			Description:     fmt.Sprintf("Network Storage (Charged: %d GB/instance)", chargeableGB),
		}

		added = append(added, storageItem)
		e.items = append(e.items, storageItem)
	}

	return added, nil
}

// SetBandwidth replaces the quote's bandwidth line with one for totalTB.
// The previous line is removed unconditionally; a new line is inserted only
// when totalTB is positive, so setting zero simply leaves the quote without
// a bandwidth line. Returns the inserted item, or nil when none was.
func (e *Engine) SetBandwidth(cat *catalog.Catalog, totalTB decimal.Decimal) (*LineItem, error) {
	if totalTB.IsNegative() {
		return nil, errors.InvalidBandwidth(fmt.Sprintf("bandwidth must be a non-negative number of TB, got %s", totalTB))
	}

	e.removeBandwidthItem()

	if !totalTB.IsPositive() {
		return nil, nil
	}

	cost := pricing.BandwidthCost(totalTB, cat.BandwidthTiers())

	item := LineItem{
		ID:              BandwidthItemID,
		Type:            ItemBandwidth,
		Quantity:        totalTB,
		QuantityDisplay: fmt.Sprintf("%s TB", totalTB.StringFixed(2)),
		PricePerUnit:    cost,
		Subtotal:        cost,
		PriceDecimals:   2,
		Description: fmt.Sprintf("Total Outgoing Traffic (Charged Volume: %s TB)",
			pricing.ChargedVolume(totalTB).StringFixed(2)),
	}

	e.items = append(e.items, item)
	return &item, nil
}

func (e *Engine) removeBandwidthItem() {
	kept := e.items[:0]
	for _, item := range e.items {
		if item.ID != BandwidthItemID {
			kept = append(kept, item)
		}
	}
	e.items = kept
}

// RemoveItem removes the line at index, whatever its type
func (e *Engine) RemoveItem(index int) error {
	if index < 0 || index >= len(e.items) {
		return errors.IndexOutOfRange(index, len(e.items))
	}
	e.items = append(e.items[:index], e.items[index+1:]...)
	return nil
}

// Items returns a copy of the current lines in insertion order
func (e *Engine) Items() []LineItem {
	out := make([]LineItem, len(e.items))
	copy(out, e.items)
	return out
}

// Len returns the number of lines
func (e *Engine) Len() int {
	return len(e.items)
}

// Total sums every line's subtotal; zero for an empty quote
func (e *Engine) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range e.items {
		total = total.Add(item.Subtotal)
	}
	return total
}

// Reset clears all lines
func (e *Engine) Reset() {
	e.items = nil
}
