// Package pricing - Centralized pricing math
// All bandwidth cost logic flows through here; the quote engine declares
// intent and never does tier math itself.
package pricing

import (
	"sort"

	"github.com/shopspring/decimal"

	"cloud-quote/core/catalog"
)

// FreeBandwidthTB is the monthly bandwidth allowance that is never charged,
// regardless of tier configuration.
var FreeBandwidthTB = decimal.NewFromInt(1)

// ChargedVolume returns the portion of totalTB that is subject to tiered
// pricing: max(0, totalTB - 1).
func ChargedVolume(totalTB decimal.Decimal) decimal.Decimal {
	charged := totalTB.Sub(FreeBandwidthTB)
	if charged.IsNegative() {
		return decimal.Zero
	}
	return charged
}

// BandwidthCost computes the monthly cost for totalTB of outgoing traffic
// against a region's bandwidth tiers. Pure function of its inputs.
//
// Tiers with a threshold <= 0 are discarded; the rest are sorted ascending
// by threshold. Each threshold is the upper limit of its band: tier i
// charges the volume between the previous threshold and its own. Charged
// volume is consumed greedily from the lowest band upward at each band's
// rate. Volume left over once every band is full is not charged further,
// and if every tier is discarded the charged volume costs nothing.
func BandwidthCost(totalTB decimal.Decimal, tiers []catalog.BandwidthTier) decimal.Decimal {
	remaining := ChargedVolume(totalTB)
	if remaining.IsZero() {
		return decimal.Zero
	}

	sorted := chargeableTiers(tiers)

	cost := decimal.Zero
	previousLimit := decimal.Zero
	for _, tier := range sorted {
		capacity := tier.ThresholdTB.Sub(previousLimit)
		volume := decimal.Min(remaining, capacity)

		if volume.IsPositive() {
			cost = cost.Add(volume.Mul(tier.PricePerTB))
			remaining = remaining.Sub(volume)
		}
		previousLimit = tier.ThresholdTB

		if !remaining.IsPositive() {
			break
		}
	}

	return cost
}

// chargeableTiers filters out non-positive thresholds and sorts ascending
func chargeableTiers(tiers []catalog.BandwidthTier) []catalog.BandwidthTier {
	sorted := make([]catalog.BandwidthTier, 0, len(tiers))
	for _, t := range tiers {
		if t.ThresholdTB.IsPositive() {
			sorted = append(sorted, t)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ThresholdTB.LessThan(sorted[j].ThresholdTB)
	})
	return sorted
}
