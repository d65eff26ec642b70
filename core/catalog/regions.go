package catalog

// Region identifies one supported pricing region
type Region struct {
	// Key is the short region code used on the CLI (e.g. "US")
	Key string

	// Filename is the pricing dataset file served for this region
	Filename string

	// DisplayName is the human-readable region name
	DisplayName string
}

// regions is the fixed set of supported regions, in display order.
var regions = []Region{
	{Key: "US", Filename: "us.json", DisplayName: "USA"},
	{Key: "UK", Filename: "uk.json", DisplayName: "United Kingdom"},
	{Key: "SG", Filename: "sg.json", DisplayName: "Singapore"},
	{Key: "EU", Filename: "eu.json", DisplayName: "EU (Netherlands & Germany)"},
	{Key: "JP", Filename: "jp.json", DisplayName: "Japan"},
	{Key: "CA", Filename: "ca.json", DisplayName: "Canada"},
	{Key: "AU", Filename: "au.json", DisplayName: "Australia"},
}

// Regions returns the supported regions in display order
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

// RegionByKey resolves a region code to its region entry
func RegionByKey(key string) (Region, bool) {
	for _, r := range regions {
		if r.Key == key {
			return r, true
		}
	}
	return Region{}, false
}
