package ao

import (
	"fmt"
	"sort"
)

// SortRanges orders ranges by MinQL in place
func SortRanges(ranges []InterpolationRange) {
	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].MinQL < ranges[j].MinQL
	})
}

// ValidateRanges checks the family invariants: bounds at or above MinQL,
// MinQL <= MaxQL, a base AOID on every band and no overlap between bands.
// The slice is not modified.
func ValidateRanges(ranges []InterpolationRange) error {
	sorted := make([]InterpolationRange, len(ranges))
	copy(sorted, ranges)
	SortRanges(sorted)

	for i, r := range sorted {
		if r.MinQL < MinQL {
			return fmt.Errorf("range %d-%d: min_ql must be at least %d", r.MinQL, r.MaxQL, MinQL)
		}
		if r.MaxQL < r.MinQL {
			return fmt.Errorf("range %d-%d: max_ql is below min_ql", r.MinQL, r.MaxQL)
		}
		if r.BaseAOID <= 0 {
			return fmt.Errorf("range %d-%d: base_aoid is required", r.MinQL, r.MaxQL)
		}
		if i > 0 && r.MinQL <= sorted[i-1].MaxQL {
			prev := sorted[i-1]
			return fmt.Errorf("range %d-%d overlaps %d-%d", r.MinQL, r.MaxQL, prev.MinQL, prev.MaxQL)
		}
	}
	return nil
}
