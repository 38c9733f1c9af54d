package order

import (
	"sort"

	"tracking/internal/core/domain/model/box"
)

// CombineStatuses derives the order status from the statuses of its boxes.
// The result is the sorted set of distinct box statuses: a one-element set
// when all boxes agree, the full spread when they do not, and empty for an
// order with no boxes. The derived status is never stored.
func CombineStatuses(statuses []box.Status) []string {
	seen := make(map[string]struct{}, len(statuses))
	combined := make([]string, 0, len(statuses))
	for _, s := range statuses {
		if _, ok := seen[s.String()]; ok {
			continue
		}
		seen[s.String()] = struct{}{}
		combined = append(combined, s.String())
	}

	sort.Strings(combined)
	return combined
}
