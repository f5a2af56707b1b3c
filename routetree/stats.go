package routetree

import "sort"

// Stats is the bulk-statistics summary over every stored route.
type Stats struct {
	TotalRoutes  int
	TotalUses    int
	AverageUsage float64
	MostUsed     *RouteRecord
	LeastUsed    *RouteRecord
	NeverUsed    int
	Height       int
}

// Stats computes the bulk statistics described in C3/C9: total routes,
// total uses, most/least used record, count of never-used records, and
// tree height.
//
// Complexity: O(n log n) (dominated by the sort used to find the
// most/least-used records).
func (t *Tree) Stats() Stats {
	if t.totalRoutes == 0 {
		return Stats{}
	}

	records := t.InOrder()
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Frequency > records[j].Frequency
	})

	neverUsed := 0
	for _, r := range records {
		if r.Frequency == 0 {
			neverUsed++
		}
	}

	most := records[0]
	least := records[len(records)-1]

	return Stats{
		TotalRoutes:  t.totalRoutes,
		TotalUses:    t.totalUses,
		AverageUsage: float64(t.totalUses) / float64(t.totalRoutes),
		MostUsed:     &most,
		LeastUsed:    &least,
		NeverUsed:    neverUsed,
		Height:       t.Height(),
	}
}

// TopK returns the k records with highest frequency, descending, ties
// broken by route id ascending for determinism.
//
// Complexity: O(n log n).
func (t *Tree) TopK(k int) []RouteRecord {
	records := t.InOrder()
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Frequency != records[j].Frequency {
			return records[i].Frequency > records[j].Frequency
		}
		return records[i].ID < records[j].ID
	})

	if k > len(records) {
		k = len(records)
	}
	return records[:k]
}
