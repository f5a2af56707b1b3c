package routeindex

import (
	"fmt"
	"time"

	"github.com/PradoMara/Proyecto1-PrograIII-sub000/routetree"
)

// Index wraps a routetree.Tree with route-id synthesis and registration
// convenience.
type Index struct {
	tree *routetree.Tree
}

// New constructs an empty Index.
func New() *Index {
	return &Index{tree: routetree.New()}
}

// Register records a traversal of path (origin..destination) with total
// distance dist and traversal time elapsed. If an identical path was
// already registered for this (origin, destination) pair, its frequency
// is incremented and its moving-average traversal time updated; otherwise
// a new RouteRecord is created with a freshly synthesized id.
//
// Complexity: O(n) for the existing-path scan plus O(log n) for the
// underlying tree mutation.
func (idx *Index) Register(path []int, dist float64, elapsed float64) routetree.RouteRecord {
	origin, destination := path[0], path[len(path)-1]

	for _, rec := range idx.tree.FilterByOriginDestination(origin, destination) {
		if samePath(rec.Path, path) {
			// Frequency: 1 relies on Tree.Insert's collision semantics
			// (sums with the prior record's frequency) to turn this into
			// a +1 increment rather than a reset.
			idx.tree.Insert(routetree.RouteRecord{
				ID: rec.ID, Origin: rec.Origin, Destination: rec.Destination,
				Path: rec.Path, TotalDistance: rec.TotalDistance,
				Frequency: 1, LastUsed: time.Now(),
				AvgTime:  movingAverage(rec.AvgTime, rec.Frequency, elapsed),
				Metadata: rec.Metadata,
			})
			updated, _ := idx.tree.Lookup(rec.ID)
			return updated
		}
	}

	id := NewRouteID(origin, destination, idx.nextIndex(origin, destination))
	rec := routetree.RouteRecord{
		ID: id, Origin: origin, Destination: destination,
		Path: append([]int{}, path...), TotalDistance: dist,
		Frequency: 1, LastUsed: time.Now(), AvgTime: elapsed,
	}
	idx.tree.Insert(rec)
	result, _ := idx.tree.Lookup(id)
	return result
}

// IncrementFrequency increments the frequency of an existing route by id.
// Returns false (a no-op) if id is absent.
func (idx *Index) IncrementFrequency(id string, delta int) bool {
	return idx.tree.IncrementFrequency(id, delta)
}

// TopK returns the k most-used routes, descending.
func (idx *Index) TopK(k int) []routetree.RouteRecord {
	return idx.tree.TopK(k)
}

// ByEndpoints returns every registered route between origin and
// destination.
func (idx *Index) ByEndpoints(origin, destination int) []routetree.RouteRecord {
	return idx.tree.FilterByOriginDestination(origin, destination)
}

// Stats returns overall usage statistics.
func (idx *Index) Stats() routetree.Stats {
	return idx.tree.Stats()
}

// nextIndex finds the smallest suffix index not already used by a
// registered route between origin and destination.
func (idx *Index) nextIndex(origin, destination int) int {
	used := map[int]bool{}
	for _, rec := range idx.tree.FilterByOriginDestination(origin, destination) {
		used[indexSuffix(rec.ID, origin, destination)] = true
	}

	for i := 0; ; i++ {
		if !used[i] {
			return i
		}
	}
}

func indexSuffix(id string, origin, destination int) int {
	base := fmt.Sprintf("ruta_%d_%d", origin, destination)
	if id == base {
		return 0
	}
	var idx int
	if _, err := fmt.Sscanf(id, base+"_%d", &idx); err == nil {
		return idx
	}
	return 0
}

// NewRouteID synthesizes a route id per the specification's format:
// ruta_<origin>_<destination> for index 0, else with a _<index> suffix.
func NewRouteID(origin, destination, index int) string {
	if index == 0 {
		return fmt.Sprintf("ruta_%d_%d", origin, destination)
	}
	return fmt.Sprintf("ruta_%d_%d_%d", origin, destination, index)
}

func samePath(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func movingAverage(prevAvg float64, prevCount int, sample float64) float64 {
	if prevCount <= 0 {
		return sample
	}
	return (prevAvg*float64(prevCount) + sample) / float64(prevCount+1)
}
