package visitstats

import (
	"sort"
	"sync"

	"github.com/PradoMara/Proyecto1-PrograIII-sub000/graph"
)

// VertexVisit pairs a vertex identity with its accumulated visit count.
type VertexVisit struct {
	VertexID int
	Name     string
	Role     graph.Role
	Count    int
}

// Counter accumulates per-vertex visit counts against a fixed graph. Safe
// for concurrent use.
type Counter struct {
	mu     sync.RWMutex
	g      *graph.Graph
	counts map[int]int
}

// New constructs a Counter bound to g, used to resolve a vertex's name and
// role when reporting.
func New(g *graph.Graph) *Counter {
	return &Counter{g: g, counts: make(map[int]int)}
}

// Visit increments the counter for a single vertex.
func (c *Counter) Visit(vertexID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[vertexID]++
}

// VisitPath increments the counter for every vertex along path, in order.
// A path of length n produces n increments, including repeated visits to
// the same vertex within one path.
func (c *Counter) VisitPath(path []int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, v := range path {
		c.counts[v]++
	}
}

// Count returns the accumulated visit count for vertexID.
func (c *Counter) Count(vertexID int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counts[vertexID]
}

// Total returns the sum of every vertex's visit count.
func (c *Counter) Total() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Reset clears every accumulated count.
func (c *Counter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts = make(map[int]int)
}

// TopK returns the k visited vertices with the highest counts, descending,
// ties broken by vertex id ascending. Vertices never visited are excluded.
func (c *Counter) TopK(k int) []VertexVisit {
	return c.topFiltered(k, nil)
}

// TopKByRole is TopK restricted to vertices of the given role.
func (c *Counter) TopKByRole(role graph.Role, k int) []VertexVisit {
	return c.topFiltered(k, &role)
}

func (c *Counter) topFiltered(k int, role *graph.Role) []VertexVisit {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []VertexVisit
	for id, n := range c.counts {
		if n == 0 {
			continue
		}
		v, ok := c.g.Vertex(id)
		if !ok {
			continue
		}
		if role != nil && v.Role != *role {
			continue
		}
		out = append(out, VertexVisit{VertexID: id, Name: v.Name, Role: v.Role, Count: n})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].VertexID < out[j].VertexID
	})

	if k < len(out) {
		out = out[:k]
	}
	return out
}
