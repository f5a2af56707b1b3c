package generator

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/PradoMara/Proyecto1-PrograIII-sub000/graph"
)

const (
	minVertices   = 1
	maxVertices   = 1000
	minEdgeWeight = 1.0
	maxEdgeWeight = 10.0
)

// Config parameterizes a single generation run.
type Config struct {
	N           int
	P           float64
	Percentages Percentages
	Seed        int64
}

// Generate builds a connected graph.Graph of n vertices satisfying the
// requested role quotas, following the four-step algorithm of C5:
//
//  1. resolve integer quotas from percentages (ComputeQuotas);
//  2. build a shuffled multiset of role tags and emit vertices in that
//     order, assigning dense IDs [0, n);
//  3. spanning-tree pass: connect every vertex to the growing connected
//     set with a randomly weighted edge, guaranteeing I3;
//  4. densification pass: add each remaining unordered pair independently
//     with probability P.
//
// All randomness is drawn from a single *rand.Rand seeded with cfg.Seed,
// consumed in the fixed order: role shuffle -> spanning-tree choices (and
// their weights) -> densification Bernoulli trials (and their weights).
// This guarantees C5's determinism property: identical seed and config
// produce an identical graph.
//
// Returns ErrInvalidParameter if n is outside [1, 1000] or p outside
// [0, 1]; ErrInvalidQuotas if percentages are negative or all zero.
func Generate(cfg Config) (*graph.Graph, error) {
	if cfg.N < minVertices || cfg.N > maxVertices {
		return nil, ErrInvalidParameter
	}
	if cfg.P < 0 || cfg.P > 1 {
		return nil, ErrInvalidParameter
	}

	quotas, err := ComputeQuotas(cfg.N, cfg.Percentages)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	roles := buildRoleMultiset(quotas)
	rng.Shuffle(len(roles), func(i, j int) { roles[i], roles[j] = roles[j], roles[i] })

	g := graph.New()
	for id, r := range roles {
		if _, err := g.AddVertex(id, r, vertexName(r, id)); err != nil {
			return nil, err
		}
	}

	buildSpanningTree(g, cfg.N, rng)
	densify(g, cfg.N, cfg.P, rng)

	return g, nil
}

func vertexName(r graph.Role, id int) string {
	return r.String() + "-" + strconv.Itoa(id)
}

func buildRoleMultiset(q Quotas) []graph.Role {
	roles := make([]graph.Role, 0, q.Total())
	for i := 0; i < q.Storage; i++ {
		roles = append(roles, graph.RoleStorage)
	}
	for i := 0; i < q.Charging; i++ {
		roles = append(roles, graph.RoleCharging)
	}
	for i := 0; i < q.Client; i++ {
		roles = append(roles, graph.RoleClient)
	}
	return roles
}

func randomWeight(rng *rand.Rand) float64 {
	w := minEdgeWeight + rng.Float64()*(maxEdgeWeight-minEdgeWeight)
	return math.Round(w*100) / 100
}

// buildSpanningTree implements step 3: starting from the connected set
// {0}, repeatedly pick a random connected vertex v and a random
// unconnected vertex u, join them, and move u into the connected set.
// This terminates with exactly n-1 edges, guaranteeing I3.
func buildSpanningTree(g *graph.Graph, n int, rng *rand.Rand) {
	if n <= 1 {
		return
	}

	connected := []int{0}
	unconnected := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		unconnected = append(unconnected, i)
	}

	for len(unconnected) > 0 {
		v := connected[rng.Intn(len(connected))]
		uIdx := rng.Intn(len(unconnected))
		u := unconnected[uIdx]

		w := randomWeight(rng)
		_, _ = g.AddEdge(v, u, w, graph.TagSpanning)

		connected = append(connected, u)
		unconnected = append(unconnected[:uIdx], unconnected[uIdx+1:]...)
	}
}

// densify implements step 4: for every unordered pair with no existing
// edge, add an edge with probability p, tagged extra.
func densify(g *graph.Graph, n int, p float64, rng *rand.Rand) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if _, exists := g.EdgeBetween(i, j); exists {
				continue
			}
			if rng.Float64() < p {
				w := randomWeight(rng)
				_, _ = g.AddEdge(i, j, w, graph.TagExtra)
			}
		}
	}
}
