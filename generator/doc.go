// Package generator implements C5, the connected random-graph generator:
// given a vertex count, an edge probability, role quotas (or percentages),
// and an optional seed, it builds a graph.Graph satisfying invariants
// I1-I4 plus the requested role quotas.
//
// Construction follows lvlath/builder's shape — a deterministic
// *rand.Rand threaded through every step, one Constructor-style function
// per algorithm phase — generalized from builder's single Erdos-Renyi
// RandomSparse pass (impl_random_sparse.go) into the spec's two-pass
// "spanning tree, then densification" construction, which guarantees
// connectivity before any extra edge is considered. Quota rounding and
// role assignment are grounded on
// antesdeldesatre/sim/generador_datos.py's node-selection helpers in the
// original source, generalized from client-node sampling to the
// three-way storage/charging/client split the specification requires.
package generator
