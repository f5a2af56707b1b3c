// Package graph implements the undirected, weighted, roled graph model
// that the routing core builds on: C4 of the routing specification.
//
// It follows the locking and construction shape of lvlath/core — a
// Graph holds its vertex and edge catalogs behind separate sync.RWMutex
// domains (muVert guards vertices, muEdge guards edges and adjacency) so
// that read-heavy routing workloads can share a single constructed graph
// across goroutines without contention, while construction itself (the
// generator, C5) is expected to run single-threaded to completion before
// the graph is handed to readers.
//
// Vertices carry a Role (storage, charging, or client); edges carry a Tag
// (spanning or extra) recording their provenance from the generator's
// two-pass construction (C5). Vertex IDs are dense integers assigned by
// whatever constructs the graph — the generator assigns them in
// [0, n) order, matching invariant I1-I4 of the specification.
package graph
