// Package unionfind implements a disjoint-set (union-find) structure over
// the integer elements [0, n), with path compression on every Find and
// union by rank. The pattern is lifted from the inline parent/rank maps in
// lvlath's prim_kruskal.Kruskal and generalized into a reusable type keyed
// on dense integer indices instead of string vertex IDs.
//
// The generator (C5) does not call into this package: its spanning-tree
// pass grows a connected set directly (every candidate vertex is drawn
// from an explicit "not yet connected" list, so no edge it adds can ever
// close a cycle, and there is nothing for Union's disjointness check to
// decide). This type is kept as a standalone, independently tested
// building block for any future caller that does need cycle-safe
// connectivity bookkeeping — a Kruskal-style MST builder being the
// obvious one, matching where the pattern was lifted from.
package unionfind

// UnionFind is a disjoint-set structure over n elements numbered [0, n).
type UnionFind struct {
	parent []int
	rank   []int
}

// New constructs a UnionFind with n singleton sets.
//
// Complexity: O(n).
func New(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

// Find returns the representative of x's set, compressing the path from x
// to the root along the way.
//
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]] // path compression (grandparent jump)
		x = uf.parent[x]
	}
	return x
}

// Union merges the sets containing x and y. It returns true iff the sets
// were previously disjoint — a Kruskal-style spanning-tree builder uses
// this return value to decide whether the edge (x, y) belongs in the
// tree.
//
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Union(x, y int) bool {
	rootX, rootY := uf.Find(x), uf.Find(y)
	if rootX == rootY {
		return false
	}

	switch {
	case uf.rank[rootX] < uf.rank[rootY]:
		uf.parent[rootX] = rootY
	case uf.rank[rootX] > uf.rank[rootY]:
		uf.parent[rootY] = rootX
	default:
		uf.parent[rootY] = rootX
		uf.rank[rootX]++
	}

	return true
}

// Connected reports whether x and y currently belong to the same set.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}
