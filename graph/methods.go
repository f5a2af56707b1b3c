package graph

import "sort"

// AddVertex inserts a vertex with the given id, role, and name. Returns
// ErrVertexExists if id is already in use.
//
// Complexity: O(1).
func (g *Graph) AddVertex(id int, role Role, name string) (*Vertex, error) {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil, ErrVertexExists
	}

	v := &Vertex{ID: id, Role: role, Name: name, Attrs: make(map[string]interface{})}
	g.vertices[id] = v

	g.muEdge.Lock()
	g.adjacency[id] = make(map[int]*Edge)
	g.muEdge.Unlock()

	return v, nil
}

// Vertex returns the vertex with the given id.
func (g *Graph) Vertex(id int) (*Vertex, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	return v, ok
}

// Vertices returns all vertices ordered by ascending ID for determinism.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// AddEdge inserts an undirected weighted edge between u and v. If an edge
// already exists between the pair, the existing edge is returned unchanged
// (I2: at most one edge per unordered pair). Returns ErrVertexNotFound if
// either endpoint is absent, ErrSelfLoop if u == v, or ErrNegativeWeight if
// weight < 0.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int, weight float64, tag EdgeTag) (*Edge, error) {
	if u == v {
		return nil, ErrSelfLoop
	}
	if weight < 0 {
		return nil, ErrNegativeWeight
	}

	g.muVert.RLock()
	_, uOK := g.vertices[u]
	_, vOK := g.vertices[v]
	g.muVert.RUnlock()
	if !uOK || !vOK {
		return nil, ErrVertexNotFound
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	key := canonicalKey(u, v)
	if existing, ok := g.edges[key]; ok {
		return existing, nil
	}

	e := &Edge{ID: g.nextEdgeID, U: u, V: v, Weight: weight, Tag: tag}
	g.nextEdgeID++
	g.edges[key] = e
	g.adjacency[u][v] = e
	g.adjacency[v][u] = e

	return e, nil
}

// EdgeBetween looks up the edge between u and v, if any.
//
// Complexity: O(1).
func (g *Graph) EdgeBetween(u, v int) (*Edge, bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	e, ok := g.edges[canonicalKey(u, v)]
	return e, ok
}

// Edges returns all edges ordered by ascending ID for determinism.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.edges)
}

// IncidentEdges returns the edges touching v, ordered by opposite vertex ID.
//
// Complexity: O(deg(v) log deg(v)).
func (g *Graph) IncidentEdges(v int) []*Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	neighbors := g.adjacency[v]
	out := make([]*Edge, 0, len(neighbors))
	for _, e := range neighbors {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Opposite(v) < out[j].Opposite(v) })

	return out
}

// Neighbors returns the vertex IDs adjacent to v, ascending.
func (g *Graph) Neighbors(v int) []int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	out := make([]int, 0, len(g.adjacency[v]))
	for n := range g.adjacency[v] {
		out = append(out, n)
	}
	sort.Ints(out)

	return out
}

// Degree returns the number of edges incident to v.
func (g *Graph) Degree(v int) int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.adjacency[v])
}

// VerticesByRole returns all vertices with the given role, ordered by ID.
func (g *Graph) VerticesByRole(role Role) []*Vertex {
	var out []*Vertex
	for _, v := range g.Vertices() {
		if v.Role == role {
			out = append(out, v)
		}
	}
	return out
}
