package pathengine

// PathResult is the outcome of a Mode A plain search.
type PathResult struct {
	Path     []int
	Distance float64
}

// item is a single entry in the Mode A priority queue: a candidate
// distance to a vertex, tagged with a monotonic sequence number so FIFO
// insertion order breaks ties deterministically.
type item struct {
	vertex int
	dist   float64
	seq    int
	index  int
}

// itemPQ is a binary min-heap over item, ordered by (dist, seq).
type itemPQ []*item

func (pq itemPQ) Len() int { return len(pq) }

func (pq itemPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq itemPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *itemPQ) Push(x interface{}) {
	it := x.(*item)
	it.index = len(*pq)
	*pq = append(*pq, it)
}

func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return it
}
