package routetree

import "time"

// RouteRecord is the payload stored at each tree node: an immutable route
// identity (ID, Origin, Destination, Path, TotalDistance) plus mutable
// usage analytics (Frequency, LastUsed, AvgTime) and an open metadata bag.
type RouteRecord struct {
	ID            string
	Origin        int
	Destination   int
	Path          []int
	TotalDistance float64
	Frequency     int
	LastUsed      time.Time
	AvgTime       float64
	Metadata      map[string]interface{}
}

type node struct {
	key    string
	record RouteRecord
	left   *node
	right  *node
	height int
}

// Tree is an AVL tree of RouteRecords keyed on RouteRecord.ID,
// lexicographically.
type Tree struct {
	root       *node
	totalRoutes int
	totalUses   int
}

// New constructs an empty Tree.
func New() *Tree {
	return &Tree{}
}
