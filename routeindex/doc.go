// Package routeindex implements C9, the route frequency index: a thin
// convenience layer over routetree that generates route ids, registers
// observed paths, and exposes the usual top-k / by-endpoint / overall
// statistics queries. The underlying tree remains balanced after every
// mutation since routetree guarantees that on its own.
package routeindex
