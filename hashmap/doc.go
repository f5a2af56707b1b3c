// Package hashmap implements a separate-chaining hash table keyed on a
// generic comparable type, instantiated per key type with an explicit hash
// function rather than shared through a runtime-typed interface{} table.
//
// The table starts at capacity 8 and resizes eagerly: any Insert that drives
// the load factor above 0.70 grows the table to 2x capacity immediately
// afterward, and any Delete that leaves the load factor below 0.20 shrinks
// to 1/2 capacity immediately afterward, never dropping below the capacity
// floor of 8. Every resize rehashes all entries into the new bucket slice.
//
// Iteration order is unspecified and may differ across calls, matching the
// semantics of Go's built-in map.
package hashmap
