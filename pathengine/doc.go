// Package pathengine implements C6, the shortest-path engine: plain
// single-source search (Mode A), battery-aware search over a
// (vertex, battery) state space (Mode B), and a multi-strategy
// battery-aware breadth-first search with preemptive refuel (Mode C).
//
// All three modes share the priority/FIFO-queue skeleton and the
// lazy-decrease-key discipline of lvlath/dijkstra's runner: push
// candidate states eagerly, skip stale entries on pop, finalize a state
// only once. Mode B and C generalize that skeleton to a state space keyed
// on (vertex, battery-bucket) rather than vertex alone, following the
// non-monotone-resource handling in antesdeldesatre's battery pathfinder
// in the original source.
package pathengine
