// Package visitstats implements C10, per-vertex visit counting: every time
// a computed path traverses a vertex, its counter is incremented, and the
// accumulated counts can be queried overall or filtered by role. Grounded
// on models/node.py's visit_count/increment_visit pair and the
// top-N-per-role reporting in utils/simulation.py.
package visitstats
