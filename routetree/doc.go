// Package routetree implements C3, the self-balancing ordered tree of
// route records keyed on route id. It is an AVL tree: height stays within
// 1.44*log2(n+2) of balanced by single and double rotations applied on the
// path from any inserted or deleted node back to the root.
//
// The rotation logic is a direct, idiomatic-Go transcription of
// antesdeldesatre/tda/avl_rutas.py's recursive insert/delete: the same four
// rotation cases (LL, RR, LR, RL), the same balance-factor bookkeeping, and
// the same "replace with in-order successor" deletion strategy for
// two-child nodes. Node ownership follows a plain owned-subtree shape
// (left/right *node pointers) rather than an arena, matching the source's
// small-n, mutation-rare profile.
package routetree
