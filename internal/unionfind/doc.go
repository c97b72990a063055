// Package unionfind provides an array-based disjoint-set structure over
// dense uint32 ids.
//
// Architecture:
//   - parent/rank arrays indexed by node id (no per-node allocation)
//   - iterative Find with path halving
//   - union by rank
//
// Amortized cost per operation is near-constant (inverse Ackermann), so a
// full correspondence-graph build is effectively linear in nodes + matches.
//
// Used internally for:
//   - merging feature observations into candidate tracks
package unionfind
