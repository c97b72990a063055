package core

// NodeID is a dense, internal identifier for an observation within a single
// build. It is strictly 32-bit; all hot-path structures (union-find parent
// and rank arrays, erased-class bitmaps) are indexed by it.
type NodeID uint32

// MaxNodeID is the maximum possible value for a NodeID.
const MaxNodeID = ^NodeID(0)

// TrackID is a dense identifier for a surviving track within one exported
// track table. Ids are assigned in enumeration order starting at zero and
// are not stable across rebuilds.
type TrackID uint32
