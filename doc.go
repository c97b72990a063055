// Package trackgo builds feature tracks from pairwise image correspondences.
//
// Given match lists between many image pairs, it consolidates them into
// globally consistent tracks (sets of observations, one per image, that all
// refer to the same physical point) using union-find over a correspondence
// graph, then filters out conflicting or weakly-supported tracks.
//
// # Quick Start
//
//	tb := trackgo.NewTracksBuilder()
//	if err := tb.Build(pairs); err != nil {
//	    log.Fatal(err)
//	}
//	tb.Filter(trackgo.DefaultRetainTrackLength)
//	tb.FilterByMinimumCrossSupport(2)
//	table, _ := tb.ToTrackTable()
//	for id, track := range table {
//	    fmt.Println(id, track)
//	}
//
// # Design
//
// Building and conflict handling are deliberately split into two passes:
// matches are unioned unconditionally, and classes where one image
// contributes several observations are dropped afterwards by Filter.
// Rejecting conflicting joins during union would forfeit the near-linear
// build cost without improving the result.
//
// The engine computes no geometry: keypoints are opaque indices, images are
// opaque handles, and the exported TrackTable is consumed by downstream
// stages such as bundle adjustment.
//
// # Key Features
//
//   - Near-linear fusion of pairwise correspondences (union-find with path
//     halving and union by rank)
//   - Deferred conflict detection and minimum-track-length filtering
//   - Cross-pair support filtering via roaring-bitmap set intersections
//   - Plain-text diagnostic reports and track-table utilities
//   - No global state: independent builders coexist safely
package trackgo
