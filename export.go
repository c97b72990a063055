package trackgo

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/trackgo/core"
)

// ToTrackTable exports the surviving classes as a track table: dense track
// ids in enumeration order, each mapping image to keypoint index.
//
// Injectivity of the image mapping is guaranteed only after Filter has run;
// exporting an unfiltered partition keeps one arbitrary keypoint per image
// for conflicting classes.
func (tb *TracksBuilder) ToTrackTable() (TrackTable, error) {
	if !tb.built {
		return nil, ErrNotBuilt
	}
	start := time.Now()

	roots, members := tb.classes()

	table := make(TrackTable, len(roots))
	for i, root := range roots {
		track := make(Track, len(members[root]))
		for _, id := range members[root] {
			obs := tb.nodes[id]
			track[obs.Image] = obs.Keypoint
		}
		table[core.TrackID(i)] = track
	}

	tb.metrics.RecordExport(len(roots), time.Since(start))

	return table, nil
}

// WriteReport writes a plain-text diagnostic listing of the surviving
// classes to w: per class its ordinal, its observation count, then one
// line per observation with the image's display name and keypoint index.
// The output is not meant to round-trip.
func (tb *TracksBuilder) WriteReport(w io.Writer) error {
	if !tb.built {
		return ErrNotBuilt
	}

	bw := bufio.NewWriter(w)
	roots, members := tb.classes()

	for i, root := range roots {
		fmt.Fprintf(bw, "Class: %d\n", i)
		fmt.Fprintf(bw, "\ttrack length: %d\n", len(members[root]))
		for _, id := range members[root] {
			obs := tb.nodes[id]
			fmt.Fprintf(bw, "%s  %d\n", obs.Image.Name(), obs.Keypoint)
		}
	}

	return bw.Flush()
}

// CountTracks returns the number of surviving classes. It is zero before
// Build.
func (tb *TracksBuilder) CountTracks() int {
	if !tb.built {
		return 0
	}

	live := roaring.New()
	for i := range tb.nodes {
		root := tb.partition.Find(uint32(i))
		if !tb.erased.Contains(root) {
			live.Add(root)
		}
	}
	return int(live.GetCardinality())
}

// BuilderStats reports the shape of the current partition.
type BuilderStats struct {
	ImagePairs    int
	Matches       int
	Observations  int
	LiveClasses   int
	ErasedClasses int
}

// Stats returns counters describing the current build and filter state.
func (tb *TracksBuilder) Stats() BuilderStats {
	if !tb.built {
		return BuilderStats{}
	}
	return BuilderStats{
		ImagePairs:    tb.pairCount,
		Matches:       tb.matchCount,
		Observations:  len(tb.nodes),
		LiveClasses:   tb.CountTracks(),
		ErasedClasses: int(tb.erased.GetCardinality()),
	}
}
