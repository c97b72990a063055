package trackgo

import (
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

// FilterByMinimumCrossSupport erases tracks shared by weakly connected
// image pairs.
//
// For every image the set of live class ids it participates in is computed;
// for every unordered pair of distinct images the two sets are intersected,
// and if the intersection holds fewer than minSupport tracks, all of them
// are scheduled for erasure. A track connecting two images that otherwise
// share very few tracks is statistically more likely to be a spurious
// correspondence than a genuine wide-baseline match.
//
// The pass is computed against the partition state at entry and erases once
// at the end; it does not cascade removals to a fixpoint. It is monotonic,
// so callers wanting a fixpoint can simply repeat it. A minSupport of zero
// or one disables the filter (only empty intersections would qualify).
//
// Run this after Filter: the per-image sets assume conflict-free classes.
func (tb *TracksBuilder) FilterByMinimumCrossSupport(minSupport int) error {
	if !tb.built {
		return ErrNotBuilt
	}
	if minSupport <= 1 {
		return nil
	}
	start := time.Now()

	// Live class ids per image, in first-appearance order.
	perImage := make(map[Image]*roaring.Bitmap)
	var order []Image
	for i := range tb.nodes {
		root := tb.partition.Find(uint32(i))
		if tb.erased.Contains(root) {
			continue
		}
		img := tb.nodes[i].Image
		bm, ok := perImage[img]
		if !ok {
			bm = roaring.New()
			perImage[img] = bm
			order = append(order, img)
		}
		bm.Add(root)
	}

	// Each unordered pair of distinct images exactly once. A self
	// intersection is the image's whole track set and would erase every
	// track of a sparsely tracked image, so the diagonal is skipped.
	remove := roaring.New()
	for i := range order {
		a := perImage[order[i]]
		for j := i + 1; j < len(order); j++ {
			shared := roaring.And(a, perImage[order[j]])
			if shared.GetCardinality() < uint64(minSupport) {
				remove.Or(shared)
			}
		}
	}

	erased := int(remove.GetCardinality())
	tb.erased.Or(remove)

	tb.logger.Debug("cross-support filter pass",
		"minSupport", minSupport,
		"images", len(order),
		"erased", erased,
	)
	tb.metrics.RecordCrossSupportFilter(erased, time.Since(start))

	return nil
}
