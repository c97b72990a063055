package trackgo

import "time"

const (
	// DefaultMinTrackLength is the distinct-image count below which a
	// candidate track is not worth producing.
	DefaultMinTrackLength = 2

	// DefaultRetainTrackLength is the distinct-image count typically
	// required to retain a track after filtering.
	DefaultRetainTrackLength = 3
)

// Filter erases candidate tracks that are inherently invalid or too short.
//
// A class is erased when it observes the same image more than once (one
// physical point cannot map to two keypoints in one image), or when it
// spans fewer than minTrackLength distinct images. A minTrackLength of zero
// or one disables the length criterion.
//
// Erasure is permanent: the class's observations cease to belong to any
// track. Filter may be called repeatedly with different thresholds; each
// pass only shrinks the partition, and repeating a pass with the same
// threshold is a no-op.
func (tb *TracksBuilder) Filter(minTrackLength int) error {
	if !tb.built {
		return ErrNotBuilt
	}
	start := time.Now()

	roots, members := tb.classes()

	erased := 0
	for _, root := range roots {
		obs := members[root]
		images := make(map[Image]struct{}, len(obs))
		for _, id := range obs {
			images[tb.nodes[id].Image] = struct{}{}
		}
		if len(images) != len(obs) || len(images) < minTrackLength {
			tb.erased.Add(root)
			erased++
		}
	}

	tb.logger.Debug("component filter pass",
		"minTrackLength", minTrackLength,
		"erased", erased,
		"remaining", len(roots)-erased,
	)
	tb.metrics.RecordFilter(erased, time.Since(start))

	return nil
}
