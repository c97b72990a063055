package trackgo_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/trackgo"
)

func TestFilterConflict(t *testing.T) {
	imgs := newImages(3)
	i1, i2, i3 := imgs[0], imgs[1], imgs[2]

	// One component holding two observations of i3: an inherently invalid
	// track, whatever the length threshold.
	tb := trackgo.NewTracksBuilder()
	require.NoError(t, tb.Build([]trackgo.ImagePair{
		pair(i1, i2, trackgo.Match{KeypointA: 10, KeypointB: 5}),
		pair(i2, i3, trackgo.Match{KeypointA: 5, KeypointB: 7}),
		pair(i1, i3, trackgo.Match{KeypointA: 10, KeypointB: 99}),
	}))
	require.Equal(t, 1, tb.CountTracks())

	require.NoError(t, tb.Filter(2))
	assert.Equal(t, 0, tb.CountTracks())
}

func TestFilterMinTrackLength(t *testing.T) {
	imgs := newImages(4)

	tb := trackgo.NewTracksBuilder()
	require.NoError(t, tb.Build([]trackgo.ImagePair{
		pair(imgs[0], imgs[1], trackgo.Match{KeypointA: 1, KeypointB: 1}),
		pair(imgs[2], imgs[3], trackgo.Match{KeypointA: 1, KeypointB: 1}),
	}))
	require.Equal(t, 2, tb.CountTracks())

	require.NoError(t, tb.Filter(2))
	assert.Equal(t, 2, tb.CountTracks())

	require.NoError(t, tb.Filter(3))
	assert.Equal(t, 0, tb.CountTracks())
}

func TestFilterThresholdDisabled(t *testing.T) {
	imgs := newImages(2)
	i1, i2 := imgs[0], imgs[1]

	tb := trackgo.NewTracksBuilder()
	require.NoError(t, tb.Build([]trackgo.ImagePair{
		pair(i1, i2, trackgo.Match{KeypointA: 1, KeypointB: 1}),
		// Second keypoint of i1 claimed against the same i2 keypoint:
		// a conflicting component.
		pair(i1, i2,
			trackgo.Match{KeypointA: 5, KeypointB: 6},
			trackgo.Match{KeypointA: 7, KeypointB: 6},
		),
	}))
	require.Equal(t, 2, tb.CountTracks())

	// Thresholds of zero and one disable the length criterion but still
	// remove conflicts.
	require.NoError(t, tb.Filter(0))
	assert.Equal(t, 1, tb.CountTracks())

	require.NoError(t, tb.Filter(1))
	assert.Equal(t, 1, tb.CountTracks())
}

func TestFilterIdempotent(t *testing.T) {
	imgs := newImages(4)

	build := func() *trackgo.TracksBuilder {
		tb := trackgo.NewTracksBuilder()
		require.NoError(t, tb.Build([]trackgo.ImagePair{
			pair(imgs[0], imgs[1], trackgo.Match{KeypointA: 1, KeypointB: 1}),
			pair(imgs[1], imgs[2], trackgo.Match{KeypointA: 1, KeypointB: 1}),
			pair(imgs[2], imgs[3], trackgo.Match{KeypointA: 9, KeypointB: 9}),
		}))
		return tb
	}

	once := build()
	require.NoError(t, once.Filter(3))

	twice := build()
	require.NoError(t, twice.Filter(3))
	require.NoError(t, twice.Filter(3))

	t1, err := once.ToTrackTable()
	require.NoError(t, err)
	t2, err := twice.ToTrackTable()
	require.NoError(t, err)

	assert.Equal(t, t1, t2)
}

func TestFilterMonotonicShrinkage(t *testing.T) {
	imgs := newImages(6)

	tb := trackgo.NewTracksBuilder()
	require.NoError(t, tb.Build([]trackgo.ImagePair{
		pair(imgs[0], imgs[1], trackgo.Match{KeypointA: 1, KeypointB: 1}),
		pair(imgs[1], imgs[2], trackgo.Match{KeypointA: 1, KeypointB: 1}),
		pair(imgs[3], imgs[4], trackgo.Match{KeypointA: 2, KeypointB: 2}),
		pair(imgs[4], imgs[5], trackgo.Match{KeypointA: 2, KeypointB: 2}),
		pair(imgs[0], imgs[5], trackgo.Match{KeypointA: 8, KeypointB: 8}),
	}))

	prev := tb.CountTracks()
	for _, n := range []int{1, 2, 3, 4} {
		require.NoError(t, tb.Filter(n))
		count := tb.CountTracks()
		assert.LessOrEqual(t, count, prev, "filter(%d) grew the partition", n)
		prev = count
	}
}

func TestFilterInvariants(t *testing.T) {
	imgs := newImages(5)

	tb := trackgo.NewTracksBuilder()
	require.NoError(t, tb.Build([]trackgo.ImagePair{
		pair(imgs[0], imgs[1],
			trackgo.Match{KeypointA: 1, KeypointB: 1},
			trackgo.Match{KeypointA: 2, KeypointB: 2},
		),
		pair(imgs[1], imgs[2], trackgo.Match{KeypointA: 1, KeypointB: 1}),
		pair(imgs[2], imgs[3], trackgo.Match{KeypointA: 1, KeypointB: 4}),
		// Conflict: imgs[0] twice in the second component.
		pair(imgs[0], imgs[1], trackgo.Match{KeypointA: 3, KeypointB: 2}),
		pair(imgs[3], imgs[4], trackgo.Match{KeypointA: 9, KeypointB: 9}),
	}))

	const minLen = 2
	require.NoError(t, tb.Filter(minLen))

	table, err := tb.ToTrackTable()
	require.NoError(t, err)

	for id, track := range table {
		// Minimum-length invariant.
		assert.GreaterOrEqual(t, len(track), minLen, "track %d too short", id)
	}

	// No-conflict invariant: per class, the reported observation count must
	// equal the exported track size. A class observing one image twice
	// would collapse in the exported map and show up as a mismatch here.
	var buf bytes.Buffer
	require.NoError(t, tb.WriteReport(&buf))

	lengths := reportedLengths(t, buf.String())
	require.Len(t, lengths, len(table))
	for i, id := range table.TrackIDs() {
		assert.Equal(t, len(table[id]), lengths[i], "class %d has duplicate-image observations", id)
	}
}

// reportedLengths extracts the "track length" value of each class from a
// diagnostic report, in class order.
func reportedLengths(t *testing.T, report string) []int {
	t.Helper()

	var lengths []int
	for _, line := range strings.Split(report, "\n") {
		var n int
		if _, err := fmt.Sscanf(line, "\ttrack length: %d", &n); err == nil {
			lengths = append(lengths, n)
		}
	}
	return lengths
}
