package trackgo

import (
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/trackgo/core"
	"github.com/hupe1980/trackgo/internal/unionfind"
)

// TracksBuilder fuses pairwise feature correspondences into globally
// consistent candidate tracks using union-find over a correspondence graph.
//
// Usage follows a strict build/filter/export lifecycle:
//
//	tb := trackgo.NewTracksBuilder()
//	tb.Build(pairs)                      // fuse correspondences
//	tb.Filter(trackgo.DefaultRetainTrackLength) // drop conflicts and short tracks
//	table, _ := tb.ToTrackTable()
//
// A TracksBuilder is not safe for concurrent use; callers must serialize
// build, filter, and export calls. Multiple independent builders may
// coexist freely.
type TracksBuilder struct {
	logger  *Logger
	metrics MetricsCollector

	nodes      []Observation               // dense node id -> observation
	ids        map[Observation]core.NodeID // observation -> dense node id
	partition  *unionfind.Partition
	erased     *roaring.Bitmap // canonical roots of erased classes
	pairCount  int
	matchCount int
	built      bool
}

// NewTracksBuilder creates an empty builder. Call Build before any filter
// or export operation.
func NewTracksBuilder(optFns ...Option) *TracksBuilder {
	opts := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &TracksBuilder{
		logger:  opts.logger,
		metrics: opts.metrics,
	}
}

// Build constructs the correspondence graph from the given image pairs.
//
// A first pass assigns every distinct observation a dense node id in
// first-appearance order; a second pass unions the two observations of
// every match. Matches are unioned unconditionally; conflict detection is
// deferred to Filter, which keeps the build near-linear in observations
// plus matches.
//
// Build discards any previous partition and rebuilds from scratch. Empty
// input is valid and yields zero tracks. A nil image reference in any pair
// aborts the build with *ErrNilImage.
func (tb *TracksBuilder) Build(pairs []ImagePair) error {
	start := time.Now()

	tb.nodes = nil
	tb.ids = make(map[Observation]core.NodeID)
	tb.partition = nil
	tb.erased = nil
	tb.pairCount = len(pairs)
	tb.matchCount = 0
	tb.built = false

	for i, pair := range pairs {
		if pair.A == nil || pair.B == nil {
			err := &ErrNilImage{PairIndex: i}
			tb.metrics.RecordBuild(0, 0, time.Since(start), err)
			return err
		}
		for _, m := range pair.Matches {
			tb.intern(Observation{Image: pair.A, Keypoint: m.KeypointA})
			tb.intern(Observation{Image: pair.B, Keypoint: m.KeypointB})
			tb.matchCount++
		}
	}

	tb.partition = unionfind.New(len(tb.nodes))
	for _, pair := range pairs {
		for _, m := range pair.Matches {
			u := tb.ids[Observation{Image: pair.A, Keypoint: m.KeypointA}]
			v := tb.ids[Observation{Image: pair.B, Keypoint: m.KeypointB}]
			tb.partition.Union(uint32(u), uint32(v))
		}
	}

	tb.erased = roaring.New()
	tb.built = true

	tb.logger.Debug("correspondence graph built",
		"pairs", tb.pairCount,
		"observations", len(tb.nodes),
		"matches", tb.matchCount,
		"classes", tb.CountTracks(),
	)
	tb.metrics.RecordBuild(len(tb.nodes), tb.matchCount, time.Since(start), nil)

	return nil
}

// intern returns the dense node id for obs, assigning the next id on first
// sight.
func (tb *TracksBuilder) intern(obs Observation) core.NodeID {
	if id, ok := tb.ids[obs]; ok {
		return id
	}
	id := core.NodeID(len(tb.nodes))
	tb.ids[obs] = id
	tb.nodes = append(tb.nodes, obs)
	return id
}

// classes enumerates the live equivalence classes: canonical roots in
// first-member order, plus each root's member node ids in ascending order.
// Roots are stable for the rest of the lifecycle because filters never
// union.
func (tb *TracksBuilder) classes() ([]uint32, map[uint32][]core.NodeID) {
	var roots []uint32
	members := make(map[uint32][]core.NodeID)

	for i := range tb.nodes {
		root := tb.partition.Find(uint32(i))
		if tb.erased.Contains(root) {
			continue
		}
		if _, ok := members[root]; !ok {
			roots = append(roots, root)
		}
		members[root] = append(members[root], core.NodeID(i))
	}
	return roots, members
}
