package trackgo

import (
	"slices"
	"sort"

	"github.com/hupe1980/trackgo/core"
)

// Image identifies a source image. Implementations are supplied by the
// caller; the engine only compares, hashes, and reads the display name.
//
// Image values are used as map keys and must therefore be comparable,
// in practice a pointer to the caller's image type. The caller owns the
// value and must keep it alive and unmodified for the lifetime of every
// TracksBuilder and TrackTable that references it.
type Image interface {
	// Name returns a stable display name used in diagnostic output.
	Name() string
}

// Observation is a single keypoint detection in one image: the atomic unit
// being clustered into tracks.
type Observation struct {
	Image    Image
	Keypoint int
}

// Match asserts that a keypoint in each image of a pair depicts the same
// physical point. KeypointA belongs to the pair's first image, KeypointB
// to its second.
type Match struct {
	KeypointA int
	KeypointB int
}

// ImagePair carries the pairwise matches between two images, as produced
// by an upstream descriptor matcher.
type ImagePair struct {
	A       Image
	B       Image
	Matches []Match
}

// Track maps each participating image to the single keypoint index that
// observes the track's physical point in that image. After Filter the
// mapping is guaranteed injective (one keypoint per image).
type Track map[Image]int

// TrackTable is the finalized mapping from dense track id to Track.
// Ids reflect enumeration order of one export and are not stable across
// rebuilds.
type TrackTable map[core.TrackID]Track

// TrackIDs returns the table's track ids sorted ascending.
func (t TrackTable) TrackIDs() []core.TrackID {
	ids := make([]core.TrackID, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// TracksInImages returns the tracks observed in every one of the given
// images, restricted to those images. Tracks missing any of the images are
// dropped entirely.
func (t TrackTable) TracksInImages(images ...Image) TrackTable {
	out := make(TrackTable)
	if len(images) == 0 {
		return out
	}

	for id, track := range t {
		sub := make(Track, len(images))
		for _, img := range images {
			kp, ok := track[img]
			if !ok {
				break
			}
			sub[img] = kp
		}
		if len(sub) == len(images) {
			out[id] = sub
		}
	}
	return out
}

// KeypointsInImage returns, for each of the given track ids that observes
// img, the keypoint index of img's observation, ordered by ascending
// track id. Tracks that do not observe img contribute nothing.
func (t TrackTable) KeypointsInImage(img Image, ids []core.TrackID) []int {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)

	var kps []int
	for _, id := range sorted {
		track, ok := t[id]
		if !ok {
			continue
		}
		if kp, ok := track[img]; ok {
			kps = append(kps, kp)
		}
	}
	return kps
}

// LengthHistogram returns the occurrence count of each track length.
func (t TrackTable) LengthHistogram() map[int]int {
	hist := make(map[int]int)
	for _, track := range t {
		hist[len(track)]++
	}
	return hist
}

// Images returns the distinct images referenced by any track, ordered by
// first appearance over ascending track ids and then by display name
// within a track.
func (t TrackTable) Images() []Image {
	seen := make(map[Image]struct{})
	var images []Image

	for _, id := range t.TrackIDs() {
		track := t[id]
		members := make([]Image, 0, len(track))
		for img := range track {
			if _, ok := seen[img]; ok {
				continue
			}
			seen[img] = struct{}{}
			members = append(members, img)
		}
		sort.Slice(members, func(i, j int) bool {
			return members[i].Name() < members[j].Name()
		})
		images = append(images, members...)
	}
	return images
}
