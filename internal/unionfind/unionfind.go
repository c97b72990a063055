package unionfind

// Partition is a disjoint-set forest over the dense id range [0, Len).
// Every id starts in its own singleton set; Union merges sets and Find
// returns a canonical representative. The zero value is an empty partition.
type Partition struct {
	parent []uint32
	rank   []uint8
}

// New creates a partition of n singleton sets with ids 0..n-1.
func New(n int) *Partition {
	p := &Partition{
		parent: make([]uint32, n),
		rank:   make([]uint8, n),
	}
	for i := range p.parent {
		p.parent[i] = uint32(i)
	}
	return p
}

// Len returns the number of ids in the partition.
func (p *Partition) Len() int {
	return len(p.parent)
}

// Find returns the canonical representative of x's set.
// Paths are halved on the way up, keeping trees near-flat.
func (p *Partition) Find(x uint32) uint32 {
	for p.parent[x] != x {
		p.parent[x] = p.parent[p.parent[x]]
		x = p.parent[x]
	}
	return x
}

// Union merges the sets containing x and y and returns the representative
// of the merged set. Merging two ids already in the same set is a no-op.
func (p *Partition) Union(x, y uint32) uint32 {
	rx, ry := p.Find(x), p.Find(y)
	if rx == ry {
		return rx
	}
	if p.rank[rx] < p.rank[ry] {
		rx, ry = ry, rx
	}
	p.parent[ry] = rx
	if p.rank[rx] == p.rank[ry] {
		p.rank[rx]++
	}
	return rx
}

// Same reports whether x and y belong to the same set.
func (p *Partition) Same(x, y uint32) bool {
	return p.Find(x) == p.Find(y)
}
