package octree

// nodeKind discriminates the two node variants.
type nodeKind uint8

const (
	leafNode nodeKind = iota
	internalNode
)

// node is either a leaf holding points or an internal node whose eight
// children occupy slots children..children+7. Child i covers Bounds.Octant(i).
type node struct {
	bounds   Bounds
	points   []Point // leaf only, insertion order
	children uint32  // internal only
	depth    uint8
	kind     nodeKind
	// overfull is set once a leaf stayed above capacity at the cutoff.
	overfull bool
}

// Insert adds a point. Points outside the root bounds are dropped without
// any structural change; use InsertPoint to learn whether it was stored.
func (t *Octree) Insert(x, y, z float32, id uint32) {
	t.InsertPoint(Point{X: x, Y: y, Z: z, ID: id})
}

// InsertPoint adds p and reports whether it was stored. It returns false,
// leaving the tree untouched, when p lies outside the root bounds.
func (t *Octree) InsertPoint(p Point) bool {
	start := t.now()
	stored := t.insert(p)
	t.metrics.RecordInsert(t.since(start), stored)
	if !stored {
		t.logger.LogDroppedInsert(p)
	}
	return stored
}

// InsertBatch inserts points in order and returns how many were stored.
func (t *Octree) InsertBatch(points []Point) int {
	stored := 0
	for _, p := range points {
		if t.InsertPoint(p) {
			stored++
		}
	}
	return stored
}

func (t *Octree) insert(p Point) bool {
	pos := p.Position()
	if !t.bounds.ContainsPoint(pos) {
		return false
	}

	idx := rootIndex
	for {
		n := t.nodes.At(idx)
		if n.kind == internalNode {
			idx = n.children + uint32(n.bounds.OctantOf(pos))
			continue
		}

		n.points = append(n.points, p)
		t.count++
		if len(n.points) > t.capacity {
			t.subdivide(idx)
		}
		return true
	}
}

// subdivide converts leaf idx into an internal node and moves its points
// into the children chosen by Bounds.OctantOf. It reports false when the
// leaf is at the depth cutoff or too small to split in float32.
func (t *Octree) subdivide(idx uint32) bool {
	n := t.nodes.At(idx)
	if int(n.depth) >= t.maxDepth || !n.bounds.splittable() {
		t.markOverfull(idx)
		return false
	}

	bounds, depth, points := n.bounds, n.depth, n.points

	first, err := t.nodes.Alloc(8)
	if err != nil {
		t.markOverfull(idx)
		return false
	}
	// Alloc may have moved the slab; n is stale from here on.

	for i := range uint32(8) {
		c := t.nodes.At(first + i)
		c.bounds = bounds.Octant(int(i))
		c.depth = depth + 1
	}
	for _, p := range points {
		c := t.nodes.At(first + uint32(bounds.OctantOf(p.Position())))
		c.points = append(c.points, p)
	}

	n = t.nodes.At(idx)
	n.kind = internalNode
	n.children = first
	n.points = nil
	n.overfull = false

	t.logger.LogSubdivide(int(depth), len(points))
	t.metrics.RecordSubdivide(int(depth))

	if t.eager {
		for i := range uint32(8) {
			if len(t.nodes.At(first+i).points) > t.capacity {
				t.subdivide(first + i)
			}
		}
	}
	return true
}

func (t *Octree) markOverfull(idx uint32) {
	n := t.nodes.At(idx)
	if n.overfull {
		return
	}
	n.overfull = true
	t.logger.LogDepthLimit(int(n.depth), len(n.points), t.capacity)
	t.metrics.RecordDepthLimit(int(n.depth))
}
