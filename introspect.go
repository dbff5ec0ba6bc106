package octree

// NodeInfo describes one node during Walk.
type NodeInfo struct {
	Bounds Bounds
	Depth  int
	Leaf   bool
	Points int // stored points, always 0 for internal nodes
}

// Stats summarizes the current shape of the tree.
type Stats struct {
	Points             int
	Nodes              int
	Leaves             int
	Internal           int
	Depth              int // deepest node level, the root is 0
	MaxLeafPoints      int
	OverCapacityLeaves int
}

// AllNodeAABBs returns six floats (minX, minY, minZ, maxX, maxY, maxZ) per
// node in pre-order: a node, then its children 0 through 7.
func (t *Octree) AllNodeAABBs() []float32 {
	out := make([]float32, 0, 6*t.nodes.Len())
	t.walk(rootIndex, func(n *node) bool {
		out = n.bounds.appendTo(out)
		return true
	})
	return out
}

// AllPoints returns three floats (x, y, z) per stored point, leaves taken
// in the same pre-order as AllNodeAABBs and points in insertion order.
func (t *Octree) AllPoints() []float32 {
	out := make([]float32, 0, 3*t.count)
	t.walk(rootIndex, func(n *node) bool {
		for _, p := range n.points {
			out = append(out, p.X, p.Y, p.Z)
		}
		return true
	})
	return out
}

// AllPointIDs returns the id of every stored point, index-aligned with
// the triples of AllPoints.
func (t *Octree) AllPointIDs() []uint32 {
	out := make([]uint32, 0, t.count)
	t.walk(rootIndex, func(n *node) bool {
		for _, p := range n.points {
			out = append(out, p.ID)
		}
		return true
	})
	return out
}

// Walk calls fn for every node in pre-order until fn returns false.
func (t *Octree) Walk(fn func(info NodeInfo) bool) {
	t.walk(rootIndex, func(n *node) bool {
		return fn(NodeInfo{
			Bounds: n.bounds,
			Depth:  int(n.depth),
			Leaf:   n.kind == leafNode,
			Points: len(n.points),
		})
	})
}

// Stats walks the tree and returns a summary of its shape.
func (t *Octree) Stats() Stats {
	s := Stats{Points: t.count}
	t.walk(rootIndex, func(n *node) bool {
		s.Nodes++
		s.Depth = max(s.Depth, int(n.depth))
		if n.kind == internalNode {
			s.Internal++
			return true
		}
		s.Leaves++
		s.MaxLeafPoints = max(s.MaxLeafPoints, len(n.points))
		if len(n.points) > t.capacity {
			s.OverCapacityLeaves++
		}
		return true
	})
	return s
}

func (t *Octree) walk(idx uint32, fn func(n *node) bool) bool {
	n := t.nodes.At(idx)
	if !fn(n) {
		return false
	}
	if n.kind == internalNode {
		for i := range uint32(8) {
			if !t.walk(n.children+i, fn) {
				return false
			}
		}
	}
	return true
}
