package octree

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// QueryAABB returns the ids of all points inside region (boundary
// inclusive). The result is unordered and keeps duplicate ids. An inverted
// region yields an empty result.
func (t *Octree) QueryAABB(region Bounds) []uint32 {
	start := t.now()
	ids := make([]uint32, 0)
	if region.IsValid() {
		visit(t, rootIndex, region, func(p Point) bool {
			ids = append(ids, p.ID)
			return true
		})
	}
	t.metrics.RecordQuery(QueryKindAABB, len(ids), t.since(start))
	return ids
}

// QuerySphere returns the ids of all points whose distance from center is
// at most radius. A negative or NaN radius yields an empty result.
func (t *Octree) QuerySphere(center Vec3, radius float32) []uint32 {
	start := t.now()
	ids := make([]uint32, 0)
	s := Sphere{Center: center, Radius: radius}
	if s.IsValid() {
		visit(t, rootIndex, s, func(p Point) bool {
			ids = append(ids, p.ID)
			return true
		})
	}
	t.metrics.RecordQuery(QueryKindSphere, len(ids), t.since(start))
	return ids
}

// Query returns the ids of all points matching a caller-defined region.
// Regions exposing an IsValid method that reports false match nothing.
func (t *Octree) Query(r Region) []uint32 {
	start := t.now()
	ids := make([]uint32, 0)
	if regionValid(r) {
		visit(t, rootIndex, r, func(p Point) bool {
			ids = append(ids, p.ID)
			return true
		})
	}
	t.metrics.RecordQuery(QueryKindRegion, len(ids), t.since(start))
	return ids
}

// QueryAABBPoints is QueryAABB returning the matching points themselves.
func (t *Octree) QueryAABBPoints(region Bounds) []Point {
	return t.QueryPoints(region)
}

// QuerySpherePoints is QuerySphere returning the matching points themselves.
func (t *Octree) QuerySpherePoints(center Vec3, radius float32) []Point {
	return t.QueryPoints(Sphere{Center: center, Radius: radius})
}

// QueryPoints returns every point matching r.
func (t *Octree) QueryPoints(r Region) []Point {
	points := make([]Point, 0)
	t.Visit(r, func(p Point) bool {
		points = append(points, p)
		return true
	})
	return points
}

// QueryAABBSet returns the distinct ids inside region as a bitmap.
func (t *Octree) QueryAABBSet(region Bounds) *roaring.Bitmap {
	return t.QuerySet(region)
}

// QuerySphereSet returns the distinct ids inside the sphere as a bitmap.
func (t *Octree) QuerySphereSet(center Vec3, radius float32) *roaring.Bitmap {
	return t.QuerySet(Sphere{Center: center, Radius: radius})
}

// QuerySet returns the distinct ids matching r as a bitmap.
func (t *Octree) QuerySet(r Region) *roaring.Bitmap {
	bm := roaring.New()
	t.Visit(r, func(p Point) bool {
		bm.Add(p.ID)
		return true
	})
	return bm
}

// Visit calls fn for every point matching r until fn returns false.
func (t *Octree) Visit(r Region, fn func(p Point) bool) {
	if !regionValid(r) {
		return
	}
	visit(t, rootIndex, r, fn)
}

func regionValid(r Region) bool {
	if r == nil {
		return false
	}
	if v, ok := r.(interface{ IsValid() bool }); ok {
		return v.IsValid()
	}
	return true
}

// visit walks the subtree at idx, skipping every node whose bounds the
// region cannot touch. It returns false once fn asked to stop.
func visit[R Region](t *Octree, idx uint32, r R, fn func(p Point) bool) bool {
	n := t.nodes.At(idx)
	if !r.IntersectsBounds(n.bounds) {
		return true
	}

	if n.kind == leafNode {
		for _, p := range n.points {
			if r.ContainsPoint(p.Position()) && !fn(p) {
				return false
			}
		}
		return true
	}

	for i := range uint32(8) {
		if !visit(t, n.children+i, r, fn) {
			return false
		}
	}
	return true
}
