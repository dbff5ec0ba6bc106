package octree

import "math"

// Vec3 is a position in three-dimensional space.
type Vec3 struct {
	X, Y, Z float32
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// SquaredDistance returns the squared Euclidean distance between v and o.
func (v Vec3) SquaredDistance(o Vec3) float32 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	dz := v.Z - o.Z
	return dx*dx + dy*dy + dz*dz
}

func (v Vec3) hasNaN() bool {
	return v.X != v.X || v.Y != v.Y || v.Z != v.Z
}

// Region is a query shape. Traversal descends into a node only when
// IntersectsBounds reports true and emits the points ContainsPoint accepts.
type Region interface {
	IntersectsBounds(b Bounds) bool
	ContainsPoint(p Vec3) bool
}

// Bounds is an axis-aligned box given by its minimum and maximum corner.
// Containment is closed on every axis: Min <= c <= Max.
type Bounds struct {
	Min Vec3
	Max Vec3
}

// Compile-time checks to ensure the built-in shapes satisfy Region.
var _ Region = Bounds{}
var _ Region = Sphere{}

// NewBounds builds Bounds from six coordinates.
func NewBounds(minX, minY, minZ, maxX, maxY, maxZ float32) Bounds {
	return Bounds{
		Min: Vec3{X: minX, Y: minY, Z: minZ},
		Max: Vec3{X: maxX, Y: maxY, Z: maxZ},
	}
}

// Validate returns an *ErrInvalidBounds for the first axis on which
// Min > Max or a coordinate is NaN.
func (b Bounds) Validate() error {
	mins := [3]float32{b.Min.X, b.Min.Y, b.Min.Z}
	maxs := [3]float32{b.Max.X, b.Max.Y, b.Max.Z}
	for axis := range 3 {
		// The negated form also rejects NaN.
		if !(mins[axis] <= maxs[axis]) {
			return &ErrInvalidBounds{Axis: axis, Min: mins[axis], Max: maxs[axis]}
		}
	}
	return nil
}

// IsValid reports whether b is well formed.
func (b Bounds) IsValid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

// Center returns the midpoint of b.
func (b Bounds) Center() Vec3 {
	return Vec3{
		X: midpoint(b.Min.X, b.Max.X),
		Y: midpoint(b.Min.Y, b.Max.Y),
		Z: midpoint(b.Min.Z, b.Max.Z),
	}
}

// Size returns the extent of b on every axis.
func (b Bounds) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Diagonal returns the length of the main diagonal of b.
func (b Bounds) Diagonal() float32 {
	return float32(math.Sqrt(float64(b.Min.SquaredDistance(b.Max))))
}

// ContainsPoint reports whether p lies inside b (boundary inclusive).
func (b Bounds) ContainsPoint(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// IntersectsBounds reports whether the closed boxes b and o overlap on every axis.
func (b Bounds) IntersectsBounds(o Bounds) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// SquaredDistanceTo returns the squared distance from p to the nearest
// point of b, zero when p is inside.
func (b Bounds) SquaredDistanceTo(p Vec3) float32 {
	nearest := Vec3{
		X: clamp(p.X, b.Min.X, b.Max.X),
		Y: clamp(p.Y, b.Min.Y, b.Max.Y),
		Z: clamp(p.Z, b.Min.Z, b.Max.Z),
	}
	return p.SquaredDistance(nearest)
}

// Octant returns the bounds of child i. Bit 0 of i selects the upper half
// of x, bit 1 the upper half of y and bit 2 the upper half of z.
func (b Bounds) Octant(i int) Bounds {
	mid := b.Center()
	o := b
	if i&1 != 0 {
		o.Min.X = mid.X
	} else {
		o.Max.X = mid.X
	}
	if i&2 != 0 {
		o.Min.Y = mid.Y
	} else {
		o.Max.Y = mid.Y
	}
	if i&4 != 0 {
		o.Min.Z = mid.Z
	} else {
		o.Max.Z = mid.Z
	}
	return o
}

// OctantOf returns the index of the child that owns p. A coordinate equal
// to the midpoint belongs to the lower half, so a point on a split plane
// has exactly one owner.
func (b Bounds) OctantOf(p Vec3) int {
	mid := b.Center()
	i := 0
	if p.X > mid.X {
		i |= 1
	}
	if p.Y > mid.Y {
		i |= 2
	}
	if p.Z > mid.Z {
		i |= 4
	}
	return i
}

// splittable reports whether halving b still separates anything: at least
// one axis must keep its midpoint strictly between the corners in float32.
func (b Bounds) splittable() bool {
	mid := b.Center()
	return (b.Min.X < mid.X && mid.X < b.Max.X) ||
		(b.Min.Y < mid.Y && mid.Y < b.Max.Y) ||
		(b.Min.Z < mid.Z && mid.Z < b.Max.Z)
}

func (b Bounds) appendTo(dst []float32) []float32 {
	return append(dst, b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
}

// Sphere is a ball given by its center and radius (boundary inclusive).
type Sphere struct {
	Center Vec3
	Radius float32
}

// IsValid reports whether s has a non-negative radius and no NaN.
func (s Sphere) IsValid() bool {
	return s.Radius >= 0 && !s.Center.hasNaN()
}

// IntersectsBounds reports whether s touches the box b.
func (s Sphere) IntersectsBounds(b Bounds) bool {
	return b.SquaredDistanceTo(s.Center) <= s.Radius*s.Radius
}

// ContainsPoint reports whether p lies within s.
func (s Sphere) ContainsPoint(p Vec3) bool {
	return s.Center.SquaredDistance(p) <= s.Radius*s.Radius
}

// Bounds returns the smallest box enclosing s.
func (s Sphere) Bounds() Bounds {
	r := s.Radius
	return NewBounds(
		s.Center.X-r, s.Center.Y-r, s.Center.Z-r,
		s.Center.X+r, s.Center.Y+r, s.Center.Z+r,
	)
}

// midpoint halves each operand first so that extreme coordinates do not overflow.
func midpoint(lo, hi float32) float32 {
	return 0.5*lo + 0.5*hi
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
