package testutil

import (
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/octree"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// UniformVec3 returns a position drawn uniformly from b.
func (r *RNG) UniformVec3(b octree.Bounds) octree.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.uniformVec3Locked(b)
}

func (r *RNG) uniformVec3Locked(b octree.Bounds) octree.Vec3 {
	size := b.Size()
	return octree.Vec3{
		X: b.Min.X + r.rand.Float32()*size.X,
		Y: b.Min.Y + r.rand.Float32()*size.Y,
		Z: b.Min.Z + r.rand.Float32()*size.Z,
	}
}

// UniformPoints generates num points uniformly inside b with ids 0..num-1.
func (r *RNG) UniformPoints(num int, b octree.Bounds) []octree.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]octree.Point, num)
	for i := range num {
		v := r.uniformVec3Locked(b)
		points[i] = octree.Point{X: v.X, Y: v.Y, Z: v.Z, ID: uint32(i)}
	}
	return points
}

// ClusteredPoints generates num points around clusters random centroids
// with gaussian noise of the given spread, clamped into b.
// Useful for testing subdivision on non-uniform data.
func (r *RNG) ClusteredPoints(num, clusters int, spread float32, b octree.Bounds) []octree.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	centroids := make([]octree.Vec3, clusters)
	for i := range centroids {
		centroids[i] = r.uniformVec3Locked(b)
	}

	points := make([]octree.Point, num)
	for i := range num {
		c := centroids[i%clusters]
		points[i] = octree.Point{
			X:  clamp(c.X+float32(r.rand.NormFloat64())*spread, b.Min.X, b.Max.X),
			Y:  clamp(c.Y+float32(r.rand.NormFloat64())*spread, b.Min.Y, b.Max.Y),
			Z:  clamp(c.Z+float32(r.rand.NormFloat64())*spread, b.Min.Z, b.Max.Z),
			ID: uint32(i),
		}
	}
	return points
}

// GridPoints returns the (n+1)^3 lattice points of b, ids in x-fastest
// order. With n a power of two every split plane of the tree carries points.
func GridPoints(n int, b octree.Bounds) []octree.Point {
	size := b.Size()
	points := make([]octree.Point, 0, (n+1)*(n+1)*(n+1))
	for k := 0; k <= n; k++ {
		for j := 0; j <= n; j++ {
			for i := 0; i <= n; i++ {
				points = append(points, octree.Point{
					X:  b.Min.X + size.X*float32(i)/float32(n),
					Y:  b.Min.Y + size.Y*float32(j)/float32(n),
					Z:  b.Min.Z + size.Z*float32(k)/float32(n),
					ID: uint32(len(points)),
				})
			}
		}
	}
	return points
}

// BruteForceAABB returns the ids of the points inside region by linear scan.
func BruteForceAABB(points []octree.Point, region octree.Bounds) []uint32 {
	return BruteForce(points, region)
}

// BruteForceSphere returns the ids of the points inside the sphere by linear scan.
func BruteForceSphere(points []octree.Point, center octree.Vec3, radius float32) []uint32 {
	if radius < 0 {
		return []uint32{}
	}
	return BruteForce(points, octree.Sphere{Center: center, Radius: radius})
}

// BruteForce returns the ids of the points r contains by linear scan.
func BruteForce(points []octree.Point, r octree.Region) []uint32 {
	ids := make([]uint32, 0)
	for _, p := range points {
		if r.ContainsPoint(p.Position()) {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// SortedIDs returns a sorted copy of ids for order-independent comparison.
func SortedIDs(ids []uint32) []uint32 {
	out := slices.Clone(ids)
	if out == nil {
		out = []uint32{}
	}
	slices.Sort(out)
	return out
}

func clamp(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}
