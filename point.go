package octree

// Point is a stored position tagged with a caller-supplied identifier.
// Identifiers are not required to be unique.
type Point struct {
	X, Y, Z float32
	ID      uint32
}

// Position returns the coordinates of p.
func (p Point) Position() Vec3 {
	return Vec3{X: p.X, Y: p.Y, Z: p.Z}
}
