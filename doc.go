// Package octree provides a dynamic three-dimensional point index.
//
// An Octree covers a fixed axis-aligned region. It stores points tagged
// with uint32 identifiers and answers region queries (axis-aligned box,
// sphere, or any Region) by skipping every subtree whose bounds cannot
// contain a match.
//
// # Quick Start
//
//	tree, err := octree.New(octree.NewBounds(0, 0, 0, 10, 10, 10), 8)
//	if err != nil {
//	    panic(err)
//	}
//	tree.Insert(1, 1, 1, 42)
//
//	ids := tree.QueryAABB(octree.NewBounds(0, 0, 0, 2.5, 2.5, 2.5))
//	near := tree.QuerySphere(octree.Vec3{X: 0, Y: 0, Z: 0}, 2)
//
// # Subdivision
//
// A leaf holds up to capacity points. The insert that takes it above
// capacity splits it into eight octants at the midpoint of each axis and
// moves its points down. A coordinate equal to a midpoint always goes to the
// lower octant, and containment is closed on every axis, so a point lying on
// a split plane is stored once and is still found by every query touching
// that plane.
//
// Splitting stops at a fixed depth (DefaultMaxDepth, see WithMaxDepth) or
// when a box becomes too small to halve in float32. Leaves at the cutoff
// may exceed capacity; this keeps many coincident points from recursing
// without bound.
//
// By default only the leaf receiving an insert splits. WithEagerSplit keeps
// splitting the children as well until none exceeds capacity.
//
// # Out-of-bounds Points
//
// The root bounds never change. Insert silently drops points outside them;
// InsertPoint reports the drop, and both paths feed the logger and the
// metrics collector.
//
// # Diagnostics
//
// AllNodeAABBs, AllPoints and AllPointIDs return flat pre-order dumps for
// visualization; Stats and Walk describe the shape of the tree. The dump
// package encodes these dumps into compact frames and exports them to a
// blob store.
//
// # Concurrency
//
// The tree has no internal locks. Serialize writers (Insert*, Clear)
// externally; read-only calls, including QueryBatch, may run in parallel
// between writes.
package octree
