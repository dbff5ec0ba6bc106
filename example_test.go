package octree_test

import (
	"context"
	"fmt"
	"log"
	"slices"

	"github.com/hupe1980/octree"
)

// Example demonstrates inserting points and running both query shapes.
func Example() {
	tree, err := octree.New(octree.NewBounds(0, 0, 0, 10, 10, 10), 2)
	if err != nil {
		log.Fatal(err)
	}

	tree.Insert(1, 1, 1, 1)
	tree.Insert(2, 2, 2, 2)
	fmt.Println("nodes:", len(tree.AllNodeAABBs())/6)

	tree.Insert(3, 3, 3, 3)
	fmt.Println("nodes:", len(tree.AllNodeAABBs())/6)

	box := tree.QueryAABB(octree.NewBounds(0, 0, 0, 2.5, 2.5, 2.5))
	slices.Sort(box)
	fmt.Println("box:", box)
	fmt.Println("sphere:", tree.QuerySphere(octree.Vec3{}, 2))
	// Output:
	// nodes: 1
	// nodes: 9
	// box: [1 2]
	// sphere: [1]
}

// ExampleOctree_InsertPoint shows how to detect points outside the root bounds.
func ExampleOctree_InsertPoint() {
	tree, err := octree.New(octree.NewBounds(0, 0, 0, 10, 10, 10), 8)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(tree.InsertPoint(octree.Point{X: 5, Y: 5, Z: 5, ID: 1}))
	fmt.Println(tree.InsertPoint(octree.Point{X: 11, Y: 5, Z: 5, ID: 2}))
	fmt.Println(tree.Len())
	// Output:
	// true
	// false
	// 1
}

// ExampleOctree_QuerySet collects distinct ids into a roaring bitmap.
func ExampleOctree_QuerySet() {
	tree, err := octree.New(octree.NewBounds(0, 0, 0, 10, 10, 10), 8)
	if err != nil {
		log.Fatal(err)
	}
	tree.Insert(1, 1, 1, 7)
	tree.Insert(2, 1, 1, 7)
	tree.Insert(9, 9, 9, 3)

	ids := tree.QuerySet(octree.NewBounds(0, 0, 0, 10, 10, 10))
	fmt.Println(ids.ToArray())
	// Output: [3 7]
}

// ExampleOctree_QueryBatch runs several queries in parallel.
func ExampleOctree_QueryBatch() {
	tree, err := octree.New(octree.NewBounds(0, 0, 0, 10, 10, 10), 4)
	if err != nil {
		log.Fatal(err)
	}
	for i := range 10 {
		f := float32(i)
		tree.Insert(f, f, f, uint32(i))
	}

	results, err := tree.QueryBatch(context.Background(), []octree.Region{
		octree.Sphere{Center: octree.Vec3{}, Radius: 2},
		octree.NewBounds(8, 8, 8, 10, 10, 10),
	}, 2)
	if err != nil {
		log.Fatal(err)
	}
	for _, ids := range results {
		slices.Sort(ids)
		fmt.Println(ids)
	}
	// Output:
	// [0 1]
	// [8 9]
}

// ExampleWithMetricsCollector wires the in-memory metrics collector.
func ExampleWithMetricsCollector() {
	metrics := &octree.BasicMetricsCollector{}
	tree, err := octree.New(octree.NewBounds(0, 0, 0, 10, 10, 10), 1, octree.WithMetricsCollector(metrics))
	if err != nil {
		log.Fatal(err)
	}
	tree.Insert(1, 1, 1, 1)
	tree.Insert(9, 9, 9, 2)
	tree.Insert(20, 0, 0, 3)

	stats := metrics.GetStats()
	fmt.Printf("inserts=%d dropped=%d subdivisions=%d\n", stats.InsertCount, stats.InsertDropped, stats.Subdivisions)
	// Output: inserts=3 dropped=1 subdivisions=1
}
