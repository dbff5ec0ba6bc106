// Package testutil provides testing utilities for octree.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random point clouds and computing
// exact query results by brute force.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformPoints(1000, bounds)       // uniform inside bounds
//	points = rng.ClusteredPoints(1000, 4, 0.5, bounds) // gaussian blobs
//
// # Exact Search (Ground Truth)
//
//	want := testutil.BruteForceAABB(points, region)
//	got := tree.QueryAABB(region)
//	assert.Equal(t, testutil.SortedIDs(want), testutil.SortedIDs(got))
package testutil
