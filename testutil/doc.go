// Package testutil provides testing utilities for rtree.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random geometries and computing
// exact query results by brute force.
//
// # Random Geometry Generation
//
//	rng := testutil.NewRNG(seed)
//	rects := rng.Rectangles(1000, 2, 100, 5) // lower corners in [0, 100), sides < 5
//	points := rng.Points(1000, 3, 100)
//
// # Ground Truth
//
//	ids := testutil.BruteForceSearch(geoms, query)
//	nearest := testutil.BruteForceNearest(geoms, query, maxDistance, k)
package testutil
