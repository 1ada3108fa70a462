// Package mst computes minimum spanning forests of a core.Graph.
//
// For a road network the forest is its backbone: the cheapest set of roads
// that keeps every pair of connected locations connected. Disconnected
// networks yield one tree per connected component.
//
// Algorithm:
//
//	Kruskal with a disjoint-set (union by rank, path compression). Edges are
//	taken in ascending weight; equal weights keep core.Graph.Edges order
//	(From, then To), so the forest is deterministic for a given graph.
//
// Complexity:
//
//   - Time:  O(E log E)
//   - Space: O(V + E)
package mst
