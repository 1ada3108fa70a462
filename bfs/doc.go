// Package bfs explores a core.Graph breadth-first, ignoring weights.
//
// What
//
//   - BFS(g, start) visits vertices in non-decreasing hop count and returns
//     a Result with visit Order, Depth and Parent maps; Result.PathTo gives
//     the fewest-hop route to any reached vertex.
//   - Components(g) partitions the graph into connected components.
//   - Connected(g, a, b) answers whether any route exists at all, which is
//     exactly when dijkstra.ShortestPath does not return ErrNoPath.
//
// Determinism
//
//	core.Graph.Neighbors is sorted by ID and BFS enqueues neighbors in that
//	order, so the visit sequence is reproducible.
//
// Options
//
//   - WithContext(ctx):        cancellation checked once per dequeued vertex.
//   - WithMaxDepth(d):         d > 0 limits depth; 0 means no limit.
//   - WithOnVisit(fn):         hook; a returned error aborts the search.
//   - WithFilterNeighbor(fn):  prune individual edges.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) plus the per-vertex neighbor sort.
//   - Memory: O(V).
package bfs
