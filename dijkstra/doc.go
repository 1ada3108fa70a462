// Package dijkstra answers "what is the cheapest route between two vertices
// of a core.Graph, and what does it cost?".
//
// Overview:
//
//   - ShortestPath(g, source, target) settles vertices in increasing distance
//     from source using a binary-heap frontier and stops as soon as target is
//     settled. It returns a *Result (distance + ordered path) or one of the
//     sentinel outcomes below.
//   - Distances(g, source) runs to exhaustion and returns the full distance
//     table plus a predecessor map; PathTo rebuilds any route from it.
//   - Queries never mutate the graph and keep all state local, so any number
//     of them may share one graph as long as nobody writes to it meanwhile.
//
// Outcomes:
//
//   - ErrVertexNotFound: a query endpoint is absent (errors.Is matches
//     core.ErrVertexNotFound); the message names the ID.
//   - ErrNoPath: the endpoints are in different connected components. This is
//     a normal result for disconnected networks.
//   - ErrNilGraph, ErrOptionViolation: invalid input.
//
// Tie-breaking:
//
//	The frontier is ordered by (distance, vertex ID), neighbors are relaxed in
//	ID order and only strictly shorter candidates replace a predecessor. For a
//	fixed graph the returned path is therefore always the same one of the
//	minimum-cost paths.
//
// Options:
//
//	– WithMaxDistance(d):       vertices farther than d are not settled.
//	– WithInfEdgeThreshold(t):  edges with weight ≥ t are impassable.
//	– WithLogger(l):            Trace-level settle/relax events, Debug summary.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap may hold one entry per successful relaxation.
package dijkstra
