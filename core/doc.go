// Package core provides the thread-safe, in-memory weighted graph that every
// routegraph algorithm runs on.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected: an edge {A,B,w} costs w in either direction.
//   - Weighted: weights are float64, finite and ≥ 0.
//   - Simple: at most one edge per unordered pair; re-adding a pair overwrites
//     its weight (last write wins). Self-loops are rejected.
//   - Deterministic: Vertices(), Edges(), Neighbors() all return sorted results.
//
// Storage is a nested map adjacency[a][b] = weight, mirrored for b→a.
//
// Configuration Options (GraphOption):
//
//	– WithStrictVertices()
//	    AddEdge fails with ErrVertexNotFound for endpoints that were not
//	    declared via AddVertex. Without it, missing endpoints are created.
//
// Core Methods:
//
//	AddVertex(id string) error                 // O(1), idempotent
//	AddEdge(a, b string, weight float64) error // O(1)
//	Neighbors(id string) ([]Neighbor, error)   // O(d log d)
//	HasVertex, HasEdge, Weight, Degree         // O(1)
//	Vertices(), Edges()                        // sorted snapshots
//	Stats()                                    // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist (message names it).
//	ErrInvalidEdge    - self-loop, negative or non-finite weight.
//
// Concurrency:
//
// A single sync.RWMutex guards the graph. Any number of readers (including
// shortest-path queries) may share it; callers that mutate and query at the
// same time must serialize writes themselves so no query observes a graph
// that changes under it.
package core
