// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, Neighbor, GraphOption, sentinel errors and NewGraph.
// Policy:
//   - The graph is always undirected and weighted.
//   - At most one edge per unordered vertex pair (last write wins).
//   - Self-loops, negative and non-finite weights are rejected.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrInvalidEdge indicates an edge was rejected at construction time:
	// a self-loop, a negative weight, or a NaN/Inf weight.
	ErrInvalidEdge = errors.New("core: invalid edge")
)

// Edge is an undirected, weighted connection between two distinct vertices.
//
// Edges returned by Graph.Edges are canonicalized so that From < To.
type Edge struct {
	// From is the lexicographically smaller endpoint.
	From string

	// To is the lexicographically larger endpoint.
	To string

	// Weight is the non-negative traversal cost in either direction.
	Weight float64
}

// Neighbor is one adjacency entry of a vertex: the adjacent vertex ID and
// the weight of the connecting edge.
type Neighbor struct {
	ID     string
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithStrictVertices makes AddEdge refuse endpoints that were not declared
// through AddVertex beforehand (ErrVertexNotFound). Without it, AddEdge
// creates missing endpoints implicitly.
func WithStrictVertices() GraphOption {
	return func(g *Graph) { g.strict = true }
}

// Graph is an in-memory undirected weighted graph keyed by vertex ID.
//
// adjacency[a][b] == adjacency[b][a] == weight of edge {a,b}.
// mu guards both vertices and adjacency; read methods take the read lock,
// so any number of queries may share one graph. Writers must not run while
// a shortest-path query is in flight.
type Graph struct {
	mu sync.RWMutex

	strict bool // endpoints must be declared before AddEdge

	vertices  map[string]struct{}
	adjacency map[string]map[string]float64
	edgeCount int
}

// NewGraph creates an empty Graph.
// By default endpoints are created implicitly by AddEdge.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
