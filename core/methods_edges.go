// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns each undirected edge once, From < To, sorted by (From, To).
// Concurrency:
//   - Mutations under the write lock.
//   - Read queries under the read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge connects a and b with the given weight in both directions.
//
// Steps:
//  1. Validate IDs (ErrEmptyVertexID).
//  2. Validate the edge: a != b, weight finite and ≥ 0 (ErrInvalidEdge).
//  3. Under the write lock, ensure endpoints exist. In strict mode a missing
//     endpoint is ErrVertexNotFound; otherwise it is created implicitly.
//  4. Store weight in adjacency[a][b] and adjacency[b][a]. An existing edge
//     between the pair is overwritten (last write wins).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, weight float64) error {
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	if err := validateEdge(a, b, weight); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.strict {
		if _, ok := g.vertices[a]; !ok {
			return vertexNotFound(a)
		}
		if _, ok := g.vertices[b]; !ok {
			return vertexNotFound(b)
		}
	}
	g.addVertexLocked(a)
	g.addVertexLocked(b)

	if _, exists := g.adjacency[a][b]; !exists {
		g.edgeCount++
	}
	g.adjacency[a][b] = weight
	g.adjacency[b][a] = weight

	return nil
}

// validateEdge rejects self-loops and weights that are negative, NaN or infinite.
func validateEdge(a, b string, weight float64) error {
	switch {
	case a == b:
		return fmt.Errorf("%w: self-loop on %q", ErrInvalidEdge, a)
	case math.IsNaN(weight) || math.IsInf(weight, 0):
		return fmt.Errorf("%w: %q–%q weight %v is not finite", ErrInvalidEdge, a, b, weight)
	case weight < 0:
		return fmt.Errorf("%w: %q–%q weight %v is negative", ErrInvalidEdge, a, b, weight)
	}

	return nil
}

// HasEdge reports whether a and b are connected. Symmetric by construction.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.Weight(a, b)

	return ok
}

// Weight returns the weight of edge {a,b} and whether that edge exists.
// Complexity: O(1).
func (g *Graph) Weight(a, b string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[a][b]

	return w, ok
}

// Edges returns every edge exactly once with From < To, sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for from, nbrs := range g.adjacency {
		for to, w := range nbrs {
			if from < to {
				out = append(out, Edge{From: from, To: to, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
