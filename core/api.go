// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and the Stats snapshot.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	StrictVertices bool    // endpoints must be declared before AddEdge
	VertexCount    int     // number of vertices
	EdgeCount      int     // number of undirected edges
	Isolated       int     // vertices with no incident edge
	TotalWeight    float64 // sum of all edge weights
}

// StrictVertices reports whether AddEdge requires pre-declared endpoints.
func (g *Graph) StrictVertices() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.strict
}

// Stats produces a read-only snapshot of configuration and sizes.
//
// Complexity: Time O(V+E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		StrictVertices: g.strict,
		VertexCount:    len(g.vertices),
		EdgeCount:      g.edgeCount,
	}
	for from, nbrs := range g.adjacency {
		if len(nbrs) == 0 {
			stats.Isolated++
			continue
		}
		for to, w := range nbrs {
			if from < to {
				stats.TotalWeight += w
			}
		}
	}

	return &stats
}
