// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Adjacency queries: Neighbors and NeighborIDs.
// Determinism:
//   - Both return entries sorted by neighbor ID ascending, so traversals
//     built on them are reproducible for a fixed graph.

package core

import "sort"

// Neighbors returns the (adjacent vertex, edge weight) pairs of id,
// sorted by neighbor ID ascending.
//
// Errors:
//   - ErrEmptyVertexID for "".
//   - ErrVertexNotFound (naming id) if the vertex is absent.
//
// Complexity: O(d log d) where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, vertexNotFound(id)
	}

	out := make([]Neighbor, 0, len(nbrs))
	for to, w := range nbrs {
		out = append(out, Neighbor{ID: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
// Errors are those of Neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(nbrs))
	for i, n := range nbrs {
		ids[i] = n.ID
	}

	return ids, nil
}
