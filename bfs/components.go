package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/routegraph/core"
)

// Components partitions g into connected components.
// Each component is sorted by ID, and components are ordered by their
// smallest ID. A nil graph has no components.
//
// Complexity: O(V log V + E log d).
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}
	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	// Vertices() is sorted, so each component is discovered from its smallest ID.
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			// v came from g itself; only a concurrent writer can get here.
			continue
		}
		comp := make([]string, 0, len(res.Order))
		for _, id := range res.Order {
			seen[id] = true
			comp = append(comp, id)
		}
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out
}

// Connected reports whether a and b lie in the same connected component.
// An absent endpoint yields core.ErrVertexNotFound.
func Connected(g *core.Graph, a, b string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	for _, id := range []string{a, b} {
		if !g.HasVertex(id) {
			return false, fmt.Errorf("%w: %q", core.ErrVertexNotFound, id)
		}
	}
	res, err := BFS(g, a)
	if err != nil {
		return false, err
	}
	_, ok := res.Depth[b]

	return ok, nil
}
