// File: kruskal.go
// Role: Kruskal's algorithm over core.Graph.Edges.

package mst

import (
	"sort"

	"github.com/katalvlaran/routegraph/core"
)

// Kruskal returns the minimum spanning forest of g.
//
// Steps:
//  1. Snapshot vertices and edges (both sorted by ID).
//  2. Stable-sort edges by weight.
//  3. Accept an edge when its endpoints are in different sets, then merge.
//  4. Stop early once |V| - trees edges have been accepted.
func Kruskal(g *core.Graph) (*Forest, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	vertices := g.Vertices()
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	ds := newDisjointSet(vertices)
	f := &Forest{Edges: make([]core.Edge, 0, len(vertices))}
	for _, e := range edges {
		if !ds.union(e.From, e.To) {
			continue
		}
		f.Edges = append(f.Edges, e)
		f.Weight += e.Weight
		// a spanning tree of the whole graph cannot grow further
		if len(f.Edges) == len(vertices)-1 {
			break
		}
	}
	f.Trees = len(vertices) - len(f.Edges)

	return f, nil
}

// disjointSet is union-find over vertex IDs.
type disjointSet struct {
	parent map[string]string
	rank   map[string]int
}

func newDisjointSet(ids []string) *disjointSet {
	ds := &disjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		ds.parent[id] = id
	}

	return ds
}

// find returns the root of u, halving the path on the way.
func (ds *disjointSet) find(u string) string {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v; false if they were already one set.
func (ds *disjointSet) union(u, v string) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
