// File: dijkstra.go
// Role: ShortestPath, Distances and the heap-based runner.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/routegraph/core"
)

// ShortestPath returns the minimum-cost path between source and target.
//
// Outcomes:
//
//   - success: *Result with Distance and Path (Source first, Target last).
//   - ErrVertexNotFound: source or target absent (source is checked first);
//     the message names the missing ID.
//   - ErrNoPath: target unreachable from source.
//
// A path whose total weight exceeds math.MaxFloat64 is still returned; its
// Distance saturates to +Inf.
//   - ErrNilGraph / ErrOptionViolation for invalid input.
//
// source == target returns Distance 0 and Path [source] without running the
// main loop. Otherwise the search stops as soon as target is settled.
//
// Ties: the frontier pops the smallest (distance, vertex ID) pair first and
// neighbors are relaxed in ID order, so the returned path is stable for a
// given graph. When several paths share the minimum cost any one of them may
// be returned; the distance is always the unique minimum.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) (*Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	if !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}

	if source == target {
		return &Result{Source: source, Target: target, Distance: 0, Path: []string{source}}, nil
	}

	r := newRunner(g, cfg, source, target)
	if err = r.process(); err != nil {
		return nil, err
	}

	d, reached := r.dist[target]
	if !reached {
		cfg.Logger.Debug("no path", "source", source, "target", target, "settled", len(r.visited))
		return nil, fmt.Errorf("%w: %q → %q", ErrNoPath, source, target)
	}

	path, err := PathTo(r.prev, source, target)
	if err != nil {
		return nil, err
	}
	cfg.Logger.Debug("shortest path", "source", source, "target", target,
		"distance", d, "hops", len(path)-1, "settled", len(r.visited))

	return &Result{Source: source, Target: target, Distance: d, Path: path}, nil
}

// Distances runs a full single-source search from source.
//
// Returns:
//
//   - dist: every vertex of g mapped to its minimum distance from source,
//     math.Inf(1) if unreachable (or beyond MaxDistance). A reachable vertex
//     whose distance overflows is also +Inf but has a prev entry.
//   - prev: prev[v] == u means a shortest path to v ends with u→v.
//     source and unreachable vertices have no entry.
func Distances(g *core.Graph, source string, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, nil, err
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}

	r := newRunner(g, cfg, source, "")
	if err = r.process(); err != nil {
		return nil, nil, err
	}

	vertices := g.Vertices()
	dist := make(map[string]float64, len(vertices))
	for _, v := range vertices {
		dist[v] = r.distance(v)
	}

	return dist, r.prev, nil
}

// PathTo rebuilds source … target from a predecessor map such as the one
// returned by Distances. ErrNoPath if the chain does not reach source.
func PathTo(prev map[string]string, source, target string) ([]string, error) {
	path := []string{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok || len(path) > len(prev)+1 {
			return nil, fmt.Errorf("%w: %q → %q", ErrNoPath, source, target)
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get source → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph        // read-only within a query
	options Options            // thresholds and logger
	target  string             // "" runs to exhaustion
	dist    map[string]float64 // tentative distances; absent means not reached
	prev    map[string]string  // predecessor on the best-known path
	visited map[string]bool    // settled vertices
	pq      nodePQ             // frontier
}

func newRunner(g *core.Graph, cfg Options, source, target string) *runner {
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		target:  target,
		dist:    make(map[string]float64, n),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.dist[source] = 0
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	return r
}

func (r *runner) distance(v string) float64 {
	if d, ok := r.dist[v]; ok {
		return d
	}

	return math.Inf(1)
}

// process pops the closest unsettled vertex until the frontier is empty,
// the target is settled, or the next distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// stale entry
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.options.Logger.Trace("settled", "vertex", u, "distance", d)

		if u == r.target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of the settled vertex u.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	du := r.dist[u]
	for _, n := range neighbors {
		if r.visited[n.ID] || n.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		nd := du + n.Weight
		if nd > r.options.MaxDistance {
			continue
		}
		// presence in dist, not a finite value, marks a vertex as reached
		if cur, seen := r.dist[n.ID]; seen && nd >= cur {
			continue
		}
		r.dist[n.ID] = nd
		r.prev[n.ID] = u
		r.options.Logger.Trace("relaxed", "vertex", n.ID, "via", u, "distance", nd)
		heap.Push(&r.pq, &nodeItem{id: n.ID, dist: nd})
	}

	return nil
}

// nodeItem is a frontier entry.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
