// Package dijkstra_test contains unit tests for the shortest-path engine:
// validation, the reference scenarios, tie-breaking, thresholds and the
// graph-level properties (symmetry, path weight, overwrite).
package dijkstra_test

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routegraph/core"
	"github.com/katalvlaran/routegraph/dijkstra"
)

const epsilon = 1e-9

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestPath_VertexNotFound(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	_, err := dijkstra.ShortestPath(g, "X", "B")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.Contains(t, err.Error(), `"X"`)

	_, err = dijkstra.ShortestPath(g, "A", "Y")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	assert.Contains(t, err.Error(), `"Y"`)

	// Empty graph, source == target: still NodeNotFound, not a zero path.
	_, err = dijkstra.ShortestPath(core.NewGraph(), "Any", "Any")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestShortestPath_OptionViolation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	_, err := dijkstra.ShortestPath(g, "A", "B", dijkstra.WithMaxDistance(-1))
	require.ErrorIs(t, err, dijkstra.ErrOptionViolation)

	_, err = dijkstra.ShortestPath(g, "A", "B", dijkstra.WithInfEdgeThreshold(0))
	require.ErrorIs(t, err, dijkstra.ErrOptionViolation)

	_, _, err = dijkstra.Distances(g, "A", dijkstra.WithMaxDistance(math.NaN()))
	require.ErrorIs(t, err, dijkstra.ErrOptionViolation)
}

// ------------------------------------------------------------------------
// 2. Reference scenarios
// ------------------------------------------------------------------------

func TestShortestPath_PenonomeUniversidadAnton(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"P", "U", "A"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("P", "U", 4.5))
	require.NoError(t, g.AddEdge("U", "A", 13))

	res, err := dijkstra.ShortestPath(g, "P", "A")
	require.NoError(t, err)
	assert.InDelta(t, 17.5, res.Distance, epsilon)
	assert.Equal(t, []string{"P", "U", "A"}, res.Path)
	assert.Equal(t, 2, res.Hops())
}

func TestShortestPath_OlaSoledadAguadulce(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("O", "S", 4.2))
	require.NoError(t, g.AddEdge("S", "G", 32))

	res, err := dijkstra.ShortestPath(g, "O", "G")
	require.NoError(t, err)
	assert.InDelta(t, 36.2, res.Distance, epsilon)
	assert.Equal(t, []string{"O", "S", "G"}, res.Path)
}

func TestShortestPath_DisjointGroups(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	res, err := dijkstra.ShortestPath(g, "A", "D")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
	assert.Nil(t, res)

	// Isolated vertex.
	require.NoError(t, g.AddVertex("E"))
	_, err = dijkstra.ShortestPath(g, "E", "A")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestShortestPath_SameVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 3))
	require.NoError(t, g.AddVertex("Solo"))

	for _, id := range []string{"A", "B", "Solo"} {
		res, err := dijkstra.ShortestPath(g, id, id)
		require.NoError(t, err)
		assert.Zero(t, res.Distance)
		assert.Equal(t, []string{id}, res.Path)
		assert.Zero(t, res.Hops())
	}
}

func TestShortestPath_OverflowingDistanceIsStillReachable(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", math.MaxFloat64))
	require.NoError(t, g.AddEdge("B", "C", math.MaxFloat64))

	res, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.True(t, math.IsInf(res.Distance, 1))

	dist, prev, err := dijkstra.Distances(g, "A")
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist["C"], 1))
	assert.Equal(t, "B", prev["C"])

	// A finite detour still wins over the saturated path.
	require.NoError(t, g.AddEdge("A", "D", 1))
	require.NoError(t, g.AddEdge("D", "C", 1))
	res, err = dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D", "C"}, res.Path)
	assert.InDelta(t, 2.0, res.Distance, epsilon)
}

// ------------------------------------------------------------------------
// 3. Basic functionality
// ------------------------------------------------------------------------

func TestShortestPath_TrianglePrefersTwoHops(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 5))

	res, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Distance)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Equal(t, "A -> B -> C (3)", res.String())
}

func TestShortestPath_ZeroWeightEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))
	require.NoError(t, g.AddEdge("A", "C", 1))

	res, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Zero(t, res.Distance)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
}

func TestShortestPath_TieBreakSmallestID(t *testing.T) {
	// Square: A–B–D and A–C–D both cost 2.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "D", 1))

	for i := 0; i < 10; i++ {
		res, err := dijkstra.ShortestPath(g, "A", "D")
		require.NoError(t, err)
		assert.Equal(t, 2.0, res.Distance)
		assert.Equal(t, []string{"A", "B", "D"}, res.Path, "B settles before C on equal distance")
	}
}

func TestShortestPath_OverwriteChangesDistance(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 10))
	require.NoError(t, g.AddEdge("B", "C", 10))
	require.NoError(t, g.AddEdge("A", "C", 50))

	before, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, 20.0, before.Distance)

	require.NoError(t, g.AddEdge("C", "A", 5))
	after, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, 5.0, after.Distance)
	assert.Equal(t, []string{"A", "C"}, after.Path)
}

func TestResult_Legs(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("P", "U", 4.5))
	require.NoError(t, g.AddEdge("U", "A", 13))

	res, err := dijkstra.ShortestPath(g, "A", "P")
	require.NoError(t, err)
	legs, err := res.Legs(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: "A", To: "U", Weight: 13},
		{From: "U", To: "P", Weight: 4.5},
	}, legs)

	_, err = res.Legs(core.NewGraph())
	require.ErrorIs(t, err, dijkstra.ErrPathMismatch)
	_, err = res.Legs(nil)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

// ------------------------------------------------------------------------
// 4. Thresholds
// ------------------------------------------------------------------------

func TestShortestPath_InfEdgeThreshold(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("B", "C", 4))
	require.NoError(t, g.AddEdge("A", "C", 10))
	require.NoError(t, g.AddEdge("C", "D", 7))

	res, err := dijkstra.ShortestPath(g, "A", "C", dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.Distance)

	// C–D (7) is a wall.
	_, err = dijkstra.ShortestPath(g, "A", "D", dijkstra.WithInfEdgeThreshold(5))
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestShortestPath_MaxDistance(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	res, err := dijkstra.ShortestPath(g, "A", "C", dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Distance)

	_, err = dijkstra.ShortestPath(g, "A", "D", dijkstra.WithMaxDistance(2))
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

// ------------------------------------------------------------------------
// 5. Distances / PathTo
// ------------------------------------------------------------------------

func TestDistances_FullTable(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddEdge("D", "E", 1))
	require.NoError(t, g.AddEdge("D", "F", 1))
	require.NoError(t, g.AddEdge("F", "G", 1))
	require.NoError(t, g.AddVertex("Z"))

	dist, prev, err := dijkstra.Distances(g, "A")
	require.NoError(t, err)

	want := map[string]float64{"A": 0, "B": 1, "C": 2, "D": 3, "E": 4, "F": 4, "G": 5}
	for v, d := range want {
		assert.Equal(t, d, dist[v], "dist[%s]", v)
	}
	assert.True(t, math.IsInf(dist["Z"], 1))
	assert.Len(t, dist, 8)

	_, hasSource := prev["A"]
	assert.False(t, hasSource)
	_, hasZ := prev["Z"]
	assert.False(t, hasZ)

	path, err := dijkstra.PathTo(prev, "A", "G")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "F", "G"}, path)

	_, err = dijkstra.PathTo(prev, "A", "Z")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)

	path, err = dijkstra.PathTo(prev, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

func TestDistances_Errors(t *testing.T) {
	_, _, err := dijkstra.Distances(nil, "A")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Distances(core.NewGraph(), "A")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestPathTo_CycleInPredecessors(t *testing.T) {
	prev := map[string]string{"B": "C", "C": "B"}
	_, err := dijkstra.PathTo(prev, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

// ------------------------------------------------------------------------
// 6. Properties on random graphs
// ------------------------------------------------------------------------

// randomGraph builds a sparse graph with n vertices and ~2n random edges,
// sometimes disconnected.
func randomGraph(t *testing.T, rng *rand.Rand, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("v%02d", i)))
	}
	for i := 0; i < 2*n; i++ {
		a, b := rng.Intn(n), rng.Intn(n)
		if a == b {
			continue
		}
		w := math.Round(rng.Float64()*1000) / 10
		require.NoError(t, g.AddEdge(fmt.Sprintf("v%02d", a), fmt.Sprintf("v%02d", b), w))
	}

	return g
}

func TestShortestPath_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		g := randomGraph(t, rng, 12)
		vertices := g.Vertices()
		for _, s := range vertices {
			dist, _, err := dijkstra.Distances(g, s)
			require.NoError(t, err)

			for _, tgt := range vertices {
				res, err := dijkstra.ShortestPath(g, s, tgt)
				if math.IsInf(dist[tgt], 1) {
					require.ErrorIs(t, err, dijkstra.ErrNoPath)
					continue
				}
				require.NoError(t, err)

				// Early exit agrees with the exhaustive table.
				assert.InDelta(t, dist[tgt], res.Distance, epsilon)

				// Path weight sum equals distance.
				legs, err := res.Legs(g)
				require.NoError(t, err)
				sum := 0.0
				for _, l := range legs {
					sum += l.Weight
				}
				assert.InDelta(t, res.Distance, sum, epsilon)
				assert.Equal(t, s, res.Path[0])
				assert.Equal(t, tgt, res.Path[len(res.Path)-1])

				// Undirected symmetry.
				back, err := dijkstra.ShortestPath(g, tgt, s)
				require.NoError(t, err)
				assert.InDelta(t, res.Distance, back.Distance, epsilon)
			}
		}
	}
}

// ------------------------------------------------------------------------
// 7. Logging
// ------------------------------------------------------------------------

func TestShortestPath_Logger(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "dijkstra-test",
		Level:  hclog.Trace,
		Output: &buf,
	})
	_, err := dijkstra.ShortestPath(g, "A", "B", dijkstra.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "settled")
	assert.Contains(t, buf.String(), "shortest path")

	// nil logger is ignored.
	_, err = dijkstra.ShortestPath(g, "A", "B", dijkstra.WithLogger(nil))
	require.NoError(t, err)
}

func TestShortestPath_ErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(dijkstra.ErrNoPath, dijkstra.ErrVertexNotFound))
	assert.False(t, errors.Is(dijkstra.ErrVertexNotFound, dijkstra.ErrNoPath))
}
