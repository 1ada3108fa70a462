// File: types.go
// Role: sentinel errors and the Forest result.

package mst

import (
	"errors"

	"github.com/katalvlaran/routegraph/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("mst: graph is nil")

// Forest is a minimum spanning forest.
type Forest struct {
	// Edges in the order Kruskal accepted them (ascending weight).
	Edges []core.Edge

	// Weight is the sum of Edges' weights.
	Weight float64

	// Trees is the number of trees, one per connected component.
	// Isolated vertices count as single-vertex trees.
	Trees int
}

// Spanning reports whether the forest is a single tree, i.e. the graph was
// connected. An empty graph has no tree and is not spanning.
func (f *Forest) Spanning() bool {
	return f.Trees == 1
}
