// File: types.go
// Role: sentinel errors, functional options and the Result type.

package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/routegraph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound is core.ErrVertexNotFound; a query endpoint is absent.
	// The wrapped message names the missing ID.
	ErrVertexNotFound = core.ErrVertexNotFound

	// ErrNoPath indicates that source and target lie in different connected
	// components (or are separated by MaxDistance / impassable edges).
	// It is an expected outcome, not a failure of the engine.
	ErrNoPath = errors.New("dijkstra: no path between vertices")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrPathMismatch indicates a Result no longer matches the graph it is
	// being expanded against (an edge along the path is missing).
	ErrPathMismatch = errors.New("dijkstra: path does not match graph")
)

// Options configures a query.
//
// MaxDistance      – vertices whose distance would exceed this value are not settled.
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
// Logger           – receives Trace-level settle/relax events.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
	Logger           hclog.Logger

	// err records the first invalid option; surfaced as ErrOptionViolation.
	err error
}

// Option represents a functional option for configuring a query.
type Option func(*Options)

// WithMaxDistance caps exploration at d. d must be ≥ 0 and not NaN.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 || math.IsNaN(d) {
			o.setErr(fmt.Errorf("%w: MaxDistance must be non-negative (%v)", ErrOptionViolation, d))
			return
		}
		o.MaxDistance = d
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ t as impassable. t must be > 0.
func WithInfEdgeThreshold(t float64) Option {
	return func(o *Options) {
		if !(t > 0) {
			o.setErr(fmt.Errorf("%w: InfEdgeThreshold must be positive (%v)", ErrOptionViolation, t))
			return
		}
		o.InfEdgeThreshold = t
	}
}

// WithLogger sets the logger used for Trace-level diagnostics. nil is ignored.
func WithLogger(l hclog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func (o *Options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}

// DefaultOptions returns Options with no distance cap, no impassable edges
// and a null logger.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Logger:           hclog.NewNullLogger(),
	}
}

// Result is a successful shortest-path answer.
type Result struct {
	Source   string
	Target   string
	Distance float64  // total weight of Path
	Path     []string // Source … Target, length ≥ 1
}

// Hops returns the number of edges along the path.
func (r *Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// String renders "A -> B -> C (17.5)".
func (r *Result) String() string {
	return fmt.Sprintf("%s (%g)", strings.Join(r.Path, " -> "), r.Distance)
}

// Legs expands the path into its edges, in travel order, with weights read
// from g. Returns ErrPathMismatch if g lacks an edge of the path.
func (r *Result) Legs(g *core.Graph) ([]core.Edge, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	legs := make([]core.Edge, 0, r.Hops())
	for i := 0; i+1 < len(r.Path); i++ {
		from, to := r.Path[i], r.Path[i+1]
		w, ok := g.Weight(from, to)
		if !ok {
			return nil, fmt.Errorf("%w: %q–%q", ErrPathMismatch, from, to)
		}
		legs = append(legs, core.Edge{From: from, To: to, Weight: w})
	}

	return legs, nil
}
