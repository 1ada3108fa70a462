package commands

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/routegraph/bfs"
	"github.com/katalvlaran/routegraph/core"
	"github.com/katalvlaran/routegraph/dijkstra"
)

// ErrUnknownLocation is returned when a route endpoint is not in the network.
var ErrUnknownLocation = errors.New("unknown location")

type routeOptions struct {
	legs        bool
	hops        bool
	maxDistance float64
}

func newRouteCmd(a *app) *cobra.Command {
	var o routeOptions

	cmd := &cobra.Command{
		Use:   "route <from> <to>",
		Short: "Print the shortest route between two locations",
		Long: `Print the shortest route between two locations and its total distance.

If the locations are not connected the command reports that no valid
route exists. Unknown location names are an error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.route(cmd.OutOrStdout(), args[0], args[1], o)
		},
	}

	cmd.Flags().BoolVar(&o.legs, "legs", false, "print every leg of the route")
	cmd.Flags().BoolVar(&o.hops, "hops", false, "minimize the number of roads instead of the distance")
	cmd.Flags().Float64Var(&o.maxDistance, "max-distance", 0, "ignore routes longer than this (0 = no limit)")

	return cmd
}

func (a *app) route(w io.Writer, from, to string, o routeOptions) error {
	var (
		res *dijkstra.Result
		err error
	)
	if o.hops {
		res, err = a.fewestHops(from, to)
	} else {
		opts := []dijkstra.Option{dijkstra.WithLogger(a.logger.Named("dijkstra"))}
		if o.maxDistance != 0 {
			opts = append(opts, dijkstra.WithMaxDistance(o.maxDistance))
		}
		res, err = dijkstra.ShortestPath(a.graph, from, to, opts...)
	}

	switch {
	case errors.Is(err, dijkstra.ErrNoPath), errors.Is(err, bfs.ErrNoPath):
		a.logger.Info("no route", "from", from, "to", to)
		_, err = fmt.Fprintf(w, "No valid route between %s and %s.\n", from, to)
		return err
	case errors.Is(err, core.ErrVertexNotFound), errors.Is(err, bfs.ErrStartVertexNotFound):
		return fmt.Errorf("%w: %s; known locations: %s",
			ErrUnknownLocation, missing(a.graph, from, to), strings.Join(a.graph.Vertices(), ", "))
	case err != nil:
		return err
	}

	style := lipgloss.NewRenderer(w).NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	if _, err = fmt.Fprintf(w, "The shortest distance between %s and %s is %s %s.\nSuggested route: %s\n",
		from, to, formatDistance(res.Distance), a.net.Unit, style.Render(strings.Join(res.Path, " -> "))); err != nil {
		return err
	}
	if !o.legs {
		return nil
	}

	legs, err := res.Legs(a.graph)
	if err != nil {
		return err
	}
	for i, l := range legs {
		if _, err = fmt.Fprintf(w, "  %d. %s -> %s: %s %s\n", i+1, l.From, l.To, formatDistance(l.Weight), a.net.Unit); err != nil {
			return err
		}
	}

	return nil
}

// fewestHops routes with BFS and reports the distance along that route.
func (a *app) fewestHops(from, to string) (*dijkstra.Result, error) {
	if !a.graph.HasVertex(to) {
		return nil, fmt.Errorf("%w: %q", core.ErrVertexNotFound, to)
	}
	tree, err := bfs.BFS(a.graph, from)
	if err != nil {
		return nil, err
	}
	path, err := tree.PathTo(to)
	if err != nil {
		return nil, err
	}
	res := &dijkstra.Result{Source: from, Target: to, Path: path}
	legs, err := res.Legs(a.graph)
	if err != nil {
		return nil, err
	}
	for _, l := range legs {
		res.Distance += l.Weight
	}

	return res, nil
}

// missing names the endpoints absent from g.
func missing(g *core.Graph, ids ...string) string {
	var out []string
	for _, id := range ids {
		if !g.HasVertex(id) {
			out = append(out, strconv.Quote(id))
		}
	}

	return strings.Join(out, ", ")
}

// formatDistance rounds to two decimals and drops trailing zeros.
func formatDistance(d float64) string {
	return strconv.FormatFloat(math.Round(d*100)/100, 'f', -1, 64)
}
