package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/routegraph/mst"
)

func newBackboneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "backbone",
		Short: "List the cheapest set of roads that keeps every route possible",
		Long: `List the minimum spanning forest of the network: the cheapest set of roads
that still connects every pair of locations that are connected today.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := mst.Kruskal(a.graph)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, e := range f.Edges {
				if _, err = fmt.Fprintf(w, "%s - %s: %s %s\n", e.From, e.To, formatDistance(e.Weight), a.net.Unit); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintf(w, "Total: %s %s in %d tree(s).\n", formatDistance(f.Weight), a.net.Unit, f.Trees)
			return err
		},
	}
}
