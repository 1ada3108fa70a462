package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNodesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "nodes",
		Short: "List the locations of the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, id := range a.graph.Vertices() {
				d, err := a.graph.Degree(id)
				if err != nil {
					return err
				}
				if _, err = fmt.Fprintf(w, "%s\t%d\n", id, d); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
