package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/routegraph/bfs"
)

func newComponentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List groups of locations that are reachable from each other",
		Long: `List groups of locations that are reachable from each other.

Routes exist only between locations of the same group.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for i, comp := range bfs.Components(a.graph) {
				if _, err := fmt.Fprintf(w, "%d: %s\n", i+1, strings.Join(comp, ", ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
