// Package commands implements the routegraph command tree.
package commands

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/routegraph/cmd/routegraph/internal/config"
	"github.com/katalvlaran/routegraph/core"
	"github.com/katalvlaran/routegraph/network"
)

// app carries what every subcommand needs once the root has initialized.
type app struct {
	flags  config.Config
	logger hclog.Logger
	net    *network.Network
	graph  *core.Graph
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "routegraph",
		Short: "Shortest routes between named locations",
		Long: `routegraph - find the shortest route between two locations of a
weighted road network and report its total distance.

Without --network the built-in Coclé (Panama) network is used.

Examples:
  routegraph route Penonomé Antón
  routegraph route --legs Olá Natá
  routegraph -n roads.yaml components`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.flags.NetworkPath, "network", "n", "", "YAML network document (env "+config.EnvNetwork+")")
	pf.StringVar(&a.flags.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error, off (env "+config.EnvLogLevel+")")
	pf.BoolVar(&a.flags.Strict, "strict", false, "reject links whose endpoints are not listed under nodes")

	rootCmd.AddCommand(newRouteCmd(a), newNodesCmd(a), newComponentsCmd(a), newBackboneCmd(a))

	return rootCmd
}

// init resolves configuration, builds the logger and loads the network.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Resolve(a.flags)
	if err != nil {
		return err
	}
	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "routegraph",
		Level:  cfg.Level(),
		Output: cmd.ErrOrStderr(),
	})

	if cfg.NetworkPath == "" {
		a.net, err = network.Reference()
	} else {
		a.net, err = network.Load(cfg.NetworkPath)
	}
	if err != nil {
		return fmt.Errorf("load network: %w", err)
	}

	var opts []core.GraphOption
	if cfg.Strict {
		opts = append(opts, core.WithStrictVertices())
	}
	a.graph, err = a.net.Build(opts...)
	if err != nil {
		return fmt.Errorf("build network %q: %w", a.net.Name, err)
	}

	stats := a.graph.Stats()
	a.logger.Debug("network loaded",
		"name", a.net.Name,
		"source", sourceName(cfg.NetworkPath),
		"nodes", stats.VertexCount,
		"links", stats.EdgeCount,
		"isolated", stats.Isolated)

	return nil
}

func sourceName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
