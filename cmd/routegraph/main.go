// Package main provides the routegraph CLI.
//
// Usage:
//
//	routegraph [flags] <command> [args]
//
// Commands:
//
//	route <from> <to>  - shortest route and its total distance
//	nodes              - list known locations
//	components         - list groups of mutually reachable locations
//	backbone           - list the cheapest roads that keep every route possible
//
// Configuration:
//
//	--network / ROUTEGRAPH_NETWORK      YAML network document (default: built-in Coclé network)
//	--log-level / ROUTEGRAPH_LOG_LEVEL  trace, debug, info, warn, error, off
//	--strict                            reject links to locations not listed under nodes
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/routegraph/cmd/routegraph/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
