package main

import (
	"github.com/spf13/cobra"
)

var (
	graphFull      bool
	graphWithNodes bool
	graphWithEdges bool
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Build the dependency graph and print its statistics",
	Long: `Build the dependency graph from the scanner output.

By default the rendering graph is built: self-edges are dropped and node
creation stops at graph.nodeCap. --full builds the complete graph used by
impact analysis and context discovery.

Examples:
  depscope graph
  depscope graph --full --nodes --format human
  depscope graph --input deps.json.zst --edges`,
	Args: cobra.NoArgs,
	RunE: runGraph,
}

func init() {
	graphCmd.Flags().BoolVar(&graphFull, "full", false, "Build the full-fidelity graph (no cap, keeps self-edges)")
	graphCmd.Flags().BoolVar(&graphWithNodes, "nodes", false, "Include the node list")
	graphCmd.Flags().BoolVar(&graphWithEdges, "edges", false, "Include the edge list")
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	s, err := loadSession(!graphFull)
	if err != nil {
		return err
	}

	data := &GraphResponseCLI{
		Meta:  s.Graph.Meta,
		Stats: s.Stats(),
	}
	if graphWithNodes {
		data.Nodes = s.Graph.Nodes
	}
	if graphWithEdges {
		data.Edges = s.Graph.Edges
	}
	return printResponse(newResponse(s, data))
}
