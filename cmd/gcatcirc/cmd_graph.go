package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/informatik-mannheim/gcatcirc/circular"
	"github.com/informatik-mannheim/gcatcirc/code"
)

// runGraph is the CLI handler for "gcatcirc graph". Without filters it
// prints vertices and edges of the full split graph; --cycles, --longest
// and --component narrow the view, --paths switches from edges to vertex
// label paths.
func runGraph(cmd *cobra.Command, args []string) error {
	if flagCycles && flagLongest {
		return errors.New("gcatcirc: --cycles and --longest are mutually exclusive")
	}

	c, err := loadCode(args)
	if err != nil {
		return err
	}
	log.Debug("code loaded", "id", c.ID, "words", len(c.Words()))

	if flagPaths {
		return printPaths(c)
	}

	byComponent := cmd.Flags().Changed("component")
	switch {
	case flagCycles && byComponent:
		printEdges(circular.ComponentCyclicEdges(c, flagComponent))
	case flagCycles:
		printEdges(circular.CyclicSubgraphEdges(c))
	case flagLongest && byComponent:
		printEdges(circular.ComponentLongestPathEdges(c, flagComponent))
	case flagLongest:
		printEdges(circular.LongestPathSubgraphEdges(c))
	case byComponent:
		printEdges(circular.ComponentEdges(c, flagComponent))
	default:
		fmt.Println("vertices:", strings.Join(circular.GraphVertices(c), ", "))
		printEdges(circular.GraphEdges(c))
	}

	return nil
}

// printPaths prints cycles with --cycles, longest paths otherwise.
func printPaths(c *code.Code) error {
	paths := circular.AllLongestPaths(c)
	if flagCycles {
		paths = circular.AllCyclicPaths(c)
	}
	for _, p := range paths {
		fmt.Println(strings.Join(p, " -> "))
	}

	return nil
}

func printEdges(edges []string) {
	for _, e := range edges {
		fmt.Println(e)
	}
}
