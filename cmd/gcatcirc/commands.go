package main

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	flagSequence    string
	flagTupleLength int
	flagFile        string
	flagID          string
	flagVerbose     bool

	flagComponent int
	flagCycles    bool
	flagLongest   bool
	flagPaths     bool

	flagShiftBy int

	log hclog.Logger

	rootCmd = &cobra.Command{
		Use:   "gcatcirc",
		Short: "Analyze decodability and circularity properties of tuple codes",
		Long: `gcatcirc inspects codes built from fixed alphabets: whether every
message decodes uniquely, whether the code is circular, comma free or
strongly comma free, and how many concatenated words an ambiguous
circular reading needs.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := hclog.Warn
			if flagVerbose {
				level = hclog.Debug
			}
			log = hclog.New(&hclog.LoggerOptions{
				Name:   "gcatcirc",
				Level:  level,
				Output: os.Stderr,
			})
		},
	}

	analyzeCmd = &cobra.Command{
		Use:   "analyze [words...]",
		Short: "Report every decodability and circularity property of a code",
		RunE:  runAnalyze, // Defined in cmd_analyze.go
	}

	graphCmd = &cobra.Command{
		Use:   "graph [words...]",
		Short: "Print the split graph of a code, optionally filtered",
		RunE:  runGraph, // Defined in cmd_graph.go
	}

	shiftCmd = &cobra.Command{
		Use:   "shift [words...]",
		Short: "Print the code with every word rotated leftwards",
		RunE:  runShift, // Defined in cmd_shift.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSequence, "sequence", "",
		"read the code from a symbol sequence instead of word arguments")
	rootCmd.PersistentFlags().IntVar(&flagTupleLength, "tuple-length", 0,
		"tuple length used to slice --sequence")
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "",
		"read the code from a YAML file")
	rootCmd.PersistentFlags().StringVar(&flagID, "id", "",
		"identifier attached to the code")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable debug diagnostics")

	graphCmd.Flags().IntVar(&flagComponent, "component", 0,
		"restrict to edges whose prefix or suffix has exactly this length")
	graphCmd.Flags().BoolVar(&flagCycles, "cycles", false,
		"print the subgraph spanned by all cycles")
	graphCmd.Flags().BoolVar(&flagLongest, "longest", false,
		"print the subgraph spanned by all longest paths")
	graphCmd.Flags().BoolVar(&flagPaths, "paths", false,
		"print vertex label paths instead of edges")

	shiftCmd.Flags().IntVar(&flagShiftBy, "by", 1,
		"number of positions each word is rotated")

	rootCmd.AddCommand(analyzeCmd, graphCmd, shiftCmd)
}
