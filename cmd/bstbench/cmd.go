package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/npillmayer/orderedtree"
	"github.com/npillmayer/orderedtree/internal/bench"
	"github.com/npillmayer/orderedtree/wordlist"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type baseConfiguration struct {
	traceLevel string
	file       string
}

func newBaseCmd() *cobra.Command {
	config := &baseConfiguration{}
	baseCmd := &cobra.Command{
		Use:           "bstbench",
		Short:         "Benchmark and inspect ordered trees built from word lists",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.initTracing()
		},
	}
	baseCmd.PersistentFlags().StringVar(&config.traceLevel, "trace", "error", "trace level (error, info, debug)")
	baseCmd.PersistentFlags().StringVarP(&config.file, "file", "f", "", "newline-delimited word list")
	baseCmd.AddCommand(newRunCmd(config))
	baseCmd.AddCommand(newPrintCmd(config))
	return baseCmd
}

func (config *baseConfiguration) initTracing() error {
	var level tracing.TraceLevel
	switch config.traceLevel {
	case "error":
		level = tracing.LevelError
	case "info":
		level = tracing.LevelInfo
	case "debug":
		level = tracing.LevelDebug
	default:
		return fmt.Errorf("unknown trace level %q", config.traceLevel)
	}
	tracer := gologadapter.New()
	tracer.SetTraceLevel(level)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return tracer
	}))
	return nil
}

func (config *baseConfiguration) loadWords(cmd *cobra.Command) ([]string, error) {
	if config.file == "" {
		return nil, fmt.Errorf("no word list given, use --file")
	}
	return wordlist.Load(cmd.Context(), config.file)
}

func newRunCmd(config *baseConfiguration) *cobra.Command {
	var samples int
	var seed int64
	var noColor bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time random word lookups in a list and in differently built trees",
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := config.loadWords(cmd)
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			report, err := bench.Run(words, samples, rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}
			style := styleFor(cmd.OutOrStdout())
			style.Color = style.Color && !noColor
			return report.Fprint(cmd.OutOrStdout(), style)
		},
	}
	cmd.Flags().IntVarP(&samples, "samples", "n", 1000, "number of random words to look up")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 means seed from clock)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}

func newPrintCmd(config *baseConfiguration) *cobra.Command {
	var rebalance, dot bool
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the tree built from a word list",
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := config.loadWords(cmd)
			if err != nil {
				return err
			}
			tree := orderedtree.New[string]()
			for _, w := range words {
				if err := tree.Add(w); err != nil {
					return err
				}
			}
			if rebalance {
				tree.Rebalance()
			}
			if dot {
				return orderedtree.Tree2Dot(tree, cmd.OutOrStdout())
			}
			_, err = io.WriteString(cmd.OutOrStdout(), tree.String())
			return err
		},
	}
	cmd.Flags().BoolVar(&rebalance, "rebalance", false, "rebalance the tree before printing")
	cmd.Flags().BoolVar(&dot, "dot", false, "output Graphviz DOT instead of a drawing")
	return cmd
}

// styleFor creates a report style from the properties of w. If w is an
// interactive terminal, colors are enabled and the line width is taken from
// the terminal's width.
func styleFor(w io.Writer) bench.Style {
	style := bench.Style{LineWidth: 80}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return style
	}
	style.Color = true
	if width, _, err := term.GetSize(int(f.Fd())); err == nil {
		if width > 30 {
			style.LineWidth = width - 5
		} else {
			style.LineWidth = max(width, 10)
		}
	}
	return style
}
