/*
Command avlexp runs re-balancing experiments on sequences and renders
sequence trees.

	avlexp run [plan.yaml]             run an experiment plan (default plan if omitted)
	avlexp dump --n 20 [--dot]         print the tree of a random sequence
	avlexp wrap --width 60 file.txt    re-wrap a text (or HTML) file by words

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"

	"github.com/npillmayer/avlseq"
	"github.com/npillmayer/avlseq/display"
	"github.com/npillmayer/avlseq/experiment"
	"github.com/npillmayer/avlseq/html"
	"github.com/npillmayer/avlseq/textfile"
	"github.com/npillmayer/avlseq/words"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'avlseq'
func tracer() tracing.Trace {
	return tracing.Select("avlseq")
}

func main() {
	var traceLevel string

	var rootCmd = &cobra.Command{
		Use:   "avlexp",
		Short: "Experiments with AVL-balanced sequences",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupTracing(traceLevel)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "Error", "trace level (Debug, Info, Error)")

	var cmdRun = &cobra.Command{
		Use:   "run [plan.yaml]",
		Short: "Run an experiment plan and print the results",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := experiment.DefaultPlan
			if len(args) == 1 {
				p, err := experiment.LoadPlan(args[0])
				if err != nil {
					return err
				}
				plan = *p
			}
			asYAML, _ := cmd.Flags().GetBool("yaml")
			quiet, _ := cmd.Flags().GetBool("quiet")
			return runPlan(cmd.Context(), &plan, asYAML, quiet)
		},
	}
	cmdRun.Flags().Bool("yaml", false, "print results as YAML")
	cmdRun.Flags().BoolP("quiet", "q", false, "do not show a progress bar")

	var cmdDump = &cobra.Command{
		Use:   "dump",
		Short: "Print the tree of a sequence built by random insertions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("n")
			seed, _ := cmd.Flags().GetUint64("seed")
			dot, _ := cmd.Flags().GetBool("dot")
			rnd := rand.New(rand.NewPCG(seed, seed+1))
			seq := avlseq.New[int]()
			for i := range n {
				if _, err := seq.Insert(rnd.IntN(i+1), i); err != nil {
					return err
				}
			}
			if dot {
				return avlseq.Seq2Dot(seq, os.Stdout)
			}
			return display.Print(seq, os.Stdout, nil)
		},
	}
	cmdDump.Flags().Int("n", 20, "number of items")
	cmdDump.Flags().Uint64("seed", 1, "random seed")
	cmdDump.Flags().Bool("dot", false, "output Graphviz DOT instead of a console tree")

	var cmdWrap = &cobra.Command{
		Use:   "wrap FILE",
		Short: "Re-wrap the text of a file to a given line width",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, _ := cmd.Flags().GetInt("width")
			isHTML, _ := cmd.Flags().GetBool("html")
			return wrapFile(args[0], width, isHTML)
		},
	}
	cmdWrap.Flags().IntP("width", "w", 60, "line width in ‘en’s")
	cmdWrap.Flags().Bool("html", false, "treat input as an HTML fragment")

	rootCmd.AddCommand(cmdRun, cmdDump, cmdWrap)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runPlan(ctx context.Context, plan *experiment.Plan, asYAML, quiet bool) error {
	runner, err := experiment.NewRunner(plan)
	if err != nil {
		return err
	}
	results, err := runner.Subscribe(ctx)
	if err != nil {
		return err
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		var bar *progressbar.ProgressBar
		if !quiet {
			bar = progressbar.NewOptions(runner.Steps(),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("running "+plan.Name),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "=",
					SaucerHead:    ">",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
			)
		}
		for res := range results {
			if bar != nil {
				bar.Describe(fmt.Sprintf("%s n=%d", res.Operation, res.N))
				bar.Add(1)
			}
		}
		if bar != nil {
			bar.Finish()
			fmt.Fprintln(os.Stderr)
		}
	}()
	all, err := runner.Run(ctx)
	<-done
	if asYAML {
		out, yerr := yaml.Marshal(all)
		if yerr != nil {
			return yerr
		}
		os.Stdout.Write(out)
	} else {
		for _, res := range all {
			fmt.Println(res)
		}
	}
	return err
}

func wrapFile(name string, width int, isHTML bool) error {
	var text string
	if isHTML {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		fragments, err := html.TextFromHTML(f)
		if err != nil {
			return err
		}
		text = strings.Join(fragments.ToSlice(), "")
	} else {
		lines, err := textfile.Load(name, 0)
		if err != nil {
			return err
		}
		text = strings.Join(lines.ToSlice(), " ")
	}
	text = strings.Join(strings.Fields(text), " ")
	segments := words.FromString(text)
	tracer().Infof("wrapping %d segments to width %d", segments.Len(), width)
	for _, line := range words.Lines(segments, width, nil) {
		fmt.Println(line)
	}
	return nil
}

// --- Tracing ---------------------------------------------------------------

// traceConf is a minimal configuration for setting up tracing.
type traceConf map[string]string

func (c traceConf) InitDefaults() {}

func (c traceConf) IsSet(key string) bool {
	_, ok := c[key]
	return ok
}

func (c traceConf) GetString(key string) string {
	return c[key]
}

func (c traceConf) GetInt(key string) int {
	return 0
}

func (c traceConf) GetBool(key string) bool {
	return c[key] == "true"
}

func (c traceConf) IsInteractive() bool {
	return false
}

// setupTracing routes all tracing to the Go standard logger.
func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := traceConf{
		"tracing.adapter":   "go",
		"tracelevel.root":   level,
		"tracelevel.avlseq": level,
	}
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
