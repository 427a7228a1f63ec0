package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nj-go/njoin/config"
	"github.com/nj-go/njoin/distmatrix"
	"github.com/nj-go/njoin/newick"
	"github.com/nj-go/njoin/nj"
)

var (
	inputPath   string
	outputPath  string
	strategyOpt string
	threadsOpt  int
	chunkOpt    int
	canonOpt    int
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Reconstruct a tree from a PHYLIP distance matrix",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, closeIn, err := openInput(inputPath)
		if err != nil {
			return err
		}
		defer closeIn()

		m, err := distmatrix.ParsePhylip(in)
		if err != nil {
			return fmt.Errorf("reading matrix: %w", err)
		}

		opts, err := resolveOptions()
		if err != nil {
			return err
		}

		log.Printf("running %s on %d taxa", opts.Strategy, m.N())
		start := time.Now()
		tree, err := nj.Run(m, opts)
		if err != nil {
			return fmt.Errorf("reconstructing tree: %w", err)
		}
		log.Printf("done in %s", time.Since(start))

		out, closeOut, err := openOutput(outputPath)
		if err != nil {
			return err
		}
		defer closeOut()

		if err := newick.Write(out, tree, nil); err != nil {
			return fmt.Errorf("writing tree: %w", err)
		}
		_, err = fmt.Fprintln(out)

		return err
	},
}

func init() {
	computeCmd.Flags().StringVarP(&inputPath, "input", "i", "", "PHYLIP distance matrix file (default stdin)")
	computeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Newick output file (default stdout)")
	computeCmd.Flags().StringVar(&strategyOpt, "strategy", "", "override config strategy (canonical|pruned|hybrid)")
	computeCmd.Flags().IntVar(&threadsOpt, "threads", 0, "override config thread count")
	computeCmd.Flags().IntVar(&chunkOpt, "chunk-size", 0, "override config chunk size")
	computeCmd.Flags().IntVar(&canonOpt, "canonical-iters", 0, "override config canonical_iters")
}

// resolveOptions translates the loaded config into nj.Options, applying any
// flags the caller set on top - per SPEC_FULL.md section 6b, CLI flags
// override config fields.
func resolveOptions() (nj.Options, error) {
	opts, err := cfg.ToOptions()
	if err != nil {
		return opts, err
	}

	if strategyOpt != "" {
		over, err := (&config.Config{Strategy: strategyOpt}).ToOptions()
		if err != nil {
			return opts, err
		}
		opts.Strategy = over.Strategy
	}
	if threadsOpt > 0 {
		opts.Threads = threadsOpt
	}
	if chunkOpt > 0 {
		opts.ChunkSize = chunkOpt
	}
	if canonOpt > 0 {
		opts.CanonicalIters = canonOpt
	}

	return opts, nil
}

func openInput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}

	return f, func() { f.Close() }, nil
}

func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output: %w", err)
	}

	return f, func() { f.Close() }, nil
}
