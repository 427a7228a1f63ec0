// Command njoin is a Cobra CLI wrapping the nj driver: it reads a PHYLIP
// distance matrix, runs the selected Neighbor-Joining strategy, and writes
// the resulting tree as Newick. Grounded on
// TobiSchelling-AICrawler/cmd/aicrawler/main.go's root command shape
// (PersistentPreRunE config loading, -v/--verbose) and
// pythseq-gotree/cmd/classical.go's read-input/run/write-output RunE shape.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/nj-go/njoin/config"
)

var (
	verbose    bool
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "njoin",
	Short: "Reconstruct phylogenetic trees with Neighbor-Joining",
	Long:  "njoin reconstructs an unrooted, weighted, binary phylogenetic tree from a pairwise distance matrix using the Neighbor-Joining method.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetFlags(log.LstdFlags | log.Lshortfile)
		} else {
			log.SetFlags(log.LstdFlags)
		}

		path, err := config.ResolveConfigPath(configPath)
		if err != nil {
			if configPath != "" {
				// The user named a config explicitly; a failure to resolve
				// it is their error to fix, not ours to paper over.
				return err
			}
			// No config file on disk and none named explicitly: fall back
			// to the embedded default rather than failing every run.
			cfg, err = config.Default()

			return err
		}
		cfg, err = config.Load(path)

		return err
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")

	rootCmd.AddCommand(computeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
