// dsspbatch converts a directory of PDB structure files into DSSP
// secondary-structure annotation files by driving the external assignment
// tool in concurrent, resumable batches.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/structbio/dsspbatch/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "dsspbatch",
	Short: "Batch secondary-structure assignment for PDB files",
	Long: "dsspbatch runs the external assignment tool once per PDB file,\n" +
		"bounded by a worker pool, and skips files whose DSSP artifact already\n" +
		"exists so interrupted runs can simply be rerun.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = version.String()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
