package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sortbench",
	Short: "Benchmark instrumented insertion sort across input distributions",
	Long: `sortbench measures insertion sort (optimized binary-search variant and
the traditional linear-shift variant) across synthetic input distributions,
counting comparisons, swaps and array accesses, and emits one CSV row per
benchmark run.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
