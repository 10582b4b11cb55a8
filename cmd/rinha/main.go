package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "rinha-go 0.1.0"

var rootCmd = &cobra.Command{
	Use:   "rinha",
	Short: "Tree-walking interpreter for the rinha language",
	Long: `rinha evaluates programs for the rinha expression language, supplied
as JSON-encoded syntax trees produced by an external parser.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the interpreter version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(os.Stdout, version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
