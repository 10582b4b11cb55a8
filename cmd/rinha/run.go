package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rinha/interpreter-go/pkg/ast"
	"rinha/interpreter-go/pkg/driver"
	"rinha/interpreter-go/pkg/interpreter"
)

// defaultProgramPath is the container contract: with no argument, run the
// program mounted at this path.
const defaultProgramPath = "/var/rinha/source.rinha.json"

var runNoFibFastPath bool

var runCmd = &cobra.Command{
	Use:   "run [file.json]",
	Short: "Evaluate a JSON-encoded rinha program",
	Long: `Evaluate a program document ({"name", "expression", "location"}) and
print its output. Pass "-" to read the document from stdin. With no
argument the default container path ` + defaultProgramPath + ` is used.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := defaultProgramPath
		if len(args) == 1 {
			path = args[0]
		}
		os.Exit(runProgram(path))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runNoFibFastPath, "no-fib-fast-path", false,
		"Disable the native Fibonacci shortcut for fib(n) call sites")
}

func runProgram(path string) int {
	var file *ast.File
	var err error
	if path == "-" {
		file, err = driver.ReadProgram(os.Stdin)
	} else {
		file, err = driver.LoadProgram(path)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	opts := driver.DefaultOptions()
	if path != "-" {
		opts, err = driver.LoadOptionsNear(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	fastPath := opts.FibFastPath && !runNoFibFastPath

	in := interpreter.New(interpreter.WithFibFastPath(fastPath))
	if _, err := in.EvaluateFile(file); err != nil {
		// <filename>:<start>:<end>: <message>
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
