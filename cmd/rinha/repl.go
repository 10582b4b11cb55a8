package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"rinha/interpreter-go/pkg/ast"
	"rinha/interpreter-go/pkg/interpreter"
	"rinha/interpreter-go/pkg/runtime"
)

const (
	replPrompt  = "rinha> "
	historyFile = ".rinha_history"
)

var replNoFibFastPath bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate JSON-encoded terms interactively",
	Long: `Read one JSON-encoded term per line and evaluate it against a
persistent top-level environment. Let bindings persist across lines, so a
term like {"kind":"Let",...} can set up definitions for later entries.`,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runRepl())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replNoFibFastPath, "no-fib-fast-path", false,
		"Disable the native Fibonacci shortcut for fib(n) call sites")
}

func runRepl() int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	in := interpreter.New(interpreter.WithFibFastPath(!replNoFibFastPath))
	env := runtime.NewEnvironment(nil)

	for {
		line, err := ln.Prompt(replPrompt)
		if err != nil {
			fmt.Fprintln(os.Stdout)
			return 0
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if strings.EqualFold(trimmed, ":quit") {
				return 0
			}
			fmt.Fprintln(os.Stdout, "unknown command. Type :quit to exit.")
			continue
		}

		term, err := ast.DecodeTerm([]byte(trimmed))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		val, err := in.Evaluate(term, env)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if _, ok := val.(runtime.VoidValue); !ok {
			fmt.Fprintln(os.Stdout, runtime.Display(val))
		}
		ln.AppendHistory(trimmed)
	}
}
