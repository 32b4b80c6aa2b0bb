// Package cmd implements the timon CLI: a cobra command tree for running,
// inspecting, and interactively exploring programs: root command dispatch,
// eval-style file/stdin reading, flag wiring.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	tconfig "github.com/spietras/timon-interpreter/cmd/timon/config"
	"github.com/spietras/timon-interpreter/internal/parser"
)

var stage string

var rootCmd = &cobra.Command{
	Use:   "timon [path]",
	Short: "timon - an interpreter for a calendar-arithmetic scripting language",
	Long: `timon runs programs written in a small imperative language specialized
in calendar and temporal arithmetic over integers, strings, dates, times,
datetimes, and timedeltas.

Examples:
  timon program.tn                 Run a program to completion
  timon program.tn --stage lexer   Print the token stream and stop
  timon program.tn --stage parser  Print the syntax tree and stop
  cat program.tn | timon           Run a program read from stdin
  timon repl                       Start an interactive session
  timon docs                       Show the language reference`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStage(cmd, args)
	},
}

var dumpConfig bool

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&stage, "stage", "execution", "pipeline stage to run and report: lexer, parser, or execution")
	rootCmd.PersistentFlags().BoolVar(&dumpConfig, "dump-config", false, "print the effective configuration as YAML and exit")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := tconfig.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if cfg.Security.MaxNestingDepth > 0 {
			parser.MaxNestingDepth = cfg.Security.MaxNestingDepth
		}
		if cfg.Security.MaxTokenCount > 0 {
			parser.MaxTokenCount = cfg.Security.MaxTokenCount
		}
		if dumpConfig {
			if err := printConfig(); err != nil {
				return err
			}
			os.Exit(0)
		}
		return nil
	}
}

func readInput(args []string) (name, input string, err error) {
	if len(args) > 0 {
		name = args[0]
		if err := validatePath(name); err != nil {
			return "", "", fmt.Errorf("invalid file: %w", err)
		}
		b, err := os.ReadFile(name)
		if err != nil {
			return "", "", fmt.Errorf("read file: %w", err)
		}
		return name, string(b), nil
	}

	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("read stdin: %w", err)
	}
	return "stdin", string(b), nil
}
