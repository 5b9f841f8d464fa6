// Command noodle is the Bowl/Noodle language's CLI and REPL entry
// point: a cobra root command handles argument parsing and dispatches
// to either a single file run or an interactive REPL.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"noodle/config"
	"noodle/internal/buildinfo"
	"noodle/internal/telemetry"
	"noodle/run"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var prompt string
	var debug bool

	cmd := &cobra.Command{
		Use:     buildinfo.Name + " [file]",
		Short:   "Run or interactively evaluate Bowl/Noodle programs",
		Version: buildinfo.Version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := telemetry.New(debug)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			cfg := &config.Config{}
			cfg.SetPrompt(prompt)
			cfg.SetDebug(debug)

			if len(args) == 1 {
				return runFile(cmd, cfg, log, args[0])
			}
			return runREPL(cmd, cfg, log)
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", ">>> ", "REPL prompt string")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable verbose logging of evaluator/scheduler diagnostics")
	return cmd
}

func runFile(cmd *cobra.Command, cfg *config.Config, log *zap.Logger, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cfg.SetOrigin(path)
	cfg.SetInteractive(false)
	return run.File(context.Background(), cfg, log, string(source), os.Stdin, cmd.OutOrStdout())
}

func runREPL(cmd *cobra.Command, cfg *config.Config, log *zap.Logger) error {
	cfg.SetOrigin("<repl>")
	cfg.SetInteractive(term.IsTerminal(int(os.Stdin.Fd())))
	run.REPL(context.Background(), cfg, log, os.Stdin, os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr())
	return nil
}
