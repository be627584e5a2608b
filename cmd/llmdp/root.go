package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "llmdp",
		Short: "llmdp - collect repository quality facts for contract evaluation",
		Long: `llmdp runs a language's quality checks (format, lint, tests, build,
typecheck, dependency audit) against a repository, records each outcome as
a boolean fact and hands the facts file to the contract evaluator.

The evaluator's exit status becomes llmdp's exit status. Usage and
operational errors exit with status 3.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newLanguagesCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
