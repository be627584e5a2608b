package main

import (
	"github.com/llmdp/llmdp/internal/orchestration"
	"github.com/spf13/cobra"
)

var (
	repoPath     string
	languageID   string
	contractPath string
	factsPath    string
	junitPath    string
	showSummary  bool
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Collect facts for a repository and evaluate them against a contract",
		Long: `Collect facts for a repository and evaluate them against a contract.

The checks for --language run in the repository with their output passed
through. The resulting facts are written to --write-facts (default:
<repo>/.llmdp_facts.json, or facts.file from .llmdp.yaml) and the evaluator
is invoked as:

  llmc --contract <contract> --output <facts file>

.llmdp.yaml is looked up from --repo upwards, stopping at the first
directory containing .git. If a check cannot be started, nothing is written
and the evaluator is not invoked.`,
		Args: cobra.NoArgs,
		RunE: runCommandE,
	}

	cmd.Flags().StringVar(&repoPath, "repo", "", "Repository to check (required)")
	cmd.Flags().StringVar(&languageID, "language", "", "Repository language: node or rust (required)")
	cmd.Flags().StringVar(&contractPath, "contract", "", "Contract file passed to the evaluator (required)")
	cmd.Flags().StringVar(&factsPath, "write-facts", "", "Facts file path (default: <repo>/.llmdp_facts.json)")
	cmd.Flags().StringVar(&junitPath, "junit", "", "Also write the facts as a JUnit XML report")
	cmd.Flags().BoolVar(&showSummary, "summary", false, "Print a facts summary table to stderr")

	for _, name := range []string{"repo", "language", "contract"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runCommandE(cmd *cobra.Command, args []string) error {
	runner := orchestration.NewRunner(
		orchestration.WithStreams(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()),
	)
	if showSummary {
		runner.OnProgress(newSummaryListener(cmd.ErrOrStderr()))
	}

	_, err := runner.Run(cmd.Context(), orchestration.Options{
		Repo:      repoPath,
		Language:  languageID,
		Contract:  contractPath,
		FactsPath: factsPath,
		JUnitPath: junitPath,
	})
	return err
}
