package main

import (
	"fmt"
	"strings"

	"github.com/llmdp/llmdp/internal/adapters"
	"github.com/spf13/cobra"
)

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages and the facts each can produce",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, lang := range adapters.Languages() {
				adapter, err := adapters.ForLanguage(string(lang), nil)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s  %s\n", padRight(string(lang), 10), strings.Join(adapter.Vocabulary(), ", ")) //nolint:errcheck
			}
			return nil
		},
	}
}
