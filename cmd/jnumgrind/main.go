// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Program jnumgrind parses each argument as a JSON number, verifies
// the parse is independent of chunk boundaries, and prints the
// outcome.
package main

import (
	"fmt"
	"os"

	"github.com/creachadair/jnum"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "jnumgrind number...",
		Short: "Parse JSON numbers and verify split consistency",
		Long: `Parse each argument as a JSON number and print its normalized text.

Each argument is re-parsed across every possible two-way chunk split,
and any disagreement with the whole-input parse is reported as an
error. An argument that is not a valid number prints an error triple
instead of a number; that is an outcome, not a failure.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				res, err := jnum.Grind(arg)
				if err != nil {
					return fmt.Errorf("grind %q: %w", arg, err)
				}
				fmt.Printf("%s->%v\n", arg, res)
			}
			return nil
		},
	}
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
