package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xiam/parsec/calc"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval [expression]",
		Short: "Evaluate an integer arithmetic expression",
		Long: `Evaluate an integer arithmetic expression and print the result.

If no expression is provided, one is read from stdin.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string

			if len(args) == 0 {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				input = string(data)
			} else {
				input = strings.Join(args, " ")
			}

			n, err := calc.Eval(input)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}
