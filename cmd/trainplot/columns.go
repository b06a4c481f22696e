package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/trainplot-go/pkg/trainplot/parser"
)

func newColumnsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "columns [results.csv]",
		Short: "List the header columns of a metric log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			headers, err := parser.Headers(args[0])
			if err != nil {
				return err
			}
			for _, h := range headers {
				fmt.Fprintln(cmd.OutOrStdout(), h)
			}
			return nil
		},
	}
}
