package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/trainplot-go/pkg/trainplot/parser"
)

func newInspectCommand() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "inspect [workbook.xlsx]",
		Short: "List the native charts of an exported workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			charts, err := parser.ReadWorkbookCharts(args[0])
			if err != nil {
				return err
			}

			var data []byte
			if pretty {
				data, err = json.MarshalIndent(charts, "", "  ")
			} else {
				data, err = json.Marshal(charts)
			}
			if err != nil {
				return fmt.Errorf("failed to serialize charts: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}
