/*
PURPOSE:
  Defines the 'workloads' subcommand.
  Lists what each subsystem's workload does, its size and score formula.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.NewSuite().Workloads()

USAGE:
  sysbench workloads
*/

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/daryltucker/sysbench/internal/engine"
)

var workloadsCmd = &cobra.Command{
	Use:   "workloads",
	Short: "List the benchmark workloads in execution order",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SUBSYSTEM\tWORKLOAD\tWORK\tSIZE\tSCORE")
		for _, w := range engine.NewSuite().Workloads() {
			info := w.Describe()
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", info.Subsystem, info.Name, info.Work, info.Size, info.Formula)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(workloadsCmd)
}
