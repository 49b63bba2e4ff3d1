package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tsinghua-fib-lab/taxregime-sim/task"
	"github.com/tsinghua-fib-lab/taxregime-sim/taxengine"
)

var computeOutput string

// computeCmd 计算一笔或多笔收入并输出明细
var computeCmd = &cobra.Command{
	Use:   "compute <income> [income...]",
	Short: "Compute tax for one or more gross annual incomes",
	Long: `Compute tax under both regimes for each gross annual income.

Incomes may use Indian or Western digit grouping and an optional currency
marker, e.g. 2000000, 20,00,000, "₹ 20,00,000" or "Rs. 2000000".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompute,
}

func init() {
	computeCmd.Flags().StringVarP(&computeOutput, "output", "o", "table", "output format: table, yaml or json")
}

func runCompute(cmd *cobra.Command, args []string) error {
	results, err := taxengine.ComputeAll(cmd.Context(), args, runtimeConfig.C.Workers)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	switch computeOutput {
	case "table":
		for _, c := range results {
			renderComputation(out, c)
		}
		return nil
	case "yaml":
		return task.WriteYAML(out, results)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	default:
		return fmt.Errorf("unknown output format %q (table, yaml, json)", computeOutput)
	}
}
