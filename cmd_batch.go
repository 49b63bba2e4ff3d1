package main

import (
	"github.com/spf13/cobra"
	"github.com/tsinghua-fib-lab/taxregime-sim/task"
)

// batchCmd 按配置执行批量计算
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Compute every income listed in batch.input and write yaml or csv results",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := task.NewContext(job, runtimeConfig, cmd.OutOrStdout())
		return t.RunBatch(cmd.Context())
	},
}

// simulateCmd 合成人口模拟
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Draw a synthetic income population and summarise which regime wins",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := task.NewContext(job, runtimeConfig, cmd.OutOrStdout())
		summary, err := t.RunSimulation(cmd.Context())
		if err != nil {
			return err
		}
		return task.WriteSummary(cmd.OutOrStdout(), summary)
	},
}
