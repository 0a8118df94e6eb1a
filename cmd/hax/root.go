package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hax",
		Short: "Hex engine driven by root-parallel MCTS with RAVE",
	}
	cmd.AddCommand(newPlayCmd())
	cmd.AddCommand(newBenchCmd())
	return cmd
}
