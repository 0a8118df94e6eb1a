package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nvassiliou/hax/hexboard"
	"github.com/nvassiliou/hax/mcts"
)

func newBenchCmd() *cobra.Command {
	var (
		length        int
		maxTimeMillis int64
		nThread       int
		expBias       float64
		raveBias      float64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a fixed-budget search on an empty board and report playouts/second",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := hexboard.NewBoard(length)
			if err != nil {
				return err
			}

			started := time.Now()
			move, iterations, err := mcts.Bench(board, maxTimeMillis, nThread, expBias, raveBias, zerolog.Nop())
			if err != nil {
				return err
			}
			elapsed := time.Since(started)

			rate := float64(iterations) / elapsed.Seconds()
			fmt.Printf("length=%d threads=%d budget=%dms\n", length, nThread, maxTimeMillis)
			fmt.Printf("move=%d iterations=%d elapsed=%s playouts/sec=%.0f\n", move, iterations, elapsed, rate)
			return nil
		},
	}

	cmd.Flags().IntVar(&length, "length", 11, "board side length")
	cmd.Flags().Int64Var(&maxTimeMillis, "max-time-ms", 5000, "search budget in milliseconds")
	cmd.Flags().IntVar(&nThread, "threads", 6, "number of parallel search workers")
	cmd.Flags().Float64Var(&expBias, "exp-bias", 0.0, "UCB exploration constant")
	cmd.Flags().Float64Var(&raveBias, "rave-bias", 0.012, "RAVE bias")
	return cmd
}
