package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nvassiliou/hax/hexboard"
	"github.com/nvassiliou/hax/mcts"
	"github.com/nvassiliou/hax/pathfinding"
)

func newPlayCmd() *cobra.Command {
	var (
		length        int
		maxTimeMillis int64
		nThread       int
		expBias       float64
		raveBias      float64
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game: the engine plays White, you play Black",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zerolog.Nop()
			if verbose {
				logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
			}

			board, err := hexboard.NewBoard(length)
			if err != nil {
				return err
			}
			oracle := pathfinding.NewOracle()
			in := bufio.NewReader(os.Stdin)

			for {
				fmt.Print(renderBoard(board))

				move, err := mcts.Search(board, maxTimeMillis, nThread, expBias, raveBias, logger)
				if err != nil {
					return err
				}
				fmt.Printf("engine plays %d\n", move)
				board.MakeMove(move)
				if w := oracle.CheckWinState(board, false); w != pathfinding.Ongoing {
					fmt.Print(renderBoard(board))
					fmt.Printf("%s wins\n", w)
					return nil
				}

				fmt.Print(renderBoard(board))
				humanMove, err := readHumanMove(in, board)
				if err != nil {
					return err
				}
				board.MakeMove(humanMove)
				if w := oracle.CheckWinState(board, false); w != pathfinding.Ongoing {
					fmt.Print(renderBoard(board))
					fmt.Printf("%s wins\n", w)
					return nil
				}
			}
		},
	}

	cmd.Flags().IntVar(&length, "length", 11, "board side length")
	cmd.Flags().Int64Var(&maxTimeMillis, "max-time-ms", 5000, "per-move search budget in milliseconds")
	cmd.Flags().IntVar(&nThread, "threads", 6, "number of parallel search workers")
	cmd.Flags().Float64Var(&expBias, "exp-bias", 0.0, "UCB exploration constant")
	cmd.Flags().Float64Var(&raveBias, "rave-bias", 0.012, "RAVE bias")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log search diagnostics to stderr")
	return cmd
}
