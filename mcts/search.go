package mcts

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/nvassiliou/hax/hexboard"
	"github.com/nvassiliou/hax/workerpool"
)

// NoMove is the sentinel returned when a position has no legal move to
// select.
const NoMove hexboard.Move = -1

// ErrNoLegalMoves is returned by Search when the root position is
// terminal (no legal moves remain).
var ErrNoLegalMoves = errors.New("mcts: no legal moves at root")

// Search root-parallelizes MCTS across nThread independent workers, each
// searching its own tree against a private clone of board for
// maxTimeMillis, then returns the move with the highest summed visit
// count across trees.
//
// Go has no default arguments, so unlike the reference signature
// `MonteCarloSearch(board, maxTime, nThread, expBias=0.0, b=1.0)`,
// expBias and raveBias must always be supplied explicitly; callers that
// want the reference defaults pass them literally. logger may be
// zerolog.Nop() to disable logging entirely.
func Search(board *hexboard.Board, maxTimeMillis int64, nThread int, expBias, raveBias float64, logger zerolog.Logger) (hexboard.Move, error) {
	move, _, err := run(board, maxTimeMillis, nThread, expBias, raveBias, logger)
	return move, err
}

// Bench runs the same root-parallelized search as Search but additionally
// reports the total number of MCTS iterations completed across every
// worker, for playouts/second reporting.
func Bench(board *hexboard.Board, maxTimeMillis int64, nThread int, expBias, raveBias float64, logger zerolog.Logger) (move hexboard.Move, totalIterations int, err error) {
	return run(board, maxTimeMillis, nThread, expBias, raveBias, logger)
}

func run(board *hexboard.Board, maxTimeMillis int64, nThread int, expBias, raveBias float64, logger zerolog.Logger) (hexboard.Move, int, error) {
	if nThread < 1 {
		return NoMove, 0, errors.Errorf("mcts: nThread must be >= 1, got %d", nThread)
	}
	if maxTimeMillis <= 0 {
		return NoMove, 0, errors.Errorf("mcts: maxTimeMillis must be positive, got %d", maxTimeMillis)
	}
	legal := legalMoves(board)
	if len(legal) == 0 {
		return NoMove, 0, ErrNoLegalMoves
	}

	searchID := uuid.New()
	logger = logger.With().Str("search_id", searchID.String()).Logger()
	logger.Info().
		Int("n_thread", nThread).
		Int64("max_time_ms", maxTimeMillis).
		Float64("exp_bias", expBias).
		Float64("rave_bias", raveBias).
		Msg("search start")
	started := time.Now()

	pool := workerpool.New(nThread)
	workers := make([]*Worker, nThread)
	for i := 0; i < nThread; i++ {
		i := i
		rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(i)))
		workerLogger := logger.With().Int("worker", i).Logger()
		workers[i] = NewWorker(board, expBias, raveBias, rng, workerLogger)
		pool.Submit(func() {
			workers[i].Run(maxTimeMillis)
		})
	}
	pool.WaitAll()

	var best = legal[0]
	bestVotes := -1.0
	totalIterations := 0
	for _, w := range workers {
		totalIterations += w.Iterations()
	}
	for _, m := range legal {
		var votes float64
		for _, w := range workers {
			votes += w.RootVisits(m)
		}
		if votes > bestVotes {
			bestVotes = votes
			best = m
		}
	}

	logger.Info().
		Int("move", int(best)).
		Float64("votes", bestVotes).
		Int("total_iterations", totalIterations).
		Dur("elapsed", time.Since(started)).
		Msg("search done")

	return best, totalIterations, nil
}
