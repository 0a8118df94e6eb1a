// Package mcts implements root-parallelized Monte Carlo Tree Search with a
// RAVE heuristic over a hexboard.Board, using a gametree.Tree per worker
// and a pathfinding.Oracle as both playout terminator and win detector.
package mcts

import (
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/nvassiliou/hax/gametree"
	"github.com/nvassiliou/hax/hexboard"
	"github.com/nvassiliou/hax/pathfinding"
)

// Worker runs independent MCTS iterations against its own tree and a
// private mutable board copy. It is not safe for concurrent use; the
// Parallel Search Driver gives each worker its own instance.
type Worker struct {
	tree       *gametree.Tree
	board      *hexboard.Board
	oracle     *pathfinding.Oracle
	rng        *rand.Rand
	expBias    float64
	raveBias   float64
	iterations int
	logger     zerolog.Logger
}

// NewWorker builds a worker rooted at a private clone of root. expBias is
// the UCB exploration constant `c`; raveBias is the RAVE bias `b` used in
// the beta-weighting formula. logger is used only at the start and end of
// Run, never inside an iteration; pass zerolog.Nop() to disable it.
func NewWorker(root *hexboard.Board, expBias, raveBias float64, rng *rand.Rand, logger zerolog.Logger) *Worker {
	return &Worker{
		tree:     gametree.New(),
		board:    root.Clone(),
		oracle:   pathfinding.NewOracle(),
		rng:      rng,
		expBias:  expBias,
		raveBias: raveBias,
		logger:   logger,
	}
}

// Iterations returns the number of completed select/expand/simulate/
// back-propagate cycles so far.
func (w *Worker) Iterations() int { return w.iterations }

// RootVisits returns the visit count of the root's child keyed by m, or 0
// if no such child exists.
func (w *Worker) RootVisits(m hexboard.Move) float64 {
	if !w.tree.HasChild(m) {
		return 0
	}
	return w.tree.Child(m).N
}

// Run executes iterations until the cumulative elapsed wall-clock time
// exceeds maxTimeMillis. The last iteration may overshoot the budget; the
// loop does not preempt it mid-flight.
func (w *Worker) Run(maxTimeMillis int64) {
	w.logger.Debug().Int64("max_time_ms", maxTimeMillis).Msg("worker start")
	runStart := time.Now()

	budgetMicros := maxTimeMillis * 1000
	var elapsedMicros int64
	for elapsedMicros < budgetMicros {
		start := time.Now()
		w.runIteration()
		elapsedMicros += time.Since(start).Microseconds()
	}

	w.logger.Debug().
		Int("iterations", w.iterations).
		Dur("elapsed", time.Since(runStart)).
		Msg("worker stop")
}

func legalMoves(b *hexboard.Board) []hexboard.Move {
	moves := make([]hexboard.Move, 0, b.CountUnoccupied())
	for i := 0; i < b.Area(); i++ {
		m := hexboard.Move(i)
		if b.IsLegalMove(m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// ucbScore is the fused UCB1-RAVE score for a tree edge, per the formula:
//
//	β    = n̂/(n+n̂+4b²nn̂)      if n̂>0 else 0
//	MC   = (1-β)(w/n) + c·sqrt(log(N)/n)
//	RAVE = β(ŵ/n̂)             if n̂>0 else 0
//	UCB  = MC + RAVE
func ucbScore(parentVisits float64, child *gametree.Stats, expBias, raveBias float64) float64 {
	var beta float64
	if child.NR > 0 {
		beta = child.NR / (child.N + child.NR + 4*raveBias*raveBias*child.N*child.NR)
	}
	mc := (1-beta)*(child.W/child.N) + expBias*math.Sqrt(math.Log(parentVisits)/child.N)
	var rave float64
	if child.NR > 0 {
		rave = beta * (child.WR / child.NR)
	}
	return mc + rave
}

// runIteration performs one select / expand / simulate / back-propagate
// cycle, leaving both the tree cursor and w.board at the root position
// when it returns.
func (w *Worker) runIteration() {
	var history []hexboard.Move

	// (1) Selection.
	for {
		moves := legalMoves(w.board)
		if len(moves) == 0 {
			break
		}
		allVisited := true
		for _, m := range moves {
			if !w.tree.HasChild(m) {
				allVisited = false
				break
			}
		}
		if !allVisited {
			break
		}

		parentVisits := w.tree.Data().N
		best := moves[0]
		bestScore := math.Inf(-1)
		for _, m := range moves {
			score := ucbScore(parentVisits, w.tree.Child(m), w.expBias, w.raveBias)
			if score > bestScore {
				bestScore = score
				best = m
			}
		}
		w.tree.Descend(best)
		w.board.MakeMove(best)
		history = append(history, best)
	}

	// (2) Expansion.
	moves := legalMoves(w.board)
	var unvisited []hexboard.Move
	for _, m := range moves {
		if !w.tree.HasChild(m) {
			unvisited = append(unvisited, m)
		}
	}
	if len(unvisited) > 0 {
		pick := unvisited[w.rng.Intn(len(unvisited))]
		w.tree.Insert(pick)
		w.tree.Descend(pick)
		w.board.MakeMove(pick)
		history = append(history, pick)
	}

	sideToMoveAtExpanded := w.board.WhiteToMove()

	// (3) Simulation.
	winner := w.oracle.CheckWinState(w.board, true)
	if winner == pathfinding.Ongoing {
		remaining := legalMoves(w.board)
		w.rng.Shuffle(len(remaining), func(i, j int) {
			remaining[i], remaining[j] = remaining[j], remaining[i]
		})
		for _, m := range remaining {
			w.board.MakeMove(m)
			history = append(history, m)
			winner = w.oracle.CheckWinState(w.board, true)
			if winner != pathfinding.Ongoing {
				break
			}
		}
	}

	var winIsWhite bool
	switch winner {
	case pathfinding.WhiteWins:
		winIsWhite = true
	case pathfinding.BlackWins:
		winIsWhite = false
	default:
		// The board filled with no connection. Hex admits no draws under
		// strict connectivity, so this only happens when the playout ran
		// out of moves before virtual mode caught up with it; attribute
		// the result to a loss for whoever was to move at expansion.
		winIsWhite = !sideToMoveAtExpanded
	}
	isWinForNode := winIsWhite != sideToMoveAtExpanded

	// (4) Back-propagation.
	sideToMove := sideToMoveAtExpanded
	for !w.tree.IsRoot() {
		stats := w.tree.Data()
		stats.N++
		if isWinForNode {
			stats.W++
		}

		mover := !sideToMove
		w.tree.Ascend()
		sideToMove = mover

		moverColor := hexboard.Black
		if mover {
			moverColor = hexboard.White
		}
		for _, m := range history {
			if w.board.At(m) == moverColor && w.tree.HasChild(m) {
				child := w.tree.Child(m)
				child.NR++
				if isWinForNode {
					child.WR++
				}
			}
		}

		isWinForNode = !isWinForNode
	}
	w.tree.Data().N++

	for i := len(history) - 1; i >= 0; i-- {
		w.board.UndoMove(history[i])
	}
	w.iterations++
}
