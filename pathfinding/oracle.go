// Package pathfinding answers whether a player has connected their two
// edges of the Hex board, either strictly or under the "two-bridge" virtual
// connection relaxation used to end MCTS playouts early.
//
// Hex boards are preserved under rotation and reflection, but this package
// hard-codes an orientation: row 0 is White's home edge, column 0 is
// Black's. Reorient the board to comply, rather than changing the logic
// here.
package pathfinding

import "github.com/nvassiliou/hax/hexboard"

// WinState is the outcome of a CheckWinState query.
type WinState int

const (
	Ongoing WinState = iota
	WhiteWins
	BlackWins
)

func (w WinState) String() string {
	switch w {
	case WhiteWins:
		return "White"
	case BlackWins:
		return "Black"
	default:
		return "Ongoing"
	}
}

// Neighbor offsets (Δcol, Δrow), fixed orientation.
var neighborDC = [6]int{-1, -1, 0, 0, 1, 1}
var neighborDR = [6]int{0, 1, 1, -1, 0, -1}

// Two-bridge virtual offsets and their two carrier cells. These three
// tables share one index: carrier1[i] and carrier2[i] are the two cells
// between a cell and its bridge partner at virtual[i]. Their order is
// unrelated to the neighbor table above; the shared length of 6 is
// coincidental.
var virtualDC = [6]int{1, 2, 1, -1, -2, -1}
var virtualDR = [6]int{1, -1, -2, -1, 1, 2}
var carrier1DC = [6]int{0, 1, 1, 0, -1, -1}
var carrier1DR = [6]int{1, 0, -1, -1, 0, 1}
var carrier2DC = [6]int{1, 1, 0, -1, -1, 0}
var carrier2DR = [6]int{0, -1, -1, 0, 1, 1}

// Oracle holds the scratch buffer reused across CheckWinState calls. It is
// not safe for concurrent use — each MCTS worker owns one.
type Oracle struct {
	visited [hexboard.MaxLength * hexboard.MaxLength]bool
}

// NewOracle returns a fresh Oracle with a private scratch buffer.
func NewOracle() *Oracle {
	return &Oracle{}
}

func row(pos, length int) int { return pos / length }
func col(pos, length int) int { return pos % length }

func inBounds(dc, dr, pos, length int) bool {
	c, r := col(pos, length), row(pos, length)
	return c+dc >= 0 && c+dc < length && r+dr >= 0 && r+dr < length
}

func traverse(dc, dr, pos, length int) int {
	return pos + dc + dr*length
}

func isPlayerColor(white bool, c hexboard.Cell) bool {
	if white {
		return c == hexboard.White
	}
	return c == hexboard.Black
}

func directGoal(pos, length int, white bool) bool {
	if white {
		return row(pos, length) == length-1
	}
	return col(pos, length) == length-1
}

// virtualGoal relaxes the goal test for a cell one step short of the far
// edge: it counts as reached if the two real edge cells adjacent to it
// (via the ordinary neighbor offsets, not a two-bridge jump) are both
// still empty, since the opponent can then block at most one of them.
func virtualGoal(b *hexboard.Board, pos, length int, white bool) bool {
	if directGoal(pos, length, white) {
		return true
	}
	if white {
		return row(pos, length) == length-2 &&
			col(pos, length) > 0 &&
			b.IsLegalMove(hexboard.Move(traverse(0, 1, pos, length))) &&
			b.IsLegalMove(hexboard.Move(traverse(-1, 1, pos, length)))
	}
	return col(pos, length) == length-2 &&
		row(pos, length) > 0 &&
		b.IsLegalMove(hexboard.Move(traverse(1, 0, pos, length))) &&
		b.IsLegalMove(hexboard.Move(traverse(1, -1, pos, length)))
}

// hasPath runs a DFS flood from pos, restricted to white's (or black's)
// color, optionally admitting two-bridge steps. It mutates o.visited.
func (o *Oracle) hasPath(b *hexboard.Board, pos, length int, white, includeVirtual bool) bool {
	if o.visited[pos] || !isPlayerColor(white, b.At(hexboard.Move(pos))) {
		return false
	}
	o.visited[pos] = true

	goal := directGoal
	if includeVirtual {
		goal = func(pos, length int, white bool) bool { return virtualGoal(b, pos, length, white) }
	}
	if goal(pos, length, white) {
		return true
	}

	var neighbors [12]int
	for i := range neighbors {
		neighbors[i] = -1
	}

	for i := 0; i < 6; i++ {
		if inBounds(neighborDC[i], neighborDR[i], pos, length) {
			neighbors[i] = traverse(neighborDC[i], neighborDR[i], pos, length)
		}
	}

	if includeVirtual {
		for i := 0; i < 6; i++ {
			if !inBounds(virtualDC[i], virtualDR[i], pos, length) {
				continue
			}
			blocker1 := hexboard.Move(traverse(carrier1DC[i], carrier1DR[i], pos, length))
			blocker2 := hexboard.Move(traverse(carrier2DC[i], carrier2DR[i], pos, length))
			if b.IsLegalMove(blocker1) && b.IsLegalMove(blocker2) {
				neighbors[i+6] = traverse(virtualDC[i], virtualDR[i], pos, length)
			}
		}
	}

	for _, n := range neighbors {
		if n != -1 && isPlayerColor(white, b.At(hexboard.Move(n))) && o.hasPath(b, n, length, white, includeVirtual) {
			return true
		}
	}
	return false
}

// initVirtualSearch seeds additional bridge-to-edge starts in virtual mode:
// cells one row/column interior to the home edge whose two carriers to the
// edge are both empty.
func (o *Oracle) initVirtualSearch(b *hexboard.Board, length int, white bool) bool {
	if white {
		for col := 1; col <= length-2; col++ {
			pos := traverse(col, 1, 0, length)
			blocker1 := hexboard.Move(traverse(0, -1, pos, length))
			blocker2 := hexboard.Move(traverse(1, -1, pos, length))
			if b.IsLegalMove(blocker1) && b.IsLegalMove(blocker2) && o.hasPath(b, pos, length, true, true) {
				return true
			}
		}
		return false
	}

	for r := 1; r <= length-2; r++ {
		pos := traverse(1, r, 0, length)
		blocker1 := hexboard.Move(traverse(-1, 0, pos, length))
		blocker2 := hexboard.Move(traverse(-1, 1, pos, length))
		if b.IsLegalMove(blocker1) && b.IsLegalMove(blocker2) && o.hasPath(b, pos, length, false, true) {
			return true
		}
	}
	return false
}

func (o *Oracle) initSearch(b *hexboard.Board, length int, white, includeVirtual bool) bool {
	for i := 0; i < b.Area(); i++ {
		o.visited[i] = false
	}

	if white {
		for c := 0; c < length; c++ {
			if o.hasPath(b, c, length, true, includeVirtual) {
				return true
			}
		}
	} else {
		for r := 0; r < length; r++ {
			if o.hasPath(b, r*length, length, false, includeVirtual) {
				return true
			}
		}
	}

	if includeVirtual {
		return o.initVirtualSearch(b, length, white)
	}
	return false
}

// CheckWinState decides whether the side that just moved has completed a
// connection. Only the side that just moved is tested, since the other
// side cannot have won on this move. The oracle is total and never
// mutates b; it is safe to call thousands of times per second inside a
// playout.
func (o *Oracle) CheckWinState(b *hexboard.Board, includeVirtual bool) WinState {
	length := b.Length()
	minToCheck := 2*length - 1
	if includeVirtual {
		minToCheck /= 2
	}
	if b.CountOccupied() < minToCheck {
		return Ongoing
	}

	white := !b.WhiteToMove()
	if !o.initSearch(b, length, white, includeVirtual) {
		return Ongoing
	}
	if white {
		return WhiteWins
	}
	return BlackWins
}
