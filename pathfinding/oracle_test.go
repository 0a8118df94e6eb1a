package pathfinding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvassiliou/hax/hexboard"
	"github.com/nvassiliou/hax/pathfinding"
)

// applyMoves interleaves two move lists onto b, first list first, matching
// the alternating-turn precondition of MakeMove. MakeMove colors each stone
// by whose turn it is, so the first list is played by the side to move:
// White on a fresh board, but Black in the follow-up calls below that are
// made after White moved last. The two lists may differ in length by at
// most one.
func applyMoves(t *testing.T, b *hexboard.Board, whites, blacks []int) {
	t.Helper()
	n := len(whites)
	if len(blacks) > n {
		n = len(blacks)
	}
	for i := 0; i < n; i++ {
		if i < len(whites) {
			b.MakeMove(hexboard.Move(whites[i]))
		}
		if i < len(blacks) {
			b.MakeMove(hexboard.Move(blacks[i]))
		}
	}
}

func TestCheckWinStateEmptyBoardIsOngoing(t *testing.T) {
	o := pathfinding.NewOracle()
	for _, l := range []int{1, 5, 10, 19} {
		b, err := hexboard.NewBoard(l)
		require.NoError(t, err)
		assert.Equal(t, pathfinding.Ongoing, o.CheckWinState(b, false))
		assert.Equal(t, pathfinding.Ongoing, o.CheckWinState(b, true))
	}
}

func TestS1TrivialBlackWin(t *testing.T) {
	b, err := hexboard.NewBoard(10)
	require.NoError(t, err)

	whites := []int{99, 98, 97, 96, 95, 94, 93, 92, 91, 90}
	blacks := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	applyMoves(t, b, whites, blacks)

	o := pathfinding.NewOracle()
	assert.Equal(t, pathfinding.BlackWins, o.CheckWinState(b, false))
}

func TestS2DirectWhiteWin(t *testing.T) {
	b, err := hexboard.NewBoard(10)
	require.NoError(t, err)

	whites := []int{0, 1, 2, 3, 4, 13, 16, 17, 22, 25, 27, 32, 33, 34, 36, 37, 45,
		51, 52, 53, 54, 56, 57, 58, 61, 65, 68, 71, 72, 73, 74, 76, 77, 78, 85, 95}
	blacks := []int{5, 6, 7, 8, 9, 10, 11, 12, 14, 15, 18, 19, 20, 21, 23, 24, 26,
		28, 29, 30, 31, 35, 38, 39, 40, 41, 42, 43, 44, 46, 47, 48, 49, 97, 98, 99}
	applyMoves(t, b, whites, blacks)
	require.True(t, b.WhiteToMove())
	b.MakeMove(96)

	o := pathfinding.NewOracle()
	assert.Equal(t, pathfinding.WhiteWins, o.CheckWinState(b, false))
}

func TestS3VirtualWhiteWinThenDowngraded(t *testing.T) {
	b, err := hexboard.NewBoard(10)
	require.NoError(t, err)

	applyMoves(t, b, []int{4, 23, 42, 61, 72, 91}, []int{9, 19, 29, 39, 49})

	o := pathfinding.NewOracle()
	require.Equal(t, pathfinding.WhiteWins, o.CheckWinState(b, true))

	applyMoves(t, b, []int{13}, []int{16})
	assert.Equal(t, pathfinding.Ongoing, o.CheckWinState(b, true))
}

func TestS4DisconnectedVirtualEdges(t *testing.T) {
	b, err := hexboard.NewBoard(10)
	require.NoError(t, err)

	applyMoves(t, b, []int{14, 33, 52, 71, 82}, []int{9, 19, 29, 39})

	o := pathfinding.NewOracle()
	require.Equal(t, pathfinding.WhiteWins, o.CheckWinState(b, true))

	applyMoves(t, b, []int{24}, []int{16})
	assert.Equal(t, pathfinding.Ongoing, o.CheckWinState(b, true))
}

func TestS5VirtualDivergesFromStrict(t *testing.T) {
	b, err := hexboard.NewBoard(10)
	require.NoError(t, err)

	whites := []int{13, 18, 26, 32, 34, 36, 43, 47, 48, 54, 58, 74, 76, 78}
	blacks := []int{7, 15, 24, 25, 33, 35, 42, 45, 51, 56, 57, 67, 68, 77}
	applyMoves(t, b, whites, blacks)

	o := pathfinding.NewOracle()
	assert.Equal(t, pathfinding.BlackWins, o.CheckWinState(b, true))
	assert.Equal(t, pathfinding.Ongoing, o.CheckWinState(b, false))
}

func TestVirtualModeIsMonotoneOverStrict(t *testing.T) {
	b, err := hexboard.NewBoard(10)
	require.NoError(t, err)
	applyMoves(t, b, []int{99, 98, 97, 96, 95, 94, 93, 92, 91, 90}, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

	o := pathfinding.NewOracle()
	strict := o.CheckWinState(b, false)
	require.NotEqual(t, pathfinding.Ongoing, strict)
	assert.Equal(t, strict, o.CheckWinState(b, true))
}

func TestBlockingBridgeCarrierDowngradesVirtualWin(t *testing.T) {
	b, err := hexboard.NewBoard(10)
	require.NoError(t, err)
	applyMoves(t, b, []int{4, 23, 42, 61, 72, 91}, []int{9, 19, 29, 39, 49})

	o := pathfinding.NewOracle()
	require.Equal(t, pathfinding.WhiteWins, o.CheckWinState(b, true))

	applyMoves(t, b, []int{13}, []int{16})
	assert.Equal(t, pathfinding.Ongoing, o.CheckWinState(b, true))
}
