package mcts_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvassiliou/hax/hexboard"
	"github.com/nvassiliou/hax/mcts"
)

func TestSearchRejectsInvalidParams(t *testing.T) {
	b, err := hexboard.NewBoard(5)
	require.NoError(t, err)

	_, err = mcts.Search(b, 50, 0, 0.0, 0.012, zerolog.Nop())
	assert.Error(t, err)

	_, err = mcts.Search(b, 0, 1, 0.0, 0.012, zerolog.Nop())
	assert.Error(t, err)
}

func TestSearchReturnsNoLegalMovesOnFullBoard(t *testing.T) {
	b, err := hexboard.NewBoard(2)
	require.NoError(t, err)
	for i := 0; i < b.Area(); i++ {
		b.MakeMove(hexboard.Move(i))
	}

	move, err := mcts.Search(b, 50, 2, 0.0, 0.012, zerolog.Nop())
	assert.ErrorIs(t, err, mcts.ErrNoLegalMoves)
	assert.Equal(t, mcts.NoMove, move)
}

func TestSearchReturnsALegalMoveRegardlessOfThreadCount(t *testing.T) {
	for _, nThread := range []int{1, 2, 4} {
		b, err := hexboard.NewBoard(5)
		require.NoError(t, err)
		b.MakeMove(12)
		b.MakeMove(7)

		move, err := mcts.Search(b, 30, nThread, 0.8, 0.012, zerolog.Nop())
		require.NoError(t, err)
		assert.Truef(t, b.IsLegalMove(move), "nThread=%d returned illegal move %d", nThread, move)
	}
}

// TestSearchReturnsALegalMoveFromMidGamePosition plays seven alternating
// stones on a 6×6 board (leaving Black to move) and checks that a search
// from that mid-game position returns a legal move.
func TestSearchReturnsALegalMoveFromMidGamePosition(t *testing.T) {
	b, err := hexboard.NewBoard(6)
	require.NoError(t, err)

	whites := []int{1, 8, 15, 22}
	blacks := []int{2, 9, 16}
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

	move, err := mcts.Search(b, 200, 2, 0.8, 0.012, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, b.IsLegalMove(move))
}
