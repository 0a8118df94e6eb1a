package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/nvassiliou/hax/hexboard"
)

// renderBoard returns the board as text with a column header and per-row
// indentation, so the rhombic grid reads correctly in a terminal: '.' for
// Unoccupied, 'W' for White, 'B' for Black.
func renderBoard(b *hexboard.Board) string {
	var sb strings.Builder
	length := b.Length()

	sb.WriteString("   ")
	for c := 0; c < length; c++ {
		fmt.Fprintf(&sb, "%2d ", c)
	}
	sb.WriteString("\n")

	for r := 0; r < length; r++ {
		sb.WriteString(strings.Repeat(" ", r))
		fmt.Fprintf(&sb, "%2d ", r)
		for c := 0; c < length; c++ {
			cell := b.At(hexboard.Move(r*length + c))
			var mark string
			switch cell {
			case hexboard.White:
				mark = "W"
			case hexboard.Black:
				mark = "B"
			default:
				mark = "."
			}
			sb.WriteString(mark + "  ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// readHumanMove reads a single cell index from in, validating it against
// b. It loops on malformed or illegal input rather than failing outright,
// since a mistyped move is a user error, not a program error.
func readHumanMove(in *bufio.Reader, b *hexboard.Board) (hexboard.Move, error) {
	for {
		fmt.Print("your move (cell index): ")
		line, err := in.ReadString('\n')
		if err != nil {
			return 0, errors.Wrap(err, "reading move")
		}
		line = strings.TrimSpace(line)
		idx, err := strconv.Atoi(line)
		if err != nil {
			fmt.Println("not a number, try again")
			continue
		}
		move := hexboard.Move(idx)
		if !b.IsLegalMove(move) {
			fmt.Println("illegal move, try again")
			continue
		}
		return move, nil
	}
}
