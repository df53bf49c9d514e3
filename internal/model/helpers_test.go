package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var pieceLetters = map[rune]PieceType{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// diagram builds a board from eight rows, rank 8 first. Uppercase letters are
// white, lowercase black, '.' empty.
func diagram(t *testing.T, rows ...string) Board {
	t.Helper()
	require.Len(t, rows, 8, "diagram needs eight rows")
	var board Board
	for i, row := range rows {
		require.Len(t, row, 8, "row %d", i)
		for file, r := range row {
			if r == '.' {
				continue
			}
			color := PlayerColorBlack
			if r >= 'A' && r <= 'Z' {
				color = PlayerColorWhite
				r += 'a' - 'A'
			}
			kind, ok := pieceLetters[r]
			require.True(t, ok, "unknown piece %q", r)
			board.Place(Square{File: file, Rank: 8 - i}, Piece{Type: kind, Color: color})
		}
	}
	return board
}

func mustPosition(t *testing.T, pos Position) GameState {
	t.Helper()
	state, err := NewGameFromPosition(pos)
	require.NoError(t, err)
	return state
}

func sq(label string) Square {
	return MustParseSquare(label)
}

func squares(labels ...string) SquareSet {
	var set SquareSet
	for _, label := range labels {
		set = set.Add(sq(label))
	}
	return set
}

// play applies coordinate moves such as "e2e4" or "e7e8n" in order.
func play(t *testing.T, state GameState, moves ...string) GameState {
	t.Helper()
	for _, m := range moves {
		var promotion PieceType
		if len(m) == 5 {
			for _, choice := range PromotionChoices {
				if choice.Symbol() == m[4:] {
					promotion = choice
				}
			}
		}
		next, err := state.Apply(sq(m[0:2]), sq(m[2:4]), promotion)
		require.NoError(t, err, "move %s", m)
		state = next
	}
	return state
}
