package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpeningMoveCounts(t *testing.T) {
	state := NewGame()
	moves := state.LegalMovesForSide(PlayerColorWhite)
	assert.Len(t, moves, 20)

	knightMoves := 0
	for _, m := range moves {
		if p, _ := state.Board.Occupant(m.From); p.Type == Knight {
			knightMoves++
		}
	}
	assert.Equal(t, 4, knightMoves)

	for _, first := range []string{"e2e4", "a2a3", "g1f3"} {
		t.Run(first, func(t *testing.T) {
			next := play(t, NewGame(), first)
			assert.Len(t, next.LegalMovesForSide(PlayerColorBlack), 20)
		})
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	state := mustPosition(t, Position{
		Board: diagram(t,
			"....r..k",
			"........",
			"........",
			"........",
			"........",
			"........",
			"....B...",
			"....K...",
		),
		ToMove: PlayerColorWhite,
	})
	assert.False(t, PseudoLegalMoves(&state.Board, sq("e2"), nil, state.Castling).Empty())
	assert.True(t, state.LegalMoves(sq("e2")).Empty())
}

func TestKingCannotStepIntoAttack(t *testing.T) {
	state := mustPosition(t, Position{
		Board: diagram(t,
			".......k",
			"........",
			"........",
			"........",
			"........",
			"........",
			".....r..",
			"...K....",
		),
		ToMove: PlayerColorWhite,
	})
	// f2 rook covers the second rank and the f-file
	assert.Equal(t, squares("c1", "e1").Squares(), state.LegalMoves(sq("d1")).Squares())
}

func TestKingMayCaptureUndefendedAttacker(t *testing.T) {
	state := mustPosition(t, Position{
		Board: diagram(t,
			".......k",
			"........",
			"........",
			"........",
			"........",
			"........",
			"...q....",
			"...K....",
		),
		ToMove: PlayerColorWhite,
	})
	assert.True(t, state.IsCheck)
	assert.Equal(t, squares("d2").Squares(), state.LegalMoves(sq("d1")).Squares())

	defended := state.Board
	defended.Place(sq("d5"), Piece{Type: Rook, Color: PlayerColorBlack})
	state = mustPosition(t, Position{Board: defended, ToMove: PlayerColorWhite})
	assert.Equal(t, StatusCheckmate, state.Status)
}

func TestEnPassantCannotExposeKing(t *testing.T) {
	// the c-pawn double steps next to the b5 pawn, but taking it would open the fifth rank
	state := mustPosition(t, Position{
		Board: diagram(t,
			"....k...",
			"..p.....",
			"........",
			"KP.....r",
			"........",
			"........",
			"........",
			"........",
		),
		ToMove: PlayerColorBlack,
	})
	state = play(t, state, "c7c5")
	require.NotNil(t, state.EnPassantTarget)
	assert.Equal(t, sq("c6"), *state.EnPassantTarget)
	assert.Equal(t, squares("b6").Squares(), state.LegalMoves(sq("b5")).Squares())
}

func TestLegalMovesSubsetOfPseudoLegal(t *testing.T) {
	positions := map[string]GameState{
		"opening": NewGame(),
		"middlegame": play(t, NewGame(),
			"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6", "b5c6", "d7c6", "e1g1", "f7f6",
		),
		"pinned": mustPosition(t, Position{
			Board: diagram(t,
				"....k...",
				"....q...",
				"........",
				"........",
				"b.......",
				"........",
				"...PN...",
				"....K...",
			),
			ToMove: PlayerColorWhite,
		}),
	}
	for name, state := range positions {
		t.Run(name, func(t *testing.T) {
			state.Board.Each(func(from Square, p Piece) {
				enPassant := state.EnPassantTarget
				if p.Color != state.ToMove {
					enPassant = nil
				}
				pseudo := PseudoLegalMoves(&state.Board, from, enPassant, state.Castling)
				legal := state.LegalMoves(from)
				assert.Equal(t, legal, legal&pseudo, "%s on %s", p, from)
				for _, to := range pseudo.Squares() {
					if legal.Has(to) {
						continue
					}
					board := state.Board
					applyToBoard(&board, p, from, to, enPassant, Queen)
					assert.True(t, InCheck(&board, p.Color), "%s %s%s dropped without exposing the king", p, from, to)
				}
			})
		})
	}
}

func TestLegalMovesIsIdempotent(t *testing.T) {
	state := play(t, NewGame(), "e2e4", "d7d5")
	before := state
	first := state.LegalMoves(sq("e4"))
	second := state.LegalMoves(sq("e4"))
	assert.Equal(t, first, second)
	assert.Equal(t, squares("e5", "d5").Squares(), first.Squares())
	assert.Equal(t, before, state)
	assert.Equal(t, state.LegalMovesForSide(PlayerColorWhite), state.LegalMovesForSide(PlayerColorWhite))
}

func TestLegalMovesEmptySquare(t *testing.T) {
	assert.True(t, NewGame().LegalMoves(sq("e4")).Empty())
}

func TestNoLegalMovesOnceTerminal(t *testing.T) {
	state := play(t, NewGame(), "f2f3", "e7e5", "g2g4", "d8h4")
	require.Equal(t, StatusCheckmate, state.Status)
	assert.True(t, state.LegalMoves(sq("a2")).Empty())
	assert.Empty(t, state.LegalMovesForSide(PlayerColorWhite))
	assert.Empty(t, state.LegalMovesForSide(PlayerColorBlack))
}
