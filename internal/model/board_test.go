package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardBoard(t *testing.T) {
	board := NewStandardBoard()

	count := 0
	board.Each(func(Square, Piece) { count++ })
	assert.Equal(t, 32, count)

	p, ok := board.Occupant(sq("e1"))
	require.True(t, ok)
	assert.Equal(t, Piece{Type: King, Color: PlayerColorWhite}, p)

	p, ok = board.Occupant(sq("d8"))
	require.True(t, ok)
	assert.Equal(t, Piece{Type: Queen, Color: PlayerColorBlack}, p)

	_, ok = board.Occupant(sq("e4"))
	assert.False(t, ok)

	king, ok := board.FindKing(PlayerColorBlack)
	require.True(t, ok)
	assert.Equal(t, sq("e8"), king)
	assert.Equal(t, 8, board.Count(Piece{Type: Pawn, Color: PlayerColorWhite}))
}

func TestBoardMoveRawOverwritesTarget(t *testing.T) {
	board := NewStandardBoard()
	board.MoveRaw(sq("d1"), sq("d7"))

	_, ok := board.Occupant(sq("d1"))
	assert.False(t, ok)
	p, _ := board.Occupant(sq("d7"))
	assert.Equal(t, Piece{Type: Queen, Color: PlayerColorWhite}, p)
	assert.Equal(t, 7, board.Count(Piece{Type: Pawn, Color: PlayerColorBlack}))

	board.Remove(sq("d7"))
	_, ok = board.Occupant(sq("d7"))
	assert.False(t, ok)
}

func TestBoardIsAValue(t *testing.T) {
	original := NewStandardBoard()
	copied := original
	copied.Remove(sq("e2"))

	_, ok := original.Occupant(sq("e2"))
	assert.True(t, ok)
}

func TestBoardJSON(t *testing.T) {
	var board Board
	board.Place(sq("e1"), Piece{Type: King, Color: PlayerColorWhite})
	board.Place(sq("e8"), Piece{Type: King, Color: PlayerColorBlack})

	data, err := json.Marshal(board)
	require.NoError(t, err)
	assert.JSONEq(t, `{"e1":{"type":"king","color":"white"},"e8":{"type":"king","color":"black"}}`, string(data))

	var decoded Board
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, board, decoded)
}
