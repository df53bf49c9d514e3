package model

import (
	"encoding/json"
	"fmt"
)

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// Symbol is the lowercase letter used in coordinate move strings (e7e8q).
func (p PieceType) Symbol() string {
	switch p {
	case King:
		return "k"
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	case Pawn:
		return "p"
	}
	return ""
}

func (p PieceType) Valid() bool {
	switch p {
	case King, Queen, Rook, Bishop, Knight, Pawn:
		return true
	}
	return false
}

// PromotionChoices are the kinds a pawn may become on the last rank.
var PromotionChoices = []PieceType{Queen, Rook, Bishop, Knight}

// Piece is a colored chess man. The zero Piece stands for an empty square.
type Piece struct {
	Type  PieceType   `json:"type"`
	Color PlayerColor `json:"color"`
}

func (p Piece) IsZero() bool {
	return p.Type == ""
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Color, p.Type)
}

// Board maps squares to pieces. It is a plain value: assigning a Board copies it.
type Board struct {
	squares [64]Piece
}

func (b *Board) Occupant(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	p := b.squares[sq.index()]
	return p, !p.IsZero()
}

func (b *Board) Place(sq Square, p Piece) {
	b.squares[sq.index()] = p
}

func (b *Board) Remove(sq Square) {
	b.squares[sq.index()] = Piece{}
}

// MoveRaw relocates the piece on from to to, overwriting whatever stood there.
func (b *Board) MoveRaw(from, to Square) {
	p := b.squares[from.index()]
	b.squares[from.index()] = Piece{}
	b.squares[to.index()] = p
}

func (b *Board) FindKing(color PlayerColor) (Square, bool) {
	for i, p := range b.squares {
		if p.Type == King && p.Color == color {
			return squareAt(i), true
		}
	}
	return Square{}, false
}

// Each calls fn for every occupied square in a1..h8 order.
func (b *Board) Each(fn func(sq Square, p Piece)) {
	for i, p := range b.squares {
		if !p.IsZero() {
			fn(squareAt(i), p)
		}
	}
}

func (b *Board) Count(p Piece) int {
	n := 0
	for _, occupant := range b.squares {
		if occupant == p {
			n++
		}
	}
	return n
}

// MarshalJSON encodes the occupied squares as {"e1": {"type": "king", "color": "white"}, ...}.
func (b Board) MarshalJSON() ([]byte, error) {
	placement := make(map[string]Piece)
	b.Each(func(sq Square, p Piece) {
		placement[sq.String()] = p
	})
	return json.Marshal(placement)
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var placement map[string]Piece
	if err := json.Unmarshal(data, &placement); err != nil {
		return err
	}
	var board Board
	for label, p := range placement {
		sq, err := ParseSquare(label)
		if err != nil {
			return err
		}
		board.Place(sq, p)
	}
	*b = board
	return nil
}

var backRankOrder = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func NewStandardBoard() Board {
	var board Board
	for file := 0; file < 8; file++ {
		board.Place(Square{File: file, Rank: 1}, Piece{Type: backRankOrder[file], Color: PlayerColorWhite})
		board.Place(Square{File: file, Rank: 2}, Piece{Type: Pawn, Color: PlayerColorWhite})
		board.Place(Square{File: file, Rank: 7}, Piece{Type: Pawn, Color: PlayerColorBlack})
		board.Place(Square{File: file, Rank: 8}, Piece{Type: backRankOrder[file], Color: PlayerColorBlack})
	}
	return board
}
