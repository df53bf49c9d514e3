package model

type GameStatus string

const (
	StatusInProgress GameStatus = "in_progress"
	StatusCheckmate  GameStatus = "checkmate"
	StatusStalemate  GameStatus = "stalemate"
)

// Terminal reports whether no further moves are accepted.
func (s GameStatus) Terminal() bool {
	return s == StatusCheckmate || s == StatusStalemate
}

// GameState is a complete game position plus its history. It is a value: every
// operation that changes the game returns a new GameState and leaves the receiver
// untouched.
type GameState struct {
	Board           Board          `json:"board"`
	ToMove          PlayerColor    `json:"toMove"`
	Castling        CastlingRights `json:"castling"`
	EnPassantTarget *Square        `json:"enPassantTarget"`
	Status          GameStatus     `json:"status"`
	Winner          *PlayerColor   `json:"winner"`
	IsCheck         bool           `json:"isCheck"`
	MoveHistory     []Move         `json:"moveHistory"`
	CapturedPieces  CapturedPieces `json:"capturedPieces"`
	LastMove        *SimpleMove    `json:"lastMove"`
}

// CapturedPieces lists the pieces each side has taken.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

type StatusReport struct {
	Status  GameStatus   `json:"status"`
	ToMove  PlayerColor  `json:"toMove"`
	InCheck bool         `json:"inCheck"`
	Winner  *PlayerColor `json:"winner"`
}

func NewGame() GameState {
	return GameState{
		Board:          NewStandardBoard(),
		ToMove:         PlayerColorWhite,
		Castling:       AllCastlingRights(),
		Status:         StatusInProgress,
		MoveHistory:    make([]Move, 0),
		CapturedPieces: newCapturedPieces(),
	}
}

func newCapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: make([]Piece, 0),
		Black: make([]Piece, 0),
	}
}

func (s GameState) Report() StatusReport {
	return StatusReport{
		Status:  s.Status,
		ToMove:  s.ToMove,
		InCheck: s.IsCheck,
		Winner:  s.Winner,
	}
}

// updateStatus recomputes check and the terminal status for the side to move.
func (s *GameState) updateStatus() {
	s.IsCheck = InCheck(&s.Board, s.ToMove)
	s.Status = StatusInProgress
	s.Winner = nil
	if s.HasLegalMove(s.ToMove) {
		return
	}
	if s.IsCheck {
		winner := s.ToMove.Opponent()
		s.Status = StatusCheckmate
		s.Winner = &winner
		return
	}
	s.Status = StatusStalemate
}
