package model

// MoveRequest is what a caller submits to commit a move. An empty Promotion means queen.
type MoveRequest struct {
	From      Square    `json:"from"`
	To        Square    `json:"to"`
	Promotion PieceType `json:"promotion,omitempty"`
}

type CastleRookMove struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

type Ply struct {
	Piece          Piece           `json:"piece"`
	From           Square          `json:"from"`
	To             Square          `json:"to"`
	CapturedPiece  *Piece          `json:"capturedPiece"`
	CastleRookMove *CastleRookMove `json:"castleRookMove"`
	Promotion      PieceType       `json:"promotion,omitempty"`
	EnPassant      bool            `json:"enPassant"`
}

// Move pairs White's ply with Black's reply. Either side may be missing when a game
// starts from a position with Black to move or ends after White's ply.
type Move struct {
	WhitePly *Ply `json:"whitePly"`
	BlackPly *Ply `json:"blackPly"`
}

type SimpleMove struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// String renders the move in coordinate form, e.g. "e2e4".
func (m SimpleMove) String() string {
	return m.From.String() + m.To.String()
}
