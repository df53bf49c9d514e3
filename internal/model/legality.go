package model

// LegalMoves returns the destinations the piece on from may legally reach. An empty
// square or a finished game yields the empty set. En passant is only offered to the
// side to move, since the target expires after one ply.
func (s GameState) LegalMoves(from Square) SquareSet {
	if s.Status.Terminal() {
		return 0
	}
	piece, ok := s.Board.Occupant(from)
	if !ok {
		return 0
	}
	enPassant := s.EnPassantTarget
	if piece.Color != s.ToMove {
		enPassant = nil
	}
	var legal SquareSet
	for _, to := range PseudoLegalMoves(&s.Board, from, enPassant, s.Castling).Squares() {
		if !leavesKingAttacked(s.Board, piece, from, to, enPassant) {
			legal = legal.Add(to)
		}
	}
	return legal
}

// leavesKingAttacked plays the move on a copy of board and checks the mover's king.
func leavesKingAttacked(board Board, piece Piece, from, to Square, enPassant *Square) bool {
	applyToBoard(&board, piece, from, to, enPassant, Queen)
	return InCheck(&board, piece.Color)
}

func (s GameState) LegalMovesForSide(color PlayerColor) []SimpleMove {
	moves := []SimpleMove{}
	s.Board.Each(func(from Square, p Piece) {
		if p.Color != color {
			return
		}
		for _, to := range s.LegalMoves(from).Squares() {
			moves = append(moves, SimpleMove{From: from, To: to})
		}
	})
	return moves
}

func (s GameState) HasLegalMove(color PlayerColor) bool {
	for i, p := range s.Board.squares {
		if p.IsZero() || p.Color != color {
			continue
		}
		if !s.LegalMoves(squareAt(i)).Empty() {
			return true
		}
	}
	return false
}
