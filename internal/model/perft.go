package model

// Perft counts the move paths of the given depth from s. Each promotion counts once
// per promotion piece.
func Perft(s GameState, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range s.LegalMovesForSide(s.ToMove) {
		piece, _ := s.Board.Occupant(m.From)
		for _, promotion := range promotionsFor(piece, m.To) {
			if depth == 1 {
				nodes++
				continue
			}
			nodes += Perft(s.commit(piece, m.From, m.To, promotion), depth-1)
		}
	}
	return nodes
}

// Divide splits Perft by root move, keyed by coordinate notation ("e2e4", "e7e8q").
func Divide(s GameState, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth < 1 {
		return counts
	}
	for _, m := range s.LegalMovesForSide(s.ToMove) {
		piece, _ := s.Board.Occupant(m.From)
		choices := promotionsFor(piece, m.To)
		for _, promotion := range choices {
			key := m.String()
			if len(choices) > 1 {
				key += promotion.Symbol()
			}
			counts[key] = Perft(s.commit(piece, m.From, m.To, promotion), depth-1)
		}
	}
	return counts
}

func promotionsFor(piece Piece, to Square) []PieceType {
	if piece.Type == Pawn && to.Rank == piece.Color.promotionRank() {
		return PromotionChoices
	}
	return []PieceType{Queen}
}
