package model

// attackedSquares returns the squares the piece on from attacks. Unlike movement,
// a pawn attacks both forward diagonals whether or not anything stands there, and
// a blocker of either color ends a ray on the blocker's square.
func attackedSquares(board *Board, from Square, piece Piece) SquareSet {
	var attacks SquareSet
	switch piece.Type {
	case Pawn:
		for _, df := range []int{-1, 1} {
			if target, ok := from.Offset(df, piece.Color.pawnDirection()); ok {
				attacks = attacks.Add(target)
			}
		}
	case Knight:
		attacks = stepAttacks(from, knightDirs)
	case King:
		attacks = stepAttacks(from, kingDirs)
	case Bishop:
		attacks = rayAttacks(board, from, bishopDirs)
	case Rook:
		attacks = rayAttacks(board, from, rookDirs)
	case Queen:
		attacks = rayAttacks(board, from, queenDirs)
	}
	return attacks
}

func stepAttacks(from Square, dirs []offset) SquareSet {
	var attacks SquareSet
	for _, dir := range dirs {
		if target, ok := from.Offset(dir.df, dir.dr); ok {
			attacks = attacks.Add(target)
		}
	}
	return attacks
}

func rayAttacks(board *Board, from Square, dirs []offset) SquareSet {
	var attacks SquareSet
	for _, dir := range dirs {
		target, ok := from.Offset(dir.df, dir.dr)
		for ok {
			attacks = attacks.Add(target)
			if !isEmpty(board, target) {
				break
			}
			target, ok = target.Offset(dir.df, dir.dr)
		}
	}
	return attacks
}

// IsSquareAttacked reports whether any piece of color by attacks sq.
func IsSquareAttacked(board *Board, sq Square, by PlayerColor) bool {
	for i, p := range board.squares {
		if p.IsZero() || p.Color != by {
			continue
		}
		if attackedSquares(board, squareAt(i), p).Has(sq) {
			return true
		}
	}
	return false
}

// InCheck reports whether color's king is attacked. A board without that king is
// never in check.
func InCheck(board *Board, color PlayerColor) bool {
	king, ok := board.FindKing(color)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, color.Opponent())
}
