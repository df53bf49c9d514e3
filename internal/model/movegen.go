package model

type offset struct {
	df, dr int
}

var (
	rookDirs   = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs  = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightDirs = []offset{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingDirs   = queenDirs
)

// PseudoLegalMoves returns the destinations of the piece on from by its movement
// rules alone, including castling, without checking whether the mover's own king is
// left attacked.
func PseudoLegalMoves(board *Board, from Square, enPassant *Square, rights CastlingRights) SquareSet {
	piece, ok := board.Occupant(from)
	if !ok {
		return 0
	}
	moves := movementDestinations(board, from, piece, enPassant)
	if piece.Type == King {
		moves = moves.Union(castlingDestinations(board, from, piece.Color, rights))
	}
	return moves
}

// movementDestinations covers ordinary piece movement. It never produces castling
// destinations, so attack detection built on the same tables cannot recurse into
// castling legality.
func movementDestinations(board *Board, from Square, piece Piece, enPassant *Square) SquareSet {
	switch piece.Type {
	case Pawn:
		return pawnMoves(board, from, piece.Color, enPassant)
	case Knight:
		return stepMoves(board, from, piece.Color, knightDirs)
	case Bishop:
		return slideMoves(board, from, piece.Color, bishopDirs)
	case Rook:
		return slideMoves(board, from, piece.Color, rookDirs)
	case Queen:
		return slideMoves(board, from, piece.Color, queenDirs)
	case King:
		return stepMoves(board, from, piece.Color, kingDirs)
	}
	return 0
}

func pawnMoves(board *Board, from Square, color PlayerColor, enPassant *Square) SquareSet {
	var moves SquareSet
	dir := color.pawnDirection()
	// forward 1, then forward 2 from the starting rank
	if one, ok := from.Offset(0, dir); ok && isEmpty(board, one) {
		moves = moves.Add(one)
		if from.Rank == color.pawnStartRank() {
			if two, ok := from.Offset(0, 2*dir); ok && isEmpty(board, two) {
				moves = moves.Add(two)
			}
		}
	}
	for _, df := range []int{-1, 1} {
		target, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		if occupant, occupied := board.Occupant(target); occupied && occupant.Color != color {
			moves = moves.Add(target)
		}
		// en passant lands on an empty square; the captured pawn is removed on apply
		if enPassant != nil && *enPassant == target && isEmpty(board, target) {
			moves = moves.Add(target)
		}
	}
	return moves
}

func stepMoves(board *Board, from Square, color PlayerColor, dirs []offset) SquareSet {
	var moves SquareSet
	for _, dir := range dirs {
		target, ok := from.Offset(dir.df, dir.dr)
		if !ok {
			continue
		}
		if occupant, occupied := board.Occupant(target); !occupied || occupant.Color != color {
			moves = moves.Add(target)
		}
	}
	return moves
}

func slideMoves(board *Board, from Square, color PlayerColor, dirs []offset) SquareSet {
	var moves SquareSet
	for _, dir := range dirs {
		target, ok := from.Offset(dir.df, dir.dr)
		for ok {
			occupant, occupied := board.Occupant(target)
			if !occupied {
				moves = moves.Add(target)
			} else {
				if occupant.Color != color {
					moves = moves.Add(target)
				}
				break
			}
			target, ok = target.Offset(dir.df, dir.dr)
		}
	}
	return moves
}

func castlingDestinations(board *Board, from Square, color PlayerColor, rights CastlingRights) SquareSet {
	var moves SquareSet
	if from != kingHome(color) {
		return moves
	}
	kingside, queenside := castleWings(color)
	if rights.Kingside(color) && canCastle(board, color, kingside) {
		moves = moves.Add(kingside.kingTo)
	}
	if rights.Queenside(color) && canCastle(board, color, queenside) {
		moves = moves.Add(queenside.kingTo)
	}
	return moves
}

func canCastle(board *Board, color PlayerColor, wing castleWing) bool {
	if rook, ok := board.Occupant(wing.rookFrom); !ok || rook != (Piece{Type: Rook, Color: color}) {
		return false
	}
	for _, sq := range wing.between {
		if !isEmpty(board, sq) {
			return false
		}
	}
	for _, sq := range wing.safe {
		if IsSquareAttacked(board, sq, color.Opponent()) {
			return false
		}
	}
	return true
}

func isEmpty(board *Board, sq Square) bool {
	_, occupied := board.Occupant(sq)
	return !occupied
}
