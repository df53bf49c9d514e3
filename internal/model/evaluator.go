package model

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Apply commits a move and returns the resulting state. The move must be one of
// LegalMoves(from) for the side to move; anything else is rejected with an error and
// the receiver is returned unchanged.
func (s GameState) Apply(from, to Square, promotion PieceType) (GameState, error) {
	if s.Status.Terminal() {
		return s, errors.Wrapf(ErrGameOver, "game ended in %s", s.Status)
	}
	if !from.Valid() || !to.Valid() {
		return s, errors.Wrapf(ErrInvalidSquare, "move %s to %s", from, to)
	}
	piece, ok := s.Board.Occupant(from)
	if !ok {
		return s, errors.Wrapf(ErrNoPiece, "%s", from)
	}
	if piece.Color != s.ToMove {
		return s, errors.Wrapf(ErrNotYourTurn, "%s to move", s.ToMove)
	}
	if promotion == "" {
		promotion = Queen
	}
	if !slices.Contains(PromotionChoices, promotion) {
		return s, errors.Wrapf(ErrInvalidPromotion, "%q", promotion)
	}
	if !s.LegalMoves(from).Has(to) {
		return s, errors.Wrapf(ErrIllegalMove, "%s from %s to %s", piece, from, to)
	}
	return s.commit(piece, from, to, promotion), nil
}

// ApplyRequest is Apply for a MoveRequest.
func (s GameState) ApplyRequest(req MoveRequest) (GameState, error) {
	return s.Apply(req.From, req.To, req.Promotion)
}

// commit applies an already validated move.
func (s GameState) commit(piece Piece, from, to Square, promotion PieceType) GameState {
	next := s
	fx := applyToBoard(&next.Board, piece, from, to, s.EnPassantTarget, promotion)

	// a double step leaves the skipped square as the only en passant target
	next.EnPassantTarget = nil
	if piece.Type == Pawn && abs(to.Rank-from.Rank) == 2 {
		skipped := Square{File: from.File, Rank: (from.Rank + to.Rank) / 2}
		next.EnPassantTarget = &skipped
	}

	if piece.Type == King {
		next.Castling = next.Castling.revokeColor(piece.Color)
	}
	next.Castling = next.Castling.revoke(from).revoke(to)

	next.ToMove = s.ToMove.Opponent()
	next.recordPly(Ply{
		Piece:          piece,
		From:           from,
		To:             to,
		CapturedPiece:  fx.captured,
		CastleRookMove: fx.castleRook,
		Promotion:      fx.promoted,
		EnPassant:      fx.enPassant,
	})
	next.LastMove = &SimpleMove{From: from, To: to}
	next.updateStatus()
	return next
}

type boardEffects struct {
	captured   *Piece
	castleRook *CastleRookMove
	promoted   PieceType
	enPassant  bool
}

// applyToBoard performs the board side of a move: en passant removal, the castling
// rook hop, the relocation itself and promotion.
func applyToBoard(board *Board, piece Piece, from, to Square, enPassant *Square, promotion PieceType) boardEffects {
	var fx boardEffects
	if captured, ok := board.Occupant(to); ok {
		fx.captured = &captured
	}

	if piece.Type == Pawn && enPassant != nil && to == *enPassant {
		// the victim stands one rank behind the target, toward the mover's side
		victimSquare := Square{File: to.File, Rank: to.Rank - piece.Color.pawnDirection()}
		if victim, ok := board.Occupant(victimSquare); ok {
			fx.captured = &victim
		}
		board.Remove(victimSquare)
		fx.enPassant = true
	}

	if piece.Type == King && abs(to.File-from.File) == 2 {
		kingside, queenside := castleWings(piece.Color)
		wing := queenside
		if to.File > from.File {
			wing = kingside
		}
		board.MoveRaw(wing.rookFrom, wing.rookTo)
		fx.castleRook = &CastleRookMove{From: wing.rookFrom, To: wing.rookTo}
	}

	board.MoveRaw(from, to)

	if piece.Type == Pawn && to.Rank == piece.Color.promotionRank() {
		board.Place(to, Piece{Type: promotion, Color: piece.Color})
		fx.promoted = promotion
	}
	return fx
}

// recordPly appends to the history and capture lists without touching the slices
// shared with the previous state.
func (s *GameState) recordPly(ply Ply) {
	history := slices.Clone(s.MoveHistory)
	switch {
	case ply.Piece.Color == PlayerColorWhite:
		history = append(history, Move{WhitePly: &ply})
	case len(history) == 0 || history[len(history)-1].BlackPly != nil:
		history = append(history, Move{BlackPly: &ply})
	default:
		last := history[len(history)-1]
		last.BlackPly = &ply
		history[len(history)-1] = last
	}
	s.MoveHistory = history

	if ply.CapturedPiece == nil {
		return
	}
	captured := CapturedPieces{
		White: slices.Clone(s.CapturedPieces.White),
		Black: slices.Clone(s.CapturedPieces.Black),
	}
	if ply.Piece.Color == PlayerColorWhite {
		captured.White = append(captured.White, *ply.CapturedPiece)
	} else {
		captured.Black = append(captured.Black, *ply.CapturedPiece)
	}
	s.CapturedPieces = captured
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
