package model

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Position describes an arbitrary starting point for a game.
type Position struct {
	Board           Board          `json:"board"`
	ToMove          PlayerColor    `json:"toMove"`
	Castling        CastlingRights `json:"castling"`
	EnPassantTarget *Square        `json:"enPassantTarget"`
}

// NewGameFromPosition starts a game from pos. Every problem found in pos is reported
// in a single multierror whose entries all wrap ErrInvalidPosition. Castling rights
// whose king or rook is not on its home square are dropped rather than rejected.
func NewGameFromPosition(pos Position) (GameState, error) {
	var result *multierror.Error

	if !pos.ToMove.Valid() {
		result = multierror.Append(result, errors.Wrapf(ErrInvalidPosition, "side to move %q", pos.ToMove))
	}
	for _, color := range []PlayerColor{PlayerColorWhite, PlayerColorBlack} {
		if n := pos.Board.Count(Piece{Type: King, Color: color}); n != 1 {
			result = multierror.Append(result, errors.Wrapf(ErrInvalidPosition, "%s has %d kings", color, n))
		}
	}
	pos.Board.Each(func(sq Square, p Piece) {
		if !p.Type.Valid() || !p.Color.Valid() {
			result = multierror.Append(result, errors.Wrapf(ErrInvalidPosition, "unknown piece %q on %s", p, sq))
			return
		}
		if p.Type == Pawn && (sq.Rank == 1 || sq.Rank == 8) {
			result = multierror.Append(result, errors.Wrapf(ErrInvalidPosition, "%s on back rank %s", p, sq))
		}
	})
	if pos.EnPassantTarget != nil && pos.ToMove.Valid() {
		if err := validateEnPassantTarget(&pos.Board, *pos.EnPassantTarget, pos.ToMove); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if pos.ToMove.Valid() && InCheck(&pos.Board, pos.ToMove.Opponent()) {
		result = multierror.Append(result, errors.Wrapf(ErrInvalidPosition, "%s is in check but not to move", pos.ToMove.Opponent()))
	}
	if err := result.ErrorOrNil(); err != nil {
		return GameState{}, err
	}

	state := GameState{
		Board:           pos.Board,
		ToMove:          pos.ToMove,
		Castling:        normalizeCastling(&pos.Board, pos.Castling),
		EnPassantTarget: pos.EnPassantTarget,
		MoveHistory:     make([]Move, 0),
		CapturedPieces:  newCapturedPieces(),
	}
	state.updateStatus()
	return state, nil
}

// validateEnPassantTarget checks that target is the empty square just skipped by an
// opposing pawn's double step.
func validateEnPassantTarget(board *Board, target Square, toMove PlayerColor) error {
	mover := toMove.Opponent()
	if !target.Valid() {
		return errors.Wrapf(ErrInvalidPosition, "en passant target %s", target)
	}
	if target.Rank != mover.pawnStartRank()+mover.pawnDirection() {
		return errors.Wrapf(ErrInvalidPosition, "en passant target %s on wrong rank", target)
	}
	if !isEmpty(board, target) {
		return errors.Wrapf(ErrInvalidPosition, "en passant target %s is occupied", target)
	}
	pawnSquare := Square{File: target.File, Rank: target.Rank + mover.pawnDirection()}
	if p, ok := board.Occupant(pawnSquare); !ok || p != (Piece{Type: Pawn, Color: mover}) {
		return errors.Wrapf(ErrInvalidPosition, "no %s pawn in front of en passant target %s", mover, target)
	}
	return nil
}

func normalizeCastling(board *Board, rights CastlingRights) CastlingRights {
	for _, color := range []PlayerColor{PlayerColorWhite, PlayerColorBlack} {
		if p, ok := board.Occupant(kingHome(color)); !ok || p != (Piece{Type: King, Color: color}) {
			rights = rights.revokeColor(color)
			continue
		}
		kingside, queenside := castleWings(color)
		rook := Piece{Type: Rook, Color: color}
		if p, _ := board.Occupant(kingside.rookFrom); p != rook {
			rights = rights.revoke(kingside.rookFrom)
		}
		if p, _ := board.Occupant(queenside.rookFrom); p != rook {
			rights = rights.revoke(queenside.rookFrom)
		}
	}
	return rights
}
