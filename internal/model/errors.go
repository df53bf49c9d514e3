package model

import "github.com/pkg/errors"

var (
	ErrGameOver         = errors.New("game is over")
	ErrNoPiece          = errors.New("no piece at from square")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrIllegalMove      = errors.New("illegal move")
	ErrInvalidSquare    = errors.New("invalid square")
	ErrInvalidPromotion = errors.New("invalid promotion piece")
	ErrInvalidPosition  = errors.New("invalid position")
)
