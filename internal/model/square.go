package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// Square is a board coordinate. File runs 0-7 (a-h) and Rank runs 1-8.
type Square struct {
	File int
	Rank int
}

func ParseSquare(label string) (Square, error) {
	if len(label) != 2 {
		return Square{}, errors.Wrapf(ErrInvalidSquare, "%q", label)
	}
	sq := Square{File: int(label[0] - 'a'), Rank: int(label[1] - '0')}
	if !sq.Valid() {
		return Square{}, errors.Wrapf(ErrInvalidSquare, "%q", label)
	}
	return sq, nil
}

// MustParseSquare is ParseSquare for constant labels; it panics on bad input.
func MustParseSquare(label string) Square {
	sq, err := ParseSquare(label)
	if err != nil {
		panic(err)
	}
	return sq
}

func (s Square) Valid() bool {
	return s.File >= 0 && s.File < 8 && s.Rank >= 1 && s.Rank <= 8
}

func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("square(%d,%d)", s.File, s.Rank)
	}
	return fmt.Sprintf("%c%d", 'a'+s.File, s.Rank)
}

// Offset returns the square df files and dr ranks away, and false if it falls off the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	next := Square{File: s.File + df, Rank: s.Rank + dr}
	return next, next.Valid()
}

func (s Square) index() int {
	return (s.Rank-1)*8 + s.File
}

func squareAt(index int) Square {
	return Square{File: index % 8, Rank: index/8 + 1}
}

func (s Square) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.Wrapf(ErrInvalidSquare, "file %d rank %d", s.File, s.Rank)
	}
	return []byte(s.String()), nil
}

func (s *Square) UnmarshalText(text []byte) error {
	sq, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}
