package model

import (
	"encoding/json"
	"math/bits"
)

// SquareSet is a set of squares, one bit per square from a1 (bit 0) to h8 (bit 63).
type SquareSet uint64

func NewSquareSet(squares ...Square) SquareSet {
	var set SquareSet
	for _, sq := range squares {
		set = set.Add(sq)
	}
	return set
}

func (s SquareSet) Has(sq Square) bool {
	return sq.Valid() && s&(1<<uint(sq.index())) != 0
}

func (s SquareSet) Add(sq Square) SquareSet {
	if !sq.Valid() {
		return s
	}
	return s | 1<<uint(sq.index())
}

func (s SquareSet) Remove(sq Square) SquareSet {
	if !sq.Valid() {
		return s
	}
	return s &^ (1 << uint(sq.index()))
}

func (s SquareSet) Union(other SquareSet) SquareSet { return s | other }

func (s SquareSet) Empty() bool { return s == 0 }

func (s SquareSet) Len() int { return bits.OnesCount64(uint64(s)) }

// Squares lists the members in a1, b1, ..., h8 order.
func (s SquareSet) Squares() []Square {
	squares := make([]Square, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		squares = append(squares, squareAt(bits.TrailingZeros64(rest)))
	}
	return squares
}

func (s SquareSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Squares())
}

func (s *SquareSet) UnmarshalJSON(data []byte) error {
	var squares []Square
	if err := json.Unmarshal(data, &squares); err != nil {
		return err
	}
	*s = NewSquareSet(squares...)
	return nil
}
