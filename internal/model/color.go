package model

type PlayerColor string

const (
	PlayerColorWhite PlayerColor = "white"
	PlayerColorBlack PlayerColor = "black"
)

func (c PlayerColor) Opponent() PlayerColor {
	if c == PlayerColorWhite {
		return PlayerColorBlack
	}
	return PlayerColorWhite
}

func (c PlayerColor) Valid() bool {
	return c == PlayerColorWhite || c == PlayerColorBlack
}

// pawnDirection is the rank delta of a forward pawn step.
func (c PlayerColor) pawnDirection() int {
	if c == PlayerColorWhite {
		return 1
	}
	return -1
}

func (c PlayerColor) backRank() int {
	if c == PlayerColorWhite {
		return 1
	}
	return 8
}

func (c PlayerColor) pawnStartRank() int {
	if c == PlayerColorWhite {
		return 2
	}
	return 7
}

// promotionRank is the farthest rank from c's side of the board.
func (c PlayerColor) promotionRank() int {
	return c.Opponent().backRank()
}
