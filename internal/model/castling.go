package model

type CastlingRights struct {
	WhiteKingside  bool `json:"whiteKingside"`
	WhiteQueenside bool `json:"whiteQueenside"`
	BlackKingside  bool `json:"blackKingside"`
	BlackQueenside bool `json:"blackQueenside"`
}

func AllCastlingRights() CastlingRights {
	return CastlingRights{WhiteKingside: true, WhiteQueenside: true, BlackKingside: true, BlackQueenside: true}
}

func (r CastlingRights) Kingside(c PlayerColor) bool {
	if c == PlayerColorWhite {
		return r.WhiteKingside
	}
	return r.BlackKingside
}

func (r CastlingRights) Queenside(c PlayerColor) bool {
	if c == PlayerColorWhite {
		return r.WhiteQueenside
	}
	return r.BlackQueenside
}

// Subset reports whether every right held by r is also held by other.
func (r CastlingRights) Subset(other CastlingRights) bool {
	return (!r.WhiteKingside || other.WhiteKingside) &&
		(!r.WhiteQueenside || other.WhiteQueenside) &&
		(!r.BlackKingside || other.BlackKingside) &&
		(!r.BlackQueenside || other.BlackQueenside)
}

// castleWing describes one castling option for one color.
type castleWing struct {
	kingTo   Square
	rookFrom Square
	rookTo   Square
	between  []Square // must be empty
	safe     []Square // king start, transit and destination must be unattacked
}

func castleWings(c PlayerColor) (kingside, queenside castleWing) {
	rank := c.backRank()
	sq := func(file int) Square { return Square{File: file, Rank: rank} }
	kingside = castleWing{
		kingTo:   sq(6),
		rookFrom: sq(7),
		rookTo:   sq(5),
		between:  []Square{sq(5), sq(6)},
		safe:     []Square{sq(4), sq(5), sq(6)},
	}
	queenside = castleWing{
		kingTo:   sq(2),
		rookFrom: sq(0),
		rookTo:   sq(3),
		between:  []Square{sq(1), sq(2), sq(3)},
		safe:     []Square{sq(4), sq(3), sq(2)},
	}
	return kingside, queenside
}

func kingHome(c PlayerColor) Square {
	return Square{File: 4, Rank: c.backRank()}
}

// revoke clears every right tied to sq: a king leaving its home square or a rook
// leaving or being captured on a corner.
func (r CastlingRights) revoke(sq Square) CastlingRights {
	switch sq {
	case Square{File: 4, Rank: 1}:
		r.WhiteKingside, r.WhiteQueenside = false, false
	case Square{File: 4, Rank: 8}:
		r.BlackKingside, r.BlackQueenside = false, false
	case Square{File: 0, Rank: 1}:
		r.WhiteQueenside = false
	case Square{File: 7, Rank: 1}:
		r.WhiteKingside = false
	case Square{File: 0, Rank: 8}:
		r.BlackQueenside = false
	case Square{File: 7, Rank: 8}:
		r.BlackKingside = false
	}
	return r
}

func (r CastlingRights) revokeColor(c PlayerColor) CastlingRights {
	if c == PlayerColorWhite {
		r.WhiteKingside, r.WhiteQueenside = false, false
	} else {
		r.BlackKingside, r.BlackQueenside = false, false
	}
	return r
}
