// Command perft counts move paths from the initial position, optionally after a
// sequence of coordinate moves, and prints the per-move breakdown.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/pkg/errors"
)

func main() {
	depth := flag.Int("depth", 3, "search depth in plies")
	moves := flag.String("moves", "", "space separated moves to play first, e.g. \"e2e4 e7e5\"")
	divide := flag.Bool("divide", false, "print the count below every root move")
	flag.Parse()

	if err := run(*depth, *moves, *divide); err != nil {
		fmt.Fprintln(os.Stderr, "perft:", err)
		os.Exit(1)
	}
}

func run(depth int, moves string, divide bool) error {
	if depth < 1 {
		return errors.Errorf("depth must be at least 1, got %d", depth)
	}
	state, err := playMoves(model.NewGame(), strings.Fields(moves))
	if err != nil {
		return err
	}

	start := time.Now()
	var total uint64
	if divide {
		counts := model.Divide(state, depth)
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s: %d\n", k, counts[k])
			total += counts[k]
		}
		fmt.Println()
	} else {
		total = model.Perft(state, depth)
	}
	elapsed := time.Since(start)

	fmt.Printf("depth %d: %d nodes in %s\n", depth, total, elapsed.Round(time.Millisecond))
	return nil
}

// playMoves applies coordinate moves like "e2e4" or "a7a8n".
func playMoves(state model.GameState, moves []string) (model.GameState, error) {
	for _, m := range moves {
		if len(m) != 4 && len(m) != 5 {
			return state, errors.Errorf("bad move %q", m)
		}
		from, err := model.ParseSquare(m[0:2])
		if err != nil {
			return state, err
		}
		to, err := model.ParseSquare(m[2:4])
		if err != nil {
			return state, err
		}
		var promotion model.PieceType
		if len(m) == 5 {
			promotion, err = promotionFromSymbol(m[4:])
			if err != nil {
				return state, err
			}
		}
		state, err = state.Apply(from, to, promotion)
		if err != nil {
			return state, errors.Wrapf(err, "move %s", m)
		}
	}
	return state, nil
}

func promotionFromSymbol(symbol string) (model.PieceType, error) {
	for _, choice := range model.PromotionChoices {
		if choice.Symbol() == symbol {
			return choice, nil
		}
	}
	return "", errors.Wrapf(model.ErrInvalidPromotion, "%q", symbol)
}
