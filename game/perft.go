package game

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/navanchauhan/gochess/board"
)

// Perft counts the leaf nodes of the legal move tree rooted at pos to the
// given depth, grounded on common/perft_test.go's recursive walk.
func Perft(pos board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := legalMoves(&pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	var result uint64
	for _, mv := range moves {
		child, _ := apply(pos, mv, board.Queen)
		result += Perft(child, depth-1)
	}
	return result
}

// PerftParallel is Perft with the first ply fanned out across goroutines
// via errgroup, one per root move, for the deeper depths where a single
// goroutine's wall-clock cost matters.
func PerftParallel(ctx context.Context, pos board.Position, depth int) (uint64, error) {
	if depth <= 1 {
		return Perft(pos, depth), nil
	}

	moves := legalMoves(&pos)
	counts := make([]uint64, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	for i, mv := range moves {
		i, mv := i, mv
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child, _ := apply(pos, mv, board.Queen)
			counts[i] = Perft(child, depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total uint64
	for _, c := range counts {
		total += c
	}
	return total, nil
}
