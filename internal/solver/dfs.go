package solver

import (
	"context"
	"math/rand"

	"svw.info/sudoku-engine/internal/board"
)

// search walks cells in raster order starting at cursor. At every node it
// propagates to a local fixpoint, prunes dead branches, and otherwise tries
// each remaining candidate of the cursor cell on an independent clone.
// Already-filled cells fall through naturally: their single candidate yields
// exactly one branch.
//
// In single-solution mode (all=false) it returns true as soon as the first
// solution lands in *solutions; enumeration mode keeps going until the
// space is exhausted. A shuffled branch order is used when rng is non-nil.
func search(ctx context.Context, b *board.Board, cursor int, all bool, rng *rand.Rand, nodes *int, solutions *[]*board.Board) bool {
	if ctx.Err() != nil {
		return true
	}
	b.Propagate()
	if !b.Viable() || !b.Consistent() {
		return false
	}
	if b.Solved() {
		*solutions = append(*solutions, b)
		return !all
	}

	candidates := b.At(cursor).Values()
	if rng != nil {
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	}
	for _, v := range candidates {
		*nodes++
		branch := b.Clone()
		branch.SetAt(cursor, board.Single(v))
		if search(ctx, branch, cursor+1, all, rng, nodes, solutions) {
			return true
		}
	}
	return false
}

// SolveOne finds the first solution of b, or nil if none exists. The input
// board is not modified. Branch values are tried in ascending order unless
// rng is non-nil, so a nil rng makes the result deterministic.
func SolveOne(ctx context.Context, b *board.Board, rng *rand.Rand) (*board.Board, int) {
	nodes := 0
	var solutions []*board.Board
	search(ctx, b.Clone(), 0, false, rng, &nodes, &solutions)
	if len(solutions) == 0 {
		return nil, nodes
	}
	return solutions[0], nodes
}

// SolveAll enumerates every solution of b without modifying it.
func SolveAll(ctx context.Context, b *board.Board, rng *rand.Rand) ([]*board.Board, int) {
	nodes := 0
	var solutions []*board.Board
	search(ctx, b.Clone(), 0, true, rng, &nodes, &solutions)
	return solutions, nodes
}
