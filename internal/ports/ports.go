package ports

import (
	"context"
	"time"

	"svw.info/sudoku-engine/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver runs the constraint-propagation + backtracking search.
type Solver interface {
	// Solve returns the first solution found, or solver.ErrNoSolution.
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	// SolveAll enumerates every distinct solution; an empty slice is a
	// normal outcome for an unsolvable board.
	SolveAll(ctx context.Context, b *domain.Board) ([]*domain.Board, Stats, error)
	// Unique reports whether the board has exactly one solution.
	Unique(ctx context.Context, b *domain.Board) (bool, Stats, error)
}

// Generator creates puzzles with a provably unique solution.
type Generator interface {
	// Generate carves a puzzle with at least minFilled given cells out of a
	// random full solution, and returns both.
	Generate(ctx context.Context, seed int64, minFilled int) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}
