package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-engine/internal/board"
	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// ErrNoSolution means the search exhausted every branch. It is an expected
// outcome for unsolvable input, not a failure of the engine.
var ErrNoSolution = errors.New("no solution")

// Engine is the constraint-propagation + backtracking solver behind
// ports.Solver. The zero value solves with deterministic branch order.
type Engine struct{}

func New() *Engine { return &Engine{} }

func (e *Engine) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	solved, nodes := SolveOne(ctx, board.FromValues(b.Values), nil)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}
	if solved == nil {
		return nil, st, ErrNoSolution
	}
	return &domain.Board{Values: solved.Values(), Fixed: b.Fixed}, st, nil
}

func (e *Engine) SolveAll(ctx context.Context, b *domain.Board) ([]*domain.Board, ports.Stats, error) {
	start := time.Now()
	found, nodes := SolveAll(ctx, board.FromValues(b.Values), nil)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}
	out := make([]*domain.Board, 0, len(found))
	for _, s := range found {
		out = append(out, &domain.Board{Values: s.Values(), Fixed: b.Fixed})
	}
	return out, st, nil
}

// Unique reports whether the board has exactly one solution, by full
// enumeration of the solution space.
func (e *Engine) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	all, st, err := e.SolveAll(ctx, b)
	if err != nil {
		return false, st, err
	}
	return len(all) == 1, st, nil
}
