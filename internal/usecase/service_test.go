package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/generator"
	"svw.info/sudoku-engine/internal/solver"
	"svw.info/sudoku-engine/internal/validator"
)

func TestServiceUnconfigured(t *testing.T) {
	u := &Service{}
	ctx := context.Background()

	_, _, err := u.Solve(ctx, &domain.Board{})
	require.ErrorIs(t, err, errNotConfigured)
	_, _, err = u.SolveAll(ctx, &domain.Board{})
	require.ErrorIs(t, err, errNotConfigured)
	_, _, err = u.Generate(ctx, 1, 30)
	require.ErrorIs(t, err, errNotConfigured)
	_, _, err = u.Validate(ctx, &domain.Board{})
	require.ErrorIs(t, err, errNotConfigured)
}

func TestServiceStampsGeneratedPuzzles(t *testing.T) {
	u := NewService(solver.New(), generator.New(), validator.New())
	p, _, err := u.Generate(context.Background(), 11, 45)
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)

	q, _, err := u.Generate(context.Background(), 11, 45)
	require.NoError(t, err)
	require.NotEqual(t, p.ID, q.ID)
	// Same seed still reproduces the same board.
	require.Equal(t, p.Board.Values, q.Board.Values)
}
