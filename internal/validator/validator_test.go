package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
)

func TestValidateCleanBoard(t *testing.T) {
	b := &domain.Board{Values: [9][9]uint8{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
	}}
	ok, conflicts, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, conflicts)
}

func TestValidateConflicts(t *testing.T) {
	cases := []struct {
		name string
		set  func(v *[9][9]uint8)
		want domain.CellCoord
	}{
		{"row", func(v *[9][9]uint8) { v[0][0], v[0][8] = 4, 4 }, domain.CellCoord{Row: 0, Col: 8}},
		{"col", func(v *[9][9]uint8) { v[0][3], v[8][3] = 7, 7 }, domain.CellCoord{Row: 8, Col: 3}},
		{"block", func(v *[9][9]uint8) { v[3][3], v[5][5] = 2, 2 }, domain.CellCoord{Row: 5, Col: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var values [9][9]uint8
			tc.set(&values)
			ok, conflicts, err := New().Validate(context.Background(), &domain.Board{Values: values})
			require.NoError(t, err)
			require.False(t, ok)
			require.Contains(t, conflicts, tc.want)
		})
	}
}

func TestValidateEmptyBoard(t *testing.T) {
	ok, conflicts, err := New().Validate(context.Background(), &domain.Board{})
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, conflicts)
}
