package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// A classic, solvable Sudoku (0 = empty).
var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var sampleSolution = [9][9]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestFromValuesRoundTrip(t *testing.T) {
	b := FromValues(sample)
	require.Equal(t, sample, b.Values())

	// Clues seed singletons, blanks the full set.
	require.Equal(t, Single(5), b.Get(0, 0))
	require.Equal(t, FullSet, b.Get(0, 2))
}

func TestHouseIndices(t *testing.T) {
	require.Equal(t, [9]int{0, 1, 2, 3, 4, 5, 6, 7, 8}, House(Row, 0))
	require.Equal(t, [9]int{2, 11, 20, 29, 38, 47, 56, 65, 74}, House(Col, 2))
	// Center block covers rows 3..5, cols 3..5.
	require.Equal(t, [9]int{30, 31, 32, 39, 40, 41, 48, 49, 50}, House(Block, 4))
}

// Every cell belongs to exactly one house of each kind.
func TestHouseTripleMembership(t *testing.T) {
	for _, kind := range []HouseKind{Row, Col, Block} {
		var covered [81]int
		for index := 0; index < 9; index++ {
			for _, cell := range House(kind, index) {
				covered[cell]++
			}
		}
		for cell, n := range covered {
			require.Equalf(t, 1, n, "cell %d covered %d times by kind %v", cell, n, kind)
		}
	}
}

func TestPredicates(t *testing.T) {
	b := FromValues(sample)
	require.True(t, b.Viable())
	require.True(t, b.Consistent())
	require.False(t, b.Filled())
	require.False(t, b.Solved())

	solved := FromValues(sampleSolution)
	require.True(t, solved.Filled())
	require.True(t, solved.Solved())

	// Duplicate in a row breaks consistency but not viability.
	dup := sample
	dup[0][8] = 5
	db := FromValues(dup)
	require.True(t, db.Viable())
	require.False(t, db.Consistent())

	// An emptied set breaks viability only.
	eb := FromValues(sample)
	eb.Set(0, 2, EmptySet)
	require.False(t, eb.Viable())
	require.True(t, eb.Consistent())
	require.False(t, eb.Solved())
}

func TestFilledCount(t *testing.T) {
	require.Equal(t, 81, FromValues(sampleSolution).FilledCount())
	require.Equal(t, 30, FromValues(sample).FilledCount())
	require.Equal(t, 0, New().FilledCount())
}

func TestCloneIsIndependent(t *testing.T) {
	b := FromValues(sample)
	c := b.Clone()
	require.True(t, b.Equal(c))

	c.Set(0, 2, Single(4))
	require.False(t, b.Equal(c))
	require.Equal(t, FullSet, b.Get(0, 2))
}
