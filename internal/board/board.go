package board

// HouseKind selects one of the three constraint groupings.
type HouseKind int

const (
	Row HouseKind = iota
	Col
	Block
)

// Board holds the 81 candidate sets of a 9x9 grid, row-major
// (index = row*9 + col).
type Board struct {
	cells [81]CellSet
}

// New returns a blank board: every cell may hold any digit.
func New() *Board {
	var b Board
	for i := range b.cells {
		b.cells[i] = FullSet
	}
	return &b
}

// FromValues builds a board from a value grid, seeding each clue (1..9) as a
// singleton and each blank (0) as the full set.
func FromValues(values [9][9]uint8) *Board {
	var b Board
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := values[r][c]; v >= 1 && v <= 9 {
				b.cells[r*9+c] = Single(v)
			} else {
				b.cells[r*9+c] = FullSet
			}
		}
	}
	return &b
}

// Values renders the board back to a value grid. Singleton cells map to
// their digit, everything else (undetermined or contradictory) to 0.
func (b *Board) Values() [9][9]uint8 {
	var out [9][9]uint8
	for i, s := range b.cells {
		out[i/9][i%9] = s.Value()
	}
	return out
}

// Clone returns an independent copy for branch-local mutation.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

func (b *Board) Get(row, col int) CellSet    { return b.cells[row*9+col] }
func (b *Board) Set(row, col int, s CellSet) { b.cells[row*9+col] = s }
func (b *Board) At(index int) CellSet        { return b.cells[index] }
func (b *Board) SetAt(index int, s CellSet)  { b.cells[index] = s }

// House returns the cell indices of the given row, column or block.
// Blocks are numbered b = 3*(r/3) + c/3.
func House(kind HouseKind, index int) [9]int {
	var out [9]int
	switch kind {
	case Row:
		for c := 0; c < 9; c++ {
			out[c] = index*9 + c
		}
	case Col:
		for r := 0; r < 9; r++ {
			out[r] = r*9 + index
		}
	default:
		r0, c0 := (index/3)*3, (index%3)*3
		for i := 0; i < 9; i++ {
			out[i] = (r0+i/3)*9 + c0 + i%3
		}
	}
	return out
}

// Viable reports that no cell has run out of candidates.
func (b *Board) Viable() bool {
	for _, s := range b.cells {
		if s.IsEmpty() {
			return false
		}
	}
	return true
}

// Consistent reports that no house holds the same digit in two filled cells.
func (b *Board) Consistent() bool {
	for _, kind := range []HouseKind{Row, Col, Block} {
		for index := 0; index < 9; index++ {
			var seen CellSet
			for _, i := range House(kind, index) {
				s := b.cells[i]
				if !s.IsSingle() {
					continue
				}
				if seen&s != 0 {
					return false
				}
				seen |= s
			}
		}
	}
	return true
}

// Filled reports that every cell is down to a single candidate.
func (b *Board) Filled() bool {
	for _, s := range b.cells {
		if !s.IsSingle() {
			return false
		}
	}
	return true
}

// Solved means filled and consistent: every house is a permutation of 1..9.
func (b *Board) Solved() bool {
	return b.Filled() && b.Consistent()
}

// FilledCount returns the number of singleton cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, s := range b.cells {
		if s.IsSingle() {
			n++
		}
	}
	return n
}

// Equal is cell-wise candidate-set equality.
func (b *Board) Equal(o *Board) bool {
	return b.cells == o.cells
}
