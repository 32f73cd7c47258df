package board

// Propagate shrinks candidate sets in place until a fixpoint: repeated
// passes over all 27 houses (rows, then columns, then blocks) applying two
// deductions per cell, stopping when a full pass reduces nothing or the
// board is solved. Returns the total number of set reductions.
//
// Contradictions are not reported here; an emptied set just leaves the
// board non-viable for the caller to detect.
func (b *Board) Propagate() int {
	total := 0
	reduced := 1
	for reduced > 0 && !b.Solved() {
		reduced = 0
		for _, kind := range []HouseKind{Row, Col, Block} {
			for index := 0; index < 9; index++ {
				reduced += b.shrinkHouse(kind, index)
			}
		}
		total += reduced
	}
	return total
}

// shrinkHouse applies the elimination and forced-value rules to one house.
// The nine cells are worked on in a local copy so deductions leak between
// cells of this house during the visit, but reach the rest of the board
// only through the single write-back at the end.
func (b *Board) shrinkHouse(kind HouseKind, index int) int {
	idx := House(kind, index)
	var focus [9]CellSet
	for i, cell := range idx {
		focus[i] = b.cells[cell]
	}

	reduced := 0
	for i := 0; i < 9; i++ {
		if focus[i].IsSingle() {
			continue
		}
		var filled, others CellSet
		for j := 0; j < 9; j++ {
			if j == i {
				continue
			}
			others = others.Union(focus[j])
			if focus[j].IsSingle() {
				filled = filled.Union(focus[j])
			}
		}

		// A digit committed elsewhere in the house cannot belong here.
		before := focus[i].Count()
		focus[i] = focus[i].Without(filled)
		if focus[i].Count() < before {
			reduced++
		}
		// Hidden single: a digit excluded from all eight other cells
		// must live in this one.
		if others.Count() == 8 {
			focus[i] = others.Complement()
		}
	}

	for i, cell := range idx {
		b.cells[cell] = focus[i]
	}
	return reduced
}
