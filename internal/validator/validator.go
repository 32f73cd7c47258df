package validator

import (
	"context"

	"svw.info/sudoku-engine/internal/board"
	"svw.info/sudoku-engine/internal/domain"
)

// HouseValidator reports cells whose value repeats within a row, column or
// block. Empty cells never conflict.
type HouseValidator struct{}

func New() *HouseValidator { return &HouseValidator{} }

func (v *HouseValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conflicts := make([]domain.CellCoord, 0, 8)
	for _, kind := range []board.HouseKind{board.Row, board.Col, board.Block} {
		for index := 0; index < 9; index++ {
			var seen board.CellSet
			for _, cell := range board.House(kind, index) {
				val := b.Values[cell/9][cell%9]
				if val == 0 {
					continue
				}
				s := board.Single(val)
				if seen&s != 0 {
					conflicts = append(conflicts, domain.CellCoord{Row: cell / 9, Col: cell % 9})
				}
				seen |= s
			}
		}
	}
	return len(conflicts) == 0, conflicts, nil
}
