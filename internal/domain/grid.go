package domain

import (
	"fmt"
	"strings"
)

// ParseBoard reads a board from text: either a single 81-character line or
// nine lines of nine characters. Digits 1..9 are givens; '0' and '.' are
// empty cells. Whitespace between cells is ignored.
func ParseBoard(text string) (*Board, error) {
	var cells []uint8
	for _, r := range text {
		switch {
		case r >= '1' && r <= '9':
			cells = append(cells, uint8(r-'0'))
		case r == '0' || r == '.':
			cells = append(cells, 0)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '|':
			continue
		default:
			return nil, fmt.Errorf("unexpected character %q in board", r)
		}
	}
	if len(cells) != 81 {
		return nil, fmt.Errorf("board has %d cells, want 81", len(cells))
	}
	b := &Board{}
	for i, v := range cells {
		b.Values[i/9][i%9] = v
		b.Fixed[i/9][i%9] = v != 0
	}
	return b, nil
}

// String renders the board as nine lines with '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v != 0 {
				sb.WriteByte('0' + v)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
