package board

import "math/bits"

// CellSet is the set of digits still possible for one cell, as a bitmask.
// Bit v (1..9) is set iff digit v is still a candidate.
type CellSet uint16

const (
	// FullSet allows every digit 1..9.
	FullSet CellSet = 0x3fe
	// EmptySet is the contradictory set: no digit fits.
	EmptySet CellSet = 0
)

// Single returns the set containing only v. v must be in 1..9.
func Single(v uint8) CellSet { return 1 << v }

func (s CellSet) Count() int { return bits.OnesCount16(uint16(s)) }

func (s CellSet) IsEmpty() bool { return s == 0 }

// IsSingle reports whether the cell is filled (exactly one candidate).
func (s CellSet) IsSingle() bool { return s != 0 && s&(s-1) == 0 }

func (s CellSet) Has(v uint8) bool { return s&(1<<v) != 0 }

// Value returns the digit of a singleton set, or 0 for any other set.
func (s CellSet) Value() uint8 {
	if !s.IsSingle() {
		return 0
	}
	return uint8(bits.TrailingZeros16(uint16(s)))
}

// Union returns the candidates present in either set.
func (s CellSet) Union(o CellSet) CellSet { return s | o }

// Without returns s with every candidate of o removed.
func (s CellSet) Without(o CellSet) CellSet { return s &^ o }

// Complement returns the digits of 1..9 not present in s.
func (s CellSet) Complement() CellSet { return FullSet &^ s }

// Values lists the candidates in ascending order.
func (s CellSet) Values() []uint8 {
	out := make([]uint8, 0, s.Count())
	for v := uint8(1); v <= 9; v++ {
		if s.Has(v) {
			out = append(out, v)
		}
	}
	return out
}
