package tetromino

import (
	"math/bits"
	"strings"
)

// Shape is a 4x4 occupancy grid. Bit row*4+col is set when that cell of the
// bounding box is filled; row 0 occupies the low-order nibble.
type Shape uint16

// BoxSize is the side length of the bounding box every shape is encoded in.
const BoxSize = 4

// shapes is indexed by kind, then rotation state.
var shapes = [KindCount][4]Shape{
	O: {0xCC00, 0xCC00, 0xCC00, 0xCC00},
	J: {0x44C0, 0x8E00, 0x6440, 0x0E20},
	L: {0x4460, 0x0E80, 0xC440, 0x2E00},
	I: {0x0F00, 0x2222, 0x00F0, 0x4444},
	S: {0x06C0, 0x8C40, 0x6C00, 0x4620},
	Z: {0x0C60, 0x4C80, 0xC600, 0x2640},
	T: {0x0E40, 0x4C40, 0x4E00, 0x4640},
}

// Shape returns the mask for the given rotation. Any integer is accepted and
// reduced modulo 4, so negative values wrap as well.
func (k Kind) Shape(rotation int) Shape {
	return shapes[k][normalize(rotation)]
}

func normalize(rotation int) int {
	return ((rotation % 4) + 4) % 4
}

// Filled reports whether the cell at (row, col) of the bounding box is set.
// Coordinates outside [0,3] are never filled.
func (s Shape) Filled(row, col int) bool {
	if row < 0 || row >= BoxSize || col < 0 || col >= BoxSize {
		return false
	}
	return s&(1<<(row*BoxSize+col)) != 0
}

// Count returns the number of filled cells.
func (s Shape) Count() int {
	return bits.OnesCount16(uint16(s))
}

// String draws the box one line per row, in the same vertical order that
// FilledPositions lays the rows out on the field (bit row 3 first).
func (s Shape) String() string {
	var b strings.Builder
	for row := BoxSize - 1; row >= 0; row-- {
		for col := range BoxSize {
			if s.Filled(row, col) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		if row > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
