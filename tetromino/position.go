package tetromino

import "fmt"

// Position is a field coordinate. It serves both as a piece's anchor and as
// each absolute cell a piece occupies.
type Position struct {
	Row int8
	Col int8
}

// Add returns the position shifted by the given offsets.
func (p Position) Add(rows, cols int8) Position {
	return Position{Row: p.Row + rows, Col: p.Col + cols}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
