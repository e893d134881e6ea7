package tetromino

import (
	"iter"
	"slices"
)

// Piece is a kind together with its current rotation state.
type Piece struct {
	kind     Kind
	rotation uint8
}

// NewPiece returns a piece of the given kind in its spawn orientation.
func NewPiece(kind Kind) Piece {
	return Piece{kind: kind}
}

// Kind returns the piece's kind.
func (p Piece) Kind() Kind {
	return p.kind
}

// Rotation returns the rotation state, always in [0,3].
func (p Piece) Rotation() int {
	return int(p.rotation)
}

// RotateCW advances the rotation state by one quarter turn clockwise.
func (p *Piece) RotateCW() {
	p.rotation = (p.rotation + 1) % 4
}

// RotateCCW moves the rotation state back one quarter turn, wrapping 0 to 3.
func (p *Piece) RotateCCW() {
	p.rotation = (p.rotation + 3) % 4
}

// Shape returns the mask for the current rotation.
func (p Piece) Shape() Shape {
	return p.kind.Shape(int(p.rotation))
}

// Cells yields the absolute field positions the piece covers when anchored at
// anchor, in ascending bit order. Bit row r lands on field row anchor.Row+3-r.
func (p Piece) Cells(anchor Position) iter.Seq[Position] {
	shape := p.Shape()
	return func(yield func(Position) bool) {
		for row := range BoxSize {
			for col := range BoxSize {
				if !shape.Filled(row, col) {
					continue
				}
				cell := anchor.Add(int8(BoxSize-1-row), int8(col))
				if !yield(cell) {
					return
				}
			}
		}
	}
}

// FilledPositions returns the four cells covered by the piece at anchor.
// Positions outside any field are returned as-is; bounds are the caller's
// concern.
func (p Piece) FilledPositions(anchor Position) []Position {
	return slices.AppendSeq(make([]Position, 0, 4), p.Cells(anchor))
}
