package tetromino_test

import (
	"fmt"

	"github.com/plus3/tetrimino/tetromino"
)

// ExamplePiece shows a piece being rotated and projected onto the field from
// an anchor position.
func ExamplePiece() {
	piece := tetromino.NewPiece(tetromino.T)
	anchor := tetromino.Position{Row: 4, Col: 3}

	fmt.Println(piece.Kind(), piece.Rotation(), piece.FilledPositions(anchor))

	piece.RotateCW()
	fmt.Println(piece.Kind(), piece.Rotation(), piece.FilledPositions(anchor))

	piece.RotateCCW()
	piece.RotateCCW()
	fmt.Println(piece.Kind(), piece.Rotation(), piece.FilledPositions(anchor))

	// Output:
	// T 0 [(6,5) (5,4) (5,5) (5,6)]
	// T 1 [(6,5) (5,5) (5,6) (4,5)]
	// T 3 [(6,5) (5,4) (5,5) (4,5)]
}

// ExampleShape prints every rotation of a kind as a 4x4 grid.
func ExampleShape() {
	for rotation := range 4 {
		shape := tetromino.S.Shape(rotation)
		fmt.Printf("0x%04x\n%s\n\n", uint16(shape), shape)
	}

	// Output:
	// 0x06c0
	// ....
	// .##.
	// ..##
	// ....
	//
	// 0x8c40
	// ...#
	// ..##
	// ..#.
	// ....
	//
	// 0x6c00
	// .##.
	// ..##
	// ....
	// ....
	//
	// 0x4620
	// ..#.
	// .##.
	// .#..
	// ....
}
