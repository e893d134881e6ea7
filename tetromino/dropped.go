package tetromino

// DroppedPiece marks a cell or piece of the given kind as having come to rest.
// It carries no position; the host tracks where locked cells live.
type DroppedPiece struct {
	Kind Kind
}

// NewDroppedPiece records that a piece of kind has locked.
func NewDroppedPiece(kind Kind) DroppedPiece {
	return DroppedPiece{Kind: kind}
}

// Color returns the display color of the dropped kind.
func (d DroppedPiece) Color() Color {
	return d.Kind.Color()
}
