// Package world is a small entity table for the pieces of a running game. An
// entity can carry a Piece, a Position and a DroppedPiece as independent
// attributes, each stored and queried on its own.
//
// A World is not safe for concurrent use; the owner of the active piece is
// expected to serialize access.
package world

import (
	"iter"

	"github.com/plus3/tetrimino/tetromino"
)

// EntityId identifies an entity in a World. Zero is never issued.
type EntityId uint32

const defaultCapacity = 256

// World stores entities and their attributes.
type World struct {
	nextId    EntityId
	alive     map[EntityId]struct{}
	pieces    *store[tetromino.Piece]
	positions *store[tetromino.Position]
	dropped   *store[tetromino.DroppedPiece]
}

// New creates an empty World.
func New() *World {
	return &World{
		alive:     make(map[EntityId]struct{}),
		pieces:    newStore[tetromino.Piece](4),
		positions: newStore[tetromino.Position](defaultCapacity),
		dropped:   newStore[tetromino.DroppedPiece](defaultCapacity),
	}
}

// Spawn creates an entity with no attributes.
func (w *World) Spawn() EntityId {
	w.nextId++
	id := w.nextId
	w.alive[id] = struct{}{}
	return id
}

// SpawnFalling creates an entity for an active piece anchored at anchor.
func (w *World) SpawnFalling(piece tetromino.Piece, anchor tetromino.Position) EntityId {
	id := w.Spawn()
	w.pieces.put(id, piece)
	w.positions.put(id, anchor)
	return id
}

// SpawnDropped creates a locked cell of the given kind.
func (w *World) SpawnDropped(kind tetromino.Kind, cell tetromino.Position) EntityId {
	id := w.Spawn()
	w.dropped.put(id, tetromino.NewDroppedPiece(kind))
	w.positions.put(id, cell)
	return id
}

// Alive reports whether id refers to an entity that has not been deleted.
func (w *World) Alive(id EntityId) bool {
	_, ok := w.alive[id]
	return ok
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.alive)
}

// Delete removes the entity and all of its attributes. It reports whether the
// entity existed.
func (w *World) Delete(id EntityId) bool {
	if !w.Alive(id) {
		return false
	}
	delete(w.alive, id)
	w.pieces.remove(id)
	w.positions.remove(id)
	w.dropped.remove(id)
	return true
}

func (w *World) mustBeAlive(id EntityId) {
	if !w.Alive(id) {
		panic("world: attribute attached to dead entity")
	}
}

// AttachPiece sets the Piece attribute of a live entity, replacing any
// previous value.
func (w *World) AttachPiece(id EntityId, piece tetromino.Piece) {
	w.mustBeAlive(id)
	w.pieces.put(id, piece)
}

// AttachPosition sets the Position attribute of a live entity.
func (w *World) AttachPosition(id EntityId, pos tetromino.Position) {
	w.mustBeAlive(id)
	w.positions.put(id, pos)
}

// AttachDropped sets the DroppedPiece attribute of a live entity.
func (w *World) AttachDropped(id EntityId, dropped tetromino.DroppedPiece) {
	w.mustBeAlive(id)
	w.dropped.put(id, dropped)
}

// DetachPiece removes the Piece attribute and reports whether it was present.
func (w *World) DetachPiece(id EntityId) bool {
	return w.pieces.remove(id)
}

// DetachPosition removes the Position attribute.
func (w *World) DetachPosition(id EntityId) bool {
	return w.positions.remove(id)
}

// DetachDropped removes the DroppedPiece attribute.
func (w *World) DetachDropped(id EntityId) bool {
	return w.dropped.remove(id)
}

// Piece returns the entity's Piece, or nil. Attaching more attributes never
// moves it; the pointer stays valid until a Piece attribute is removed from
// any entity, after which it must be fetched again.
func (w *World) Piece(id EntityId) *tetromino.Piece {
	return w.pieces.get(id)
}

// Position returns the entity's Position, or nil, with the same lifetime as
// Piece applied to Position removals.
func (w *World) Position(id EntityId) *tetromino.Position {
	return w.positions.get(id)
}

// Dropped returns the entity's DroppedPiece, or nil.
func (w *World) Dropped(id EntityId) *tetromino.DroppedPiece {
	return w.dropped.get(id)
}

// Falling is an entity carrying both a Piece and its anchor. The pointers
// follow the lifetime rules of World.Piece and World.Position.
type Falling struct {
	Id     EntityId
	Piece  *tetromino.Piece
	Anchor *tetromino.Position
}

// Locked is a resting cell.
type Locked struct {
	Id      EntityId
	Dropped *tetromino.DroppedPiece
	Cell    *tetromino.Position
}

// Falling iterates entities that have both a Piece and a Position. The set of
// entities is fixed when iteration starts, so the World may be modified from
// inside the loop; entities deleted meanwhile are skipped.
func (w *World) Falling() iter.Seq[Falling] {
	return func(yield func(Falling) bool) {
		for id := range w.pieces.snapshot() {
			piece := w.pieces.get(id)
			anchor := w.positions.get(id)
			if piece == nil || anchor == nil {
				continue
			}
			if !yield(Falling{Id: id, Piece: piece, Anchor: anchor}) {
				return
			}
		}
	}
}

// Locked iterates entities that have both a DroppedPiece and a Position, with
// the same snapshot semantics as Falling.
func (w *World) Locked() iter.Seq[Locked] {
	return func(yield func(Locked) bool) {
		for id := range w.dropped.snapshot() {
			dropped := w.dropped.get(id)
			cell := w.positions.get(id)
			if dropped == nil || cell == nil {
				continue
			}
			if !yield(Locked{Id: id, Dropped: dropped, Cell: cell}) {
				return
			}
		}
	}
}

// Lock replaces a falling piece with one locked-cell entity per filled
// position and deletes the piece's entity. Cells are placed exactly where the
// piece covers them, with no bounds or overlap checks. It returns nil if id
// is not a falling piece.
func (w *World) Lock(id EntityId) []EntityId {
	piece := w.pieces.get(id)
	anchor := w.positions.get(id)
	if piece == nil || anchor == nil {
		return nil
	}

	kind := piece.Kind()
	cells := piece.FilledPositions(*anchor)
	w.Delete(id)

	locked := make([]EntityId, 0, len(cells))
	for _, cell := range cells {
		locked = append(locked, w.SpawnDropped(kind, cell))
	}
	return locked
}

// ClearLocked deletes every entity carrying a DroppedPiece and returns how
// many were removed.
func (w *World) ClearLocked() int {
	removed := 0
	for id := range w.dropped.snapshot() {
		if w.Delete(id) {
			removed++
		}
	}
	return removed
}

// Reset deletes every entity. Ids keep increasing across resets.
func (w *World) Reset() {
	clear(w.alive)
	w.pieces.clear()
	w.positions.clear()
	w.dropped.clear()
}

// Stats summarizes the contents of a World.
type Stats struct {
	Entities  int
	Pieces    int
	Positions int
	Dropped   int
}

// Stats counts live entities and attributes per store.
func (w *World) Stats() Stats {
	return Stats{
		Entities:  len(w.alive),
		Pieces:    w.pieces.len(),
		Positions: w.positions.len(),
		Dropped:   w.dropped.len(),
	}
}
