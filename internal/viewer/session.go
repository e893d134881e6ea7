package viewer

import (
	"github.com/plus3/tetrimino/tetromino"
	"github.com/plus3/tetrimino/world"
)

// Action is a single player command.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionRotateCW
	ActionRotateCCW
	ActionLock
	ActionClear
	ActionReset
)

var actionNames = [...]string{"none", "left", "right", "up", "down", "rotate-cw", "rotate-ccw", "lock", "clear", "reset"}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Session owns the world and the single active piece. Pieces move and rotate
// freely; nothing here checks the field bounds or other cells.
type Session struct {
	World *world.World

	spawn  tetromino.Position
	next   tetromino.Randomizer
	active world.EntityId
	locks  int
}

// NewSession creates a world and spawns the first piece at spawn.
func NewSession(spawn tetromino.Position, next tetromino.Randomizer) *Session {
	s := &Session{
		World: world.New(),
		spawn: spawn,
		next:  next,
	}
	s.spawnNext()
	return s
}

func (s *Session) spawnNext() {
	s.active = s.World.SpawnFalling(tetromino.NewPiece(s.next.Next()), s.spawn)
}

// Active returns the current falling piece, looked up again on every call.
func (s *Session) Active() world.Falling {
	return world.Falling{
		Id:     s.active,
		Piece:  s.World.Piece(s.active),
		Anchor: s.World.Position(s.active),
	}
}

// Locks returns how many pieces have been locked since the last reset.
func (s *Session) Locks() int {
	return s.locks
}

// Apply performs a and reports whether anything changed.
func (s *Session) Apply(a Action) bool {
	active := s.Active()

	switch a {
	case ActionLeft:
		active.Anchor.Col--
	case ActionRight:
		active.Anchor.Col++
	case ActionUp:
		active.Anchor.Row--
	case ActionDown:
		active.Anchor.Row++
	case ActionRotateCW:
		active.Piece.RotateCW()
	case ActionRotateCCW:
		active.Piece.RotateCCW()
	case ActionLock:
		s.World.Lock(s.active)
		s.locks++
		s.spawnNext()
	case ActionClear:
		return s.World.ClearLocked() > 0
	case ActionReset:
		s.World.Reset()
		s.locks = 0
		s.spawnNext()
	default:
		return false
	}
	return true
}
