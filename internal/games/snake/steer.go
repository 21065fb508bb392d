package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// DirectionFor maps a platform action to a direction.
// Non-directional actions map to DirNone.
func DirectionFor(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	default:
		return DirNone
	}
}

// Steer applies one directional key press. A press against the current
// direction is dropped. When a turn was already taken since the last tick,
// or turns are still waiting, the current direction is queued first so every
// press gets its own tick in arrival order.
// Returns whether the press was accepted.
func (s *Snake) Steer(d Direction) bool {
	if d == DirNone || !d.valid() || d.IsOpposite(s.direction) {
		return false
	}

	if s.turned || s.queue.Len() > 0 {
		s.queue.PushBack(s.direction)
	}
	s.direction = d
	s.turned = true
	return true
}
