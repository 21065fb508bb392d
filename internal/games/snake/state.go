package snake

import "github.com/gammazero/deque"

// Snake is the player's head, its trailing body and the pending turns.
// The zero value is a headless snake at (0,0) standing still.
type Snake struct {
	head      GridPosition
	body      deque.Deque[GridPosition] // nearest to head first
	direction Direction
	queue     deque.Deque[Direction] // turns waiting for a tick, oldest first
	turned    bool                   // a turn was accepted since the last tick
}

// Head returns the head position.
func (s *Snake) Head() GridPosition {
	return s.head
}

// Direction returns the most recently accepted direction.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Len returns the number of body segments, not counting the head.
func (s *Snake) Len() int {
	return s.body.Len()
}

// Body returns a copy of the body segments, nearest to the head first.
func (s *Snake) Body() []GridPosition {
	out := make([]GridPosition, s.body.Len())
	for i := range out {
		out[i] = s.body.At(i)
	}
	return out
}

// Pending returns a copy of the queued directions, oldest first.
func (s *Snake) Pending() []Direction {
	out := make([]Direction, s.queue.Len())
	for i := range out {
		out[i] = s.queue.At(i)
	}
	return out
}

// Occupies reports whether any body segment sits on p. The head is not checked.
func (s *Snake) Occupies(p GridPosition) bool {
	for i := 0; i < s.body.Len(); i++ {
		if s.body.At(i) == p {
			return true
		}
	}
	return false
}

// State is everything one game owns: board, snake, apple and the game-over flag.
type State struct {
	Grid  Grid
	Snake Snake
	Apple GridPosition
	Spawn SpawnPolicy
	Over  bool
	Ticks uint64
}

// NewState creates a fresh game with a motionless, bodiless snake at start.
func NewState(grid Grid, start, apple GridPosition, spawn SpawnPolicy) *State {
	st := &State{
		Grid:  grid,
		Apple: apple,
		Spawn: spawn,
	}
	st.Snake.head = start
	st.Snake.direction = DirNone
	return st
}

// occupied reports whether the head or any body segment sits on p.
func (st *State) occupied(p GridPosition) bool {
	return st.Snake.head == p || st.Snake.Occupies(p)
}

// freeCells lists every cell not covered by the snake, row-major by y.
func (st *State) freeCells() []GridPosition {
	free := make([]GridPosition, 0, st.Grid.Cells())
	for y := 0; y < st.Grid.Cols; y++ {
		for x := 0; x < st.Grid.Rows; x++ {
			p := GridPosition{X: x, Y: y}
			if !st.occupied(p) {
				free = append(free, p)
			}
		}
	}
	return free
}
