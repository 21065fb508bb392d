package snake

// Outcome tells the caller whether the game goes on after a tick.
type Outcome int

const (
	Continuing Outcome = iota
	Ended
)

func (o Outcome) String() string {
	if o == Ended {
		return "ended"
	}
	return "continuing"
}

// SpawnPolicy decides where an eaten apple may reappear.
type SpawnPolicy int

const (
	// SpawnAnywhere picks any cell, including ones under the snake.
	SpawnAnywhere SpawnPolicy = iota
	// SpawnFree picks only cells the snake does not cover.
	SpawnFree
)

// Tick advances st by one simulation step and reports the outcome.
// A finished game is left untouched.
func Tick(st *State, rng Randomizer) Outcome {
	if st.Over {
		return Ended
	}
	st.Ticks++

	s := &st.Snake
	step := s.resolveDirection().Vector()

	// Body follows the old head before the head moves
	prev := s.head
	if s.body.Len() > 0 {
		s.body.PushFront(prev)
		s.body.PopBack()
	}

	// Wraparound runs here, before the death and apple checks, not after
	// them. Collisions are then checked on the wrapped cell, so crossing an
	// edge onto the apple or the body counts the same as reaching it directly.
	s.head = st.Grid.Wrap(s.head.Add(step))

	if s.Occupies(s.head) {
		st.Over = true
	}

	if s.head == st.Apple {
		grow := prev
		if s.body.Len() > 0 {
			grow = s.body.Back()
		}
		s.body.PushBack(grow)
		st.relocateApple(rng)
	}

	if st.Over {
		return Ended
	}
	return Continuing
}

// resolveDirection takes the oldest queued turn, or the current direction.
func (s *Snake) resolveDirection() Direction {
	s.turned = false
	if s.queue.Len() > 0 {
		return s.queue.PopFront()
	}
	return s.direction
}

// relocateApple moves the apple to a random cell according to the spawn policy.
func (st *State) relocateApple(rng Randomizer) {
	if st.Spawn == SpawnFree {
		if free := st.freeCells(); len(free) > 0 {
			st.Apple = free[rng.IntInRange(0, len(free)-1)]
			return
		}
		// Board is full, any cell keeps the apple on the grid
	}
	st.Apple = GridPosition{
		X: rng.IntInRange(0, st.Grid.Rows-1),
		Y: rng.IntInRange(0, st.Grid.Cols-1),
	}
}
