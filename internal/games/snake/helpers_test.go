package snake

// fixedRand always answers with the lowest allowed value plus offset, clamped.
type fixedRand struct {
	offset int
	calls  int
}

func (f *fixedRand) IntInRange(min, max int) int {
	f.calls++
	if max < min {
		min, max = max, min
	}
	return min + f.offset%(max-min+1)
}

// defaultGrid matches the shipped 48x27 board.
var defaultGrid = Grid{Rows: 48, Cols: 27}

// newTestState builds a state with an explicit head, body and direction.
func newTestState(grid Grid, head GridPosition, dir Direction, body ...GridPosition) *State {
	st := NewState(grid, head, GridPosition{X: grid.Rows - 1, Y: grid.Cols - 1}, SpawnAnywhere)
	st.Snake.direction = dir
	for _, b := range body {
		st.Snake.body.PushBack(b)
	}
	return st
}
