package snake

// GridPosition is a cell on the board. X runs across the Rows extent,
// Y across the Cols extent.
type GridPosition struct {
	X, Y int
}

// Add returns p shifted by d.
func (p GridPosition) Add(d GridPosition) GridPosition {
	return GridPosition{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid is the fixed playfield size.
type Grid struct {
	Rows int // x range [0, Rows)
	Cols int // y range [0, Cols)
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p GridPosition) bool {
	return p.X >= 0 && p.X < g.Rows && p.Y >= 0 && p.Y < g.Cols
}

// Cells returns the number of cells on the board.
func (g Grid) Cells() int {
	return g.Rows * g.Cols
}

// Wrap brings a position that stepped off one edge back in on the opposite edge.
// Only the first out-of-range axis in the order x<0, y<0, x>=Rows, y>=Cols is
// corrected; single-axis movement never leaves both axes out of range.
func (g Grid) Wrap(p GridPosition) GridPosition {
	switch {
	case p.X < 0:
		p.X = g.Rows - 1
	case p.Y < 0:
		p.Y = g.Cols - 1
	case p.X >= g.Rows:
		p.X = 0
	case p.Y >= g.Cols:
		p.Y = 0
	}
	return p
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

var opposites = [...]Direction{
	DirNone:  DirNone,
	DirUp:    DirDown,
	DirDown:  DirUp,
	DirLeft:  DirRight,
	DirRight: DirLeft,
}

var vectors = [...]GridPosition{
	DirNone:  {0, 0},
	DirUp:    {0, -1},
	DirDown:  {0, 1},
	DirLeft:  {-1, 0},
	DirRight: {1, 0},
}

func (d Direction) valid() bool {
	return d >= DirNone && d <= DirRight
}

// Opposite returns the reverse direction. None has no opposite and returns None.
func (d Direction) Opposite() Direction {
	if !d.valid() {
		return DirNone
	}
	return opposites[d]
}

// IsOpposite reports whether d and other point exactly against each other.
func (d Direction) IsOpposite(other Direction) bool {
	return d != DirNone && d.Opposite() == other
}

// Vector returns the unit step for d.
func (d Direction) Vector() GridPosition {
	if !d.valid() {
		return GridPosition{}
	}
	return vectors[d]
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
