package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
	StateTooSmall GameStateType = "paused_small_window"
)

// Snapshot is a read-only copy of everything a renderer or test needs.
// Mutating it has no effect on the game.
type Snapshot struct {
	Tick    uint64
	Score   int
	Head    GridPosition
	Body    []GridPosition // nearest to head first
	Apple   GridPosition
	Dir     Direction
	Pending []Direction
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.state.Over:
		state = StateGameOver
	case g.tooSmall:
		state = StateTooSmall
	case g.paused:
		state = StatePaused
	}

	sn := &g.state.Snake
	return Snapshot{
		Tick:    g.state.Ticks,
		Score:   sn.Len(),
		Head:    sn.Head(),
		Body:    sn.Body(),
		Apple:   g.state.Apple,
		Dir:     sn.Direction(),
		Pending: sn.Pending(),
		State:   state,
	}
}
