package rope

// Position is a cell on the unbounded grid. Y grows upwards.
type Position struct {
	X int
	Y int
}

func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// Chebyshev returns max(|dx|, |dy|) between p and other.
func (p Position) Chebyshev(other Position) int {
	return max(abs(p.X-other.X), abs(p.Y-other.Y))
}

// Touching reports whether p and other overlap or are adjacent, diagonals included.
func (p Position) Touching(other Position) bool {
	return p.Chebyshev(other) <= 1
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var deltas = [...]Position{
	Up:    {X: 0, Y: 1},
	Down:  {X: 0, Y: -1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// Delta is the unit displacement of a single step in d.
func (d Direction) Delta() Position {
	return deltas[d]
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return "?"
}

type MoveCommand struct {
	Direction Direction
	Steps     int
}

// Chain holds the knots of a rope, head first and tail last.
type Chain []Position

// NewChain returns a chain of n knots all sitting on the origin.
func NewChain(n int) Chain {
	return make(Chain, n)
}

func (c Chain) Head() Position {
	return c[0]
}

func (c Chain) Tail() Position {
	return c[len(c)-1]
}

// History is every chain snapshot of a run, the initial chain included.
type History []Chain

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
