package rope

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrInvariantViolation means a knot fell more than one catch-up step behind its
// leader. The head moves one cell at a time, so this only happens on a modeling bug.
var ErrInvariantViolation = errors.New("rope invariant violated")

// MoveHead moves the head one cell in dir.
func MoveHead(head Position, dir Direction) Position {
	return head.Add(dir.Delta())
}

// Follow returns the follower's new position after its leader moved.
// A touching follower stays put, otherwise it steps one cell towards the leader on
// every axis where they differ. Follow panics if one step cannot close the gap.
func Follow(leader, follower Position) Position {
	if leader.Touching(follower) {
		return follower
	}

	dx := leader.X - follower.X
	dy := leader.Y - follower.Y
	if abs(dx) > 2 || abs(dy) > 2 {
		panic(fmt.Errorf("%w: leader %v is %d,%d away from follower %v", ErrInvariantViolation, leader, dx, dy, follower))
	}

	return Position{X: follower.X + sign(dx), Y: follower.Y + sign(dy)}
}

// StepChain moves the head once and lets every knot settle behind the already
// updated knot in front of it. The given chain is left untouched.
func StepChain(chain Chain, dir Direction) Chain {
	next := make(Chain, len(chain))
	next[0] = MoveHead(chain[0], dir)
	for i := 1; i < len(chain); i++ {
		next[i] = Follow(next[i-1], chain[i])
	}
	return next
}

// Simulate runs every command one unit step at a time and returns the initial chain
// followed by one snapshot per step.
func Simulate(initial Chain, commands []MoveCommand) History {
	total := 0
	for _, cmd := range commands {
		total += cmd.Steps
	}

	history := make(History, 0, total+1)
	current := append(Chain(nil), initial...)
	history = append(history, current)

	for _, cmd := range commands {
		for i := 0; i < cmd.Steps; i++ {
			current = StepChain(current, cmd.Direction)
			history = append(history, current)
		}
	}

	return history
}

type Simulator struct {
	logger *zerolog.Logger
}

func NewSimulator(logger *zerolog.Logger) *Simulator {
	return &Simulator{
		logger: logger,
	}
}

func (s *Simulator) Simulate(initial Chain, commands []MoveCommand) History {
	history := Simulate(initial, commands)

	s.logger.Debug().
		Int("knots", len(initial)).
		Int("commands", len(commands)).
		Int("snapshots", len(history)).
		Interface("tail", history[len(history)-1].Tail()).
		Msg("simulation complete")

	return history
}
