package solver

//go:generate mockgen -source=solver.go -destination=mocks/mock_solver.go -package=mocks

import (
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/aoc-rope/internal/models"
	"github.com/povarna/generative-ai-agents/aoc-rope/internal/rope"
	"github.com/rs/zerolog"
)

// Simulator produces the full chain history for a list of commands
type Simulator interface {
	Simulate(initial rope.Chain, commands []rope.MoveCommand) rope.History
}

// Reducer turns a history into the puzzle answer
type Reducer interface {
	CountVisited(history rope.History) int
}

// Part is one answer to compute: a rope of Knots knots run over the whole input.
type Part struct {
	Name  string
	Knots int
}

type Solver struct {
	simulator Simulator
	reducer   Reducer
	logger    *zerolog.Logger
}

func NewSolver(simulator Simulator, reducer Reducer, logger *zerolog.Logger) *Solver {
	return &Solver{
		simulator: simulator,
		reducer:   reducer,
		logger:    logger,
	}
}

// DefaultParts are the two answers of the puzzle.
func DefaultParts() []Part {
	return []Part{
		{Name: "part1", Knots: 2},
		{Name: "part2", Knots: 10},
	}
}

// Solve runs every part over the same commands, in order.
func (s *Solver) Solve(commands []rope.MoveCommand, parts []Part) ([]models.PartResult, error) {
	results := make([]models.PartResult, 0, len(parts))

	for _, part := range parts {
		if part.Knots < 2 {
			return nil, fmt.Errorf("part %q: rope needs at least 2 knots, got %d", part.Name, part.Knots)
		}

		now := time.Now()
		history := s.simulator.Simulate(rope.NewChain(part.Knots), commands)
		visited := s.reducer.CountVisited(history)

		result := models.PartResult{
			Name:     part.Name,
			Knots:    part.Knots,
			Visited:  visited,
			Steps:    max(len(history)-1, 0),
			Duration: time.Since(now),
		}

		s.logger.
			Info().
			Str("part", result.Name).
			Int("knots", result.Knots).
			Int("steps", result.Steps).
			Int("visited", result.Visited).
			Dur("duration", result.Duration).
			Msg("part solved")

		results = append(results, result)
	}

	return results, nil
}
