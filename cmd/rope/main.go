package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/aoc-rope/internal/config"
	"github.com/povarna/generative-ai-agents/aoc-rope/internal/rope"
	"github.com/povarna/generative-ai-agents/aoc-rope/internal/setup/logger"
	"github.com/povarna/generative-ai-agents/aoc-rope/internal/solver"
	"github.com/rs/zerolog"
)

func main() {
	inputFile := flag.String("inputFile", "input.txt", "Relative path to the input file, '-' for stdin")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// .env may set LOG_LEVEL, so load it before building the logger
	envErr := godotenv.Load()
	log := logger.New(os.Stderr, os.Getenv("LOG_LEVEL"))
	if envErr != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load rope config")
	}

	var input io.Reader
	if *inputFile == "-" {
		input = os.Stdin
		log.Info().Msg("Reading from stdin")
	} else {
		f, err := os.Open(*inputFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", *inputFile).Msg("Failed to open input file")
		}
		defer f.Close()
		input = f
		log.Info().Str("file", *inputFile).Msg("Reading input file")
	}

	if err := run(input, os.Stdout, cfg.SolverParts(), &log); err != nil {
		log.Fatal().Err(err).Msg("Failed to solve puzzle")
	}
}

// run parses the commands, solves every part and prints one answer per line.
// Nothing is written to out unless every part succeeds.
func run(input io.Reader, out io.Writer, parts []solver.Part, log *zerolog.Logger) error {
	commands, err := rope.ParseCommands(input)
	if err != nil {
		return fmt.Errorf("failed to parse move commands: %w", err)
	}
	log.Info().Int("commands", len(commands)).Msg("Input parsed")

	s := solver.NewSolver(rope.NewSimulator(log), rope.NewTailTracker(), log)
	results, err := s.Solve(commands, parts)
	if err != nil {
		return err
	}

	for _, result := range results {
		if _, err := fmt.Fprintln(out, result.Visited); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	return nil
}
