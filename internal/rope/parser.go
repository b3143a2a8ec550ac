package rope

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var ErrMalformedCommand = errors.New("malformed move command")

var commandPattern = regexp.MustCompile(`^(U|D|L|R) (\d+)$`)

var directionByLetter = map[string]Direction{
	"U": Up,
	"D": Down,
	"L": Left,
	"R": Right,
}

// ParseError describes a line that is not a valid move command.
// Line is 1-based and zero when the text was parsed on its own.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %q: %s", e.Line, e.Text, e.Reason)
	}
	return fmt.Sprintf("%q: %s", e.Text, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformedCommand
}

// ParseCommand parses a single "D S" line such as "U 4".
func ParseCommand(line string) (MoveCommand, error) {
	line = strings.TrimSuffix(line, "\r")

	m := commandPattern.FindStringSubmatch(line)
	if m == nil {
		return MoveCommand{}, &ParseError{Text: line, Reason: "expected <U|D|L|R> <steps>"}
	}

	steps, err := strconv.Atoi(m[2])
	if err != nil {
		return MoveCommand{}, &ParseError{Text: line, Reason: fmt.Sprintf("invalid step count: %v", err)}
	}
	if steps < 1 {
		return MoveCommand{}, &ParseError{Text: line, Reason: "step count must be positive"}
	}

	return MoveCommand{Direction: directionByLetter[m[1]], Steps: steps}, nil
}

// ParseCommands reads one command per line and stops at the first malformed one.
func ParseCommands(r io.Reader) ([]MoveCommand, error) {
	scanner := bufio.NewScanner(r)

	var commands []MoveCommand
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++

		cmd, err := ParseCommand(scanner.Text())
		if err != nil {
			var parseErr *ParseError
			if errors.As(err, &parseErr) {
				parseErr.Line = lineNumber
			}
			return nil, err
		}
		commands = append(commands, cmd)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read move commands: %w", err)
	}

	return commands, nil
}
