package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/reversi/internal/apperror"
	"github.com/rocketscienceinc/reversi/internal/entity"
)

const commentPrefix = "#"

// DemoMoves is the fixed opening the demo mode replays.
var DemoMoves = []entity.Position{
	{X: 2, Y: 4},
	{X: 2, Y: 5},
	{X: 3, Y: 5},
	{X: 2, Y: 3},
	{X: 1, Y: 4},
	{X: 4, Y: 5},
	{X: 5, Y: 4},
	{X: 5, Y: 3},
	{X: 5, Y: 2},
	{X: 0, Y: 4},
}

// ParseMove - reads a column and a row written as "x y", "x,y" or "(x, y)".
// Range is not checked here; the board rejects positions outside the grid.
func ParseMove(text string) (entity.Position, error) {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")

	fields := strings.Fields(strings.ReplaceAll(trimmed, ",", " "))
	if len(fields) != 2 {
		return entity.Position{}, fmt.Errorf("%w: %q", apperror.ErrInvalidMove, text)
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Position{}, fmt.Errorf("%w: column %q", apperror.ErrInvalidMove, fields[0])
	}

	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Position{}, fmt.Errorf("%w: row %q", apperror.ErrInvalidMove, fields[1])
	}

	return entity.Position{X: x, Y: y}, nil
}

// ReadScript - reads one move per line. Blank lines and # comments are skipped.
func ReadScript(reader io.Reader) ([]entity.Position, error) {
	var moves []entity.Position

	scanner := bufio.NewScanner(reader)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line, _, _ := strings.Cut(scanner.Text(), commentPrefix)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		move, err := ParseMove(line)
		if err != nil {
			return nil, fmt.Errorf("failed to parse line %d: %w", lineNo, err)
		}

		moves = append(moves, move)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	if len(moves) == 0 {
		return nil, apperror.ErrEmptyScript
	}

	return moves, nil
}
