package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"

	"github.com/rocketscienceinc/reversi/internal/apperror"
	"github.com/rocketscienceinc/reversi/internal/entity"
	"github.com/rocketscienceinc/reversi/internal/usecase"
)

const helpText = `commands:
  x y | x,y | (x, y)   place a stone for the side to move
  hint                 list the legal placements
  show                 print the board
  new                  start over from the initial layout
  help                 show this text
  quit | exit          leave`

type matchManager interface {
	Start(ctx context.Context) string
	Turn() entity.Color
	CanMove() bool
	LegalMoves() []entity.Position
	MakeTurn(ctx context.Context, move entity.Position) (*usecase.TurnResult, error)
	Replay(ctx context.Context, moves []entity.Position) (*usecase.ReplayReport, error)
	String() string
}

// LineReader is the part of *readline.Instance the prompt loop needs.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

type Handler struct {
	logger *slog.Logger
	match  matchManager
	out    io.Writer
}

func NewHandler(logger *slog.Logger, match matchManager, out io.Writer) *Handler {
	return &Handler{
		logger: logger.With("component", "cli"),
		match:  match,
		out:    out,
	}
}

// RunDemo - replays the fixed demo opening.
func (that *Handler) RunDemo(ctx context.Context) error {
	return that.RunMoves(ctx, DemoMoves)
}

// RunScript - replays the moves read from reader.
func (that *Handler) RunScript(ctx context.Context, reader io.Reader) error {
	moves, err := ReadScript(reader)
	if err != nil {
		return fmt.Errorf("failed to read moves: %w", err)
	}

	return that.RunMoves(ctx, moves)
}

// RunMoves - starts a match and prints the outcome of every move in order.
func (that *Handler) RunMoves(ctx context.Context, moves []entity.Position) error {
	that.match.Start(ctx)

	that.println("Start")
	that.println(that.match.String())

	report, err := that.match.Replay(ctx, moves)
	if report != nil {
		for _, step := range report.Steps {
			if !step.Accepted() {
				that.printf("can not put %s\n", step.Move)
				continue
			}

			that.printf("put %s\n", step.Move)
			that.println(step.Snapshot)
		}
	}

	if err != nil {
		return fmt.Errorf("failed to replay moves: %w", err)
	}

	return nil
}

// RunInteractive - reads commands until quit, end of input or ctx is done.
func (that *Handler) RunInteractive(ctx context.Context, reader LineReader) error {
	log := that.logger.With("method", "RunInteractive")

	that.match.Start(ctx)
	that.println("Type 'help' for commands")
	that.showBoard()

	for {
		if ctx.Err() != nil {
			log.Info("context done, leaving prompt")
			return nil
		}

		reader.SetPrompt(fmt.Sprintf("reversi [%s]> ", that.match.Turn()))

		line, err := reader.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read line: %w", err)
		}

		if quit := that.execute(ctx, strings.TrimSpace(line)); quit {
			return nil
		}
	}
}

func (that *Handler) execute(ctx context.Context, line string) bool {
	switch strings.ToLower(line) {
	case "":
		return false
	case "quit", "exit":
		return true
	case "help":
		that.println(helpText)
	case "show":
		that.showBoard()
	case "new":
		that.match.Start(ctx)
		that.showBoard()
	case "hint":
		that.showHint()
	default:
		that.play(ctx, line)
	}

	return false
}

func (that *Handler) play(ctx context.Context, line string) {
	move, err := ParseMove(line)
	if err != nil {
		that.printf("%v, type 'help' for commands\n", err)
		return
	}

	result, err := that.match.MakeTurn(ctx, move)
	if errors.Is(err, apperror.ErrIllegalPlacement) {
		that.printf("can not put %s\n", move)
		return
	}

	if err != nil {
		that.logger.Error("failed to make turn", "error", err)
		return
	}

	that.printf("put %s, flipped %d\n", result.Move, len(result.Flipped))
	that.showBoard()
}

func (that *Handler) showBoard() {
	that.println(that.match.String())

	if !that.match.CanMove() {
		that.printf("%s has no legal placement\n", that.match.Turn())
	}
}

func (that *Handler) showHint() {
	moves := that.match.LegalMoves()
	if len(moves) == 0 {
		that.printf("%s has no legal placement\n", that.match.Turn())
		return
	}

	parts := make([]string, 0, len(moves))
	for _, move := range moves {
		parts = append(parts, move.String())
	}

	that.printf("legal moves for %s: %s\n", that.match.Turn(), strings.Join(parts, " "))
}

func (that *Handler) println(text string) {
	if _, err := fmt.Fprintln(that.out, text); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func (that *Handler) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
