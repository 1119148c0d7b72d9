package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/reversi/internal/apperror"
	"github.com/rocketscienceinc/reversi/internal/entity"
)

type gameSession interface {
	Init()
	Turn() entity.Color
	CanPut() bool
	CanPutAt(x, y int) bool
	Put(x, y int) bool
	Board() entity.Board
	String() string
}

// TurnResult describes one accepted placement.
type TurnResult struct {
	ID       string            `json:"id"`
	Player   entity.Color      `json:"player"`
	Move     entity.Position   `json:"move"`
	Flipped  []entity.Position `json:"flipped"`
	NextTurn entity.Color      `json:"next_turn"`
}

// ReplayStep is the outcome of one move of a replayed sequence.
// Result is nil when the move was rejected.
type ReplayStep struct {
	Move     entity.Position
	Result   *TurnResult
	Snapshot string
}

func (that ReplayStep) Accepted() bool {
	return that.Result != nil
}

type ReplayReport struct {
	ID       string
	Steps    []ReplayStep
	Accepted int
	Rejected int
}

// MatchManager sequences turns on a single game session and reports what every placement changed.
type MatchManager struct {
	logger *slog.Logger
	game   gameSession
	id     string
}

func NewMatchManager(logger *slog.Logger, game gameSession) *MatchManager {
	return &MatchManager{
		logger: logger.With("component", "match_manager"),

		game: game,
	}
}

// Start - resets the session to the starting layout under a fresh match id.
func (that *MatchManager) Start(_ context.Context) string {
	that.game.Init()
	that.id = uuid.New().String()

	that.logger.Info("match started", "match_id", that.id, "turn", that.game.Turn().String())

	return that.id
}

func (that *MatchManager) ID() string {
	return that.id
}

func (that *MatchManager) Turn() entity.Color {
	return that.game.Turn()
}

// CanMove - reports whether the side to move has any legal placement.
func (that *MatchManager) CanMove() bool {
	return that.game.CanPut()
}

// LegalMoves - lists every position the side to move may place at, row by row.
func (that *MatchManager) LegalMoves() []entity.Position {
	var moves []entity.Position

	for y := 0; y < entity.BoardSize; y++ {
		for x := 0; x < entity.BoardSize; x++ {
			if that.game.CanPutAt(x, y) {
				moves = append(moves, entity.Position{X: x, Y: y})
			}
		}
	}

	return moves
}

func (that *MatchManager) String() string {
	return that.game.String()
}

// MakeTurn - places a stone for the side to move.
// A rejected placement returns apperror.ErrIllegalPlacement and changes nothing.
func (that *MatchManager) MakeTurn(ctx context.Context, move entity.Position) (*TurnResult, error) {
	log := that.logger.With("method", "MakeTurn", "match_id", that.id)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	player := that.game.Turn()
	before := that.game.Board()

	if !that.game.Put(move.X, move.Y) {
		log.Debug("placement rejected", "player", player.String(), "move", move.String())

		return nil, fmt.Errorf("%w: %s at %s", apperror.ErrIllegalPlacement, player, move)
	}

	after := that.game.Board()

	result := &TurnResult{
		ID:       that.id,
		Player:   player,
		Move:     move,
		Flipped:  flippedStones(&before, &after, move),
		NextTurn: that.game.Turn(),
	}

	log.Debug("placement accepted",
		"player", player.String(),
		"move", move.String(),
		"flipped", len(result.Flipped),
	)

	return result, nil
}

// Replay - attempts every move in order. Rejected moves are recorded, not fatal.
// It stops between moves once ctx is done and returns the steps played so far.
func (that *MatchManager) Replay(ctx context.Context, moves []entity.Position) (*ReplayReport, error) {
	log := that.logger.With("method", "Replay", "match_id", that.id)

	report := &ReplayReport{
		ID:    that.id,
		Steps: make([]ReplayStep, 0, len(moves)),
	}

	for _, move := range moves {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("replay interrupted after %d moves: %w", len(report.Steps), err)
		}

		step := ReplayStep{Move: move}

		result, err := that.MakeTurn(ctx, move)
		if err != nil {
			report.Rejected++
		} else {
			step.Result = result
			report.Accepted++
		}

		step.Snapshot = that.game.String()
		report.Steps = append(report.Steps, step)
	}

	log.Info("replay finished", "accepted", report.Accepted, "rejected", report.Rejected)

	return report, nil
}

// flippedStones returns the positions whose stone changed color, excluding the placed one.
func flippedStones(before, after *entity.Board, move entity.Position) []entity.Position {
	var flipped []entity.Position

	for y := 0; y < entity.BoardSize; y++ {
		for x := 0; x < entity.BoardSize; x++ {
			if x == move.X && y == move.Y {
				continue
			}

			was, wasOccupied := before.Color(x, y)
			now, isOccupied := after.Color(x, y)
			if wasOccupied && isOccupied && was != now {
				flipped = append(flipped, entity.Position{X: x, Y: y})
			}
		}
	}

	return flipped
}
