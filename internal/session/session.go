package session

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/vancomm/minesweeper/internal/mines"
)

type State int

const (
	Playing State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "!"
	}
}

var (
	ErrOutOfBounds = errors.New("cell is outside of the board")
	ErrRoundOver   = errors.New("round is over")
)

// View is the read-only part of a board a renderer needs.
type View interface {
	Width() int
	Height() int
	IsMine(row, col int) bool
	IsRevealed(row, col int) bool
	MarkState(row, col int) mines.MarkState
	NeighborMineCount(row, col int) int
	Flags() int
	Params() mines.GameParams
}

// Session owns a single board for its whole lifetime and turns player
// gestures into board commands.
type Session struct {
	logger *slog.Logger
	board  *mines.Board
	state  State
	round  uuid.UUID
}

func New(logger *slog.Logger, params mines.GameParams, r *rand.Rand) (*Session, error) {
	board, err := mines.NewBoard(params, r)
	if err != nil {
		return nil, fmt.Errorf("unable to create board: %w", err)
	}
	s := &Session{
		logger: logger,
		board:  board,
	}
	s.Restart()
	return s, nil
}

func (s *Session) Board() View {
	return s.board
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Round() uuid.UUID {
	return s.round
}

// Restart starts a new round on the same board.
func (s *Session) Restart() {
	s.board.Initialize()
	s.state = Playing
	s.round = uuid.New()
	s.logger.Info(
		"round started",
		slog.String("round", s.round.String()),
		slog.String("params", s.board.Params().Seed()),
	)
}

func (s *Session) check(row, col int) error {
	if !s.board.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}
	if s.state != Playing {
		return ErrRoundOver
	}
	return nil
}

// Open is the primary activation of a cell. Revealed and flagged cells are
// ignored. On a loss every mine is exposed.
func (s *Session) Open(row, col int) (mines.Outcome, error) {
	if err := s.check(row, col); err != nil {
		return s.board.Outcome(), err
	}
	if s.board.IsRevealed(row, col) ||
		s.board.MarkState(row, col) == mines.MarkFlag {
		return mines.Continue, nil
	}

	outcome := s.board.Reveal(row, col)
	switch outcome {
	case mines.Loss:
		s.board.RevealMines()
		s.state = Lost
	case mines.Win:
		s.state = Won
	}

	s.logger.Debug(
		"cell opened",
		slog.String("round", s.round.String()),
		slog.Int("row", row),
		slog.Int("col", col),
		slog.String("outcome", outcome.String()),
	)
	if s.state != Playing {
		s.logger.Info(
			"round over",
			slog.String("round", s.round.String()),
			slog.String("state", s.state.String()),
		)
	}

	return outcome, nil
}

// Mark is the secondary activation of a cell. It returns the new mark.
func (s *Session) Mark(row, col int) (mines.MarkState, error) {
	if err := s.check(row, col); err != nil {
		if errors.Is(err, ErrOutOfBounds) {
			return mines.MarkNone, err
		}
		return s.board.MarkState(row, col), err
	}
	mark := s.board.CycleMark(row, col)
	s.logger.Debug(
		"cell marked",
		slog.String("round", s.round.String()),
		slog.Int("row", row),
		slog.Int("col", col),
		slog.String("mark", mark.String()),
	)
	return mark, nil
}
