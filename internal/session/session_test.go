package session

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// newRiggedSession returns a session whose mines sit exactly at mined.
func newRiggedSession(t *testing.T, width, height int, mined ...mines.Point) *Session {
	t.Helper()
	s, err := New(
		discard,
		mines.GameParams{Width: width, Height: height, MineCount: len(mined)},
		rand.New(rand.NewPCG(1, 2)),
	)
	require.NoError(t, err)
	for row := range height {
		for col := range width {
			s.board.SetMine(row, col, false)
		}
	}
	for _, p := range mined {
		s.board.SetMine(p.Row, p.Col, true)
	}
	return s
}

func TestNewRejectsInvalidParams(t *testing.T) {
	_, err := New(discard, mines.GameParams{Width: 2, Height: 2, MineCount: 4}, nil)
	var pe *mines.ParamsError
	assert.ErrorAs(t, err, &pe)
}

func TestNewStartsRound(t *testing.T) {
	s, err := New(
		discard,
		mines.GameParams{Width: 9, Height: 9, MineCount: 10},
		rand.New(rand.NewPCG(1, 2)),
	)
	require.NoError(t, err)

	assert.Equal(t, Playing, s.State())
	assert.NotZero(t, s.Round())
	assert.Len(t, s.board.Mines(), 10)
}

func TestOpenLossRevealsAllMines(t *testing.T) {
	s := newRiggedSession(t, 4, 4, mines.Point{0, 0}, mines.Point{3, 3}, mines.Point{2, 1})
	s.board.SetMarkState(3, 3, mines.MarkFlag)

	outcome, err := s.Open(0, 0)
	require.NoError(t, err)
	assert.Equal(t, mines.Loss, outcome)
	assert.Equal(t, Lost, s.State())
	for _, p := range s.board.Mines() {
		assert.True(t, s.board.IsRevealed(p.Row, p.Col), "mine %v", p)
	}
	assert.False(t, s.board.IsRevealed(1, 1))

	outcome, err = s.Open(1, 1)
	assert.ErrorIs(t, err, ErrRoundOver)
	assert.Equal(t, mines.Loss, outcome)
	assert.False(t, s.board.IsRevealed(1, 1))

	_, err = s.Mark(1, 1)
	assert.ErrorIs(t, err, ErrRoundOver)
	assert.Equal(t, mines.MarkNone, s.board.MarkState(1, 1))
}

func TestOpenWin(t *testing.T) {
	s := newRiggedSession(t, 3, 1, mines.Point{0, 2})

	outcome, err := s.Open(0, 0)
	require.NoError(t, err)
	assert.Equal(t, mines.Win, outcome)
	assert.Equal(t, Won, s.State())
	assert.False(t, s.board.IsRevealed(0, 2))
}

func TestOpenRefusesFlaggedAndRevealed(t *testing.T) {
	s := newRiggedSession(t, 3, 3, mines.Point{0, 0})

	mark, err := s.Mark(0, 0)
	require.NoError(t, err)
	require.Equal(t, mines.MarkFlag, mark)

	outcome, err := s.Open(0, 0)
	require.NoError(t, err)
	assert.Equal(t, mines.Continue, outcome)
	assert.False(t, s.board.IsRevealed(0, 0))
	assert.Equal(t, Playing, s.State())

	outcome, err = s.Open(1, 1)
	require.NoError(t, err)
	assert.Equal(t, mines.Continue, outcome)

	before := s.board.String()
	outcome, err = s.Open(1, 1)
	require.NoError(t, err)
	assert.Equal(t, mines.Continue, outcome)
	assert.Equal(t, before, s.board.String())
}

func TestMarkCycle(t *testing.T) {
	s := newRiggedSession(t, 2, 2, mines.Point{0, 0})

	for _, want := range []mines.MarkState{
		mines.MarkFlag, mines.MarkQuestion, mines.MarkNone, mines.MarkFlag,
	} {
		mark, err := s.Mark(1, 0)
		require.NoError(t, err)
		assert.Equal(t, want, mark)
	}
	assert.Equal(t, 1, s.Board().Flags())
}

func TestOutOfBounds(t *testing.T) {
	s := newRiggedSession(t, 2, 2, mines.Point{0, 0})

	_, err := s.Open(2, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = s.Open(0, -1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	mark, err := s.Mark(5, 5)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, mines.MarkNone, mark)
}

func TestRestart(t *testing.T) {
	s := newRiggedSession(t, 3, 3, mines.Point{1, 1})
	round := s.Round()

	_, err := s.Mark(0, 0)
	require.NoError(t, err)
	outcome, err := s.Open(1, 1)
	require.NoError(t, err)
	require.Equal(t, mines.Loss, outcome)

	s.Restart()
	assert.Equal(t, Playing, s.State())
	assert.NotEqual(t, round, s.Round())
	assert.Equal(t, mines.Continue, s.board.Outcome())
	assert.Zero(t, s.Board().Flags())
	assert.Len(t, s.board.Mines(), 1)
	for row := range 3 {
		for col := range 3 {
			assert.False(t, s.board.IsRevealed(row, col))
		}
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "playing", Playing.String())
	assert.Equal(t, "won", Won.String())
	assert.Equal(t, "lost", Lost.String())
}
