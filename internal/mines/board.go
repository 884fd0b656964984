package mines

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Point struct {
	Row, Col int
}

// Board is a Height x Width grid of cells stored in row-major order. It is
// not safe for concurrent use.
type Board struct {
	params GameParams
	cells  []Cell
	rnd    *rand.Rand
}

// NewBoard allocates a board of default cells. Mines are not placed until
// [Board.Initialize] is called. A nil r is replaced with a freshly seeded
// source.
func NewBoard(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = NewRand()
	}
	b := &Board{
		params: params,
		cells:  make([]Cell, params.Cells()),
		rnd:    r,
	}
	return b, nil
}

// Initialize resets every cell and places MineCount mines uniformly at random.
func (b *Board) Initialize() {
	for i := range b.cells {
		b.cells[i].Reset()
	}
	grid := placeMines(b.params.Width, b.params.Height, b.params.MineCount, b.rnd)
	for i, mine := range grid {
		b.cells[i].SetMine(mine)
	}
	Log.WithFields(logrus.Fields{
		"params": b.params.String(),
	}).Debug("board initialized")
}

func (b Board) Params() GameParams {
	return b.params
}

func (b Board) Width() int {
	return b.params.Width
}

func (b Board) Height() int {
	return b.params.Height
}

func (b Board) MineCount() int {
	return b.params.MineCount
}

func (b Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.params.Height && col >= 0 && col < b.params.Width
}

// panics [*OutOfBoundsError]
func (b Board) index(row, col int) int {
	if !b.InBounds(row, col) {
		panic(&OutOfBoundsError{
			Row: row, Col: col, Width: b.params.Width, Height: b.params.Height,
		})
	}
	return row*b.params.Width + col
}

func (b Board) point(i int) Point {
	return Point{Row: i / b.params.Width, Col: i % b.params.Width}
}

// neighbors yields the indices of the in-grid Moore neighbourhood of i.
func (b Board) neighbors(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		row, col := i/b.params.Width, i%b.params.Width
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				rr, cc := row+dr, col+dc
				if !b.InBounds(rr, cc) {
					continue
				}
				if !yield(rr*b.params.Width + cc) {
					return
				}
			}
		}
	}
}

func (b Board) Cell(row, col int) Cell {
	return b.cells[b.index(row, col)]
}

func (b Board) IsMine(row, col int) bool {
	return b.cells[b.index(row, col)].HasMine()
}

func (b *Board) SetMine(row, col int, mine bool) {
	b.cells[b.index(row, col)].SetMine(mine)
}

func (b Board) IsRevealed(row, col int) bool {
	return b.cells[b.index(row, col)].Revealed()
}

func (b *Board) SetRevealed(row, col int, revealed bool) {
	b.cells[b.index(row, col)].SetRevealed(revealed)
}

func (b Board) MarkState(row, col int) MarkState {
	return b.cells[b.index(row, col)].Mark()
}

func (b *Board) SetMarkState(row, col int, mark MarkState) {
	b.cells[b.index(row, col)].SetMark(mark)
}

// NeighborMineCount counts the mines around (row, col), 0 to 8.
func (b Board) NeighborMineCount(row, col int) int {
	return b.neighborMines(b.index(row, col))
}

func (b Board) neighborMines(i int) (count int) {
	for j := range b.neighbors(i) {
		if b.cells[j].mine {
			count++
		}
	}
	return
}

// AllNonMinesRevealed is the win condition. Flags are irrelevant.
func (b Board) AllNonMinesRevealed() bool {
	for _, c := range b.cells {
		if !c.mine && !c.revealed {
			return false
		}
	}
	return true
}

// IsClearedCell reports whether (row, col) is on the board, revealed and has
// no neighbouring mines. Unlike the other queries it does not panic.
func (b Board) IsClearedCell(row, col int) bool {
	if !b.InBounds(row, col) {
		return false
	}
	i := row*b.params.Width + col
	return b.cells[i].revealed && b.neighborMines(i) == 0
}

// Mines lists mined coordinates in row-major order.
func (b Board) Mines() []Point {
	points := make([]Point, 0, b.params.MineCount)
	for i, c := range b.cells {
		if c.mine {
			points = append(points, b.point(i))
		}
	}
	return points
}

// Flags counts hidden cells marked with [MarkFlag].
func (b Board) Flags() (count int) {
	for _, c := range b.cells {
		if !c.revealed && c.mark == MarkFlag {
			count++
		}
	}
	return
}

// [Board] implements [fmt.Stringer]
func (b Board) String() string {
	var sb strings.Builder
	for row := range b.params.Height {
		for col := range b.params.Width {
			i := row*b.params.Width + col
			c := b.cells[i]
			var ch string
			switch {
			case c.revealed && c.mine:
				ch = "*"
			case c.revealed:
				if n := b.neighborMines(i); n > 0 {
					ch = strconv.Itoa(n)
				} else {
					ch = " "
				}
			case c.mark == MarkFlag:
				ch = "F"
			case c.mark == MarkQuestion:
				ch = "?"
			default:
				ch = "."
			}
			fmt.Fprint(&sb, ch)
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}
