package mines

import "github.com/sirupsen/logrus"

type Outcome int8

const (
	Continue Outcome = iota
	Win
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "!"
	}
}

// Outcome reports the state of the round as it stands: [Loss] once any mine
// is revealed, [Win] once every safe cell is revealed, [Continue] otherwise.
func (b Board) Outcome() Outcome {
	for _, c := range b.cells {
		if c.mine && c.revealed {
			return Loss
		}
	}
	if b.AllNonMinesRevealed() {
		return Win
	}
	return Continue
}

// Reveal opens (row, col). Revealing a revealed or flagged cell changes
// nothing and returns the current [Board.Outcome].
//
// panics [*OutOfBoundsError]
func (b *Board) Reveal(row, col int) Outcome {
	i := b.index(row, col)
	c := &b.cells[i]
	if c.revealed || c.mark == MarkFlag {
		return b.Outcome()
	}

	c.revealed = true
	if c.mine {
		/*
		 * The player has landed on a mine. Expose only the mine that
		 * killed them; showing the rest is up to the caller.
		 */
		Log.WithFields(logrus.Fields{
			"row": row, "col": col,
		}).Debug("mine hit")
		return Loss
	}

	if b.neighborMines(i) == 0 {
		opened := b.cascade(i)
		Log.WithFields(logrus.Fields{
			"row": row, "col": col, "opened": opened,
		}).Debug("cascade")
	}

	if b.AllNonMinesRevealed() {
		return Win
	}
	return Continue
}

// cascade opens the zero-count region connected to the already revealed
// cell start, plus its border. Flagged cells are left alone; question marks
// are not. Returns the number of cells opened.
func (b *Board) cascade(start int) (opened int) {
	todo := newCelltodo(len(b.cells))
	todo.add(start)

	for !todo.empty() {
		i := todo.pop()
		for j := range b.neighbors(i) {
			c := &b.cells[j]
			if c.revealed || c.mark == MarkFlag {
				continue
			}
			c.revealed = true
			opened++
			if b.neighborMines(j) == 0 {
				todo.add(j)
			}
		}
	}

	return
}

// CycleMark advances the mark of a hidden cell through None, Flag and
// Question and returns the new mark. Revealed cells are left unchanged.
//
// panics [*OutOfBoundsError]
func (b *Board) CycleMark(row, col int) MarkState {
	c := &b.cells[b.index(row, col)]
	if c.revealed {
		return c.mark
	}
	c.mark = c.mark.Next()
	return c.mark
}

// RevealMines exposes every mine without cascading or checking the outcome.
// It is meant for the end-of-round display after a loss.
func (b *Board) RevealMines() {
	for i := range b.cells {
		if b.cells[i].mine {
			b.cells[i].revealed = true
		}
	}
}
