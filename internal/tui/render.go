package tui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

var countColors = [...]tcell.Color{
	1: tcell.ColorBlue,
	2: tcell.ColorGreen,
	3: tcell.ColorRed,
	4: tcell.ColorDarkBlue,
	5: tcell.ColorMaroon,
	6: tcell.ColorTeal,
	7: tcell.ColorWhite,
	8: tcell.ColorGray,
}

// cellView returns the symbol and colour of a single cell.
func cellView(v session.View, row, col int) (string, tcell.Color) {
	if v.IsRevealed(row, col) {
		if v.IsMine(row, col) {
			return "*", tcell.ColorRed
		}
		n := v.NeighborMineCount(row, col)
		if n == 0 {
			return " ", tcell.ColorDefault
		}
		return strconv.Itoa(n), countColors[n]
	}
	switch v.MarkState(row, col) {
	case mines.MarkFlag:
		return "F", tcell.ColorRed
	case mines.MarkQuestion:
		return "?", tcell.ColorYellow
	default:
		return ".", tcell.ColorDefault
	}
}

func (a *App) render() {
	v := a.session.Board()
	for row := range v.Height() {
		for col := range v.Width() {
			text, color := cellView(v, row, col)
			a.table.SetCell(row, col, tview.NewTableCell(" "+text+" ").
				SetTextColor(color).
				SetAlign(tview.AlignCenter))
		}
	}
	a.status.SetText(statusLine(a.session))
}

func statusLine(s *session.Session) string {
	v := s.Board()
	return fmt.Sprintf(
		"%s  flags %d/%d  %s  [Enter] open  [f] mark  [r] restart  [q] quit",
		v.Params(), v.Flags(), v.Params().MineCount, s.State(),
	)
}
