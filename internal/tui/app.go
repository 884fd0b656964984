package tui

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

const (
	boardPage  = "board"
	promptPage = "prompt"
)

// App is the terminal front-end of a single game session.
type App struct {
	logger  *slog.Logger
	session *session.Session
	app     *tview.Application
	pages   *tview.Pages
	table   *tview.Table
	status  *tview.TextView
}

func New(logger *slog.Logger, s *session.Session) *App {
	a := &App{
		logger:  logger,
		session: s,
		app:     tview.NewApplication(),
		pages:   tview.NewPages(),
		table:   tview.NewTable(),
		status:  tview.NewTextView(),
	}

	a.table.SetSelectable(true, true)
	a.table.SetInputCapture(a.handleKey)
	a.table.SetMouseCapture(a.handleMouse)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.table, 0, 1, true).
		AddItem(a.status, 1, 0, false)
	a.pages.AddPage(boardPage, layout, true, true)

	a.app.SetRoot(a.pages, true).EnableMouse(true)
	a.render()
	return a
}

// SetScreen replaces the terminal, see [tview.Application.SetScreen].
func (a *App) SetScreen(screen tcell.Screen) {
	a.app.SetScreen(screen)
}

// Run blocks until the player quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			// queued so the stop runs once the event loop owns the screen
			a.app.QueueUpdate(a.app.Stop)
		case <-done:
		}
	}()
	return a.app.Run()
}

func (a *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	row, col := a.table.GetSelection()
	switch event.Key() {
	case tcell.KeyEnter:
		a.open(row, col)
		return nil
	case tcell.KeyEscape:
		a.app.Stop()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case ' ':
			a.open(row, col)
			return nil
		case 'f', 'F', 'm', 'M':
			a.mark(row, col)
			return nil
		case 'r', 'R':
			a.restart()
			return nil
		case 'q', 'Q':
			a.app.Stop()
			return nil
		}
	}
	return event
}

func (a *App) handleMouse(
	action tview.MouseAction, event *tcell.EventMouse,
) (tview.MouseAction, *tcell.EventMouse) {
	x, y := event.Position()
	if !a.table.InRect(x, y) {
		return action, event
	}
	row, col := a.table.CellAt(x, y)
	if row < 0 || col < 0 {
		return action, event
	}
	switch action {
	case tview.MouseLeftClick:
		a.table.Select(row, col)
		a.open(row, col)
		return action, nil
	case tview.MouseRightClick:
		a.table.Select(row, col)
		a.mark(row, col)
		return action, nil
	}
	return action, event
}

func (a *App) open(row, col int) {
	outcome, err := a.session.Open(row, col)
	if err != nil {
		a.logger.Debug("open ignored", slog.Any("error", err))
		return
	}
	a.render()
	if outcome != mines.Continue {
		a.prompt(outcome)
	}
}

func (a *App) mark(row, col int) {
	if _, err := a.session.Mark(row, col); err != nil {
		a.logger.Debug("mark ignored", slog.Any("error", err))
		return
	}
	a.render()
}

func (a *App) restart() {
	a.pages.RemovePage(promptPage)
	a.session.Restart()
	a.render()
	a.table.Select(0, 0)
	a.app.SetFocus(a.table)
}

func (a *App) prompt(outcome mines.Outcome) {
	text := "You hit a mine!"
	if outcome == mines.Win {
		text = "Congratulations! You win!"
	}
	modal := tview.NewModal().
		SetText(text + "\nPlay again?").
		AddButtons([]string{"Yes", "No"}).
		SetDoneFunc(func(_ int, label string) {
			if label == "Yes" {
				a.restart()
				return
			}
			a.app.Stop()
		})
	a.pages.AddPage(promptPage, modal, true, true)
	a.app.SetFocus(modal)
}
