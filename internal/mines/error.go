package mines

import "fmt"

type ParamsError struct {
	Params GameParams
}

// [ParamsError] implements [error]
func (e *ParamsError) Error() string {
	p := e.Params
	switch {
	case p.Width <= 0:
		return fmt.Sprintf("invalid board width: %d", p.Width)
	case p.Height <= 0:
		return fmt.Sprintf("invalid board height: %d", p.Height)
	case p.MineCount < 0:
		return fmt.Sprintf("invalid mine count: %d", p.MineCount)
	case p.MineCount >= p.Width*p.Height:
		return fmt.Sprintf(
			"too many mines for a %dx%d board: %d (must be less than %d)",
			p.Width, p.Height, p.MineCount, p.Width*p.Height,
		)
	default:
		return "invalid game params"
	}
}

type OutOfBoundsError struct {
	Row, Col      int
	Width, Height int
}

// [OutOfBoundsError] implements [error]
func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf(
		"cell (%d, %d) is outside of a %dx%d board",
		e.Row, e.Col, e.Width, e.Height,
	)
}
