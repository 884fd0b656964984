package mines

type MarkState int8

const (
	MarkNone MarkState = iota
	MarkFlag
	MarkQuestion
)

func (m MarkState) String() string {
	switch m {
	case MarkNone:
		return "none"
	case MarkFlag:
		return "flag"
	case MarkQuestion:
		return "question"
	default:
		return "!"
	}
}

// Next returns the mark that follows m in the None -> Flag -> Question cycle.
func (m MarkState) Next() MarkState {
	switch m {
	case MarkNone:
		return MarkFlag
	case MarkFlag:
		return MarkQuestion
	default:
		return MarkNone
	}
}

// Cell holds the state of a single grid position. The zero value is a
// hidden, unmarked cell without a mine.
type Cell struct {
	mine     bool
	revealed bool
	mark     MarkState
}

func (c Cell) HasMine() bool {
	return c.mine
}

func (c *Cell) SetMine(mine bool) {
	c.mine = mine
}

func (c Cell) Revealed() bool {
	return c.revealed
}

func (c *Cell) SetRevealed(revealed bool) {
	c.revealed = revealed
}

func (c Cell) Mark() MarkState {
	return c.mark
}

func (c *Cell) SetMark(mark MarkState) {
	c.mark = mark
}

func (c *Cell) Reset() {
	*c = Cell{}
}
