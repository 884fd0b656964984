package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Cells() int {
	return p.Width * p.Height
}

// Validate reports a [*ParamsError] unless the board is at least 1x1 and
// 0 <= MineCount < Width*Height.
func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 ||
		p.MineCount < 0 || p.MineCount >= p.Cells() {
		return &ParamsError{Params: p}
	}
	return nil
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

// ParseSeed is the inverse of [GameParams.Seed]. The result is validated.
func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (seed = "%s", n = %d, err = %w)`,
			seed, n, err,
		)
	}
	// Sscanf stops at the third number, anything after it is garbage
	if p.Seed() != seed {
		return nil, fmt.Errorf(`invalid game params seed (seed = "%s")`, seed)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}
