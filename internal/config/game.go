package config

import (
	"fmt"
	"os"

	"github.com/gorilla/schema"
	"gopkg.in/yaml.v3"

	"github.com/vancomm/minesweeper/internal/mines"
)

type Game struct {
	Width     int `schema:"width" yaml:"width"`
	Height    int `schema:"height" yaml:"height"`
	MineCount int `schema:"mine_count" yaml:"mine_count"`
}

// DefaultGame is the 30x16 board with 99 mines.
var DefaultGame = Game{Width: 30, Height: 16, MineCount: 99}

var gameEnv = map[string]string{
	"MINES_WIDTH":  "width",
	"MINES_HEIGHT": "height",
	"MINES_COUNT":  "mine_count",
}

// ReadGameFile reads a YAML board description on top of [DefaultGame]:
//
//	width: 16
//	height: 16
//	mine_count: 40
func ReadGameFile(path string) (Game, error) {
	game := DefaultGame
	data, err := os.ReadFile(path)
	if err != nil {
		return game, fmt.Errorf("unable to read game config: %w", err)
	}
	if err := yaml.Unmarshal(data, &game); err != nil {
		return game, fmt.Errorf("unable to parse game config %s: %w", path, err)
	}
	return game, nil
}

// NewGameParams reads MINES_WIDTH, MINES_HEIGHT and MINES_COUNT on top of
// [DefaultGame].
func NewGameParams() (*mines.GameParams, error) {
	return DefaultGame.WithEnv()
}

// WithEnv overrides g with the MINES_* variables that are set and validates
// the result.
func (g Game) WithEnv() (*mines.GameParams, error) {
	src := make(map[string][]string)
	for env, key := range gameEnv {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			src[key] = []string{v}
		}
	}

	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	game := g
	if err := dec.Decode(&game, src); err != nil {
		return nil, fmt.Errorf("unable to decode game env variables: %w", err)
	}

	params := mines.GameParams(game)
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &params, nil
}
