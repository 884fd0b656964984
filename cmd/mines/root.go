package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/logging"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
	"github.com/vancomm/minesweeper/internal/tui"
)

type options struct {
	width     int
	height    int
	mineCount int
	params    string
	config    string
	logFile   string
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "mines",
		Short: "Play mines in the terminal",
		Long: `Play a game of mines in the terminal.

Open every cell that does not hide a mine. Enter, Space or a left click opens
the selected cell; f, m or a right click cycles its mark between flag,
question and none.

Board size is read from an optional YAML file (--config), then from
MINES_WIDTH, MINES_HEIGHT and MINES_COUNT, and can be overridden with flags:
  mines --width 9 --height 9 --mines 10
  mines --params 16:16:40`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := opts.gameParams(cmd)
			if err != nil {
				return err
			}
			return run(cmd.Context(), *params, opts.logFile)
		},
	}

	def := config.DefaultGame
	cmd.Flags().IntVarP(&opts.width, "width", "W", def.Width, "Number of columns")
	cmd.Flags().IntVarP(&opts.height, "height", "H", def.Height, "Number of rows")
	cmd.Flags().IntVarP(&opts.mineCount, "mines", "m", def.MineCount, "Number of mines")
	cmd.Flags().StringVar(&opts.params, "params", "", "Board as width:height:mines, overrides the other size flags")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "YAML file with width, height and mine_count")
	cmd.Flags().StringVar(&opts.logFile, "log-file", config.LogFile(), "Log file path")

	return cmd
}

// gameParams layers explicitly set flags over the environment, which in turn
// overrides the config file.
func (o options) gameParams(cmd *cobra.Command) (*mines.GameParams, error) {
	if o.params != "" {
		return mines.ParseSeed(o.params)
	}

	game := config.DefaultGame
	if o.config != "" {
		var err error
		if game, err = config.ReadGameFile(o.config); err != nil {
			return nil, err
		}
	}

	params, err := game.WithEnv()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		params.Width = o.width
	}
	if flags.Changed("height") {
		params.Height = o.height
	}
	if flags.Changed("mines") {
		params.MineCount = o.mineCount
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

func run(ctx context.Context, params mines.GameParams, logFile string) error {
	development := config.Development()

	file := logging.NewFile(logFile)
	defer file.Close()
	logger := logging.New(file, development)

	err := logging.ConfigureLogrus(mines.Log, logging.EngineFile(logFile), development)
	if err != nil {
		return err
	}

	s, err := session.New(logger, params, mines.NewRand())
	if err != nil {
		return fmt.Errorf("unable to start a game: %w", err)
	}
	app := tui.New(logger, s)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		if err := app.Run(ctx); err != nil {
			return fmt.Errorf("terminal ui failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("game closed", slog.Any("cause", context.Cause(ctx)))
		return nil
	})

	logger.Info("game online", slog.String("params", params.Seed()))
	return g.Wait()
}
