// Package main is the ferrous terminal player.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/llehouerou/ferrous/internal/app"
	"github.com/llehouerou/ferrous/internal/config"
	"github.com/llehouerou/ferrous/internal/errmsg"
	"github.com/llehouerou/ferrous/internal/library"
	"github.com/llehouerou/ferrous/internal/logger"
	"github.com/llehouerou/ferrous/internal/mpris"
	"github.com/llehouerou/ferrous/internal/playback"
	"github.com/llehouerou/ferrous/internal/player"
)

var (
	cli        = kingpin.New("ferrous", "Terminal player for a remote music library")
	configPath = cli.Flag("config", "Path to config file").Short('c').String()
	serverURL  = cli.Flag("server", "Library server URL").Short('s').String()
	verbose    = cli.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	kingpin.MustParse(cli.Parse(os.Args[1:]))

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}

// run executes the program. Using a separate function ensures deferred
// cleanup runs before exiting with an error.
func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *serverURL != "" {
		cfg.Server.URL = strings.TrimSuffix(*serverURL, "/")
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}

	log, closer, err := logger.Init(logger.Config{
		Output: cfg.Log.Output,
		Level:  cfg.Log.Level,
		File:   cfg.Log.LogFile(),
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	log.Info().Str("server", cfg.Server.URL).Msg("starting")

	client := library.New(cfg.Server.URL, cfg.Timeout())
	backend := player.NewStreamBackend(client, logger.Component(log, "player"))

	session := playback.New(backend,
		playback.WithLogger(logger.Component(log, "playback")),
		playback.WithLibrary(client),
		playback.WithVolume(cfg.Playback.Volume),
		playback.WithShuffleHistory(cfg.Playback.ShuffleHistory),
		playback.WithShuffle(cfg.Playback.Shuffle),
		playback.WithRepeat(cfg.Playback.Repeat),
		playback.WithEqualizer(cfg.Equalizer.Settings()),
	)
	defer session.Close()

	media, err := mpris.New(session, logger.Component(log, "mpris"))
	if err != nil {
		log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpMediaKeys, err))
	} else {
		defer media.Close()
	}

	model := app.New(session,
		app.WithLogger(logger.Component(log, "ui")),
		app.WithRefreshTimeout(cfg.Timeout()),
	)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	log.Info().Msg("exiting")
	return nil
}
