package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/tilescore/config"
	"github.com/domino14/tilescore/shell"
)

var GitVersion string

//go:embed tilescore.txt
var banner string

func setupLogging(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
}

func main() {
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)

	// A .env in the working directory may set TILESCORE_* variables.
	_ = godotenv.Load()

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg.GetBool(config.ConfigDebug))
	cfg.AdjustRelativePaths(exPath)
	log.Debug().Interface("settings", cfg.SanitizedSettings()).Msg("loaded-config")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	// The shell asks to quit by sending on sig, like a real interrupt.
	sig := make(chan os.Signal, 1)

	sc := shell.NewShellController(cfg, exPath, GitVersion)
	defer sc.Cleanup()

	if line := strings.TrimSpace(strings.Join(cfg.Args(), " ")); line != "" {
		sc.Execute(sig, line)
		return
	}

	fmt.Println(banner)
	fmt.Println(GitVersion)
	go sc.Loop(sig)
	select {
	case <-ctx.Done():
	case <-sig:
	}
	log.Debug().Msg("shutting-down")
}
