package main

import (
	"context"
	"flag"
	"fmt"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/vancomm/minesweeper-term/internal/config"
	"github.com/vancomm/minesweeper-term/internal/logging"
	"github.com/vancomm/minesweeper-term/internal/mines"
	"github.com/vancomm/minesweeper-term/internal/ui"
	"golang.org/x/sync/errgroup"
)

var (
	configPath string
	difficulty string
	custom     string
	seed       *uint64
)

func init() {
	const (
		configUsage     = "config file path"
		difficultyUsage = "start a game right away: preset name or width:height:mines"
		customUsage     = "custom difficulty, e.g. \"width=20&height=10&mines=30&name=Wide\""
		seedUsage       = "board generator seed"
	)
	defaultConfigPath := config.DefaultPath()
	flag.StringVar(&configPath, "config", defaultConfigPath, configUsage)
	flag.StringVar(&configPath, "c", defaultConfigPath, configUsage+" (shorthand)")
	flag.StringVar(&difficulty, "difficulty", "", difficultyUsage)
	flag.StringVar(&difficulty, "d", "", difficultyUsage+" (shorthand)")
	flag.StringVar(&custom, "custom", "", customUsage)

	parseSeed := func(s string) error {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return err
		}
		seed = &v
		return nil
	}
	flag.Func("seed", seedUsage, parseSeed)
	flag.Func("s", seedUsage+" (shorthand)", parseSeed)
}

func createRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func run(ctx context.Context, console *slog.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if difficulty != "" {
		cfg.Difficulty = difficulty
	}
	if seed != nil {
		cfg.Seed = seed
	}

	log, err := logging.New(cfg)
	if err != nil {
		return err
	}
	mines.Log = log

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	presets := cfg.Presets()
	var start *mines.Difficulty
	if custom != "" {
		d, err := config.ParseCustom(custom)
		if err != nil {
			return err
		}
		presets = append(presets, d)
		start = &d
	}
	if start == nil && cfg.Difficulty != "" {
		d, err := cfg.ResolveDifficulty(cfg.Difficulty)
		if err != nil {
			return err
		}
		start = &d
	}

	app := ui.New(ui.Options{
		Presets: presets,
		Rand:    createRand(cfg.Seed),
		Logger:  log,
	})
	if start != nil {
		app.StartGame(*start)
	}

	console.Debug("handing the terminal to the game", slog.String("log file", cfg.LogFile))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		if err := app.Run(gCtx); err != nil {
			return fmt.Errorf("ui: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		app.Stop()
		return nil
	})

	err = g.Wait()
	log.Info("shut down")
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	console := logging.NewConsole(os.Stderr, config.Development())
	if err := run(ctx, console); err != nil {
		console.Error("exit reason", "error", err)
		stop()
		os.Exit(1)
	}
}
