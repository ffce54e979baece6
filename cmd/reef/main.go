package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kiryu-dev/reef-encounter/internal/adapters/console"
	"github.com/kiryu-dev/reef-encounter/internal/adapters/report"
	"github.com/kiryu-dev/reef-encounter/internal/config"
	"github.com/kiryu-dev/reef-encounter/internal/domain"
	"github.com/kiryu-dev/reef-encounter/internal/usecase/setup"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfgPath := flag.String("config", "", "path to config")
	flag.Parse()
	cfg, err := config.New(*cfgPath)
	if err != nil {
		panic(err)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	prompter := console.New(os.Stdin, os.Stdout, logger)
	defer func() {
		_ = prompter.Close()
	}()
	game, err := setup.New(cfg.Players,
		setup.WithRandomizer(rand.New(rand.NewSource(seed))),
		setup.WithPrompter(prompter),
		setup.WithLogger(logger),
		setup.WithLayouts(cfg.Boards...),
	)
	if err != nil {
		logger.Fatal(err.Error())
	}
	logger.Info("new game", zap.String("game", game.ID()), zap.Int64("seed", seed))

	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	errGroup := new(errgroup.Group)
	errGroup.Go(func() error {
		select {
		case s := <-sigChan:
			cancel()
			return errors.Errorf("captured signal: %v", s)
		case <-done:
			return nil
		}
	})
	errGroup.Go(func() error {
		defer close(done)
		return run(ctx, game, cfg)
	})
	if err := errGroup.Wait(); err != nil {
		logger.Error("setup aborted: " + err.Error())
		os.Exit(1)
	}
}

type session interface {
	domain.SetupUseCase
	Snapshot() setup.Snapshot
}

func run(ctx context.Context, game session, cfg config.Config) error {
	if err := game.Prepare(); err != nil {
		return errors.WithMessage(err, "prepare game")
	}
	if cfg.Interactive {
		if err := game.Start(ctx); err != nil {
			return errors.WithMessage(err, "start game")
		}
	}
	if err := report.New(os.Stdout, cfg.Output).Write(game.Snapshot()); err != nil {
		return errors.WithMessage(err, "write report")
	}
	return nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(cfg.Level())
	zapCfg.OutputPaths = []string{"stderr"}
	return zapCfg.Build()
}
