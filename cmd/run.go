package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/lymphiz/internal/app"
	"github.com/abhisek/lymphiz/internal/config"
	"github.com/abhisek/lymphiz/internal/drainage"
	"github.com/abhisek/lymphiz/internal/logging"
	"github.com/abhisek/lymphiz/internal/quiz"
	"github.com/abhisek/lymphiz/internal/session"
)

// deps bundles what every subcommand builds from config and flags.
type deps struct {
	cfg     config.Config
	log     *zap.Logger
	dataset *drainage.Dataset
	engine  *quiz.Engine
}

// loadRuntime reads config, applies flag overrides, and loads the dataset.
// console selects stderr logging; the TUI keeps the terminal to itself.
func loadRuntime(cmd *cobra.Command, console bool) (*deps, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	envFiles := []string{envFile}
	if !cmd.Flags().Changed("env-file") {
		envFiles = config.OptionalDotEnv(envFile)
	}
	cfg, err := config.FromEnv(envFiles...)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("dataset") {
		cfg.Dataset, _ = cmd.Flags().GetString("dataset")
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetUint64("seed")
	}

	log, err := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		File:    cfg.LogPath(),
		Console: console,
	})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	ds, err := drainage.Load(cfg.Dataset)
	if err != nil {
		log.Error("dataset rejected", zap.String("source", cfg.Dataset), zap.Error(err))
		_ = log.Sync()
		return nil, err
	}
	log.Info("dataset loaded",
		zap.String("source", ds.Source()),
		zap.Int("organs", len(ds.Organs())),
		zap.Int("structures", ds.AllNodes().Len()))

	return &deps{
		cfg:     cfg,
		log:     log,
		dataset: ds,
		engine:  quiz.NewEngine(ds, cfg.Quiz()),
	}, nil
}

// newSession creates a single local session seeded from config.
func (rt *deps) newSession() *session.Session {
	return session.New(rt.engine, quiz.NewRand(rt.cfg.Seed), rt.log, nil)
}

// runApp loads everything and launches the TUI.
func runApp(cmd *cobra.Command) error {
	rt, err := loadRuntime(cmd, false)
	if err != nil {
		return err
	}
	defer func() { _ = rt.log.Sync() }()

	return app.Run(cmd.Context(), app.Options{
		Session: rt.newSession(),
		Logger:  rt.log,
	})
}
