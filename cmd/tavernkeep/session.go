package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"go.uber.org/zap"

	"tavernkeep/internal/app"
	"tavernkeep/internal/config"
	"tavernkeep/internal/logger"
	"tavernkeep/internal/store"
)

const defaultConfigPath = config.DefaultPath

var configPath = defaultConfigPath

type session struct {
	cfg     *config.ProjectConfig
	log     *zap.Logger
	store   store.DataStore
	app     *app.App
	welcome string
}

// loadConfig reads the project config. Without one at the default path the
// session runs unsaved.
func loadConfig() (*config.ProjectConfig, error) {
	cfg, err := config.LoadProjectConfig(configPath)
	if err == nil {
		return cfg, nil
	}
	if configPath == defaultConfigPath && errors.Is(err, fs.ErrNotExist) {
		cfg = config.DefaultConfig("tavernkeep")
		cfg.Store = config.StoreConfig{Driver: config.DriverNone}
		return cfg, nil
	}
	return nil, err
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Encoding: cfg.Log.Encoding})
	if err != nil {
		return nil, err
	}

	demographics, err := cfg.SpeciesWeights()
	if err != nil {
		return nil, err
	}

	ds, err := openDataStore(ctx, cfg.Store)
	if err != nil {
		log.Warn("opening data store, continuing without one", zap.String("driver", cfg.Store.Driver), zap.Error(err))
		ds = store.NullDataStore{}
	}

	a := app.New(ds, app.Config{Log: log.Named("app"), Demographics: &demographics})
	s := &session{cfg: cfg, log: log, store: ds, app: a}
	s.welcome = a.Init(ctx)
	log.Info("session started", zap.String("project", cfg.Project), zap.String("driver", cfg.Store.Driver))
	return s, nil
}

func (s *session) Close(ctx context.Context) {
	if err := s.store.Close(ctx); err != nil {
		s.log.Warn("closing data store", zap.Error(err))
	}
	_ = s.log.Sync()
}

func printOutput(w io.Writer, out string, err error) {
	if err != nil {
		fmt.Fprintln(w, err.Error())
		return
	}
	fmt.Fprintln(w, out)
}
