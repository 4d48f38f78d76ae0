// Package app interprets typed commands against the world repository.
package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"go.uber.org/zap"

	"tavernkeep/internal/logger"
	"tavernkeep/internal/reference"
	"tavernkeep/internal/repository"
	"tavernkeep/internal/store"
	"tavernkeep/internal/world"
)

type Config struct {
	Log          *zap.Logger
	Rand         *rand.Rand
	Demographics *world.Demographics
	Reference    *reference.Index
}

// App is not safe for concurrent use. Hosts with several input sources must
// serialize calls.
type App struct {
	meta *AppMeta
}

func New(ds store.DataStore, cfg Config) *App {
	log := logger.OrNop(cfg.Log)

	rng := cfg.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	demographics := world.DefaultDemographics()
	if cfg.Demographics != nil {
		demographics = *cfg.Demographics
	}
	ref := cfg.Reference
	if ref == nil {
		ref = reference.Default()
	}

	return &App{meta: &AppMeta{
		Repository:   repository.New(ds, log.Named("repository")),
		Rng:          rng,
		Demographics: demographics,
		Reference:    ref,
		Log:          log,
	}}
}

// Init loads the journal and returns the welcome message.
func (a *App) Init(ctx context.Context) string {
	a.meta.Repository.Init(ctx)

	out := welcomeText
	if !a.meta.Repository.DataStoreEnabled() {
		out += "\n\n! Your journal is not being saved anywhere in this session. Anything you create will be lost when you exit."
	}
	return out
}

// Command parses and runs one line of input.
func (a *App) Command(ctx context.Context, input string) (string, error) {
	input = strings.TrimSpace(input)
	cmd := parseIrrefutable(input, a.meta)
	a.meta.Log.Debug("running command",
		zap.String("input", input),
		zap.String("command", fmt.Sprintf("%T", cmd)),
		zap.String("canonical", cmd.String()))

	out, err := cmd.Run(ctx, input, a.meta)
	if err != nil {
		a.meta.Log.Debug("command failed", zap.String("input", input), zap.Error(err))
	}
	return out, err
}

// Autocomplete returns at most MaxSuggestions suggestions for input, sorted
// by text.
func (a *App) Autocomplete(_ context.Context, input string) []Suggestion {
	return autocomplete(input, a.meta)
}

func (a *App) Export(ctx context.Context) (*repository.Export, error) {
	return a.meta.Repository.Export(ctx)
}

// Journal returns the saved things.
func (a *App) Journal() []world.Thing {
	return a.meta.Repository.Journal()
}

func (a *App) Meta() *AppMeta {
	return a.meta
}

const welcomeText = "# Welcome to tavernkeep!\n\n" +
	"Generate characters and places on the fly while you run your game. " +
	"Type a description such as `elderly elf` or `inn` to get started, " +
	"~help~ for a list of commands, or ~tutorial~ for a guided tour."
