package main

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/expired/internal/application/game"
	"github.com/younwookim/expired/internal/application/scene"
	"github.com/younwookim/expired/internal/application/scene/menu"
	"github.com/younwookim/expired/internal/application/scene/playing"
	"github.com/younwookim/expired/internal/infrastructure/config"
	"github.com/younwookim/expired/internal/infrastructure/progress"
)

// setupEnv loads configuration and progress and builds the scene env.
// The returned close function stops the level watcher, if any.
func setupEnv(opts *options) (*playing.Env, func(), error) {
	loader, err := opts.loader()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	levels := config.NewLevelSource(loader)

	closeFn := func() {}
	if opts.watch {
		if opts.configDir == "" {
			return nil, nil, errors.New("failed to watch levels: --watch needs --config-dir")
		}
		dir := filepath.Join(opts.configDir, "levels")
		w, err := config.NewWatcher(dir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to watch levels: %w", err)
		}
		go levels.Follow(w)
		closeFn = func() { _ = w.Close() }
		log.Printf("Watching %s for level changes", dir)
	}

	store := progress.NewStore(opts.save)
	if err := store.Load(); err != nil {
		closeFn()
		return nil, nil, err
	}
	if opts.level > 0 {
		store.Set(opts.level)
	}

	env := &playing.Env{
		Tuning:     cfg.Tuning,
		Levels:     levels,
		Progress:   store,
		RecordPath: opts.record,
	}
	env.Menu = func() scene.Scene { return menu.New(env) }
	return env, closeFn, nil
}

func runPlay(opts *options) error {
	env, closeFn, err := setupEnv(opts)
	if err != nil {
		return err
	}
	defer closeFn()

	display := env.Tuning.Display
	g := game.New(env.Menu(), display.ScreenWidth, display.ScreenHeight)
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	if display.Framerate > 0 {
		g.SetDT(1.0 / float64(display.Framerate))
		ebiten.SetTPS(display.Framerate)
	}

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}
