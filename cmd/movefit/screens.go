package main

import (
	"context"
	"log"
	"time"

	"github.com/depeter/movefit/internal/app"
	"github.com/depeter/movefit/internal/cache"
	"github.com/depeter/movefit/internal/catalog"
	"github.com/depeter/movefit/internal/config"
	"github.com/depeter/movefit/internal/exercisedb"
	"github.com/depeter/movefit/internal/ui"
)

// screenFactory captures the shared dependencies for creating and wiring screens.
type screenFactory struct {
	game  *app.Game
	cfg   *config.Config
	store *cache.RedisStore

	home *ui.HomeScreen
}

func (sf *screenFactory) navigate(target string) {
	switch target {
	case ui.NavHome:
		sf.showHome()
	case ui.NavExercises:
		sf.showHome()
		sf.home.ScrollToResults()
	case ui.NavSettings:
		sf.showHome()
		sf.pushSettings()
	}
}

// showHome unwinds the stack back to the home screen, keeping its state.
func (sf *screenFactory) showHome() {
	if sf.game.Screens.Current() == ui.Screen(sf.home) {
		return
	}
	sf.game.Screens.ClearStack()
	sf.game.Screens.Replace(sf.home)
}

func (sf *screenFactory) pushHome() {
	g := sf.game
	home := ui.NewHomeScreen(g.API, g.Media, g.Resized)
	home.SearchKey = g.SearchKey()
	home.OnExerciseSelected = func(ex catalog.Exercise) {
		sf.pushDetail(ex)
	}
	sf.home = home
	g.Screens.Replace(home)
}

func (sf *screenFactory) pushDetail(ex catalog.Exercise) {
	g := sf.game
	detail := ui.NewDetailScreen(g.API, g.Media, g.Resized, ex.ID, &ex)
	detail.OnWatchDemo = g.PlayDemo
	detail.OnWatchVideos = g.PlayVideos
	detail.OnExerciseSelected = func(ex catalog.Exercise) {
		sf.pushDetail(ex)
	}
	g.Screens.Push(detail)
}

func (sf *screenFactory) pushSettings() {
	settings := ui.NewSettingsScreen(sf.cfg, func() {
		if err := sf.cfg.Save(); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	}, sf.clearCache)
	sf.game.Screens.Push(settings)
}

// clearCache empties the media cache and every cached API response.
func (sf *screenFactory) clearCache() error {
	sf.game.Media.Clear()
	if err := sf.game.Media.ClearDisk(); err != nil {
		return err
	}
	if sf.store == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	n, err := sf.store.DeletePrefix(ctx, exercisedb.KeyPrefix)
	if err != nil {
		return err
	}
	log.Printf("Cleared %d cached responses", n)
	return nil
}
