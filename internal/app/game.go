package app

import (
	"log"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/movefit/internal/cache"
	"github.com/depeter/movefit/internal/catalog"
	"github.com/depeter/movefit/internal/config"
	"github.com/depeter/movefit/internal/events"
	"github.com/depeter/movefit/internal/exercisedb"
	"github.com/depeter/movefit/internal/player"
	"github.com/depeter/movefit/internal/ui"
)

// AppState is the top-level mode: browsing screens or embedded playback.
type AppState int

const (
	StateBrowse AppState = iota
	StatePlay
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	API     exercisedb.API
	Player  *player.Player
	Media   *cache.MediaCache[*ebiten.Image]
	Screens *ui.ScreenManager

	// Resized fires whenever the window size changes. Screens listen while
	// they are active.
	Resized *events.Signal[ui.Size]

	State AppState

	window ui.Size
	keys   player.Keys

	// Set by the mpv event goroutine when playback ends
	playbackEnded atomic.Bool
}

// NewGame creates the Game with all dependencies.
func NewGame(cfg *config.Config, api exercisedb.API, media *cache.MediaCache[*ebiten.Image]) *Game {
	kb := cfg.Keybinds
	return &Game{
		Config:  cfg,
		API:     api,
		Media:   media,
		Screens: ui.NewScreenManager(),
		Resized: events.NewSignal[ui.Size](true),
		State:   StateBrowse,
		keys: player.Keys{
			PlayPause:  keyOr(kb.PlayPause, player.DefaultKeys.PlayPause),
			Stop:       keyOr(kb.Stop, player.DefaultKeys.Stop),
			Fullscreen: keyOr(kb.Fullscreen, player.DefaultKeys.Fullscreen),
		},
	}
}

// SearchKey is the configured key that focuses the search box.
func (g *Game) SearchKey() ebiten.Key {
	return keyOr(g.Config.Keybinds.Search, ebiten.KeySlash)
}

// InitPlayer creates the mpv player instance. Call after the window is visible.
func (g *Game) InitPlayer() error {
	p, err := player.New(g.Config.Playback)
	if err != nil {
		return err
	}
	p.OnPlaybackEnd = func() {
		g.playbackEnded.Store(true)
	}
	g.Player = p
	return nil
}

// PlayDemo plays the exercise's demonstration media inside the window.
func (g *Game) PlayDemo(ex catalog.Exercise) {
	g.startPlayback(func(p *player.Player) error {
		return p.PlayDemo(ex.MediaURL, ex.Name)
	})
}

// PlayVideos plays the top video search result for the exercise.
func (g *Game) PlayVideos(ex catalog.Exercise) {
	g.startPlayback(func(p *player.Player) error {
		return p.PlayVideos(ex.VideoQuery(), ex.Name)
	})
}

func (g *Game) startPlayback(play func(*player.Player) error) {
	if g.Player == nil {
		if err := g.InitPlayer(); err != nil {
			log.Printf("Failed to init player: %v", err)
			return
		}
	}

	wid, err := player.GetWindowHandle()
	if err != nil {
		log.Printf("Failed to get window handle: %v", err)
		return
	}
	if err := g.Player.SetWindowID(wid); err != nil {
		log.Printf("Failed to set window ID: %v", err)
	}

	if err := play(g.Player); err != nil {
		log.Printf("Failed to start playback: %v", err)
		return
	}

	g.playbackEnded.Store(false)
	g.State = StatePlay
}

// StopPlayback transitions back to browse mode.
func (g *Game) StopPlayback() {
	if g.Player != nil && g.Player.Playing() {
		if err := g.Player.Stop(); err != nil {
			log.Printf("Failed to stop playback: %v", err)
		}
	}
	g.State = StateBrowse
}

// Close releases the player.
func (g *Game) Close() {
	if g.Player != nil {
		g.Player.Destroy()
		g.Player = nil
	}
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen (works in all modes)
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	switch g.State {
	case StateBrowse:
		if home, ok := g.Screens.Current().(*ui.HomeScreen); ok {
			if keyJustPressed(g.Config.Keybinds.NextPage) {
				home.StepPage(1)
			}
			if keyJustPressed(g.Config.Keybinds.PrevPage) {
				home.StepPage(-1)
			}
		}
		if err := g.Screens.Update(); err != nil {
			return err
		}

	case StatePlay:
		if g.playbackEnded.Swap(false) {
			g.State = StateBrowse
			break
		}
		g.handlePlaybackInput()
	}

	ui.UpdateInputState()
	return nil
}

// handlePlaybackInput forwards keys to mpv. Embedded mpv does not receive
// keyboard input directly on every platform.
func (g *Game) handlePlaybackInput() {
	if g.Player == nil {
		g.State = StateBrowse
		return
	}

	switch action := player.PollInput(g.keys); action {
	case player.ActionStop:
		g.StopPlayback()
		return
	case player.ActionFullscreen:
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	default:
		player.HandleAction(g.Player, action)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.Player.TogglePause()
	}
	if _, wy := ebiten.Wheel(); wy > 0 {
		g.Player.AddVolume(5)
	} else if wy < 0 {
		g.Player.AddVolume(-5)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.State {
	case StateBrowse:
		screen.Fill(ui.ColorBackground)
		g.Screens.Draw(screen)

	case StatePlay:
		// mpv owns the window surface via --wid
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := ui.Size{W: outsideWidth, H: outsideHeight}
	w, h := ui.SetViewSize(size)
	if size != g.window {
		g.window = size
		g.Resized.Notify(size)
	}
	return w, h
}
