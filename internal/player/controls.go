package player

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyAction is a playback action triggered by a key.
type KeyAction int

const (
	ActionNone KeyAction = iota
	ActionPlayPause
	ActionSeekForward
	ActionSeekBackward
	ActionVolumeUp
	ActionVolumeDown
	ActionMute
	ActionFullscreen
	ActionStop
)

// Keys are the bindings PollInput checks. The app fills them from config.
type Keys struct {
	PlayPause  ebiten.Key
	Stop       ebiten.Key
	Fullscreen ebiten.Key
}

// DefaultKeys mirror the default config.
var DefaultKeys = Keys{
	PlayPause:  ebiten.KeySpace,
	Stop:       ebiten.KeyQ,
	Fullscreen: ebiten.KeyF,
}

// PollInput returns the action for this frame's key presses.
func PollInput(k Keys) KeyAction {
	pressed := inpututil.IsKeyJustPressed
	switch {
	case pressed(k.PlayPause):
		return ActionPlayPause
	case pressed(ebiten.KeyArrowRight):
		return ActionSeekForward
	case pressed(ebiten.KeyArrowLeft):
		return ActionSeekBackward
	case pressed(ebiten.KeyEqual), pressed(ebiten.KeyNumpadAdd):
		return ActionVolumeUp
	case pressed(ebiten.KeyMinus), pressed(ebiten.KeyNumpadSubtract):
		return ActionVolumeDown
	case pressed(ebiten.KeyM):
		return ActionMute
	case pressed(k.Fullscreen):
		return ActionFullscreen
	case pressed(k.Stop), pressed(ebiten.KeyEscape), pressed(ebiten.KeyBackspace):
		return ActionStop
	}
	return ActionNone
}

// HandleAction executes a playback action. Fullscreen and Stop are left to
// the caller, which owns the window and the browse/play state.
func HandleAction(p *Player, action KeyAction) {
	switch action {
	case ActionPlayPause:
		p.TogglePause()
	case ActionSeekForward:
		p.Seek(5)
	case ActionSeekBackward:
		p.Seek(-5)
	case ActionVolumeUp:
		p.AddVolume(5)
	case ActionVolumeDown:
		p.AddVolume(-5)
	case ActionMute:
		p.ToggleMute()
	}
}
