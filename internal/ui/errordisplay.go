package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ErrorDisplay draws an error message with "Copy" and optional "Retry" buttons.
// Store one per screen that shows errors, call Draw each frame and HandleClick in Update.
type ErrorDisplay struct {
	OnRetry func()

	copyRect    ButtonRect
	retryRect   ButtonRect
	copiedTimer int // frames remaining to show "Copied!" feedback
}

// Draw renders the error text and its buttons. Returns the total height used.
func (ed *ErrorDisplay) Draw(dst *ebiten.Image, errText string, x, y, fontSize float64) float64 {
	ed.copyRect, ed.retryRect = ButtonRect{}, ButtonRect{}
	if errText == "" {
		return 0
	}

	DrawText(dst, errText, x, y, fontSize, ColorError)

	tw, _ := MeasureText(errText, fontSize)
	btnX := x + tw + 12
	btnY := y - 2
	btnH := fontSize + 6

	ed.copyRect = ButtonRect{X: btnX, Y: btnY, W: 50, H: btnH}
	if ed.copiedTimer > 0 {
		ed.copiedTimer--
		DrawText(dst, "Copied!", btnX, y, FontSizeSmall, ColorSuccess)
	} else {
		drawSmallButton(dst, "Copy", ed.copyRect)
	}

	if ed.OnRetry != nil {
		ed.retryRect = ButtonRect{X: btnX + 60, Y: btnY, W: 56, H: btnH}
		drawSmallButton(dst, "Retry", ed.retryRect)
	}

	return fontSize + 8
}

func drawSmallButton(dst *ebiten.Image, label string, r ButtonRect) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), ColorSurface, false)
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, ColorTextMuted, false)
	DrawTextCentered(dst, label, r.X+r.W/2, r.Y+r.H/2, FontSizeSmall, ColorTextSecondary)
}

// HandleClick checks if one of the buttons was clicked. Call from Update with mouse coords.
// Returns true if the click was consumed.
func (ed *ErrorDisplay) HandleClick(mx, my int, errText string) bool {
	if errText == "" {
		return false
	}
	if ed.copyRect.Contains(mx, my) {
		writeClipboard(errText)
		ed.copiedTimer = 120 // ~2 seconds at 60fps
		return true
	}
	if ed.OnRetry != nil && ed.retryRect.Contains(mx, my) {
		ed.OnRetry()
		return true
	}
	return false
}
