package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawDumbbellIcon draws a horizontal dumbbell centered at (cx, cy). r is half its length.
func drawDumbbellIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	bar := r * 0.12
	vector.DrawFilledRect(dst, cx-r*0.7, cy-bar, r*1.4, bar*2, clr, true)
	plateW := r * 0.22
	for _, side := range []float32{-1, 1} {
		px := cx + side*r*0.7
		vector.DrawFilledRect(dst, px-plateW/2, cy-r*0.45, plateW, r*0.9, clr, true)
		vector.DrawFilledRect(dst, px+side*plateW*0.9-plateW/4, cy-r*0.3, plateW/2, r*0.6, clr, true)
	}
}

// drawGearIcon draws a gear/settings icon at (cx, cy) with given radius.
func drawGearIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.DrawFilledCircle(dst, cx, cy, r*0.35, clr, false)
	teeth := 8
	for i := 0; i < teeth; i++ {
		angle := float64(i) * 2 * math.Pi / float64(teeth)
		tx := cx + r*0.75*float32(math.Cos(angle))
		ty := cy + r*0.75*float32(math.Sin(angle))
		vector.DrawFilledCircle(dst, tx, ty, r*0.25, clr, false)
	}
	vector.StrokeCircle(dst, cx, cy, r*0.55, 1.5, clr, false)
}

// drawSearchIcon draws a magnifying glass icon at (cx, cy) with given radius.
func drawSearchIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	// Lens is offset up-left so the handle extends down-right
	lensR := r * 0.6
	lensCX := cx - r*0.15
	lensCY := cy - r*0.15
	vector.StrokeCircle(dst, lensCX, lensCY, lensR, 1.8, clr, false)
	hx := lensCX + lensR*0.7
	hy := lensCY + lensR*0.7
	vector.StrokeLine(dst, hx, hy, hx+r*0.45, hy+r*0.45, 2, clr, false)
}

// drawHomeIcon draws a small house outline.
func drawHomeIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeLine(dst, cx-r, cy, cx, cy-r, 1.8, clr, false)
	vector.StrokeLine(dst, cx, cy-r, cx+r, cy, 1.8, clr, false)
	vector.StrokeRect(dst, cx-r*0.7, cy, r*1.4, r*0.9, 1.8, clr, false)
}

// drawChevron draws a "<" or ">" centered at (cx, cy).
func drawChevron(dst *ebiten.Image, cx, cy, r float32, left bool, clr color.Color) {
	tip, tail := cx+r*0.5, cx-r*0.5
	if left {
		tip, tail = tail, tip
	}
	vector.StrokeLine(dst, tail, cy-r, tip, cy, 3, clr, true)
	vector.StrokeLine(dst, tip, cy, tail, cy+r, 3, clr, true)
}

// drawNavButton draws a styled nav bar button.
func drawNavButton(dst *ebiten.Image, label string, x, y, w, h float32, focused, active bool, iconFn func(*ebiten.Image, float32, float32, float32, color.Color)) {
	switch {
	case focused:
		vector.DrawFilledRect(dst, x, y, w, h, ColorPrimary, false)
		DrawTextCentered(dst, label, float64(x+w/2+8), float64(y+h/2), FontSizeBody, ColorText)
		if iconFn != nil {
			iconFn(dst, x+16, y+h/2, 7, ColorText)
		}
	case active:
		vector.DrawFilledRect(dst, x, y, w, h, ColorSurfaceHover, false)
		vector.StrokeRect(dst, x, y, w, h, 2, ColorPrimary, false)
		DrawTextCentered(dst, label, float64(x+w/2+8), float64(y+h/2), FontSizeBody, ColorText)
		if iconFn != nil {
			iconFn(dst, x+16, y+h/2, 7, ColorPrimary)
		}
	default:
		vector.DrawFilledRect(dst, x, y, w, h, ColorSurfaceHover, false)
		vector.StrokeRect(dst, x, y, w, h, 1, ColorTextMuted, false)
		DrawTextCentered(dst, label, float64(x+w/2+8), float64(y+h/2), FontSizeBody, ColorTextSecondary)
		if iconFn != nil {
			iconFn(dst, x+16, y+h/2, 7, ColorTextSecondary)
		}
	}
}
