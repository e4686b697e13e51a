package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawFilledRoundRect draws a filled rectangle with rounded corners built
// from two rects and four corner circles.
func DrawFilledRoundRect(dst *ebiten.Image, x, y, w, h, radius float32, clr color.Color) {
	if radius*2 > w {
		radius = w / 2
	}
	if radius*2 > h {
		radius = h / 2
	}
	vector.DrawFilledRect(dst, x+radius, y, w-radius*2, h, clr, true)
	vector.DrawFilledRect(dst, x, y+radius, w, h-radius*2, clr, true)
	vector.DrawFilledCircle(dst, x+radius, y+radius, radius, clr, true)
	vector.DrawFilledCircle(dst, x+w-radius, y+radius, radius, clr, true)
	vector.DrawFilledCircle(dst, x+radius, y+h-radius, radius, clr, true)
	vector.DrawFilledCircle(dst, x+w-radius, y+h-radius, radius, clr, true)
}

// DrawImageContain scales img to fit inside the box, centered, keeping its
// aspect ratio.
func DrawImageContain(dst, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	scale := w / iw
	if s := h / ih; s < scale {
		scale = s
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x+(w-iw*scale)/2, y+(h-ih*scale)/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// drawBadge draws a rounded label chip and returns its width.
func drawBadge(dst *ebiten.Image, label string, x, y float64, bg, fg color.Color) float64 {
	tw, _ := MeasureText(label, FontSizeSmall)
	w := tw + 24
	h := float64(FontSizeSmall + 14)
	DrawFilledRoundRect(dst, float32(x), float32(y), float32(w), float32(h), float32(h/2), bg)
	DrawTextCentered(dst, label, x+w/2, y+h/2, FontSizeSmall, fg)
	return w
}

// drawButton draws a text button in the focused or idle style and returns its rect.
func drawButton(dst *ebiten.Image, label string, x, y, h float64, focused bool) ButtonRect {
	tw, _ := MeasureText(label, FontSizeBody)
	w := tw + 40
	if focused {
		DrawFilledRoundRect(dst, float32(x), float32(y), float32(w), float32(h), 6, ColorPrimary)
		DrawTextCentered(dst, label, x+w/2, y+h/2, FontSizeBody, ColorText)
	} else {
		DrawFilledRoundRect(dst, float32(x), float32(y), float32(w), float32(h), 6, ColorSurfaceHover)
		DrawTextCentered(dst, label, x+w/2, y+h/2, FontSizeBody, ColorTextSecondary)
	}
	return ButtonRect{X: x, Y: y, W: w, H: h}
}
