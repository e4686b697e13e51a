package icon

import (
	"image"
	"image/color"
	"math"
)

// Theme colors from the app
var (
	movefitRed = color.RGBA{R: 0xFF, G: 0x26, B: 0x25, A: 0xFF}
	plateDark  = color.RGBA{R: 0xC4, G: 0x1A, B: 0x19, A: 0xFF}
	darkBG     = color.RGBA{R: 0x12, G: 0x11, B: 0x13, A: 0xFF}
	glowCol    = color.RGBA{R: 0xFF, G: 0x26, B: 0x25, A: 0x40}
	shine      = color.RGBA{R: 0xFF, G: 0xF2, B: 0xDB, A: 0x90}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, darkBG)
	fillCircle(img, s*0.5, s*0.5, s*0.42, glowCol)
	drawDumbbell(img, s)

	return img
}

// drawDumbbell draws a dumbbell tilted slightly upward to the right.
func drawDumbbell(img *image.RGBA, s float64) {
	const tilt = -0.35 // radians
	cx, cy := s*0.5, s*0.5
	sin, cos := math.Sin(tilt), math.Cos(tilt)

	// Handle: a run of small circles along the tilted axis
	handleR := s * 0.045
	for t := -0.26; t <= 0.26; t += 0.01 {
		fillCircle(img, cx+t*s*cos, cy+t*s*sin, handleR, movefitRed)
	}

	// Plates: inner large, outer small on each side
	for _, side := range []float64{-1, 1} {
		for _, p := range []struct {
			off, r float64
			c      color.Color
		}{
			{0.22, 0.16, movefitRed},
			{0.32, 0.11, plateDark},
		} {
			d := side * p.off * s
			fillRoundedRect(img, cx+d*cos-s*0.05, cy+d*sin-p.r*s, s*0.10, p.r*2*s, s*0.03, p.c)
		}
	}

	// Highlight along the handle
	fillCircle(img, cx-s*0.06, cy+s*0.02-handleR*0.4, handleR*0.4, shine)
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	x0 := int(xf)
	y0 := int(yf)
	x1 := int(xf + wf)
	y1 := int(yf + hf)
	r := rf
	bounds := img.Bounds()

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			// Check if inside rounded rect
			fx := float64(x)
			fy := float64(y)
			inside := true

			// Check corners
			if fx < xf+r && fy < yf+r {
				// Top-left corner
				dx := xf + r - fx
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy < yf+r {
				// Top-right corner
				dx := fx - (xf + wf - r)
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx < xf+r && fy > yf+hf-r {
				// Bottom-left corner
				dx := xf + r - fx
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy > yf+hf-r {
				// Bottom-right corner
				dx := fx - (xf + wf - r)
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			}

			if inside {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	x0 := int(cx - r)
	y0 := int(cy - r)
	x1 := int(cx + r + 1)
	y1 := int(cy + r + 1)
	r2 := r * r

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	// Existing pixel
	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	// Alpha blend
	alpha := a0
	invAlpha := 0xFFFF - alpha
	nr := (r0*alpha + er*invAlpha) / 0xFFFF
	ng := (g0*alpha + eg*invAlpha) / 0xFFFF
	nb := (b0*alpha + eb*invAlpha) / 0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
