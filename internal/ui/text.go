package ui

import (
	"bytes"
	"image/color"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontSource *text.GoTextFaceSource
	boldSource *text.GoTextFaceSource
	fontFaces  map[float64]*text.GoTextFace
	boldFaces  map[float64]*text.GoTextFace
)

// InitFonts loads the bundled Go fonts.
func InitFonts() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return err
	}
	fontSource = src
	boldSource = bold
	fontFaces = make(map[float64]*text.GoTextFace)
	boldFaces = make(map[float64]*text.GoTextFace)
	return nil
}

func GetFace(size float64) *text.GoTextFace {
	if face, ok := fontFaces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: fontSource, Size: size}
	fontFaces[size] = face
	return face
}

func getBoldFace(size float64) *text.GoTextFace {
	if face, ok := boldFaces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: boldSource, Size: size}
	boldFaces[size] = face
	return face
}

func drawWithFace(dst *ebiten.Image, txt string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, txt, face, op)
}

func DrawText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	drawWithFace(dst, txt, GetFace(size), x, y, clr)
}

// DrawTextBold draws with the bold face, used for headings.
func DrawTextBold(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	drawWithFace(dst, txt, getBoldFace(size), x, y, clr)
}

func DrawTextCentered(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color) {
	w, h := text.Measure(txt, GetFace(size), 0)
	DrawText(dst, txt, cx-w/2, cy-h/2, size, clr)
}

func MeasureText(txt string, size float64) (float64, float64) {
	return text.Measure(txt, GetFace(size), 0)
}

// DrawTextWrapped draws txt word-wrapped to maxWidth and returns the height used.
func DrawTextWrapped(dst *ebiten.Image, txt string, x, y, maxWidth float64, size float64, clr color.Color) float64 {
	lines := wrapLines(txt, maxWidth, size)
	lineHeight := size * 1.4
	for i, line := range lines {
		DrawText(dst, line, x, y+float64(i)*lineHeight, size, clr)
	}
	return float64(len(lines)) * lineHeight
}

// MeasureWrapped returns the height DrawTextWrapped would use.
func MeasureWrapped(txt string, maxWidth, size float64) float64 {
	return float64(len(wrapLines(txt, maxWidth, size))) * size * 1.4
}

func wrapLines(txt string, maxWidth, size float64) []string {
	words := strings.Fields(txt)
	if len(words) == 0 {
		return nil
	}
	face := GetFace(size)
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if w, _ := text.Measure(candidate, face, 0); w > maxWidth {
			lines = append(lines, line)
			line = word
		} else {
			line = candidate
		}
	}
	return append(lines, line)
}

func truncateText(s string, maxWidth float64, fontSize float64) string {
	w, _ := MeasureText(s, fontSize)
	if w <= maxWidth {
		return s
	}
	runes := []rune(s)
	for i := len(runes) - 1; i > 0; i-- {
		candidate := string(runes[:i]) + "…"
		w, _ = MeasureText(candidate, fontSize)
		if w <= maxWidth {
			return candidate
		}
	}
	return "…"
}

// titleCase capitalizes each word, matching how ExerciseDB names are shown.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
