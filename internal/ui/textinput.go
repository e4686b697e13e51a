package ui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultMaxLen caps a single-line field. Exercise queries are a few words.
const DefaultMaxLen = 120

// TextInput is a single-line editable field with a rune cursor.
type TextInput struct {
	Text   string
	Cursor int // rune position within Text

	// MaxLen limits the rune count. Zero means DefaultMaxLen.
	MaxLen int
}

func (ti *TextInput) SetText(text string) {
	ti.Text = ""
	ti.Cursor = 0
	ti.Insert(text)
}

func (ti *TextInput) Clear() {
	ti.Text = ""
	ti.Cursor = 0
}

func (ti *TextInput) maxLen() int {
	if ti.MaxLen > 0 {
		return ti.MaxLen
	}
	return DefaultMaxLen
}

// Insert adds s at the cursor. Control characters, newlines included, become
// spaces and anything past the length cap is dropped.
func (ti *TextInput) Insert(s string) bool {
	room := ti.maxLen() - utf8.RuneCountInString(ti.Text)
	if room <= 0 {
		return false
	}
	var b strings.Builder
	for _, r := range s {
		if room == 0 {
			break
		}
		if unicode.IsControl(r) {
			r = ' '
		}
		b.WriteRune(r)
		room--
	}
	if b.Len() == 0 {
		return false
	}
	before, after := ti.split()
	ti.Text = before + b.String() + after
	ti.Cursor += utf8.RuneCountInString(b.String())
	return true
}

// Backspace removes the rune before the cursor.
func (ti *TextInput) Backspace() bool {
	if ti.Cursor == 0 {
		return false
	}
	before, after := ti.split()
	_, size := utf8.DecodeLastRuneInString(before)
	ti.Text = before[:len(before)-size] + after
	ti.Cursor--
	return true
}

// Delete removes the rune under the cursor.
func (ti *TextInput) Delete() bool {
	before, after := ti.split()
	if after == "" {
		return false
	}
	_, size := utf8.DecodeRuneInString(after)
	ti.Text = before + after[size:]
	return true
}

// DeleteWord removes the word before the cursor along with trailing spaces.
func (ti *TextInput) DeleteWord() bool {
	before, after := ti.split()
	if before == "" {
		return false
	}
	cut := strings.TrimRightFunc(before, unicode.IsSpace)
	cut = strings.TrimRightFunc(cut, func(r rune) bool { return !unicode.IsSpace(r) })
	ti.Cursor -= utf8.RuneCountInString(before) - utf8.RuneCountInString(cut)
	ti.Text = cut + after
	return true
}

// Move shifts the cursor by delta runes, clamped to the text.
func (ti *TextInput) Move(delta int) {
	ti.Cursor += delta
	if n := utf8.RuneCountInString(ti.Text); ti.Cursor > n {
		ti.Cursor = n
	}
	if ti.Cursor < 0 {
		ti.Cursor = 0
	}
}

// Update applies this frame's keyboard input and reports whether the text
// changed. Ctrl+V pastes, Ctrl+Backspace deletes a word.
func (ti *TextInput) Update() bool {
	changed := false

	if inputRepeating(ebiten.KeyArrowLeft) {
		ti.Move(-1)
	}
	if inputRepeating(ebiten.KeyArrowRight) {
		ti.Move(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		ti.Cursor = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		ti.Move(utf8.RuneCountInString(ti.Text))
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		if clip := readClipboard(); clip != "" {
			changed = ti.Insert(clip) || changed
		}
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		if !unicode.IsControl(r) {
			changed = ti.Insert(string(r)) || changed
		}
	}

	if inputRepeating(ebiten.KeyBackspace) {
		if ctrl {
			changed = ti.DeleteWord() || changed
		} else {
			changed = ti.Backspace() || changed
		}
	}
	if inputRepeating(ebiten.KeyDelete) {
		changed = ti.Delete() || changed
	}

	return changed
}

// DisplayText is the text with a bar drawn at the cursor.
func (ti *TextInput) DisplayText() string {
	before, after := ti.split()
	return before + "│" + after
}

func (ti *TextInput) split() (before, after string) {
	pos := 0
	for i := 0; i < ti.Cursor && pos < len(ti.Text); i++ {
		_, size := utf8.DecodeRuneInString(ti.Text[pos:])
		pos += size
	}
	return ti.Text[:pos], ti.Text[pos:]
}

// Submitted reports whether Enter was pressed this frame.
func (ti *TextInput) Submitted() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) && !IsModifierPressed()
}
