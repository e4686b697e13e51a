package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/movefit/internal/config"
)

// SettingsScreen allows editing configuration.
type SettingsScreen struct {
	cfg *config.Config

	sections     []settingsSection
	sectionIndex int
	itemIndex    int
	editing      bool
	editInput    TextInput
	editError    string
	status       string

	scroll ScrollState

	// Row rects for mouse clicks (flat list across all sections)
	rowRects []settingsRowRect
	// Paste button rect (only valid while editing)
	pasteRect ButtonRect

	OnSave       func()
	OnClearCache func() error
}

type settingsRowRect struct {
	SectionIdx int
	ItemIdx    int
	X, Y, W, H float64
}

type settingsSection struct {
	Label string
	Items []settingsItem
}

type settingsItem struct {
	Label    string
	Value    func() string
	OnChange func(val string) error // returns error if validation fails
	Options  []string               // when set, Left/Right cycles through these instead of text edit
	Secret   bool                   // value is masked unless being edited
	Action   func() string          // when set, Enter runs it and shows the returned status
}

var hwAccelOptions = []string{"auto-safe", "auto", "no", "vaapi", "vdpau", "cuda", "videotoolbox", "d3d11va", "dxva2"}
var onOffOptions = []string{"on", "off"}

// settingsMaxLen leaves room for long URLs and API keys.
const settingsMaxLen = 512

func intSetting(dst *int, min int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid number: %s", v)
		}
		if n < min {
			return fmt.Errorf("must be at least %d", min)
		}
		*dst = n
		return nil
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func NewSettingsScreen(cfg *config.Config, onSave func(), onClearCache func() error) *SettingsScreen {
	ss := &SettingsScreen{
		cfg:          cfg,
		OnSave:       onSave,
		OnClearCache: onClearCache,
	}

	ss.sections = []settingsSection{
		{
			Label: "ExerciseDB (applies on restart)",
			Items: []settingsItem{
				{Label: "Base URL", Value: func() string { return cfg.API.BaseURL }, OnChange: func(v string) error { cfg.API.BaseURL = v; return nil }},
				{Label: "Host", Value: func() string { return cfg.API.Host }, OnChange: func(v string) error { cfg.API.Host = v; return nil }},
				{Label: "API Key", Value: func() string { return cfg.API.APIKey }, OnChange: func(v string) error { cfg.API.APIKey = v; return nil }, Secret: true},
				{Label: "Fetch Limit", Value: func() string { return strconv.Itoa(cfg.API.Limit) }, OnChange: intSetting(&cfg.API.Limit, 0)},
			},
		},
		{
			Label: "Cache",
			Items: []settingsItem{
				{Label: "Redis Address", Value: func() string { return cfg.Cache.RedisAddr }, OnChange: func(v string) error { cfg.Cache.RedisAddr = v; return nil }},
				{Label: "Redis DB", Value: func() string { return strconv.Itoa(cfg.Cache.RedisDB) }, OnChange: intSetting(&cfg.Cache.RedisDB, 0)},
				{Label: "TTL (minutes)", Value: func() string { return strconv.Itoa(cfg.Cache.TTLMinutes) }, OnChange: intSetting(&cfg.Cache.TTLMinutes, 1)},
				{Label: "Clear Cache", Value: func() string { return "Enter to clear" }, Action: ss.clearCache},
			},
		},
		{
			Label: "Playback",
			Items: []settingsItem{
				{Label: "HW Accel", Value: func() string { return cfg.Playback.HWAccel }, OnChange: func(v string) error { cfg.Playback.HWAccel = v; return nil }, Options: hwAccelOptions},
				{Label: "Volume", Value: func() string { return strconv.Itoa(cfg.Playback.Volume) }, OnChange: intSetting(&cfg.Playback.Volume, 0)},
				{Label: "Loop Demo", Value: func() string { return onOff(cfg.Playback.Loop) }, OnChange: func(v string) error { cfg.Playback.Loop = v == "on"; return nil }, Options: onOffOptions},
				{Label: "Video Search", Value: func() string { return onOff(cfg.Playback.YTDL) }, OnChange: func(v string) error { cfg.Playback.YTDL = v == "on"; return nil }, Options: onOffOptions},
			},
		},
		{
			Label: "Interface",
			Items: []settingsItem{
				{Label: "Start Fullscreen", Value: func() string { return onOff(cfg.UI.Fullscreen) }, OnChange: func(v string) error { cfg.UI.Fullscreen = v == "on"; return nil }, Options: onOffOptions},
			},
		},
	}

	return ss
}

func (ss *SettingsScreen) Name() string { return "Settings" }
func (ss *SettingsScreen) OnEnter()     {}
func (ss *SettingsScreen) OnExit() {
	if ss.OnSave != nil {
		ss.OnSave()
	}
}

func (ss *SettingsScreen) clearCache() string {
	if ss.OnClearCache == nil {
		return ""
	}
	if err := ss.OnClearCache(); err != nil {
		return "Clear failed: " + err.Error()
	}
	return "Cache cleared"
}

// activate runs, cycles or starts editing the focused item.
func (ss *SettingsScreen) activate() {
	item := ss.focusedItem()
	switch {
	case item.Action != nil:
		ss.status = item.Action()
	case item.Options != nil:
		cycleOption(item, 1)
	default:
		ss.editInput = TextInput{MaxLen: settingsMaxLen}
		ss.editInput.SetText(item.Value())
		ss.editing = true
		ss.editError = ""
	}
}

// focusedItem returns the currently focused settings item.
func (ss *SettingsScreen) focusedItem() *settingsItem {
	return &ss.sections[ss.sectionIndex].Items[ss.itemIndex]
}

// cycleOption moves to the next or previous option for an Options item.
func cycleOption(item *settingsItem, delta int) {
	current := item.Value()
	idx := -1
	for i, opt := range item.Options {
		if opt == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = 0
	} else {
		idx += delta
		if idx < 0 {
			idx = len(item.Options) - 1
		} else if idx >= len(item.Options) {
			idx = 0
		}
	}
	item.OnChange(item.Options[idx])
}

func (ss *SettingsScreen) Update() (*ScreenTransition, error) {
	_, enter, back := InputState()

	if ss.editing {
		if ss.editInput.Update() {
			ss.editError = "" // clear error as user types
		}
		// Paste button click
		mx, my, clicked := MouseJustClicked()
		if clicked && PointInRect(mx, my, ss.pasteRect.X, ss.pasteRect.Y, ss.pasteRect.W, ss.pasteRect.H) {
			if clip := readClipboard(); clip != "" {
				ss.editInput.Insert(clip)
				ss.editError = ""
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			// Apply edit with validation
			item := ss.focusedItem()
			if err := item.OnChange(ss.editInput.Text); err != nil {
				ss.editError = err.Error()
			} else {
				ss.editing = false
				ss.editError = ""
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			ss.editing = false
			ss.editError = ""
		}
		return nil, nil
	}

	if back {
		return &ScreenTransition{Type: TransitionPop}, nil
	}

	ss.scroll.HandleMouseWheel()

	// Mouse click handling
	mx, my, clicked := MouseJustClicked()
	if clicked {
		for _, rect := range ss.rowRects {
			if PointInRect(mx, my, rect.X, rect.Y, rect.W, rect.H) {
				ss.sectionIndex = rect.SectionIdx
				ss.itemIndex = rect.ItemIdx
				ss.activate()
				return nil, nil
			}
		}
	}

	dir, _, _ := InputState()
	switch dir {
	case DirUp:
		ss.itemIndex--
		if ss.itemIndex < 0 {
			ss.sectionIndex--
			if ss.sectionIndex < 0 {
				ss.sectionIndex = 0
				ss.itemIndex = 0
				// Focus navbar when at the very top
				return &ScreenTransition{Type: TransitionFocusNavBar}, nil
			} else {
				ss.itemIndex = len(ss.sections[ss.sectionIndex].Items) - 1
			}
		}
	case DirDown:
		ss.itemIndex++
		if ss.itemIndex >= len(ss.sections[ss.sectionIndex].Items) {
			ss.sectionIndex++
			if ss.sectionIndex >= len(ss.sections) {
				ss.sectionIndex = len(ss.sections) - 1
				ss.itemIndex = len(ss.sections[ss.sectionIndex].Items) - 1
			} else {
				ss.itemIndex = 0
			}
		}
	case DirLeft:
		item := ss.focusedItem()
		if item.Options != nil {
			cycleOption(item, -1)
		}
	case DirRight:
		item := ss.focusedItem()
		if item.Options != nil {
			cycleOption(item, 1)
		}
	}

	if enter {
		ss.activate()
	}

	ss.ensureFocusVisible()
	return nil, nil
}

func (ss *SettingsScreen) ensureFocusVisible() {
	for _, r := range ss.rowRects {
		if r.SectionIdx == ss.sectionIndex && r.ItemIdx == ss.itemIndex {
			top := r.Y + ss.scroll.ScrollY
			ss.scroll.EnsureVisible(top-FontSizeHeading-8, top+r.H, ScreenHeight-SectionGap)
			return
		}
	}
}

func (ss *SettingsScreen) Draw(dst *ebiten.Image) {
	ss.scroll.Animate()

	top := -ss.scroll.ScrollY
	DrawText(dst, "Settings", SectionPadding, top+NavBarHeight+16, FontSizeTitle, ColorText)
	if ss.status != "" {
		DrawText(dst, ss.status, SectionPadding+200, top+NavBarHeight+24, FontSizeBody, ColorSuccess)
	}

	y := top + NavBarHeight*2 + 10
	ss.rowRects = ss.rowRects[:0] // reset

	for si, sec := range ss.sections {
		DrawText(dst, sec.Label, SectionPadding, y, FontSizeHeading, ColorPrimary)
		y += FontSizeHeading + 8

		for ii, item := range sec.Items {
			isFocused := si == ss.sectionIndex && ii == ss.itemIndex
			rowH := float32(40)
			rowX := float64(SectionPadding - 8)
			rowW := ViewWidth() - SectionPadding*2 + 16

			// Store rect for mouse clicks
			ss.rowRects = append(ss.rowRects, settingsRowRect{
				SectionIdx: si, ItemIdx: ii,
				X: rowX, Y: y - 4, W: rowW, H: float64(rowH),
			})

			if isFocused {
				vector.DrawFilledRect(dst, float32(rowX), float32(y-4),
					float32(rowW), rowH, ColorSurfaceHover, false)
			}

			labelColor := ColorTextSecondary
			if isFocused {
				labelColor = ColorText
			}
			DrawText(dst, item.Label, SectionPadding, y+4, FontSizeBody, labelColor)

			valueX := SectionPadding + 300.0
			value := item.Value()
			isEditing := ss.editing && isFocused
			if item.Secret && value != "" && !isEditing {
				value = strings.Repeat("•", 12)
			}

			if isEditing {
				value = ss.editInput.DisplayText()
				// Accent border around value field when editing
				vx := float32(valueX - 4)
				vw := float32(rowW) - float32(300) - 8
				vector.StrokeRect(dst, vx, float32(y-2), vw, float32(rowH)-4, 2, ColorFocusBorder, false)
				// Paste button at the right end of the edit field
				pasteW := 60.0
				pasteH := float64(rowH) - 8
				pasteX := float64(vx+vw) - pasteW - 4
				pasteY := y - 1
				ss.pasteRect = ButtonRect{X: pasteX, Y: pasteY, W: pasteW, H: pasteH}
				vector.DrawFilledRect(dst, float32(pasteX), float32(pasteY), float32(pasteW), float32(pasteH), ColorSurface, false)
				vector.StrokeRect(dst, float32(pasteX), float32(pasteY), float32(pasteW), float32(pasteH), 1, ColorTextMuted, false)
				DrawTextCentered(dst, "Paste", pasteX+pasteW/2, pasteY+pasteH/2, FontSizeSmall, ColorTextSecondary)
			}

			if item.Options != nil && isFocused && !isEditing {
				// Draw arrows around value for cycle-able items
				DrawText(dst, "◀", valueX-20, y+4, FontSizeBody, ColorPrimary)
				DrawText(dst, value, valueX, y+4, FontSizeBody, ColorText)
				w, _ := MeasureText(value, FontSizeBody)
				DrawText(dst, "▶", valueX+w+8, y+4, FontSizeBody, ColorPrimary)
			} else {
				valueColor := ColorTextSecondary
				if isFocused && !isEditing {
					valueColor = ColorText
				}
				DrawText(dst, value, valueX, y+4, FontSizeBody, valueColor)
			}

			// Show edit error below the row
			if isEditing && ss.editError != "" {
				DrawText(dst, ss.editError, valueX, y+float64(rowH)-4, FontSizeSmall, ColorError)
			}

			y += float64(rowH)
		}
		y += 16
	}

	ss.scroll.MaxScrollY = y + ss.scroll.ScrollY - ScreenHeight + SectionGap
	if ss.scroll.MaxScrollY < 1 {
		ss.scroll.MaxScrollY = 1
	}
}
