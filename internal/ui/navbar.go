package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// NavBarAction represents the result of a navbar Update cycle.
type NavBarAction int

const (
	NavBarActionNone    NavBarAction = iota
	NavBarActionDefocus              // return focus to screen below
)

// Navigation targets passed to NavBar.OnNavigate.
const (
	NavHome      = "home"
	NavExercises = "exercises"
	NavSettings  = "settings"
)

type navButton struct {
	label  string
	target string
	screen string // screen name that marks the button active
	icon   func(*ebiten.Image, float32, float32, float32, color.Color)
}

var navButtons = []navButton{
	{"Home", NavHome, "Home", drawHomeIcon},
	{"Exercises", NavExercises, "", drawSearchIcon},
	{"Settings", NavSettings, "Settings", drawGearIcon},
}

const (
	navBtnW   = 140.0
	navBtnH   = 38.0
	navBtnY   = 12.0
	navBtnGap = 10.0
)

// NavBar is a persistent navigation bar drawn at the top of every screen.
type NavBar struct {
	Active   bool
	btnIndex int

	ActiveScreenName string // for visual highlight of current section

	OnNavigate func(target string)
}

// NewNavBar creates a new NavBar.
func NewNavBar() *NavBar {
	return &NavBar{}
}

// FocusFromBelow activates keyboard focus on the navbar (called when screen hands focus up).
func (nb *NavBar) FocusFromBelow() {
	nb.Active = true
	nb.btnIndex = 0
	for i, b := range navButtons {
		if b.screen != "" && b.screen == nb.ActiveScreenName {
			nb.btnIndex = i
		}
	}
}

// Update processes keyboard input when the navbar is active. Returns an action.
func (nb *NavBar) Update() NavBarAction {
	if !nb.Active {
		return NavBarActionNone
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		nb.Active = false
		return NavBarActionDefocus
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		nb.navigate(navButtons[nb.btnIndex].target)
		nb.Active = false
		return NavBarActionDefocus
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) && nb.btnIndex < len(navButtons)-1 {
		nb.btnIndex++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) && nb.btnIndex > 0 {
		nb.btnIndex--
	}
	return NavBarActionNone
}

func (nb *NavBar) navigate(target string) {
	if nb.OnNavigate != nil {
		nb.OnNavigate(target)
	}
}

func navButtonX(i int) float64 {
	right := ViewWidth() - SectionPadding
	n := len(navButtons)
	return right - float64(n-i)*navBtnW - float64(n-i-1)*navBtnGap
}

// HandleClick checks if (mx, my) hits a navbar element and triggers navigation. Returns true if consumed.
func (nb *NavBar) HandleClick(mx, my int) bool {
	if float64(my) >= NavBarHeight {
		return false
	}

	// Logo → home
	if PointInRect(mx, my, SectionPadding, 8, 200, 44) {
		nb.navigate(NavHome)
		return true
	}

	for i, b := range navButtons {
		if PointInRect(mx, my, navButtonX(i), navBtnY, navBtnW, navBtnH) {
			nb.navigate(b.target)
			return true
		}
	}
	return false
}

// Draw renders the navbar overlay.
func (nb *NavBar) Draw(dst *ebiten.Image) {
	w := float32(ViewWidth())
	vector.DrawFilledRect(dst, 0, 0, w, float32(NavBarHeight), ColorBackground, false)
	vector.DrawFilledRect(dst, 0, float32(NavBarHeight-1), w, 1, ColorSurfaceHover, false)

	drawDumbbellIcon(dst, float32(SectionPadding+18), float32(NavBarHeight/2), 18, ColorPrimary)
	DrawTextBold(dst, "Move", SectionPadding+46, 14, FontSizeTitle, ColorText)
	mw, _ := MeasureText("Move", FontSizeTitle)
	DrawTextBold(dst, "Fit", SectionPadding+46+mw+2, 14, FontSizeTitle, ColorPrimary)

	for i, b := range navButtons {
		focused := nb.Active && i == nb.btnIndex
		active := b.screen != "" && b.screen == nb.ActiveScreenName
		drawNavButton(dst, b.label, float32(navButtonX(i)), navBtnY, navBtnW, navBtnH, focused, active, b.icon)
	}
}
