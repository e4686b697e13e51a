package ui

import "image/color"

// Colors: dark theme with the MoveFit red accent
var (
	ColorBackground    = color.RGBA{R: 0x12, G: 0x11, B: 0x13, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1E, G: 0x1C, B: 0x20, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0x2A, G: 0x27, B: 0x2C, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0xFF, G: 0x26, B: 0x25, A: 0xFF} // MoveFit red
	ColorPrimaryDark   = color.RGBA{R: 0xC4, G: 0x1A, B: 0x19, A: 0xFF}
	ColorAccent        = color.RGBA{R: 0xFF, G: 0xB8, B: 0x4C, A: 0xFF}
	ColorBadge         = color.RGBA{R: 0xFF, G: 0xF2, B: 0xDB, A: 0xFF}
	ColorText          = color.RGBA{R: 0xEC, G: 0xEA, B: 0xEE, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x9C, G: 0x98, B: 0xA2, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x66, G: 0x62, B: 0x6C, A: 0xFF}
	ColorFocusBorder   = color.RGBA{R: 0xFF, G: 0x26, B: 0x25, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorError         = color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}
	ColorSuccess       = color.RGBA{R: 0x40, G: 0xC0, B: 0x60, A: 0xFF}
)

// Layout constants
const (
	CardWidth     = 300
	CardHeight    = 300
	CardLabelH    = 64
	CardGap       = 32
	CardFocusPad  = 6
	ResultColumns = 3

	PillWidth  = 220
	PillHeight = 220
	PillGap    = 24

	SimilarCardWidth  = 240
	SimilarCardHeight = 240

	HeroHeight     = 420
	FooterHeight   = 200
	SearchBarH     = 64
	PagerHeight    = 56
	ArrowButtonW   = 48
	DetailMediaW   = 520
	DetailMediaH   = 520
	DetailButtonH  = 48
	SectionPadding = 60
	SectionGap     = 40
	SectionTitleH  = 44

	NavBarHeight  = 60
	NavBarPadding = 20

	FontSizeHero    = 48
	FontSizeTitle   = 28
	FontSizeHeading = 22
	FontSizeBody    = 16
	FontSizeSmall   = 13
	FontSizeCaption = 11

	ScrollAnimSpeed = 0.12

	// ScreenHeight is the logical height. The logical width follows the
	// window's aspect ratio, see SetViewSize.
	ScreenWidth  = 1920
	ScreenHeight = 1080

	// GridRowHeight is one row of result cards including its label and gap.
	GridRowHeight = CardHeight + CardLabelH + CardGap

	// ScrollWheelSpeed is pixels per mouse wheel scroll unit.
	ScrollWheelSpeed = 60
)
