package ui

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/movefit/internal/dragscroll"
)

// CarouselStyle selects how items are drawn.
type CarouselStyle int

const (
	StylePill CarouselStyle = iota // body-part selector
	StyleCard                      // exercise card
)

// CarouselItem is a single entry in a Carousel.
type CarouselItem struct {
	ID       string
	Label    string
	Badges   []string
	Image    *ebiten.Image
	Selected bool
}

// Carousel is a horizontally scrolling row that can be dragged with the
// mouse, scrolled with its arrow buttons, or navigated with the keyboard.
type Carousel struct {
	Label   string
	Items   []CarouselItem
	Focused int
	Active  bool // whether this row currently has keyboard focus
	Style   CarouselStyle

	ItemW, ItemH, Gap float64

	// OnActivate is called when an item is clicked or Enter is pressed on it.
	OnActivate func(index int)

	surface dragscroll.Surface
	drag    *dragscroll.Controller

	rowRect   ButtonRect
	leftRect  ButtonRect
	rightRect ButtonRect
}

// NewCarousel creates an empty row. clock is injected into the drag
// controller; nil means the wall clock.
func NewCarousel(label string, style CarouselStyle, clock dragscroll.Clock) *Carousel {
	c := &Carousel{
		Label: label,
		Style: style,
		drag:  dragscroll.NewController(clock),
	}
	switch style {
	case StylePill:
		c.ItemW, c.ItemH, c.Gap = PillWidth, PillHeight, PillGap
	default:
		c.ItemW, c.ItemH, c.Gap = SimilarCardWidth, SimilarCardHeight, CardGap
	}
	return c
}

// SetItems replaces the row's items and scrolls back to the start.
func (c *Carousel) SetItems(items []CarouselItem) {
	c.Items = items
	if c.Focused >= len(items) {
		c.Focused = 0
	}
	c.Resize()
	c.surface.SetOffset(0)
}

func (c *Carousel) contentWidth() float64 {
	n := float64(len(c.Items))
	if n == 0 {
		return 0
	}
	return n*c.ItemW + (n-1)*c.Gap
}

func (c *Carousel) visibleWidth() float64 {
	return ViewWidth() - SectionPadding*2
}

// Resize recomputes the scroll bounds from the current item count and view
// width. Called after item changes and window resizes.
func (c *Carousel) Resize() {
	c.surface.Resize(c.contentWidth(), c.visibleWidth())
}

// Height is the vertical space Draw uses.
func (c *Carousel) Height() float64 {
	h := c.ItemH + CardFocusPad*2
	if c.Label != "" {
		h += SectionTitleH
	}
	if c.Style == StyleCard {
		h += CardLabelH
	}
	return h
}

// VisibleRange returns the half-open index range of items currently in view.
func (c *Carousel) VisibleRange() (lo, hi int) {
	stride := c.ItemW + c.Gap
	if stride <= 0 || len(c.Items) == 0 {
		return 0, 0
	}
	lo = int(c.surface.Offset / stride)
	hi = int((c.surface.Offset+c.visibleWidth())/stride) + 1
	if lo < 0 {
		lo = 0
	}
	if hi > len(c.Items) {
		hi = len(c.Items)
	}
	return lo, hi
}

// Arrows reports which arrow buttons are visible.
func (c *Carousel) Arrows() (left, right bool) {
	return c.surface.Buttons()
}

// Update handles keyboard navigation when the row is active. It returns
// false when the direction was not consumed.
func (c *Carousel) Update(dir Direction, enter bool) bool {
	if len(c.Items) == 0 {
		return false
	}
	switch dir {
	case DirLeft:
		if c.Focused > 0 {
			c.Focused--
			c.ensureVisible()
			return true
		}
	case DirRight:
		if c.Focused < len(c.Items)-1 {
			c.Focused++
			c.ensureVisible()
			return true
		}
	}
	if enter && c.OnActivate != nil {
		c.OnActivate(c.Focused)
		return true
	}
	return false
}

func (c *Carousel) ensureVisible() {
	itemX := float64(c.Focused) * (c.ItemW + c.Gap)
	target := c.surface.Target()
	if itemX+c.ItemW-target > c.visibleWidth() {
		c.surface.ScrollTo(itemX + c.ItemW - c.visibleWidth())
	}
	if itemX < target {
		c.surface.ScrollTo(itemX)
	}
}

// HandleMouse feeds this frame's pointer state into the drag controller.
// It returns true when the row consumed the input.
func (c *Carousel) HandleMouse() bool {
	mx, my, pressed := MouseJustClicked()
	if pressed {
		switch {
		case c.leftRect.Contains(mx, my):
			c.surface.ScrollBy(dragscroll.Left)
			return true
		case c.rightRect.Contains(mx, my):
			c.surface.ScrollBy(dragscroll.Right)
			return true
		case c.rowRect.Contains(mx, my):
			c.drag.PointerDown(float64(mx), c.surface.Offset)
		default:
			return false
		}
	}

	if !c.drag.Dragging() {
		return pressed
	}

	mx, my = ebiten.CursorPosition()
	if !c.rowRect.Contains(mx, my) {
		c.drag.PointerLeave()
		return true
	}
	if off, ok := c.drag.PointerMove(float64(mx)); ok {
		c.surface.SetOffset(off)
	}
	_, _, released := MouseJustReleased()
	if released || !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		c.drag.PointerUp()
		if c.drag.SuppressClick() {
			return true
		}
		if idx, ok := c.itemAt(mx, my); ok {
			c.Focused = idx
			if c.OnActivate != nil {
				c.OnActivate(idx)
			}
		}
	}
	return true
}

// SuppressingClick reports whether a click would currently be swallowed.
func (c *Carousel) SuppressingClick() bool {
	return c.drag.SuppressClick()
}

func (c *Carousel) itemAt(mx, my int) (int, bool) {
	if !c.rowRect.Contains(mx, my) {
		return 0, false
	}
	rel := float64(mx) - c.rowRect.X + c.surface.Offset
	stride := c.ItemW + c.Gap
	idx := int(math.Floor(rel / stride))
	if idx < 0 || idx >= len(c.Items) || rel-float64(idx)*stride > c.ItemW {
		return 0, false
	}
	return idx, true
}

// Draw renders the row at (baseX, baseY) and returns the height used.
func (c *Carousel) Draw(dst *ebiten.Image, baseX, baseY float64) float64 {
	c.Resize()
	c.surface.Animate()

	y := baseY
	if c.Label != "" {
		DrawTextBold(dst, c.Label, baseX, y, FontSizeHeading, ColorText)
		y += SectionTitleH
	}

	rowH := c.Height() - (y - baseY)
	visible := c.visibleWidth()
	c.rowRect = ButtonRect{X: baseX, Y: y, W: visible, H: rowH}

	clip := image.Rect(int(baseX), int(y), int(baseX+visible), int(y+rowH)).Intersect(dst.Bounds())
	if !clip.Empty() {
		row := dst.SubImage(clip).(*ebiten.Image)
		for i := range c.Items {
			ix := baseX + float64(i)*(c.ItemW+c.Gap) - c.surface.Offset
			if ix+c.ItemW < baseX || ix > baseX+visible {
				continue
			}
			focused := c.Active && i == c.Focused
			if c.Style == StylePill {
				drawPill(row, &c.Items[i], ix, y+CardFocusPad, c.ItemW, c.ItemH, focused)
			} else {
				drawCard(row, &c.Items[i], ix, y+CardFocusPad, c.ItemW, c.ItemH, focused)
			}
		}
	}

	c.drawArrows(dst, baseX, y, visible)
	return c.Height()
}

func (c *Carousel) drawArrows(dst *ebiten.Image, x, y, visible float64) {
	left, right := c.surface.Buttons()
	cy := y + CardFocusPad + c.ItemH/2
	c.leftRect, c.rightRect = ButtonRect{}, ButtonRect{}
	if left {
		c.leftRect = ButtonRect{X: x - ArrowButtonW/2, Y: cy - ArrowButtonW/2, W: ArrowButtonW, H: ArrowButtonW}
		drawArrowButton(dst, c.leftRect, dragscroll.Left)
	}
	if right {
		c.rightRect = ButtonRect{X: x + visible - ArrowButtonW/2, Y: cy - ArrowButtonW/2, W: ArrowButtonW, H: ArrowButtonW}
		drawArrowButton(dst, c.rightRect, dragscroll.Right)
	}
}

func drawPill(dst *ebiten.Image, item *CarouselItem, x, y, w, h float64, focused bool) {
	bg := ColorSurface
	if focused {
		bg = ColorSurfaceHover
	}
	DrawFilledRoundRect(dst, float32(x), float32(y), float32(w), float32(h), 12, bg)
	if item.Selected {
		vector.DrawFilledRect(dst, float32(x+12), float32(y), float32(w-24), 4, ColorPrimary, false)
	}
	if focused {
		vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 2, ColorFocusBorder, false)
	}
	drawDumbbellIcon(dst, float32(x+w/2), float32(y+h*0.4), float32(w*0.18), ColorPrimary)
	DrawTextCentered(dst, titleCase(item.Label), x+w/2, y+h*0.75, FontSizeHeading, ColorText)
}

func drawCard(dst *ebiten.Image, item *CarouselItem, x, y, w, h float64, focused bool) {
	if focused {
		vector.DrawFilledRect(dst,
			float32(x-CardFocusPad), float32(y-CardFocusPad),
			float32(w+CardFocusPad*2), float32(h+CardFocusPad*2),
			ColorFocusBorder, false)
	}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), ColorBadge, false)
	if item.Image != nil {
		DrawImageContain(dst, item.Image, x, y, w, h)
	} else {
		DrawTextCentered(dst, "Loading…", x+w/2, y+h/2, FontSizeSmall, ColorTextMuted)
	}

	by := y + h + 8
	bx := x
	for _, b := range item.Badges {
		bx += drawBadge(dst, b, bx, by, ColorPrimary, ColorText) + 8
	}
	titleColor := ColorTextSecondary
	if focused {
		titleColor = ColorText
	}
	title := truncateText(titleCase(item.Label), w, FontSizeBody)
	DrawTextBold(dst, title, x, by+FontSizeSmall+20, FontSizeBody, titleColor)
}

func drawArrowButton(dst *ebiten.Image, r ButtonRect, dir dragscroll.Direction) {
	cx, cy := float32(r.X+r.W/2), float32(r.Y+r.H/2)
	vector.DrawFilledCircle(dst, cx, cy, float32(r.W/2), ColorOverlay, true)
	vector.StrokeCircle(dst, cx, cy, float32(r.W/2), 1.5, ColorPrimary, true)
	drawChevron(dst, cx, cy, float32(r.W/5), dir == dragscroll.Left, ColorText)
}
