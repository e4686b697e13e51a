package ui

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const pagerBtnW = 44.0

// Pager is a page selector: previous/next chevrons around numbered buttons.
// Pages are 1-based.
type Pager struct {
	Current int
	Total   int
	Active  bool

	rects    []pagerRect
	prevRect ButtonRect
	nextRect ButtonRect
}

type pagerRect struct {
	page int
	rect ButtonRect
}

// pageWindow lists the page numbers to show, with 0 marking an ellipsis.
// The first and last pages and the neighbours of current are always shown.
func pageWindow(current, total int) []int {
	if total <= 7 {
		pages := make([]int, total)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}
	pages := []int{1}
	lo, hi := current-1, current+1
	if lo <= 2 {
		lo, hi = 2, 4
	}
	if hi >= total-1 {
		lo, hi = total-3, total-1
	}
	if lo > 2 {
		pages = append(pages, 0)
	}
	for p := lo; p <= hi; p++ {
		pages = append(pages, p)
	}
	if hi < total-1 {
		pages = append(pages, 0)
	}
	return append(pages, total)
}

// Step moves by delta pages and reports whether the page changed.
func (p *Pager) Step(delta int) bool {
	next := p.Current + delta
	if next < 1 || next > p.Total || next == p.Current {
		return false
	}
	p.Current = next
	return true
}

// HandleClick returns the page hit by (mx, my), if any.
func (p *Pager) HandleClick(mx, my int) (int, bool) {
	if p.prevRect.Contains(mx, my) && p.Current > 1 {
		return p.Current - 1, true
	}
	if p.nextRect.Contains(mx, my) && p.Current < p.Total {
		return p.Current + 1, true
	}
	for _, r := range p.rects {
		if r.rect.Contains(mx, my) {
			return r.page, true
		}
	}
	return 0, false
}

// Draw renders the pager horizontally centered on cx.
func (p *Pager) Draw(dst *ebiten.Image, cx, y float64) float64 {
	p.rects = p.rects[:0]
	p.prevRect, p.nextRect = ButtonRect{}, ButtonRect{}
	if p.Total <= 1 {
		return 0
	}

	pages := pageWindow(p.Current, p.Total)
	w := float64(len(pages)+2) * (pagerBtnW + 8)
	x := cx - w/2

	p.prevRect = ButtonRect{X: x, Y: y, W: pagerBtnW, H: pagerBtnW}
	drawPagerChevron(dst, p.prevRect, true, p.Current > 1)
	x += pagerBtnW + 8

	for _, page := range pages {
		r := ButtonRect{X: x, Y: y, W: pagerBtnW, H: pagerBtnW}
		x += pagerBtnW + 8
		if page == 0 {
			DrawTextCentered(dst, "…", r.X+r.W/2, r.Y+r.H/2, FontSizeBody, ColorTextMuted)
			continue
		}
		p.rects = append(p.rects, pagerRect{page: page, rect: r})

		label := strconv.Itoa(page)
		switch {
		case page == p.Current:
			DrawFilledRoundRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(r.W/2), ColorPrimary)
			DrawTextCentered(dst, label, r.X+r.W/2, r.Y+r.H/2, FontSizeBody, ColorText)
			if p.Active {
				vector.StrokeCircle(dst, float32(r.X+r.W/2), float32(r.Y+r.H/2), float32(r.W/2+4), 2, ColorFocusBorder, true)
			}
		default:
			DrawTextCentered(dst, label, r.X+r.W/2, r.Y+r.H/2, FontSizeBody, ColorTextSecondary)
		}
	}

	p.nextRect = ButtonRect{X: x, Y: y, W: pagerBtnW, H: pagerBtnW}
	drawPagerChevron(dst, p.nextRect, false, p.Current < p.Total)
	return PagerHeight
}

func drawPagerChevron(dst *ebiten.Image, r ButtonRect, left, enabled bool) {
	clr := ColorTextMuted
	if enabled {
		clr = ColorText
	}
	drawChevron(dst, float32(r.X+r.W/2), float32(r.Y+r.H/2), 8, left, clr)
}
