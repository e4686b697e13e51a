package ui

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/movefit/internal/cache"
	"github.com/depeter/movefit/internal/catalog"
	"github.com/depeter/movefit/internal/events"
	"github.com/depeter/movefit/internal/exercisedb"
)

type homeZone int

const (
	zoneHero homeZone = iota
	zoneSearch
	zoneBodyParts
	zoneResults
	zonePager
)

// HomeScreen shows the hero banner, the search bar, the body-part carousel
// and one page of exercise results.
type HomeScreen struct {
	api     exercisedb.API
	media   mediaLoader
	resized *events.Signal[Size]

	categories []string
	category   string
	bodyParts  *Carousel

	search TextInput

	results    []catalog.Exercise
	heading    string
	pager      Pager
	grid       *FocusGrid
	cardRects  []ButtonRect
	loading    bool
	errText    string
	errDisplay ErrorDisplay
	retry      func() // repeats the request that failed

	seq catalog.Sequencer

	zone          homeZone
	scroll        ScrollState
	resultsTop    float64 // content y of the results heading
	bodyPartsTop  float64
	footerLinks   []footerLink
	heroBtnRect   ButtonRect
	searchRect    ButtonRect
	searchBtnRect ButtonRect

	started       bool
	releaseResize func()

	// SearchKey focuses the search box.
	SearchKey ebiten.Key

	OnExerciseSelected func(ex catalog.Exercise)

	mu sync.Mutex
}

func NewHomeScreen(api exercisedb.API, media *cache.MediaCache[*ebiten.Image], resized *events.Signal[Size]) *HomeScreen {
	hs := &HomeScreen{
		api:       api,
		media:     newMediaLoader(media),
		resized:   resized,
		category:  catalog.Wildcard,
		bodyParts: NewCarousel("", StylePill, nil),
		grid:      NewFocusGrid(ResultColumns, 0),
		heading:   "Showing Results",
		zone:      zoneSearch,
		SearchKey: ebiten.KeySlash,
	}
	hs.bodyParts.OnActivate = func(i int) {
		hs.browse(hs.categories[i])
		hs.scrollToResults()
	}
	hs.errDisplay.OnRetry = func() {
		if hs.retry != nil {
			hs.retry()
		}
	}
	return hs
}

func (hs *HomeScreen) Name() string { return "Home" }

func (hs *HomeScreen) OnEnter() {
	// Registered outside mu: a replayed size is delivered synchronously.
	release := hs.resized.Listen(func(Size) {
		hs.mu.Lock()
		hs.bodyParts.Resize()
		hs.mu.Unlock()
	})

	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.releaseResize = release
	if !hs.started {
		hs.started = true
		go hs.loadCategories()
		hs.browse(catalog.Wildcard)
	}
}

func (hs *HomeScreen) OnExit() {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	if hs.releaseResize != nil {
		hs.releaseResize()
		hs.releaseResize = nil
	}
}

func (hs *HomeScreen) loadCategories() {
	categories := catalog.LoadCategories(context.Background(), hs.api)

	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.categories = categories
	hs.syncBodyParts()
}

func (hs *HomeScreen) syncBodyParts() {
	items := make([]CarouselItem, len(hs.categories))
	for i, c := range hs.categories {
		items[i] = CarouselItem{ID: c, Label: c, Selected: c == hs.category}
	}
	focused := hs.bodyParts.Focused
	hs.bodyParts.Items = items
	hs.bodyParts.Focused = focused
	if focused >= len(items) {
		hs.bodyParts.Focused = 0
	}
	hs.bodyParts.Resize()
}

func (hs *HomeScreen) selectCategory(category string) {
	hs.category = category
	for i := range hs.bodyParts.Items {
		hs.bodyParts.Items[i].Selected = hs.bodyParts.Items[i].ID == category
	}
}

// browse refreshes the result set for category. Caller holds mu.
func (hs *HomeScreen) browse(category string) {
	hs.selectCategory(category)
	hs.loading = true
	ctx, ticket := hs.seq.Begin(context.Background())
	go func() {
		records, err := catalog.Browse(ctx, category, hs.api)
		hs.mu.Lock()
		defer hs.mu.Unlock()
		if !hs.seq.Commit(ticket) {
			return
		}
		heading := "Showing Results"
		if !catalog.IsWildcard(category) {
			heading = "Showing " + titleCase(category) + " Exercises"
		}
		hs.setResults(records, err, heading, func() { hs.browse(category) })
	}()
}

// submitSearch resolves the search box text. Caller holds mu.
func (hs *HomeScreen) submitSearch() {
	hs.resolve(hs.search.Text)
}

// resolve runs query through the resolver. Caller holds mu.
func (hs *HomeScreen) resolve(query string) {
	if catalog.Normalize(query) == "" {
		return
	}
	categories := hs.categories
	hs.loading = true
	ctx, ticket := hs.seq.Begin(context.Background())
	go func() {
		res := catalog.Resolve(ctx, query, categories, hs.api)
		hs.mu.Lock()
		defer hs.mu.Unlock()
		if !hs.seq.Commit(ticket) {
			return
		}
		if res.Matched {
			hs.selectCategory(res.Category)
		}
		hs.setResults(res.Results, res.Err, fmt.Sprintf("Results for %q", res.Query), func() { hs.resolve(query) })
		if res.Err == nil {
			hs.search.Clear()
			hs.scrollToResults()
		}
	}()
}

// setResults replaces the result set wholesale and returns to page 1. retry
// is kept for the error line's Retry button when err is set.
func (hs *HomeScreen) setResults(records []catalog.Exercise, err error, heading string, retry func()) {
	hs.loading = false
	hs.results = records
	hs.heading = heading
	hs.errText = ""
	hs.retry = nil
	if err != nil {
		log.Printf("Failed to load exercises: %v", err)
		hs.errText = "Could not load exercises: " + err.Error()
		hs.retry = retry
	}
	hs.setPage(1)
}

func (hs *HomeScreen) setPage(n int) {
	hs.pager.Total = catalog.PageCount(len(hs.results))
	hs.pager.Current = n
	hs.grid.Focused = 0
	hs.grid.SetTotal(len(catalog.Page(hs.results, n)))
}

func (hs *HomeScreen) changePage(n int) {
	hs.setPage(n)
	hs.scrollToResults()
}

func (hs *HomeScreen) scrollToResults() {
	hs.scroll.ScrollTo(hs.resultsTop - NavBarHeight - 20)
}

// ScrollToResults scrolls the view to the results section.
func (hs *HomeScreen) ScrollToResults() {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.zone = zoneResults
	hs.scrollToResults()
}

// FocusSearch moves keyboard focus to the search box.
func (hs *HomeScreen) FocusSearch() {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.zone = zoneSearch
	hs.scroll.ScrollTo(0)
}

// StepPage moves delta pages through the results.
func (hs *HomeScreen) StepPage(delta int) {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	if hs.pager.Step(delta) {
		hs.changePage(hs.pager.Current)
	}
}

func (hs *HomeScreen) pageRecords() []catalog.Exercise {
	return catalog.Page(hs.results, hs.pager.Current)
}

func (hs *HomeScreen) selectResult(i int) {
	page := hs.pageRecords()
	if i < len(page) && hs.OnExerciseSelected != nil {
		hs.OnExerciseSelected(page[i])
	}
}

func (hs *HomeScreen) Update() (*ScreenTransition, error) {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	hs.scroll.HandleMouseWheel()

	// The carousel sees every frame so a drag can span frames.
	if hs.bodyParts.HandleMouse() {
		hs.zone = zoneBodyParts
		return nil, nil
	}

	if mx, my, clicked := MouseJustClicked(); clicked {
		hs.handleClick(mx, my)
		return nil, nil
	}

	if hs.zone == zoneSearch {
		return hs.updateSearch()
	}

	if inpututil.IsKeyJustPressed(hs.SearchKey) {
		hs.zone = zoneSearch
		hs.scroll.ScrollTo(0)
		return nil, nil
	}

	dir, enter, _ := InputState()

	switch hs.zone {
	case zoneHero:
		switch {
		case dir == DirUp:
			return &ScreenTransition{Type: TransitionFocusNavBar}, nil
		case dir == DirDown:
			hs.zone = zoneSearch
		case enter:
			hs.zone = zoneResults
			hs.scrollToResults()
		}

	case zoneBodyParts:
		switch dir {
		case DirUp:
			hs.zone = zoneSearch
		case DirDown:
			if hs.grid.Total > 0 {
				hs.zone = zoneResults
				hs.scrollToResults()
			}
		default:
			hs.bodyParts.Update(dir, enter)
		}

	case zoneResults:
		if dir != DirNone && !hs.grid.Update(dir) {
			switch dir {
			case DirUp:
				hs.zone = zoneBodyParts
			case DirDown:
				if catalog.Paginated(len(hs.results)) {
					hs.zone = zonePager
				}
			}
		}
		if enter {
			hs.selectResult(hs.grid.Focused)
		}

	case zonePager:
		switch dir {
		case DirUp:
			hs.zone = zoneResults
		case DirLeft:
			if hs.pager.Step(-1) {
				hs.changePage(hs.pager.Current)
			}
		case DirRight:
			if hs.pager.Step(1) {
				hs.changePage(hs.pager.Current)
			}
		}
	}

	hs.ensureFocusVisible()
	return nil, nil
}

func (hs *HomeScreen) updateSearch() (*ScreenTransition, error) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		hs.zone = zoneHero
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		hs.zone = zoneBodyParts
	case hs.search.Submitted():
		hs.submitSearch()
	default:
		hs.search.Update()
	}
	return nil, nil
}

func (hs *HomeScreen) handleClick(mx, my int) {
	switch {
	case hs.heroBtnRect.Contains(mx, my):
		hs.zone = zoneResults
		hs.scrollToResults()
		return
	case hs.searchBtnRect.Contains(mx, my):
		hs.zone = zoneSearch
		hs.submitSearch()
		return
	case hs.searchRect.Contains(mx, my):
		hs.zone = zoneSearch
		return
	}

	for _, l := range hs.footerLinks {
		if l.rect.Contains(mx, my) {
			hs.followFooterLink(l.label)
			return
		}
	}
	if hs.errDisplay.HandleClick(mx, my, hs.errText) {
		return
	}
	if page, ok := hs.pager.HandleClick(mx, my); ok {
		hs.zone = zonePager
		hs.changePage(page)
		return
	}
	for i, r := range hs.cardRects {
		if r.Contains(mx, my) {
			hs.zone = zoneResults
			hs.grid.Focused = i
			hs.selectResult(i)
			return
		}
	}
	if hs.zone == zoneSearch {
		hs.zone = zoneHero
	}
}

func (hs *HomeScreen) ensureFocusVisible() {
	if hs.zone != zoneResults || hs.grid.Total == 0 {
		return
	}
	gridTop := hs.resultsTop + SectionTitleH + FontSizeSmall + 16
	top := gridTop + float64(hs.grid.FocusedRow())*GridRowHeight
	hs.scroll.EnsureVisible(top, top+GridRowHeight, ScreenHeight)
}

func (hs *HomeScreen) Draw(dst *ebiten.Image) {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	hs.scroll.Animate()
	viewW := ViewWidth()

	y := float64(NavBarHeight) - hs.scroll.ScrollY
	y = hs.drawHero(dst, y, viewW)
	y += SectionGap

	// Search
	DrawTextCentered(dst, "Awesome Exercises You", viewW/2, y+24, FontSizeHero, ColorText)
	DrawTextCentered(dst, "Should Know", viewW/2, y+84, FontSizeHero, ColorText)
	y += 140
	hs.drawSearchBar(dst, y, viewW)
	y += SearchBarH + SectionGap

	// Body parts
	hs.bodyPartsTop = y + hs.scroll.ScrollY
	hs.bodyParts.Active = hs.zone == zoneBodyParts
	if len(hs.bodyParts.Items) == 0 {
		DrawTextCentered(dst, "Loading body parts...", viewW/2, y+PillHeight/2, FontSizeBody, ColorTextSecondary)
		y += hs.bodyParts.Height()
	} else {
		y += hs.bodyParts.Draw(dst, SectionPadding, y)
	}
	y += SectionGap

	// Results
	hs.resultsTop = y + hs.scroll.ScrollY
	DrawTextBold(dst, hs.heading, SectionPadding, y, FontSizeTitle, ColorText)
	y += SectionTitleH
	DrawText(dst, fmt.Sprintf("%d exercises", len(hs.results)), SectionPadding, y, FontSizeSmall, ColorTextMuted)
	y += FontSizeSmall + 16
	if h := hs.errDisplay.Draw(dst, hs.errText, SectionPadding, y, FontSizeBody); h > 0 {
		y += h + 8
	}

	y = hs.drawResults(dst, y, viewW)

	hs.pager.Active = hs.zone == zonePager
	if catalog.Paginated(len(hs.results)) {
		y += hs.pager.Draw(dst, viewW/2, y) + SectionGap
	}

	y = hs.drawFooter(dst, y+SectionGap, viewW)

	contentH := y + hs.scroll.ScrollY
	hs.scroll.MaxScrollY = contentH - ScreenHeight
	if hs.scroll.MaxScrollY < 1 {
		hs.scroll.MaxScrollY = 1
	}
}

func (hs *HomeScreen) drawHero(dst *ebiten.Image, y, viewW float64) float64 {
	vector.DrawFilledRect(dst, 0, float32(y), float32(viewW), HeroHeight, ColorSurface, false)
	vector.DrawFilledRect(dst, float32(viewW*0.62), float32(y), float32(viewW*0.38), HeroHeight, ColorPrimaryDark, false)
	drawDumbbellIcon(dst, float32(viewW*0.81), float32(y+HeroHeight/2), 150, ColorBadge)

	x := float64(SectionPadding * 2)
	DrawTextBold(dst, "Fitness Club", x, y+60, FontSizeHeading, ColorPrimary)
	DrawTextBold(dst, "Get Moving, Get Fit", x, y+110, FontSizeHero, ColorText)
	DrawTextBold(dst, "with MoveFit!", x, y+170, FontSizeHero, ColorText)
	DrawText(dst, "Check out the most effective exercises personalized to you", x, y+250, FontSizeHeading, ColorTextSecondary)
	hs.heroBtnRect = drawButton(dst, "Explore Exercises", x, y+300, DetailButtonH, hs.zone == zoneHero)
	return y + HeroHeight
}

func (hs *HomeScreen) drawSearchBar(dst *ebiten.Image, y, viewW float64) {
	btnW := 180.0
	w := viewW * 0.6
	x := (viewW - w - btnW) / 2
	hs.searchRect = ButtonRect{X: x, Y: y, W: w, H: SearchBarH}
	hs.searchBtnRect = ButtonRect{X: x + w, Y: y, W: btnW, H: SearchBarH}

	focused := hs.zone == zoneSearch
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), SearchBarH, ColorSurface, false)
	border := ColorTextMuted
	if focused {
		border = ColorFocusBorder
	}
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), SearchBarH, 2, border, false)
	drawSearchIcon(dst, float32(x+28), float32(y+SearchBarH/2), 10, ColorTextSecondary)

	textY := y + (SearchBarH-FontSizeHeading)/2
	switch {
	case focused:
		if hs.search.Text == "" {
			DrawText(dst, "Search Exercises", x+52, textY, FontSizeHeading, ColorTextMuted)
		}
		DrawText(dst, hs.search.DisplayText(), x+52, textY, FontSizeHeading, ColorText)
	case hs.search.Text != "":
		DrawText(dst, hs.search.Text, x+52, textY, FontSizeHeading, ColorText)
	default:
		DrawText(dst, "Search Exercises", x+52, textY, FontSizeHeading, ColorTextMuted)
	}

	vector.DrawFilledRect(dst, float32(x+w), float32(y), float32(btnW), SearchBarH, ColorPrimary, false)
	DrawTextCentered(dst, "Search", x+w+btnW/2, y+SearchBarH/2, FontSizeHeading, ColorText)
}

func (hs *HomeScreen) drawResults(dst *ebiten.Image, y, viewW float64) float64 {
	hs.cardRects = hs.cardRects[:0]
	page := hs.pageRecords()

	if hs.loading && len(page) == 0 {
		DrawTextCentered(dst, "Loading...", viewW/2, y+60, FontSizeHeading, ColorTextSecondary)
		return y + 120
	}
	if len(page) == 0 {
		DrawTextCentered(dst, "No exercises found", viewW/2, y+60, FontSizeHeading, ColorTextSecondary)
		return y + 120
	}

	gridW := ResultColumns*CardWidth + (ResultColumns-1)*CardGap
	x0 := (viewW - float64(gridW)) / 2
	for i := range page {
		ex := &page[i]
		col := i % ResultColumns
		row := i / ResultColumns
		cx := x0 + float64(col)*(CardWidth+CardGap)
		cy := y + float64(row)*GridRowHeight
		hs.cardRects = append(hs.cardRects, ButtonRect{X: cx, Y: cy, W: CardWidth, H: CardHeight + CardLabelH})

		// Skip offscreen cards, but keep their rects for index alignment
		if cy+GridRowHeight < 0 || cy > ScreenHeight {
			continue
		}
		item := CarouselItem{
			ID:     ex.ID,
			Label:  ex.Name,
			Badges: []string{ex.BodyPart, ex.Target},
			Image:  hs.media.get(ex.MediaURL),
		}
		drawCard(dst, &item, cx, cy, CardWidth, CardHeight, hs.zone == zoneResults && i == hs.grid.Focused)
	}

	rows := (len(page) + ResultColumns - 1) / ResultColumns
	return y + float64(rows)*GridRowHeight
}

const footerTagline = "Your ultimate exercise companion, designed to empower your fitness journey."

var footerLinkLabels = []string{"Exercises", "Body Parts"}

type footerLink struct {
	label string
	rect  ButtonRect
}

func copyrightLine(year int) string {
	return "© " + strconv.Itoa(year) + " MoveFit. All rights reserved."
}

func (hs *HomeScreen) followFooterLink(label string) {
	switch label {
	case "Exercises":
		hs.zone = zoneResults
		hs.scrollToResults()
	case "Body Parts":
		hs.zone = zoneBodyParts
		hs.scroll.ScrollTo(hs.bodyPartsTop - NavBarHeight - 20)
	}
}

func (hs *HomeScreen) drawFooter(dst *ebiten.Image, y, viewW float64) float64 {
	vector.DrawFilledRect(dst, 0, float32(y), float32(viewW), FooterHeight, ColorPrimaryDark, false)

	x := float64(SectionPadding * 2)
	drawDumbbellIcon(dst, float32(x+18), float32(y+48), 18, ColorText)
	DrawTextBold(dst, "MoveFit", x+48, y+32, FontSizeHeading, ColorText)
	DrawText(dst, footerTagline, x, y+80, FontSizeBody, ColorText)

	lx := viewW - SectionPadding*2 - 220
	DrawTextBold(dst, "Quick Links", lx, y+32, FontSizeHeading, ColorText)
	hs.footerLinks = hs.footerLinks[:0]
	ly := y + 76
	for _, label := range footerLinkLabels {
		w, h := MeasureText(label, FontSizeBody)
		DrawText(dst, label, lx, ly, FontSizeBody, ColorText)
		hs.footerLinks = append(hs.footerLinks, footerLink{label: label, rect: ButtonRect{X: lx, Y: ly, W: w, H: h}})
		ly += h + 12
	}

	DrawTextCentered(dst, copyrightLine(time.Now().Year()), viewW/2, y+FooterHeight-24, FontSizeSmall, ColorTextSecondary)
	return y + FooterHeight
}
