package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/sync/errgroup"

	"github.com/depeter/movefit/internal/cache"
	"github.com/depeter/movefit/internal/catalog"
	"github.com/depeter/movefit/internal/events"
	"github.com/depeter/movefit/internal/exercisedb"
)

const similarLimit = 20

var detailButtons = []string{"Watch Demo", "Watch Videos", "Back"}

type detailZone int

const (
	detailZoneButtons detailZone = iota
	detailZoneTarget
	detailZoneEquipment
)

// DetailScreen shows one exercise with its instructions, playback buttons
// and two carousels of similar exercises.
type DetailScreen struct {
	api     exercisedb.API
	media   mediaLoader
	resized *events.Signal[Size]

	id       string
	exercise *catalog.Exercise
	loadErr  string

	byTarget    *Carousel
	byEquipment *Carousel
	target      []catalog.Exercise
	equipment   []catalog.Exercise
	similarDone bool
	loaded      bool // record and similar lists are in; no reload on re-entry

	zone        detailZone
	buttonIndex int
	buttonRects []ButtonRect
	errDisplay  ErrorDisplay
	scroll      ScrollState

	cancel        context.CancelFunc
	releaseResize func()

	OnWatchDemo        func(ex catalog.Exercise)
	OnWatchVideos      func(ex catalog.Exercise)
	OnExerciseSelected func(ex catalog.Exercise)

	mu sync.Mutex
}

// NewDetailScreen creates the detail screen for the exercise with id.
// preview, when non-nil, is drawn until the full record arrives.
func NewDetailScreen(api exercisedb.API, media *cache.MediaCache[*ebiten.Image], resized *events.Signal[Size], id string, preview *catalog.Exercise) *DetailScreen {
	ds := &DetailScreen{
		api:         api,
		media:       newMediaLoader(media),
		resized:     resized,
		id:          id,
		exercise:    preview,
		byTarget:    NewCarousel("Similar Target Muscle Exercises", StyleCard, nil),
		byEquipment: NewCarousel("Similar Equipment Exercises", StyleCard, nil),
	}
	ds.byTarget.OnActivate = func(i int) { ds.selectSimilar(ds.target, i) }
	ds.byEquipment.OnActivate = func(i int) { ds.selectSimilar(ds.equipment, i) }
	ds.errDisplay.OnRetry = func() { ds.startLoad() }
	return ds
}

func (ds *DetailScreen) Name() string {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if ds.exercise != nil {
		return "Detail: " + ds.exercise.Name
	}
	return "Detail"
}

func (ds *DetailScreen) OnEnter() {
	release := ds.resized.Listen(func(Size) {
		ds.mu.Lock()
		ds.byTarget.Resize()
		ds.byEquipment.Resize()
		ds.mu.Unlock()
	})

	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.releaseResize = release
	if !ds.loaded {
		ds.startLoad()
	}
}

func (ds *DetailScreen) OnExit() {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if ds.releaseResize != nil {
		ds.releaseResize()
		ds.releaseResize = nil
	}
	// An unfinished load restarts on the next OnEnter.
	if ds.cancel != nil {
		ds.cancel()
		ds.cancel = nil
	}
}

// startLoad fetches the record, then both similar lists in parallel. Caller holds mu.
func (ds *DetailScreen) startLoad() {
	if ds.cancel != nil {
		ds.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	ds.cancel = cancel
	ds.loadErr = ""
	ds.similarDone = false
	go ds.load(ctx)
}

func (ds *DetailScreen) load(ctx context.Context) {
	ex, err := ds.api.Exercise(ctx, ds.id)

	ds.mu.Lock()
	if ctx.Err() != nil {
		ds.mu.Unlock()
		return
	}
	if err != nil {
		log.Printf("Failed to load exercise %s: %v", ds.id, err)
		ds.loadErr = "Could not load exercise: " + err.Error()
		ds.similarDone = true
		ds.mu.Unlock()
		return
	}
	ds.exercise = ex
	ds.mu.Unlock()

	var (
		g         errgroup.Group
		target    []catalog.Exercise
		equipment []catalog.Exercise
	)
	g.Go(func() error {
		records, err := ds.api.ExercisesByTarget(ctx, ex.Target)
		if err != nil {
			return fmt.Errorf("target %q: %w", ex.Target, err)
		}
		target = catalog.Similar(records, ex.ID, similarLimit)
		return nil
	})
	g.Go(func() error {
		records, err := ds.api.ExercisesByEquipment(ctx, ex.Equipment)
		if err != nil {
			return fmt.Errorf("equipment %q: %w", ex.Equipment, err)
		}
		equipment = catalog.Similar(records, ex.ID, similarLimit)
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Printf("Failed to load similar exercises: %v", err)
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	ds.target = target
	ds.equipment = equipment
	ds.similarDone = true
	ds.byTarget.SetItems(similarItems(target))
	ds.byEquipment.SetItems(similarItems(equipment))
	ds.loaded = true
	ds.cancel()
	ds.cancel = nil
}

func similarItems(records []catalog.Exercise) []CarouselItem {
	items := make([]CarouselItem, len(records))
	for i, r := range records {
		items[i] = CarouselItem{ID: r.ID, Label: r.Name, Badges: []string{r.Target}}
	}
	return items
}

func (ds *DetailScreen) selectSimilar(records []catalog.Exercise, i int) {
	if i < len(records) && ds.OnExerciseSelected != nil {
		ds.OnExerciseSelected(records[i])
	}
}

func (ds *DetailScreen) Update() (*ScreenTransition, error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	ds.scroll.HandleMouseWheel()

	if ds.byTarget.HandleMouse() {
		ds.zone = detailZoneTarget
		return nil, nil
	}
	if ds.byEquipment.HandleMouse() {
		ds.zone = detailZoneEquipment
		return nil, nil
	}

	dir, enter, back := InputState()
	if back {
		return &ScreenTransition{Type: TransitionPop}, nil
	}

	if mx, my, clicked := MouseJustClicked(); clicked {
		if ds.errDisplay.HandleClick(mx, my, ds.loadErr) {
			return nil, nil
		}
		for i, r := range ds.buttonRects {
			if r.Contains(mx, my) {
				ds.zone = detailZoneButtons
				ds.buttonIndex = i
				return ds.pressButton(), nil
			}
		}
		return nil, nil
	}

	switch ds.zone {
	case detailZoneButtons:
		switch dir {
		case DirUp:
			return &ScreenTransition{Type: TransitionFocusNavBar}, nil
		case DirDown:
			if len(ds.byTarget.Items) > 0 {
				ds.zone = detailZoneTarget
			} else if len(ds.byEquipment.Items) > 0 {
				ds.zone = detailZoneEquipment
			}
		case DirLeft:
			if ds.buttonIndex > 0 {
				ds.buttonIndex--
			}
		case DirRight:
			if ds.buttonIndex < len(detailButtons)-1 {
				ds.buttonIndex++
			}
		}
		if enter {
			return ds.pressButton(), nil
		}

	case detailZoneTarget:
		switch dir {
		case DirUp:
			ds.zone = detailZoneButtons
		case DirDown:
			if len(ds.byEquipment.Items) > 0 {
				ds.zone = detailZoneEquipment
			}
		default:
			ds.byTarget.Update(dir, enter)
		}

	case detailZoneEquipment:
		switch dir {
		case DirUp:
			if len(ds.byTarget.Items) > 0 {
				ds.zone = detailZoneTarget
			} else {
				ds.zone = detailZoneButtons
			}
		default:
			ds.byEquipment.Update(dir, enter)
		}
	}

	return nil, nil
}

func (ds *DetailScreen) pressButton() *ScreenTransition {
	switch detailButtons[ds.buttonIndex] {
	case "Watch Demo":
		if ds.exercise != nil && ds.OnWatchDemo != nil {
			ds.OnWatchDemo(*ds.exercise)
		}
	case "Watch Videos":
		if ds.exercise != nil && ds.OnWatchVideos != nil {
			ds.OnWatchVideos(*ds.exercise)
		}
	case "Back":
		return &ScreenTransition{Type: TransitionPop}
	}
	return nil
}

func (ds *DetailScreen) Draw(dst *ebiten.Image) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	ds.scroll.Animate()
	viewW := ViewWidth()
	y := float64(NavBarHeight+SectionGap) - ds.scroll.ScrollY

	ex := ds.exercise
	if ex == nil {
		if ds.loadErr != "" {
			ds.errDisplay.Draw(dst, ds.loadErr, SectionPadding, y, FontSizeBody)
			return
		}
		DrawTextCentered(dst, "Loading...", viewW/2, ScreenHeight/2, FontSizeHeading, ColorTextSecondary)
		return
	}

	// Media
	mx := float64(SectionPadding)
	vector.DrawFilledRect(dst, float32(mx), float32(y), DetailMediaW, DetailMediaH, ColorBadge, false)
	if img := ds.media.get(ex.MediaURL); img != nil {
		DrawImageContain(dst, img, mx, y, DetailMediaW, DetailMediaH)
	}

	// Text column
	x := mx + DetailMediaW + SectionGap*2
	colW := viewW - x - SectionPadding
	ty := y
	DrawTextBold(dst, titleCase(ex.Name), x, ty, FontSizeHero, ColorText)
	ty += FontSizeHero + 24
	ty += DrawTextWrapped(dst, ex.Description(), x, ty, colW, FontSizeHeading, ColorTextSecondary) + 20

	ty = ds.drawBadges(dst, ex, x, ty)

	if len(ex.SecondaryMuscles) > 0 {
		DrawText(dst, "Also works: "+strings.Join(ex.SecondaryMuscles, ", "), x, ty, FontSizeBody, ColorTextSecondary)
		ty += FontSizeBody + 16
	}

	ds.buttonRects = ds.buttonRects[:0]
	bx := x
	for i, label := range detailButtons {
		r := drawButton(dst, label, bx, ty, DetailButtonH, ds.zone == detailZoneButtons && i == ds.buttonIndex)
		ds.buttonRects = append(ds.buttonRects, r)
		bx += r.W + 16
	}
	ty += DetailButtonH + SectionGap

	if len(ex.Instructions) > 0 {
		DrawTextBold(dst, "Instructions", x, ty, FontSizeHeading, ColorText)
		ty += SectionTitleH
		for i, step := range ex.Instructions {
			ty += DrawTextWrapped(dst, fmt.Sprintf("%d. %s", i+1, step), x, ty, colW, FontSizeBody, ColorTextSecondary) + 8
		}
	}

	y += DetailMediaH
	if ty > y {
		y = ty
	}
	y += SectionGap

	if h := ds.errDisplay.Draw(dst, ds.loadErr, SectionPadding, y, FontSizeBody); h > 0 {
		y += h + 8
	}

	y += ds.drawSimilar(dst, ds.byTarget, ds.target, y, ds.zone == detailZoneTarget)
	y += SectionGap
	y += ds.drawSimilar(dst, ds.byEquipment, ds.equipment, y, ds.zone == detailZoneEquipment)
	y += SectionGap

	ds.scroll.MaxScrollY = y + ds.scroll.ScrollY - ScreenHeight
	if ds.scroll.MaxScrollY < 1 {
		ds.scroll.MaxScrollY = 1
	}
}

func (ds *DetailScreen) drawBadges(dst *ebiten.Image, ex *catalog.Exercise, x, y float64) float64 {
	for _, b := range []struct{ label, value string }{
		{"Body part", ex.BodyPart},
		{"Target", ex.Target},
		{"Equipment", ex.Equipment},
	} {
		if b.value == "" {
			continue
		}
		DrawText(dst, b.label, x, y+4, FontSizeSmall, ColorTextMuted)
		drawBadge(dst, titleCase(b.value), x+110, y, ColorBadge, ColorBackground)
		y += FontSizeSmall + 24
	}
	return y + 8
}

func (ds *DetailScreen) drawSimilar(dst *ebiten.Image, c *Carousel, records []catalog.Exercise, y float64, active bool) float64 {
	if len(c.Items) == 0 {
		DrawTextBold(dst, c.Label, SectionPadding, y, FontSizeHeading, ColorText)
		msg := "Loading..."
		if ds.similarDone {
			msg = "Nothing similar found"
		}
		DrawText(dst, msg, SectionPadding, y+SectionTitleH, FontSizeBody, ColorTextMuted)
		return SectionTitleH + FontSizeBody + 16
	}

	lo, hi := c.VisibleRange()
	for i := lo; i < hi && i < len(records); i++ {
		c.Items[i].Image = ds.media.get(records[i].MediaURL)
	}
	c.Active = active
	return c.Draw(dst, SectionPadding, y)
}
