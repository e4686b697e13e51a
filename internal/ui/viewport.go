package ui

// Size is a window size in device-independent pixels.
type Size struct {
	W, H int
}

var viewWidth = float64(ScreenWidth)

// SetViewSize derives the logical width from the window size. The logical
// height is always ScreenHeight, so wider windows show more of each
// carousel rather than larger cards.
func SetViewSize(s Size) (w, h int) {
	if s.W <= 0 || s.H <= 0 {
		return int(viewWidth), ScreenHeight
	}
	w = ScreenHeight * s.W / s.H
	if w < 1280 {
		w = 1280
	}
	viewWidth = float64(w)
	return w, ScreenHeight
}

// ViewWidth is the current logical width.
func ViewWidth() float64 {
	return viewWidth
}
