package player

import (
	"fmt"
	"log"
	"net/url"
	"runtime"
	"sync"

	"github.com/gen2brain/go-mpv"

	"github.com/depeter/movefit/internal/config"
)

// Player wraps libmpv for exercise demo and video playback.
type Player struct {
	m        *mpv.Mpv
	mu       sync.Mutex
	playing  bool
	paused   bool
	looping  bool
	position float64
	title    string

	OnPlaybackEnd func()
}

// New creates and initializes an mpv instance from the playback settings.
func New(cfg config.PlaybackConfig) (*Player, error) {
	m := mpv.New()

	must(m.SetOptionString("hwdec", cfg.HWAccel))
	must(m.SetOptionString("vo", "gpu"))
	must(m.SetOptionString("osc", "yes"))
	must(m.SetOptionString("keep-open", "no"))
	must(m.SetOptionString("idle", "yes"))
	must(m.SetOptionString("volume", fmt.Sprintf("%d", cfg.Volume)))
	if cfg.YTDL {
		must(m.SetOptionString("ytdl", "yes"))
	} else {
		must(m.SetOptionString("ytdl", "no"))
	}

	if err := m.Initialize(); err != nil {
		return nil, fmt.Errorf("mpv init: %w", err)
	}

	p := &Player{m: m, looping: cfg.Loop}

	m.ObserveProperty(0, "time-pos", mpv.FormatDouble)
	m.ObserveProperty(0, "pause", mpv.FormatFlag)

	go p.eventLoop()

	return p, nil
}

func must(err error) {
	if err != nil {
		log.Printf("mpv option warning: %v", err)
	}
}

// SetWindowID embeds playback into the native window.
func (p *Player) SetWindowID(wid int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.SetOptionString("wid", fmt.Sprintf("%d", wid))
}

// PlayDemo plays an exercise's demonstration media, looping it when the
// player is configured to.
func (p *Player) PlayDemo(mediaURL, title string) error {
	if mediaURL == "" {
		return fmt.Errorf("no demo media for %q", title)
	}
	loop := "no"
	if p.looping {
		loop = "inf"
	}
	return p.load(mediaURL, title, loop)
}

// PlayVideos plays the first video search result for query through mpv's
// youtube-dl hook.
func (p *Player) PlayVideos(query, title string) error {
	return p.load(VideoSearchURL(query), title, "no")
}

// VideoSearchURL is the ytdl URL mpv resolves to the top search result.
func VideoSearchURL(query string) string {
	return "ytdl://ytsearch:" + url.PathEscape(query)
}

func (p *Player) load(target, title, loop string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.m.SetPropertyString("loop-file", loop); err != nil {
		log.Printf("mpv loop-file: %v", err)
	}
	p.title = title
	p.playing = true
	p.paused = false
	p.position = 0
	if err := p.m.Command([]string{"loadfile", target, "replace"}); err != nil {
		p.playing = false
		return fmt.Errorf("loadfile: %w", err)
	}
	if title != "" {
		p.m.Command([]string{"show-text", title, "3000"})
	}
	return nil
}

// Seek seeks relative to the current position.
func (p *Player) Seek(seconds float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"seek", fmt.Sprintf("%.1f", seconds), "relative"})
}

// TogglePause toggles pause state.
func (p *Player) TogglePause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"cycle", "pause"})
}

// AddVolume changes the volume by delta.
func (p *Player) AddVolume(delta int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"add", "volume", fmt.Sprintf("%d", delta)})
}

// ToggleMute toggles audio mute.
func (p *Player) ToggleMute() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"cycle", "mute"})
}

// Stop stops playback. The resulting end-file event does not fire
// OnPlaybackEnd.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	return p.m.Command([]string{"stop"})
}

// Destroy cleans up the mpv instance.
func (p *Player) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.m.TerminateDestroy()
}

func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

func (p *Player) Position() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position
}

// Title is the name shown for the current media.
func (p *Player) Title() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.title
}

func (p *Player) eventLoop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	for {
		ev := p.m.WaitEvent(1.0)
		if ev == nil {
			continue
		}

		switch ev.EventID {
		case mpv.EventPropertyChange:
			if ev.Data == nil {
				continue
			}
			prop := ev.Property()
			p.mu.Lock()
			switch prop.Name {
			case "time-pos":
				if v, ok := prop.Data.(float64); ok {
					p.position = v
				}
			case "pause":
				if v, ok := prop.Data.(int); ok {
					p.paused = v == 1
				}
			}
			p.mu.Unlock()

		case mpv.EventEnd:
			p.mu.Lock()
			wasPlaying := p.playing
			p.playing = false
			p.mu.Unlock()
			if ev.Data != nil {
				log.Printf("mpv end-file: reason=%s wasPlaying=%v", ev.EndFile().Reason, wasPlaying)
			}
			if wasPlaying && p.OnPlaybackEnd != nil {
				p.OnPlaybackEnd()
			}

		case mpv.EventShutdown:
			return
		}
	}
}
