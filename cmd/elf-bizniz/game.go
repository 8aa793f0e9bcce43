package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/elf-bizniz/audio"
	"github.com/lixenwraith/elf-bizniz/config"
	"github.com/lixenwraith/elf-bizniz/event"
	"github.com/lixenwraith/elf-bizniz/input"
	"github.com/lixenwraith/elf-bizniz/parameter"
	"github.com/lixenwraith/elf-bizniz/record"
	"github.com/lixenwraith/elf-bizniz/render"
	"github.com/lixenwraith/elf-bizniz/session"
	"github.com/lixenwraith/elf-bizniz/status"
)

// game binds a session to the terminal, speaker and optional recorder
type game struct {
	cfg      *config.Config
	sess     *session.Session
	adapter  *input.Adapter
	sink     *audio.Sink
	renderer *render.TerminalRenderer
	rec      *record.Writer
	stats    *status.Registry

	last time.Time
}

func newGame(cfg *config.Config, screen tcell.Screen, sess *session.Session, keys *input.KeyTable, sink *audio.Sink, rec *record.Writer) (*game, error) {
	g := &game{
		cfg:      cfg,
		sess:     sess,
		adapter:  input.NewAdapter(keys, nil),
		sink:     sink,
		renderer: render.NewTerminalRenderer(screen, float64(cfg.Screen.Width), float64(cfg.Screen.Height)),
		rec:      rec,
		stats:    status.NewRegistry(),
	}
	g.renderer.Title = cfg.Screen.Title
	if rec != nil {
		if err := rec.WriteHeader(sess.Level().Name, sess.Snapshot()); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// handleEvent applies one terminal event, returns false when the game should exit
func (g *game) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch g.adapter.HandleKey(ev, now) {
		case input.ActionQuit:
			return false
		case input.ActionReload:
			if err := g.sess.Reload(); err != nil {
				log.Printf("Reload failed: %v", err)
				break
			}
			g.adapter.Reset()
		case input.ActionToggleMute:
			log.Printf("Audio muted: %v", g.sink.ToggleMute())
		}

	case *tcell.EventResize:
		g.renderer.Resize()
	}
	return true
}

// tick advances one frame using the wall-clock delta since the previous tick
// The first tick and stalls are clamped to the configured frame interval and MaxFrameDelta
func (g *game) tick(now time.Time) error {
	dt := g.cfg.FrameInterval()
	if !g.last.IsZero() {
		dt = min(now.Sub(g.last), parameter.MaxFrameDelta)
	}
	g.last = now
	if dt <= 0 {
		return nil
	}

	start := time.Now()
	g.adapter.Expire(now)
	state := g.adapter.State()
	g.sess.SetIntent(state.Intent(g.cfg.Physics.MoveSpeed, g.cfg.Physics.JumpSpeed))
	if state.TakeUse() {
		g.sess.Action()
	}

	events, err := g.sess.Step(dt.Seconds())
	if err != nil {
		return err
	}
	for _, ev := range event.Filter(events, event.EventLevelLoaded) {
		if p, ok := ev.Payload.(*event.LevelLoadedPayload); ok {
			log.Printf("Level %q ready: %d tiles, %d entities", p.Name, p.Tiles, p.Entities)
		}
	}

	g.sink.Handle(events)
	g.stats.Int(status.MetricRemoved).Store(int64(g.sess.Level().Registry.Removals()))

	snap := g.sess.Snapshot()
	if g.rec != nil {
		if err := g.rec.WriteFrame(snap, events); err != nil {
			log.Printf("Recording stopped: %v", err)
			g.rec.Close()
			g.rec = nil
		}
	}
	g.renderer.RenderFrame(snap)
	g.stats.Observe(time.Since(start), events)
	return nil
}
