package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/elf-bizniz/audio"
	"github.com/lixenwraith/elf-bizniz/config"
	"github.com/lixenwraith/elf-bizniz/core"
	"github.com/lixenwraith/elf-bizniz/record"
	"github.com/lixenwraith/elf-bizniz/session"
	"github.com/lixenwraith/elf-bizniz/status"
)

const tickStep = 16 * time.Millisecond

func newTestGame(t *testing.T, rec *record.Writer) (*game, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(100, 66)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	cfg.Audio.Enabled = false
	src, err := cfg.Source()
	require.NoError(t, err)
	sess, err := session.New(src, cfg)
	require.NoError(t, err)

	g, err := newGame(cfg, screen, sess, nil, audio.NewSink(audioConfig(cfg)), rec)
	require.NoError(t, err)
	return g, screen
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestTickStepsAndRenders(t *testing.T) {
	g, screen := newTestGame(t, nil)
	now := time.Unix(100, 0)

	for i := 0; i < 3; i++ {
		require.NoError(t, g.tick(now))
		now = now.Add(tickStep)
	}
	assert.Equal(t, int64(3), g.sess.Frame())
	assert.Equal(t, int64(3), g.stats.Int("frames").Load())
	assert.Equal(t, int64(1), g.stats.Int("LevelLoaded").Load())

	ch, _, _, _ := screen.GetContent(1, 65)
	assert.Equal(t, 'E', ch, "status bar starts with the title")
}

func TestTickReportsRemovals(t *testing.T) {
	g, _ := newTestGame(t, nil)
	now := time.Unix(100, 0)
	require.NoError(t, g.tick(now))
	removed := g.stats.Int(status.MetricRemoved)
	base := removed.Load()

	reg := g.sess.Level().Registry
	coins := reg.List(core.CategoryCoin)
	require.NotEmpty(t, coins)
	require.True(t, reg.Remove(coins[0].ID))

	require.NoError(t, g.tick(now.Add(tickStep)))
	assert.GreaterOrEqual(t, removed.Load(), base+1)
	assert.Contains(t, g.stats.Summary(), "removed=")
}

func TestTickClampsStalls(t *testing.T) {
	g, _ := newTestGame(t, nil)
	now := time.Unix(100, 0)
	require.NoError(t, g.tick(now))

	require.NoError(t, g.tick(now), "zero delta is skipped")
	assert.Equal(t, int64(1), g.sess.Frame())

	startX := g.sess.Actor().X
	later := now.Add(10 * time.Second)
	require.True(t, g.handleEvent(key(tcell.KeyRight), later))
	require.NoError(t, g.tick(later))
	assert.InDelta(t, startX+g.cfg.Physics.MoveSpeed*0.1, g.sess.Actor().X, 1e-6)
}

func TestHeldKeyMovesActor(t *testing.T) {
	g, _ := newTestGame(t, nil)
	now := time.Unix(100, 0)
	require.NoError(t, g.tick(now))
	startX := g.sess.Actor().X

	for i := 0; i < 5; i++ {
		now = now.Add(tickStep)
		require.True(t, g.handleEvent(key(tcell.KeyRight), now))
		require.NoError(t, g.tick(now))
	}
	assert.Greater(t, g.sess.Actor().X, startX)

	// No auto-repeat: the synthesized release stops the actor
	now = now.Add(time.Second)
	require.NoError(t, g.tick(now))
	stoppedX := g.sess.Actor().X
	now = now.Add(tickStep)
	require.NoError(t, g.tick(now))
	assert.Equal(t, stoppedX, g.sess.Actor().X)
}

func TestSystemKeys(t *testing.T) {
	g, _ := newTestGame(t, nil)
	now := time.Unix(100, 0)
	for i := 0; i < 4; i++ {
		require.NoError(t, g.tick(now))
		now = now.Add(tickStep)
	}

	assert.True(t, g.handleEvent(tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl), now))
	assert.Zero(t, g.sess.Frame(), "reload restarts the frame counter")

	assert.True(t, g.handleEvent(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), now))
	assert.True(t, g.handleEvent(tcell.NewEventResize(80, 40), now))

	assert.False(t, g.handleEvent(key(tcell.KeyEscape), now))
}

func TestRecordingCapturesFrames(t *testing.T) {
	var buf bytes.Buffer
	rec := record.NewWriter(&buf)
	g, _ := newTestGame(t, rec)

	now := time.Unix(100, 0)
	for i := 0; i < 10; i++ {
		require.NoError(t, g.tick(now))
		now = now.Add(tickStep)
	}
	require.NoError(t, rec.Close())
	assert.Equal(t, 10, rec.Frames())

	rd, err := record.NewReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "procedural", rd.Header.Level)
	assert.NotEmpty(t, rd.Header.Walls)

	frames, err := rd.ReadAll()
	require.NoError(t, err)
	require.Len(t, frames, 10)
	assert.Equal(t, int64(10), frames[9].Snapshot.Frame)
}

func TestCloseRecordingFlushesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.elfrec")
	rec, err := record.Create(path)
	require.NoError(t, err)
	g, _ := newTestGame(t, rec)

	now := time.Unix(100, 0)
	for i := 0; i < 4; i++ {
		require.NoError(t, g.tick(now))
		now = now.Add(tickStep)
	}
	closeRecording(rec, path)
	closeRecording(rec, path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rd, err := record.NewReader(f)
	require.NoError(t, err)
	frames, err := rd.ReadAll()
	require.NoError(t, err)
	assert.Len(t, frames, 4)
}
