package status

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/elf-bizniz/event"
)

func TestObserveCountsFramesAndEvents(t *testing.T) {
	r := NewRegistry()

	r.Observe(10*time.Millisecond, []event.GameEvent{{Type: event.EventJump}, {Type: event.EventCollected}})
	r.Observe(20*time.Millisecond, []event.GameEvent{{Type: event.EventCollected}})

	assert.Equal(t, int64(2), r.Int(MetricFrames).Load())
	assert.Equal(t, int64(2), r.Int("Collected").Load())
	assert.Equal(t, int64(1), r.Int("Jump").Load())
	assert.InDelta(t, 11.0, r.Float(MetricFrameTime).Get(), 1e-9, "10 smoothed toward 20 by 0.1")

	assert.Equal(t, "Collected=2 Jump=1 frames=2 frame_ms=11.00", r.Summary())
}

func TestSmoothSeedsFromFirstSample(t *testing.T) {
	var f AtomicFloat
	assert.Equal(t, 16.0, f.Smooth(16, 0.5))
	assert.Equal(t, 12.0, f.Smooth(8, 0.5))
	f.Set(3)
	assert.Equal(t, 3.0, f.Get())
}

func TestCountersConcurrent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Int("hits").Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(800), r.Int("hits").Load())
}
