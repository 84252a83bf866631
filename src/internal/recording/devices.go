package recording

import (
	"context"
	"math"
	"sync"
	"time"
)

// LoopbackDevice grants access immediately and serves a synthetic waveform.
// Headless deployments use it in place of real capture hardware. Audio bytes
// are never stored, so the stream only has to produce plausible amplitude
// bins.
type LoopbackDevice struct{}

func (LoopbackDevice) Acquire(ctx context.Context) (AudioStream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &loopbackStream{start: time.Now()}, nil
}

type loopbackStream struct {
	mu     sync.Mutex
	start  time.Time
	closed bool
}

func (s *loopbackStream) FrequencyData(buf []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		for i := range buf {
			buf[i] = 0
		}
		return
	}
	t := time.Since(s.start).Seconds()
	for i := range buf {
		phase := t*4 + float64(i)/8
		buf[i] = byte(127 + 127*math.Sin(phase))
	}
}

func (s *loopbackStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// FrameClock drives the cooperative draw loop at a fixed display cadence.
// Each RequestFrame schedules the callback exactly once; the session decides
// whether to re-arm.
type FrameClock struct {
	Interval time.Duration
}

func (c FrameClock) RequestFrame(fn func()) {
	interval := c.Interval
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	time.AfterFunc(interval, fn)
}

// NopRenderer discards frames; used when no display surface is attached.
type NopRenderer struct{}

func (NopRenderer) RenderBars([]byte) {}
