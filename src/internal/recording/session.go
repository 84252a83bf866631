package recording

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"vocalwork/src/pkg/log"
)

// State models the capture lifecycle of one recording attempt.
type State string

const (
	StateIdle      State = "IDLE"
	StateRecording State = "RECORDING"
	StateCaptured  State = "CAPTURED"
)

var (
	// ErrPermissionDenied means the audio input device refused access; the
	// session stays Idle and no timer is running.
	ErrPermissionDenied = errors.New("audio input permission denied")
	// ErrInvalidState means the requested transition is not legal from the
	// current state.
	ErrInvalidState = errors.New("invalid recording state transition")
)

// AudioStream is a live handle on an acquired input device. Close releases
// the device; holding it open leaks the microphone.
type AudioStream interface {
	// FrequencyData fills buf with the current frequency-domain amplitude
	// bins (one byte per bin, 0-255).
	FrequencyData(buf []byte)
	Close() error
}

// InputDevice grants exclusive access to the system audio input. Acquire may
// block for as long as the user leaves the permission prompt unanswered; it
// honors ctx cancellation.
type InputDevice interface {
	Acquire(ctx context.Context) (AudioStream, error)
}

// Renderer draws one frame of the amplitude bar chart.
type Renderer interface {
	RenderBars(levels []byte)
}

// FrameScheduler arms a callback for the next display frame. The session
// re-arms itself each frame while recording, so the draw loop is cooperative
// and ends automatically once the state leaves Recording.
type FrameScheduler interface {
	RequestFrame(fn func())
}

const frequencyBins = 128

// Config assembles a recording session. OnComplete runs when the user
// submits the captured take; what happens next (job transition, payment) is
// the caller's business.
type Config struct {
	Script     string
	Device     InputDevice
	Frames     FrameScheduler
	Renderer   Renderer
	OnComplete func()
	Log        log.Log
	// TickInterval overrides the elapsed-seconds cadence; zero means one
	// second.
	TickInterval time.Duration
}

// Session manages exactly one audio-capture attempt for a given script:
// Idle -> Recording -> Captured, with Captured -> Idle via Retry. No audio
// bytes are persisted; only the act of finishing is reported.
type Session struct {
	mu            sync.Mutex
	state         State
	elapsed       int
	starting      bool
	closed        bool
	cancelAcquire context.CancelFunc
	stream        AudioStream
	ticker        *time.Ticker
	tickerDone    chan struct{}

	script       string
	device       InputDevice
	frames       FrameScheduler
	renderer     Renderer
	onComplete   func()
	log          log.Log
	tickInterval time.Duration
}

func NewSession(cfg Config) *Session {
	interval := cfg.TickInterval
	if interval <= 0 {
		interval = time.Second
	}
	return &Session{
		state:        StateIdle,
		script:       cfg.Script,
		device:       cfg.Device,
		frames:       cfg.Frames,
		renderer:     cfg.Renderer,
		onComplete:   cfg.OnComplete,
		log:          cfg.Log,
		tickInterval: interval,
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ElapsedSeconds reports how long the current or captured take ran.
func (s *Session) ElapsedSeconds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

func (s *Session) Script() string {
	return s.script
}

// Start requests the input device and begins the elapsed counter and the
// visualization loop. The device grab can hang on an unanswered permission
// prompt; that blocks only this transition, so it runs outside the session
// lock.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.closed || s.state != StateIdle || s.starting {
		s.mu.Unlock()
		return ErrInvalidState
	}
	s.starting = true
	acquireCtx, cancel := context.WithCancel(ctx)
	s.cancelAcquire = cancel
	s.mu.Unlock()

	stream, err := s.device.Acquire(acquireCtx)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.starting = false
	s.cancelAcquire = nil
	if s.closed {
		// Closed while the permission prompt was pending. A grant that
		// arrives now has no owner, so release it on the spot.
		if stream != nil {
			if cerr := stream.Close(); cerr != nil {
				s.log.Error("recording-session", "failed to release audio stream", "Start", cerr.Error())
			}
		}
		return ErrInvalidState
	}
	if err != nil {
		s.log.Warn("recording-session", "microphone access denied", "Start", err.Error())
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}

	s.stream = stream
	s.state = StateRecording
	s.elapsed = 0
	s.startTickerLocked()
	s.frames.RequestFrame(s.drawFrame)
	return nil
}

// Stop freezes the take: the counter stops and the device is released.
func (s *Session) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrInvalidState
	}
	s.releaseLocked()
	s.state = StateCaptured
	return nil
}

// Retry discards the captured take. The device was already released on Stop.
func (s *Session) Retry() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateCaptured {
		return ErrInvalidState
	}
	s.state = StateIdle
	s.elapsed = 0
	return nil
}

// Submit hands the captured take to the caller's completion callback.
func (s *Session) Submit() error {
	s.mu.Lock()
	if s.state != StateCaptured {
		s.mu.Unlock()
		return ErrInvalidState
	}
	onComplete := s.onComplete
	s.mu.Unlock()

	if onComplete != nil {
		onComplete()
	}
	return nil
}

// Close releases the device handle and the ticker regardless of state. It is
// the exit path for stop, unmount and navigate-away alike, and is safe to
// call more than once. A closed session refuses further starts; if a start is
// parked on the permission prompt, Close cancels it and the late grant is
// released inside Start.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.cancelAcquire != nil {
		s.cancelAcquire()
	}
	s.releaseLocked()
	s.state = StateIdle
}

func (s *Session) startTickerLocked() {
	s.ticker = time.NewTicker(s.tickInterval)
	s.tickerDone = make(chan struct{})
	go func(ticker *time.Ticker, done chan struct{}) {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.mu.Lock()
				if s.state == StateRecording {
					s.elapsed++
				}
				s.mu.Unlock()
			}
		}
	}(s.ticker, s.tickerDone)
}

// releaseLocked stops the ticker and closes the stream. Caller holds the
// mutex.
func (s *Session) releaseLocked() {
	if s.ticker != nil {
		s.ticker.Stop()
		close(s.tickerDone)
		s.ticker = nil
		s.tickerDone = nil
	}
	if s.stream != nil {
		if err := s.stream.Close(); err != nil {
			s.log.Error("recording-session", "failed to release audio stream", "release", err.Error())
		}
		s.stream = nil
	}
}

// drawFrame samples the stream and renders one frame of bars, then re-arms
// itself for the next frame. Once the state leaves Recording the loop simply
// stops re-arming.
func (s *Session) drawFrame() {
	s.mu.Lock()
	if s.state != StateRecording || s.stream == nil {
		s.mu.Unlock()
		return
	}
	stream := s.stream
	s.mu.Unlock()

	levels := make([]byte, frequencyBins)
	stream.FrequencyData(levels)
	s.renderer.RenderBars(levels)
	s.frames.RequestFrame(s.drawFrame)
}
