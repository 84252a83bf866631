package recording

import (
	"context"
	"errors"
	"sync"
	"time"

	"vocalwork/src/pkg/log"
	"vocalwork/src/pkg/metrics"
)

// ErrNoSession means no recording session exists for the job.
var ErrNoSession = errors.New("no recording session for job")

// Manager owns at most one live recording session per job. Evicting a
// session always closes it first, so the device handle and ticker are
// released on every exit path, including navigate-away.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	device       InputDevice
	frames       FrameScheduler
	renderer     Renderer
	log          log.Log
	tickInterval time.Duration
}

func NewManager(device InputDevice, frames FrameScheduler, renderer Renderer, logger log.Log) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		device:   device,
		frames:   frames,
		renderer: renderer,
		log:      logger,
	}
}

// Start begins a capture attempt for the job, creating the session on first
// use. onComplete fires when the take is submitted.
func (m *Manager) Start(ctx context.Context, jobID, script string, onComplete func()) error {
	m.mu.Lock()
	session, ok := m.sessions[jobID]
	if !ok {
		session = NewSession(Config{
			Script:       script,
			Device:       m.device,
			Frames:       m.frames,
			Renderer:     m.renderer,
			OnComplete:   onComplete,
			Log:          m.log,
			TickInterval: m.tickInterval,
		})
		m.sessions[jobID] = session
		metrics.RecordingSessions.Inc()
	}
	m.mu.Unlock()

	return session.Start(ctx)
}

func (m *Manager) Stop(jobID string) error {
	session, err := m.get(jobID)
	if err != nil {
		return err
	}
	return session.Stop()
}

func (m *Manager) Retry(jobID string) error {
	session, err := m.get(jobID)
	if err != nil {
		return err
	}
	return session.Retry()
}

// Submit fires the session's completion callback and evicts the session.
func (m *Manager) Submit(jobID string) error {
	session, err := m.get(jobID)
	if err != nil {
		return err
	}
	if err := session.Submit(); err != nil {
		return err
	}
	m.Evict(jobID)
	return nil
}

// Lookup reports the session state for the job.
func (m *Manager) Lookup(jobID string) (State, int, error) {
	session, err := m.get(jobID)
	if err != nil {
		return "", 0, err
	}
	return session.State(), session.ElapsedSeconds(), nil
}

// Evict closes the session and removes it; the no-session case is a no-op so
// navigation-away can call it unconditionally.
func (m *Manager) Evict(jobID string) {
	m.mu.Lock()
	session, ok := m.sessions[jobID]
	if ok {
		delete(m.sessions, jobID)
		metrics.RecordingSessions.Dec()
	}
	m.mu.Unlock()

	if ok {
		session.Close()
	}
}

// CloseAll releases every live session; called on shutdown.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for id, s := range m.sessions {
		sessions = append(sessions, s)
		delete(m.sessions, id)
		metrics.RecordingSessions.Dec()
	}
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}

func (m *Manager) get(jobID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[jobID]
	if !ok {
		return nil, ErrNoSession
	}
	return session, nil
}
