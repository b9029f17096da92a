package player

import "time"

// Mock is a test double for Surface. It changes state synchronously and
// publishes the same events a Surface would.
type Mock struct {
	state     State
	source    string
	position  time.Duration
	duration  time.Duration
	trackInfo *TrackInfo
	loadErr   error
	playErr   error
	subs      []*Subscription

	loadCalls  []string
	playCalls  int
	pauseCalls int
	seekCalls  []time.Duration
}

// NewMock creates an unbound mock surface.
func NewMock() *Mock {
	return &Mock{state: Stopped}
}

func (m *Mock) Load(path string) error {
	m.loadCalls = append(m.loadCalls, path)
	if m.loadErr != nil {
		return m.loadErr
	}
	m.source = path
	m.position = 0
	m.setState(Paused)
	m.publish(DurationChange{Duration: m.duration})
	return nil
}

func (m *Mock) Source() string { return m.source }

func (m *Mock) Play() error {
	m.playCalls++
	if m.playErr != nil {
		return m.playErr
	}
	if m.state == Stopped {
		return ErrNotLoaded
	}
	if m.state == Playing {
		return nil
	}
	if m.duration > 0 && m.position >= m.duration {
		m.position = 0
		m.publish(PositionChange{Position: 0})
	}
	m.setState(Playing)
	return nil
}

func (m *Mock) Pause() {
	m.pauseCalls++
	if m.state.CanPause() {
		m.setState(Paused)
	}
}

func (m *Mock) Toggle() error {
	if m.state == Playing {
		m.Pause()
		return nil
	}
	return m.Play()
}

func (m *Mock) SeekTo(pos time.Duration) {
	m.seekCalls = append(m.seekCalls, pos)
	if !m.state.IsActive() {
		return
	}
	pos = max(pos, 0)
	if m.duration > 0 {
		pos = min(pos, m.duration)
	}
	m.position = pos
	m.publish(PositionChange{Position: pos})
}

func (m *Mock) Seek(delta time.Duration) { m.SeekTo(m.position + delta) }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) State() State { return m.state }

func (m *Mock) TrackInfo() *TrackInfo { return m.trackInfo }

func (m *Mock) Subscribe() *Subscription {
	sub := newSubscription()
	m.subs = append(m.subs, sub)
	return sub
}

func (m *Mock) Close() error {
	m.source = ""
	m.setState(Stopped)
	for _, sub := range m.subs {
		sub.close()
	}
	m.subs = nil
	return nil
}

func (m *Mock) setState(s State) {
	if m.state == s {
		return
	}
	prev := m.state
	m.state = s
	m.publish(StateChange{Previous: prev, Current: s})
}

func (m *Mock) publish(e Event) {
	for _, sub := range m.subs {
		sub.send(e)
	}
}

// Test helpers

func (m *Mock) SetState(s State) { m.state = s }

func (m *Mock) SetSource(path string) { m.source = path }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

func (m *Mock) SetTrackInfo(info *TrackInfo) { m.trackInfo = info }

func (m *Mock) SetLoadError(err error) { m.loadErr = err }

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) LoadCalls() []string { return m.loadCalls }

func (m *Mock) PlayCalls() int { return m.playCalls }

func (m *Mock) PauseCalls() int { return m.pauseCalls }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
