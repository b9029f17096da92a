package player

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep/v2"
)

// DefaultTickInterval is how often a playing surface reports its position.
const DefaultTickInterval = 250 * time.Millisecond

var (
	// ErrNotLoaded is returned by operations that need bound audio.
	ErrNotLoaded = errors.New("no audio loaded")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("surface closed")
)

// Surface is one independent playback cursor over an audio file.
//
// Several surfaces may play the same file at once: each opens its own decoder
// and streams into the shared output. A surface never touches another
// surface's stream.
//
// Every field below out is read by the audio callback and guarded by the
// output lock. Events are published while that lock is held, so each
// subscriber sees them in the order the state changed.
type Surface struct {
	out  output
	tick time.Duration

	source   string
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	stream   beep.Streamer
	outRate  beep.SampleRate
	info     *TrackInfo
	state    State
	attached bool
	closed   bool
	subs     []*Subscription

	stopTick chan struct{}
	tickDone chan struct{}
}

// Option configures a Surface.
type Option func(*Surface)

// WithTickInterval sets how often position updates are emitted while playing.
func WithTickInterval(d time.Duration) Option {
	return func(s *Surface) {
		if d > 0 {
			s.tick = d
		}
	}
}

func withOutput(o output) Option {
	return func(s *Surface) { s.out = o }
}

// NewSurface returns an unbound surface streaming into the shared speaker.
func NewSurface(opts ...Option) *Surface {
	s := &Surface{
		out:      sharedSpeaker,
		tick:     DefaultTickInterval,
		stopTick: make(chan struct{}),
		tickDone: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.tickLoop()
	return s
}

// Load binds the surface to the audio file at path, replacing any previous
// binding. The surface ends up Paused at position 0.
func (s *Surface) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		s.fail("load", path, err)
		return fmt.Errorf("open audio: %w", err)
	}

	streamer, format, codec, err := decode(f)
	if err != nil {
		f.Close()
		s.fail("load", path, err)
		return err
	}

	rate, err := s.out.Init(format.SampleRate)
	if err != nil {
		streamer.Close()
		f.Close()
		s.fail("load", path, err)
		return err
	}

	info := ReadTrackInfo(path)
	info.Duration = format.SampleRate.D(streamer.Len())
	info.Format = codec
	info.SampleRate = int(format.SampleRate)

	s.out.Lock()
	if s.closed {
		s.out.Unlock()
		streamer.Close()
		f.Close()
		return ErrClosed
	}
	s.releaseLocked()
	s.source = path
	s.file = f
	s.streamer = streamer
	s.format = format
	s.outRate = rate
	s.info = info
	s.stream = s.playbackStreamLocked()
	s.setStateLocked(Paused)
	s.publishLocked(DurationChange{Duration: info.Duration})
	attach := !s.attached
	s.attached = true
	s.out.Unlock()

	if attach {
		s.out.Play(&cursor{s: s})
	}
	return nil
}

// Source returns the path of the bound audio, "" when unbound.
func (s *Surface) Source() string {
	s.out.Lock()
	defer s.out.Unlock()
	return s.source
}

// Play starts or resumes playback. Playing from the end of the stream
// restarts from the beginning.
func (s *Surface) Play() error {
	s.out.Lock()
	defer s.out.Unlock()

	if s.streamer == nil {
		return ErrNotLoaded
	}
	if s.state == Playing {
		return nil
	}
	if n := s.streamer.Len(); n > 0 && s.streamer.Position() >= n {
		s.seekLocked(0)
	}
	s.setStateLocked(Playing)
	return nil
}

// Pause pauses playback. No-op unless playing.
func (s *Surface) Pause() {
	s.out.Lock()
	defer s.out.Unlock()

	if s.state.CanPause() {
		s.setStateLocked(Paused)
	}
}

// Toggle pauses when playing and plays otherwise.
func (s *Surface) Toggle() error {
	s.out.Lock()
	playing := s.state == Playing
	s.out.Unlock()

	if playing {
		s.Pause()
		return nil
	}
	return s.Play()
}

// SeekTo moves the cursor to pos, clamped to the stream bounds.
func (s *Surface) SeekTo(pos time.Duration) {
	s.out.Lock()
	defer s.out.Unlock()

	if s.streamer != nil {
		s.seekLocked(pos)
	}
}

// Seek moves the cursor by delta.
func (s *Surface) Seek(delta time.Duration) {
	s.out.Lock()
	defer s.out.Unlock()

	if s.streamer != nil {
		s.seekLocked(s.positionLocked() + delta)
	}
}

// Position returns the current cursor position.
func (s *Surface) Position() time.Duration {
	s.out.Lock()
	defer s.out.Unlock()
	return s.positionLocked()
}

// Duration returns the length of the bound audio, 0 when unknown.
func (s *Surface) Duration() time.Duration {
	s.out.Lock()
	defer s.out.Unlock()

	if s.streamer == nil {
		return 0
	}
	return s.format.SampleRate.D(s.streamer.Len())
}

// State returns the current play state.
func (s *Surface) State() State {
	s.out.Lock()
	defer s.out.Unlock()
	return s.state
}

// TrackInfo returns the metadata of the bound audio, nil when unbound.
func (s *Surface) TrackInfo() *TrackInfo {
	s.out.Lock()
	defer s.out.Unlock()
	return s.info
}

// Subscribe returns a new subscription to this surface's events.
func (s *Surface) Subscribe() *Subscription {
	s.out.Lock()
	defer s.out.Unlock()

	sub := newSubscription()
	if s.closed {
		sub.close()
		return sub
	}
	s.subs = append(s.subs, sub)
	return sub
}

// Close releases the audio, ends every subscription and removes the surface
// from the output.
func (s *Surface) Close() error {
	s.out.Lock()
	if s.closed {
		s.out.Unlock()
		return nil
	}
	s.closed = true
	s.releaseLocked()
	s.setStateLocked(Stopped)
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.out.Unlock()

	close(s.stopTick)
	<-s.tickDone
	return nil
}

func (s *Surface) tickLoop() {
	defer close(s.tickDone)

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopTick:
			return
		case <-ticker.C:
			s.out.Lock()
			if s.state == Playing {
				s.publishLocked(PositionChange{Position: s.positionLocked()})
			}
			s.out.Unlock()
		}
	}
}

func (s *Surface) positionLocked() time.Duration {
	if s.streamer == nil {
		return 0
	}
	return s.format.SampleRate.D(s.streamer.Position())
}

func (s *Surface) seekLocked(pos time.Duration) {
	n := max(s.format.SampleRate.N(pos), 0)
	if length := s.streamer.Len(); length > 0 {
		n = min(n, length)
	}
	if err := s.streamer.Seek(n); err != nil {
		s.publishLocked(ErrorEvent{Op: "seek", Path: s.source, Err: err})
		return
	}
	// the resampler buffers samples from before the seek
	s.stream = s.playbackStreamLocked()
	s.publishLocked(PositionChange{Position: s.positionLocked()})
}

func (s *Surface) playbackStreamLocked() beep.Streamer {
	if s.outRate == 0 || s.format.SampleRate == s.outRate {
		return s.streamer
	}
	return beep.Resample(4, s.format.SampleRate, s.outRate, s.streamer)
}

func (s *Surface) setStateLocked(next State) {
	prev := s.state
	if prev == next {
		return
	}
	s.state = next
	s.publishLocked(StateChange{Previous: prev, Current: next})
}

func (s *Surface) publishLocked(e Event) {
	for _, sub := range s.subs {
		sub.send(e)
	}
}

func (s *Surface) fail(op, path string, err error) {
	s.out.Lock()
	s.publishLocked(ErrorEvent{Op: op, Path: path, Err: err})
	s.out.Unlock()
}

func (s *Surface) releaseLocked() {
	if s.streamer != nil {
		_ = s.streamer.Close()
	}
	if s.file != nil {
		_ = s.file.Close()
	}
	s.source = ""
	s.file = nil
	s.streamer = nil
	s.stream = nil
	s.info = nil
}

// endLocked runs when the decoder is drained: the cursor stays at the end.
func (s *Surface) endLocked() {
	if err := s.streamer.Err(); err != nil {
		s.publishLocked(ErrorEvent{Op: "decode", Path: s.source, Err: err})
	}
	s.setStateLocked(Paused)
	s.publishLocked(PositionChange{Position: s.positionLocked()})
}

// cursor is the streamer a surface keeps in the output mixer for its whole
// lifetime. It plays silence unless the surface is playing.
type cursor struct {
	s *Surface
}

func (c *cursor) Stream(samples [][2]float64) (int, bool) {
	s := c.s
	if s.closed {
		return 0, false
	}

	filled := 0
	if s.state == Playing && s.stream != nil {
		for filled < len(samples) {
			n, ok := s.stream.Stream(samples[filled:])
			filled += n
			if !ok {
				s.endLocked()
				break
			}
			if n == 0 {
				break
			}
		}
	}
	clear(samples[filled:])
	return len(samples), true
}

func (c *cursor) Err() error { return nil }
