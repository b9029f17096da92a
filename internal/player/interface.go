package player

import "time"

// Interface is the playback surface contract the adapters depend on.
type Interface interface {
	Load(path string) error
	Source() string
	Play() error
	Pause()
	Toggle() error
	SeekTo(pos time.Duration)
	Seek(delta time.Duration)
	Position() time.Duration
	Duration() time.Duration
	State() State
	TrackInfo() *TrackInfo
	Subscribe() *Subscription
	Close() error
}

// Verify Surface implements Interface at compile time.
var _ Interface = (*Surface)(nil)
