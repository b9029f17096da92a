package player

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// output is the mixer surfaces stream into. Streamers added with Play are
// pulled while the output lock is held.
type output interface {
	// Init prepares the output for audio at rate and returns the rate the
	// output actually runs at. Only the first call initializes.
	Init(rate beep.SampleRate) (beep.SampleRate, error)
	Lock()
	Unlock()
	Play(s beep.Streamer)
}

// speakerOutput is the process-wide beep speaker shared by every surface.
type speakerOutput struct {
	mu   sync.Mutex
	rate beep.SampleRate
}

var sharedSpeaker = &speakerOutput{}

func (o *speakerOutput) Init(rate beep.SampleRate) (beep.SampleRate, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.rate != 0 {
		return o.rate, nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return 0, fmt.Errorf("init speaker: %w", err)
	}
	o.rate = rate
	return rate, nil
}

func (o *speakerOutput) Lock() { speaker.Lock() }

func (o *speakerOutput) Unlock() { speaker.Unlock() }

func (o *speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
