// Package clip maps content sections to time ranges of the shared audio.
package clip

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/llehouerou/clipnotes/internal/post"
)

// Clip is the [Start, End) range bound to one section.
type Clip struct {
	Index int
	Label string
	Start time.Duration
	End   time.Duration
}

// Len returns the clip length, zero for degenerate clips.
func (c Clip) Len() time.Duration {
	if c.End <= c.Start {
		return 0
	}
	return c.End - c.Start
}

// Degenerate reports whether the clip has no playable length.
func (c Clip) Degenerate() bool {
	return c.End <= c.Start
}

// Bounded reports whether the clip has an end boundary to enforce.
func (c Clip) Bounded() bool {
	return c.End > 0
}

// Contains reports whether pos lies inside [Start, End).
func (c Clip) Contains(pos time.Duration) bool {
	return pos >= c.Start && pos < c.End
}

// Elapsed returns the position relative to the clip start, clamped to the clip.
func (c Clip) Elapsed(pos time.Duration) time.Duration {
	return min(max(pos-c.Start, 0), c.Len())
}

// Progress returns how far pos is into the clip, in percent [0, 100].
// Degenerate clips always report 0.
func (c Clip) Progress(pos time.Duration) float64 {
	if c.Degenerate() {
		return 0
	}
	ratio := float64(pos-c.Start) / float64(c.End-c.Start)
	return math.Max(0, math.Min(1, ratio)) * 100
}

// ParseSeconds reads a declared time value. Plain seconds ("12", "12.5") and
// M:SS timestamps ("1:05", "1:05.250") are accepted. Anything else, including
// negative or non-finite values, yields 0. Values past the largest
// time.Duration clamp to it.
func ParseSeconds(s string) time.Duration {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	var sec float64
	if m, rest, ok := strings.Cut(s, ":"); ok {
		mins, err := strconv.Atoi(m)
		if err != nil || mins < 0 {
			return 0
		}
		secs, err := strconv.ParseFloat(rest, 64)
		if err != nil || secs < 0 || secs >= 60 {
			return 0
		}
		sec = float64(mins)*60 + secs
	} else {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		sec = v
	}

	if math.IsNaN(sec) || math.IsInf(sec, 0) || sec < 0 {
		return 0
	}
	if sec >= maxSeconds {
		return math.MaxInt64
	}
	return time.Duration(sec * float64(time.Second))
}

var maxSeconds = time.Duration(math.MaxInt64).Seconds()

// Registry holds the clips of a document in declaration order.
// It is never mutated after construction.
type Registry struct {
	clips []Clip
}

// NewRegistry derives one clip per declared section.
func NewRegistry(sections []post.Section) *Registry {
	clips := make([]Clip, len(sections))
	for i, s := range sections {
		clips[i] = Clip{
			Index: i,
			Label: s.Label,
			Start: ParseSeconds(s.Start),
			End:   ParseSeconds(s.End),
		}
	}
	return &Registry{clips: clips}
}

// Len returns the number of sections.
func (r *Registry) Len() int {
	return len(r.clips)
}

// SectionAt returns the clip of section i.
func (r *Registry) SectionAt(i int) (Clip, bool) {
	if i < 0 || i >= len(r.clips) {
		return Clip{}, false
	}
	return r.clips[i], true
}

// First returns the default clip used before any visibility signal.
func (r *Registry) First() (Clip, bool) {
	return r.SectionAt(0)
}

// All returns a copy of every clip.
func (r *Registry) All() []Clip {
	out := make([]Clip, len(r.clips))
	copy(out, r.clips)
	return out
}

// At returns the index of the first clip containing pos, or -1.
func (r *Registry) At(pos time.Duration) int {
	for _, c := range r.clips {
		if c.Contains(pos) {
			return c.Index
		}
	}
	return -1
}
