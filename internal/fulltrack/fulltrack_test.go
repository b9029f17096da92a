package fulltrack

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/clipnotes/internal/binding"
	"github.com/llehouerou/clipnotes/internal/player"
)

type sinks struct {
	icon     *binding.IconValue
	progress *binding.ProgressValue
	elapsed  *binding.TextValue
	duration *binding.TextValue
}

func newAdapter(t *testing.T, duration time.Duration) (*Adapter, *player.Mock, sinks) {
	t.Helper()
	m := player.NewMock()
	m.SetDuration(duration)
	require.NoError(t, m.Load("/music/track.mp3"))

	s := sinks{
		icon:     &binding.IconValue{},
		progress: &binding.ProgressValue{},
		elapsed:  &binding.TextValue{},
		duration: &binding.TextValue{},
	}
	a := New(m, Sinks{
		Icon:     s.icon,
		Progress: s.progress,
		Elapsed:  s.elapsed,
		Duration: s.duration,
	})
	return a, m, s
}

func TestToggle(t *testing.T) {
	a, m, s := newAdapter(t, 40*time.Second)

	require.NoError(t, a.Toggle())
	assert.Equal(t, player.Playing, m.State())
	a.HandleEvent(player.StateChange{Previous: player.Paused, Current: player.Playing})
	assert.True(t, s.icon.Playing())

	require.NoError(t, a.Toggle())
	assert.Equal(t, player.Paused, m.State())
	a.HandleEvent(player.StateChange{Previous: player.Playing, Current: player.Paused})
	assert.False(t, s.icon.Playing())
}

func TestHandleEvent_Position(t *testing.T) {
	a, m, s := newAdapter(t, 40*time.Second)

	a.HandleEvent(player.DurationChange{Duration: 40 * time.Second})
	assert.Equal(t, "0:40", s.duration.Value())

	m.SetPosition(10 * time.Second)
	a.HandleEvent(player.PositionChange{Position: 10 * time.Second})

	assert.InDelta(t, 25.0, s.progress.Percent(), 1e-9)
	assert.Equal(t, "0:10", s.elapsed.Value())
}

func TestHandleEvent_DeferredWhileDurationUnknown(t *testing.T) {
	a, m, s := newAdapter(t, 0)

	m.SetPosition(10 * time.Second)
	a.HandleEvent(player.PositionChange{Position: 10 * time.Second})

	assert.False(t, s.elapsed.IsSet())
	assert.Zero(t, s.progress.Percent())

	a.HandleEvent(player.DurationChange{Duration: 0})
	assert.False(t, s.duration.IsSet())

	// metadata arrives, the deferred position shows up
	m.SetDuration(20 * time.Second)
	a.HandleEvent(player.DurationChange{Duration: 20 * time.Second})
	assert.Equal(t, "0:20", s.duration.Value())
	assert.InDelta(t, 50.0, s.progress.Percent(), 1e-9)
	assert.Equal(t, "0:10", s.elapsed.Value())
}

func TestScrub(t *testing.T) {
	tests := []struct {
		name  string
		x     int
		width int
		want  time.Duration
	}{
		{"start", 0, 40, 0},
		{"quarter", 10, 40, 10 * time.Second},
		{"end", 40, 40, 40 * time.Second},
		{"left of track clamps", -3, 40, 0},
		{"right of track clamps", 55, 40, 40 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, m, _ := newAdapter(t, 40*time.Second)

			a.Scrub(tt.x, tt.width)

			require.Len(t, m.SeekCalls(), 1)
			assert.Equal(t, tt.want, m.SeekCalls()[0])
		})
	}
}

func TestScrub_NoOps(t *testing.T) {
	t.Run("duration unknown", func(t *testing.T) {
		a, m, _ := newAdapter(t, 0)
		a.Scrub(10, 40)
		assert.Empty(t, m.SeekCalls())
	})

	t.Run("zero width", func(t *testing.T) {
		a, m, _ := newAdapter(t, 40*time.Second)
		a.Scrub(10, 0)
		assert.Empty(t, m.SeekCalls())
	})
}

func TestSeek(t *testing.T) {
	a, m, _ := newAdapter(t, 40*time.Second)
	m.SetPosition(10 * time.Second)

	a.Seek(5 * time.Second)
	assert.Equal(t, 15*time.Second, m.Position())

	a.Seek(-30 * time.Second)
	assert.Equal(t, time.Duration(0), m.Position())
}

func TestSeek_UnloadedIsNoOp(t *testing.T) {
	m := player.NewMock()
	a := New(m, Sinks{})

	a.Seek(5 * time.Second)

	assert.Empty(t, m.SeekCalls())
}

func TestNilSinks(t *testing.T) {
	m := player.NewMock()
	m.SetDuration(10 * time.Second)
	require.NoError(t, m.Load("/music/track.mp3"))
	a := New(m, Sinks{})

	// must not panic
	a.HandleEvent(player.StateChange{Current: player.Playing})
	a.HandleEvent(player.DurationChange{Duration: 10 * time.Second})
	a.HandleEvent(player.PositionChange{Position: time.Second})
}

func TestSnapshot(t *testing.T) {
	a, m, _ := newAdapter(t, 40*time.Second)
	m.SetPosition(12 * time.Second)

	assert.Equal(t, Snapshot{
		State:    player.Paused,
		Position: 12 * time.Second,
		Duration: 40 * time.Second,
	}, a.Snapshot())
}
