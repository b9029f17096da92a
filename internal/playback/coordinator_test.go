package playback

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/clipnotes/internal/binding"
	"github.com/llehouerou/clipnotes/internal/clip"
	"github.com/llehouerou/clipnotes/internal/player"
	"github.com/llehouerou/clipnotes/internal/snippet"
)

const source = "/music/track.mp3"

type fixture struct {
	coord    *Coordinator
	adapter  *snippet.Adapter
	surface  *player.Mock
	label    *binding.TextValue
	sections *binding.MarkerSet
	progress *binding.ProgressValue
}

func newFixture() *fixture {
	f := &fixture{
		surface:  player.NewMock(),
		label:    &binding.TextValue{},
		sections: binding.NewMarkerSet(),
		progress: &binding.ProgressValue{},
	}
	f.surface.SetDuration(40 * time.Second)
	f.adapter = snippet.New(f.surface, source, snippet.Sinks{Progress: f.progress})
	f.coord = NewCoordinator(testClips(), f.adapter, Sinks{
		Label:    f.label,
		Sections: f.sections,
	})
	return f
}

func TestCoordinator_Initialization(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.coord.Init())

	idx, ok := f.coord.Section()
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "Intro", f.label.Value())
	assert.Equal(t, time.Duration(0), f.surface.Position())
	assert.Equal(t, player.Paused, f.surface.State())
	assert.True(t, f.sections.IsActive(0))
}

func TestCoordinator_SwitchWhilePlaying(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.coord.Init())
	require.NoError(t, f.coord.OnFocusChange(1))
	require.NoError(t, f.adapter.TogglePlay())
	f.surface.SetPosition(18 * time.Second)
	f.adapter.HandleEvent(player.PositionChange{Position: 18 * time.Second})

	require.NoError(t, f.coord.OnFocusChange(2))

	assert.Equal(t, 25*time.Second, f.surface.Position())
	assert.Equal(t, player.Playing, f.surface.State())
	assert.Equal(t, "Chorus", f.label.Value())
	assert.Zero(t, f.progress.Percent())
	assert.True(t, f.sections.IsActive(2))
	assert.False(t, f.sections.IsActive(1))
}

func TestCoordinator_SwitchWhilePaused(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.coord.Init())
	f.surface.SetPosition(5 * time.Second)

	require.NoError(t, f.coord.OnFocusChange(1))

	assert.Equal(t, 10*time.Second, f.surface.Position())
	assert.Equal(t, player.Paused, f.surface.State())
}

func TestCoordinator_IdempotentFocus(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.coord.Init())
	require.NoError(t, f.coord.OnFocusChange(1))
	require.NoError(t, f.adapter.TogglePlay())
	f.surface.SetPosition(18 * time.Second)
	seeks := len(f.surface.SeekCalls())

	for range 5 {
		require.NoError(t, f.coord.OnFocusChange(1))
	}

	idx, _ := f.coord.Section()
	assert.Equal(t, 1, idx)
	assert.Len(t, f.surface.SeekCalls(), seeks, "repeated focus must not re-seek")
	assert.Equal(t, 18*time.Second, f.surface.Position())
	assert.Equal(t, player.Playing, f.surface.State())
}

func TestCoordinator_ClipEndThenFocusChange(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.coord.Init())
	require.NoError(t, f.coord.OnFocusChange(1))
	require.NoError(t, f.adapter.TogglePlay())

	f.surface.SetPosition(25 * time.Second)
	f.adapter.HandleEvent(player.PositionChange{Position: 25 * time.Second})

	assert.Equal(t, player.Paused, f.surface.State())
	assert.Equal(t, 10*time.Second, f.surface.Position())
	assert.Equal(t, 100.0, f.progress.Percent())

	require.NoError(t, f.coord.OnFocusChange(2))
	assert.Zero(t, f.progress.Percent())
	assert.Equal(t, player.Paused, f.surface.State(), "a finished clip does not resume the next one")
}

type failingSnippet struct {
	calls int
}

func (s *failingSnippet) IsPlaying() bool { return false }

func (s *failingSnippet) SetActiveClip(clip.Clip, bool) error {
	s.calls++
	return errors.New("load failed")
}

func TestCoordinator_SnippetFailureStillUpdatesDisplay(t *testing.T) {
	snip := &failingSnippet{}
	label := &binding.TextValue{}
	marks := binding.NewMarkerSet()
	c := NewCoordinator(testClips(), snip, Sinks{Label: label, Sections: marks})

	err := c.Init()

	require.Error(t, err)
	assert.Equal(t, 1, snip.calls)
	assert.Equal(t, "Intro", label.Value())
	assert.True(t, marks.IsActive(0))
	idx, ok := c.Section()
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestCoordinator_NilCollaborators(t *testing.T) {
	c := NewCoordinator(testClips(), nil, Sinks{})

	require.NoError(t, c.Init())
	require.NoError(t, c.OnFocusChange(2))

	idx, _ := c.Section()
	assert.Equal(t, 2, idx)
}
