package mpris

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/llehouerou/clipnotes/internal/player"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name      string
		cmd       Command
		state     player.State
		wantState player.State
		wantPos   time.Duration
	}{
		{"play", Command{Kind: Play}, player.Paused, player.Playing, 10 * time.Second},
		{"pause", Command{Kind: Pause}, player.Playing, player.Paused, 10 * time.Second},
		{"toggle from playing", Command{Kind: PlayPause}, player.Playing, player.Paused, 10 * time.Second},
		{"toggle from paused", Command{Kind: PlayPause}, player.Paused, player.Playing, 10 * time.Second},
		{"stop rewinds", Command{Kind: Stop}, player.Playing, player.Paused, 0},
		{"relative seek", Command{Kind: Seek, Offset: 5 * time.Second}, player.Paused, player.Paused, 15 * time.Second},
		{"absolute seek", Command{Kind: SetPosition, Offset: 42 * time.Second}, player.Paused, player.Paused, 42 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := player.NewMock()
			m.SetSource("/music/track.mp3")
			m.SetDuration(time.Minute)
			m.SetState(tt.state)
			m.SetPosition(10 * time.Second)

			if err := Apply(tt.cmd, m); err != nil {
				t.Fatalf("Apply(%v) error: %v", tt.cmd.Kind, err)
			}
			if got := m.State(); got != tt.wantState {
				t.Errorf("State() = %v, want %v", got, tt.wantState)
			}
			if got := m.Position(); got != tt.wantPos {
				t.Errorf("Position() = %v, want %v", got, tt.wantPos)
			}
		})
	}
}

func TestApply_PlayError(t *testing.T) {
	m := player.NewMock()
	if err := Apply(Command{Kind: Play}, m); !errors.Is(err, player.ErrNotLoaded) {
		t.Errorf("Apply(Play) on unloaded = %v, want ErrNotLoaded", err)
	}
}

func TestKindString(t *testing.T) {
	if got := SetPosition.String(); got != "SetPosition" {
		t.Errorf("String() = %q", got)
	}
	if got := Kind(99).String(); got != "Unknown" {
		t.Errorf("String() = %q", got)
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("fake"), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestFindCoverArt(t *testing.T) {
	dir := t.TempDir()
	coverPath := filepath.Join(dir, "cover.jpg")
	touch(t, coverPath)

	got := FindCoverArt(filepath.Join(dir, "track.mp3"))
	if got != coverPath {
		t.Errorf("FindCoverArt() = %q, want %q", got, coverPath)
	}
}

func TestFindCoverArt_NotFound(t *testing.T) {
	dir := t.TempDir()

	if got := FindCoverArt(filepath.Join(dir, "track.mp3")); got != "" {
		t.Errorf("FindCoverArt() = %q, want empty string", got)
	}
}

func TestFindCoverArt_Priority(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "folder.jpg"))
	touch(t, filepath.Join(dir, "cover.png"))
	own := filepath.Join(dir, "so-what.jpg")
	touch(t, own)

	got := FindCoverArt(filepath.Join(dir, "so-what.mp3"))
	if got != own {
		t.Errorf("FindCoverArt() = %q, want %q (same base name first)", got, own)
	}

	if err := os.Remove(own); err != nil {
		t.Fatal(err)
	}
	got = FindCoverArt(filepath.Join(dir, "so-what.mp3"))
	if want := filepath.Join(dir, "cover.png"); got != want {
		t.Errorf("FindCoverArt() = %q, want %q", got, want)
	}
}
