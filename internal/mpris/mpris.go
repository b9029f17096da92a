//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/clipnotes/internal/player"
)

// busName is the MPRIS name suffix: org.mpris.MediaPlayer2.clipnotes.
const busName = "clipnotes"

// Source is the read side of the full-track player.
type Source interface {
	State() player.State
	Position() time.Duration
	Duration() time.Duration
	TrackInfo() *player.TrackInfo
}

// Adapter serves MPRIS for one full-track player.
type Adapter struct {
	server   *server.Server
	commands chan Command
	done     chan struct{}
}

// New starts serving MPRIS on the session bus.
func New(src Source) (*Adapter, error) {
	a := &Adapter{
		commands: make(chan Command, 16),
		done:     make(chan struct{}),
	}
	a.server = server.NewServer(busName, &rootAdapter{}, &playerAdapter{src: src, send: a.send})

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Commands delivers control requests. It is never closed; stop reading once
// Close has been called.
func (a *Adapter) Commands() <-chan Command {
	return a.commands
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	select {
	case <-a.done:
		return nil
	default:
	}
	close(a.done)
	if err := a.server.Stop(); err != nil {
		return fmt.Errorf("stop mpris server: %w", err)
	}
	return nil
}

func (a *Adapter) send(c Command) error {
	select {
	case a.commands <- c:
		return nil
	case <-a.done:
		return nil
	default:
		return fmt.Errorf("mpris: %s dropped, command queue full", c.Kind)
	}
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil
}

func (r *rootAdapter) Quit() error {
	return nil
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "clipnotes", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav", "audio/ogg"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	src  Source
	send func(Command) error
}

func (p *playerAdapter) Next() error {
	return nil
}

func (p *playerAdapter) Previous() error {
	return nil
}

func (p *playerAdapter) Pause() error {
	return p.send(Command{Kind: Pause})
}

func (p *playerAdapter) PlayPause() error {
	return p.send(Command{Kind: PlayPause})
}

func (p *playerAdapter) Stop() error {
	return p.send(Command{Kind: Stop})
}

func (p *playerAdapter) Play() error {
	return p.send(Command{Kind: Play})
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	return p.send(Command{Kind: Seek, Offset: time.Duration(offset) * time.Microsecond})
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	return p.send(Command{Kind: SetPosition, Offset: time.Duration(position) * time.Microsecond})
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.src.State() {
	case player.Playing:
		return types.PlaybackStatusPlaying, nil
	case player.Paused:
		return types.PlaybackStatusPaused, nil
	case player.Stopped:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	info := p.src.TrackInfo()
	if info == nil {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(info.Path)),
		Length:  types.Microseconds(p.src.Duration().Microseconds()),
		Title:   info.Title,
		Album:   info.Album,
	}
	if info.Artist != "" {
		meta.Artist = []string{info.Artist}
	}
	if art := FindCoverArt(info.Path); art != "" {
		meta.ArtUrl = "file://" + art
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.src.Position().Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.src.State().IsActive(), nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.src.Duration() > 0, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
