package player

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
)

// TrackInfo describes the audio bound to a surface.
type TrackInfo struct {
	Path       string
	Title      string
	Artist     string
	Album      string
	Year       int
	Duration   time.Duration
	Format     string
	SampleRate int
}

// ReadTrackInfo reads the tags of the file at path. Files without readable
// tags fall back to the file name as title.
func ReadTrackInfo(path string) *TrackInfo {
	info := &TrackInfo{
		Path:  path,
		Title: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}

	f, err := os.Open(path)
	if err != nil {
		return info
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return info
	}

	if title := strings.TrimSpace(m.Title()); title != "" {
		info.Title = title
	}
	info.Artist = m.Artist()
	if info.Artist == "" {
		info.Artist = m.AlbumArtist()
	}
	info.Album = m.Album()
	info.Year = m.Year()
	return info
}

// Header is the one-line description shown above the full-track bar.
func (t *TrackInfo) Header() string {
	if t == nil {
		return ""
	}
	if t.Artist == "" {
		return t.Title
	}
	return t.Artist + " - " + t.Title
}
