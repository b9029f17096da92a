package player

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
	extOGG  = ".ogg"
	extOGA  = ".oga"
)

// ErrUnsupportedFormat is returned for files no decoder handles.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// IsAudioFile reports whether path has an extension a surface can play.
func IsAudioFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3, extFLAC, extWAV, extOGG, extOGA:
		return true
	}
	return false
}

// decode picks a decoder from the file extension. The returned codec name is
// shown in the player header.
func decode(f *os.File) (beep.StreamSeekCloser, beep.Format, string, error) {
	ext := strings.ToLower(filepath.Ext(f.Name()))

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
		codec    string
	)
	switch ext {
	case extMP3:
		streamer, format, err = decodeGoMP3(f)
		codec = "MP3"
	case extFLAC:
		// Some taggers prepend ID3v2 to FLAC files
		if err := skipID3v2(f); err != nil {
			return nil, beep.Format{}, "", err
		}
		streamer, format, err = flac.Decode(f)
		codec = "FLAC"
	case extWAV:
		streamer, format, err = wav.Decode(f)
		codec = "WAV"
	case extOGG, extOGA:
		streamer, format, err = vorbis.Decode(f)
		codec = "VORBIS"
	default:
		return nil, beep.Format{}, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, beep.Format{}, "", fmt.Errorf("decode %s: %w", codec, err)
	}
	return streamer, format, codec, nil
}

// skipID3v2 skips an ID3v2 tag if present at the beginning of r.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return err
	}
	if n < 10 || string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// syncsafe integer: 7 bits per byte
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
