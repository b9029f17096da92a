package player

import (
	"bytes"
	"io"
	"testing"
)

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"song.MP3", true},
		{"song.flac", true},
		{"song.wav", true},
		{"song.ogg", true},
		{"song.oga", true},
		{"song.opus", false},
		{"notes.txt", false},
		{"noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsAudioFile(tt.path); got != tt.want {
				t.Errorf("IsAudioFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestSkipID3v2(t *testing.T) {
	t.Run("tag is skipped", func(t *testing.T) {
		// header declares a 5 byte body
		data := append([]byte("ID3\x04\x00\x00\x00\x00\x00\x05"), []byte("xxxxxfLaC")...)
		r := bytes.NewReader(data)

		if err := skipID3v2(r); err != nil {
			t.Fatalf("skipID3v2() error = %v", err)
		}
		rest, _ := io.ReadAll(r)
		if string(rest) != "fLaC" {
			t.Errorf("remaining = %q, want %q", rest, "fLaC")
		}
	})

	t.Run("no tag rewinds", func(t *testing.T) {
		r := bytes.NewReader([]byte("fLaC\x00\x00\x00\x22abcdef"))

		if err := skipID3v2(r); err != nil {
			t.Fatalf("skipID3v2() error = %v", err)
		}
		pos, _ := r.Seek(0, io.SeekCurrent)
		if pos != 0 {
			t.Errorf("position = %d, want 0", pos)
		}
	})

	t.Run("short input rewinds", func(t *testing.T) {
		r := bytes.NewReader([]byte("ID3"))

		if err := skipID3v2(r); err != nil {
			t.Fatalf("skipID3v2() error = %v", err)
		}
		pos, _ := r.Seek(0, io.SeekCurrent)
		if pos != 0 {
			t.Errorf("position = %d, want 0", pos)
		}
	})
}

func TestTrackInfo_Header(t *testing.T) {
	var nilInfo *TrackInfo
	if nilInfo.Header() != "" {
		t.Error("nil TrackInfo should render empty header")
	}
	if got := (&TrackInfo{Title: "Blue"}).Header(); got != "Blue" {
		t.Errorf("Header() = %q", got)
	}
	if got := (&TrackInfo{Title: "Blue", Artist: "Joni"}).Header(); got != "Joni - Blue" {
		t.Errorf("Header() = %q", got)
	}
}
