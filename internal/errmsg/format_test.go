package errmsg

import (
	"errors"
	"io/fs"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		op   Op
		err  error
		want string
	}{
		{OpPostsLoad, nil, ""},
		{OpPostsLoad, errors.New("posts.json: no such file"), "Failed to load posts: posts.json: no such file"},
		{OpAudioLoad, errors.New("unsupported format"), "Failed to load audio: unsupported format"},
		{OpSnippetStart, errors.New("no audio loaded"), "Failed to play snippet: no audio loaded"},
		{OpStateSave, errors.New("database is locked"), "Failed to save reading position: database is locked"},
	}
	for _, tt := range tests {
		if got := Format(tt.op, tt.err); got != tt.want {
			t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, got, tt.want)
		}
	}
}

func TestFormatWith(t *testing.T) {
	noAudio := errors.New("no audio")

	tests := []struct {
		name    string
		subject string
		err     error
		want    string
	}{
		{"nil error", "Blue in Green", nil, ""},
		{"no subject", "", noAudio, "Failed to open post: no audio"},
		{"quoted subject", "Blue in Green", noAudio, "Failed to open post 'Blue in Green': no audio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWith(OpPostOpen, tt.subject, tt.err); got != tt.want {
				t.Errorf("FormatWith() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if err := Wrap(OpConfigLoad, nil); err != nil {
		t.Fatalf("Wrap(nil) = %v, want nil", err)
	}

	err := Wrap(OpConfigLoad, fs.ErrPermission)
	if got, want := err.Error(), "Failed to load configuration: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("wrapped error should match its cause")
	}

	var tagged *Error
	if !errors.As(err, &tagged) || tagged.Op != OpConfigLoad {
		t.Errorf("errors.As = %+v", tagged)
	}
}
