package stderr

import (
	"io"
	"os"
	"strings"
	"testing"
)

func TestForward(t *testing.T) {
	in := strings.NewReader("ALSA lib pcm.c: underrun\n\n   \n  trailing spaces  \n")
	out := make(chan string, 10)
	done := make(chan struct{})

	forward(in, out, done)
	<-done

	var got []string
	for line := range out {
		got = append(got, line)
	}
	want := []string{"ALSA lib pcm.c: underrun", "trailing spaces"}
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestForward_DropsWhenFull(t *testing.T) {
	in := strings.NewReader("one\ntwo\nthree\n")
	out := make(chan string, 1)
	done := make(chan struct{})

	forward(in, out, done)
	<-done

	first, ok := <-out
	if !ok || first != "one" {
		t.Errorf("first = %q, %v; want \"one\", true", first, ok)
	}
	if _, ok := <-out; ok {
		t.Error("expected channel closed after the buffered line")
	}
}

func TestStop_NilCapture(t *testing.T) {
	var c *Capture
	c.Stop()
}

func TestWriteOriginal_WithoutCapture(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	saved := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = saved }()

	WriteOriginal("config: bad theme\n")
	w.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "config: bad theme\n" {
		t.Errorf("got %q", got)
	}
}
