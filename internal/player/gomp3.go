package player

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/go-mp3"
)

// mp3FrameBytes is one interleaved stereo frame of signed 16-bit samples,
// the only output go-mp3 produces.
const mp3FrameBytes = 4

var errMP3SampleRate = errors.New("mp3: stream reports no sample rate")

// mp3Stream adapts llehouerou/go-mp3 to beep. go-mp3 seeks to an exact
// sample, so a clip starts where its section says.
type mp3Stream struct {
	dec    *mp3.Decoder
	closer io.Closer
	pcm    []byte
	err    error
}

func decodeGoMP3(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	dec, err := mp3.NewDecoder(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}
	rate := dec.SampleRate()
	if rate <= 0 {
		return nil, beep.Format{}, errMP3SampleRate
	}
	format := beep.Format{SampleRate: beep.SampleRate(rate), NumChannels: 2, Precision: 2}
	return &mp3Stream{dec: dec, closer: rc}, format, nil
}

// Stream fills samples from the decoder. A short read at the end of the
// file still delivers the frames it got.
func (s *mp3Stream) Stream(samples [][2]float64) (int, bool) {
	if s.err != nil {
		return 0, false
	}

	want := len(samples) * mp3FrameBytes
	if cap(s.pcm) < want {
		s.pcm = make([]byte, want)
	}
	got, err := io.ReadFull(s.dec, s.pcm[:want])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		s.err = err
		return 0, false
	}

	n := got / mp3FrameBytes
	if n == 0 {
		return 0, false
	}
	toFloat(samples[:n], s.pcm[:n*mp3FrameBytes])
	return n, true
}

// toFloat converts interleaved s16le stereo frames to beep samples.
func toFloat(dst [][2]float64, pcm []byte) {
	for i := range dst {
		frame := pcm[i*mp3FrameBytes:]
		dst[i][0] = float64(int16(binary.LittleEndian.Uint16(frame[0:]))) / 32768 //nolint:gosec // PCM reinterpretation
		dst[i][1] = float64(int16(binary.LittleEndian.Uint16(frame[2:]))) / 32768 //nolint:gosec // PCM reinterpretation
	}
}

func (s *mp3Stream) Err() error { return s.err }

// Len is the stream length in samples, 0 when the file does not say.
func (s *mp3Stream) Len() int {
	return int(max(s.dec.SampleCount(), 0))
}

func (s *mp3Stream) Position() int {
	return int(s.dec.SamplePosition())
}

// Seek clamps p to the stream and clears a previous read error, so a cursor
// that hit a bad frame can be moved past it.
func (s *mp3Stream) Seek(p int) error {
	p = max(p, 0)
	if n := s.Len(); n > 0 {
		p = min(p, n)
	}
	if err := s.dec.SeekToSample(int64(p)); err != nil {
		return err
	}
	s.err = nil
	return nil
}

func (s *mp3Stream) Close() error { return s.closer.Close() }
