package audio

import (
	"io"

	"go-hangman/internal/utils"

	"github.com/gopxl/beep"
)

// PCMReader превращает beep.Streamer в поток 16-bit little-endian стерео,
// который ожидает ebiten/audio.
type PCMReader struct {
	s    beep.Streamer
	buf  [][2]float64
	done bool
}

func NewPCMReader(s beep.Streamer) *PCMReader {
	return &PCMReader{s: s}
}

func (r *PCMReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, io.EOF
	}
	frames := len(p) / 4
	if frames == 0 {
		return 0, nil
	}
	if cap(r.buf) < frames {
		r.buf = make([][2]float64, frames)
	}
	buf := r.buf[:frames]

	n, ok := r.s.Stream(buf)
	for i := 0; i < n; i++ {
		for c := 0; c < 2; c++ {
			v := toInt16(buf[i][c])
			p[i*4+c*2] = byte(v)
			p[i*4+c*2+1] = byte(v >> 8)
		}
	}
	if !ok {
		r.done = true
		if n == 0 {
			if err := r.s.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
	}
	return n * 4, nil
}

func toInt16(v float64) int16 {
	return int16(utils.Clamp(v, -1, 1) * 32767)
}
