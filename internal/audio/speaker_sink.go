package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SpeakerSink проигрывает потоки через beep/speaker (терминальная версия).
type SpeakerSink struct {
	sr beep.SampleRate
}

// NewSpeakerSink инициализирует динамик с буфером 100 мс.
func NewSpeakerSink(sr beep.SampleRate) (*SpeakerSink, error) {
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return &SpeakerSink{sr: sr}, nil
}

func (s *SpeakerSink) Play(stream beep.Streamer) error {
	speaker.Play(stream)
	return nil
}

func (s *SpeakerSink) Close() {
	speaker.Close()
}
