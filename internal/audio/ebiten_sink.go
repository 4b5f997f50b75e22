package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// EbitenSink проигрывает потоки через аудио-контекст ebiten.
// В процессе может быть только один контекст ebiten, поэтому для окна
// используется он, а не beep/speaker.
type EbitenSink struct {
	mu      sync.Mutex
	ctx     *ebaudio.Context
	players []*ebaudio.Player
}

func NewEbitenSink(sampleRate int) *EbitenSink {
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(sampleRate)
	}
	return &EbitenSink{ctx: ctx}
}

// SampleRate — частота контекста в терминах beep.
func (s *EbitenSink) SampleRate() beep.SampleRate {
	return beep.SampleRate(s.ctx.SampleRate())
}

func (s *EbitenSink) Play(stream beep.Streamer) error {
	p, err := s.ctx.NewPlayer(NewPCMReader(stream))
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	p.Play()

	s.mu.Lock()
	defer s.mu.Unlock()
	// Держим ссылки на играющие плееры, отпуская закончившиеся.
	alive := s.players[:0]
	for _, old := range s.players {
		if old.IsPlaying() {
			alive = append(alive, old)
		} else {
			old.Close()
		}
	}
	s.players = append(alive, p)
	return nil
}
