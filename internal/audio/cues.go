package audio

import (
	"sync"

	"go-hangman/internal/event"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog/log"
)

// Sink — устройство вывода звука.
type Sink interface {
	Play(s beep.Streamer) error
}

// Cues слушает события раунда и проигрывает соответствующие сигналы.
type Cues struct {
	mu     sync.Mutex
	sink   Sink
	sr     beep.SampleRate
	muted  bool
	played []Cue
}

// NewCues создает слушателя. sink может быть nil, тогда звук выключен.
func NewCues(sink Sink, sr beep.SampleRate, muted bool) *Cues {
	return &Cues{sink: sink, sr: sr, muted: muted || sink == nil}
}

// Attach подписывает Cues на события раунда.
func (c *Cues) Attach(d *event.Dispatcher) {
	d.SubscribeAll(c, event.LetterRevealed, event.LetterMissed, event.RoundWon, event.RoundLost)
}

// OnEvent реализует интерфейс event.Listener.
func (c *Cues) OnEvent(e event.Event) {
	switch e.Type {
	case event.LetterRevealed:
		c.Play(CueReveal)
	case event.LetterMissed:
		c.Play(CueWrong)
	case event.RoundWon:
		c.Play(CueWin)
	case event.RoundLost:
		c.Play(CueLose)
	}
}

// Play синтезирует и проигрывает сигнал.
func (c *Cues) Play(cue Cue) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.played = append(c.played, cue)
	if c.muted {
		return
	}
	s, err := Synth(cue, c.sr)
	if err != nil {
		log.Warn().Err(err).Str("cue", cue.String()).Msg("cue synthesis failed")
		return
	}
	if err := c.sink.Play(s); err != nil {
		log.Warn().Err(err).Str("cue", cue.String()).Msg("cue playback failed")
	}
}

// SetMuted включает и выключает звук.
func (c *Cues) SetMuted(muted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = muted || c.sink == nil
}

// Played — история запрошенных сигналов, включая заглушённые.
func (c *Cues) Played() []Cue {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Cue(nil), c.played...)
}
