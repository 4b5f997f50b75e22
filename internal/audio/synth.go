// Package audio синтезирует короткие звуковые сигналы игры через beep
// и проигрывает их через подключаемый вывод.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Cue — звуковой сигнал
type Cue int

const (
	CueReveal Cue = iota // Угаданная буква
	CueWrong             // Промах
	CueWin               // Победа
	CueLose              // Поражение
)

func (c Cue) String() string {
	switch c {
	case CueReveal:
		return "reveal"
	case CueWrong:
		return "wrong"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	}
	return "unknown"
}

type note struct {
	freq float64
	dur  time.Duration
}

var (
	winNotes  = []note{{523.25, 110 * time.Millisecond}, {659.25, 110 * time.Millisecond}, {783.99, 110 * time.Millisecond}, {1046.5, 260 * time.Millisecond}}
	loseNotes = []note{{392.0, 180 * time.Millisecond}, {329.63, 180 * time.Millisecond}, {261.63, 380 * time.Millisecond}}
)

// Synth строит конечный поток для сигнала.
func Synth(cue Cue, sr beep.SampleRate) (beep.Streamer, error) {
	switch cue {
	case CueReveal:
		return melody(sr, []note{{880, 60 * time.Millisecond}}, -0.8)
	case CueWrong:
		return beep.Take(sr.N(150*time.Millisecond), NewBuzzGenerator(sr, 120)), nil
	case CueWin:
		return melody(sr, winNotes, -0.75)
	case CueLose:
		return melody(sr, loseNotes, -0.7)
	}
	return nil, fmt.Errorf("unknown cue %d", cue)
}

// melody — последовательность синусов с паузами между нотами.
func melody(sr beep.SampleRate, notes []note, gain float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes)*2)
	for _, n := range notes {
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("failed to build tone %.0fHz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(sr.N(n.dur), tone), beep.Silence(sr.N(15*time.Millisecond)))
	}
	return &effects.Gain{Streamer: beep.Seq(parts...), Gain: gain}, nil
}

// BuzzGenerator — низкий "зуммер" с гармониками и мягкой атакой.
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.15*math.Sin(2*math.Pi*g.freq*2*t) +
			0.075*math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
