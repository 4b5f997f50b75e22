// Package round содержит машину состояний одного раунда виселицы:
// выбранное слово, угаданные и ошибочные буквы, очередь частей фигуры.
package round

import (
	"fmt"
	"strings"
	"unicode"

	"go-hangman/internal/event"

	"github.com/rs/zerolog/log"
)

// Round — состояние раунда. Принадлежит игровому циклу, не потокобезопасен.
type Round struct {
	word    []rune
	guessed map[rune]struct{}
	wrong   []rune
	parts   *Sequencer
	phase   Phase

	dispatcher *event.Dispatcher
}

// New создает раунд в фазе NotStarted. dispatcher может быть nil.
func New(dispatcher *event.Dispatcher) *Round {
	return &Round{
		guessed:    make(map[rune]struct{}),
		parts:      NewSequencer(),
		phase:      NotStarted,
		dispatcher: dispatcher,
	}
}

// Start начинает новый раунд с указанным словом, отбрасывая прежнее состояние.
func (r *Round) Start(word string) error {
	normalized, err := NormalizeWord(word)
	if err != nil {
		return err
	}

	r.word = []rune(normalized)
	r.guessed = make(map[rune]struct{})
	r.wrong = r.wrong[:0]
	r.parts.Reset()
	r.phase = InProgress

	log.Debug().Str("word", normalized).Msg("round started")
	r.dispatcher.Dispatch(event.Event{Type: event.RoundStarted, Data: len(r.word)})
	return nil
}

// Guess обрабатывает одну букву. Регистр не важен.
func (r *Round) Guess(letter rune) (Outcome, error) {
	if r.phase != InProgress {
		return AlreadyGuessed, fmt.Errorf("%w: guess in phase %s", ErrInvalidState, r.phase)
	}
	letter = unicode.ToUpper(letter)
	if letter < 'A' || letter > 'Z' {
		return AlreadyGuessed, fmt.Errorf("%w: %q", ErrInvalidLetter, letter)
	}
	if r.seen(letter) {
		return AlreadyGuessed, nil
	}

	if r.contains(letter) {
		r.guessed[letter] = struct{}{}
		r.dispatcher.Dispatch(event.Event{Type: event.LetterRevealed, Data: letter})
		if r.allRevealed() {
			r.phase = Won
			log.Info().Str("word", string(r.word)).Int("wrong", len(r.wrong)).Msg("round won")
			r.dispatcher.Dispatch(event.Event{Type: event.RoundWon, Data: string(r.word)})
		}
		return Correct, nil
	}

	r.wrong = append(r.wrong, letter)
	part, err := r.parts.PopNext()
	if err != nil {
		// Недостижимо при корректной последовательности: промах после
		// шестого уже невозможен, раунд к тому времени проигран.
		log.Warn().Err(err).Str("letter", string(letter)).Msg("part queue exhausted, forcing loss")
		r.lose()
		return Wrong, nil
	}
	r.dispatcher.Dispatch(event.Event{Type: event.LetterMissed, Data: Miss{Letter: letter, Removed: part}})
	if r.parts.IsEmpty() {
		r.lose()
	}
	return Wrong, nil
}

func (r *Round) lose() {
	r.phase = Lost
	log.Info().Str("word", string(r.word)).Msg("round lost")
	r.dispatcher.Dispatch(event.Event{Type: event.RoundLost, Data: string(r.word)})
}

// Display возвращает слово, где неугаданные позиции заменены на Blank.
func (r *Round) Display() []rune {
	out := make([]rune, len(r.word))
	for i, ch := range r.word {
		if _, ok := r.guessed[ch]; ok {
			out[i] = ch
		} else {
			out[i] = Blank
		}
	}
	return out
}

func (r *Round) Phase() Phase {
	return r.phase
}

// Word возвращает загаданное слово.
func (r *Round) Word() string {
	return string(r.word)
}

// Wrong возвращает копию ошибочных букв в порядке ввода.
func (r *Round) Wrong() []rune {
	out := make([]rune, len(r.wrong))
	copy(out, r.wrong)
	return out
}

// GuessedCount — число различных угаданных букв.
func (r *Round) GuessedCount() int {
	return len(r.guessed)
}

// Remaining возвращает оставшиеся части фигуры.
func (r *Round) Remaining() []Part {
	return r.parts.Remaining()
}

// Visible возвращает карту видимости всех шести частей.
func (r *Round) Visible() map[Part]bool {
	visible := make(map[Part]bool, PartCount)
	for _, p := range RemovalOrder {
		visible[p] = false
	}
	for _, p := range r.parts.Remaining() {
		visible[p] = true
	}
	return visible
}

// Snapshot собирает копию состояния для рендера.
func (r *Round) Snapshot() Snapshot {
	s := Snapshot{
		Phase:      r.phase,
		WordLength: len(r.word),
		Display:    r.Display(),
		Wrong:      r.Wrong(),
		Visible:    r.Visible(),
		Remaining:  r.parts.Len(),
	}
	if r.phase == Lost {
		s.Word = string(r.word)
	}
	return s
}

func (r *Round) seen(letter rune) bool {
	if _, ok := r.guessed[letter]; ok {
		return true
	}
	for _, w := range r.wrong {
		if w == letter {
			return true
		}
	}
	return false
}

func (r *Round) contains(letter rune) bool {
	for _, ch := range r.word {
		if ch == letter {
			return true
		}
	}
	return false
}

func (r *Round) allRevealed() bool {
	for _, ch := range r.word {
		if _, ok := r.guessed[ch]; !ok {
			return false
		}
	}
	return true
}

// NormalizeWord приводит слово к верхнему регистру и проверяет, что оно
// состоит только из букв A-Z.
func NormalizeWord(word string) (string, error) {
	w := strings.ToUpper(strings.TrimSpace(word))
	if w == "" {
		return "", fmt.Errorf("%w: empty", ErrMalformedWord)
	}
	for _, ch := range w {
		if ch < 'A' || ch > 'Z' {
			return "", fmt.Errorf("%w: %q", ErrMalformedWord, word)
		}
	}
	return w, nil
}
