// internal/app/game.go
package app

import (
	"errors"
	"fmt"

	"go-hangman/internal/config"
	"go-hangman/internal/confetti"
	"go-hangman/internal/event"
	"go-hangman/internal/round"
	"go-hangman/internal/utils"
	"go-hangman/internal/words"

	"github.com/rs/zerolog/log"
)

// Mode — экран, на котором находится игрок.
type Mode int

const (
	ModeSelect Mode = iota // Выбор фигуры
	ModeReady              // Фигура выбрана, ждём Start
	ModeRound              // Раунд идёт или только что закончился
)

func (m Mode) String() string {
	switch m {
	case ModeSelect:
		return "select"
	case ModeReady:
		return "ready"
	case ModeRound:
		return "round"
	}
	return "unknown"
}

var (
	// ErrNoFigure — раунд нельзя начать, пока не выбрана фигура.
	ErrNoFigure = errors.New("app: figure style not chosen")
	// ErrWrongMode — команда не относится к текущему экрану.
	ErrWrongMode = errors.New("app: command not valid in this mode")
)

// Frame — всё, что нужно рендеру на один кадр.
type Frame struct {
	Mode        Mode
	Style       FigureStyle
	Round       round.Snapshot
	Particles   []confetti.Particle
	Celebrating bool
}

// Game — владелец раунда, конфетти и выбора слов. Вызывается только
// из одного игрового цикла.
type Game struct {
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	round    *round.Round
	confetti *confetti.Simulator
	picker   *words.Picker
	mode     Mode
	style    FigureStyle
	gameTime float64
}

// NewGame создает игру на экране выбора фигуры.
func NewGame(src words.Source, rng *utils.PRNGService) *Game {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	dispatcher := event.NewDispatcher()
	g := &Game{
		EventDispatcher: dispatcher,
		Rng:             rng,
		round:           round.New(dispatcher),
		confetti: confetti.NewSimulator(confetti.Bounds{
			Width:  config.ScreenWidth,
			Height: config.ScreenHeight,
		}, rng),
		picker: words.NewPicker(src, rng),
		mode:   ModeSelect,
	}

	listener := &GameEventListener{game: g}
	dispatcher.Subscribe(event.RoundWon, listener)
	dispatcher.Subscribe(event.RoundLost, listener)

	log.Info().Int("words", g.picker.Len()).Int64("seed", rng.Seed()).Msg("game created")
	return g
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.RoundWon:
		l.game.confetti.Activate(config.ConfettiDurationMs, config.ConfettiCount)
	case event.RoundLost:
		l.game.confetti.Reset()
	}
}

// ChooseStyle выбирает фигуру и переводит игру к кнопке Start.
func (g *Game) ChooseStyle(s FigureStyle) error {
	if g.mode != ModeSelect {
		return fmt.Errorf("%w: choose style in %s", ErrWrongMode, g.mode)
	}
	g.style = s
	g.mode = ModeReady
	log.Debug().Str("style", s.String()).Msg("figure chosen")
	g.EventDispatcher.Dispatch(event.Event{Type: event.FigureChosen, Data: s})
	return nil
}

// StartRound выбирает новое слово и начинает раунд.
func (g *Game) StartRound() error {
	if g.mode == ModeSelect {
		return ErrNoFigure
	}
	if err := g.round.Start(g.picker.Next()); err != nil {
		return err
	}
	g.confetti.Reset()
	g.mode = ModeRound
	return nil
}

// Guess передаёт букву раунду.
func (g *Game) Guess(letter rune) (round.Outcome, error) {
	if g.mode != ModeRound {
		return round.AlreadyGuessed, fmt.Errorf("%w: guess in %s", ErrWrongMode, g.mode)
	}
	return g.round.Guess(letter)
}

// Restart возвращает игрока к выбору фигуры после окончания раунда.
func (g *Game) Restart() error {
	if g.mode != ModeRound || !g.round.Phase().Finished() {
		return fmt.Errorf("%w: restart before round end", ErrWrongMode)
	}
	g.mode = ModeSelect
	return nil
}

// HandleRune — ввод символа с клавиатуры: цифры на экране выбора,
// буквы во время раунда.
func (g *Game) HandleRune(r rune) {
	var err error
	switch g.mode {
	case ModeSelect:
		if s, ok := StyleForKey(r); ok {
			err = g.ChooseStyle(s)
		}
	case ModeReady:
		if r == ' ' {
			err = g.StartRound()
		}
	case ModeRound:
		if g.round.Phase() == round.InProgress {
			_, err = g.round.Guess(r)
		}
	}
	if err != nil {
		log.Debug().Err(err).Str("key", string(r)).Msg("input ignored")
	}
}

// Confirm — Enter: старт на экране готовности, рестарт после раунда.
func (g *Game) Confirm() {
	var err error
	switch g.mode {
	case ModeReady:
		err = g.StartRound()
	case ModeRound:
		if g.round.Phase().Finished() {
			err = g.Restart()
		}
	}
	if err != nil {
		log.Debug().Err(err).Msg("confirm ignored")
	}
}

// Update продвигает анимации; deltaTime в секундах.
func (g *Game) Update(deltaTime float64) {
	deltaTime = utils.Clamp(deltaTime, 0, config.MaxDeltaTime)
	g.gameTime += deltaTime
	g.confetti.Advance(deltaTime * 1000)
}

// Frame собирает снимок для рендера.
func (g *Game) Frame() Frame {
	return Frame{
		Mode:        g.mode,
		Style:       g.style,
		Round:       g.round.Snapshot(),
		Particles:   g.confetti.Particles(),
		Celebrating: g.confetti.State() == confetti.Active,
	}
}

func (g *Game) Mode() Mode {
	return g.mode
}

func (g *Game) Style() FigureStyle {
	return g.style
}

func (g *Game) Round() *round.Round {
	return g.round
}

func (g *Game) Confetti() *confetti.Simulator {
	return g.confetti
}

// GetGameTime — сколько секунд прошло с запуска.
func (g *Game) GetGameTime() float64 {
	return g.gameTime
}
