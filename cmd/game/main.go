// cmd/game/main.go
package main

import (
	"time"

	"go-hangman/internal/app"
	"go-hangman/internal/audio"
	"go-hangman/internal/config"
	"go-hangman/internal/logging"
	"go-hangman/internal/state"
	"go-hangman/internal/utils"
	"go-hangman/internal/words"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings := config.LoadSettings()
	logging.Console(settings.LogLevel)

	rng := utils.NewPRNGService(settings.Seed)
	game := app.NewGame(words.NewFileSource(settings.WordsFile), rng)

	sink := audio.NewEbitenSink(config.AudioSampleRate)
	cues := audio.NewCues(sink, sink.SampleRate(), settings.Mute)
	cues.Attach(game.EventDispatcher)

	session, err := state.NewSession(game, cues, settings.Mute)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create session")
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, session))
	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}
