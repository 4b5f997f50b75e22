// cmd/hangman-tui/main.go
package main

import (
	"fmt"
	"os"

	"go-hangman/internal/app"
	"go-hangman/internal/audio"
	"go-hangman/internal/config"
	"go-hangman/internal/logging"
	"go-hangman/internal/termui"
	"go-hangman/internal/utils"
	"go-hangman/internal/words"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/rs/zerolog/log"
)

func main() {
	settings := config.LoadSettings()
	closer, err := logging.File(settings.LogLevel, settings.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
	} else {
		defer closer.Close()
	}

	rng := utils.NewPRNGService(settings.Seed)
	game := app.NewGame(words.NewFileSource(settings.WordsFile), rng)

	if !settings.Mute {
		sr := beep.SampleRate(config.AudioSampleRate)
		sink, err := audio.NewSpeakerSink(sr)
		if err != nil {
			// Без звука играть можно
			log.Warn().Err(err).Msg("audio initialization failed")
		} else {
			defer sink.Close()
			audio.NewCues(sink, sr, false).Attach(game.EventDispatcher)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	log.Info().Msg("terminal session started")
	termui.NewLoop(screen, game).Run()
	log.Info().Msg("terminal session finished")
}
