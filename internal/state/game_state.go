// internal/state/game_state.go
package state

import (
	"fmt"

	"go-hangman/internal/app"
	"go-hangman/internal/config"
	"go-hangman/internal/round"
	"go-hangman/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
)

// GameState — ожидание старта и сам раунд
type GameState struct {
	sm      *StateMachine
	session *Session
}

func NewGameState(sm *StateMachine, session *Session) *GameState {
	return &GameState{sm: sm, session: session}
}

func (g *GameState) Enter() {
	log.Debug().Str("style", g.session.Game.Style().String()).Msg("figure ready")
}

func (g *GameState) Update(deltaTime float64) {
	if PauseRequested() {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	game := g.session.Game
	for _, r := range g.session.Runes() {
		game.HandleRune(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		game.Confirm()
	}

	if x, y, ok := g.session.Click(); ok && !g.session.HandleSoundClick(x, y) {
		g.handleButtonClick(x, y)
	}

	game.Update(deltaTime)
	g.session.Indicator.Observe(game.Round().Phase(), game.GetGameTime())

	if game.Mode() == app.ModeSelect {
		g.sm.SetState(NewMenuState(g.sm, g.session))
	}
}

// handleButtonClick обрабатывает клики по кнопкам Start и Restart
func (g *GameState) handleButtonClick(x, y int) {
	game := g.session.Game
	now := game.GetGameTime()

	var err error
	switch {
	case game.Mode() == app.ModeReady && g.session.Start.Contains(x, y):
		g.session.Start.HandleClick(now)
		err = game.StartRound()
	case g.roundOver() && g.session.Restart.Contains(x, y):
		g.session.Restart.HandleClick(now)
		err = game.Restart()
	}
	if err != nil {
		log.Warn().Err(err).Msg("button click failed")
	}
}

func (g *GameState) roundOver() bool {
	game := g.session.Game
	return game.Mode() == app.ModeRound && game.Round().Phase().Finished()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	s := g.session
	game := s.Game
	now := game.GetGameTime()
	cx, cy := ebiten.CursorPosition()

	s.Renderer.Draw(screen, game.Frame())

	switch {
	case game.Mode() == app.ModeReady:
		s.Start.Draw(screen, now, s.Start.Contains(cx, cy))
		hintY := s.Start.Rect.Y + s.Start.Rect.H + 12
		render.DrawTextCentered(screen, "Click Start to play", s.Renderer.Fonts().Small, config.ScreenWidth/2, hintY, config.HintColor)
	case g.roundOver():
		s.Restart.Draw(screen, now, s.Restart.Contains(cx, cy))
	}
	s.DrawOverlay(screen)

	if game.Mode() == app.ModeRound {
		misses := round.PartCount - game.Round().Snapshot().Remaining
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Misses: %d/%d", misses, round.PartCount), 4, config.ScreenHeight-18)
	}
}

func (g *GameState) Exit() {}
