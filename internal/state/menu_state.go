// internal/state/menu_state.go
package state

import (
	"go-hangman/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

// MenuState — экран выбора фигуры
type MenuState struct {
	sm      *StateMachine
	session *Session
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {
	m.session.Renderer.SetSelectorHighlight(-1)
}

func (m *MenuState) Update(deltaTime float64) {
	if PauseRequested() {
		m.sm.SetState(NewPauseState(m.sm, m))
		return
	}

	g := m.session.Game
	layout := m.session.Renderer.Layout()

	cx, cy := ebiten.CursorPosition()
	m.session.Renderer.SetSelectorHighlight(layout.SelectorAt(float32(cx), float32(cy)))

	for _, r := range m.session.Runes() {
		g.HandleRune(r)
	}
	if x, y, ok := m.session.Click(); ok && !m.session.HandleSoundClick(x, y) {
		if i := layout.SelectorAt(float32(x), float32(y)); i >= 0 {
			if err := g.ChooseStyle(app.Styles[i]); err != nil {
				log.Debug().Err(err).Msg("figure click ignored")
			}
		}
	}

	// Конфетти прошлой победы продолжает падать и здесь
	g.Update(deltaTime)
	m.session.Indicator.Observe(g.Round().Phase(), g.GetGameTime())

	if g.Mode() != app.ModeSelect {
		m.sm.SetState(NewGameState(m.sm, m.session))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.session.Renderer.Draw(screen, m.session.Game.Frame())
	m.session.DrawOverlay(screen)
}

func (m *MenuState) Exit() {
	m.session.Renderer.SetSelectorHighlight(-1)
}
