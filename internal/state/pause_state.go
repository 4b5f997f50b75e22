// internal/state/pause_state.go
package state

import (
	"go-hangman/internal/config"
	"go-hangman/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру поверх предыдущего состояния: время не
// идёт, конфетти висят в воздухе, ввод букв не принимается.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	session       *Session
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	p := &PauseState{stateMachine: sm, previousState: prevState}
	switch s := prevState.(type) {
	case *GameState:
		p.session = s.session
	case *MenuState:
		p.session = s.session
	}
	return p
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if PauseRequested() {
		s.stateMachine.SetState(s.previousState)
	}
	// Символы, набранные на паузе, не должны попасть в раунд
	if s.session != nil {
		s.session.Runes()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlayColor, false)
	if s.session != nil {
		render.DrawTextCentered(screen, "PAUSED", s.session.Renderer.Fonts().Big, config.ScreenWidth/2, config.ScreenHeight/2, config.PopupColor)
	}
}

func (s *PauseState) Exit() {}
