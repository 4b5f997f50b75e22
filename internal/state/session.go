// internal/state/session.go
package state

import (
	"fmt"
	"image/color"

	"go-hangman/internal/app"
	"go-hangman/internal/audio"
	"go-hangman/internal/config"
	"go-hangman/internal/round"
	"go-hangman/internal/ui"
	"go-hangman/pkg/geom"
	"go-hangman/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
)

// Session — общие для всех экранов объекты: игра, рендер и элементы UI.
type Session struct {
	Game      *app.Game
	Renderer  *render.SceneRenderer
	Start     *ui.Button
	Restart   *ui.Button
	Indicator *ui.PhaseIndicator
	Sound     *ui.SoundButton
	Cues      *audio.Cues // nil, если звук недоступен

	lastClickTime float64
	runes         []rune
}

// SceneLayout собирает геометрию сцены из констант конфигурации.
func SceneLayout() geom.Scene {
	return geom.Scene{
		Width:  config.ScreenWidth,
		Height: config.ScreenHeight,
		Gallows: geom.GallowsLayout{
			BaseY: config.GallowsBaseY, BaseX1: config.GallowsBaseX1, BaseX2: config.GallowsBaseX2,
			PostX: config.GallowsPostX, TopY: config.GallowsTopY,
			BeamX: config.GallowsBeamX, RopeY: config.GallowsRopeY,
		},
		Figure: geom.FigureLayout{
			HeadRadius: config.FigureHeadRadius,
			BodyLength: config.FigureBodyLength,
			ArmOffsetY: config.FigureArmOffsetY,
			ArmSpanX:   config.FigureArmSpanX,
			ArmDropY:   config.FigureArmDropY,
			LegSpanX:   config.FigureLegSpanX,
			LegLength:  config.FigureLegLength,
		},
		HeadX:          config.FigureHeadX,
		HeadY:          config.FigureHeadY,
		IconScale:      config.SelectorIconScale,
		WordLeft:       config.WordLeftMargin,
		WordSpacing:    config.WordSpacing,
		WordBaselineY:  config.WordBaselineY,
		UnderscoreHalf: config.UnderscoreHalf,
		LetterLift:     config.LetterLift,
		GraveX:         config.GraveyardX,
		GraveY:         config.GraveyardY,
		GraveSpacing:   config.GraveyardSpacing,
		SelectorTopY:   config.SelectorTopY,
		SelectorIcon:   config.SelectorIcon,
		SelectorSpace:  config.SelectorSpace,
		PopupW:         config.PopupWidth,
		PopupH:         config.PopupHeight,
	}
}

// NewSession загружает шрифты и собирает рендер и кнопки.
func NewSession(game *app.Game, cues *audio.Cues, muted bool) (*Session, error) {
	fonts, err := render.LoadFonts(config.FontSize, config.BigFontSize, config.SmallFontSize, config.FontDPI)
	if err != nil {
		return nil, fmt.Errorf("failed to load fonts: %w", err)
	}

	// Создаем и заполняем структуру с цветами для рендерера
	colors := &render.SceneColors{
		Background:  config.BackgroundColor,
		Ink:         config.InkColor,
		HeadFill:    config.HeadFillColor,
		Letter:      config.LetterColor,
		WinLetter:   config.WinLetterColor,
		Wrong:       config.WrongColor,
		Hint:        config.HintColor,
		Popup:       config.PopupColor,
		Selected:    config.SelectedFrameColor,
		GallowsLine: config.GallowsStroke,
		RopeLine:    config.RopeStroke,
		FigureLine:  config.FigureStroke,
	}
	renderer := render.NewSceneRenderer(SceneLayout(), colors, fonts)

	buttonRect := geom.CenteredRect(config.ScreenWidth/2, config.ButtonY, config.ButtonWidth, config.ButtonHeight)
	start := ui.NewButton(buttonRect, "Start", config.StartButtonColor, fonts.Regular)
	start.TextColor = config.ButtonTextColor
	start.Pulsing = true
	start.PulseAmp = config.PulseAmp
	start.PulseDecay = config.PulseDecay
	start.PulsePeriod = config.PulsePeriod

	restart := ui.NewButton(buttonRect, "Restart", config.RestartButtonColor, fonts.Regular)
	restart.TextColor = config.ButtonTextColor

	indicator := ui.NewPhaseIndicator(config.IndicatorX, config.IndicatorY, config.IndicatorRadius, map[round.Phase]color.RGBA{
		round.NotStarted: config.IdlePhaseColor,
		round.InProgress: config.PlayingPhaseColor,
		round.Won:        config.WonPhaseColor,
		round.Lost:       config.LostPhaseColor,
	})

	return &Session{
		Game:          game,
		Renderer:      renderer,
		Start:         start,
		Restart:       restart,
		Indicator:     indicator,
		Sound:         ui.NewSoundButton(config.SoundButtonX, config.SoundButtonY, config.SoundButtonSize, config.InkColor, muted || cues == nil),
		Cues:          cues,
		lastClickTime: -1,
	}, nil
}

// Click возвращает координаты клика левой кнопкой с учетом антидребезга.
func (s *Session) Click() (int, int, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	now := s.Game.GetGameTime()
	if now-s.lastClickTime < config.ClickCooldown/1000.0 {
		return 0, 0, false
	}
	s.lastClickTime = now
	x, y := ebiten.CursorPosition()
	return x, y, true
}

// Runes — символы, введенные с клавиатуры за этот кадр.
func (s *Session) Runes() []rune {
	s.runes = ebiten.AppendInputChars(s.runes[:0])
	return s.runes
}

// HandleSoundClick переключает звук, если клик попал в кнопку.
func (s *Session) HandleSoundClick(x, y int) bool {
	if !s.Sound.IsClicked(x, y) {
		return false
	}
	if s.Cues == nil {
		log.Debug().Msg("audio unavailable, sound toggle ignored")
		return true
	}
	muted := s.Sound.Toggle(s.Game.GetGameTime())
	s.Cues.SetMuted(muted)
	log.Info().Bool("muted", muted).Msg("sound toggled")
	return true
}

// PauseRequested — F9 или Escape.
func PauseRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// DrawOverlay рисует индикатор фазы и кнопку звука поверх сцены.
func (s *Session) DrawOverlay(screen *ebiten.Image) {
	t := s.Game.GetGameTime()
	s.Indicator.Draw(screen, t)
	s.Sound.Draw(screen, t)
}
