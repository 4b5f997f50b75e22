// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth   = 500
	ScreenHeight  = 500
	TPS           = 30  // Тиков в секунду, ~33 мс на кадр
	MaxDeltaTime  = 0.1 // Секунды
	ClickCooldown = 150 // Миллисекунды
	WindowTitle   = "Hangman Game"

	// Виселица
	GallowsBaseY      = 460
	GallowsBaseX1     = 220
	GallowsBaseX2     = 480
	GallowsPostX      = 300
	GallowsTopY       = 120
	GallowsBeamX      = 420
	GallowsRopeY      = 150
	GallowsStroke     = 6
	RopeStroke        = 3
	FigureStroke      = 2
	FigureHeadX       = 420
	FigureHeadY       = 170
	FigureHeadRadius  = 18
	FigureBodyLength  = 70
	FigureArmOffsetY  = 38
	FigureArmSpanX    = 30
	FigureArmDropY    = 20
	FigureLegSpanX    = 20
	FigureLegLength   = 40
	SelectorIconScale = 0.6

	// Слово и кладбище букв
	WordBaselineY    = 430
	WordLeftMargin   = 30
	WordSpacing      = 28
	UnderscoreHalf   = 10
	LetterLift       = 16
	GraveyardX       = 60
	GraveyardY       = 120
	GraveyardSpacing = 22

	// Кнопки и всплывающее окно
	ButtonWidth   = 140
	ButtonHeight  = 40
	ButtonY       = 40
	PopupWidth    = 320
	PopupHeight   = 120
	PulseAmp      = 0.12
	PulseDecay    = 2.5
	PulsePeriod   = 1.2 // Секунды между "вздохами" кнопки Start
	SelectorTopY  = 50
	SelectorIcon  = 36
	SelectorSpace = 90

	// Индикатор фазы и кнопка звука
	IndicatorX      = 475
	IndicatorY      = 25
	IndicatorRadius = 8
	SoundButtonX    = 25
	SoundButtonY    = 25
	SoundButtonSize = 18

	// Шрифты
	FontSize      = 20
	BigFontSize   = 30
	SmallFontSize = 14
	FontDPI       = 72

	// Конфетти
	ConfettiDurationMs = 3000
	ConfettiCount      = 40

	// Звук
	AudioSampleRate = 44100
)

var (
	BackgroundColor    = color.RGBA{245, 245, 245, 255}
	InkColor           = color.RGBA{0, 0, 0, 255}
	HeadFillColor      = color.RGBA{230, 230, 230, 255}
	LetterColor        = color.RGBA{0, 180, 0, 255}
	WinLetterColor     = color.RGBA{102, 255, 102, 255}
	WrongColor         = color.RGBA{200, 0, 0, 255}
	StartButtonColor   = color.RGBA{76, 175, 80, 255}
	RestartButtonColor = color.RGBA{33, 150, 243, 255}
	ButtonTextColor    = color.RGBA{255, 255, 255, 255}
	HintColor          = color.RGBA{80, 80, 80, 255}
	PopupColor         = color.RGBA{255, 255, 255, 255}
	SelectedFrameColor = color.RGBA{33, 150, 243, 255}
	PauseOverlayColor  = color.RGBA{0, 0, 0, 128}

	// Цвета индикатора по фазам раунда
	IdlePhaseColor    = color.RGBA{158, 158, 158, 255}
	PlayingPhaseColor = color.RGBA{255, 193, 7, 255}
	WonPhaseColor     = color.RGBA{76, 175, 80, 255}
	LostPhaseColor    = color.RGBA{200, 0, 0, 255}
)
