package termui

import (
	"time"

	"go-hangman/internal/app"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

// TickInterval — шаг игрового цикла, ~30 кадров в секунду.
const TickInterval = 33 * time.Millisecond

// Loop — терминальный игровой цикл. События tcell читаются в отдельной
// горутине и передаются в цикл через канал; app.Game трогает только цикл.
type Loop struct {
	screen   tcell.Screen
	game     *app.Game
	renderer *Renderer
	paused   bool
	lastTick time.Time
}

func NewLoop(screen tcell.Screen, game *app.Game) *Loop {
	return &Loop{
		screen:   screen,
		game:     game,
		renderer: NewRenderer(screen),
	}
}

// HandleKey обрабатывает одно нажатие. Возвращает false, если пора выходить.
func (l *Loop) HandleKey(key tcell.Key, ch rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyF9:
		l.paused = !l.paused
		log.Debug().Bool("paused", l.paused).Msg("pause toggled")
	case tcell.KeyEnter:
		if !l.paused {
			l.game.Confirm()
		}
	case tcell.KeyRune:
		if !l.paused {
			l.game.HandleRune(ch)
		}
	}
	return true
}

// Tick продвигает игру на dt секунд (кроме паузы) и перерисовывает экран.
func (l *Loop) Tick(dt float64) {
	if !l.paused {
		l.game.Update(dt)
	}
	l.renderer.Draw(l.game.Frame(), l.paused)
}

// Paused сообщает, стоит ли игра на паузе.
func (l *Loop) Paused() bool {
	return l.paused
}

func (l *Loop) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return l.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		l.screen.Sync()
	}
	return true
}

// Run крутит цикл до Esc или Ctrl-C.
func (l *Loop) Run() {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				// Экран закрыт
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	l.lastTick = time.Now()
	l.Tick(0)
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !l.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			dt := now.Sub(l.lastTick).Seconds()
			l.lastTick = now
			l.Tick(dt)
		}
	}
}
