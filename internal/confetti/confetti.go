// Package confetti — простая система частиц, запускаемая при победе.
package confetti

import "image/color"

// State — состояние симулятора
type State int

const (
	Idle State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "Active"
	}
	return "Idle"
}

// Параметры частиц. Скорости в пикселях в секунду.
const (
	SpawnMarginX = 10.0
	SpawnMinY    = -100.0
	SpawnMaxY    = -10.0
	MaxSpeedX    = 45.0
	MinSpeedY    = 30.0
	MaxSpeedY    = 120.0
	Gravity      = 45.0 // px/s²
	MinSize      = 3
	MaxSize      = 7
	// ExitMargin — насколько ниже нижней границы частица удаляется.
	ExitMargin = 20.0
)

// Palette — фиксированная палитра конфетти.
var Palette = []color.RGBA{
	{255, 77, 77, 255},
	{77, 255, 77, 255},
	{77, 77, 255, 255},
	{255, 255, 77, 255},
	{255, 77, 255, 255},
	{77, 255, 255, 255},
}

// Random — источник случайности; utils.PRNGService ему соответствует.
type Random interface {
	Uniform(min, max float64) float64
	IntRange(min, max int) int
	Intn(n int) int
}

// Particle — одна частица
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  color.RGBA
}

// Bounds — видимая область.
type Bounds struct {
	Width, Height float64
}

// Simulator — симулятор конфетти. Шаг задаётся хостом через Advance.
type Simulator struct {
	bounds    Bounds
	rng       Random
	state     State
	particles []Particle

	elapsedMs   float64
	durationMs  float64
	activations int
}

// NewSimulator создает симулятор в состоянии Idle.
func NewSimulator(bounds Bounds, rng Random) *Simulator {
	return &Simulator{
		bounds: bounds,
		rng:    rng,
		state:  Idle,
	}
}

// Activate запускает новую сессию, заменяя текущую, если она была.
func (s *Simulator) Activate(durationMs float64, particleCount int) {
	s.activations++
	s.particles = s.particles[:0]
	s.elapsedMs = 0
	s.durationMs = durationMs
	if particleCount <= 0 {
		s.state = Idle
		return
	}
	s.state = Active
	for i := 0; i < particleCount; i++ {
		s.particles = append(s.particles, s.spawn())
	}
}

func (s *Simulator) spawn() Particle {
	return Particle{
		X:     s.rng.Uniform(SpawnMarginX, s.bounds.Width-SpawnMarginX),
		Y:     s.rng.Uniform(SpawnMinY, SpawnMaxY),
		VX:    s.rng.Uniform(-MaxSpeedX, MaxSpeedX),
		VY:    s.rng.Uniform(MinSpeedY, MaxSpeedY),
		Size:  float64(s.rng.IntRange(MinSize, MaxSize)),
		Color: Palette[s.rng.Intn(len(Palette))],
	}
}

// Advance продвигает симуляцию на dtMs миллисекунд.
func (s *Simulator) Advance(dtMs float64) {
	if s.state != Active || dtMs <= 0 {
		return
	}
	dt := dtMs / 1000.0
	s.elapsedMs += dtMs

	limit := s.bounds.Height + ExitMargin
	alive := s.particles[:0]
	for _, p := range s.particles {
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VY += Gravity * dt
		if p.Y > limit {
			continue
		}
		alive = append(alive, p)
	}
	s.particles = alive

	if s.elapsedMs >= s.durationMs && len(s.particles) == 0 {
		s.state = Idle
	}
}

// Reset прерывает активную сессию.
func (s *Simulator) Reset() {
	s.particles = s.particles[:0]
	s.elapsedMs = 0
	s.state = Idle
}

func (s *Simulator) State() State {
	return s.state
}

// Particles возвращает копию частиц для отрисовки.
func (s *Simulator) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Activations — сколько раз вызывался Activate.
func (s *Simulator) Activations() int {
	return s.activations
}

// Elapsed — время текущей сессии в миллисекундах.
func (s *Simulator) Elapsed() float64 {
	return s.elapsedMs
}
