package tui

import (
	"bytes"
	"log"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fchimpan/gh-color-switch/internal/audio"
	"github.com/fchimpan/gh-color-switch/internal/game"
	"github.com/fchimpan/gh-color-switch/internal/layout"
	"github.com/fchimpan/gh-color-switch/internal/physics"
)

type scene int

const (
	sceneMenu scene = iota
	scenePlay
)

type Options struct {
	Seed   uint64
	Speed  float64
	Muted  bool
	Tuning game.Tuning
}

type Model struct {
	seed   uint64
	speed  float64
	tuning game.Tuning

	store game.Store
	sound *audio.Toggle

	lastTick time.Time
	acc      float64

	ready bool
	w     int
	h     int

	scene    scene
	menuSize game.Size

	grid    layout.Grid
	world   *physics.World
	game    *game.Game
	ballPos game.Vec // last known position of the live ball

	// Gate rotation animation, in radians.
	angle   float64
	rotFrom float64
	rotTo   float64
	rotT    float64
	rotDur  float64
	ghosts  []ghost
	pulse   float64 // seconds into the gravity label animation
	pulsePh float64 // seconds per phase; 0 when idle

	viewBuf bytes.Buffer
	canvas  canvasBuf
}

// ghost is a scored ball fading out where it touched the gate.
type ghost struct {
	color game.SwitchState
	pos   game.Vec
	left  float64
	total float64
}

var _ game.Navigator = (*Model)(nil)

func NewModel(opts Options, store game.Store, player audio.Player) *Model {
	if opts.Speed <= 0 {
		opts.Speed = 1
	}
	if player == nil {
		player = audio.Nop{}
	}
	return &Model{
		seed:   opts.Seed,
		speed:  opts.Speed,
		tuning: opts.Tuning,
		store:  store,
		sound:  &audio.Toggle{Player: player, Muted: opts.Muted},
		scene:  sceneMenu,
	}
}

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = time.Second / 60
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return tickCmd(time.Second / 60)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// A running session keeps its field; the next one picks up the new size.
		m.w = msg.Width
		m.h = msg.Height
		m.menuSize = game.Size{Width: msg.Width, Height: msg.Height}
		m.ready = true
		return m, nil
	case tickMsg:
		now := time.Time(msg)
		if m.lastTick.IsZero() {
			m.lastTick = now
			return m, tickCmd(m.frameDuration())
		}

		// Measure real elapsed time, but clamp to avoid a huge "warp" when the app lags.
		dt := now.Sub(m.lastTick).Seconds()
		m.lastTick = now
		if dt < 0 {
			dt = 0
		}
		if dt > 0.05 {
			dt = 0.05
		}

		m.updateAnimations(dt)
		if m.scene == scenePlay {
			m.simulate(dt * m.speed)
		}
		return m, tickCmd(m.frameDuration())
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.tap()
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.sound.Close()
			return m, tea.Quit
		case " ", "enter", "up", "k", "w":
			m.tap()
		case "m", "M":
			m.sound.Muted = !m.sound.Muted
		case "+", "=":
			m.speed += 0.1
			if m.speed > 3 {
				m.speed = 3
			}
		case "-", "_":
			m.speed -= 0.1
			if m.speed < 0.25 {
				m.speed = 0.25
			}
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) frameDuration() time.Duration {
	if m.scene == sceneMenu {
		return time.Second / 15
	}
	return time.Second / 60
}

// tap starts a session from the menu and turns the gate during play.
func (m *Model) tap() {
	if !m.ready {
		return
	}
	switch m.scene {
	case sceneMenu:
		m.startGame()
	case scenePlay:
		if m.game == nil {
			return
		}
		m.game.Tap()
		m.drain()
	}
}

func (m *Model) startGame() {
	// Change seed so retries feel fresh even with a fixed --seed.
	m.seed++

	m.grid = layout.Build(m.w, m.h)
	m.world = physics.New(m.tuning.Scale)
	s := game.NewSession(m.world, m.grid.Field, m.tuning, m.seed)
	m.game = game.NewGame(s, m.store, m, game.Size{Width: m.w, Height: m.h})

	m.acc = 0
	m.resetAnimations()
	m.scene = scenePlay
	m.drain()
	log.Printf("game start: seed=%d field=%.1fx%.1f switch_r=%.2f", m.seed, m.grid.Field.Width, m.grid.Field.Height, m.grid.Field.SwitchRadius)
}

// PresentMenu ends play and shows the menu. The game calls it after the
// scores have been stored.
func (m *Model) PresentMenu(size game.Size) {
	m.scene = sceneMenu
	m.menuSize = size
	m.game = nil
	m.world = nil
	m.resetAnimations()
}

// simulate advances the world in fixed steps and feeds contacts to the game.
func (m *Model) simulate(dt float64) {
	const fixed = 1.0 / 120.0
	const maxStepsPerTick = 10

	m.acc += dt
	steps := 0
	for m.acc >= fixed && steps < maxStepsPerTick && m.game != nil {
		g, w := m.game, m.world
		contacts := w.Step(fixed)
		m.trackBall()
		for _, c := range contacts {
			g.Contact(c.A, c.B)
			if g.Over() {
				return
			}
		}
		m.drain()
		m.acc -= fixed
		steps++
	}
	// If we are too far behind, drop the remainder to keep the app responsive.
	if steps >= maxStepsPerTick {
		m.acc = math.Mod(m.acc, fixed)
	}
}

func (m *Model) trackBall() {
	s := m.game.Session()
	if s == nil {
		return
	}
	if b, ok := s.Ball(); ok {
		if p, ok := m.world.Position(b.ID); ok {
			m.ballPos = p
		}
	}
}

// drain applies the session's presentation events.
func (m *Model) drain() {
	if m.game == nil {
		return
	}
	s := m.game.Session()
	if s == nil {
		return
	}
	for _, e := range s.Drain() {
		switch e := e.(type) {
		case game.SwitchRotated:
			m.rotFrom = m.angle
			m.rotTo += e.Angle
			m.rotT = 0
			m.rotDur = e.Duration.Seconds()
		case game.BallScored:
			m.sound.Bling()
			fade := e.Fade.Seconds()
			m.ghosts = append(m.ghosts, ghost{color: e.Ball.Color, pos: m.ballPos, left: fade, total: fade})
		case game.GravityIncreased:
			log.Printf("gravity increased: %.1f", e.Gravity)
			m.pulse = 0
			m.pulsePh = e.Phase.Seconds()
		case game.BallSpawned:
			m.ballPos = e.Ball.Pos
		}
	}
}

func (m *Model) resetAnimations() {
	m.angle, m.rotFrom, m.rotTo, m.rotT, m.rotDur = 0, 0, 0, 0, 0
	m.ghosts = nil
	m.pulse, m.pulsePh = 0, 0
}

func (m *Model) updateAnimations(dt float64) {
	if m.rotDur > 0 {
		m.rotT += dt
		p := m.rotT / m.rotDur
		if p >= 1 {
			p = 1
			m.rotDur = 0
		}
		m.angle = m.rotFrom + (m.rotTo-m.rotFrom)*p
	} else {
		m.angle = m.rotTo
	}

	out := m.ghosts[:0]
	for _, g := range m.ghosts {
		g.left -= dt
		if g.left > 0 {
			out = append(out, g)
		}
	}
	m.ghosts = out

	if m.pulsePh > 0 {
		m.pulse += dt
		if m.pulse >= 2*m.pulsePh {
			m.pulse, m.pulsePh = 0, 0
		}
	}
}

// labelAlpha is the gravity label's opacity: fade in over one phase, out
// over the next.
func (m *Model) labelAlpha() float64 {
	if m.pulsePh <= 0 {
		return 0
	}
	if m.pulse < m.pulsePh {
		return m.pulse / m.pulsePh
	}
	return math.Max(0, 1-(m.pulse-m.pulsePh)/m.pulsePh)
}

// labelScaled reports whether the label is in the scale-up half of its pulse.
func (m *Model) labelScaled() bool {
	return m.pulsePh > 0 && m.pulse < m.pulsePh
}
