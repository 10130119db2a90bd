package tui

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fchimpan/gh-color-switch/internal/game"
	"github.com/fchimpan/gh-color-switch/internal/layout"
)

const gravityLabel = "GRAVITY INCREASED"

func (m *Model) View() string {
	if !m.ready {
		return "loading...\n"
	}

	m.viewBuf.Reset()
	b := &m.viewBuf

	if m.scene == sceneMenu || m.game == nil || m.game.Session() == nil {
		m.renderMenuTo(b)
		return b.String()
	}

	s := m.game.Session()
	hud := renderHUD(s.Score(), s.Gravity(), m.speed, !m.sound.Muted)
	infoLine := "space/enter/click: switch color"

	contentW := m.grid.Cols
	if w := lipgloss.Width(hud); w > contentW {
		contentW = w
	}
	leftPadStr := ""
	if m.w > contentW {
		leftPadStr = strings.Repeat(" ", (m.w-contentW)/2)
	}

	// Lines: HUD(1) + info(1) + field(rows) + trailing blank(1)
	contentH := 1 + 1 + m.grid.Rows + 1
	if m.h > contentH {
		b.WriteString(strings.Repeat("\n", (m.h-contentH)/2))
	}

	b.WriteString(leftPadStr)
	b.WriteString(hud)
	b.WriteString("\n")
	b.WriteString(leftPadStr)
	b.WriteString(styleHudDim.Render(infoLine))
	b.WriteString("\n")

	m.renderFieldTo(b, s, leftPadStr)
	b.WriteString("\n")
	return b.String()
}

func renderHUD(score int, gravity, speed float64, sound bool) string {
	sep := styleHudDim.Render("  |  ")
	soundStr := "on"
	if !sound {
		soundStr = "off"
	}
	return strings.Join([]string{
		styleHudLabel.Render("score ") + styleHudScore.Render(fmt.Sprintf("%6d", score)),
		sep,
		styleHudLabel.Render("gravity ") + styleHudValue.Render(fmt.Sprintf("%5.1f", gravity)),
		sep,
		styleHudLabel.Render("speed ") + styleHudValue.Render(fmt.Sprintf("%.2fx", speed)),
		sep,
		styleHudLabel.Render("sound ") + styleHudValue.Render(soundStr),
		styleHudDim.Render("  (+/- speed, m mute, q quit)"),
	}, "")
}

func (m *Model) renderFieldTo(out *bytes.Buffer, s *game.Session, leftPad string) {
	g := m.grid
	c := &m.canvas
	c.Resize(g.Cols, g.Rows)
	c.Fill(bgCell)

	// Score sits in the middle of the field, the gravity label above it.
	midRow := g.Rows / 2
	c.Text(midRow, fmt.Sprintf("%d", s.Score()), func(ch string) string { return styleScore.Render(ch) })
	if a := m.labelAlpha(); a > 0.2 {
		st := styleGravity
		if a < 0.6 {
			st = st.Faint(true)
		}
		if m.labelScaled() {
			st = st.Bold(true)
		}
		c.Text(midRow-2, gravityLabel, func(ch string) string { return st.Render(ch) })
	}

	drawGate(c, g, s.Field(), m.angle)

	for _, gh := range m.ghosts {
		col, row := g.Cell(gh.pos)
		if gh.left > gh.total/2 {
			c.Set(col, row, ghostCells[gh.color])
		} else {
			c.Set(col, row, ghostDotCells[gh.color])
		}
	}

	if b, ok := s.Ball(); ok {
		if p, ok := m.world.Position(b.ID); ok {
			col, row := g.Cell(p)
			c.Set(col, row, ballCells[b.Color])
		}
	}

	c.writeRows(out, leftPad)
}

// drawGate paints the four-color ring rotated counter-clockwise by angle.
// At angle 0 red is on top, then yellow to the right, green at the bottom
// and blue to the left, so a quarter turn brings the next color to the top.
func drawGate(c *canvasBuf, g layout.Grid, f game.Field, angle float64) {
	r := f.SwitchRadius
	inner := r * 0.5
	left, top := g.Cell(game.Vec{X: f.SwitchPos.X - r, Y: f.SwitchPos.Y + r})
	right, bottom := g.Cell(game.Vec{X: f.SwitchPos.X + r, Y: f.SwitchPos.Y - r})
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			if !g.Contains(col, row) {
				continue
			}
			p := g.Center(col, row)
			dx := p.X - f.SwitchPos.X
			dy := p.Y - f.SwitchPos.Y
			d2 := dx*dx + dy*dy
			if d2 > r*r || d2 < inner*inner {
				continue
			}
			c.Set(col, row, gateCells[quadrant(math.Atan2(dy, dx)-angle)])
		}
	}
}

// quadrant maps an angle in the gate's own frame to the color painted there.
func quadrant(a float64) game.SwitchState {
	deg := a * 180 / math.Pi
	k := math.Mod(90-deg+45, 360)
	if k < 0 {
		k += 360
	}
	return game.SwitchState(int(k/90) % 4)
}

type fieldOverlay struct {
	Title  string
	Lines  []string
	Footer string
}

func (m *Model) renderMenuTo(b *bytes.Buffer) {
	high, recent := 0, 0
	if m.store != nil {
		high = m.store.Int(game.KeyHighscore)
		recent = m.store.Int(game.KeyRecentScore)
	}

	lines := []string{
		fmt.Sprintf("highscore: %6d", high),
		fmt.Sprintf("recent:    %6d", recent),
	}
	if recent > 0 && recent == high {
		lines = append(lines, "new highscore!")
	}
	lines = append(lines, "", "tap as the ball falls to match", "the gate's top color to the ball.")

	ov := &fieldOverlay{
		Title:  "COLOR SWITCH",
		Lines:  lines,
		Footer: "space/enter/click play, m mute, q quit",
	}

	w, h := m.menuSize.Width, m.menuSize.Height
	if w <= 0 || h <= 0 {
		w, h = m.w, m.h
	}
	if w <= 0 || h <= 0 {
		return
	}
	m.canvas.Resize(w, h-1)
	m.canvas.Fill(bgCell)
	applyOverlay(&m.canvas, ov)
	m.canvas.writeRows(b, "")
}

// ===== Render helpers (cached styles) =====

var (
	// Flat UI palette: alizarin, sunflower, emerald, peter river.
	colorHex = [4]string{"#e74c3c", "#f1c40f", "#2ecc71", "#3498db"}
	bgColor  = lipgloss.Color("#2c3e50")

	styleBg      = lipgloss.NewStyle().Background(bgColor)
	styleScore   = styleBg.Bold(true).Foreground(lipgloss.Color("#ffffff"))
	styleGravity = styleBg.Foreground(lipgloss.Color("#d63866"))

	bgCell = styleBg.Render(" ")

	styleHudLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	styleHudValue = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d0d7de"))
	styleHudScore = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd33d"))
	styleHudDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))

	gateCells     [4]string
	ballCells     [4]string
	ghostCells    [4]string
	ghostDotCells [4]string
)

func init() {
	for i, hex := range colorHex {
		col := lipgloss.Color(hex)
		gateCells[i] = lipgloss.NewStyle().Background(col).Render(" ")
		ballCells[i] = styleBg.Bold(true).Foreground(col).Render("●")
		ghostCells[i] = styleBg.Faint(true).Foreground(col).Render("●")
		ghostDotCells[i] = styleBg.Faint(true).Foreground(col).Render("·")
	}
}

type canvasBuf struct {
	w     int
	h     int
	cells []string // flat: y*w + x
}

func (c *canvasBuf) Reset() {
	c.w = 0
	c.h = 0
	c.cells = nil
}

func (c *canvasBuf) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		c.Reset()
		return
	}
	n := w * h
	if c.w == w && c.h == h && cap(c.cells) >= n {
		c.cells = c.cells[:n]
		return
	}
	c.w = w
	c.h = h
	c.cells = make([]string, n)
}

func (c *canvasBuf) Fill(cell string) {
	for i := range c.cells {
		c.cells[i] = cell
	}
}

func (c *canvasBuf) Set(x, y int, cell string) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell
}

// Text centers s on row y, styling each character with render.
func (c *canvasBuf) Text(y int, s string, render func(string) string) {
	runes := []rune(s)
	x0 := (c.w - len(runes)) / 2
	for i, r := range runes {
		c.Set(x0+i, y, render(string(r)))
	}
}

func (c *canvasBuf) writeRows(out *bytes.Buffer, leftPad string) {
	for y := 0; y < c.h; y++ {
		if leftPad != "" {
			out.WriteString(leftPad)
		}
		rowOff := y * c.w
		for x := 0; x < c.w; x++ {
			out.WriteString(c.cells[rowOff+x])
		}
		out.WriteByte('\n')
	}
}

func applyOverlay(canvas *canvasBuf, ov *fieldOverlay) {
	h := canvas.h
	if h == 0 {
		return
	}
	w := canvas.w
	if w == 0 {
		return
	}

	lines := make([]string, 0, 2+len(ov.Lines))
	if ov.Title != "" {
		lines = append(lines, ov.Title)
	}
	lines = append(lines, ov.Lines...)
	if ov.Footer != "" {
		lines = append(lines, ov.Footer)
	}

	maxLen := 0
	for _, s := range lines {
		if len(s) > maxLen {
			maxLen = len(s)
		}
	}
	innerW := maxLen
	innerH := len(lines)

	// Padding 1 plus a border on every side.
	boxW := min(innerW+4, w)
	boxH := min(innerH+4, h)

	x0 := (w - boxW) / 2
	y0 := (h - boxH) / 2

	borderStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#30363d"))
	highStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd33d"))
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#d0d7de"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	panelStyle := lipgloss.NewStyle().Background(lipgloss.Color("#161b22"))

	put := func(x, y int, cell string) {
		canvas.Set(x, y, cell)
	}

	// Fill panel background.
	panelCell := panelStyle.Render(" ")
	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			put(x, y, panelCell)
		}
	}

	hLine := borderStyle.Render("─")
	vLine := borderStyle.Render("│")
	for x := x0 + 1; x < x0+boxW-1; x++ {
		put(x, y0, hLine)
		put(x, y0+boxH-1, hLine)
	}
	for y := y0 + 1; y < y0+boxH-1; y++ {
		put(x0, y, vLine)
		put(x0+boxW-1, y, vLine)
	}
	put(x0, y0, borderStyle.Render("╭"))
	put(x0+boxW-1, y0, borderStyle.Render("╮"))
	put(x0, y0+boxH-1, borderStyle.Render("╰"))
	put(x0+boxW-1, y0+boxH-1, borderStyle.Render("╯"))

	// Text placement inside: 1 border + 1 padding.
	tx0 := x0 + 2
	ty0 := y0 + 2

	for i, line := range lines {
		y := ty0 + i
		if y >= y0+boxH-2 {
			break
		}
		if len(line) > innerW {
			line = line[:innerW]
		}
		startX := tx0 + (innerW-len(line))/2

		isTitle := i == 0 && ov.Title != ""
		for j := 0; j < len(line); j++ {
			x := startX + j
			if x >= x0+boxW-2 {
				break
			}
			var cell string
			switch {
			case isTitle:
				// Title letters cycle through the four gate colors.
				cell = panelStyle.Bold(true).Foreground(lipgloss.Color(colorHex[j%4])).Render(string(line[j]))
			case strings.HasPrefix(line, "highscore:") || strings.HasPrefix(line, "new highscore"):
				cell = panelStyle.Foreground(highStyle.GetForeground()).Bold(true).Render(string(line[j]))
			case i == len(lines)-1 && ov.Footer != "":
				cell = panelStyle.Foreground(helpStyle.GetForeground()).Render(string(line[j]))
			default:
				cell = panelStyle.Foreground(textStyle.GetForeground()).Render(string(line[j]))
			}
			put(x, y, cell)
		}
	}
}
