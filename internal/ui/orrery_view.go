package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/canvas"
	"github.com/litescript/ls-orrery/internal/render"
	"github.com/litescript/ls-orrery/internal/scene"
)

// LabelMode controls which body labels are drawn.
type LabelMode int

const (
	LabelNone LabelMode = iota
	LabelFocused
	LabelAll
)

// Discrete zoom levels for clean stepping
var zoomLevels = []float64{0.25, 0.5, 0.75, 1.0, 1.5, 2.0, 3.0}

const defaultZoomLevel = 3 // 1.0x

// Label cells sit in front of every painted body.
const labelDepth = 1e6

// Starfield sits behind everything; body depths start near 1000.
const starDepth = -1e6

// OrreryModel renders the whole system as a shaded top-down scene.
type OrreryModel struct {
	width  int
	height int

	sys     *scene.System
	simTime float64
	frame   scene.Frame

	buf      *canvas.Buffer
	renderer *render.Renderer

	// View state
	focusIdx   int // Index into frame.Bodies (-1 = Sun)
	zoomLevel  int
	panX       float64 // camera center in world units
	panY       float64
	userPanned bool
	labelMode  LabelMode
	showStars  bool
	lodEnabled bool
}

// NewOrreryModel creates the orrery view model.
func NewOrreryModel() OrreryModel {
	return OrreryModel{
		buf:        canvas.New(0, 0),
		renderer:   render.NewRenderer(render.DefaultConfig()),
		focusIdx:   -1,
		zoomLevel:  defaultZoomLevel,
		labelMode:  LabelFocused,
		showStars:  true,
		lodEnabled: true,
	}
}

// scale returns the current zoom scale.
func (m OrreryModel) scale() float64 {
	if m.zoomLevel < 0 || m.zoomLevel >= len(zoomLevels) {
		return 1.0
	}
	return zoomLevels[m.zoomLevel]
}

// SetSize updates the viewport size.
func (m OrreryModel) SetSize(width, height int) OrreryModel {
	m.width = width
	m.height = height
	return m
}

// UpdateFrame recomputes body positions and repaints the canvas.
func (m OrreryModel) UpdateFrame(sys *scene.System, simTime float64) OrreryModel {
	m.sys = sys
	m.simTime = simTime
	m.repaint()
	return m
}

// Update handles input messages.
func (m OrreryModel) Update(msg tea.Msg) (OrreryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "[":
			m.focusPrev()
		case "k", "]":
			m.focusNext()

		case "up":
			m.panY -= 2.0 / m.scale()
			m.userPanned = true
		case "down":
			m.panY += 2.0 / m.scale()
			m.userPanned = true
		case "left":
			m.panX -= 4.0 / m.scale()
			m.userPanned = true
		case "right":
			m.panX += 4.0 / m.scale()
			m.userPanned = true
		case "c":
			m.panX, m.panY = 0, 0 // Center on Sun
			m.userPanned = false

		case "f":
			m.centerOnFocused()
			m.userPanned = false

		case "+", "=":
			if m.zoomLevel < len(zoomLevels)-1 {
				m.zoomLevel++
				if !m.userPanned {
					m.centerOnFocused()
				}
			}
		case "-":
			if m.zoomLevel > 0 {
				m.zoomLevel--
				if !m.userPanned {
					m.centerOnFocused()
				}
			}
		case "0":
			m.zoomLevel = defaultZoomLevel
			if !m.userPanned {
				m.centerOnFocused()
			}

		case "l":
			m.labelMode = (m.labelMode + 1) % 3

		case "t":
			m.showStars = !m.showStars

		case "d":
			m.lodEnabled = !m.lodEnabled

		case "r":
			m.panX, m.panY = 0, 0
			m.zoomLevel = defaultZoomLevel
			m.userPanned = false

		case "enter":
			if bi := m.focusedBody(); bi != nil {
				name := bi.Body.Name
				return m, func() tea.Msg { return OpenBodyMsg{Name: name} }
			}
		}
		m.repaint()
	}
	return m, nil
}

func (m *OrreryModel) focusNext() {
	if len(m.frame.Bodies) == 0 {
		return
	}
	m.focusIdx++
	if m.focusIdx >= len(m.frame.Bodies) {
		m.focusIdx = -1 // Wrap to Sun
	}
	m.centerOnFocused()
	m.userPanned = false
}

func (m *OrreryModel) focusPrev() {
	if len(m.frame.Bodies) == 0 {
		return
	}
	m.focusIdx--
	if m.focusIdx < -1 {
		m.focusIdx = len(m.frame.Bodies) - 1
	}
	m.centerOnFocused()
	m.userPanned = false
}

// focusedBody returns the focused instance, or nil for the Sun.
func (m *OrreryModel) focusedBody() *scene.BodyInstance {
	if m.focusIdx < 0 || m.focusIdx >= len(m.frame.Bodies) {
		return nil
	}
	return &m.frame.Bodies[m.focusIdx]
}

// centerOnFocused pans the camera onto the focused body's world position.
func (m *OrreryModel) centerOnFocused() {
	bi := m.focusedBody()
	if bi == nil {
		m.panX, m.panY = 0, 0
		return
	}
	m.panX = bi.WorldX
	m.panY = bi.WorldY
}

// camera builds the projection for the current pan and zoom.
func (m OrreryModel) camera() scene.Camera {
	return scene.Camera{
		CenterX: m.panX,
		CenterY: m.panY,
		Zoom:    m.scale(),
		Width:   m.width,
		Height:  m.canvasHeight(),
	}
}

// canvasHeight reserves two HUD lines below the scene.
func (m OrreryModel) canvasHeight() int {
	h := m.height - 2
	if h < 5 {
		h = 5
	}
	return h
}

// repaint redraws the whole scene into the cell buffer.
func (m *OrreryModel) repaint() {
	if m.sys == nil || m.width < 4 {
		return
	}
	h := m.canvasHeight()
	if m.buf.Width() != m.width || m.buf.Height() != h {
		m.buf.Resize(m.width, h)
	} else {
		m.buf.Clear()
	}

	m.frame = m.sys.Snapshot(m.simTime, m.camera())
	if m.focusIdx >= len(m.frame.Bodies) {
		m.focusIdx = len(m.frame.Bodies) - 1
	}

	if m.showStars {
		m.drawStarfield()
	}

	m.renderer.DrawSun(m.buf, m.frame.Sun)
	for _, bi := range m.frame.Bodies {
		if bi.ParentView != nil {
			m.renderer.DrawMoon(m.buf, bi.View, *bi.ParentView,
				m.frame.Sun.X, m.frame.Sun.Y, m.frame.Occluders, m.lodEnabled)
		} else {
			m.renderer.DrawPlanet(m.buf, bi.View,
				m.frame.Sun.X, m.frame.Sun.Y, m.frame.Occluders, m.lodEnabled)
		}
	}

	m.drawLabels()
}

// drawStarfield scatters the system's fixed stars across the viewport.
// Stars pan slightly against the camera for a parallax backdrop.
func (m *OrreryModel) drawStarfield() {
	w, h := m.buf.Width(), m.buf.Height()
	for _, s := range m.sys.Stars {
		x := int(s.X*float64(w)) - int(m.panX*0.05)
		y := int(s.Y*float64(h)) - int(m.panY*0.05)
		x = ((x % w) + w) % w
		y = ((y % h) + h) % h

		glyph, shade := starGlyph(s.Bright)
		if glyph == ' ' {
			continue
		}
		m.buf.Set(x, y, glyph, shade, canvas.RGB{}, starDepth)
	}
}

// starGlyph maps brightness to a glyph and grey level.
func starGlyph(bright float64) (rune, canvas.RGB) {
	switch {
	case bright > 0.93:
		return '✦', canvas.RGB{R: 220, G: 220, B: 235}
	case bright > 0.75:
		return '+', canvas.RGB{R: 160, G: 160, B: 180}
	case bright > 0.45:
		return '·', canvas.RGB{R: 110, G: 110, B: 130}
	default:
		return ' ', canvas.RGB{}
	}
}

// drawLabels writes body names next to their discs, per label mode.
func (m *OrreryModel) drawLabels() {
	if m.labelMode == LabelNone {
		return
	}
	labelFg := canvas.RGB{R: 200, G: 200, B: 210}
	focusFg := canvas.RGB{R: 255, G: 230, B: 150}

	for i := range m.frame.Bodies {
		bi := &m.frame.Bodies[i]
		focused := i == m.focusIdx
		if m.labelMode == LabelFocused && !focused {
			continue
		}

		text := bi.Body.Name
		fg := labelFg
		if focused {
			text = "◄ " + text
			fg = focusFg
		}

		x := int(bi.View.X+bi.View.Radius) + 2
		y := int(bi.View.Y)
		for j, r := range text {
			m.buf.Set(x+j, y, r, fg, canvas.RGB{}, labelDepth)
		}
	}
}

// View renders the canvas plus the focus HUD.
func (m OrreryModel) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for orrery view"
	}
	return lipgloss.JoinVertical(lipgloss.Left, renderBuffer(m.buf), m.renderHUD())
}

func (m OrreryModel) renderHUD() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	if bi := m.focusedBody(); bi != nil {
		b.WriteString(headerStyle.Render(fmt.Sprintf("◆ %s", bi.Body.Name)))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Kind: "))
		b.WriteString(valueStyle.Render(bi.Body.Kind.String()))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Orbit: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.0f", bi.Body.OrbitRadius)))
		if len(bi.Body.Moons) > 0 {
			b.WriteString("  ")
			b.WriteString(labelStyle.Render("Moons: "))
			b.WriteString(valueStyle.Render(fmt.Sprintf("%d", len(bi.Body.Moons))))
		}
		if bi.Body.Ring {
			b.WriteString("  ")
			b.WriteString(valueStyle.Render("⦶ ringed"))
		}
	} else {
		b.WriteString(headerStyle.Render("☉ " + m.sunName()))
		b.WriteString("  ")
		b.WriteString(dimStyle.Render("(center of the system)"))
	}
	b.WriteString("\n")

	labelName := [...]string{"off", "focus", "all"}[m.labelMode]
	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}

	b.WriteString(dimStyle.Render("Zoom:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.2gx", m.scale())))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Labels:"))
	b.WriteString(valueStyle.Render(labelName))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Stars:"))
	b.WriteString(valueStyle.Render(onOff(m.showStars)))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Detail blocks:"))
	b.WriteString(valueStyle.Render(onOff(m.lodEnabled)))

	return b.String()
}

func (m OrreryModel) sunName() string {
	if m.sys == nil {
		return "Sun"
	}
	return m.sys.Name
}

// ShowStars returns whether the starfield is visible.
func (m OrreryModel) ShowStars() bool {
	return m.showStars
}

// FocusedName returns the focused body name, or "" for the Sun.
func (m OrreryModel) FocusedName() string {
	if bi := m.focusedBody(); bi != nil {
		return bi.Body.Name
	}
	return ""
}

// renderBuffer converts the cell grid into a styled terminal string.
// Runs of cells sharing colors reuse one style render to keep the
// per-frame allocation load down.
func renderBuffer(buf *canvas.Buffer) string {
	var b strings.Builder

	for y := 0; y < buf.Height(); y++ {
		var run strings.Builder
		var runFg, runBg canvas.RGB
		runActive := false

		flush := func() {
			if !runActive || run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexRGB(runFg)))
			if runBg != (canvas.RGB{}) {
				style = style.Background(lipgloss.Color(hexRGB(runBg)))
			}
			b.WriteString(style.Render(run.String()))
			run.Reset()
		}

		for x := 0; x < buf.Width(); x++ {
			cell, _ := buf.At(x, y)
			if !cell.Painted {
				flush()
				runActive = false
				b.WriteRune(' ')
				continue
			}
			glyph := cell.Glyph
			if glyph == 0 {
				glyph = ' '
			}
			if !runActive || cell.Fg != runFg || cell.Bg != runBg {
				flush()
				runFg, runBg = cell.Fg, cell.Bg
				runActive = true
			}
			run.WriteRune(glyph)
		}
		flush()
		b.WriteRune('\n')
	}

	return strings.TrimRight(b.String(), "\n")
}

func hexRGB(c canvas.RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
