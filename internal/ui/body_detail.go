package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/canvas"
	"github.com/litescript/ls-orrery/internal/render"
	"github.com/litescript/ls-orrery/internal/scene"
)

// glyphPolicy cycles the close-up rendering style.
type glyphPolicy int

const (
	glyphTexture glyphPolicy = iota
	glyphRamp
	glyphSolid
)

// BodyDetailModel renders one body as a large shaded disc with a stat panel.
type BodyDetailModel struct {
	width  int
	height int

	sys      *scene.System
	simTime  float64
	bodyName string // "" selects the first planet

	buf      *canvas.Buffer
	renderer *render.Renderer

	spinOffset float64
	policy     glyphPolicy
	indexed    bool
}

// NewBodyDetailModel creates the close-up view model.
func NewBodyDetailModel() BodyDetailModel {
	return BodyDetailModel{
		buf:      canvas.New(0, 0),
		renderer: render.NewRenderer(render.DefaultConfig()),
	}
}

// SetSize updates the viewport size.
func (m BodyDetailModel) SetSize(width, height int) BodyDetailModel {
	m.width = width
	m.height = height
	return m
}

// SetBody selects which body the view shows.
func (m BodyDetailModel) SetBody(name string) BodyDetailModel {
	m.bodyName = name
	return m
}

// UpdateFrame advances sim time and repaints.
func (m BodyDetailModel) UpdateFrame(sys *scene.System, simTime float64) BodyDetailModel {
	m.sys = sys
	m.simTime = simTime
	m.repaint()
	return m
}

// Update handles input messages.
func (m BodyDetailModel) Update(msg tea.Msg) (BodyDetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j":
			m.cycleBody(-1)
		case "k":
			m.cycleBody(1)
		case "left":
			m.spinOffset -= 0.02
		case "right":
			m.spinOffset += 0.02
		case "m":
			m.policy = (m.policy + 1) % 3
			m.applyConfig()
		case "i":
			m.indexed = !m.indexed
			m.applyConfig()
		}
		m.repaint()
	}
	return m, nil
}

// applyConfig maps the policy and palette toggles onto the renderer config.
func (m *BodyDetailModel) applyConfig() {
	cfg := render.DefaultConfig()
	switch m.policy {
	case glyphRamp:
		cfg.ForceRamp = true
	case glyphSolid:
		cfg.SolidColor = true
	}
	if m.indexed {
		cfg.ColorMode = render.ColorIndexed
	}
	m.renderer.SetConfig(cfg)
}

// allBodies flattens planets then moons in system order.
func (m *BodyDetailModel) allBodies() []*scene.Body {
	if m.sys == nil {
		return nil
	}
	var out []*scene.Body
	for i := range m.sys.Planets {
		p := &m.sys.Planets[i]
		out = append(out, p)
		for j := range p.Moons {
			out = append(out, &p.Moons[j])
		}
	}
	return out
}

// selected returns the shown body, defaulting to the first planet.
func (m *BodyDetailModel) selected() *scene.Body {
	bodies := m.allBodies()
	if len(bodies) == 0 {
		return nil
	}
	for _, b := range bodies {
		if b.Name == m.bodyName {
			return b
		}
	}
	return bodies[0]
}

func (m *BodyDetailModel) cycleBody(dir int) {
	bodies := m.allBodies()
	if len(bodies) == 0 {
		return
	}
	idx := 0
	for i, b := range bodies {
		if b.Name == m.bodyName {
			idx = i
			break
		}
	}
	idx = ((idx+dir)%len(bodies) + len(bodies)) % len(bodies)
	m.bodyName = bodies[idx].Name
	m.spinOffset = 0
}

// panelWidth is the stat column on the right edge.
const panelWidth = 34

func (m *BodyDetailModel) repaint() {
	body := m.selected()
	if body == nil || m.width < 10 {
		return
	}

	w := m.width - panelWidth
	if w < 20 {
		w = m.width
	}
	h := m.height
	if h < 5 {
		h = 5
	}
	if m.buf.Width() != w || m.buf.Height() != h {
		m.buf.Resize(w, h)
	} else {
		m.buf.Clear()
	}

	// Fill most of the viewport, capped so the halo band stays inside.
	radius := math.Min(float64(w), float64(h)*2) * 0.42
	if radius > float64(h)*0.44 {
		radius = float64(h) * 0.44
	}
	cx := float64(w) / 2
	cy := float64(h) / 2

	view := render.BodyView{
		X: cx, Y: cy,
		Radius: radius,
		Seed:   body.Seed,
		Kind:   body.Kind,
		Spin:   body.Phase0 + m.simTime*body.SpinRate + m.spinOffset,
		Tilt:   body.Tilt,
		Depth:  1,
		Ring:   body.Ring,
	}

	// Keep the real sun bearing: light arrives from the system origin's
	// direction at the body's current orbital position.
	wx, wy := m.bodyWorldPos(body)
	dist := math.Hypot(wx, wy)
	var sunX, sunY float64
	if dist > 1e-9 {
		sunX = cx - wx/dist*4000
		sunY = cy - wy/dist*4000
	} else {
		sunX, sunY = cx-4000, cy-4000
	}

	m.renderer.DrawPlanet(m.buf, view, sunX, sunY, nil, false)
}

// bodyWorldPos resolves a body's world position, walking planets for moons.
func (m *BodyDetailModel) bodyWorldPos(b *scene.Body) (float64, float64) {
	for i := range m.sys.Planets {
		p := &m.sys.Planets[i]
		px, py := scene.WorldPos(*p, 0, 0, m.simTime)
		if p == b {
			return px, py
		}
		for j := range p.Moons {
			if &p.Moons[j] == b {
				return scene.WorldPos(*b, px, py, m.simTime)
			}
		}
	}
	return 0, 0
}

// View renders the disc canvas beside the stat panel.
func (m BodyDetailModel) View() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for body view"
	}
	body := m.selected()
	if body == nil {
		return "No bodies generated"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, renderBuffer(m.buf), m.renderPanel(body))
}

func (m BodyDetailModel) renderPanel(body *scene.Body) string {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(10)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + headerStyle.Render(body.Name) + "\n\n")

	row := func(label, value string) {
		b.WriteString("  " + labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Kind", body.Kind.String())
	row("Radius", fmt.Sprintf("%.1f", body.Radius))
	if body.OrbitRadius > 0 {
		row("Orbit", fmt.Sprintf("%.0f", body.OrbitRadius))
		row("Period", fmt.Sprintf("%.0fs", body.OrbitPeriod))
	}
	row("Spin", fmt.Sprintf("%.3f turn/s", body.SpinRate))
	row("Tilt", fmt.Sprintf("%.2f rad", body.Tilt))
	if body.Ring {
		row("Ring", "yes")
	}
	if len(body.Moons) > 0 {
		row("Moons", fmt.Sprintf("%d", len(body.Moons)))
		for _, moon := range body.Moons {
			b.WriteString("  " + dimStyle.Render("  · "+moon.Name) + "\n")
		}
	}
	row("Seed", fmt.Sprintf("%x", body.Seed))

	b.WriteString("\n")
	policyName := [...]string{"texture", "ramp", "solid"}[m.policy]
	b.WriteString("  " + dimStyle.Render("Glyphs: ") + valueStyle.Render(policyName) + "\n")
	paletteName := "truecolor"
	if m.indexed {
		paletteName = "indexed"
	}
	b.WriteString("  " + dimStyle.Render("Palette: ") + valueStyle.Render(paletteName) + "\n")

	return b.String()
}

// SelectedName returns the shown body's name, or "".
func (m BodyDetailModel) SelectedName() string {
	if b := m.selected(); b != nil {
		return b.Name
	}
	return ""
}
