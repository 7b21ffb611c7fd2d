// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/scene"
	"github.com/litescript/ls-orrery/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewOrrery ViewMode = iota
	ViewBodyDetail
)

// Msg types for Bubble Tea
type (
	// FrameTickMsg drives the render loop.
	FrameTickMsg time.Time

	// OpenBodyMsg requests opening the detail view for a body.
	OpenBodyMsg struct {
		Name string
	}
)

// Time scale bounds in sim-seconds per wall second.
const (
	minTimeScale = 0.125
	maxTimeScale = 64.0
)

// Model is the root Bubble Tea model.
type Model struct {
	sys *scene.System
	fps int

	// UI state
	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	paused    bool
	timeScale float64
	simTime   float64
	lastFrame time.Time

	// Sub-models
	orrery OrreryModel
	detail BodyDetailModel
}

// New creates the root UI model for a generated system.
func New(sys *scene.System, fps int) Model {
	if fps < 1 {
		fps = 30
	}
	return Model{
		sys:       sys,
		fps:       fps,
		viewMode:  ViewOrrery,
		timeScale: 1.0,
		orrery:    NewOrreryModel(),
		detail:    NewBodyDetailModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return frameTickCmd(m.fps)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "o":
			m.viewMode = ViewOrrery
		case "2", "b":
			m.viewMode = ViewBodyDetail
		case "tab":
			m.viewMode = (m.viewMode + 1) % 2

		case " ":
			m.paused = !m.paused

		case ",":
			m.timeScale /= 2
			if m.timeScale < minTimeScale {
				m.timeScale = minTimeScale
			}
		case ".":
			m.timeScale *= 2
			if m.timeScale > maxTimeScale {
				m.timeScale = maxTimeScale
			}

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Logo and tabs take ~8 lines, footer 2
		contentHeight := msg.Height - 10
		m.orrery = m.orrery.SetSize(msg.Width, contentHeight)
		m.detail = m.detail.SetSize(msg.Width, contentHeight)
		m.redraw()

	case FrameTickMsg:
		cmds = append(cmds, frameTickCmd(m.fps))
		now := time.Time(msg)
		if !m.lastFrame.IsZero() && !m.paused {
			m.simTime += now.Sub(m.lastFrame).Seconds() * m.timeScale
		}
		m.lastFrame = now
		m.redraw()

	case OpenBodyMsg:
		m.detail = m.detail.SetBody(msg.Name)
		m.viewMode = ViewBodyDetail
		m.redraw()

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

// redraw pushes the current sim time into the active view.
func (m *Model) redraw() {
	switch m.viewMode {
	case ViewOrrery:
		m.orrery = m.orrery.UpdateFrame(m.sys, m.simTime)
	case ViewBodyDetail:
		m.detail = m.detail.UpdateFrame(m.sys, m.simTime)
	}
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewOrrery:
		m.orrery, cmd = m.orrery.Update(msg)
	case ViewBodyDetail:
		m.detail, cmd = m.detail.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewOrrery:
		content = m.orrery.View()
	case ViewBodyDetail:
		content = m.detail.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs() + "\n"
}

func (m Model) renderLogo() string {
	// ASCII art with smooth truecolor gradient
	logo := []string{
		`   ██████╗ ██████╗ ██████╗ ███████╗██████╗ ██╗   ██╗`,
		`  ██╔═══██╗██╔══██╗██╔══██╗██╔════╝██╔══██╗╚██╗ ██╔╝`,
		`  ██║   ██║██████╔╝██████╔╝█████╗  ██████╔╝ ╚████╔╝ `,
		`  ██║   ██║██╔══██╗██╔══██╗██╔══╝  ██╔══██╗  ╚██╔╝  `,
		`  ╚██████╔╝██║  ██║██║  ██║███████╗██║  ██║   ██║   `,
		`   ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝   ╚═╝   `,
	}

	var b strings.Builder
	b.WriteString("\n")

	for row, line := range logo {
		runes := []rune(line)
		for col, r := range runes {
			color := gradientColor(col, row, len(runes), len(logo))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	tagline := fmt.Sprintf("  %s · Procedural Orrery | v%s", m.sys.Name, version.Version)
	b.WriteString(muted.Render(tagline))
	b.WriteString("\n")

	return b.String()
}

// gradientColor returns a hex color for a position in the logo gradient.
// Horizontal sweep from deep gold through orange to magenta, fading
// toward the bottom rows.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	// Gold (#F5C542) -> Orange (#F0842C) -> Magenta (#D13B8F)
	var r, g, b float64
	if xRatio < 0.5 {
		t := xRatio / 0.5
		r = 245 + t*(240-245)
		g = 197 + t*(132-197)
		b = 66 + t*(44-66)
	} else {
		t := (xRatio - 0.5) / 0.5
		r = 240 + t*(209-240)
		g = 132 + t*(59-132)
		b = 44 + t*(143-44)
	}

	fade := 1.0 - yRatio*0.45
	clamp := func(v float64) int {
		i := int(v)
		if i < 0 {
			return 0
		}
		if i > 255 {
			return 255
		}
		return i
	}
	return fmt.Sprintf("#%02X%02X%02X", clamp(r*fade), clamp(g*fade), clamp(b*fade))
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Orrery", "[2] Body"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F0842C")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F5C542"))

	var status string
	if m.paused {
		status = accentStyle.Render("⏸ paused")
	} else {
		status = accentStyle.Render(fmt.Sprintf("▸ %gx", m.timeScale))
	}
	status += dimStyle.Render(fmt.Sprintf("  t=%.0fs", m.simTime))

	var help string
	switch m.viewMode {
	case ViewBodyDetail:
		help = dimStyle.Render("j/k: body | ←/→: rotate | m: glyphs | i: palette")
	default:
		help = dimStyle.Render("j/k: focus | +/-: zoom | arrows: pan | f: find | enter: detail | l: labels | t: stars | d: detail-blocks | r: reset")
	}

	return "  " + status + "  " + dimStyle.Render("|") + "  " + help +
		"  " + dimStyle.Render("| space: pause | ,/.: speed | q: quit")
}

func frameTickCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return FrameTickMsg(t)
	})
}
