package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-orrery/internal/scene"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestOrrery(t *testing.T) OrreryModel {
	t.Helper()
	m := NewOrreryModel()
	m = m.SetSize(120, 40)
	m = m.UpdateFrame(scene.Generate(7), 0)
	return m
}

func TestOrreryModelInit(t *testing.T) {
	m := NewOrreryModel()

	if m.focusIdx != -1 {
		t.Errorf("expected focusIdx -1 (Sun), got %d", m.focusIdx)
	}
	if m.scale() != 1.0 {
		t.Errorf("expected scale 1.0, got %f", m.scale())
	}
	if !m.showStars {
		t.Error("expected starfield on by default")
	}
	if m.labelMode != LabelFocused {
		t.Errorf("expected LabelFocused, got %d", m.labelMode)
	}
}

func TestOrreryModelSetSize(t *testing.T) {
	m := NewOrreryModel()
	m = m.SetSize(120, 40)

	if m.width != 120 {
		t.Errorf("expected width 120, got %d", m.width)
	}
	if m.height != 40 {
		t.Errorf("expected height 40, got %d", m.height)
	}
}

func TestOrreryModelFocusNavigation(t *testing.T) {
	m := newTestOrrery(t)

	if m.focusIdx != -1 {
		t.Errorf("expected focusIdx -1, got %d", m.focusIdx)
	}

	m, _ = m.Update(keyRune('k'))
	if m.focusIdx != 0 {
		t.Errorf("after next, expected focusIdx 0, got %d", m.focusIdx)
	}
	if m.FocusedName() == "" {
		t.Error("expected a focused body name")
	}

	m, _ = m.Update(keyRune('k'))
	if m.focusIdx != 1 {
		t.Errorf("after next again, expected focusIdx 1, got %d", m.focusIdx)
	}

	m, _ = m.Update(keyRune('j'))
	if m.focusIdx != 0 {
		t.Errorf("after prev, expected focusIdx 0, got %d", m.focusIdx)
	}

	// Prev from the first body wraps to the Sun.
	m, _ = m.Update(keyRune('j'))
	if m.focusIdx != -1 {
		t.Errorf("after wrap, expected focusIdx -1, got %d", m.focusIdx)
	}
	if m.FocusedName() != "" {
		t.Errorf("Sun focus should report empty name, got %q", m.FocusedName())
	}
}

func TestOrreryModelZoom(t *testing.T) {
	m := newTestOrrery(t)

	m, _ = m.Update(keyRune('+'))
	if m.scale() != 1.5 {
		t.Errorf("expected scale 1.5 after zoom in, got %f", m.scale())
	}

	m, _ = m.Update(keyRune('-'))
	if m.scale() != 1.0 {
		t.Errorf("expected scale 1.0 after zoom out, got %f", m.scale())
	}

	m, _ = m.Update(keyRune('+'))
	m, _ = m.Update(keyRune('+'))
	m, _ = m.Update(keyRune('0'))
	if m.scale() != 1.0 {
		t.Errorf("expected scale 1.0 after reset, got %f", m.scale())
	}
}

func TestOrreryModelPanAndReset(t *testing.T) {
	m := newTestOrrery(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.panX <= 0 {
		t.Errorf("expected panX > 0 after pan right, got %f", m.panX)
	}
	if !m.userPanned {
		t.Error("expected userPanned after arrow key")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.panY >= 0 {
		t.Errorf("expected panY < 0 after pan up, got %f", m.panY)
	}

	m, _ = m.Update(keyRune('r'))
	if m.panX != 0 || m.panY != 0 || m.userPanned {
		t.Error("expected reset to clear pan state")
	}
}

func TestOrreryModelCenterOnFocused(t *testing.T) {
	m := newTestOrrery(t)

	m, _ = m.Update(keyRune('k'))
	m, _ = m.Update(keyRune('f'))

	bi := m.focusedBody()
	if bi == nil {
		t.Fatal("expected a focused body")
	}
	if m.panX != bi.WorldX || m.panY != bi.WorldY {
		t.Errorf("expected camera on (%f, %f), got (%f, %f)",
			bi.WorldX, bi.WorldY, m.panX, m.panY)
	}
}

func TestOrreryModelToggles(t *testing.T) {
	m := newTestOrrery(t)

	m, _ = m.Update(keyRune('t'))
	if m.ShowStars() {
		t.Error("expected stars off after toggle")
	}

	m, _ = m.Update(keyRune('l'))
	if m.labelMode != LabelAll {
		t.Errorf("expected LabelAll, got %d", m.labelMode)
	}
	m, _ = m.Update(keyRune('l'))
	if m.labelMode != LabelNone {
		t.Errorf("expected LabelNone, got %d", m.labelMode)
	}

	m, _ = m.Update(keyRune('d'))
	if m.lodEnabled {
		t.Error("expected detail blocks off after toggle")
	}
}

func TestOrreryModelEnterOpensFocusedBody(t *testing.T) {
	m := newTestOrrery(t)

	// On the Sun: enter produces no command.
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command when the Sun is focused")
	}

	m, _ = m.Update(keyRune('k'))
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected an open command for a focused body")
	}
	msg, ok := cmd().(OpenBodyMsg)
	if !ok {
		t.Fatalf("expected OpenBodyMsg, got %T", cmd())
	}
	if msg.Name != m.FocusedName() {
		t.Errorf("expected %q, got %q", m.FocusedName(), msg.Name)
	}
}

func TestOrreryModelViewRendersCells(t *testing.T) {
	m := newTestOrrery(t)
	out := m.View()

	if out == "" {
		t.Fatal("expected non-empty view")
	}
	lines := strings.Split(out, "\n")
	if len(lines) < 10 {
		t.Errorf("expected a multi-line view, got %d lines", len(lines))
	}
}

func TestOrreryModelViewTooSmall(t *testing.T) {
	m := NewOrreryModel()
	m = m.SetSize(20, 5)
	if !strings.Contains(m.View(), "too small") {
		t.Error("expected too-small notice")
	}
}

func TestRenderBufferLineCount(t *testing.T) {
	m := newTestOrrery(t)
	out := renderBuffer(m.buf)
	lines := strings.Split(out, "\n")
	if len(lines) != m.buf.Height() {
		t.Errorf("expected %d lines, got %d", m.buf.Height(), len(lines))
	}
}
