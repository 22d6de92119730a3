package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/gesture"
	"tableflip.dev/planner/pkg/glyph"
	"tableflip.dev/planner/pkg/post"
	"tableflip.dev/planner/pkg/store"
)

func newTestModel() Model {
	svc := app.New(store.NewMemory(), &store.Config{GestureThreshold: 200, UpcomingLimit: 15})
	m := New(svc)
	m.now = func() time.Time {
		return time.Date(2024, time.April, 10, 12, 0, 0, 0, time.Local)
	}
	m.year, m.month = 2024, time.April
	m.rebuildGrid()
	m.cursor = m.indexOfToday()
	return m
}

func press(t *testing.T, m Model, msg tea.KeyPressMsg) Model {
	t.Helper()
	model, _ := m.Update(msg)
	return model.(Model)
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// collect runs a command tree and returns every message it produces.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestMonthNavigationKeys(t *testing.T) {
	m := newTestModel()

	m = press(t, m, key(']'))
	if m.year != 2024 || m.month != time.May {
		t.Fatalf("expected May 2024, got %v %d", m.month, m.year)
	}
	m = press(t, m, key('['))
	m = press(t, m, key('['))
	if m.year != 2024 || m.month != time.March {
		t.Fatalf("expected March 2024, got %v %d", m.month, m.year)
	}
	m = press(t, m, key('t'))
	if m.year != 2024 || m.month != time.April {
		t.Fatalf("expected jump back to April 2024, got %v %d", m.month, m.year)
	}
	if !m.days[m.cursor].IsToday {
		t.Fatalf("expected cursor on today after 't'")
	}
}

func TestCursorMovementSpillsIntoAdjacentMonth(t *testing.T) {
	m := newTestModel()
	m.cursor = 0

	m = press(t, m, key('h'))
	if m.month != time.March {
		t.Fatalf("expected spill into previous month, got %v", m.month)
	}

	m.year, m.month = 2024, time.April
	m.rebuildGrid()
	m.cursor = len(m.days) - 1
	m = press(t, m, key('l'))
	if m.month != time.May {
		t.Fatalf("expected spill into next month, got %v", m.month)
	}
}

func TestSpaceTogglesPanMode(t *testing.T) {
	m := newTestModel()
	if !m.pan.ClicksEnabled() {
		t.Fatalf("expected clicks enabled at start")
	}

	m = press(t, m, tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if m.pan.State() != gesture.PanReady {
		t.Fatalf("expected pan armed, got %v", m.pan.State())
	}
	if m.pan.ClicksEnabled() {
		t.Fatalf("clicks must be suppressed while pan mode is on")
	}

	m = press(t, m, tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if m.pan.State() != gesture.Idle {
		t.Fatalf("expected pan off after second toggle, got %v", m.pan.State())
	}
}

func TestMouseDragScrollsViewport(t *testing.T) {
	m := newTestModel()
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})

	model, _ := m.Update(tea.MouseClickMsg{X: 50, Y: 10, Button: tea.MouseLeft})
	m = model.(Model)
	model, _ = m.Update(tea.MouseMotionMsg{X: 20, Y: 30, Button: tea.MouseLeft})
	m = model.(Model)

	if m.scrollLeft != 30 || m.scrollTop != -20 {
		t.Fatalf("expected scroll (30,-20), got (%d,%d)", m.scrollLeft, m.scrollTop)
	}
}

func TestMouseDragPastThresholdChangesMonth(t *testing.T) {
	m := newTestModel()
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})

	model, _ := m.Update(tea.MouseClickMsg{X: 0, Y: 0, Button: tea.MouseLeft})
	m = model.(Model)
	model, _ = m.Update(tea.MouseMotionMsg{X: 0, Y: 250, Button: tea.MouseLeft})
	m = model.(Model)

	if m.month != time.March {
		t.Fatalf("downward drag should go to previous month, got %v", m.month)
	}
	if m.scrollLeft != 0 || m.scrollTop != 0 {
		t.Fatalf("month change resets scroll, got (%d,%d)", m.scrollLeft, m.scrollTop)
	}
	// the drag was consumed; further motion without a new press is inert
	model, _ = m.Update(tea.MouseMotionMsg{X: 0, Y: 260, Button: tea.MouseLeft})
	m = model.(Model)
	if m.month != time.March {
		t.Fatalf("consumed drag must not fire again, got %v", m.month)
	}
}

func TestClickOnEmptyDayOpensCompose(t *testing.T) {
	m := newTestModel()

	model, _ := m.Update(tea.MouseClickMsg{X: 1, Y: gridTop + 1, Button: tea.MouseLeft})
	m = model.(Model)
	if m.mode != modeCompose {
		t.Fatalf("expected compose mode, got %v", m.mode)
	}
	if !m.composeOn.Equal(m.days[0].Date) {
		t.Fatalf("compose date should match the clicked cell")
	}
}

func TestClickIgnoredWhilePanArmed(t *testing.T) {
	m := newTestModel()
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})

	model, _ := m.Update(tea.MouseClickMsg{X: 1, Y: gridTop + 1, Button: tea.MouseLeft})
	m = model.(Model)
	if m.mode != modeMonth {
		t.Fatalf("clicks must not open panels while pan mode is armed")
	}
	if m.pan.State() != gesture.Panning {
		t.Fatalf("armed click should start a drag, got %v", m.pan.State())
	}
}

func TestClickOnBusyDayOpensDetailOrOverflow(t *testing.T) {
	m := newTestModel()
	ctx := context.Background()

	on := m.days[8].Date.Add(9 * time.Hour)
	if _, err := m.svc.Save(ctx, post.New("Solo", post.At(on), glyph.Instagram, glyph.Reel)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	for _, msg := range collect(m.loadPosts()) {
		model, _ := m.Update(msg)
		m = model.(Model)
	}

	x := (8 % 7) * cellWidth
	y := gridTop + (8/7)*cellHeight
	model, _ := m.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
	m = model.(Model)
	if m.mode != modeDetail {
		t.Fatalf("one post on the day should open the detail view, got %v", m.mode)
	}
	if m.detail == nil || m.detail.Title != "Solo" {
		t.Fatalf("wrong detail post: %+v", m.detail)
	}

	m.mode = modeMonth
	m.detail = nil
	if _, err := m.svc.Save(ctx, post.New("Second", post.At(on), glyph.Twitter, glyph.Post)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	for _, msg := range collect(m.loadPosts()) {
		model, _ := m.Update(msg)
		m = model.(Model)
	}
	model, _ = m.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
	m = model.(Model)
	if m.mode != modeOverflow {
		t.Fatalf("two posts on the day should open the overflow list, got %v", m.mode)
	}
}

func TestCommandModeQuit(t *testing.T) {
	m := newTestModel()
	m = press(t, m, key(':'))
	if m.mode != modeCommand {
		t.Fatalf("expected command mode")
	}
	m.cmdInput.SetValue("q")
	model, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = model.(Model)
	if m.mode != modeMonth {
		t.Fatalf("expected return to month mode")
	}
	quit := false
	for _, msg := range collect(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			quit = true
		}
	}
	if !quit {
		t.Fatalf("expected :q to quit")
	}
}
