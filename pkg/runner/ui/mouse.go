package ui

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/planner/pkg/agenda"
	"tableflip.dev/planner/pkg/gesture"
	"tableflip.dev/planner/pkg/post"
)

// Grid geometry used by both the view and the mouse hit test. Cells are
// fixed-size; the grid starts below the one-line header and weekday row.
const (
	cellWidth  = 18
	cellHeight = 4
	gridTop    = 2
)

// onMouseClick routes a press either to the pan controller (while the
// modifier is held) or to the day cell under the pointer.
func (m Model) onMouseClick(msg tea.MouseClickMsg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	if m.mode != modeMonth {
		return m, tea.Batch(cmds...)
	}
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return m, tea.Batch(cmds...)
	}

	if m.pan.State() != gesture.Idle {
		m.pan.PointerDown(mouse.X, mouse.Y, m.scrollLeft, m.scrollTop)
		return m, tea.Batch(cmds...)
	}

	if idx, ok := m.cellAt(mouse.X, mouse.Y); ok {
		m.cursor = idx
		onDay := m.postsOn(idx)
		switch {
		case len(onDay) == 0:
			m.openCompose(m.days[idx].Date, nil)
		case len(onDay) == 1:
			m.detail = onDay[0]
			m.mode = modeDetail
		default:
			m.overflowOn = m.days[idx].Date
			m.mode = modeOverflow
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) onMouseMotion(msg tea.MouseMotionMsg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	if m.mode != modeMonth {
		return m, tea.Batch(cmds...)
	}
	mouse := msg.Mouse()
	ev := m.pan.PointerMove(mouse.X, mouse.Y)
	switch ev.Action {
	case gesture.ActionScroll:
		m.scrollLeft = ev.ScrollLeft
		m.scrollTop = ev.ScrollTop
	case gesture.ActionMonthChange:
		m.changeMonth(ev.Delta)
	}
	return m, tea.Batch(cmds...)
}

// cellAt maps terminal coordinates to a grid cell index, honoring the
// current scroll offset.
func (m *Model) cellAt(x, y int) (int, bool) {
	x += m.scrollLeft
	y += m.scrollTop
	y -= gridTop
	if x < 0 || y < 0 {
		return 0, false
	}
	col := x / cellWidth
	row := y / cellHeight
	if col > 6 {
		return 0, false
	}
	idx := row*7 + col
	if idx < 0 || idx >= len(m.days) {
		return 0, false
	}
	return idx, true
}

func (m *Model) postsOn(idx int) []*post.Post {
	if idx < 0 || idx >= len(m.days) {
		return nil
	}
	return agenda.On(m.posts, m.days[idx].Date)
}

func (m *Model) postsOnCursor() []*post.Post {
	return m.postsOn(m.cursor)
}
