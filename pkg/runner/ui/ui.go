// Package ui is the interactive planning calendar: a month grid, an
// upcoming strip, and a compose panel, over the shared app.Service.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/calendar"
	"tableflip.dev/planner/pkg/gesture"
	"tableflip.dev/planner/pkg/post"
)

// Model states
type mode int

const (
	modeMonth mode = iota
	modeCompose
	modeOverflow
	modeDetail
	modeMedia
	modeCommand
	modeHelp
)

// compose focus order
const (
	fieldTitle = iota
	fieldPlatform
	fieldType
	fieldNotes
	fieldMedia
	fieldCount
)

// Model contains UI state.
type Model struct {
	svc *app.Service
	ctx context.Context

	mode mode

	year  int
	month time.Month
	now   func() time.Time

	days   []calendar.Day
	posts  []*post.Post
	cursor int // selected grid cell, 0..41

	pan        *gesture.Controller
	scrollLeft int
	scrollTop  int

	// compose state
	field       int
	titleInput  textinput.Model
	notesInput  textinput.Model
	mediaInput  textinput.Model
	platformIdx int
	typeIdx     int
	asDraft     bool
	editing     *post.Post // nil when composing a new post
	composeOn   time.Time
	generating  bool

	// command-line state
	cmdInput textinput.Model

	overflowOn time.Time
	detail     *post.Post

	showUpcoming bool

	status string

	termWidth  int
	termHeight int
}

// New creates a UI model backed by the Service.
func New(svc *app.Service) Model {
	ti := textinput.New()
	ti.Placeholder = "What is the post about?"
	ti.CharLimit = 120

	notes := textinput.New()
	notes.Placeholder = "Caption / notes"
	notes.CharLimit = 2000

	media := textinput.New()
	media.Placeholder = "Path to image or video"
	media.CharLimit = 512

	cmd := textinput.New()
	cmd.Placeholder = "command"

	threshold := gesture.DefaultThreshold
	if svc != nil {
		threshold = svc.GestureThreshold()
	}

	now := time.Now()
	m := Model{
		svc:          svc,
		ctx:          context.Background(),
		mode:         modeMonth,
		year:         now.Year(),
		month:        now.Month(),
		now:          time.Now,
		pan:          gesture.New(threshold),
		titleInput:   ti,
		notesInput:   notes,
		mediaInput:   media,
		cmdInput:     cmd,
		showUpcoming: true,
		status:       "h/l/j/k move, enter plan, v view, [/] month, space pan, m media, ? help",
	}
	m.rebuildGrid()
	m.cursor = m.indexOfToday()
	return m
}

// Init loads initial data.
func (m Model) Init() tea.Cmd {
	return m.loadPosts()
}

func (m *Model) loadPosts() tea.Cmd {
	return func() tea.Msg {
		if m.svc == nil {
			return postsLoadedMsg{nil}
		}
		posts, err := m.svc.Posts(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return postsLoadedMsg{posts}
	}
}

func (m *Model) rebuildGrid() {
	m.days = calendar.BuildMonth(m.year, m.month, m.now())
	if m.cursor < 0 || m.cursor >= len(m.days) {
		m.cursor = 0
	}
}

func (m *Model) indexOfToday() int {
	for i, d := range m.days {
		if d.IsToday {
			return i
		}
	}
	return 0
}

func (m *Model) changeMonth(delta int) {
	m.year, m.month = calendar.ChangeMonth(m.year, m.month, delta)
	m.rebuildGrid()
	m.scrollLeft, m.scrollTop = 0, 0
	m.status = calendar.MonthLabel(m.year, m.month)
}

// messages
type errMsg struct{ err error }
type postsLoadedMsg struct{ posts []*post.Post }
type savedMsg struct{ p *post.Post }
type captionMsg struct{ notes string }
type mediaMsg struct{ uri string }

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
		m.generating = false
	case postsLoadedMsg:
		m.posts = msg.posts
	case savedMsg:
		m.status = "Saved " + msg.p.Title
		cmds = append(cmds, m.loadPosts())
	case captionMsg:
		m.generating = false
		m.notesInput.SetValue(msg.notes)
		m.status = "Caption generated"
	case mediaMsg:
		m.mediaInput.SetValue(msg.uri)
		m.status = "Media attached"
	case tea.MouseClickMsg:
		return m.onMouseClick(msg, cmds)
	case tea.MouseMotionMsg:
		return m.onMouseMotion(msg, cmds)
	case tea.MouseReleaseMsg:
		m.pan.PointerUp()
	case tea.KeyPressMsg:
		return m.onKey(msg, cmds)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) onKey(msg tea.KeyPressMsg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeHelp:
		if key := msg.String(); key == "q" || key == "esc" || key == "?" {
			m.mode = modeMonth
		}
	case modeDetail:
		switch msg.String() {
		case "q", "esc":
			m.mode = modeMonth
			m.detail = nil
		case "enter", "i":
			if m.detail != nil {
				m.openCompose(m.detail.Date.Local(), m.detail)
			}
		}
	case modeOverflow:
		switch msg.String() {
		case "q", "esc":
			m.mode = modeMonth
		case "o":
			m.openCompose(m.overflowOn, nil)
		}
	case modeMedia:
		if key := msg.String(); key == "q" || key == "esc" || key == "m" {
			m.mode = modeMonth
		}
	case modeCommand:
		switch msg.String() {
		case "enter":
			input := strings.TrimSpace(m.cmdInput.Value())
			switch input {
			case "q", "quit", "exit":
				cmds = append(cmds, tea.Quit)
			case "":
				// nothing
			default:
				m.status = fmt.Sprintf("Unknown command: %s", input)
			}
			m.mode = modeMonth
			m.cmdInput.Reset()
			m.cmdInput.Blur()
		case "esc":
			m.mode = modeMonth
			m.cmdInput.Reset()
			m.cmdInput.Blur()
			m.status = "Command cancelled"
		default:
			var cmd tea.Cmd
			m.cmdInput, cmd = m.cmdInput.Update(msg)
			cmds = append(cmds, cmd)
		}
	case modeCompose:
		return m.onComposeKey(msg, cmds)
	case modeMonth:
		switch msg.String() {
		case ":":
			m.mode = modeCommand
			m.cmdInput.Reset()
			if cmd := m.cmdInput.Focus(); cmd != nil {
				cmds = append(cmds, cmd)
			}
			m.status = "COMMAND: :q to quit"

		case " ", "space":
			// Terminals deliver no key-up, so space toggles the pan
			// modifier instead of holding it.
			if m.pan.State() == gesture.Idle {
				m.pan.ModifierDown()
				m.status = "Pan mode: drag to scroll, long vertical drag switches month, space to exit"
			} else {
				m.pan.ModifierUp()
				m.scrollLeft, m.scrollTop = 0, 0
				m.status = "Pan mode off"
			}

		case "h", "left":
			m.moveCursor(-1)
		case "l", "right":
			m.moveCursor(1)
		case "j", "down":
			m.moveCursor(7)
		case "k", "up":
			m.moveCursor(-7)
		case "g":
			m.cursor = 0
		case "G":
			m.cursor = len(m.days) - 1

		case "[", "p":
			m.changeMonth(-1)
		case "]", "n":
			m.changeMonth(1)
		case "t":
			now := m.now()
			m.year, m.month = now.Year(), now.Month()
			m.rebuildGrid()
			m.cursor = m.indexOfToday()
			m.status = "Back to today"

		case "enter", "o":
			if m.pan.ClicksEnabled() {
				m.openCompose(m.selectedDate(), nil)
			}
		case "v":
			if !m.pan.ClicksEnabled() {
				break
			}
			onDay := m.postsOnCursor()
			switch {
			case len(onDay) == 1:
				m.detail = onDay[0]
				m.mode = modeDetail
			case len(onDay) > 1:
				m.overflowOn = m.selectedDate()
				m.mode = modeOverflow
			}
		case "m":
			m.mode = modeMedia
		case "u":
			m.showUpcoming = !m.showUpcoming
		case "r":
			cmds = append(cmds, m.loadPosts())
		case "?":
			m.mode = modeHelp
		case "q":
			m.status = "Use :q to quit"
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	switch {
	case next < 0:
		m.changeMonth(-1)
		m.cursor = clampIndex(next+calendar.GridSize, len(m.days))
	case next >= len(m.days):
		m.changeMonth(1)
		m.cursor = clampIndex(next-calendar.GridSize, len(m.days))
	default:
		m.cursor = next
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (m *Model) selectedDate() time.Time {
	if m.cursor < 0 || m.cursor >= len(m.days) {
		return calendar.FirstOfMonth(m.year, m.month)
	}
	return m.days[m.cursor].Date
}

// Run opens the planner TUI over the given service.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
