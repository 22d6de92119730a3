package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/planner/pkg/glyph"
	"tableflip.dev/planner/pkg/post"
)

var (
	platformChoices = glyph.Platforms()
	typeChoices     = glyph.ContentTypes()
)

// openCompose switches to the compose panel for the given day. When
// editing is non-nil the fields are pre-filled from that post and a save
// replaces it instead of creating a new one.
func (m *Model) openCompose(on time.Time, editing *post.Post) {
	m.mode = modeCompose
	m.composeOn = on
	m.editing = editing
	m.field = fieldTitle
	m.generating = false

	m.titleInput.Reset()
	m.notesInput.Reset()
	m.mediaInput.Reset()
	m.platformIdx = 0
	m.typeIdx = 0
	m.asDraft = false

	if editing != nil {
		m.titleInput.SetValue(editing.Title)
		m.notesInput.SetValue(editing.Notes)
		m.mediaInput.SetValue(editing.MediaURL)
		m.asDraft = editing.Status == glyph.Draft
		for i, p := range platformChoices {
			if p == editing.Platform {
				m.platformIdx = i
			}
		}
		for i, t := range typeChoices {
			if t == editing.Type {
				m.typeIdx = i
			}
		}
	}

	m.focusField()
}

func (m *Model) focusField() {
	m.titleInput.Blur()
	m.notesInput.Blur()
	m.mediaInput.Blur()
	switch m.field {
	case fieldTitle:
		m.titleInput.Focus()
	case fieldNotes:
		m.notesInput.Focus()
	case fieldMedia:
		m.mediaInput.Focus()
	}
}

func (m *Model) composePost() *post.Post {
	var p *post.Post
	if m.editing != nil {
		p = m.editing.Clone()
	} else {
		p = post.New("", post.At(m.composeOn), platformChoices[m.platformIdx], typeChoices[m.typeIdx])
	}
	p.Title = m.titleInput.Value()
	p.Notes = m.notesInput.Value()
	p.MediaURL = m.mediaInput.Value()
	p.Platform = platformChoices[m.platformIdx]
	p.Type = typeChoices[m.typeIdx]
	p.Date = post.At(m.composeOn)
	if m.asDraft {
		p.Status = glyph.Draft
	} else {
		p.Status = glyph.Scheduled
	}
	return p
}

func (m Model) onComposeKey(msg tea.KeyPressMsg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeMonth
		m.editing = nil
		m.status = "Compose cancelled"
		return m, tea.Batch(cmds...)

	case "tab", "down":
		m.field = (m.field + 1) % fieldCount
		m.focusField()
		return m, tea.Batch(cmds...)

	case "shift+tab", "up":
		m.field = (m.field + fieldCount - 1) % fieldCount
		m.focusField()
		return m, tea.Batch(cmds...)

	case "enter":
		draft := m.composePost()
		svc := m.svc
		ctx := m.ctx
		m.mode = modeMonth
		m.editing = nil
		return m, tea.Batch(append(cmds, func() tea.Msg {
			saved, err := svc.Save(ctx, draft)
			if err != nil {
				return errMsg{err}
			}
			return savedMsg{saved}
		})...)

	case "ctrl+g":
		if m.generating {
			return m, tea.Batch(cmds...)
		}
		m.generating = true
		m.status = "Generating caption..."
		draft := m.composePost()
		svc := m.svc
		ctx := m.ctx
		return m, tea.Batch(append(cmds, func() tea.Msg {
			notes, err := svc.GenerateCaption(ctx, draft)
			if err != nil {
				return errMsg{err}
			}
			return captionMsg{notes}
		})...)

	case "ctrl+a":
		path := m.mediaInput.Value()
		if path == "" {
			m.status = "Enter a file path in the media field first"
			return m, tea.Batch(cmds...)
		}
		svc := m.svc
		ctx := m.ctx
		return m, tea.Batch(append(cmds, func() tea.Msg {
			uri, err := svc.AttachMedia(ctx, path)
			if err != nil {
				return errMsg{err}
			}
			return mediaMsg{uri}
		})...)

	case "ctrl+d":
		m.asDraft = !m.asDraft
		return m, tea.Batch(cmds...)
	}

	// Selector rows cycle with h/l; text rows forward to the input.
	switch m.field {
	case fieldPlatform:
		switch msg.String() {
		case "h", "left":
			m.platformIdx = (m.platformIdx + len(platformChoices) - 1) % len(platformChoices)
		case "l", "right", " ":
			m.platformIdx = (m.platformIdx + 1) % len(platformChoices)
		}
	case fieldType:
		switch msg.String() {
		case "h", "left":
			m.typeIdx = (m.typeIdx + len(typeChoices) - 1) % len(typeChoices)
		case "l", "right", " ":
			m.typeIdx = (m.typeIdx + 1) % len(typeChoices)
		}
	case fieldTitle:
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		cmds = append(cmds, cmd)
	case fieldNotes:
		var cmd tea.Cmd
		m.notesInput, cmd = m.notesInput.Update(msg)
		cmds = append(cmds, cmd)
	case fieldMedia:
		var cmd tea.Cmd
		m.mediaInput, cmd = m.mediaInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
