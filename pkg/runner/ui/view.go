package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	xansi "github.com/charmbracelet/x/ansi"

	"tableflip.dev/planner/pkg/agenda"
	"tableflip.dev/planner/pkg/calendar"
	"tableflip.dev/planner/pkg/gesture"
	"tableflip.dev/planner/pkg/post"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	weekdayStyle  = lipgloss.NewStyle().Faint(true).Underline(true)
	adjacentStyle = lipgloss.NewStyle().Faint(true)
	pastStyle     = lipgloss.NewStyle().Faint(true)
	todayStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Underline(true)
	openStyle     = lipgloss.NewStyle()
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	entryStyle    = lipgloss.NewStyle().Faint(false)
	moreStyle     = lipgloss.NewStyle().Faint(true).Italic(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2)
	labelStyle    = lipgloss.NewStyle().Faint(true)
)

// View renders the whole screen for the current mode.
func (m Model) View() string {
	switch m.mode {
	case modeCompose:
		return m.viewCompose()
	case modeDetail:
		return m.viewDetail()
	case modeOverflow:
		return m.viewOverflow()
	case modeMedia:
		return m.viewMedia()
	case modeHelp:
		return m.viewHelp()
	}

	body := m.viewMonth()
	if m.mode == modeCommand {
		body += "\n:" + m.cmdInput.View()
	}
	return body + "\n" + m.viewStatus()
}

func (m Model) viewMonth() string {
	header := headerStyle.Render(calendar.MonthLabel(m.year, m.month))
	if m.pan.State() != gesture.Idle {
		header += "  " + labelStyle.Render("[pan]")
	}

	var week strings.Builder
	for _, wd := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		week.WriteString(weekdayStyle.Render(padCell(wd)))
	}

	rows := make([]string, 0, 6)
	for row := 0; row < 6; row++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			cells = append(cells, m.renderCell(row*7+col))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	grid := strings.Join(rows, "\n")
	grid = cropViewport(grid, m.scrollLeft, m.scrollTop, m.termWidth)

	out := header + "\n" + week.String() + "\n" + grid
	if m.showUpcoming {
		out += "\n" + m.viewUpcoming()
	}
	return out
}

func (m Model) renderCell(idx int) string {
	if idx >= len(m.days) {
		return lipgloss.NewStyle().Width(cellWidth).Height(cellHeight).Render("")
	}
	d := m.days[idx]

	dayStyle := openStyle
	switch {
	case d.IsToday:
		dayStyle = todayStyle
	case !d.IsCurrentMonth:
		dayStyle = adjacentStyle
	case d.IsPast:
		dayStyle = pastStyle
	}

	lines := []string{dayStyle.Render(fmt.Sprintf("%2d", d.Date.Day()))}
	onDay := m.postsOn(idx)
	for i, p := range onDay {
		if i == cellHeight-2 && len(onDay) > cellHeight-1 {
			lines = append(lines, moreStyle.Render(fmt.Sprintf("+%d more", len(onDay)-i)))
			break
		}
		g := p.Platform.Glyph()
		mark := lipgloss.NewStyle().Foreground(lipgloss.Color(g.Color)).Render(g.Symbol)
		title := p.Title
		if len(title) > cellWidth-4 {
			title = title[:cellWidth-5] + "…"
		}
		lines = append(lines, entryStyle.Render(mark+" "+title))
	}

	cell := lipgloss.NewStyle().Width(cellWidth).Height(cellHeight)
	if idx == m.cursor && m.pan.State() == gesture.Idle {
		cell = cell.Inherit(selectedStyle)
	}
	return cell.Render(strings.Join(lines, "\n"))
}

// cropViewport applies the pan scroll offsets: lines scrolled above the top
// are dropped and each remaining line is cut from the left edge.
func cropViewport(s string, left, top, width int) string {
	lines := strings.Split(s, "\n")
	if top > 0 {
		if top >= len(lines) {
			return ""
		}
		lines = lines[top:]
	}
	if left <= 0 && width <= 0 {
		return strings.Join(lines, "\n")
	}
	right := left + width
	if width <= 0 {
		right = left + 7*cellWidth
	}
	for i, line := range lines {
		lines[i] = xansi.Cut(line, max(left, 0), right)
	}
	return strings.Join(lines, "\n")
}

func padCell(s string) string {
	if len(s) >= cellWidth {
		return s[:cellWidth]
	}
	return s + strings.Repeat(" ", cellWidth-len(s))
}

func (m Model) viewUpcoming() string {
	groups := agenda.Upcoming(m.posts, m.now(), m.upcomingLimit())
	lines := []string{headerStyle.Render("Upcoming")}
	if len(groups) == 0 {
		lines = append(lines, moreStyle.Render("nothing scheduled"))
		return strings.Join(lines, "\n")
	}
	today := calendar.EpochDay(m.now())
	for _, g := range groups {
		day := g.Day.Format("Mon Jan _2")
		if calendar.EpochDay(g.Day) == today {
			day = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Render("Today")
		} else {
			day = labelStyle.Render(day)
		}
		titles := make([]string, 0, len(g.Posts))
		for _, p := range g.Posts {
			pg := p.Platform.Glyph()
			mark := lipgloss.NewStyle().Foreground(lipgloss.Color(pg.Color)).Render(pg.Symbol)
			titles = append(titles, mark+" "+p.Title)
		}
		lines = append(lines, day+"  "+strings.Join(titles, "  "))
	}
	return strings.Join(lines, "\n")
}

func (m Model) upcomingLimit() int {
	if m.svc == nil || m.svc.Config == nil || m.svc.Config.UpcomingLimit <= 0 {
		return agenda.DefaultUpcomingLimit
	}
	return m.svc.Config.UpcomingLimit
}

func (m Model) viewCompose() string {
	title := "Plan post"
	if m.editing != nil {
		title = "Edit post"
	}
	title += " · " + m.composeOn.Format("Mon Jan _2 2006")

	status := "scheduled"
	if m.asDraft {
		status = "draft"
	}

	row := func(i int, label, value string) string {
		marker := "  "
		if m.field == i {
			marker = "→ "
		}
		return marker + labelStyle.Render(padRight(label, 10)) + value
	}

	lines := []string{
		headerStyle.Render(title),
		"",
		row(fieldTitle, "Title", m.titleInput.View()),
		row(fieldPlatform, "Platform", cycleRow(platformNames(), m.platformIdx)),
		row(fieldType, "Type", cycleRow(typeNames(), m.typeIdx)),
		row(fieldNotes, "Notes", m.notesInput.View()),
		row(fieldMedia, "Media", m.mediaInput.View()),
		"",
		labelStyle.Render("Status: ") + status,
	}
	if m.generating {
		lines = append(lines, moreStyle.Render("generating caption..."))
	}
	help := "tab next field · h/l pick · ctrl+g caption · ctrl+a attach · ctrl+d draft · enter save · esc cancel"
	lines = append(lines, "", labelStyle.Render(help))

	return panelStyle.Render(strings.Join(lines, "\n")) + "\n" + m.viewStatus()
}

func cycleRow(names []string, idx int) string {
	parts := make([]string, len(names))
	for i, n := range names {
		if i == idx {
			parts[i] = lipgloss.NewStyle().Bold(true).Underline(true).Render(n)
		} else {
			parts[i] = labelStyle.Render(n)
		}
	}
	return strings.Join(parts, " ")
}

func platformNames() []string {
	out := make([]string, len(platformChoices))
	for i, p := range platformChoices {
		out[i] = p.String()
	}
	return out
}

func typeNames() []string {
	out := make([]string, len(typeChoices))
	for i, t := range typeChoices {
		out[i] = t.String()
	}
	return out
}

func (m Model) viewDetail() string {
	if m.detail == nil {
		return m.viewStatus()
	}
	p := m.detail
	lines := []string{
		headerStyle.Render(p.Title),
		"",
		labelStyle.Render("When      ") + p.Date.Format("Mon Jan _2 2006 15:04"),
		labelStyle.Render("Platform  ") + p.Platform.String(),
		labelStyle.Render("Type      ") + p.Type.String(),
		labelStyle.Render("Status    ") + p.Status.Glyph().Symbol + " " + p.Status.String(),
	}
	if p.Notes != "" {
		lines = append(lines, "", p.Notes)
	}
	if p.HasMedia() {
		lines = append(lines, "", labelStyle.Render("Media attached"))
	}
	lines = append(lines, "", labelStyle.Render("enter edit · esc back"))
	return panelStyle.Render(strings.Join(lines, "\n")) + "\n" + m.viewStatus()
}

func (m Model) viewOverflow() string {
	onDay := agenda.On(m.posts, m.overflowOn)
	lines := []string{headerStyle.Render(m.overflowOn.Format("Mon Jan _2 2006"))}
	for _, p := range onDay {
		g := p.Platform.Glyph()
		mark := lipgloss.NewStyle().Foreground(lipgloss.Color(g.Color)).Render(g.Symbol)
		lines = append(lines, fmt.Sprintf("%s %s %s", mark, p.Status.Glyph().Symbol, p.Title))
	}
	lines = append(lines, "", labelStyle.Render("o plan another · esc back"))
	return panelStyle.Render(strings.Join(lines, "\n")) + "\n" + m.viewStatus()
}

func (m Model) viewMedia() string {
	lines := []string{headerStyle.Render("Media library")}
	withMedia := agenda.WithMedia(m.posts)
	if len(withMedia) == 0 {
		lines = append(lines, moreStyle.Render("no posts with media yet"))
	}
	for _, p := range withMedia {
		lines = append(lines, fmt.Sprintf("%s  %s  %s", p.Date.Format("Jan _2"), p.Title, labelStyle.Render(mediaKind(p))))
	}
	lines = append(lines, "", labelStyle.Render("esc back"))
	return panelStyle.Render(strings.Join(lines, "\n")) + "\n" + m.viewStatus()
}

func mediaKind(p *post.Post) string {
	uri := p.MediaURL
	if !strings.HasPrefix(uri, "data:") {
		return "link"
	}
	rest := strings.TrimPrefix(uri, "data:")
	if i := strings.IndexByte(rest, ';'); i > 0 {
		return rest[:i]
	}
	return "data"
}

func (m Model) viewHelp() string {
	help := []string{
		headerStyle.Render("Keys"),
		"",
		"h/j/k/l or arrows  move between days",
		"[ / ]              previous / next month",
		"t                  jump to today",
		"enter or o         plan a post on the selected day",
		"v                  view posts on the selected day",
		"space              toggle pan mode (drag scrolls, a long vertical drag switches month)",
		"u                  toggle the upcoming strip",
		"m                  media library",
		"r                  reload",
		":q                 quit",
	}
	return panelStyle.Render(strings.Join(help, "\n")) + "\n" + m.viewStatus()
}

func (m Model) viewStatus() string {
	modeStr := map[mode]string{
		modeMonth:    "MONTH",
		modeCompose:  "COMPOSE",
		modeOverflow: "DAY",
		modeDetail:   "POST",
		modeMedia:    "MEDIA",
		modeCommand:  "CMD",
		modeHelp:     "HELP",
	}[m.mode]
	return statusStyle.Render(fmt.Sprintf("[%s] %s", modeStr, m.status))
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
