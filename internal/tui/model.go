package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shree1767/SRM-GPA-Calculator/internal/engine"
	"github.com/shree1767/SRM-GPA-Calculator/internal/ui"
)

const (
	colGrade = iota
	colCredit
)

const cellWidth = 16

type boardModel struct {
	form *engine.Form
	keys keyMap
	help help.Model

	width  int
	height int

	selected int
	column   int

	lastLog string
}

func newBoardModel(form *engine.Form) boardModel {
	return boardModel{
		form:    form,
		keys:    defaultKeyMap(),
		help:    help.New(),
		lastLog: "Pick a grade and credit for each subject, then press enter.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < m.form.Len()-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Left):
		m.column = colGrade
	case key.Matches(msg, m.keys.Right):
		m.column = colCredit
	case key.Matches(msg, m.keys.Next):
		m.cycle(1)
	case key.Matches(msg, m.keys.Prev):
		m.cycle(-1)
	case key.Matches(msg, m.keys.Credit):
		if m.column != colCredit || !m.hasRow() {
			return m, nil
		}
		v := msg.String()
		if v == "0" {
			v = ""
		}
		m.form.Update(m.selected, engine.FieldCredit, v)
	case key.Matches(msg, m.keys.Add):
		m.form.Append()
		m.selected = m.form.Len() - 1
		m.lastLog = fmt.Sprintf("Added subject %d.", m.form.Len())
	case key.Matches(msg, m.keys.Remove):
		if !m.hasRow() {
			m.lastLog = "Nothing to remove."
			return m, nil
		}
		m.form.Remove(m.selected)
		m.lastLog = fmt.Sprintf("Removed subject %d.", m.selected+1)
		m.clampCursor()
	case key.Matches(msg, m.keys.Calculate):
		r := m.form.Calculate()
		if r.Valid() {
			m.lastLog = "Calculated."
		} else {
			m.lastLog = "No complete subjects to calculate."
		}
	case key.Matches(msg, m.keys.Theme):
		if m.form.ToggleTheme() {
			m.lastLog = "Dark theme."
		} else {
			m.lastLog = "Light theme."
		}
	case key.Matches(msg, m.keys.Reset):
		m.form.Reset()
		m.selected = 0
		m.column = colGrade
		m.lastLog = "Cleared."
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m boardModel) hasRow() bool {
	return m.selected >= 0 && m.selected < m.form.Len()
}

func (m *boardModel) clampCursor() {
	if m.selected >= m.form.Len() {
		m.selected = m.form.Len() - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// cycle steps the focused field through its selector options, wrapping
// through the unset entry. A value outside the options restarts at unset.
func (m *boardModel) cycle(step int) {
	if !m.hasRow() {
		return
	}
	row := m.form.Row(m.selected)
	field, current, opts := engine.FieldGrade, row.Grade, gradeOptions()
	if m.column == colCredit {
		field, current, opts = engine.FieldCredit, row.Credit, creditOptions()
	}
	idx := -1
	for i, o := range opts {
		if o == current {
			idx = i
			break
		}
	}
	next := 0
	if idx >= 0 {
		next = (idx + step + len(opts)) % len(opts)
	}
	m.form.Update(m.selected, field, opts[next])
}

func gradeOptions() []string {
	opts := []string{""}
	for _, g := range engine.Grades() {
		opts = append(opts, string(g))
	}
	return opts
}

func creditOptions() []string {
	return append([]string{""}, engine.CreditOptions()...)
}

func (m boardModel) View() string {
	p := ui.PaletteFor(m.form.Dark())

	var b strings.Builder
	b.WriteString(m.renderHeader(p))
	b.WriteString("\n\n")
	b.WriteString(m.renderRows(p))
	b.WriteString("\n\n")
	b.WriteString(p.Button.Render(ui.IconPlus) + p.Text.Render("  ") + p.Button.Render(ui.IconCalc+" CALCULATE"))
	b.WriteString("\n\n")
	b.WriteString(p.Muted.Render(m.lastLog))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	page := p.Page
	if m.width > 0 {
		page = page.Width(m.width)
	}
	if m.height > 0 {
		page = page.Height(m.height)
	}
	return page.Render(b.String())
}

func (m boardModel) renderHeader(p ui.Palette) string {
	return p.Result.Render(m.form.Result().Display()) +
		p.Text.Render("    ") +
		p.Heading.Render(p.ToggleIcon)
}

func (m boardModel) renderRows(p ui.Palette) string {
	if m.form.Len() == 0 {
		return p.Muted.Render("(no subjects, press a to add one)")
	}
	lines := make([]string, 0, m.form.Len())
	for i, s := range m.form.Subjects() {
		cursor := p.Text.Render("  ")
		if i == m.selected {
			cursor = p.Cursor.Render("> ")
		}
		grade := cellLabel(s.Grade, "Select Grade")
		credit := cellLabel(s.Credit, "Select Credit")
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center,
			cursor,
			m.cellStyle(p, i, colGrade).Render(grade),
			p.Text.Render(" "),
			m.cellStyle(p, i, colCredit).Render(credit),
			p.Text.Render(" "),
			p.Remove.Render(ui.IconRemove),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m boardModel) cellStyle(p ui.Palette, row, col int) lipgloss.Style {
	if row == m.selected && col == m.column {
		return p.Focus.Width(cellWidth)
	}
	return p.Cell.Width(cellWidth)
}

func cellLabel(value, unset string) string {
	if value == "" {
		return unset
	}
	return value
}
