package tui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/Makepad-fr/nameboard/internal/viewmodel"
)

type focusArea int

const (
	focusForm focusArea = iota
	focusTable
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// header, form box, table border, help
	chromeHeight = 11
	minRows      = 3
	numberWidth  = 4
)

// Model is the bubbletea model for the names screen: an input form on top,
// the numbered table below.
type Model struct {
	vm    *viewmodel.ViewModel
	log   *slog.Logger
	title string

	table table.Model
	ti    textinput.Model
	help  help.Model
	keys  keyMap

	focus   focusArea
	formErr string

	// Inline edit
	editing   bool
	editIndex int

	width, height int
}

// New builds the screen around vm. vm must already be initialised.
func New(vm *viewmodel.ViewModel, log *slog.Logger, title string) Model {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New name..."
	ti.CharLimit = 200
	ti.SetValue(vm.Pending())
	ti.Focus()

	t := table.New(
		table.WithColumns(columns(defaultWidth)),
		table.WithFocused(false),
		table.WithHeight(defaultHeight-chromeHeight),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = styles.Selected.Bold(true)
	t.SetStyles(styles)

	m := Model{
		vm:     vm,
		log:    log,
		title:  title,
		table:  t,
		ti:     ti,
		help:   help.New(),
		keys:   defaultKeys(),
		focus:  focusForm,
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.syncRows()
	return m
}

// Run starts the program and blocks until the user quits.
func Run(vm *viewmodel.ViewModel, log *slog.Logger, title string, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(New(vm, log, title), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func columns(width int) []table.Column {
	nameW := width - numberWidth - 10
	if nameW < 20 {
		nameW = 20
	}
	return []table.Column{
		{Title: "#", Width: numberWidth},
		{Title: "Name", Width: nameW},
	}
}

// syncRows rebuilds the table from the view-model's cache.
func (m *Model) syncRows() {
	items := m.vm.Items()
	m.table.SetRows(lo.Map(items, func(name string, i int) table.Row {
		return table.Row{strconv.Itoa(i + 1), name}
	}))
	if n := len(items); n > 0 && m.table.Cursor() >= n {
		m.table.SetCursor(n - 1)
	}
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	if f == focusTable {
		m.ti.Blur()
		m.table.Focus()
		return
	}
	m.table.Blur()
	m.ti.Focus()
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		m.table.SetColumns(columns(m.width))
		m.table.SetHeight(max(m.height-chromeHeight, minRows))
		m.help.Width = m.width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(x, m.keys.Force) {
			return m, tea.Quit
		}
	}

	if m.editing {
		return m.updateEdit(msg)
	}
	if m.focus == focusTable {
		return m.updateTable(msg)
	}
	return m.updateForm(msg)
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(x, m.keys.Submit):
			m.vm.SetPending(m.ti.Value())
			if !m.vm.SubmitNew() {
				m.formErr = "Name cannot be empty"
				return m, nil
			}
			m.formErr = ""
			m.ti.SetValue(m.vm.Pending())
			m.syncRows()
			m.table.GotoBottom()
			return m, nil
		case key.Matches(x, m.keys.Switch):
			m.formErr = ""
			m.setFocus(focusTable)
			return m, nil
		case key.Matches(x, m.keys.Cancel):
			m.formErr = ""
			m.ti.SetValue("")
			m.vm.SetPending("")
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	m.vm.SetPending(m.ti.Value())
	return m, cmd
}

func (m Model) updateTable(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(x, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(x, m.keys.Switch), key.Matches(x, m.keys.Cancel):
			m.setFocus(focusForm)
			return m, nil
		case key.Matches(x, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(x, m.keys.Delete):
			m.log.Debug("delete key", "row", m.table.Cursor()+1)
			m.vm.RemoveAt(m.table.Cursor())
			m.syncRows()
			return m, nil
		case key.Matches(x, m.keys.Edit):
			i := m.table.Cursor()
			current, ok := m.vm.BeginEdit(i)
			m.syncRows()
			if !ok {
				return m, nil
			}
			m.log.Debug("edit started", "row", i+1)
			m.editing = true
			m.editIndex = i
			m.formErr = ""
			m.ti.SetValue(current)
			m.ti.CursorEnd()
			m.ti.Placeholder = "Edit name..."
			m.table.Blur()
			m.ti.Focus()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(x, m.keys.Submit):
			if !m.vm.CommitEdit(m.editIndex, m.ti.Value()) {
				m.formErr = "Name cannot be empty"
				return m, nil
			}
			m.endEdit()
			m.syncRows()
			return m, nil
		case key.Matches(x, m.keys.Cancel):
			m.endEdit()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// endEdit returns to the table and puts the half-typed new name back in the form.
func (m *Model) endEdit() {
	m.editing = false
	m.formErr = ""
	m.ti.Placeholder = "New name..."
	m.ti.SetValue(m.vm.Pending())
	m.setFocus(focusTable)
}

func (m Model) View() string {
	inner := m.width - 4
	if inner < 20 {
		inner = 20
	}

	header := fmt.Sprintf("%s   %s %d",
		titleStyle.Render(m.title),
		accentStyle.Render("Total"), len(m.vm.Items()),
	)

	label := "Add name"
	if m.editing {
		label = fmt.Sprintf("Edit row %d", m.editIndex+1)
	}
	label = labelStyle.Render(label)
	if m.formErr != "" {
		label += " " + errorStyle.Render(m.formErr)
	}
	form := box(label+"\n"+m.ti.View(), m.focus == focusForm || m.editing, inner)

	var body string
	if len(m.vm.Items()) == 0 {
		body = mutedStyle.Render("no names yet")
	} else {
		body = m.table.View()
	}
	list := box(body, m.focus == focusTable && !m.editing, inner)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		form,
		list,
		m.helpView(),
	)
}

func (m Model) helpView() string {
	if m.help.ShowAll {
		return m.help.View(m.keys)
	}
	return m.help.ShortHelpView(m.bindings())
}

// bindings lists the keys that do something in the current mode.
func (m Model) bindings() []key.Binding {
	switch {
	case m.editing:
		return []key.Binding{m.keys.Submit, m.keys.Cancel, m.keys.Force}
	case m.focus == focusTable:
		return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Edit, m.keys.Delete, m.keys.Switch, m.keys.Help, m.keys.Quit}
	default:
		return []key.Binding{m.keys.Submit, m.keys.Cancel, m.keys.Switch, m.keys.Force}
	}
}

// Names is the text currently shown in the table, one row per entry.
func (m Model) Names() []string {
	return lo.Map(m.table.Rows(), func(r table.Row, _ int) string { return strings.TrimSpace(r[1]) })
}
