package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"omnibar/engine"
	"omnibar/metrics"
	"omnibar/text"
	"omnibar/types"
)

type demoKeyMap struct {
	Accept     key.Binding
	AcceptWord key.Binding
	Commit     key.Binding
	Cancel     key.Binding
	Up         key.Binding
	Down       key.Binding
	First      key.Binding
	Last       key.Binding
	Quit       key.Binding
}

func defaultDemoKeyMap() demoKeyMap {
	return demoKeyMap{
		Accept: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept"),
		),
		AcceptWord: key.NewBinding(
			key.WithKeys("alt+f"),
			key.WithHelp("alt+f", "accept word"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "commit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss/quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "prev"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k demoKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.AcceptWord, k.Commit, k.Cancel, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k demoKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Accept, k.AcceptWord, k.Commit},
		{k.Up, k.Down, k.First, k.Last},
		{k.Cancel, k.Quit},
	}
}

var (
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	ghostStyle    = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	footerStyle   = lipgloss.NewStyle().Faint(true)
)

// Engine output delivered as bubbletea messages.
type (
	contentChangeMsg struct{ change types.ContentChange }
	suggestionsMsg   struct{ ready engine.SuggestionsReady }
	commitMsg        struct{ text string }
	cancelMsg        struct{}
	moveMsg          struct{ dir types.MoveDirection }
)

func listenContentChanges(eng *engine.Engine) tea.Cmd {
	return func() tea.Msg { return contentChangeMsg{change: <-eng.ContentChanges()} }
}

func listenSuggestions(eng *engine.Engine) tea.Cmd {
	return func() tea.Msg { return suggestionsMsg{ready: <-eng.Suggestions()} }
}

func listenCommits(eng *engine.Engine) tea.Cmd {
	return func() tea.Msg { return commitMsg{text: <-eng.Commits()} }
}

func listenCancels(eng *engine.Engine) tea.Cmd {
	return func() tea.Msg { <-eng.Cancels(); return cancelMsg{} }
}

func listenMoves(eng *engine.Engine) tea.Cmd {
	return func() tea.Msg { return moveMsg{dir: <-eng.Moves()} }
}

// demoModel is the Bubble Tea model for the interactive omnibar demo: a field
// with an inline ghost completion and a ranked candidate list underneath.
type demoModel struct {
	eng     *engine.Engine
	tracker *metrics.Tracker

	input textinput.Model
	help  help.Model
	keys  demoKeyMap

	lastValue string // field text after the last edit we reported
	ghost     string // un-typed tail of the inline completion
	items     []*types.SuggestionItem
	cursor    int
	committed string
	quitting  bool

	width  int
	height int
}

func newDemoModel(eng *engine.Engine, tracker *metrics.Tracker) demoModel {
	input := textinput.New()
	input.Prompt = ""
	input.Focus()

	return demoModel{
		eng:     eng,
		tracker: tracker,
		input:   input,
		help:    help.New(),
		keys:    defaultDemoKeyMap(),
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (m demoModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		listenContentChanges(m.eng),
		listenSuggestions(m.eng),
		listenCommits(m.eng),
		listenCancels(m.eng),
		listenMoves(m.eng),
	)
}

// Update implements tea.Model.
func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case contentChangeMsg:
		switch c := msg.change.(type) {
		case types.Continuation:
			m.setField(c.Text)
			m.ghost = c.RemainingAppendix
			if c.RemainingAppendix != "" {
				// Refresh the displayed-content slot for the next edit.
				m.eng.Display(types.Suggestion{
					Text:     c.Text + c.RemainingAppendix,
					TypedLen: types.CharLen(c.Text),
				})
			}
		case types.Replacement:
			m.setField(c.Text)
			m.ghost = ""
		}
		return m, listenContentChanges(m.eng)

	case suggestionsMsg:
		m.items = msg.ready.Items
		m.cursor = 0
		if comp := msg.ready.Completion; comp != nil {
			matched, _ := text.FoldPrefixLen(comp.Text, msg.ready.Query)
			m.ghost = comp.Text[matched:]
			m.eng.Display(*comp)
		} else {
			m.ghost = ""
			m.eng.Display(types.Literal{Text: m.lastValue})
		}
		return m, listenSuggestions(m.eng)

	case commitMsg:
		m.committed = msg.text
		m.quitting = true
		return m, tea.Quit

	case cancelMsg:
		if m.input.Value() == "" && m.ghost == "" {
			m.quitting = true
			return m, tea.Quit
		}
		m.ghost = ""
		m.items = nil
		m.cursor = 0
		return m, listenCancels(m.eng)

	case moveMsg:
		m.moveCursor(msg.dir)
		return m, listenMoves(m.eng)
	}

	return m, nil
}

func (m demoModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.eng.Cancel()
		return m, nil

	case key.Matches(msg, m.keys.Commit):
		m.eng.Commit()
		return m, nil

	case key.Matches(msg, m.keys.Accept):
		m.eng.Accept()
		return m, nil

	case key.Matches(msg, m.keys.AcceptWord):
		m.eng.AcceptWord()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.eng.Move(types.MovePrevious)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.eng.Move(types.MoveNext)
		return m, nil

	case key.Matches(msg, m.keys.First):
		m.eng.Move(types.MoveFirst)
		return m, nil

	case key.Matches(msg, m.keys.Last):
		m.eng.Move(types.MoveLast)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if v := m.input.Value(); v != m.lastValue {
		change := text.ComputePatch(m.lastValue, v)
		m.lastValue = v
		m.eng.TextChanged(change)
	}
	return m, cmd
}

// setField syncs the input widget to engine-confirmed text without reporting
// the sync back as an edit.
func (m *demoModel) setField(value string) {
	if m.input.Value() != value {
		m.input.SetValue(value)
		m.input.CursorEnd()
	}
	m.lastValue = value
}

func (m *demoModel) moveCursor(dir types.MoveDirection) {
	if len(m.items) == 0 {
		return
	}
	switch dir {
	case types.MoveFirst:
		m.cursor = 0
	case types.MovePrevious:
		if m.cursor > 0 {
			m.cursor--
		}
	case types.MoveNext:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case types.MoveLast:
		m.cursor = len(m.items) - 1
	}
}

// View implements tea.Model.
func (m demoModel) View() string {
	if m.quitting {
		return ""
	}

	searchBar := promptStyle.Render("> ") + m.input.View() + ghostStyle.Render(m.ghost)

	maxRows := m.height - 6
	if maxRows < 3 {
		maxRows = 3
	}

	var rows []string
	for i, item := range m.items {
		if i >= maxRows {
			break
		}
		line := "  " + item.Text
		if i == m.cursor {
			line = selectedStyle.Render("> " + item.Text)
		}
		rows = append(rows, line)
	}
	listView := strings.Join(rows, "\n")

	s := m.tracker.Snapshot()
	footer := footerStyle.Render(fmt.Sprintf(
		"shown %d  cont %d  repl %d  accept %d  word %d",
		s.Shown, s.Continuations, s.Replacements, s.Accepted, s.PartialAccepted,
	))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		searchBar,
		"",
		listView,
		"",
		footer,
		m.help.View(m.keys),
	)
}

// Ensure interface compliance.
var _ tea.Model = (*demoModel)(nil)
