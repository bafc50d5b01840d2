// Package tui is an interactive stepper over a pipeline.Session.
//
// Keys: n/space/→ next, p/← previous, r reset, e run to the end,
// m enter a manual pivot as "row col" followed by enter, q quit.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/lplab/internal/pipeline"
	"github.com/katalvlaran/lplab/render"
	"github.com/katalvlaran/lplab/simplex"
)

const help = "n next · p previous · e run to end · m manual pivot · r reset · q quit"

// Model is the bubbletea model.
type Model struct {
	session pipeline.Session
	state   pipeline.StateView
	result  string
	err     error

	manual bool
	input  string
}

// New returns a model showing the session's current snapshot.
func New(s pipeline.Session) (Model, error) {
	st, err := s.State()
	if err != nil {
		return Model{}, err
	}

	return Model{session: s, state: st}, nil
}

// Run starts the program on the alternate screen.
func Run(s pipeline.Session) error {
	m, err := New(s)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()

	return err
}

// State returns the snapshot on screen.
func (m Model) State() pipeline.StateView { return m.state }

// Err returns the error of the last action, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.manual {
		return m.updateManual(key)
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "n", " ", "right", "l":
		m.apply(m.session.Next(nil))
	case "p", "left", "h":
		m.apply(m.session.Previous())
	case "r":
		m.apply(m.session.Reset())
		m.result = ""
	case "e":
		for m.err == nil && m.state.HasNext {
			m.apply(m.session.Next(nil))
		}
	case "m":
		if m.state.HasNext {
			m.manual = true
			m.input = ""
			m.err = nil
		}
	}

	return m, nil
}

func (m Model) updateManual(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.manual = false
	case tea.KeyBackspace:
		if m.input != "" {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyEnter:
		m.manual = false
		p, err := parsePivot(m.input)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.apply(m.session.Next(&p))
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(key.Runes)
	}

	return m, nil
}

// apply records the outcome of a session call.
func (m *Model) apply(st pipeline.StateView, err error) {
	m.err = err
	if err != nil {
		return
	}
	m.state = st
	m.result = ""
	if !st.HasNext {
		if sol, err := m.session.Solution(); err == nil {
			m.result = sol.Text
		}
	}
}

func parsePivot(s string) (simplex.Pivot, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields) != 2 {
		return simplex.NoPivot, fmt.Errorf("want \"row col\", got %q", s)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return simplex.NoPivot, fmt.Errorf("row: %w", err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return simplex.NoPivot, fmt.Errorf("col: %w", err)
	}

	return simplex.Pivot{Row: row, Col: col}, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.state.Text)
	b.WriteString("\n")
	if m.result != "" {
		b.WriteString("\n")
		b.WriteString(m.result)
		b.WriteString("\n")
	}
	if m.manual {
		b.WriteString("\n")
		b.WriteString(render.KeyValue("pivot (row col)", m.input+"▏"))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(render.Error(m.err))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(render.StyleDim.Render(help))
	b.WriteString("\n")

	return b.String()
}
