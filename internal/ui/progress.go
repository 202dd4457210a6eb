// Package ui renders the build progress shown by `wasmc build --progress=on`.
// Grounded on the teacher's internal/ui/progress.go: a bubbletea model
// driven by a channel of pipeline events, with a spinner for the active
// stage and a lipgloss-styled line per completed stage.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wasmc/internal/driver"
)

var stageLabels = []driver.Stage{
	driver.StageParse,
	driver.StageScan,
	driver.StageCompile,
	driver.StageEncode,
}

type stageStatus string

const (
	statusQueued stageStatus = "queued"
	statusActive stageStatus = "working"
	statusDone   stageStatus = "done"
	statusError  stageStatus = "error"
)

type progressModel struct {
	title   string
	events  <-chan driver.Event
	spinner spinner.Model
	status  map[driver.Stage]stageStatus
	err     error
	done    bool
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a bubbletea model that renders wasmc's pipeline
// stages as they're reported on events.
func NewProgressModel(title string, events <-chan driver.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	status := make(map[driver.Stage]stageStatus, len(stageLabels))
	for _, s := range stageLabels {
		status[s] = statusQueued
	}
	return &progressModel{title: title, events: events, spinner: sp, status: status}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listen())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		ev := driver.Event(msg)
		m.apply(ev)
		if ev.Stage == driver.StageComplete || ev.Err != nil {
			m.done = true
			return m, tea.Quit
		}
		return m, m.listen()
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) apply(ev driver.Event) {
	if ev.Err != nil {
		m.status[ev.Stage] = statusError
		m.err = ev.Err
		return
	}
	for _, s := range stageLabels {
		if s == ev.Stage {
			m.status[s] = statusActive
			continue
		}
		if m.status[s] == statusActive {
			m.status[s] = statusDone
		}
	}
}

func (m *progressModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	var b strings.Builder
	header := m.title
	if m.done {
		header = fmt.Sprintf("done: %s", header)
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")
	for _, s := range stageLabels {
		b.WriteString(fmt.Sprintf("  %-12s %s\n", m.status[s], s))
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.err.Error()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *progressModel) listen() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}
