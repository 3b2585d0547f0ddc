package indicator

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) Init() tea.Cmd {
	return m.refresh()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	case tickMsg:
		return m, m.refresh()
	case cycleMsg:
		if msg.err != nil {
			// keep the last good values on screen
			m.err = msg.err
			log.Printf("zram refresh failed: %v", msg.err)
		} else {
			m.err = nil
			m.apply(msg.snapshot)
		}
		return m, m.scheduleTick()
	}
	return m, nil
}

// refresh runs one read cycle. The next tick is only scheduled once its result
// arrives, so cycles never overlap.
func (m *Model) refresh() tea.Cmd {
	ctx, source := m.ctx, m.source
	return func() tea.Msg {
		snap, err := source.Snapshot(ctx)
		return cycleMsg{snapshot: snap, err: err}
	}
}

func (m *Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
