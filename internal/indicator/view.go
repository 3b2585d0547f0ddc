package indicator

import (
	"strings"
)

func (m *Model) View() string {
	var b strings.Builder

	title := "ZRAM " + m.label
	if m.summary != "" {
		title = m.summary
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteRune('\n')

	for _, r := range m.rows {
		b.WriteString(labelStyle.Render(r.label))
		b.WriteString(valueStyle.Render(r.value))
		b.WriteRune('\n')
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("refresh failed: " + m.err.Error()))
		b.WriteRune('\n')
	}

	footer := "q to quit"
	if !m.updated.IsZero() {
		footer = "updated " + m.updated.Format("15:04:05") + ", " + footer
	}
	b.WriteString(footerStyle.Render(footer))
	b.WriteRune('\n')

	return b.String()
}
