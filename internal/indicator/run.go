package indicator

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the indicator on the terminal until the user quits or ctx is done
func Run(ctx context.Context, source Source) error {
	p := tea.NewProgram(New(ctx, source), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
